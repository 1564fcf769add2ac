// internal/state/pause_state.go
package state

import (
	"go-fireball/internal/config"
	"go-fireball/internal/input"
	"go-fireball/internal/render"
	prender "go-fireball/pkg/render"
)

const pausedLabel = "PAUSED"

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию и рисует предыдущее состояние как есть.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64, in *input.Tracker) {
	if in.Pressed(input.KeyPause) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(r render.Renderer) {
	if s.previousState != nil {
		s.previousState.Draw(r)
	}
	x, y := config.ScreenWidth/2-60, config.ScreenHeight/2-15
	r.DrawText(pausedLabel, x+2, y+2, config.HUDFontSize, prender.DarkenColor(config.PausedTextColor))
	r.DrawText(pausedLabel, x, y, config.HUDFontSize, config.PausedTextColor)
}

func (s *PauseState) Exit() {}
