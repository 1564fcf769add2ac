// internal/state/game_state.go
package state

import (
	game "go-fireball/internal/app"
	"go-fireball/internal/event"
	"go-fireball/internal/input"
	"go-fireball/internal/render"
	"go-fireball/internal/system"
	"go-fireball/internal/ui"
)

// GameState — состояние игры на арене
type GameState struct {
	sm   *StateMachine
	game *game.Game
	hud  *ui.HUD
}

func NewGameState(sm *StateMachine, g *game.Game) *GameState {
	gs := &GameState{
		sm:   sm,
		game: g,
		hud:  ui.NewHUD(),
	}
	g.EventDispatcher.Subscribe(event.ListenerFunc(func(event.Event) {
		gs.hud.Indicator.HandleToggle(g.World.GameTime)
	}), event.TargetingToggled)
	return gs
}

// Game возвращает симуляцию, которой управляет состояние.
func (g *GameState) Game() *game.Game {
	return g.game
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64, in *input.Tracker) {
	if in.Pressed(input.KeyPause) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	if in.Pressed(input.KeyToggleTargeting) {
		g.game.ToggleTargeting()
	}

	g.game.Update(deltaTime, system.PlayerControls{
		Up:   in.Down(input.KeyUp),
		Down: in.Down(input.KeyDown),
	})
}

func (g *GameState) Draw(r render.Renderer) {
	g.game.Draw(r)
	world := g.game.World
	g.hud.Draw(r, world.Tower.UseRegression, world.Stats, world.GameTime)
}

func (g *GameState) Exit() {}
