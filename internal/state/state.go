// internal/state/state.go
package state

import (
	"go-fireball/internal/input"
	"go-fireball/internal/interfaces"
	"go-fireball/internal/render"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64, in *input.Tracker)
	Draw(r render.Renderer)
	Exit()
}

// StateMachine переключает состояния и служит FrameLoop для бэкендов.
type StateMachine struct {
	current State
	input   input.Tracker
}

var _ interfaces.FrameLoop = (*StateMachine)(nil)

// NewStateMachine создаёт машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current возвращает активное состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет снимок ввода и текущее состояние.
// Возвращает false, если нажата клавиша закрытия.
func (sm *StateMachine) Update(deltaTime float64, held input.KeySet) bool {
	sm.input.Update(held)
	if sm.input.Down(input.KeyClose) {
		return false
	}
	if sm.current != nil {
		sm.current.Update(deltaTime, &sm.input)
	}
	return true
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(r render.Renderer) {
	if sm.current != nil {
		sm.current.Draw(r)
	}
}
