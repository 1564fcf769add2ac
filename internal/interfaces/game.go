// internal/interfaces/game.go
package interfaces

import (
	"go-fireball/internal/input"
	"go-fireball/internal/render"
)

// FrameLoop вызывается бэкендом каждый кадр. Бэкенд владеет окном,
// временем и вводом; игра получает только dt, снимок клавиш и Renderer.
type FrameLoop interface {
	// Update продвигает игру на deltaTime секунд. false означает выход.
	Update(deltaTime float64, held input.KeySet) bool
	Draw(r render.Renderer)
}

// Runner крутит FrameLoop до закрытия.
type Runner interface {
	Run(loop FrameLoop) error
}
