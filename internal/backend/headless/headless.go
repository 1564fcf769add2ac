// internal/backend/headless/headless.go
package headless

import (
	"fmt"
	"go-fireball/internal/input"
	"go-fireball/internal/interfaces"
	"go-fireball/internal/render"
)

// Script возвращает зажатые клавиши для кадра с номером frame.
type Script func(frame int) input.KeySet

// Backend гоняет FrameLoop с фиксированным шагом без окна.
// Каждый кадр рисуется в Recorder, который сбрасывается перед отрисовкой.
type Backend struct {
	Frames    int
	FrameTime float64
	Script    Script
	Recorder  *render.Recorder

	// Сколько кадров реально прошло
	Ran int
}

func New(frames int, frameTime float64) *Backend {
	return &Backend{
		Frames:    frames,
		FrameTime: frameTime,
		Recorder:  &render.Recorder{},
	}
}

var _ interfaces.Runner = (*Backend)(nil)

// Run крутит цикл до Frames кадров или до запроса на закрытие.
func (b *Backend) Run(loop interfaces.FrameLoop) error {
	if b.FrameTime <= 0 {
		return fmt.Errorf("headless: frame time must be positive, got %g", b.FrameTime)
	}
	b.Ran = 0
	for b.Ran < b.Frames {
		var held input.KeySet
		if b.Script != nil {
			held = b.Script(b.Ran)
		}
		if !loop.Update(b.FrameTime, held) {
			break
		}
		b.Recorder.Reset()
		loop.Draw(b.Recorder)
		b.Ran++
	}
	return nil
}
