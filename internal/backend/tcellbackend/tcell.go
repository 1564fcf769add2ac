// internal/backend/tcellbackend/tcell.go
package tcellbackend

import (
	"fmt"
	"go-fireball/internal/config"
	"go-fireball/internal/interfaces"
	"go-fireball/internal/utils"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Backend рисует арену в терминале.
type Backend struct {
	Hold      time.Duration
	TargetFPS int
}

var _ interfaces.Runner = (*Backend)(nil)

func New(s *config.Settings) *Backend {
	return &Backend{
		Hold:      time.Duration(s.Terminal.HoldMs) * time.Millisecond,
		TargetFPS: s.Window.TargetFPS,
	}
}

func (b *Backend) Run(loop interfaces.FrameLoop) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal screen: %w", err)
	}
	defer screen.Fini()

	return b.run(screen, loop)
}

func (b *Backend) run(screen tcell.Screen, loop interfaces.FrameLoop) error {
	fps := b.TargetFPS
	if fps <= 0 {
		fps = config.TargetFPS
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	keys := newHeldKeys(b.Hold)
	r := &renderer{screen: screen}
	last := time.Now()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				keys.handleKey(ev.Key(), ev.Rune(), time.Now())
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			if !b.step(loop, r, keys, now.Sub(last).Seconds(), now) {
				return nil
			}
			last = now
		}
	}
}

// step выполняет один кадр.
func (b *Backend) step(loop interfaces.FrameLoop, r *renderer, keys *heldKeys, dt float64, now time.Time) bool {
	dt = utils.Clamp(dt, 0, config.MaxDeltaTime)
	if !loop.Update(dt, keys.held(now)) {
		return false
	}
	if dt > 0 {
		// Сглаженный FPS для HUD
		r.fps = r.fps*0.9 + 0.1/dt
	}
	loop.Draw(r)
	r.screen.Show()
	return true
}
