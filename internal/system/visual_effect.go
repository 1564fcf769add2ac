// internal/system/visual_effect.go
package system

import (
	"go-fireball/internal/component"
	"go-fireball/internal/config"
	"go-fireball/internal/entity"
	"go-fireball/internal/event"
)

// VisualEffectSystem управляет вспышкой игрока при попадании.
type VisualEffectSystem struct {
	world *entity.World
}

// NewVisualEffectSystem создает систему и подписывает её на попадания.
func NewVisualEffectSystem(world *entity.World, eventDispatcher *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{world: world}
	eventDispatcher.Subscribe(s, event.PlayerHit)
	return s
}

// OnEvent перезапускает вспышку при каждом попадании.
func (s *VisualEffectSystem) OnEvent(e event.Event) {
	s.world.HitFlash = &component.HitFlash{
		Timer:    config.HitFlashDuration,
		Duration: config.HitFlashDuration,
	}
}

// Update гасит вспышку по таймеру.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	flash := s.world.HitFlash
	if flash == nil {
		return
	}
	flash.Timer -= deltaTime
	if flash.Timer <= 0 {
		s.world.HitFlash = nil
	}
}
