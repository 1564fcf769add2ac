package system

import (
	"go-fireball/internal/component"
	"go-fireball/internal/entity"
	"go-fireball/internal/event"
)

// eventLog собирает типы отправленных событий.
type eventLog struct {
	types []event.EventType
}

func (l *eventLog) OnEvent(e event.Event) { l.types = append(l.types, e.Type) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, got := range l.types {
		if got == t {
			n++
		}
	}
	return n
}

func newTestWorld() (*entity.World, *event.Dispatcher, *eventLog) {
	w := entity.NewWorld()
	d := event.NewDispatcher()
	log := &eventLog{}
	d.Subscribe(log,
		event.ProjectileFired,
		event.ProjectileDropped,
		event.ProjectileExpired,
		event.PlayerHit,
		event.TargetingToggled,
	)
	return w, d, log
}

func projectileAt(x, y float64) component.Projectile {
	return component.Projectile{
		Position: component.Vector2{X: x, Y: y},
		Velocity: component.Vector2{X: -1500, Y: 0},
		Radius:   5,
	}
}
