// internal/system/stats_system.go
package system

import (
	"go-fireball/internal/entity"
	"go-fireball/internal/event"
)

// StatsSystem считает выстрелы, попадания и увороты по событиям.
type StatsSystem struct {
	world *entity.World
}

func NewStatsSystem(world *entity.World, eventDispatcher *event.Dispatcher) *StatsSystem {
	s := &StatsSystem{world: world}
	eventDispatcher.Subscribe(s,
		event.ProjectileFired,
		event.ProjectileDropped,
		event.PlayerHit,
		event.ProjectileExpired,
	)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *StatsSystem) OnEvent(e event.Event) {
	stats := &s.world.Stats
	switch e.Type {
	case event.ProjectileFired:
		stats.Fired++
	case event.ProjectileDropped:
		stats.Dropped++
	case event.PlayerHit:
		stats.Hits++
	case event.ProjectileExpired:
		stats.Dodged++
	}
}
