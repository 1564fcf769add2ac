// internal/system/projectile.go
package system

import (
	"go-fireball/internal/entity"
	"go-fireball/internal/event"
)

// ProjectileSystem двигает снаряды, снимает попавшие в игрока и ушедшие за
// левый край арены.
type ProjectileSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(world *entity.World, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

// Update проходит буфер от головы к хвосту. Курсор i сдвигается только
// после перемещения снаряда: при удалении на место i встаёт следующий.
//
// Снаряд за левым краем снимается через PopFront, то есть предполагается,
// что он стоит в начале буфера. Это верно, пока все снаряды летят влево с
// одной скоростью и покидают арену в порядке выстрелов.
func (s *ProjectileSystem) Update(deltaTime float64) {
	buf := s.world.Tower.Projectiles
	player := s.world.Player

	for i := 0; i < buf.Len(); {
		proj := buf.At(i)

		switch {
		case proj.Overlaps(player.Position, player.Radius):
			buf.RemoveAt(i)
			s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHit})
		case proj.Position.X < 0:
			buf.PopFront()
			s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileExpired})
		default:
			proj.Advance(deltaTime)
			i++
		}
	}
}
