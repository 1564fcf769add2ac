// internal/system/combat.go
package system

import (
	"go-fireball/internal/component"
	"go-fireball/internal/config"
	"go-fireball/internal/entity"
	"go-fireball/internal/event"
	"go-fireball/internal/utils"
	"math"
)

// CombatSystem управляет перезарядкой башни и выстрелами.
type CombatSystem struct {
	world           *entity.World
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		world:           world,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// Update стреляет, если таймер истёк, иначе уменьшает его на deltaTime.
// Угол берётся из Tower.Angle, поэтому AimSystem должна отработать раньше.
func (s *CombatSystem) Update(deltaTime float64) {
	tower := s.world.Tower
	if tower.Cooldown() {
		tower.FireTimer -= deltaTime
		return
	}

	s.createProjectile(tower)
	tower.FireTimer = s.rng.FireCooldown()
}

func (s *CombatSystem) createProjectile(tower *component.Tower) {
	proj := component.Projectile{
		Position: tower.Position,
		Velocity: component.FromAngle(tower.Angle + math.Pi).Scale(config.ProjectileSpeed),
		Radius:   config.ProjectileRadius,
	}

	// Полный буфер молча отбрасывает новый снаряд
	if !tower.Projectiles.Push(proj) {
		s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileDropped})
		return
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: proj})
}
