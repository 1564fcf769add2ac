// internal/system/player_system.go
package system

import (
	"go-fireball/internal/config"
	"go-fireball/internal/entity"
)

// PlayerControls: намерения игрока на текущем кадре.
type PlayerControls struct {
	Up, Down bool
}

// PlayerSystem двигает игрока по вертикали.
type PlayerSystem struct {
	world *entity.World
}

func NewPlayerSystem(world *entity.World) *PlayerSystem {
	return &PlayerSystem{world: world}
}

// Update проверяет границу до шага, поэтому за кадр игрок может выйти за
// край не больше чем на PlayerSpeed*deltaTime. Вверх важнее, чем вниз.
func (s *PlayerSystem) Update(deltaTime float64, controls PlayerControls) {
	pos := &s.world.Player.Position
	if controls.Up && pos.Y > 0 {
		pos.Y -= config.PlayerSpeed * deltaTime
	} else if controls.Down && pos.Y < config.ScreenHeight {
		pos.Y += config.PlayerSpeed * deltaTime
	}
}
