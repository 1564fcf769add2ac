// internal/system/render.go
package system

import (
	"go-fireball/internal/config"
	"go-fireball/internal/entity"
	"go-fireball/internal/render"
	"go-fireball/internal/utils"
)

// RenderSystem рисует игрока, башню и снаряды
type RenderSystem struct {
	world *entity.World
}

func NewRenderSystem(world *entity.World) *RenderSystem {
	return &RenderSystem{world: world}
}

func (s *RenderSystem) Draw(r render.Renderer) {
	player := s.world.Player
	playerColor := config.PlayerColor
	if s.world.HitFlash.Active() {
		playerColor = config.PlayerHitColor
	}
	r.DrawCircle(player.Position, player.Radius, playerColor)

	// Треугольник башни смотрит вершиной на игрока
	tower := s.world.Tower
	rotation := 180 + utils.RadToDeg(tower.Angle)
	r.DrawPoly(tower.Position, config.TowerSides, tower.Radius, rotation, config.TowerColor)

	buf := tower.Projectiles
	for i := 0; i < buf.Len(); i++ {
		proj := buf.At(i)
		r.DrawCircle(proj.Position, proj.Radius, config.ProjectileColor)
	}
}
