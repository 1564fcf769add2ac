// internal/entity/ecs.go
package entity

import (
	"go-fireball/internal/component"
	"go-fireball/internal/config"
)

// World — всё состояние симуляции. Системы получают его по указателю и
// меняют на месте; глобальных синглтонов нет.
type World struct {
	GameTime float64
	Player   *component.Player
	Tower    *component.Tower
	HitFlash *component.HitFlash
	Stats    component.Stats
}

// NewWorld расставляет игрока и башню на стартовые позиции.
func NewWorld() *World {
	return &World{
		Player: &component.Player{
			Position: component.Vector2{X: config.PlayerStartX, Y: config.PlayerStartY},
			Radius:   config.PlayerRadius,
		},
		Tower: component.NewTower(
			component.Vector2{X: config.ScreenWidth - config.TowerOffsetX, Y: config.ScreenHeight / 2},
			config.TowerRadius,
			config.ProjectileBufferSize,
		),
	}
}
