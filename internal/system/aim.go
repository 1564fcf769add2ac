// internal/system/aim.go
package system

import (
	"go-fireball/internal/component"
	"go-fireball/internal/config"
	"go-fireball/internal/entity"
	"math"
)

// AimSystem каждый кадр наводит башню на игрока и запоминает его позицию
// для следующей подгонки регрессии.
type AimSystem struct {
	world *entity.World
}

func NewAimSystem(world *entity.World) *AimSystem {
	return &AimSystem{world: world}
}

func (s *AimSystem) Update(deltaTime float64) {
	tower := s.world.Tower
	player := s.world.Player
	tower.Angle = TargetAngle(tower, player.Position, deltaTime)
	tower.LastPlayerPosition = player.Position
}

// TargetAngle считает угол прицеливания по смещению башня-минус-игрок (a, b).
//
// Используется одноаргументный арктангенс atan(b/a), а не Atan2: на этой
// арене игрок всегда левее башни, так что a < 0 и результат однозначен.
// Если игрок окажется на одной вертикали с башней (a == 0), угол
// вырождается в ±π/2 или NaN.
//
// В режиме упреждения регрессия подгоняется по двум отсчётам y/frameTime
// (прошлый и текущий кадр), то есть наклон равен вертикальной скорости
// игрока, а Forward(time) даёт его смещение за время полёта снаряда.
func TargetAngle(tower *component.Tower, target component.Vector2, frameTime float64) float64 {
	a := tower.Position.X - target.X
	b := tower.Position.Y - target.Y

	if !tower.UseRegression {
		return math.Atan(b / a)
	}

	time := math.Hypot(a, b) / config.ProjectileSpeed
	if frameTime > 0 {
		tower.Regression.Backward(
			tower.LastPlayerPosition.Y/frameTime,
			target.Y/frameTime,
		)
	}
	predicted := tower.Regression.Forward(time)
	return math.Atan((b - predicted) / a)
}
