// component/tower.go
package component

import (
	"go-fireball/pkg/regression"
	"go-fireball/pkg/ringbuf"
)

// Tower — стреляющая башня с упреждающим прицеливанием.
type Tower struct {
	Position           Vector2
	Radius             float64
	Projectiles        *ringbuf.Ring[Projectile] // Летящие снаряды, владеет только башня
	Regression         regression.Linear         // Модель вертикальной скорости игрока
	LastPlayerPosition Vector2                   // Позиция игрока на предыдущем кадре
	FireTimer          float64                   // Оставшееся время до следующего выстрела
	UseRegression      bool                      // Режим стрельбы с упреждением
	Angle              float64                   // Угол прицеливания на текущем кадре
}

// NewTower создаёт башню с пустым буфером снарядов заданной ёмкости.
func NewTower(position Vector2, radius float64, capacity int) *Tower {
	return &Tower{
		Position:    position,
		Radius:      radius,
		Projectiles: ringbuf.New[Projectile](capacity),
	}
}

// Cooldown сообщает, перезаряжается ли башня.
func (t *Tower) Cooldown() bool {
	return t.FireTimer > 0
}
