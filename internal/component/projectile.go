// internal/component/projectile.go
package component

// Projectile представляет летящий снаряд башни.
type Projectile struct {
	Position Vector2
	Velocity Vector2
	Radius   float64
}

// Advance сдвигает снаряд по прямой на время deltaTime.
func (p *Projectile) Advance(deltaTime float64) {
	p.Position = p.Position.Add(p.Velocity.Scale(deltaTime))
}

// Overlaps проверяет пересечение окружности снаряда с окружностью (center, radius).
func (p *Projectile) Overlaps(center Vector2, radius float64) bool {
	return p.Position.Distance(center) <= p.Radius+radius
}
