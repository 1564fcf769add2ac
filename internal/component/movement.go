// component/movement.go
package component

import "math"

// Vector2 — точка или скорость на плоскости арены.
type Vector2 struct {
	X, Y float64
}

// FromAngle возвращает единичный вектор направления angle (радианы).
func FromAngle(angle float64) Vector2 {
	return Vector2{X: math.Cos(angle), Y: math.Sin(angle)}
}

func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }

func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }

func (v Vector2) Scale(k float64) Vector2 { return Vector2{v.X * k, v.Y * k} }

// Length возвращает евклидову длину.
func (v Vector2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Distance между двумя точками.
func (v Vector2) Distance(o Vector2) float64 { return v.Sub(o).Length() }
