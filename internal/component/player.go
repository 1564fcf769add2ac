// internal/component/player.go
package component

// Player — круг, которым управляет игрок. Двигается только по вертикали.
type Player struct {
	Position Vector2
	Radius   float64
}
