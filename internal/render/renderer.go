// internal/render/renderer.go
package render

import (
	"go-fireball/internal/component"
	"image/color"
)

// Renderer — команды отрисовки, которые бэкенд обязан уметь выполнять.
// Координаты в пикселях арены, углы в градусах.
type Renderer interface {
	Clear(c color.RGBA)
	DrawCircle(center component.Vector2, radius float64, c color.RGBA)
	DrawPoly(center component.Vector2, sides int, radius, rotationDeg float64, c color.RGBA)
	DrawText(text string, x, y, fontSize int, c color.RGBA)
	DrawFPS(x, y int)
}
