// internal/backend/tcellbackend/renderer.go
package tcellbackend

import (
	"fmt"
	"go-fireball/internal/component"
	"go-fireball/internal/config"
	"go-fireball/internal/render"
	prender "go-fireball/pkg/render"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

const fillRune = '█'

var _ render.Renderer = (*renderer)(nil)

// renderer растеризует арену в сетку ячеек терминала. Ячейка закрашивается,
// если её центр попадает в фигуру.
type renderer struct {
	screen tcell.Screen
	bg     tcell.Color
	fps    float64
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// cellSize возвращает размер ячейки в пикселях арены.
func (r *renderer) cellSize() (float64, float64) {
	w, h := r.screen.Size()
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	return float64(config.ScreenWidth) / float64(w), float64(config.ScreenHeight) / float64(h)
}

// fill закрашивает ячейки, чьи центры удовлетворяют inside, в пределах рамки.
func (r *renderer) fill(minX, minY, maxX, maxY float64, c color.RGBA, inside func(x, y float64) bool) {
	cw, ch := r.cellSize()
	if cw == 0 {
		return
	}
	w, h := r.screen.Size()
	style := tcell.StyleDefault.Foreground(toColor(c)).Background(r.bg)

	x0, x1 := clampCell(int(minX/cw), w), clampCell(int(maxX/cw), w)
	y0, y1 := clampCell(int(minY/ch), h), clampCell(int(maxY/ch), h)
	drawn := false
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			if inside((float64(cx)+0.5)*cw, (float64(cy)+0.5)*ch) {
				r.screen.SetContent(cx, cy, fillRune, nil, style)
				drawn = true
			}
		}
	}
	// Фигура меньше ячейки всё равно должна быть видна
	if !drawn {
		mx, my := int((minX+maxX)/2/cw), int((minY+maxY)/2/ch)
		if mx >= 0 && mx < w && my >= 0 && my < h {
			r.screen.SetContent(mx, my, fillRune, nil, style)
		}
	}
}

func clampCell(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

func (r *renderer) Clear(c color.RGBA) {
	r.bg = toColor(c)
	r.screen.Fill(' ', tcell.StyleDefault.Background(r.bg))
}

func (r *renderer) DrawCircle(center component.Vector2, radius float64, c color.RGBA) {
	r.fill(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius, c, func(x, y float64) bool {
		dx, dy := x-center.X, y-center.Y
		return dx*dx+dy*dy <= radius*radius
	})
}

func (r *renderer) DrawPoly(center component.Vector2, sides int, radius, rotationDeg float64, c color.RGBA) {
	points := prender.RegularPolygon(center.X, center.Y, sides, radius, rotationDeg)
	r.fill(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius, c, func(x, y float64) bool {
		return insideConvex(points, x, y)
	})
}

// Точка внутри выпуклого многоугольника, если она по одну
// сторону от всех рёбер.
func insideConvex(points [][2]float64, x, y float64) bool {
	var pos, neg bool
	for i := range points {
		a, b := points[i], points[(i+1)%len(points)]
		cross := (b[0]-a[0])*(y-a[1]) - (b[1]-a[1])*(x-a[0])
		if cross > 0 {
			pos = true
		} else if cross < 0 {
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

func (r *renderer) DrawText(text string, x, y, fontSize int, c color.RGBA) {
	cw, ch := r.cellSize()
	if cw == 0 {
		return
	}
	w, h := r.screen.Size()
	cx, cy := int(float64(x)/cw), int(float64(y)/ch)
	if cy < 0 || cy >= h {
		return
	}
	style := tcell.StyleDefault.Foreground(toColor(c)).Background(r.bg)
	for _, ru := range text {
		if cx >= w {
			break
		}
		if cx >= 0 {
			r.screen.SetContent(cx, cy, ru, nil, style)
		}
		cx++
	}
}

func (r *renderer) DrawFPS(x, y int) {
	r.DrawText(fmt.Sprintf("%d FPS", int(r.fps+0.5)), x, y, 20, config.TextColor)
}
