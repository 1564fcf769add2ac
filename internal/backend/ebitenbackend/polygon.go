// internal/backend/ebitenbackend/polygon.go
package ebitenbackend

import (
	"image/color"

	prender "go-fireball/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// polygonRenderer заливает многоугольники через DrawTriangles,
// переиспользуя буферы вершин между кадрами.
type polygonRenderer struct {
	fillImg *ebiten.Image
	fillVs  []ebiten.Vertex
	fillIs  []uint16
}

func newPolygonRenderer() *polygonRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &polygonRenderer{
		fillImg: fillImg,
		fillVs:  make([]ebiten.Vertex, 0, 8),
		fillIs:  make([]uint16, 0, 8),
	}
}

// DrawRegular заливает правильный многоугольник цветом fill.
func (r *polygonRenderer) DrawRegular(target *ebiten.Image, cx, cy float64, sides int, radius, rotationDeg float64, fill color.RGBA) {
	path := vector.Path{}
	for i, p := range prender.RegularPolygon(cx, cy, sides, radius, rotationDeg) {
		if i == 0 {
			path.MoveTo(float32(p[0]), float32(p[1]))
		} else {
			path.LineTo(float32(p[0]), float32(p[1]))
		}
	}
	path.Close()

	cr, cg, cb, ca := prender.VertexColor(fill)
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = cr
		r.fillVs[i].ColorG = cg
		r.fillVs[i].ColorB = cb
		r.fillVs[i].ColorA = ca
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
