// pkg/render/polygon.go
package render

import "math"

// RegularPolygon возвращает вершины правильного многоугольника.
// Первая вершина лежит под углом rotationDeg от оси X, обход по часовой
// стрелке в экранных координатах (ось Y вниз).
func RegularPolygon(cx, cy float64, sides int, radius, rotationDeg float64) [][2]float64 {
	if sides < 3 {
		sides = 3
	}
	points := make([][2]float64, sides)
	step := 2 * math.Pi / float64(sides)
	start := rotationDeg * math.Pi / 180
	for i := range points {
		angle := start + step*float64(i)
		points[i] = [2]float64{
			cx + radius*math.Cos(angle),
			cy + radius*math.Sin(angle),
		}
	}
	return points
}
