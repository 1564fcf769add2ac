// internal/utils/math.go
package utils

import "math"

// RadToDeg переводит радианы в градусы
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Clamp ограничивает v отрезком [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
