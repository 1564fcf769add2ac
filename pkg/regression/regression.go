// pkg/regression/regression.go
package regression

// Linear — однопараметрическая модель y = Slope * x без свободного члена.
// Пересчитывается на каждом вызове Backward.
type Linear struct {
	Slope float64
}

// Forward экстраполирует значение в точке x.
func (l *Linear) Forward(x float64) float64 {
	return l.Slope * x
}

// Backward подгоняет наклон по конечной разности первого и последнего
// отсчёта: (s[n-1] - s[0]) / (n - 1). Меньше двух отсчётов: ничего не делает.
func (l *Linear) Backward(samples ...float64) {
	n := len(samples)
	if n < 2 {
		return
	}
	l.Slope = (samples[n-1] - samples[0]) / float64(n-1)
}
