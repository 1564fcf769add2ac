// internal/component/visual.go
package component

// HitFlash указывает, что игрок должен быть отрисован цветом попадания.
type HitFlash struct {
	Timer    float64 // Сколько времени эффекту осталось
	Duration float64 // Общая продолжительность эффекта
}

// Active сообщает, идёт ли ещё вспышка.
func (f *HitFlash) Active() bool {
	return f != nil && f.Timer > 0
}
