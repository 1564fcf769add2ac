// internal/input/state.go
package input

// Tracker хранит снимки зажатых клавиш текущего и предыдущего кадра.
// Pressed: клавиша зажата сейчас и не была зажата кадром ранее.
type Tracker struct {
	previous KeySet
	current  KeySet
}

// Update сдвигает снимки: текущий становится предыдущим.
func (t *Tracker) Update(held KeySet) {
	t.previous = t.current
	t.current = held
}

// Down сообщает, зажата ли клавиша на текущем кадре.
func (t *Tracker) Down(k Key) bool {
	return t.current.Has(k)
}

// Pressed сообщает, была ли клавиша нажата именно на этом кадре.
func (t *Tracker) Pressed(k Key) bool {
	return t.current.Has(k) && !t.previous.Has(k)
}

// Held возвращает текущий снимок.
func (t *Tracker) Held() KeySet {
	return t.current
}
