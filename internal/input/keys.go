// internal/input/keys.go
package input

// Key — логическая клавиша игры, не зависящая от бэкенда.
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyToggleTargeting
	KeyPause
	KeyClose
	keyCount
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyToggleTargeting:
		return "toggle-targeting"
	case KeyPause:
		return "pause"
	case KeyClose:
		return "close"
	default:
		return "unknown"
	}
}

// KeySet — множество зажатых клавиш на одном кадре.
type KeySet uint8

// Keys собирает множество из перечисленных клавиш.
func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

func (s KeySet) Has(k Key) bool { return k < keyCount && s&(1<<k) != 0 }

func (s KeySet) With(k Key) KeySet {
	if k >= keyCount {
		return s
	}
	return s | 1<<k
}
