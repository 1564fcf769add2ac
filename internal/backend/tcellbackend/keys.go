// internal/backend/tcellbackend/keys.go
package tcellbackend

import (
	"go-fireball/internal/input"
	"time"

	"github.com/gdamore/tcell/v2"
)

// heldKeys эмулирует зажатые клавиши: терминал присылает только нажатия
// и автоповтор, поэтому клавиша считается зажатой hold после последнего события.
type heldKeys struct {
	hold time.Duration
	last map[input.Key]time.Time
}

func newHeldKeys(hold time.Duration) *heldKeys {
	return &heldKeys{
		hold: hold,
		last: make(map[input.Key]time.Time),
	}
}

// mapKey переводит событие терминала в логическую клавишу.
func mapKey(key tcell.Key, r rune) (input.Key, bool) {
	switch key {
	case tcell.KeyUp:
		return input.KeyUp, true
	case tcell.KeyDown:
		return input.KeyDown, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.KeyClose, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return input.KeyUp, true
		case 's', 'S':
			return input.KeyDown, true
		case 'r', 'R':
			return input.KeyToggleTargeting, true
		case 'p', 'P':
			return input.KeyPause, true
		}
	}
	return 0, false
}

func (h *heldKeys) handleKey(key tcell.Key, r rune, now time.Time) {
	if k, ok := mapKey(key, r); ok {
		h.last[k] = now
	}
}

// held возвращает клавиши, событие которых пришло не раньше now-hold.
func (h *heldKeys) held(now time.Time) input.KeySet {
	var s input.KeySet
	for k, t := range h.last {
		if now.Sub(t) < h.hold {
			s = s.With(k)
		}
	}
	return s
}
