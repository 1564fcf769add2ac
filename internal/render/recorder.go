// internal/render/recorder.go
package render

import (
	"go-fireball/internal/component"
	"image/color"
)

// CommandKind — тип записанной команды.
type CommandKind int

const (
	CmdClear CommandKind = iota
	CmdCircle
	CmdPoly
	CmdText
	CmdFPS
)

// Command: одна записанная команда отрисовки.
type Command struct {
	Kind     CommandKind
	Center   component.Vector2
	Radius   float64
	Sides    int
	Rotation float64
	Text     string
	X, Y     int
	FontSize int
	Color    color.RGBA
}

// Recorder запоминает команды вместо отрисовки. Используется безголовым
// бэкендом и тестами.
type Recorder struct {
	Commands []Command
}

var _ Renderer = (*Recorder)(nil)

// Reset очищает список команд, сохраняя память.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

func (r *Recorder) Clear(c color.RGBA) {
	r.Commands = append(r.Commands, Command{Kind: CmdClear, Color: c})
}

func (r *Recorder) DrawCircle(center component.Vector2, radius float64, c color.RGBA) {
	r.Commands = append(r.Commands, Command{Kind: CmdCircle, Center: center, Radius: radius, Color: c})
}

func (r *Recorder) DrawPoly(center component.Vector2, sides int, radius, rotationDeg float64, c color.RGBA) {
	r.Commands = append(r.Commands, Command{Kind: CmdPoly, Center: center, Sides: sides, Radius: radius, Rotation: rotationDeg, Color: c})
}

func (r *Recorder) DrawText(text string, x, y, fontSize int, c color.RGBA) {
	r.Commands = append(r.Commands, Command{Kind: CmdText, Text: text, X: x, Y: y, FontSize: fontSize, Color: c})
}

func (r *Recorder) DrawFPS(x, y int) {
	r.Commands = append(r.Commands, Command{Kind: CmdFPS, X: x, Y: y})
}

// Filter возвращает команды заданного типа в порядке записи.
func (r *Recorder) Filter(kind CommandKind) []Command {
	var out []Command
	for _, c := range r.Commands {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Texts возвращает все выведенные строки.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Filter(CmdText) {
		out = append(out, c.Text)
	}
	return out
}
