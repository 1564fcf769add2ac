// internal/backend/rlbackend/raylib.go
package rlbackend

import (
	"go-fireball/internal/component"
	"go-fireball/internal/config"
	"go-fireball/internal/input"
	"go-fireball/internal/interfaces"
	"go-fireball/internal/render"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Клавиши raylib для каждой логической клавиши.
var keyBindings = map[input.Key][]int32{
	input.KeyUp:              {rl.KeyW, rl.KeyUp},
	input.KeyDown:            {rl.KeyS, rl.KeyDown},
	input.KeyToggleTargeting: {rl.KeyR},
	input.KeyPause:           {rl.KeyP},
	input.KeyClose:           {rl.KeyEscape},
}

// pollKeys собирает снимок клавиш через isDown.
func pollKeys(isDown func(key int32) bool) input.KeySet {
	var held input.KeySet
	for k, codes := range keyBindings {
		for _, code := range codes {
			if isDown(code) {
				held = held.With(k)
				break
			}
		}
	}
	return held
}

// Backend открывает окно raylib.
type Backend struct {
	Title     string
	VSync     bool
	TargetFPS int
}

var _ interfaces.Runner = (*Backend)(nil)

func New(s config.WindowSettings) *Backend {
	return &Backend{
		Title:     s.Title,
		VSync:     s.VSync,
		TargetFPS: s.TargetFPS,
	}
}

func (b *Backend) Run(loop interfaces.FrameLoop) error {
	if b.VSync {
		rl.SetConfigFlags(rl.FlagVsyncHint)
	}
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, b.Title)
	defer rl.CloseWindow()

	// Escape обрабатывает сама игра
	rl.SetExitKey(0)
	rl.SetTargetFPS(int32(b.TargetFPS))

	r := renderer{}
	for !rl.WindowShouldClose() {
		if !loop.Update(float64(rl.GetFrameTime()), pollKeys(rl.IsKeyDown)) {
			break
		}

		rl.BeginDrawing()
		loop.Draw(r)
		rl.EndDrawing()
	}
	return nil
}

// renderer выполняет команды отрисовки между BeginDrawing и EndDrawing.
type renderer struct{}

var _ render.Renderer = renderer{}

func (renderer) Clear(c color.RGBA) {
	rl.ClearBackground(c)
}

func (renderer) DrawCircle(center component.Vector2, radius float64, c color.RGBA) {
	rl.DrawCircleV(toVector2(center), float32(radius), c)
}

func (renderer) DrawPoly(center component.Vector2, sides int, radius, rotationDeg float64, c color.RGBA) {
	rl.DrawPoly(toVector2(center), int32(sides), float32(radius), float32(rotationDeg), c)
}

func (renderer) DrawText(text string, x, y, fontSize int, c color.RGBA) {
	rl.DrawText(text, int32(x), int32(y), int32(fontSize), c)
}

func (renderer) DrawFPS(x, y int) {
	rl.DrawFPS(int32(x), int32(y))
}

func toVector2(v component.Vector2) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}
