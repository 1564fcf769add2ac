// internal/backend/ebitenbackend/ebiten.go
package ebitenbackend

import (
	"fmt"
	"go-fireball/internal/component"
	"go-fireball/internal/config"
	"go-fireball/internal/input"
	"go-fireball/internal/interfaces"
	"go-fireball/internal/render"
	"go-fireball/internal/utils"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var keyBindings = map[input.Key][]ebiten.Key{
	input.KeyUp:              {ebiten.KeyW, ebiten.KeyArrowUp},
	input.KeyDown:            {ebiten.KeyS, ebiten.KeyArrowDown},
	input.KeyToggleTargeting: {ebiten.KeyR},
	input.KeyPause:           {ebiten.KeyP},
	input.KeyClose:           {ebiten.KeyEscape},
}

var fpsColor = color.RGBA{0, 158, 47, 255}

func pollKeys(isDown func(ebiten.Key) bool) input.KeySet {
	var held input.KeySet
	for k, keys := range keyBindings {
		for _, key := range keys {
			if isDown(key) {
				held = held.With(k)
				break
			}
		}
	}
	return held
}

// clampDelta ограничивает шаг, чтобы после паузы окна снаряды не
// перепрыгивали игрока.
func clampDelta(dt float64) float64 {
	return utils.Clamp(dt, 0, config.MaxDeltaTime)
}

// Backend открывает окно ebiten. ebiten сам владеет циклом, поэтому FrameLoop
// вызывается из Update/Draw.
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
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(b.Title)
	ebiten.SetVsyncEnabled(b.VSync)
	ebiten.SetTPS(b.TargetFPS)

	app := &appGame{
		loop:           loop,
		lastUpdateTime: time.Now(),
		renderer: &renderer{
			poly: newPolygonRenderer(),
			face: basicfont.Face7x13,
		},
	}
	err := ebiten.RunGame(app)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

type appGame struct {
	loop           interfaces.FrameLoop
	lastUpdateTime time.Time
	renderer       *renderer
}

func (a *appGame) Update() error {
	now := time.Now()
	deltaTime := clampDelta(now.Sub(a.lastUpdateTime).Seconds())
	a.lastUpdateTime = now

	if !a.loop.Update(deltaTime, pollKeys(ebiten.IsKeyPressed)) {
		return ebiten.Termination
	}
	return nil
}

func (a *appGame) Draw(screen *ebiten.Image) {
	a.renderer.screen = screen
	a.loop.Draw(a.renderer)
}

func (a *appGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// renderer рисует на экран текущего кадра.
type renderer struct {
	screen *ebiten.Image
	poly   *polygonRenderer
	face   font.Face
}

var _ render.Renderer = (*renderer)(nil)

func (r *renderer) Clear(c color.RGBA) {
	r.screen.Fill(c)
}

func (r *renderer) DrawCircle(center component.Vector2, radius float64, c color.RGBA) {
	vector.DrawFilledCircle(r.screen, float32(center.X), float32(center.Y), float32(radius), c, true)
}

func (r *renderer) DrawPoly(center component.Vector2, sides int, radius, rotationDeg float64, c color.RGBA) {
	r.poly.DrawRegular(r.screen, center.X, center.Y, sides, radius, rotationDeg, c)
}

// DrawText масштабирует растровый шрифт до fontSize, y задаёт верх строки.
func (r *renderer) DrawText(s string, x, y, fontSize int, c color.RGBA) {
	scale := textScale(r.face, fontSize)
	ascent := float64(r.face.Metrics().Ascent.Ceil())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y)+ascent*scale)
	op.ColorScale.ScaleWithColor(c)
	text.DrawWithOptions(r.screen, s, r.face, op)
}

func (r *renderer) DrawFPS(x, y int) {
	r.DrawText(fmt.Sprintf("%d FPS", int(ebiten.ActualFPS()+0.5)), x, y, 20, fpsColor)
}

func textScale(face font.Face, fontSize int) float64 {
	h := face.Metrics().Height.Ceil()
	if h <= 0 || fontSize <= 0 {
		return 1
	}
	return float64(fontSize) / float64(h)
}
