package ebitenbackend

import (
	"go-fireball/internal/config"
	"go-fireball/internal/input"
	"go-fireball/internal/render"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"
)

func TestPollKeys(t *testing.T) {
	down := map[ebiten.Key]bool{ebiten.KeyArrowUp: true, ebiten.KeyR: true}
	got := pollKeys(func(k ebiten.Key) bool { return down[k] })

	want := input.Keys(input.KeyUp, input.KeyToggleTargeting)
	if got != want {
		t.Errorf("Expected key set %08b, got %08b", want, got)
	}
}

func TestClampDelta(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.01, 0.01},
		{config.MaxDeltaTime, config.MaxDeltaTime},
		{1.5, config.MaxDeltaTime},
		{-0.1, 0},
	}
	for _, tt := range tests {
		if got := clampDelta(tt.in); got != tt.want {
			t.Errorf("clampDelta(%f): expected %f, got %f", tt.in, tt.want, got)
		}
	}
}

func TestTextScale(t *testing.T) {
	face := basicfont.Face7x13
	if got := textScale(face, 13); got != 1 {
		t.Errorf("Expected scale 1 for native size, got %f", got)
	}
	if got := textScale(face, 26); got != 2 {
		t.Errorf("Expected scale 2 for double size, got %f", got)
	}
	if got := textScale(face, 0); got != 1 {
		t.Errorf("Expected scale 1 for invalid size, got %f", got)
	}
}

type stopLoop struct{ updates int }

func (l *stopLoop) Update(float64, input.KeySet) bool { l.updates++; return false }
func (l *stopLoop) Draw(render.Renderer)              {}

func TestUpdateTerminatesWhenLoopStops(t *testing.T) {
	loop := &stopLoop{}
	app := &appGame{loop: loop}

	if err := app.Update(); err != ebiten.Termination {
		t.Errorf("Expected ebiten.Termination, got %v", err)
	}
	if loop.updates != 1 {
		t.Errorf("Expected one update, got %d", loop.updates)
	}
}

func TestLayoutIsFixed(t *testing.T) {
	w, h := (&appGame{}).Layout(1920, 1080)
	if w != config.ScreenWidth || h != config.ScreenHeight {
		t.Errorf("Expected %dx%d, got %dx%d", config.ScreenWidth, config.ScreenHeight, w, h)
	}
}
