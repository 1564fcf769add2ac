package render

import (
	"go-fireball/internal/component"
	"image/color"
	"testing"
)

func TestRecorderKeepsOrder(t *testing.T) {
	var r Recorder
	red := color.RGBA{255, 0, 0, 255}

	r.Clear(color.RGBA{255, 255, 255, 255})
	r.DrawCircle(component.Vector2{X: 1, Y: 2}, 3, red)
	r.DrawPoly(component.Vector2{X: 4, Y: 5}, 3, 50, 180, red)
	r.DrawText("hello", 10, 10, 30, red)
	r.DrawFPS(700, 10)

	if len(r.Commands) != 5 {
		t.Fatalf("Expected 5 commands, got %d", len(r.Commands))
	}
	kinds := []CommandKind{CmdClear, CmdCircle, CmdPoly, CmdText, CmdFPS}
	for i, k := range kinds {
		if r.Commands[i].Kind != k {
			t.Errorf("Expected command %d to be kind %d, got %d", i, k, r.Commands[i].Kind)
		}
	}

	poly := r.Filter(CmdPoly)[0]
	if poly.Sides != 3 || poly.Rotation != 180 || poly.Radius != 50 {
		t.Errorf("Expected triangle r=50 rot=180, got %+v", poly)
	}
	if texts := r.Texts(); len(texts) != 1 || texts[0] != "hello" {
		t.Errorf("Expected [hello], got %v", texts)
	}

	r.Reset()
	if len(r.Commands) != 0 {
		t.Errorf("Expected empty recorder after reset, got %d", len(r.Commands))
	}
}
