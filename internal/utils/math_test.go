package utils

import (
	"math"
	"testing"
)

func TestRadToDeg(t *testing.T) {
	if got := RadToDeg(math.Pi); got != 180 {
		t.Errorf("Expected 180, got %f", got)
	}
	if got := RadToDeg(0); got != 0 {
		t.Errorf("Expected 0, got %f", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{-1, 0},
		{0.5, 0.5},
		{2, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, 0, 1); got != tt.want {
			t.Errorf("Clamp(%f, 0, 1): expected %f, got %f", tt.v, tt.want, got)
		}
	}
}
