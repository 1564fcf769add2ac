package regression

import "testing"

func TestBackwardTwoSamples(t *testing.T) {
	var l Linear
	l.Backward(10.0, 14.0)

	if l.Slope != 4.0 {
		t.Errorf("Expected slope 4.0, got %f", l.Slope)
	}
	if got := l.Forward(2.5); got != 10.0 {
		t.Errorf("Expected Forward(2.5)=10.0, got %f", got)
	}
}

// TestBackwardTooFewSamples verifies 0 or 1 samples keep the previous slope
func TestBackwardTooFewSamples(t *testing.T) {
	l := Linear{Slope: 3.5}

	l.Backward()
	if l.Slope != 3.5 {
		t.Errorf("Expected slope unchanged at 3.5 after 0 samples, got %f", l.Slope)
	}

	l.Backward(42)
	if l.Slope != 3.5 {
		t.Errorf("Expected slope unchanged at 3.5 after 1 sample, got %f", l.Slope)
	}
}

func TestBackwardUsesEndpoints(t *testing.T) {
	var l Linear
	l.Backward(0, 100, -50, 9)

	if l.Slope != 3.0 {
		t.Errorf("Expected slope 3.0 from endpoints over 3 steps, got %f", l.Slope)
	}
}

func TestForwardThroughOrigin(t *testing.T) {
	l := Linear{Slope: -2}
	if got := l.Forward(0); got != 0 {
		t.Errorf("Expected Forward(0)=0, got %f", got)
	}
	if got := l.Forward(3); got != -6 {
		t.Errorf("Expected Forward(3)=-6, got %f", got)
	}
}
