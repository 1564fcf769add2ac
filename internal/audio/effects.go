// internal/audio/effects.go
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// Параметры коротких сигналов
const (
	fireFreq      = 660.0
	fireDuration  = 40 * time.Millisecond
	hitFreq       = 110.0
	hitDuration   = 180 * time.Millisecond
	toggleLowFreq = 440.0
	toggleHiFreq  = 880.0
	toggleNote    = 60 * time.Millisecond
)

// tone: синус заданной частоты и длительности.
func tone(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sr.N(d), sine), nil
}

// math.Log2(0) = -Inf, поэтому нулевая громкость означает Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// FireSound: короткий щелчок выстрела башни.
func FireSound(sr beep.SampleRate, vol float64) (beep.Streamer, error) {
	s, err := tone(sr, fireFreq, fireDuration)
	if err != nil {
		return nil, err
	}
	return newVolume(s, vol*0.5), nil
}

// HitSound — низкий гул попадания.
func HitSound(sr beep.SampleRate, vol float64) (beep.Streamer, error) {
	s, err := tone(sr, hitFreq, hitDuration)
	if err != nil {
		return nil, err
	}
	return newVolume(s, vol), nil
}

// ToggleSound играет две ноты: вверх при включении упреждения, вниз при выключении.
func ToggleSound(sr beep.SampleRate, vol float64, lead bool) (beep.Streamer, error) {
	first, second := toggleLowFreq, toggleHiFreq
	if !lead {
		first, second = second, first
	}
	n1, err := tone(sr, first, toggleNote)
	if err != nil {
		return nil, err
	}
	n2, err := tone(sr, second, toggleNote)
	if err != nil {
		return nil, err
	}
	return newVolume(beep.Seq(n1, n2), vol), nil
}
