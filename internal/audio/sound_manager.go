// internal/audio/sound_manager.go
package audio

import (
	"log"
	"sync"
	"time"

	"go-fireball/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager озвучивает события симуляции. Без инициализированного
// динамика события просто игнорируются.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager создаёт менеджер звука с громкостью в [0, 1]
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize открывает аудиоустройство
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Subscribe подписывает менеджер на звучащие события.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	d.Subscribe(sm, event.ProjectileFired, event.PlayerHit, event.TargetingToggled)
}

func (sm *SoundManager) OnEvent(e event.Event) {
	var (
		s   beep.Streamer
		err error
	)
	switch e.Type {
	case event.ProjectileFired:
		s, err = FireSound(sampleRate, sm.volume)
	case event.PlayerHit:
		s, err = HitSound(sampleRate, sm.volume)
	case event.TargetingToggled:
		lead, _ := e.Data.(bool)
		s, err = ToggleSound(sampleRate, sm.volume, lead)
	default:
		return
	}
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}
	sm.play(s)
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Cleanup глушит все звуки
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}
