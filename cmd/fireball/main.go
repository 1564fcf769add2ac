// cmd/fireball/main.go
package main

import (
	"flag"
	"fmt"
	game "go-fireball/internal/app"
	"go-fireball/internal/audio"
	"go-fireball/internal/backend/ebitenbackend"
	"go-fireball/internal/backend/headless"
	"go-fireball/internal/backend/rlbackend"
	"go-fireball/internal/backend/tcellbackend"
	"go-fireball/internal/config"
	"go-fireball/internal/interfaces"
	"go-fireball/internal/state"
	"go-fireball/internal/utils"
	"log"
)

// newRunner выбирает бэкенд по имени из настроек.
func newRunner(s *config.Settings) (interfaces.Runner, error) {
	switch s.Backend {
	case config.BackendRaylib:
		return rlbackend.New(s.Window), nil
	case config.BackendEbiten:
		return ebitenbackend.New(s.Window), nil
	case config.BackendTerminal:
		return tcellbackend.New(s), nil
	case config.BackendHeadless:
		return headless.New(s.Headless.Frames, s.Headless.FrameTime), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", s.Backend)
	}
}

func main() {
	// --- Флаги командной строки ---
	configPath := flag.String("config", "", "Path to YAML settings file")
	backend := flag.String("backend", "", "Render backend: raylib, ebiten, terminal, headless")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 for time-based")
	frames := flag.Int("frames", 0, "Frames to simulate with the headless backend")
	lead := flag.Bool("lead", false, "Start with regression targeting enabled")
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	// Флаги перекрывают файл, только если заданы явно
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			settings.Backend = *backend
		case "seed":
			settings.Seed = *seed
		case "frames":
			settings.Headless.Frames = *frames
		case "lead":
			settings.Lead = *lead
		case "mute":
			settings.Audio.Enabled = !*mute
		}
	})
	if err := settings.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	runner, err := newRunner(settings)
	if err != nil {
		log.Fatal(err)
	}

	g := game.NewGame(utils.NewPRNGService(settings.Seed), settings.Lead)

	if settings.Audio.Enabled && settings.Backend != config.BackendHeadless {
		sound := audio.NewSoundManager(settings.Audio.Volume)
		if err := sound.Initialize(); err != nil {
			// Игра работает и без звука
			log.Printf("Audio initialization failed: %v", err)
		} else {
			sound.Subscribe(g.EventDispatcher)
			defer sound.Cleanup()
		}
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, g))

	if err := runner.Run(sm); err != nil {
		log.Fatalf("Backend %s failed: %v", settings.Backend, err)
	}

	if settings.Backend == config.BackendHeadless {
		stats := g.World.Stats
		log.Printf("simulated %.2fs: fired=%d dropped=%d hits=%d dodged=%d",
			g.World.GameTime, stats.Fired, stats.Dropped, stats.Hits, stats.Dodged)
	}
	log.Println("program exit..")
}
