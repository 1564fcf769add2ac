// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Имена поддерживаемых бэкендов отрисовки.
const (
	BackendRaylib   = "raylib"
	BackendEbiten   = "ebiten"
	BackendTerminal = "terminal"
	BackendHeadless = "headless"
)

// Settings хранит параметры запуска, которые можно переопределить YAML-файлом.
// Игровые константы (скорости, радиусы, ёмкость буфера) сюда не входят.
type Settings struct {
	Backend  string           `yaml:"backend"`
	Window   WindowSettings   `yaml:"window"`
	Seed     int64            `yaml:"seed"`
	Lead     bool             `yaml:"lead_targeting"`
	Audio    AudioSettings    `yaml:"audio"`
	Terminal TerminalSettings `yaml:"terminal"`
	Headless HeadlessSettings `yaml:"headless"`
}

type WindowSettings struct {
	Title     string `yaml:"title"`
	VSync     bool   `yaml:"vsync"`
	TargetFPS int    `yaml:"target_fps"`
}

type AudioSettings struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// У терминала нет событий отпускания клавиш, поэтому
// клавиша считается зажатой HoldMs миллисекунд после последнего нажатия.
type TerminalSettings struct {
	HoldMs int `yaml:"hold_ms"`
}

type HeadlessSettings struct {
	Frames    int     `yaml:"frames"`
	FrameTime float64 `yaml:"frame_time"`
}

// DefaultSettings возвращает настройки, совпадающие с исходной игрой.
func DefaultSettings() *Settings {
	return &Settings{
		Backend: BackendRaylib,
		Window: WindowSettings{
			Title:     WindowTitle,
			VSync:     true,
			TargetFPS: TargetFPS,
		},
		Audio: AudioSettings{
			Enabled: false,
			Volume:  0.5,
		},
		Terminal: TerminalSettings{HoldMs: 120},
		Headless: HeadlessSettings{
			Frames:    600,
			FrameTime: 1.0 / TargetFPS,
		},
	}
}

// LoadSettings читает YAML поверх значений по умолчанию.
// Пустой путь или отсутствующий файл дают настройки по умолчанию.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate проверяет значения, которые бэкенды не умеют обработать.
func (s *Settings) Validate() error {
	switch s.Backend {
	case BackendRaylib, BackendEbiten, BackendTerminal, BackendHeadless:
	default:
		return fmt.Errorf("unknown backend %q", s.Backend)
	}
	if s.Window.TargetFPS <= 0 {
		return fmt.Errorf("target_fps must be positive, got %d", s.Window.TargetFPS)
	}
	if s.Audio.Volume < 0 || s.Audio.Volume > 1 {
		return fmt.Errorf("audio volume must be in [0, 1], got %g", s.Audio.Volume)
	}
	if s.Terminal.HoldMs <= 0 {
		return fmt.Errorf("terminal hold_ms must be positive, got %d", s.Terminal.HoldMs)
	}
	if s.Headless.FrameTime <= 0 {
		return fmt.Errorf("headless frame_time must be positive, got %g", s.Headless.FrameTime)
	}
	return nil
}
