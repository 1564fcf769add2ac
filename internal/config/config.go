// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	WindowTitle  = "Fireball"
	TargetFPS    = 144
	MaxDeltaTime = 0.06 // потолок dt для бэкендов, которые считают время сами

	PlayerSpeed  = 350.0 // pixels per second
	PlayerRadius = 50.0
	PlayerStartX = 100.0
	PlayerStartY = ScreenHeight / 2

	TowerRadius  = 50.0
	TowerOffsetX = 100.0 // отступ башни от правого края
	TowerSides   = 3

	ProjectileSpeed      = 1500.0 // pixels per second
	ProjectileRadius     = 5.0
	ProjectileBufferSize = 10

	// Перезарядка выбирается случайно в [FireCooldownMin, FireCooldownMin+FireCooldownSpanMs/1000).
	FireCooldownMin    = 0.4
	FireCooldownSpanMs = 800

	HitFlashDuration = 0.25

	HUDTextX        = 10
	HUDTextY        = 10
	HUDFontSize     = 30
	HUDStatsY       = 50
	HUDStatsSize    = 20
	FPSOffsetX      = 100
	FPSY            = 10
	IndicatorRadius = 10.0
	IndicatorPulse  = 0.3
)

var (
	BackgroundColor = color.RGBA{255, 255, 255, 255}
	PlayerColor     = color.RGBA{0, 228, 48, 255}
	PlayerHitColor  = color.RGBA{230, 41, 55, 255}
	TowerColor      = color.RGBA{230, 41, 55, 255}
	ProjectileColor = color.RGBA{255, 161, 0, 255}
	TextColor       = color.RGBA{0, 0, 0, 255}
	PausedTextColor = color.RGBA{80, 80, 80, 255}
	LeadOnColor     = color.RGBA{0, 121, 241, 255}
	LeadOffColor    = color.RGBA{130, 130, 130, 255}
)
