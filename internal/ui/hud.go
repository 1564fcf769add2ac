// internal/ui/hud.go
package ui

import (
	"fmt"
	"go-fireball/internal/component"
	"go-fireball/internal/config"
	"go-fireball/internal/render"
)

// HUD рисует текстовую информацию поверх арены.
type HUD struct {
	Indicator *StateIndicator
}

func NewHUD() *HUD {
	return &HUD{
		Indicator: NewStateIndicator(
			config.ScreenWidth-config.FPSOffsetX-2*config.IndicatorRadius,
			config.FPSY+config.IndicatorRadius,
			config.IndicatorRadius,
		),
	}
}

// TargetingLabel — подпись режима прицеливания.
func TargetingLabel(lead bool) string {
	return fmt.Sprintf("regression targeting: %t", lead)
}

// StatsLabel — строка счётчиков сессии.
func StatsLabel(s component.Stats) string {
	return fmt.Sprintf("hits: %d  dodged: %d  fired: %d  dropped: %d", s.Hits, s.Dodged, s.Fired, s.Dropped)
}

func (h *HUD) Draw(r render.Renderer, lead bool, stats component.Stats, gameTime float64) {
	r.DrawText(TargetingLabel(lead), config.HUDTextX, config.HUDTextY, config.HUDFontSize, config.TextColor)
	r.DrawText(StatsLabel(stats), config.HUDTextX, config.HUDStatsY, config.HUDStatsSize, config.TextColor)
	h.Indicator.Draw(r, lead, gameTime)
	r.DrawFPS(config.ScreenWidth-config.FPSOffsetX, config.FPSY)
}
