// internal/ui/indicator.go
package ui

import (
	"go-fireball/internal/component"
	"go-fireball/internal/config"
	"go-fireball/internal/render"
	"math"
)

// StateIndicator — кружок режима прицеливания, который «вспыхивает»
// (коротко увеличивается) при переключении.
type StateIndicator struct {
	X, Y       float64
	Radius     float64
	lastToggle float64
	toggled    bool
}

func NewStateIndicator(x, y, radius float64) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// HandleToggle запоминает игровое время переключения.
func (i *StateIndicator) HandleToggle(gameTime float64) {
	i.lastToggle = gameTime
	i.toggled = true
}

// CurrentRadius возвращает радиус с учётом затухающей пульсации.
func (i *StateIndicator) CurrentRadius(gameTime float64) float64 {
	if !i.toggled {
		return i.Radius
	}
	elapsed := gameTime - i.lastToggle
	return i.Radius * (1.0 + config.IndicatorPulse*math.Exp(-elapsed*8))
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(r render.Renderer, lead bool, gameTime float64) {
	c := config.LeadOffColor
	if lead {
		c = config.LeadOnColor
	}
	r.DrawCircle(component.Vector2{X: i.X, Y: i.Y}, i.CurrentRadius(gameTime), c)
}
