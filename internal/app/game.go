// internal/app/game.go
package app

import (
	"go-fireball/internal/config"
	"go-fireball/internal/entity"
	"go-fireball/internal/event"
	"go-fireball/internal/render"
	"go-fireball/internal/system"
	"go-fireball/internal/utils"
)

// Game holds the simulation state and the systems that advance it.
type Game struct {
	World              *entity.World
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	PlayerSystem       *system.PlayerSystem
	AimSystem          *system.AimSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	StatsSystem        *system.StatsSystem
	VisualEffectSystem *system.VisualEffectSystem
	RenderSystem       *system.RenderSystem
}

// NewGame builds a fresh arena. lead sets the initial targeting mode.
func NewGame(rng *utils.PRNGService, lead bool) *Game {
	world := entity.NewWorld()
	world.Tower.UseRegression = lead
	world.Tower.LastPlayerPosition = world.Player.Position

	eventDispatcher := event.NewDispatcher()
	return &Game{
		World:              world,
		EventDispatcher:    eventDispatcher,
		Rng:                rng,
		PlayerSystem:       system.NewPlayerSystem(world),
		AimSystem:          system.NewAimSystem(world),
		CombatSystem:       system.NewCombatSystem(world, rng, eventDispatcher),
		ProjectileSystem:   system.NewProjectileSystem(world, eventDispatcher),
		StatsSystem:        system.NewStatsSystem(world, eventDispatcher),
		VisualEffectSystem: system.NewVisualEffectSystem(world, eventDispatcher),
		RenderSystem:       system.NewRenderSystem(world),
	}
}

// Update advances the simulation by one frame. Order matters: the player
// moves, the tower aims at the new position, fires or cools down, then all
// projectiles advance and are checked against the player.
func (g *Game) Update(deltaTime float64, controls system.PlayerControls) {
	g.World.GameTime += deltaTime
	g.PlayerSystem.Update(deltaTime, controls)
	g.AimSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.VisualEffectSystem.Update(deltaTime)
}

// ToggleTargeting flips lead targeting regardless of the fire cooldown.
func (g *Game) ToggleTargeting() {
	tower := g.World.Tower
	tower.UseRegression = !tower.UseRegression
	g.EventDispatcher.Dispatch(event.Event{Type: event.TargetingToggled, Data: tower.UseRegression})
}

// Draw renders the arena. HUD is drawn by the state on top.
func (g *Game) Draw(r render.Renderer) {
	r.Clear(config.BackgroundColor)
	g.RenderSystem.Draw(r)
}
