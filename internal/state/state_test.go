package state

import (
	game "go-fireball/internal/app"
	"go-fireball/internal/input"
	"go-fireball/internal/render"
	"go-fireball/internal/utils"
	"testing"
)

const frame = 0.01

func newTestMachine(t *testing.T) (*StateMachine, *GameState) {
	t.Helper()
	sm := NewStateMachine()
	gs := NewGameState(sm, game.NewGame(utils.NewPRNGService(1), false))
	sm.SetState(gs)
	return sm, gs
}

type recordingState struct {
	entered, exited, updated, drawn int
}

func (s *recordingState) Enter()                         { s.entered++ }
func (s *recordingState) Update(float64, *input.Tracker) { s.updated++ }
func (s *recordingState) Draw(render.Renderer)           { s.drawn++ }
func (s *recordingState) Exit()                          { s.exited++ }

func TestSetStateCallsEnterAndExit(t *testing.T) {
	sm := NewStateMachine()
	first := &recordingState{}
	second := &recordingState{}

	sm.SetState(first)
	sm.SetState(second)

	if first.entered != 1 || first.exited != 1 {
		t.Errorf("Expected first state entered and exited once, got %d/%d", first.entered, first.exited)
	}
	if second.entered != 1 || second.exited != 0 {
		t.Errorf("Expected second state entered once and still active, got %d/%d", second.entered, second.exited)
	}
	if sm.Current() != second {
		t.Error("Expected second state to be current")
	}
}

func TestCloseKeyStopsLoop(t *testing.T) {
	sm := NewStateMachine()
	st := &recordingState{}
	sm.SetState(st)

	if !sm.Update(frame, 0) {
		t.Fatal("Expected loop to continue without close key")
	}
	if sm.Update(frame, input.Keys(input.KeyClose)) {
		t.Error("Expected loop to stop on close key")
	}
	if st.updated != 1 {
		t.Errorf("Expected state not updated on closing frame, got %d updates", st.updated)
	}
}

func TestEmptyMachineIsSafe(t *testing.T) {
	sm := NewStateMachine()
	if !sm.Update(frame, 0) {
		t.Error("Expected empty machine to keep running")
	}
	sm.Draw(&render.Recorder{})
}

func TestGameStateMovesPlayer(t *testing.T) {
	sm, gs := newTestMachine(t)
	startY := gs.Game().World.Player.Position.Y

	sm.Update(0.1, input.Keys(input.KeyUp))

	// 350 * 0.1 = 35
	if got := gs.Game().World.Player.Position.Y; got != startY-35 {
		t.Errorf("Expected player Y %f, got %f", startY-35, got)
	}
}

func TestGameStateToggleOnPressOnly(t *testing.T) {
	sm, gs := newTestMachine(t)
	tower := gs.Game().World.Tower

	sm.Update(frame, input.Keys(input.KeyToggleTargeting))
	if !tower.UseRegression {
		t.Fatal("Expected targeting toggled on press")
	}

	// Удержание не переключает повторно
	sm.Update(frame, input.Keys(input.KeyToggleTargeting))
	if !tower.UseRegression {
		t.Error("Expected held key not to toggle again")
	}

	sm.Update(frame, 0)
	sm.Update(frame, input.Keys(input.KeyToggleTargeting))
	if tower.UseRegression {
		t.Error("Expected second press to toggle back")
	}
}

func TestToggleTriggersIndicatorPulse(t *testing.T) {
	sm, gs := newTestMachine(t)
	gameTime := gs.Game().World.GameTime

	sm.Update(frame, input.Keys(input.KeyToggleTargeting))

	// Переключение происходит до продвижения времени на этом кадре
	indicator := gs.hud.Indicator
	if got := indicator.CurrentRadius(gameTime); got <= indicator.Radius {
		t.Errorf("Expected pulsing radius above %f, got %f", indicator.Radius, got)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	sm, gs := newTestMachine(t)
	world := gs.Game().World

	sm.Update(frame, input.Keys(input.KeyPause))
	if _, ok := sm.Current().(*PauseState); !ok {
		t.Fatalf("Expected pause state, got %T", sm.Current())
	}

	frozenTime := world.GameTime
	frozenY := world.Player.Position.Y
	for i := 0; i < 10; i++ {
		sm.Update(frame, input.Keys(input.KeyDown))
	}
	if world.GameTime != frozenTime {
		t.Errorf("Expected game time frozen at %f, got %f", frozenTime, world.GameTime)
	}
	if world.Player.Position.Y != frozenY {
		t.Errorf("Expected player frozen at %f, got %f", frozenY, world.Player.Position.Y)
	}

	sm.Update(frame, 0)
	sm.Update(frame, input.Keys(input.KeyPause))
	if sm.Current() != State(gs) {
		t.Fatalf("Expected game state after unpause, got %T", sm.Current())
	}

	sm.Update(frame, 0)
	if world.GameTime <= frozenTime {
		t.Error("Expected game time to advance after unpause")
	}
}

func TestPauseDrawsOverlay(t *testing.T) {
	sm, _ := newTestMachine(t)
	sm.Update(frame, input.Keys(input.KeyPause))

	rec := &render.Recorder{}
	sm.Draw(rec)

	found := false
	for _, text := range rec.Texts() {
		if text == "PAUSED" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected PAUSED overlay, got %v", rec.Texts())
	}
	if len(rec.Filter(render.CmdClear)) != 1 {
		t.Error("Expected the frozen arena to be drawn underneath")
	}
}

func TestGameStateDrawsHUD(t *testing.T) {
	sm, _ := newTestMachine(t)
	sm.Update(frame, 0)

	rec := &render.Recorder{}
	sm.Draw(rec)

	texts := rec.Texts()
	if len(texts) < 2 || texts[0] != "regression targeting: false" {
		t.Errorf("Expected targeting label first, got %v", texts)
	}
	if len(rec.Filter(render.CmdFPS)) != 1 {
		t.Error("Expected FPS counter drawn")
	}
}
