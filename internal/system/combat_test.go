package system

import (
	"go-fireball/internal/event"
	"go-fireball/internal/utils"
	"math"
	"testing"
)

// TestFireWhenReady verifies a ready tower spawns one leftward shot and re-arms
func TestFireWhenReady(t *testing.T) {
	w, d, log := newTestWorld()
	s := NewCombatSystem(w, utils.NewPRNGService(1), d)

	s.Update(0.1)

	buf := w.Tower.Projectiles
	if buf.Len() != 1 {
		t.Fatalf("Expected 1 projectile, got %d", buf.Len())
	}
	proj := buf.At(0)
	if proj.Position != w.Tower.Position {
		t.Errorf("Expected spawn at tower %v, got %v", w.Tower.Position, proj.Position)
	}
	if proj.Velocity.X != -1500 || math.Abs(proj.Velocity.Y) > 1e-9 {
		t.Errorf("Expected velocity (-1500, 0), got %v", proj.Velocity)
	}
	if proj.Radius != 5 {
		t.Errorf("Expected radius 5, got %f", proj.Radius)
	}

	timer := w.Tower.FireTimer
	if timer < 0.4 || timer >= 1.2 {
		t.Errorf("Expected fire timer in [0.4, 1.2), got %f", timer)
	}
	if log.count(event.ProjectileFired) != 1 {
		t.Errorf("Expected 1 fired event, got %d", log.count(event.ProjectileFired))
	}
}

// TestCooldownDecrements verifies the timer counts down without firing
func TestCooldownDecrements(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewCombatSystem(w, utils.NewPRNGService(1), d)
	w.Tower.FireTimer = 0.5

	s.Update(0.1)

	if w.Tower.Projectiles.Len() != 0 {
		t.Errorf("Expected no shot during cooldown, got %d", w.Tower.Projectiles.Len())
	}
	if math.Abs(w.Tower.FireTimer-0.4) > 1e-12 {
		t.Errorf("Expected timer 0.4, got %f", w.Tower.FireTimer)
	}
}

// TestCooldownCrossesZeroThenFires verifies firing waits for the next frame after expiry
func TestCooldownCrossesZeroThenFires(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewCombatSystem(w, utils.NewPRNGService(1), d)
	w.Tower.FireTimer = 0.05

	s.Update(0.1)
	if w.Tower.Projectiles.Len() != 0 {
		t.Fatal("Expected no shot on the frame the timer expires")
	}
	if w.Tower.FireTimer > 0 {
		t.Fatalf("Expected timer to reach <= 0, got %f", w.Tower.FireTimer)
	}

	s.Update(0.1)
	if w.Tower.Projectiles.Len() != 1 {
		t.Errorf("Expected a shot on the following frame, got %d", w.Tower.Projectiles.Len())
	}
}

// TestFireIntoFullBufferDropsShot verifies overflow is silent and still re-arms the tower
func TestFireIntoFullBufferDropsShot(t *testing.T) {
	w, d, log := newTestWorld()
	s := NewCombatSystem(w, utils.NewPRNGService(1), d)
	buf := w.Tower.Projectiles
	for i := 0; i < buf.Cap(); i++ {
		buf.Push(projectileAt(float64(600-i*10), 300))
	}
	before := buf.Items()

	s.Update(0.1)

	if buf.Len() != 10 {
		t.Errorf("Expected buffer to stay at 10, got %d", buf.Len())
	}
	after := buf.Items()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Expected projectile %d untouched, got %v", i, after[i])
		}
	}
	if log.count(event.ProjectileDropped) != 1 || log.count(event.ProjectileFired) != 0 {
		t.Errorf("Expected 1 dropped and 0 fired events, got %v", log.types)
	}
	if w.Tower.FireTimer < 0.4 {
		t.Errorf("Expected timer re-armed, got %f", w.Tower.FireTimer)
	}
}

// TestFireTimerResetBound verifies every reset over a long run lies in [0.4, 1.2)
func TestFireTimerResetBound(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewCombatSystem(w, utils.NewPRNGService(0), d)

	resets := 0
	for i := 0; i < 5000; i++ {
		if !w.Tower.Cooldown() {
			s.Update(0.05)
			resets++
			if w.Tower.FireTimer < 0.4 || w.Tower.FireTimer >= 1.2 {
				t.Fatalf("Expected reset in [0.4, 1.2), got %f", w.Tower.FireTimer)
			}
			w.Tower.Projectiles.Clear()
			continue
		}
		s.Update(0.05)
	}
	if resets == 0 {
		t.Error("Expected at least one reset")
	}
}
