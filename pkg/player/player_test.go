package player

import (
	"math"
	"testing"

	"github.com/golangdaddy/cyberdrift/pkg/geom"
	"github.com/golangdaddy/cyberdrift/pkg/input"
	"github.com/golangdaddy/cyberdrift/pkg/random"
)

type fakeTrack struct{ left, right float64 }

func (f fakeTrack) Left() float64  { return f.left }
func (f fakeTrack) Right() float64 { return f.right }

var testTrack = fakeTrack{left: 200, right: 600}

// createTestPlayer creates a player at road centre with default tuning
func createTestPlayer() *Player {
	return New(400, 500, DefaultConfig())
}

func TestNew_Defaults(t *testing.T) {
	p := createTestPlayer()
	if p.Health != 100 || p.Shield != 0 || p.Boost != 0 || p.Score != 0 {
		t.Errorf("Unexpected starting resources: health=%.0f shield=%.0f boost=%d score=%d",
			p.Health, p.Shield, p.Boost, p.Score)
	}
}

func TestUpdate_SpeedNeverExceedsMax(t *testing.T) {
	p := createTestPlayer()
	src := random.New(99)
	for tick := 0; tick < 5000; tick++ {
		in := input.Snapshot{
			Accelerate: random.Chance(src, 0.8),
			Brake:      random.Chance(src, 0.1),
			SteerLeft:  random.Chance(src, 0.3),
			SteerRight: random.Chance(src, 0.3),
		}
		p.Update(in, testTrack)
		if p.Speed() > p.cfg.MaxSpeed+1e-9 {
			t.Fatalf("Tick %d: speed %.4f exceeds max %.1f", tick, p.Speed(), p.cfg.MaxSpeed)
		}
	}
}

func TestUpdate_IdleAtRestIsIdempotent(t *testing.T) {
	p := createTestPlayer()
	start := p.Position
	for i := 0; i < 120; i++ {
		p.Update(input.Snapshot{}, testTrack)
	}
	if p.Position != start {
		t.Errorf("Expected position %+v unchanged, got %+v", start, p.Position)
	}
	if !p.Velocity.IsZero() {
		t.Errorf("Expected zero velocity, got %+v", p.Velocity)
	}
}

func TestUpdate_AccelerateMovesUp(t *testing.T) {
	p := createTestPlayer()
	p.Update(input.Snapshot{Accelerate: true}, testTrack)
	// 0.2 thrust minus 0.05 friction
	if math.Abs(p.Velocity.Y-(-0.15)) > 1e-9 || math.Abs(p.Velocity.X) > 1e-9 {
		t.Errorf("Expected velocity (0, -0.15), got %+v", p.Velocity)
	}
	if p.Position.Y >= 500 {
		t.Errorf("Expected car to move up the screen, got y=%.3f", p.Position.Y)
	}
}

func TestUpdate_FrictionSnapsToZero(t *testing.T) {
	p := createTestPlayer()
	p.Velocity = geom.Vec(0, -0.12)
	p.Update(input.Snapshot{}, testTrack)
	if !p.Velocity.IsZero() {
		t.Errorf("Expected creep below 0.1 to snap to zero, got %+v", p.Velocity)
	}
}

func TestUpdate_SteeringNeedsSpeed(t *testing.T) {
	p := createTestPlayer()
	p.Update(input.Snapshot{SteerLeft: true}, testTrack)
	if p.Angle != 0 {
		t.Errorf("Expected no steering at rest, got angle %.1f", p.Angle)
	}

	p.Velocity = geom.Vec(0, -5)
	p.Update(input.Snapshot{SteerLeft: true}, testTrack)
	if p.Angle != 3 {
		t.Errorf("Expected angle 3 after steering left, got %.1f", p.Angle)
	}
	p.Update(input.Snapshot{SteerRight: true}, testTrack)
	if p.Angle != 0 {
		t.Errorf("Expected angle back to 0, got %.1f", p.Angle)
	}
}

func TestUpdate_ConfinedToRoad(t *testing.T) {
	tests := []struct {
		name  string
		x, vx float64
		want  float64
	}{
		{"left wall", 225, -10, 220},
		{"right wall", 575, 10, 580},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := createTestPlayer()
			p.Position.X = tt.x
			p.Velocity = geom.Vec(tt.vx, -1)
			p.Update(input.Snapshot{}, testTrack)
			if p.Position.X != tt.want {
				t.Errorf("Expected x clamped to %.1f, got %.3f", tt.want, p.Position.X)
			}
			if p.Velocity.X != 0 {
				t.Errorf("Expected horizontal velocity zeroed, got %.3f", p.Velocity.X)
			}
			if p.Velocity.Y == 0 {
				t.Error("Expected vertical velocity to survive the wall hit")
			}
		})
	}
}

func TestUpdate_AlwaysWithinRoad(t *testing.T) {
	p := createTestPlayer()
	p.Velocity = geom.Vec(0, -8)
	src := random.New(3)
	for tick := 0; tick < 3000; tick++ {
		in := input.Snapshot{
			Accelerate: true,
			SteerLeft:  random.Chance(src, 0.5),
			SteerRight: random.Chance(src, 0.2),
		}
		p.Update(in, testTrack)
		if p.Position.X < 220 || p.Position.X > 580 {
			t.Fatalf("Tick %d: x=%.3f left the road", tick, p.Position.X)
		}
	}
}

func TestApplyBoost(t *testing.T) {
	p := createTestPlayer()
	p.Velocity = geom.Vec(0, -10)

	if p.ApplyBoost() {
		t.Error("Boost with an empty meter should do nothing")
	}
	if p.Speed() != 10 {
		t.Errorf("Expected speed unchanged at 10, got %.3f", p.Speed())
	}

	p.Boost = 2
	if !p.ApplyBoost() {
		t.Fatal("Expected boost to apply")
	}
	if math.Abs(p.Speed()-15) > 1e-9 {
		t.Errorf("Expected speed 15 after boost, got %.3f", p.Speed())
	}
	if p.Boost != 1 {
		t.Errorf("Expected boost meter 1, got %d", p.Boost)
	}

	// A second boost is capped at 1.5x max speed
	p.ApplyBoost()
	if math.Abs(p.Speed()-15) > 1e-9 {
		t.Errorf("Expected speed capped at 15, got %.3f", p.Speed())
	}

	p.Update(input.Snapshot{}, testTrack)
	if p.Speed() > 10+1e-9 {
		t.Errorf("Expected speed back under max after one tick, got %.3f", p.Speed())
	}
}

func TestCollectPowerUp(t *testing.T) {
	p := createTestPlayer()

	p.CollectPowerUp(PowerUpBoost)
	p.CollectPowerUp(PowerUpBoost)
	if p.Boost != 200 {
		t.Errorf("Expected boost 200, got %d", p.Boost)
	}

	p.Shield = 30
	p.CollectPowerUp(PowerUpShield)
	if p.Shield != 100 {
		t.Errorf("Expected shield reset to 100, got %.0f", p.Shield)
	}
	p.CollectPowerUp(PowerUpShield)
	if p.Shield != 100 {
		t.Errorf("Expected shield to stay at 100, got %.0f", p.Shield)
	}

	p.Health = 40
	p.CollectPowerUp(PowerUpRepair)
	if p.Health != 90 {
		t.Errorf("Expected health 90, got %.0f", p.Health)
	}
	p.CollectPowerUp(PowerUpRepair)
	if p.Health != 100 {
		t.Errorf("Expected health capped at 100, got %.0f", p.Health)
	}
}

func TestTakeDamage(t *testing.T) {
	tests := []struct {
		name                 string
		health, shield, dmg  float64
		wantHealth, wantShld float64
		wantDead             bool
	}{
		{"no shield", 100, 0, 10, 90, 0, false},
		{"shield absorbs", 100, 50, 20, 100, 30, false},
		{"shield exactly spent", 100, 20, 20, 100, 0, false},
		{"overflow", 100, 100, 150, 50, 0, false},
		{"fatal", 5, 0, 10, 0, 0, true},
		{"fatal through shield", 10, 5, 20, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := createTestPlayer()
			p.Health, p.Shield = tt.health, tt.shield
			dead := p.TakeDamage(tt.dmg)
			if p.Health != tt.wantHealth || p.Shield != tt.wantShld {
				t.Errorf("Expected health=%.0f shield=%.0f, got health=%.0f shield=%.0f",
					tt.wantHealth, tt.wantShld, p.Health, p.Shield)
			}
			if dead != tt.wantDead {
				t.Errorf("Expected dead=%v, got %v", tt.wantDead, dead)
			}
		})
	}
}

func TestTakeDamage_ThreeHits(t *testing.T) {
	p := createTestPlayer()
	for i := 0; i < 3; i++ {
		if p.TakeDamage(10) {
			t.Fatalf("Hit %d should not be fatal", i+1)
		}
	}
	if p.Health != 70 {
		t.Errorf("Expected health 70, got %.0f", p.Health)
	}
}

func TestAddScore_Monotonic(t *testing.T) {
	p := createTestPlayer()
	p.AddScore(10)
	p.AddScore(-5)
	p.AddScore(0)
	if p.Score != 10 {
		t.Errorf("Expected score 10, got %d", p.Score)
	}
}

func TestCondition_Thresholds(t *testing.T) {
	tests := []struct {
		health float64
		want   Condition
	}{
		{100, ConditionHealthy},
		{60, ConditionHealthy},
		{59, ConditionDamaged},
		{30, ConditionDamaged},
		{29, ConditionCritical},
		{0, ConditionCritical},
	}

	for _, tt := range tests {
		p := createTestPlayer()
		p.Health = tt.health
		if got := p.Condition(); got != tt.want {
			t.Errorf("health %.0f: Expected condition %d, got %d", tt.health, tt.want, got)
		}
	}
}
