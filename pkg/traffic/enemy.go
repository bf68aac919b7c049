package traffic

import (
	"math"

	"github.com/golangdaddy/cyberdrift/pkg/entity"
	"github.com/golangdaddy/cyberdrift/pkg/geom"
	"github.com/golangdaddy/cyberdrift/pkg/random"
)

// Lanes is the lane geometry the AI steers by
type Lanes interface {
	Lanes() int
	LaneCenter(lane int) float64
	LaneAt(x float64) int
}

// Enemy is an AI car that drifts down the road, seeking a target lane and
// sometimes the player's lane
type Enemy struct {
	entity.Body
	TargetLane      int
	LaneChangeTimer int     // Ticks until the next random lane pick
	Aggression      float64 // Per-tick chance of considering the player's lane
	Difficulty      float64 // Difficulty at spawn time
}

// update advances the enemy by one tick
func (e *Enemy) update(cfg Config, lanes Lanes, rng random.Source, playerPos geom.Vector2) {
	e.Step()

	// Slide toward the target lane, banking into the turn
	targetX := lanes.LaneCenter(e.TargetLane)
	if math.Abs(e.Position.X-targetX) > cfg.LaneTolerance {
		if e.Position.X < targetX {
			e.Position.X += cfg.LateralStep
			e.Angle = -cfg.BankAngle
		} else {
			e.Position.X -= cfg.LateralStep
			e.Angle = cfg.BankAngle
		}
	} else {
		e.Angle = 0
	}

	e.LaneChangeTimer--
	if e.LaneChangeTimer <= 0 {
		e.TargetLane = rng.Intn(lanes.Lanes())
		e.LaneChangeTimer = random.IntRange(rng, cfg.LaneChangeMin, cfg.LaneChangeMax)
	}

	// Two independent gates: the enemy must notice the player and then
	// decide to follow
	if random.Chance(rng, e.Aggression) {
		playerLane := lanes.LaneAt(playerPos.X)
		if random.Chance(rng, cfg.FollowChance*e.Difficulty) {
			e.TargetLane = playerLane
		}
	}
}
