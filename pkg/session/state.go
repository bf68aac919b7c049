package session

import "math"

// State is the phase of the game loop
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	}
	return "unknown"
}

const (
	pulseStep  = 0.05 // Radians per tick
	flashDecay = 0.05
)

// Feedback drives the HUD animations. Flashes jump to 1 on their event and
// fade back to 0.
type Feedback struct {
	Pulse       float64
	ScoreFlash  float64
	DamageFlash float64
}

func (f *Feedback) update() {
	f.Pulse = math.Mod(f.Pulse+pulseStep, 2*math.Pi)
	f.ScoreFlash = max(0, f.ScoreFlash-flashDecay)
	f.DamageFlash = max(0, f.DamageFlash-flashDecay)
}
