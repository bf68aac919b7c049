package powerup

import (
	"image/color"

	"github.com/golangdaddy/cyberdrift/pkg/entity"
	"github.com/golangdaddy/cyberdrift/pkg/geom"
	"github.com/golangdaddy/cyberdrift/pkg/player"
	"github.com/golangdaddy/cyberdrift/pkg/random"
)

// Kinds lists every pickup type, each equally likely to spawn
var Kinds = []player.PowerUpKind{player.PowerUpBoost, player.PowerUpShield, player.PowerUpRepair}

// Config holds pickup spawning and motion tuning. Timers are in ticks.
type Config struct {
	Radius        float64 `mapstructure:"radius"`
	Speed         float64 `mapstructure:"speed"`
	SpawnY        float64 `mapstructure:"spawn_y"`
	DespawnBottom float64 `mapstructure:"despawn_bottom"`
	InitialDelay  int     `mapstructure:"initial_delay"`
	IntervalMin   int     `mapstructure:"interval_min"`
	IntervalMax   int     `mapstructure:"interval_max"`
	MaxSpin       float64 `mapstructure:"max_spin"` // Degrees per tick, either direction
	PulseStep     float64 `mapstructure:"pulse_step"`
}

// DefaultConfig spawns a pickup every 5 to 10 seconds at 60 ticks per second
func DefaultConfig() Config {
	return Config{
		Radius:        15,
		Speed:         2,
		SpawnY:        -50,
		DespawnBottom: 700,
		InitialDelay:  300,
		IntervalMin:   300,
		IntervalMax:   600,
		MaxSpin:       3,
		PulseStep:     0.1,
	}
}

// PowerUp is a pickup drifting down the road
type PowerUp struct {
	entity.Body
	Kind   player.PowerUpKind
	Radius float64
	Spin   float64 // Cosmetic rotation per tick
	Pulse  float64 // Cosmetic glow phase
}

func newPowerUp(x, y float64, kind player.PowerUpKind, cfg Config, rng random.Source) PowerUp {
	p := PowerUp{
		Body:   entity.NewBody(x, y, cfg.Radius*2, cfg.Radius*2),
		Kind:   kind,
		Radius: cfg.Radius,
		Spin:   random.Uniform(rng, -cfg.MaxSpin, cfg.MaxSpin),
		Pulse:  rng.Float64() * 10,
	}
	p.Velocity = geom.Vec(0, cfg.Speed)
	return p
}

func (p *PowerUp) update(cfg Config) {
	p.Step()
	p.Angle += p.Spin
	p.Pulse += cfg.PulseStep
}

// Color returns the display colour for the pickup's kind
func (p *PowerUp) Color() color.RGBA {
	return KindColor(p.Kind)
}

// KindColor maps a pickup kind to its neon colour
func KindColor(kind player.PowerUpKind) color.RGBA {
	switch kind {
	case player.PowerUpBoost:
		return color.RGBA{255, 230, 0, 255}
	case player.PowerUpShield:
		return color.RGBA{0, 195, 255, 255}
	default:
		return color.RGBA{57, 255, 20, 255}
	}
}
