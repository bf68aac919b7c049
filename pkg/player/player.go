package player

import (
	"github.com/golangdaddy/cyberdrift/pkg/entity"
	"github.com/golangdaddy/cyberdrift/pkg/geom"
	"github.com/golangdaddy/cyberdrift/pkg/input"
)

// PowerUpKind identifies the effect a pickup has on the player
type PowerUpKind int

const (
	PowerUpBoost PowerUpKind = iota
	PowerUpShield
	PowerUpRepair
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpBoost:
		return "boost"
	case PowerUpShield:
		return "shield"
	case PowerUpRepair:
		return "repair"
	}
	return "unknown"
}

// Config holds the handling and resource tuning for the player's car
type Config struct {
	Width           float64 `mapstructure:"width"`
	Height          float64 `mapstructure:"height"`
	Acceleration    float64 `mapstructure:"acceleration"`
	MaxSpeed        float64 `mapstructure:"max_speed"`
	Friction        float64 `mapstructure:"friction"`
	SteeringRate    float64 `mapstructure:"steering_rate"`   // Degrees per tick
	MinSteerSpeed   float64 `mapstructure:"min_steer_speed"` // Steering only works above this speed
	StopSpeed       float64 `mapstructure:"stop_speed"`      // Below this speed friction stops the car dead
	MaxHealth       float64 `mapstructure:"max_health"`
	MaxShield       float64 `mapstructure:"max_shield"`
	BoostMultiplier float64 `mapstructure:"boost_multiplier"`
	BoostCharge     int     `mapstructure:"boost_charge"`  // Boost meter gained per boost pickup
	RepairAmount    float64 `mapstructure:"repair_amount"` // Health restored per repair pickup
}

// DefaultConfig returns the arcade handling model
func DefaultConfig() Config {
	return Config{
		Width:           40,
		Height:          70,
		Acceleration:    0.2,
		MaxSpeed:        10,
		Friction:        0.05,
		SteeringRate:    3,
		MinSteerSpeed:   0.5,
		StopSpeed:       0.1,
		MaxHealth:       100,
		MaxShield:       100,
		BoostMultiplier: 1.5,
		BoostCharge:     100,
		RepairAmount:    50,
	}
}

// Track is the horizontal extent the player is confined to
type Track interface {
	Left() float64
	Right() float64
}

// Player is the player's car and its health, shield, boost and score
type Player struct {
	entity.Body
	Health float64
	Shield float64
	Boost  int
	Score  int

	cfg Config
}

// New creates a player at full health, centred at (x, y)
func New(x, y float64, cfg Config) *Player {
	return &Player{
		Body:   entity.NewBody(x, y, cfg.Width, cfg.Height),
		Health: cfg.MaxHealth,
		cfg:    cfg,
	}
}

// Config returns the tuning the player was created with
func (p *Player) Config() Config {
	return p.cfg
}

// Update advances the car by one tick from the held controls and keeps it
// between the road edges
func (p *Player) Update(in input.Snapshot, track Track) {
	// Thrust is applied along the car's heading
	if in.Accelerate {
		p.Velocity = p.Velocity.Add(geom.Vec(0, -p.cfg.Acceleration).Rotate(-p.Angle))
	}
	if in.Brake {
		p.Velocity = p.Velocity.Add(geom.Vec(0, p.cfg.Acceleration).Rotate(-p.Angle))
	}

	// A car at a standstill cannot turn
	if p.Speed() > p.cfg.MinSteerSpeed {
		if in.SteerLeft {
			p.Angle += p.cfg.SteeringRate
		}
		if in.SteerRight {
			p.Angle -= p.cfg.SteeringRate
		}
	}

	if p.Speed() > 0 {
		p.Velocity = p.Velocity.Sub(p.Velocity.Normalize().Scale(p.cfg.Friction))
		if p.Speed() < p.cfg.StopSpeed {
			p.Velocity = geom.Vector2{}
		}
	}

	p.Velocity = p.Velocity.ClampLength(p.cfg.MaxSpeed)

	p.Step()
	p.confine(track)
}

// confine stops the car dead against whichever road edge it hit
func (p *Player) confine(track Track) {
	half := p.cfg.Width / 2
	if p.Position.X < track.Left()+half {
		p.Position.X = track.Left() + half
		p.Velocity.X = 0
	}
	if p.Position.X > track.Right()-half {
		p.Position.X = track.Right() - half
		p.Velocity.X = 0
	}
}

// ApplyBoost spends one unit of boost on a burst of speed. It does nothing
// when the boost meter is empty. It returns whether a boost happened.
func (p *Player) ApplyBoost() bool {
	if p.Boost <= 0 {
		return false
	}
	limit := p.cfg.MaxSpeed * p.cfg.BoostMultiplier
	p.Velocity = p.Velocity.Scale(p.cfg.BoostMultiplier).ClampLength(limit)
	p.Boost--
	return true
}

// CollectPowerUp applies the effect of a pickup
func (p *Player) CollectPowerUp(kind PowerUpKind) {
	switch kind {
	case PowerUpBoost:
		p.Boost += p.cfg.BoostCharge
	case PowerUpShield:
		p.Shield = p.cfg.MaxShield
	case PowerUpRepair:
		p.Health = min(p.cfg.MaxHealth, p.Health+p.cfg.RepairAmount)
	}
}

// TakeDamage drains the shield first and lets any overflow through to
// health. It reports whether the hit was fatal.
func (p *Player) TakeDamage(amount float64) bool {
	if amount < 0 {
		amount = 0
	}
	if p.Shield > 0 {
		overflow := amount - p.Shield
		p.Shield = max(0, p.Shield-amount)
		if overflow > 0 {
			p.Health -= overflow
		}
	} else {
		p.Health -= amount
	}
	if p.Health < 0 {
		p.Health = 0
	}
	return p.Health <= 0
}

// Condition buckets the player's health for the HUD
type Condition int

const (
	ConditionHealthy  Condition = iota
	ConditionDamaged            // Below 60% health
	ConditionCritical           // Below 30% health
)

// Condition returns the current health bucket
func (p *Player) Condition() Condition {
	switch {
	case p.Health < p.cfg.MaxHealth*0.3:
		return ConditionCritical
	case p.Health < p.cfg.MaxHealth*0.6:
		return ConditionDamaged
	}
	return ConditionHealthy
}

// Alive reports whether the player still has health left
func (p *Player) Alive() bool {
	return p.Health > 0
}

// AddScore adds points. Negative amounts are ignored so the score never drops.
func (p *Player) AddScore(points int) {
	if points > 0 {
		p.Score += points
	}
}
