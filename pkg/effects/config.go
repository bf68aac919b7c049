package effects

import "image/color"

// Config holds the tuning for every cosmetic effect
type Config struct {
	Shrink float64 `mapstructure:"shrink"` // Particle size multiplier per tick

	ExplosionSpeed   float64 `mapstructure:"explosion_speed"`
	ExplosionSizeMin float64 `mapstructure:"explosion_size_min"`
	ExplosionSizeMax float64 `mapstructure:"explosion_size_max"`
	ExplosionLifeMin int     `mapstructure:"explosion_life_min"`
	ExplosionLifeMax int     `mapstructure:"explosion_life_max"`

	TrailThreshold float64 `mapstructure:"trail_threshold"` // Owner speed needed to emit
	TrailParticles int     `mapstructure:"trail_particles"`
	TrailOffset    float64 `mapstructure:"trail_offset"`
	TrailDrift     float64 `mapstructure:"trail_drift"`
	TrailSizeMin   float64 `mapstructure:"trail_size_min"`
	TrailSizeMax   float64 `mapstructure:"trail_size_max"`
	TrailLifeMin   int     `mapstructure:"trail_life_min"`
	TrailLifeMax   int     `mapstructure:"trail_life_max"`

	RingStartRadius float64 `mapstructure:"ring_start_radius"`
	RingMaxRadius   float64 `mapstructure:"ring_max_radius"`
	RingGrowth      float64 `mapstructure:"ring_growth"`
	RingLifetime    int     `mapstructure:"ring_lifetime"`
}

// DefaultConfig returns the standard effect tuning
func DefaultConfig() Config {
	return Config{
		Shrink: 0.95,

		ExplosionSpeed:   3,
		ExplosionSizeMin: 3,
		ExplosionSizeMax: 8,
		ExplosionLifeMin: 30,
		ExplosionLifeMax: 60,

		TrailThreshold: 5,
		TrailParticles: 2,
		TrailOffset:    35,
		TrailDrift:     2,
		TrailSizeMin:   2,
		TrailSizeMax:   6,
		TrailLifeMin:   10,
		TrailLifeMax:   30,

		RingStartRadius: 5,
		RingMaxRadius:   40,
		RingGrowth:      0.2,
		RingLifetime:    30,
	}
}

// Effect colours
var (
	FireOrange  = color.RGBA{255, 100, 0, 255}
	FireYellow  = color.RGBA{255, 200, 0, 255}
	CollectCyan = color.RGBA{0, 195, 255, 255}
)
