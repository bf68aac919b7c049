package config

import (
	"errors"
	"fmt"

	"github.com/golangdaddy/cyberdrift/pkg/effects"
	"github.com/golangdaddy/cyberdrift/pkg/player"
	"github.com/golangdaddy/cyberdrift/pkg/powerup"
	"github.com/golangdaddy/cyberdrift/pkg/road"
	"github.com/golangdaddy/cyberdrift/pkg/traffic"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete game configuration
type Config struct {
	Screen  ScreenConfig   `mapstructure:"screen"`
	Road    road.Config    `mapstructure:"road"`
	Player  player.Config  `mapstructure:"player"`
	Enemy   traffic.Config `mapstructure:"enemy"`
	PowerUp powerup.Config `mapstructure:"powerup"`
	Effects effects.Config `mapstructure:"effects"`
	Scoring ScoringConfig  `mapstructure:"scoring"`

	// File is the config file that was read, empty when only defaults and
	// the environment applied
	File string `mapstructure:"-"`
}

// ScreenConfig describes the window and the tick rate
type ScreenConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	TPS    int    `mapstructure:"tps"`
	Title  string `mapstructure:"title"`
	Seed   int64  `mapstructure:"seed"` // 0 seeds from the clock
}

// ScoringConfig holds the rules that turn driving and collisions into points
type ScoringConfig struct {
	CollisionDamage float64 `mapstructure:"collision_damage"`
	PowerUpBonus    int     `mapstructure:"powerup_bonus"`
	BaseRoadSpeed   float64 `mapstructure:"base_road_speed"`
	DistanceFactor  float64 `mapstructure:"distance_factor"`
	MenuRoadSpeed   float64 `mapstructure:"menu_road_speed"`
	PlayerOffsetY   float64 `mapstructure:"player_offset_y"` // Start distance above the bottom edge
	HitParticles    int     `mapstructure:"hit_particles"`
	DeathParticles  int     `mapstructure:"death_particles"`
}

// Default returns the stock game configuration
func Default() Config {
	cfg := Config{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
			TPS:    60,
			Title:  "Cyber Drift: Neon Chase",
		},
		Road:    road.DefaultConfig(),
		Player:  player.DefaultConfig(),
		Enemy:   traffic.DefaultConfig(),
		PowerUp: powerup.DefaultConfig(),
		Effects: effects.DefaultConfig(),
		Scoring: ScoringConfig{
			CollisionDamage: 10,
			PowerUpBonus:    50,
			BaseRoadSpeed:   5,
			DistanceFactor:  0.1,
			MenuRoadSpeed:   2,
			PlayerOffsetY:   100,
			HitParticles:    20,
			DeathParticles:  50,
		},
	}
	cfg.syncScreen()
	return cfg
}

// syncScreen copies the screen size into the sections that derive from it
func (c *Config) syncScreen() {
	c.Road.ScreenWidth = float64(c.Screen.Width)
	c.Road.ScreenHeight = float64(c.Screen.Height)
}

// Validate checks every precondition the game loop relies on. All problems
// are reported together.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	check(c.Screen.TPS > 0, "screen.tps must be positive, got %d", c.Screen.TPS)

	check(c.Road.Width > 0, "road.width must be positive, got %.1f", c.Road.Width)
	check(c.Road.Width <= float64(c.Screen.Width), "road.width %.1f exceeds screen width %d", c.Road.Width, c.Screen.Width)
	check(c.Road.Lanes >= 1, "road.lanes must be at least 1, got %d", c.Road.Lanes)
	check(c.Road.StripeHeight > 0, "road.stripe_height must be positive, got %.1f", c.Road.StripeHeight)
	check(c.Road.StripeGap >= 0, "road.stripe_gap must not be negative, got %.1f", c.Road.StripeGap)
	check(c.Road.Decorations >= 0, "road.decorations must not be negative, got %d", c.Road.Decorations)
	check(c.Road.DecorationMinSize <= c.Road.DecorationMaxSize, "road decoration size range is inverted")

	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive")
	check(c.Player.Width < c.Road.Width, "player.width %.1f does not fit on a %.1f road", c.Player.Width, c.Road.Width)
	check(c.Player.MaxSpeed > 0, "player.max_speed must be positive, got %.2f", c.Player.MaxSpeed)
	check(c.Player.Acceleration >= 0, "player.acceleration must not be negative")
	check(c.Player.Friction >= 0, "player.friction must not be negative")
	check(c.Player.MaxHealth > 0, "player.max_health must be positive")
	check(c.Player.MaxShield >= 0, "player.max_shield must not be negative")
	check(c.Player.BoostMultiplier >= 1, "player.boost_multiplier must be at least 1, got %.2f", c.Player.BoostMultiplier)

	check(c.Enemy.SpawnIntervalMin >= 1, "enemy.spawn_interval_min must be at least 1, got %d", c.Enemy.SpawnIntervalMin)
	check(c.Enemy.SpawnIntervalMin <= c.Enemy.SpawnIntervalMax, "enemy spawn interval range is inverted")
	check(c.Enemy.LaneChangeMin >= 1, "enemy.lane_change_min must be at least 1, got %d", c.Enemy.LaneChangeMin)
	check(c.Enemy.LaneChangeMin <= c.Enemy.LaneChangeMax, "enemy lane change range is inverted")
	check(c.Enemy.StartDifficulty > 0, "enemy.start_difficulty must be positive, got %.4f", c.Enemy.StartDifficulty)
	check(c.Enemy.DifficultyStep >= 0, "enemy.difficulty_step must not be negative")
	check(c.Enemy.MaxDifficulty == 0 || c.Enemy.MaxDifficulty >= c.Enemy.StartDifficulty, "enemy.max_difficulty is below the start difficulty")
	check(c.Enemy.DespawnTop < c.Enemy.DespawnBottom, "enemy despawn bounds are inverted")
	// Enemies drive down the screen, so a spawn on the top bound is still live
	check(c.Enemy.SpawnY >= c.Enemy.DespawnTop && c.Enemy.SpawnY < c.Enemy.DespawnBottom,
		"enemy.spawn_y %.1f must lie within the despawn bounds [%.1f, %.1f)", c.Enemy.SpawnY, c.Enemy.DespawnTop, c.Enemy.DespawnBottom)

	check(c.PowerUp.Radius > 0, "powerup.radius must be positive")
	check(c.PowerUp.IntervalMin >= 1, "powerup.interval_min must be at least 1, got %d", c.PowerUp.IntervalMin)
	check(c.PowerUp.IntervalMin <= c.PowerUp.IntervalMax, "powerup interval range is inverted")

	check(c.Effects.ExplosionLifeMin <= c.Effects.ExplosionLifeMax, "effects explosion lifetime range is inverted")
	check(c.Effects.TrailLifeMin <= c.Effects.TrailLifeMax, "effects trail lifetime range is inverted")
	check(c.Effects.ExplosionSizeMin <= c.Effects.ExplosionSizeMax, "effects explosion size range is inverted")
	check(c.Effects.TrailSizeMin <= c.Effects.TrailSizeMax, "effects trail size range is inverted")
	check(c.Effects.RingLifetime > 0, "effects.ring_lifetime must be positive")
	check(c.Effects.TrailParticles >= 0, "effects.trail_particles must not be negative, got %d", c.Effects.TrailParticles)

	check(c.Scoring.CollisionDamage >= 0, "scoring.collision_damage must not be negative")
	check(c.Scoring.PowerUpBonus >= 0, "scoring.powerup_bonus must not be negative")
	check(c.Scoring.DistanceFactor >= 0, "scoring.distance_factor must not be negative")
	check(c.Scoring.HitParticles >= 0, "scoring.hit_particles must not be negative, got %d", c.Scoring.HitParticles)
	check(c.Scoring.DeathParticles >= 0, "scoring.death_particles must not be negative, got %d", c.Scoring.DeathParticles)

	return errors.Join(errs...)
}
