package traffic

// Config holds enemy spawning, AI and difficulty tuning. Timers are in ticks.
type Config struct {
	Width            float64 `mapstructure:"width"`
	Height           float64 `mapstructure:"height"`
	BaseSpeed        float64 `mapstructure:"base_speed"`
	SpawnY           float64 `mapstructure:"spawn_y"`
	DespawnTop       float64 `mapstructure:"despawn_top"`
	DespawnBottom    float64 `mapstructure:"despawn_bottom"`
	SpawnIntervalMin int     `mapstructure:"spawn_interval_min"`
	SpawnIntervalMax int     `mapstructure:"spawn_interval_max"`
	LaneChangeMin    int     `mapstructure:"lane_change_min"`
	LaneChangeMax    int     `mapstructure:"lane_change_max"`
	LaneTolerance    float64 `mapstructure:"lane_tolerance"`
	LateralStep      float64 `mapstructure:"lateral_step"`
	BankAngle        float64 `mapstructure:"bank_angle"`
	FollowChance     float64 `mapstructure:"follow_chance"` // Scaled by difficulty
	StartDifficulty  float64 `mapstructure:"start_difficulty"`
	DifficultyStep   float64 `mapstructure:"difficulty_step"`
	MaxDifficulty    float64 `mapstructure:"max_difficulty"` // 0 leaves difficulty unbounded
}

// DefaultConfig returns the arcade traffic tuning
func DefaultConfig() Config {
	return Config{
		Width:            40,
		Height:           70,
		BaseSpeed:        2,
		SpawnY:           -100,
		DespawnTop:       -100,
		DespawnBottom:    700,
		SpawnIntervalMin: 30,
		SpawnIntervalMax: 120,
		LaneChangeMin:    60,
		LaneChangeMax:    180,
		LaneTolerance:    5,
		LateralStep:      2,
		BankAngle:        10,
		FollowChance:     0.3,
		StartDifficulty:  1.0,
		DifficultyStep:   0.0001,
	}
}
