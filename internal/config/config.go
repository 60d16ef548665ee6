// Package config provides YAML-based tuning for the runner simulation
// and host. Every gameplay constant lives here so the sim core stays free
// of magic numbers and tests can pin exact values.
package config

// RunnerConfig contains all tuning for the runner.
type RunnerConfig struct {
	Track     TrackConfig     `yaml:"track"`
	Player    PlayerConfig    `yaml:"player"`
	Pools     PoolsConfig     `yaml:"pools"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	PowerUps  PowerUpsConfig  `yaml:"powerups"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Particles ParticlesConfig `yaml:"particles"`
	Loop      LoopConfig      `yaml:"loop"`
}

// TrackConfig defines the playfield geometry. Entities spawn at SpawnZ
// (the far plane) and are released back to their pool once they cross
// DespawnZ (the near plane) regardless of collision outcome.
type TrackConfig struct {
	Width    float64 `yaml:"width"`
	SpawnZ   float64 `yaml:"spawn_z"`
	DespawnZ float64 `yaml:"despawn_z"`
}

// PlayerConfig defines the player body and movement parameters.
// HitboxInset shrinks the collision box on each axis to keep obstacle
// hits perceptually fair.
type PlayerConfig struct {
	HalfWidth    float64 `yaml:"half_width"`
	HalfHeight   float64 `yaml:"half_height"`
	HalfDepth    float64 `yaml:"half_depth"`
	LateralSpeed float64 `yaml:"lateral_speed"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	Gravity      float64 `yaml:"gravity"`
	HitboxInset  float64 `yaml:"hitbox_inset"`
}

// PoolsConfig fixes the capacity of each entity pool. Spawn requests
// beyond capacity are dropped, never queued.
type PoolsConfig struct {
	Obstacles int `yaml:"obstacles"`
	PowerUps  int `yaml:"powerups"`
	Particles int `yaml:"particles"`
}

// SchedulerConfig drives spawn timing and the difficulty curve.
// Difficulty is clamp(score/ScorePerDifficulty, 0, MaxDifficulty).
type SchedulerConfig struct {
	ScorePerDifficulty    float64 `yaml:"score_per_difficulty"`
	MaxDifficulty         float64 `yaml:"max_difficulty"`
	BaseInterval          float64 `yaml:"base_interval"`
	MinInterval           float64 `yaml:"min_interval"`
	IntervalPerDifficulty float64 `yaml:"interval_per_difficulty"`
	BaseSpeed             float64 `yaml:"base_speed"`
	SpeedPerDifficulty    float64 `yaml:"speed_per_difficulty"`
	SecondObstacleChance  float64 `yaml:"second_obstacle_chance"`
	ThirdObstacleChance   float64 `yaml:"third_obstacle_chance"`
	ExplosiveChance       float64 `yaml:"explosive_chance"`

	PowerUpBaseInterval   float64 `yaml:"powerup_base_interval"`
	PowerUpMinInterval    float64 `yaml:"powerup_min_interval"`
	PowerUpIntervalPerDif float64 `yaml:"powerup_interval_per_difficulty"`
	PowerUpChance         float64 `yaml:"powerup_chance"`
}

// ObstaclesConfig defines the random size range for spawned obstacles.
type ObstaclesConfig struct {
	MinHalfWidth  float64 `yaml:"min_half_width"`
	MaxHalfWidth  float64 `yaml:"max_half_width"`
	MinHalfHeight float64 `yaml:"min_half_height"`
	MaxHalfHeight float64 `yaml:"max_half_height"`
	HalfDepth     float64 `yaml:"half_depth"`
}

// PowerUpsConfig defines pickup geometry and per-kind effect durations.
// PickupOutset grows the pickup's collision box to make collection
// generous. Durations are fixed constants, never scaled by difficulty.
type PowerUpsConfig struct {
	HalfExtent      float64 `yaml:"half_extent"`
	PickupOutset    float64 `yaml:"pickup_outset"`
	ShieldDuration  float64 `yaml:"shield_duration"`
	DoubleDuration  float64 `yaml:"double_duration"`
	ShatterDuration float64 `yaml:"shatter_duration"`
	ShatterBonus    int     `yaml:"shatter_bonus"`
}

// ScoringConfig defines the periodic score increment and milestone cadence.
type ScoringConfig struct {
	Interval       float64 `yaml:"interval"`
	MilestoneEvery int     `yaml:"milestone_every"`
}

// ParticlesConfig defines burst sizes and the shared downward acceleration.
type ParticlesConfig struct {
	Gravity        float64 `yaml:"gravity"`
	ShatterCount   int     `yaml:"shatter_count"`
	ExplosionCount int     `yaml:"explosion_count"`
	PickupCount    int     `yaml:"pickup_count"`
}

// LoopConfig defines the fixed-step clock. StepHz is the simulation rate;
// MaxFrameDelta caps a single host frame delta so a long stall cannot
// trigger a burst of catch-up steps.
type LoopConfig struct {
	StepHz        int     `yaml:"step_hz"`
	MaxFrameDelta float64 `yaml:"max_frame_delta"`
}
