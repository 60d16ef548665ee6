package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration. Kept in
// sync with defaults/runner.yaml; used as the last-resort fallback if the
// embedded YAML fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Track: TrackConfig{
			Width:    20,
			SpawnZ:   -120,
			DespawnZ: 12,
		},
		Player: PlayerConfig{
			HalfWidth:    0.9,
			HalfHeight:   1.0,
			HalfDepth:    0.6,
			LateralSpeed: 18,
			JumpImpulse:  11,
			Gravity:      -30,
			HitboxInset:  0.25,
		},
		Pools: PoolsConfig{
			Obstacles: 64,
			PowerUps:  16,
			Particles: 256,
		},
		Scheduler: SchedulerConfig{
			ScorePerDifficulty:    50,
			MaxDifficulty:         3,
			BaseInterval:          1.2,
			MinInterval:           0.3,
			IntervalPerDifficulty: 0.25,
			BaseSpeed:             15,
			SpeedPerDifficulty:    5,
			SecondObstacleChance:  0.3,
			ThirdObstacleChance:   0.2,
			ExplosiveChance:       0.15,
			PowerUpBaseInterval:   8,
			PowerUpMinInterval:    5,
			PowerUpIntervalPerDif: 0.5,
			PowerUpChance:         0.6,
		},
		Obstacles: ObstaclesConfig{
			MinHalfWidth:  0.8,
			MaxHalfWidth:  1.6,
			MinHalfHeight: 0.8,
			MaxHalfHeight: 2.2,
			HalfDepth:     0.8,
		},
		PowerUps: PowerUpsConfig{
			HalfExtent:      0.6,
			PickupOutset:    0.35,
			ShieldDuration:  5,
			DoubleDuration:  8,
			ShatterDuration: 6,
			ShatterBonus:    5,
		},
		Scoring: ScoringConfig{
			Interval:       0.1,
			MilestoneEvery: 50,
		},
		Particles: ParticlesConfig{
			Gravity:        -30,
			ShatterCount:   18,
			ExplosionCount: 28,
			PickupCount:    10,
		},
		Loop: LoopConfig{
			StepHz:        60,
			MaxFrameDelta: 0.1,
		},
	}
}
