package sim

import (
	"math/rand"

	"github.com/vovakirdan/neon-runner/internal/config"
)

// Difficulty maps a score to the difficulty scalar: score divided by the
// configured step, clamped to [0, max]. Non-decreasing in score and
// saturating once score reaches ScorePerDifficulty * MaxDifficulty.
func Difficulty(score int, cfg config.SchedulerConfig) float64 {
	step := cfg.ScorePerDifficulty
	if step <= 0 {
		step = 1
	}
	return ClampF(float64(score)/step, 0, cfg.MaxDifficulty)
}

// ObstacleSpawn describes one obstacle the scheduler decided to spawn.
type ObstacleSpawn struct {
	X         float64
	Half      Vec3
	Speed     float64
	Explosive bool
	Color     ColorTag
}

// PowerUpSpawn describes one power-up the scheduler decided to spawn.
type PowerUpSpawn struct {
	X     float64
	Speed float64
	Kind  PowerUpKind
}

// Spawner owns the spawn timers and converts elapsed simulation time plus
// the current score into spawn decisions. It draws from the world's single
// random stream so a fixed seed reproduces the whole spawn schedule.
type Spawner struct {
	cfg      config.SchedulerConfig
	obst     config.ObstaclesConfig
	track    config.TrackConfig
	puHalf   float64
	rng      *rand.Rand
	obsTimer float64
	puTimer  float64
}

// NewSpawner creates a spawner reading tuning from cfg and randomness
// from rng.
func NewSpawner(cfg config.RunnerConfig, rng *rand.Rand) *Spawner {
	return &Spawner{
		cfg:    cfg.Scheduler,
		obst:   cfg.Obstacles,
		track:  cfg.Track,
		puHalf: cfg.PowerUps.HalfExtent,
		rng:    rng,
	}
}

// Reset zeroes both spawn timers.
func (s *Spawner) Reset() {
	s.obsTimer = 0
	s.puTimer = 0
}

// ObstacleInterval returns the seconds between obstacle waves at the
// given difficulty.
func (s *Spawner) ObstacleInterval(difficulty float64) float64 {
	return maxF(s.cfg.MinInterval, s.cfg.BaseInterval-s.cfg.IntervalPerDifficulty*difficulty)
}

// PowerUpInterval returns the seconds between power-up attempts at the
// given difficulty.
func (s *Spawner) PowerUpInterval(difficulty float64) float64 {
	return maxF(s.cfg.PowerUpMinInterval, s.cfg.PowerUpBaseInterval-s.cfg.PowerUpIntervalPerDif*difficulty)
}

// Speed returns the travel speed for entities spawned at the given
// difficulty. Power-ups move at obstacle speed so relative timing stays
// consistent.
func (s *Spawner) Speed(difficulty float64) float64 {
	return s.cfg.BaseSpeed + s.cfg.SpeedPerDifficulty*difficulty
}

// Advance accumulates dt into both timers and returns the spawns due this
// tick. When an interval elapses the timer resets to zero: overshoot
// beyond the interval is discarded, not carried over.
func (s *Spawner) Advance(dt float64, score int) ([]ObstacleSpawn, []PowerUpSpawn) {
	d := Difficulty(score, s.cfg)

	var obstacles []ObstacleSpawn
	s.obsTimer += dt
	if s.obsTimer >= s.ObstacleInterval(d) {
		s.obsTimer = 0
		n := 1
		if d > 1 && s.rng.Float64() < s.cfg.SecondObstacleChance {
			n++
		}
		if d > 2.5 && s.rng.Float64() < s.cfg.ThirdObstacleChance {
			n++
		}
		for i := 0; i < n; i++ {
			obstacles = append(obstacles, s.rollObstacle(d))
		}
	}

	var powerUps []PowerUpSpawn
	s.puTimer += dt
	if s.puTimer >= s.PowerUpInterval(d) {
		s.puTimer = 0
		// Independent roll keeps power-ups rare even at high difficulty.
		if s.rng.Float64() < s.cfg.PowerUpChance {
			powerUps = append(powerUps, PowerUpSpawn{
				X:     s.rollLateral(s.puHalf),
				Speed: s.Speed(d),
				Kind:  PowerUpKind(s.rng.Intn(int(powerUpKindCount))),
			})
		}
	}

	return obstacles, powerUps
}

// rollObstacle draws size, lane, explosiveness and color for one obstacle.
func (s *Spawner) rollObstacle(difficulty float64) ObstacleSpawn {
	half := Vec3{
		X: s.rollRange(s.obst.MinHalfWidth, s.obst.MaxHalfWidth),
		Y: s.rollRange(s.obst.MinHalfHeight, s.obst.MaxHalfHeight),
		Z: s.obst.HalfDepth,
	}
	return ObstacleSpawn{
		X:         s.rollLateral(half.X),
		Half:      half,
		Speed:     s.Speed(difficulty),
		Explosive: s.rng.Float64() < s.cfg.ExplosiveChance,
		Color:     obstaclePalette[s.rng.Intn(len(obstaclePalette))],
	}
}

// rollLateral picks a uniform lateral position over the track width minus
// the entity's half-width margin.
func (s *Spawner) rollLateral(halfWidth float64) float64 {
	span := s.track.Width/2 - halfWidth
	if span <= 0 {
		return 0
	}
	return (s.rng.Float64()*2 - 1) * span
}

func (s *Spawner) rollRange(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}
