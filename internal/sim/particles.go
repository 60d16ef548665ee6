package sim

import (
	"math/rand"

	"github.com/vovakirdan/neon-runner/internal/config"
)

// explosionPalette colors fragments of explosive-obstacle deaths.
var explosionPalette = []ColorTag{ColorRed, ColorOrange, ColorYellow, ColorWhite}

// Bursts spawns parameterized particle bursts out of the shared particle
// pool. Each burst draws up to count slots; fewer when the pool runs dry.
// A partial burst is acceptable, never an error.
type Bursts struct {
	pool *Pool[Particle]
	rng  *rand.Rand
	cfg  config.ParticlesConfig
}

// NewBursts creates a burst generator over the given pool and random
// stream.
func NewBursts(pool *Pool[Particle], rng *rand.Rand, cfg config.ParticlesConfig) *Bursts {
	return &Bursts{pool: pool, rng: rng, cfg: cfg}
}

// SpawnShatter emits a moderate omnidirectional burst with upward bias,
// used when an obstacle is destroyed by an active shatter or shield.
func (b *Bursts) SpawnShatter(pos Vec3, color ColorTag, count int) {
	for i := 0; i < count; i++ {
		_, p := b.pool.Acquire()
		if p == nil {
			return
		}
		*p = Particle{
			Pos: pos,
			Vel: Vec3{
				X: b.symmetric(8),
				Y: 4 + b.rng.Float64()*6,
				Z: b.symmetric(8),
			},
			Life:  0.4 + b.rng.Float64()*0.5,
			Color: color,
		}
		p.MaxLife = p.Life
	}
}

// SpawnExplosion emits a wide high-force burst with a multi-color palette,
// used for explosive obstacle deaths.
func (b *Bursts) SpawnExplosion(pos Vec3, count int) {
	for i := 0; i < count; i++ {
		_, p := b.pool.Acquire()
		if p == nil {
			return
		}
		*p = Particle{
			Pos: pos,
			Vel: Vec3{
				X: b.symmetric(14),
				Y: 6 + b.rng.Float64()*10,
				Z: b.symmetric(14),
			},
			Life:  0.5 + b.rng.Float64()*0.6,
			Color: explosionPalette[b.rng.Intn(len(explosionPalette))],
		}
		p.MaxLife = p.Life
	}
}

// SpawnPickup emits a gentle upward burst in a single caller-supplied
// color, used for power-up collection feedback.
func (b *Bursts) SpawnPickup(pos Vec3, color ColorTag, count int) {
	for i := 0; i < count; i++ {
		_, p := b.pool.Acquire()
		if p == nil {
			return
		}
		*p = Particle{
			Pos: pos,
			Vel: Vec3{
				X: b.symmetric(3),
				Y: 2 + b.rng.Float64()*4,
				Z: b.symmetric(3),
			},
			Life:  0.3 + b.rng.Float64()*0.4,
			Color: color,
		}
		p.MaxLife = p.Life
	}
}

// symmetric returns a uniform value in [-span, span].
func (b *Bursts) symmetric(span float64) float64 {
	return (b.rng.Float64()*2 - 1) * span
}
