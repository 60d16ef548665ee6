package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/neon-runner/internal/config"
)

// Player is the player-controlled entity. It sits at a fixed depth near
// the despawn plane and moves laterally and vertically only.
type Player struct {
	Pos      Vec3
	VelY     float64
	Half     Vec3
	Grounded bool
}

// World is the complete simulation. The host feeds it variable frame
// deltas through Advance; the world drains them in fixed steps. All
// mutation happens inside a step, on the caller's goroutine: the world is
// single-threaded by contract and does no locking.
type World struct {
	cfg  config.RunnerConfig
	rng  *rand.Rand
	sink Sink

	phase   Phase
	session SessionState
	player  Player
	input   InputFrame

	obstacles *Pool[Obstacle]
	powerUps  *Pool[PowerUp]
	particles *Pool[Particle]
	bursts    *Bursts
	spawner   *Spawner
	effect    *ActiveEffect

	step      float64
	acc       float64
	ticks     uint64
	idleClock float64 // simulation-time animation phase, host-time independent
}

// New creates a world in the Menu phase. A nil sink is replaced with
// NopSink. The seed fixes the entire random stream: two worlds with the
// same seed, config and inputs evolve identically.
func New(cfg config.RunnerConfig, seed int64, sink Sink) *World {
	if sink == nil {
		sink = NopSink{}
	}
	stepHz := cfg.Loop.StepHz
	if stepHz <= 0 {
		stepHz = 60
	}
	rng := rand.New(rand.NewSource(seed))

	w := &World{
		cfg:       cfg,
		rng:       rng,
		sink:      sink,
		phase:     Menu,
		obstacles: NewPool[Obstacle](cfg.Pools.Obstacles),
		powerUps:  NewPool[PowerUp](cfg.Pools.PowerUps),
		particles: NewPool[Particle](cfg.Pools.Particles),
		step:      1 / float64(stepHz),
	}
	w.bursts = NewBursts(w.particles, rng, cfg.Particles)
	w.spawner = NewSpawner(cfg, rng)
	w.resetPlayer()
	return w
}

// Phase returns the current phase.
func (w *World) Phase() Phase {
	return w.phase
}

// Score returns the current session score.
func (w *World) Score() int {
	return w.session.Score
}

// Effect returns a copy of the active power-up state, or nil when none.
func (w *World) Effect() *ActiveEffect {
	if w.effect == nil {
		return nil
	}
	e := *w.effect
	return &e
}

// SetInput replaces the pending input snapshot. The world clears the jump
// flag internally once consumed; level flags persist until the host
// replaces them.
func (w *World) SetInput(in InputFrame) {
	w.input = in
}

// Start begins the first session. Only valid from the Menu phase.
func (w *World) Start() {
	if w.phase != Menu {
		return
	}
	w.beginSession()
}

// Restart begins a fresh session after a game over. SessionState is
// replaced wholesale, every pool is cleared and any active effect is
// dropped before the phase flips back to Playing.
func (w *World) Restart() {
	if w.phase != GameOver {
		return
	}
	w.beginSession()
}

func (w *World) beginSession() {
	w.session = SessionState{}
	w.obstacles.Clear()
	w.powerUps.Clear()
	w.particles.Clear()
	w.spawner.Reset()
	w.effect = nil
	w.input = InputFrame{}
	w.resetPlayer()
	w.phase = Playing
	w.sink.ScoreChanged(0)
}

func (w *World) resetPlayer() {
	p := w.cfg.Player
	w.player = Player{
		Pos:      Vec3{X: 0, Y: p.HalfHeight, Z: 0},
		Half:     Vec3{X: p.HalfWidth, Y: p.HalfHeight, Z: p.HalfDepth},
		Grounded: true,
	}
}

// Advance feeds one host frame delta (seconds) into the fixed-step
// accumulator and drains whole steps. Deltas are sanitized before
// accumulation: NaN and negative values are discarded, oversized values
// clamp to the configured bound so a stalled host frame cannot cause a
// catch-up burst.
func (w *World) Advance(frameDt float64) {
	if math.IsNaN(frameDt) || frameDt < 0 {
		frameDt = 0
	}
	if frameDt > w.cfg.Loop.MaxFrameDelta {
		frameDt = w.cfg.Loop.MaxFrameDelta
	}

	w.acc += frameDt
	for w.acc >= w.step {
		w.acc -= w.step
		w.tick(w.step)
	}
}

// PendingTime returns the sub-step remainder currently buffered in the
// accumulator.
func (w *World) PendingTime() float64 {
	return w.acc
}

// Ticks returns the number of fixed steps executed since construction.
func (w *World) Ticks() uint64 {
	return w.ticks
}

// tick runs one fixed simulation step. Order is fixed: input, player,
// scheduler, entity updates, effect countdown, scoring, then collision
// resolution with the power-up pool before the obstacle pool.
func (w *World) tick(dt float64) {
	w.ticks++
	w.idleClock += dt

	if w.phase != Playing {
		// Entities keep their ambient motion and particles keep decaying,
		// but spawning, scoring and collision are suspended.
		w.updateEntities(dt)
		w.updateParticles(dt)
		return
	}

	w.session.Elapsed += dt
	if d := Difficulty(w.session.Score, w.cfg.Scheduler); d > w.session.MaxDifficulty {
		w.session.MaxDifficulty = d
	}

	w.applyInput(dt)
	w.updatePlayer(dt)

	obs, pus := w.spawner.Advance(dt, w.session.Score)
	for _, o := range obs {
		w.spawnObstacle(o)
	}
	for _, p := range pus {
		w.spawnPowerUp(p)
	}

	w.updateEntities(dt)
	w.updateParticles(dt)
	w.tickEffect(dt)
	w.tickScore(dt)
	w.resolveCollisions()
}

// applyInput consumes the pending input snapshot. Jump is one-shot:
// reading it clears it.
func (w *World) applyInput(dt float64) {
	p := w.cfg.Player
	if w.input.MoveLeft {
		w.player.Pos.X -= p.LateralSpeed * dt
	}
	if w.input.MoveRight {
		w.player.Pos.X += p.LateralSpeed * dt
	}
	span := w.cfg.Track.Width/2 - w.player.Half.X
	w.player.Pos.X = ClampF(w.player.Pos.X, -span, span)

	if w.input.JumpRequested {
		w.input.JumpRequested = false
		if w.player.Grounded {
			w.player.VelY = p.JumpImpulse
			w.player.Grounded = false
		}
	}
}

func (w *World) updatePlayer(dt float64) {
	if w.player.Grounded {
		return
	}
	w.player.VelY += w.cfg.Player.Gravity * dt
	w.player.Pos.Y += w.player.VelY * dt
	if w.player.Pos.Y <= w.player.Half.Y {
		w.player.Pos.Y = w.player.Half.Y
		w.player.VelY = 0
		w.player.Grounded = true
	}
}

func (w *World) spawnObstacle(spawn ObstacleSpawn) {
	_, o := w.obstacles.Acquire()
	if o == nil {
		return // pool exhausted: drop the spawn, never fail the tick
	}
	*o = Obstacle{
		Pos:       Vec3{X: spawn.X, Y: spawn.Half.Y, Z: w.cfg.Track.SpawnZ},
		Half:      spawn.Half,
		Speed:     spawn.Speed,
		Explosive: spawn.Explosive,
		Color:     spawn.Color,
	}
	o.box = NewBox(o.Pos, o.Half)
}

func (w *World) spawnPowerUp(spawn PowerUpSpawn) {
	_, p := w.powerUps.Acquire()
	if p == nil {
		return
	}
	h := w.cfg.PowerUps.HalfExtent
	*p = PowerUp{
		Pos:   Vec3{X: spawn.X, Y: h + 0.4, Z: w.cfg.Track.SpawnZ},
		Half:  Vec3{X: h, Y: h, Z: h},
		Speed: spawn.Speed,
		Kind:  spawn.Kind,
	}
	p.box = NewBox(p.Pos, p.Half)
}

// updateEntities advances obstacles and power-ups down the track,
// recomputes their bounding volumes and releases anything past the
// despawn plane. Bounding volumes of inactive slots are stale by
// definition and never consulted.
func (w *World) updateEntities(dt float64) {
	despawn := w.cfg.Track.DespawnZ

	w.obstacles.ForEachActive(func(i int, o *Obstacle) {
		o.Pos.Z += o.Speed * dt
		if o.Pos.Z > despawn {
			w.obstacles.Release(i)
			return
		}
		o.box = NewBox(o.Pos, o.Half)
	})

	w.powerUps.ForEachActive(func(i int, p *PowerUp) {
		p.Pos.Z += p.Speed * dt
		if p.Pos.Z > despawn {
			w.powerUps.Release(i)
			return
		}
		p.box = NewBox(p.Pos, p.Half)
	})
}

func (w *World) updateParticles(dt float64) {
	gravity := w.cfg.Particles.Gravity
	w.particles.ForEachActive(func(i int, p *Particle) {
		p.Vel.Y += gravity * dt
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Life -= dt
		if p.Life <= 0 {
			w.particles.Release(i)
		}
	})
}

// tickEffect counts the active effect down and drops it at expiry. No
// grace tick: the step that brings TimeLeft to zero or below ends it.
func (w *World) tickEffect(dt float64) {
	if w.effect == nil {
		return
	}
	w.effect.TimeLeft -= dt
	if w.effect.TimeLeft <= 0 {
		kind := w.effect.Kind
		w.effect = nil
		w.sink.PowerUpExpired(kind)
	}
}

// tickScore applies the periodic increment: +1 per scoring interval, +2
// while Double is active at that instant.
func (w *World) tickScore(dt float64) {
	interval := w.cfg.Scoring.Interval
	if interval <= 0 {
		return
	}
	w.session.scoreClock += dt
	for w.session.scoreClock >= interval {
		w.session.scoreClock -= interval
		points := 1
		if w.effect != nil && w.effect.Kind == Double {
			points = 2
		}
		w.addScore(points)
	}
}

// addScore raises the score and fires milestone events once per
// multiple-of-MilestoneEvery boundary crossed, even when one award skips
// several boundaries.
func (w *World) addScore(points int) {
	if points <= 0 {
		return
	}
	w.session.Score += points
	w.sink.ScoreChanged(w.session.Score)

	every := w.cfg.Scoring.MilestoneEvery
	if every <= 0 {
		return
	}
	index := w.session.Score / every
	for i := w.session.lastMilestone + 1; i <= index; i++ {
		w.sink.MilestoneReached(i)
	}
	if index > w.session.lastMilestone {
		w.session.lastMilestone = index
	}
}

// resolveCollisions runs the per-tick collision pass: the power-up pool
// is scanned before the obstacle pool, and each pool yields at most one
// hit.
func (w *World) resolveCollisions() {
	playerBox := NewBox(w.player.Pos, w.player.Half).Inset(w.cfg.Player.HitboxInset)

	if i := firstPowerUpHit(playerBox, w.powerUps, w.cfg.PowerUps.PickupOutset); i >= 0 {
		w.collectPowerUp(i)
	}

	if i := firstObstacleHit(playerBox, w.obstacles); i >= 0 {
		w.resolveObstacleCollision(i)
	}
}

// collectPowerUp removes the power-up from the world and installs its
// effect. Pickup always removes the entity, whatever the prior effect;
// the new effect overwrites any active one.
func (w *World) collectPowerUp(i int) {
	p := w.powerUps.Get(i)
	if p == nil {
		return
	}
	kind, pos := p.Kind, p.Pos
	w.powerUps.Release(i)

	w.effect = &ActiveEffect{
		Kind:     kind,
		TimeLeft: effectDuration(kind, w.cfg.PowerUps),
		Duration: effectDuration(kind, w.cfg.PowerUps),
	}
	w.bursts.SpawnPickup(pos, kind.Color(), w.cfg.Particles.PickupCount)
	w.sink.PowerUpAcquired(kind, pos)
}

func (w *World) resolveObstacleCollision(i int) {
	o := w.obstacles.Get(i)
	if o == nil {
		return
	}
	hit := *o

	switch resolveObstacleHit(w.effect) {
	case hitShatter:
		w.obstacles.Release(i)
		w.bursts.SpawnShatter(hit.Pos, hit.Color, w.cfg.Particles.ShatterCount)
		w.addScore(w.cfg.PowerUps.ShatterBonus)
		w.sink.ObstacleDestroyed(hit.Pos, hit.Color, true)

	case hitShield:
		w.obstacles.Release(i)
		w.bursts.SpawnShatter(hit.Pos, hit.Color, w.cfg.Particles.ShatterCount/2)
		w.sink.ObstacleDestroyed(hit.Pos, hit.Color, false)

	case hitFatal:
		if hit.Explosive {
			w.bursts.SpawnExplosion(hit.Pos, w.cfg.Particles.ExplosionCount)
		} else {
			w.bursts.SpawnShatter(hit.Pos, hit.Color, w.cfg.Particles.ShatterCount)
		}
		w.phase = GameOver
		w.effect = nil
		w.sink.PlayerDied(hit.Pos, hit.Explosive)
	}
}
