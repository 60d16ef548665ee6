package sim

// EntityKind tags a snapshot entity for the render layer.
type EntityKind int

const (
	KindObstacle EntityKind = iota
	KindPowerUp
)

// EntityView is a value copy of one active entity, carrying everything a
// visual layer needs to draw it. The core never queries back the rendered
// form.
type EntityView struct {
	Kind      EntityKind
	Pos       Vec3
	Half      Vec3
	Color     ColorTag
	Explosive bool
	PowerUp   PowerUpKind // valid when Kind == KindPowerUp
}

// ParticleView is a value copy of one live particle.
type ParticleView struct {
	Pos      Vec3
	LifeFrac float64
	Color    ColorTag
}

// Snapshot captures the world state for rendering and determinism tests.
// Everything is copied by value; the snapshot stays valid after further
// ticks.
type Snapshot struct {
	Phase      Phase
	Score      int
	Difficulty float64
	Elapsed    float64

	Player    Player
	Entities  []EntityView
	Particles []ParticleView

	Effect *ActiveEffect // nil when no power-up is active

	IdleClock float64 // simulation-time phase for idle float/pulse motion
}

// Snapshot returns a value copy of the current world state.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:      w.phase,
		Score:      w.session.Score,
		Difficulty: Difficulty(w.session.Score, w.cfg.Scheduler),
		Elapsed:    w.session.Elapsed,
		Player:     w.player,
		Effect:     w.Effect(),
		IdleClock:  w.idleClock,
	}

	snap.Entities = make([]EntityView, 0, w.obstacles.ActiveCount()+w.powerUps.ActiveCount())
	w.obstacles.ForEachActive(func(_ int, o *Obstacle) {
		snap.Entities = append(snap.Entities, EntityView{
			Kind:      KindObstacle,
			Pos:       o.Pos,
			Half:      o.Half,
			Color:     o.Color,
			Explosive: o.Explosive,
		})
	})
	w.powerUps.ForEachActive(func(_ int, p *PowerUp) {
		snap.Entities = append(snap.Entities, EntityView{
			Kind:    KindPowerUp,
			Pos:     p.Pos,
			Half:    p.Half,
			Color:   p.Kind.Color(),
			PowerUp: p.Kind,
		})
	})

	snap.Particles = make([]ParticleView, 0, w.particles.ActiveCount())
	w.particles.ForEachActive(func(_ int, p *Particle) {
		snap.Particles = append(snap.Particles, ParticleView{
			Pos:      p.Pos,
			LifeFrac: p.LifeFrac(),
			Color:    p.Color,
		})
	})

	return snap
}
