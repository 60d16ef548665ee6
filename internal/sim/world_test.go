package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/neon-runner/internal/config"
)

// recordSink captures every emitted event for assertions.
type recordSink struct {
	scores     []int
	milestones []int
	acquired   []PowerUpKind
	expired    []PowerUpKind
	destroyed  []bool // bonus flag per destruction
	deaths     []bool // explosive flag per death
}

func (r *recordSink) ScoreChanged(score int)     { r.scores = append(r.scores, score) }
func (r *recordSink) MilestoneReached(index int) { r.milestones = append(r.milestones, index) }
func (r *recordSink) PowerUpAcquired(kind PowerUpKind, _ Vec3) {
	r.acquired = append(r.acquired, kind)
}
func (r *recordSink) PowerUpExpired(kind PowerUpKind) { r.expired = append(r.expired, kind) }
func (r *recordSink) ObstacleDestroyed(_ Vec3, _ ColorTag, bonus bool) {
	r.destroyed = append(r.destroyed, bonus)
}
func (r *recordSink) PlayerDied(_ Vec3, explosive bool) { r.deaths = append(r.deaths, explosive) }

func newTestWorld(seed int64, sink Sink) *World {
	return New(config.DefaultRunnerConfig(), seed, sink)
}

// plantObstacle places a stationary obstacle overlapping the player so the
// next tick resolves a collision.
func plantObstacle(w *World, explosive bool) {
	_, o := w.obstacles.Acquire()
	if o == nil {
		panic("obstacle pool full in test setup")
	}
	*o = Obstacle{
		Pos:       w.player.Pos,
		Half:      Vec3{1, 1, 0.8},
		Speed:     0,
		Explosive: explosive,
		Color:     ColorCyan,
	}
	o.box = NewBox(o.Pos, o.Half)
}

func TestFixedStepAccumulator(t *testing.T) {
	w := newTestWorld(1, nil)

	w.Advance(0.05)

	if w.Ticks() != 3 {
		t.Errorf("Advance(0.05) ran %d steps, expected 3", w.Ticks())
	}
	if w.PendingTime() >= 1.0/60.0 {
		t.Errorf("accumulator remainder %f should be below one step", w.PendingTime())
	}

	// The remainder carries into the next frame.
	w.Advance(1.0 / 60.0)
	if w.Ticks() != 4 {
		t.Errorf("after one more step-sized frame, %d steps, expected 4", w.Ticks())
	}
}

func TestFrameDeltaSanitized(t *testing.T) {
	w := newTestWorld(1, nil)

	w.Advance(math.NaN())
	w.Advance(-5)
	if w.Ticks() != 0 {
		t.Errorf("NaN/negative deltas ran %d steps, expected 0", w.Ticks())
	}

	// A stalled frame clamps to the bound: at most 0.1s of catch-up.
	w.Advance(30)
	if w.Ticks() != 6 {
		t.Errorf("clamped delta ran %d steps, expected 6", w.Ticks())
	}
}

func TestStartAndRestartTransitions(t *testing.T) {
	w := newTestWorld(1, nil)

	if w.Phase() != Menu {
		t.Fatalf("initial phase = %v, expected Menu", w.Phase())
	}

	w.Restart() // invalid from Menu
	if w.Phase() != Menu {
		t.Error("Restart from Menu should be a no-op")
	}

	w.Start()
	if w.Phase() != Playing {
		t.Fatalf("phase after Start = %v, expected Playing", w.Phase())
	}

	w.Start() // invalid from Playing
	if w.Phase() != Playing {
		t.Error("Start from Playing should be a no-op")
	}
}

func TestMenuSuspendsSpawningAndScoring(t *testing.T) {
	w := newTestWorld(1, nil)

	for i := 0; i < 120; i++ {
		w.Advance(0.05)
	}

	if w.Score() != 0 {
		t.Errorf("score in Menu = %d, expected 0", w.Score())
	}
	if w.obstacles.ActiveCount() != 0 || w.powerUps.ActiveCount() != 0 {
		t.Error("no entities should spawn while in Menu")
	}
}

func TestShieldExpiry(t *testing.T) {
	sink := &recordSink{}
	w := newTestWorld(1, sink)
	w.Start()

	w.effect = &ActiveEffect{Kind: Shield, TimeLeft: 5, Duration: 5}

	// Advance a bit more than 5 simulated seconds in step-sized frames.
	for i := 0; i < 302; i++ {
		w.Advance(1.0 / 60.0)
	}

	if w.Effect() != nil {
		t.Errorf("effect should be absent after 5.01s, got %+v", w.Effect())
	}
	if len(sink.expired) != 1 || sink.expired[0] != Shield {
		t.Errorf("expected one Shield expiry event, got %v", sink.expired)
	}
}

func TestShatterCollision(t *testing.T) {
	sink := &recordSink{}
	w := newTestWorld(1, sink)
	w.Start()

	w.effect = &ActiveEffect{Kind: Shatter, TimeLeft: 6, Duration: 6}
	plantObstacle(w, false)

	w.Advance(1.0 / 60.0)

	if w.Phase() != Playing {
		t.Fatal("shatter collision must not end the session")
	}
	if w.Score() != 5 {
		t.Errorf("score = %d, expected the +5 shatter bonus", w.Score())
	}
	if w.obstacles.ActiveCount() != 0 {
		t.Error("colliding obstacle should be released to the pool")
	}
	if len(sink.destroyed) != 1 || !sink.destroyed[0] {
		t.Errorf("expected one bonus destruction event, got %v", sink.destroyed)
	}
	if w.particles.ActiveCount() == 0 {
		t.Error("shatter should request a particle burst")
	}
	if w.Effect() == nil || w.Effect().Kind != Shatter {
		t.Error("shatter is timer-only: it must not be consumed on use")
	}
}

func TestShieldCollisionSilent(t *testing.T) {
	sink := &recordSink{}
	w := newTestWorld(1, sink)
	w.Start()

	w.effect = &ActiveEffect{Kind: Shield, TimeLeft: 5, Duration: 5}
	plantObstacle(w, false)

	w.Advance(1.0 / 60.0)

	if w.Phase() != Playing {
		t.Fatal("shield collision must not end the session")
	}
	if w.Score() != 0 {
		t.Errorf("score = %d, shield destruction awards no bonus", w.Score())
	}
	if len(sink.destroyed) != 1 || sink.destroyed[0] {
		t.Errorf("expected one non-bonus destruction event, got %v", sink.destroyed)
	}
}

func TestBareCollisionFatal(t *testing.T) {
	sink := &recordSink{}
	w := newTestWorld(1, sink)
	w.Start()

	plantObstacle(w, false)
	w.Advance(1.0 / 60.0)

	if w.Phase() != GameOver {
		t.Fatalf("phase = %v, expected GameOver", w.Phase())
	}
	if w.Score() != 0 {
		t.Errorf("fatal collision must not award a bonus, score = %d", w.Score())
	}
	if len(sink.deaths) != 1 || sink.deaths[0] {
		t.Errorf("expected one non-explosive death event, got %v", sink.deaths)
	}
}

func TestExplosiveCollisionReportsFlag(t *testing.T) {
	sink := &recordSink{}
	w := newTestWorld(1, sink)
	w.Start()

	plantObstacle(w, true)
	w.Advance(1.0 / 60.0)

	if len(sink.deaths) != 1 || !sink.deaths[0] {
		t.Errorf("expected an explosive death event, got %v", sink.deaths)
	}
}

func TestDoubleDoesNotProtect(t *testing.T) {
	w := newTestWorld(1, nil)
	w.Start()

	w.effect = &ActiveEffect{Kind: Double, TimeLeft: 8, Duration: 8}
	plantObstacle(w, false)
	w.Advance(1.0 / 60.0)

	if w.Phase() != GameOver {
		t.Error("Double must not alter collision outcome")
	}
}

func TestScoringRate(t *testing.T) {
	// 63 step-sized frames = 1.05 simulated seconds = 10 scoring intervals.
	advance := func(w *World) {
		for i := 0; i < 63; i++ {
			w.Advance(1.0 / 60.0)
		}
	}

	plain := newTestWorld(1, nil)
	plain.Start()
	advance(plain)
	if plain.Score() != 10 {
		t.Errorf("score after 1.05s = %d, expected 10", plain.Score())
	}

	doubled := newTestWorld(1, nil)
	doubled.Start()
	doubled.effect = &ActiveEffect{Kind: Double, TimeLeft: 100, Duration: 100}
	advance(doubled)
	if doubled.Score() != 20 {
		t.Errorf("score after 1.05s under Double = %d, expected 20", doubled.Score())
	}
}

func TestMilestoneFiresOncePerBoundary(t *testing.T) {
	sink := &recordSink{}
	w := newTestWorld(1, sink)
	w.Start()

	w.addScore(49)
	if len(sink.milestones) != 0 {
		t.Fatalf("milestones at score 49: %v", sink.milestones)
	}

	w.addScore(1) // 50
	w.addScore(1) // 51: same boundary, no refire
	if len(sink.milestones) != 1 || sink.milestones[0] != 1 {
		t.Fatalf("milestones at score 51: %v, expected [1]", sink.milestones)
	}

	// One award skipping several boundaries fires each exactly once.
	w.addScore(150) // 201
	want := []int{1, 2, 3, 4}
	if len(sink.milestones) != len(want) {
		t.Fatalf("milestones = %v, expected %v", sink.milestones, want)
	}
	for i := range want {
		if sink.milestones[i] != want[i] {
			t.Fatalf("milestones = %v, expected %v", sink.milestones, want)
		}
	}
}

func TestPowerUpPickup(t *testing.T) {
	sink := &recordSink{}
	w := newTestWorld(1, sink)
	w.Start()

	_, p := w.powerUps.Acquire()
	*p = PowerUp{
		Pos:  w.player.Pos,
		Half: Vec3{0.6, 0.6, 0.6},
		Kind: Shatter,
	}
	p.box = NewBox(p.Pos, p.Half)

	w.Advance(1.0 / 60.0)

	if w.powerUps.ActiveCount() != 0 {
		t.Error("picked-up power-up should be removed from the world")
	}
	eff := w.Effect()
	if eff == nil || eff.Kind != Shatter {
		t.Fatalf("effect = %+v, expected active Shatter", eff)
	}
	if eff.Duration != 6 {
		t.Errorf("shatter duration = %f, expected 6", eff.Duration)
	}
	if len(sink.acquired) != 1 || sink.acquired[0] != Shatter {
		t.Errorf("acquired events = %v", sink.acquired)
	}
}

func TestLastPickupWins(t *testing.T) {
	w := newTestWorld(1, nil)
	w.Start()

	w.effect = &ActiveEffect{Kind: Shield, TimeLeft: 4, Duration: 5}

	_, p := w.powerUps.Acquire()
	*p = PowerUp{Pos: w.player.Pos, Half: Vec3{0.6, 0.6, 0.6}, Kind: Double}
	p.box = NewBox(p.Pos, p.Half)

	w.Advance(1.0 / 60.0)

	eff := w.Effect()
	if eff == nil || eff.Kind != Double {
		t.Fatalf("effect = %+v, expected Double to overwrite Shield", eff)
	}
}

func TestRestartResetsSession(t *testing.T) {
	w := newTestWorld(1, nil)
	w.Start()

	w.addScore(75)
	w.effect = &ActiveEffect{Kind: Shield, TimeLeft: 5, Duration: 5}
	plantObstacle(w, false)
	w.spawnPowerUp(PowerUpSpawn{X: 0, Speed: 10, Kind: Double})
	w.bursts.SpawnPickup(Vec3{}, ColorCyan, 5)

	// Force a game over.
	w.effect = nil
	w.Advance(1.0 / 60.0)
	if w.Phase() != GameOver {
		t.Fatal("setup should end in GameOver")
	}

	w.Restart()

	if w.Phase() != Playing {
		t.Errorf("phase after Restart = %v, expected Playing", w.Phase())
	}
	if w.Score() != 0 {
		t.Errorf("score after Restart = %d, expected 0", w.Score())
	}
	if w.obstacles.ActiveCount() != 0 || w.powerUps.ActiveCount() != 0 || w.particles.ActiveCount() != 0 {
		t.Error("all pools should be cleared on Restart")
	}
	if w.Effect() != nil {
		t.Error("active effect should be cleared on Restart")
	}
}

func TestJumpIsOneShot(t *testing.T) {
	w := newTestWorld(1, nil)
	w.Start()

	w.SetInput(InputFrame{JumpRequested: true})
	w.Advance(1.0 / 60.0)

	if w.player.Grounded {
		t.Fatal("player should be airborne after a jump")
	}
	if w.input.JumpRequested {
		t.Error("jump flag should be cleared once consumed")
	}

	// The player comes back down and lands.
	for i := 0; i < 120; i++ {
		w.Advance(1.0 / 60.0)
	}
	if !w.player.Grounded {
		t.Error("player should have landed")
	}
	if w.player.Pos.Y != w.player.Half.Y {
		t.Errorf("player rest height = %f, expected %f", w.player.Pos.Y, w.player.Half.Y)
	}
}

func TestLateralMovementClamped(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	w := New(cfg, 1, nil)
	w.Start()

	w.SetInput(InputFrame{MoveRight: true})
	for i := 0; i < 300; i++ {
		w.Advance(1.0 / 60.0)
		w.SetInput(InputFrame{MoveRight: true})
		if w.Phase() != Playing {
			break
		}
	}

	limit := cfg.Track.Width/2 - cfg.Player.HalfWidth
	if w.player.Pos.X > limit+1e-9 {
		t.Errorf("player x = %f exceeds track limit %f", w.player.Pos.X, limit)
	}
}

func TestPoolCapacityHeldUnderLoad(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	w := New(cfg, 42, nil)
	w.Start()

	// Run a long session; on death, restart and keep going.
	for i := 0; i < 4000; i++ {
		w.Advance(0.05)
		if w.obstacles.ActiveCount() > cfg.Pools.Obstacles ||
			w.powerUps.ActiveCount() > cfg.Pools.PowerUps ||
			w.particles.ActiveCount() > cfg.Pools.Particles {
			t.Fatal("a pool exceeded its fixed capacity")
		}
		if w.Phase() == GameOver {
			w.Restart()
		}
	}
}

func TestWorldDeterminism(t *testing.T) {
	run := func() Snapshot {
		w := newTestWorld(12345, nil)
		w.Start()
		for i := 0; i < 600; i++ {
			in := InputFrame{}
			switch {
			case i%40 < 10:
				in.MoveLeft = true
			case i%40 < 20:
				in.MoveRight = true
			}
			if i%90 == 0 {
				in.JumpRequested = true
			}
			w.SetInput(in)
			w.Advance(0.02)
		}
		return w.Snapshot()
	}

	s1 := run()
	s2 := run()

	if s1.Score != s2.Score || s1.Phase != s2.Phase {
		t.Fatalf("runs diverged: score %d/%d phase %v/%v", s1.Score, s2.Score, s1.Phase, s2.Phase)
	}
	if len(s1.Entities) != len(s2.Entities) {
		t.Fatalf("entity counts diverged: %d vs %d", len(s1.Entities), len(s2.Entities))
	}
	for i := range s1.Entities {
		if s1.Entities[i] != s2.Entities[i] {
			t.Fatalf("entity %d diverged: %+v vs %+v", i, s1.Entities[i], s2.Entities[i])
		}
	}
	if s1.Player != s2.Player {
		t.Fatalf("player diverged: %+v vs %+v", s1.Player, s2.Player)
	}
}

func TestDespawnPastNearPlane(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	w := New(cfg, 1, nil)
	w.Start()

	_, o := w.obstacles.Acquire()
	*o = Obstacle{
		Pos:   Vec3{X: 9, Y: 1, Z: cfg.Track.DespawnZ - 0.1},
		Half:  Vec3{1, 1, 0.8},
		Speed: 30,
	}
	o.box = NewBox(o.Pos, o.Half)

	w.Advance(1.0 / 60.0)

	if w.obstacles.ActiveCount() != 0 {
		t.Error("obstacle past the despawn plane should be released")
	}
}
