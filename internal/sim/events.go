package sim

// Sink receives discrete simulation events. Notifications are
// fire-and-forget: the world never waits on a sink and a slow or missing
// collaborator cannot stall a tick. Implementations must not call back
// into the world.
type Sink interface {
	// ScoreChanged fires whenever the session score changes.
	ScoreChanged(score int)

	// MilestoneReached fires exactly once per multiple-of-50 boundary the
	// score crosses; index is the boundary number (score 50 -> 1).
	MilestoneReached(index int)

	// PowerUpAcquired fires when the player collects a power-up.
	PowerUpAcquired(kind PowerUpKind, pos Vec3)

	// PowerUpExpired fires when the active effect's timer runs out.
	PowerUpExpired(kind PowerUpKind)

	// ObstacleDestroyed fires when an obstacle is removed by a shield or
	// shatter collision; bonus marks shatter hits that awarded score.
	ObstacleDestroyed(pos Vec3, color ColorTag, bonus bool)

	// PlayerDied fires on a fatal obstacle collision.
	PlayerDied(pos Vec3, explosive bool)
}

// NopSink discards every event. Used when no collaborator is attached.
type NopSink struct{}

func (NopSink) ScoreChanged(int)                       {}
func (NopSink) MilestoneReached(int)                   {}
func (NopSink) PowerUpAcquired(PowerUpKind, Vec3)      {}
func (NopSink) PowerUpExpired(PowerUpKind)             {}
func (NopSink) ObstacleDestroyed(Vec3, ColorTag, bool) {}
func (NopSink) PlayerDied(Vec3, bool)                  {}

// MultiSink fans events out to several sinks in order.
type MultiSink []Sink

func (m MultiSink) ScoreChanged(score int) {
	for _, s := range m {
		s.ScoreChanged(score)
	}
}

func (m MultiSink) MilestoneReached(index int) {
	for _, s := range m {
		s.MilestoneReached(index)
	}
}

func (m MultiSink) PowerUpAcquired(kind PowerUpKind, pos Vec3) {
	for _, s := range m {
		s.PowerUpAcquired(kind, pos)
	}
}

func (m MultiSink) PowerUpExpired(kind PowerUpKind) {
	for _, s := range m {
		s.PowerUpExpired(kind)
	}
}

func (m MultiSink) ObstacleDestroyed(pos Vec3, color ColorTag, bonus bool) {
	for _, s := range m {
		s.ObstacleDestroyed(pos, color, bonus)
	}
}

func (m MultiSink) PlayerDied(pos Vec3, explosive bool) {
	for _, s := range m {
		s.PlayerDied(pos, explosive)
	}
}
