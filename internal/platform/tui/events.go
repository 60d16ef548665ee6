package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-runner/internal/sim"
)

// LogSink forwards simulation events to a structured logger. It is wired
// in debug mode so event flow can be inspected without touching the
// simulation.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink creates a sink over the given logger.
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (l *LogSink) ScoreChanged(score int) {
	l.logger.Debug("score changed", "score", score)
}

func (l *LogSink) MilestoneReached(index int) {
	l.logger.Info("milestone reached", "index", index)
}

func (l *LogSink) PowerUpAcquired(kind sim.PowerUpKind, pos sim.Vec3) {
	l.logger.Info("power-up acquired", "kind", kind.Label(), "x", pos.X, "z", pos.Z)
}

func (l *LogSink) PowerUpExpired(kind sim.PowerUpKind) {
	l.logger.Info("power-up expired", "kind", kind.Label())
}

func (l *LogSink) ObstacleDestroyed(pos sim.Vec3, _ sim.ColorTag, bonus bool) {
	l.logger.Info("obstacle destroyed", "x", pos.X, "z", pos.Z, "bonus", bonus)
}

func (l *LogSink) PlayerDied(pos sim.Vec3, explosive bool) {
	l.logger.Info("player died", "x", pos.X, "z", pos.Z, "explosive", explosive)
}
