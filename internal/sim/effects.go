package sim

import "github.com/vovakirdan/neon-runner/internal/config"

// ActiveEffect is the single timed power-up slot. At most one exists
// during a session; a new pickup overwrites the previous effect (last
// pickup wins, no stacking). The kind mutates collision and scoring
// outcomes until TimeLeft runs out.
type ActiveEffect struct {
	Kind     PowerUpKind
	TimeLeft float64
	Duration float64
}

// effectDuration returns the fixed activation window for a kind.
func effectDuration(kind PowerUpKind, cfg config.PowerUpsConfig) float64 {
	switch kind {
	case Shield:
		return cfg.ShieldDuration
	case Double:
		return cfg.DoubleDuration
	case Shatter:
		return cfg.ShatterDuration
	default:
		return 0
	}
}

// hitOutcome is the decision the effect model makes for an obstacle
// collision.
type hitOutcome int

const (
	hitFatal   hitOutcome = iota // no protective effect: session ends
	hitShatter                   // obstacle destroyed, bonus awarded
	hitShield                    // obstacle destroyed silently
)

// resolveObstacleHit applies the effect rules at collision-resolution
// time. Shatter and shield are timer-only: they are not consumed on use
// and keep working until expiry. Double never alters collision outcome.
func resolveObstacleHit(effect *ActiveEffect) hitOutcome {
	if effect == nil {
		return hitFatal
	}
	switch effect.Kind {
	case Shatter:
		return hitShatter
	case Shield:
		return hitShield
	case Double:
		return hitFatal
	default:
		return hitFatal
	}
}
