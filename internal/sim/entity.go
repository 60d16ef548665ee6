package sim

// ColorTag is an opaque visual hint attached to obstacles and particles.
// The simulation never branches on it; it is echoed back to the render and
// HUD layers on collision and destruction events.
type ColorTag uint8

// Neon palette tags understood by the render layer.
const (
	ColorNone ColorTag = iota
	ColorCyan
	ColorMagenta
	ColorYellow
	ColorOrange
	ColorGreen
	ColorRed
	ColorWhite
)

// obstaclePalette is the set of tags rolled for freshly spawned obstacles.
var obstaclePalette = []ColorTag{ColorCyan, ColorMagenta, ColorYellow, ColorOrange, ColorGreen}

// Obstacle is a block traveling down the track toward the player.
type Obstacle struct {
	Pos       Vec3
	Half      Vec3
	Speed     float64
	Explosive bool
	Color     ColorTag
	box       Box
}

// PowerUpKind identifies a power-up. The set is closed: effect resolution
// switches exhaustively over it, so adding a kind is a compile-time change.
type PowerUpKind int

const (
	Shield PowerUpKind = iota
	Double
	Shatter
	powerUpKindCount // sentinel for uniform rolls
)

// Label returns the HUD-facing name of the kind.
func (k PowerUpKind) Label() string {
	switch k {
	case Shield:
		return "SHIELD"
	case Double:
		return "DOUBLE"
	case Shatter:
		return "SHATTER"
	default:
		return "?"
	}
}

// Color returns the visual tag associated with the kind.
func (k PowerUpKind) Color() ColorTag {
	switch k {
	case Shield:
		return ColorCyan
	case Double:
		return ColorYellow
	case Shatter:
		return ColorMagenta
	default:
		return ColorWhite
	}
}

// PowerUp is a collectible traveling at obstacle speed so relative timing
// stays consistent across the difficulty curve.
type PowerUp struct {
	Pos   Vec3
	Half  Vec3
	Speed float64
	Kind  PowerUpKind
	box   Box
}

// Particle is a short-lived cosmetic fragment. Life counts down to zero;
// the fade/scale curve is a rendering concern derived from Life/MaxLife.
type Particle struct {
	Pos     Vec3
	Vel     Vec3
	Life    float64
	MaxLife float64
	Color   ColorTag
}

// LifeFrac returns the remaining-life ratio in [0, 1] for render fade.
func (p *Particle) LifeFrac() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return ClampF(p.Life/p.MaxLife, 0, 1)
}
