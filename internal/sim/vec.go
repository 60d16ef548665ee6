// Package sim implements the endless-runner simulation core: the
// fixed-step world loop, pooled entity lifecycle, axis-aligned collision,
// the spawn/difficulty scheduler and the power-up effect model. It contains
// no terminal or storage dependencies so the whole simulation stays pure
// and deterministic for a given seed.
package sim

// Vec3 is a point or direction in track space. X is lateral, Y is up,
// Z is depth (entities travel toward positive Z, the player sits near 0).
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns the vector multiplied by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Box is an axis-aligned bounding volume stored as center + half-extents.
type Box struct {
	Center Vec3
	Half   Vec3
}

// NewBox creates a box from a center position and half-extents.
func NewBox(center, half Vec3) Box {
	return Box{Center: center, Half: half}
}

// Intersects reports whether two boxes overlap on all three axes.
// Intervals are closed: touching faces count as intersecting.
func (b Box) Intersects(o Box) bool {
	if abs(b.Center.X-o.Center.X) > b.Half.X+o.Half.X {
		return false
	}
	if abs(b.Center.Y-o.Center.Y) > b.Half.Y+o.Half.Y {
		return false
	}
	return abs(b.Center.Z-o.Center.Z) <= b.Half.Z+o.Half.Z
}

// Inset shrinks the box by m on each axis. Half-extents never go below
// zero, so an oversized margin degrades to a point rather than inverting.
func (b Box) Inset(m float64) Box {
	return Box{
		Center: b.Center,
		Half: Vec3{
			X: maxF(b.Half.X-m, 0),
			Y: maxF(b.Half.Y-m, 0),
			Z: maxF(b.Half.Z-m, 0),
		},
	}
}

// Outset grows the box by m on each axis.
func (b Box) Outset(m float64) Box {
	return Box{
		Center: b.Center,
		Half:   Vec3{X: b.Half.X + m, Y: b.Half.Y + m, Z: b.Half.Z + m},
	}
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
