package sim

// InputFrame is the per-tick input snapshot consumed by the world.
// MoveLeft/MoveRight are level signals held for the ticks of one host
// frame; JumpRequested is edge-triggered and cleared by the world the
// first time it is read.
type InputFrame struct {
	MoveLeft      bool
	MoveRight     bool
	JumpRequested bool
}
