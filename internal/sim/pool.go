package sim

// Pool is a fixed-capacity arena of reusable entity slots. Slots are
// toggled active/inactive instead of being allocated and freed, so a long
// session does no entity allocation after construction. Iteration and
// acquisition both walk slots in index order, which keeps every pass
// deterministic for a given pool layout.
type Pool[T any] struct {
	slots  []T
	active []bool
	count  int
}

// NewPool creates a pool with the given fixed capacity.
func NewPool[T any](capacity int) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool[T]{
		slots:  make([]T, capacity),
		active: make([]bool, capacity),
	}
}

// Acquire returns the index and pointer of the first inactive slot, or
// (-1, nil) if every slot is active. Callers must tolerate the no-slot
// case: a spawn request against a full pool is silently dropped.
func (p *Pool[T]) Acquire() (int, *T) {
	for i := range p.active {
		if !p.active[i] {
			p.active[i] = true
			p.count++
			return i, &p.slots[i]
		}
	}
	return -1, nil
}

// Release marks the slot inactive. Releasing an already-inactive or
// out-of-range slot is a no-op.
func (p *Pool[T]) Release(i int) {
	if i < 0 || i >= len(p.active) || !p.active[i] {
		return
	}
	p.active[i] = false
	p.count--
}

// ForEachActive calls fn for every active slot in slot order. fn may
// release the slot it is given; slots activated during iteration at lower
// indices are not revisited.
func (p *Pool[T]) ForEachActive(fn func(i int, v *T)) {
	for i := range p.slots {
		if p.active[i] {
			fn(i, &p.slots[i])
		}
	}
}

// Get returns a pointer to the slot at i, or nil if i is out of range or
// the slot is inactive.
func (p *Pool[T]) Get(i int) *T {
	if i < 0 || i >= len(p.active) || !p.active[i] {
		return nil
	}
	return &p.slots[i]
}

// ActiveCount returns the number of active slots.
func (p *Pool[T]) ActiveCount() int {
	return p.count
}

// Cap returns the fixed capacity of the pool.
func (p *Pool[T]) Cap() int {
	return len(p.slots)
}

// Clear releases every slot. Slot contents are left in place and
// overwritten on the next acquire.
func (p *Pool[T]) Clear() {
	for i := range p.active {
		p.active[i] = false
	}
	p.count = 0
}
