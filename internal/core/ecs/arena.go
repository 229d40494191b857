package ecs

type slot[T any] struct {
	id  EntityID
	val T
}

// Arena is an ordered collection of values addressed by generational handles.
// Values added while a caller walks the arena by index land past the walk's
// captured length, so a pass that reads Len() once never visits them.
// Removal happens only in Sweep, which compacts the slice in a single pass.
// Accessed only from the simulation goroutine, no locks.
type Arena[T any] struct {
	pool  *EntityPool
	slots []slot[T]
}

func NewArena[T any]() *Arena[T] {
	return &Arena[T]{
		pool:  NewEntityPool(),
		slots: make([]slot[T], 0, 256),
	}
}

// Add appends v and returns its handle.
func (a *Arena[T]) Add(v T) EntityID {
	id := a.pool.Create()
	a.slots = append(a.slots, slot[T]{id: id, val: v})
	return id
}

func (a *Arena[T]) Len() int { return len(a.slots) }

// At returns the i-th value in insertion order.
func (a *Arena[T]) At(i int) T { return a.slots[i].val }

// Each visits every value in insertion order.
func (a *Arena[T]) Each(fn func(EntityID, T)) {
	for i := range a.slots {
		fn(a.slots[i].id, a.slots[i].val)
	}
}

// Sweep drops every value for which keep returns false, preserving the
// order of survivors, and releases the dropped handles. Returns the number
// of values removed.
func (a *Arena[T]) Sweep(keep func(T) bool) int {
	var zero T
	n := 0
	for i := range a.slots {
		if keep(a.slots[i].val) {
			a.slots[n] = a.slots[i]
			n++
			continue
		}
		a.pool.Destroy(a.slots[i].id)
	}
	removed := len(a.slots) - n
	for i := n; i < len(a.slots); i++ {
		a.slots[i] = slot[T]{val: zero}
	}
	a.slots = a.slots[:n]
	return removed
}

// Clear removes everything and invalidates all handles.
func (a *Arena[T]) Clear() {
	var zero T
	for i := range a.slots {
		a.slots[i] = slot[T]{val: zero}
	}
	a.slots = a.slots[:0]
	a.pool.Reset()
}
