package observable

// Readable is the read side shared by [Property] and [Derived]. Views and
// recorders accept Readable so they work against either.
type Readable[T any] interface {
	// Get returns the current value.
	Get() T
	// Link registers a listener and invokes it immediately with the
	// current value.
	Link(fn Listener[T]) Handle
	// LazyLink registers a listener without the initial invocation.
	LazyLink(fn Listener[T]) Handle
}

// Property is a mutable observable value. It is owned by exactly one model
// or view object; anything else reads it through [Readable].
type Property[T any] struct {
	value    T
	old      T
	initial  T
	eq       func(a, b T) bool
	reg      registry[T]
	disposed bool
}

// New creates a property holding value. Redundant Set calls are suppressed
// with ==.
func New[T comparable](value T) *Property[T] {
	return NewWithEquals(value, func(a, b T) bool { return a == b })
}

// NewWithEquals creates a property for types that are not comparable, or
// that need a domain equality (slices, tolerance comparisons). A nil eq
// disables suppression entirely: every Set notifies.
func NewWithEquals[T any](value T, eq func(a, b T) bool) *Property[T] {
	if eq == nil {
		eq = func(a, b T) bool { return false }
	}
	return &Property[T]{value: value, old: value, initial: value, eq: eq}
}

// Get returns the current value.
func (p *Property[T]) Get() T { return p.value }

// Set assigns a new value and synchronously notifies all listeners with
// (value, old). Values equal to the current one (per the configured
// predicate) are ignored. A listener may itself call Set, on this or any
// other property; such re-entrant sets recurse directly, so each listener
// sees every transition exactly once.
func (p *Property[T]) Set(value T) {
	if p.disposed {
		panic("observable: Set on disposed Property")
	}
	if p.eq(value, p.value) {
		return
	}
	p.old = p.value
	p.value = value
	p.reg.notify(value, p.old)
}

// Link registers fn and invokes it once immediately with the current value
// as both arguments, so subscribers need no separate initialization step.
func (p *Property[T]) Link(fn Listener[T]) Handle {
	h := p.LazyLink(fn)
	fn(p.value, p.value)
	return h
}

// LazyLink registers fn without the initial invocation.
func (p *Property[T]) LazyLink(fn Listener[T]) Handle {
	if p.disposed {
		panic("observable: Link on disposed Property")
	}
	return p.reg.handleFor(p.reg.add(fn, false))
}

// Once registers fn for the next change only.
func (p *Property[T]) Once(fn Listener[T]) Handle {
	if p.disposed {
		panic("observable: Link on disposed Property")
	}
	return p.reg.handleFor(p.reg.add(fn, true))
}

// Reset restores the construction-time value through the normal Set path.
// Simulation elements live for the whole process; reset, not teardown, is
// how screens return to their initial state.
func (p *Property[T]) Reset() { p.Set(p.initial) }

// Dispose clears all listeners and marks the property dead. Set and Link
// afterwards are programmer errors and panic.
func (p *Property[T]) Dispose() {
	p.reg.clear()
	p.disposed = true
}

// Disposed reports whether Dispose has been called.
func (p *Property[T]) Disposed() bool { return p.disposed }
