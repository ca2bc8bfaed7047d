package observable

// Derived is a read-only observable computed from one or more inputs by a
// pure function. Its value is recomputed synchronously whenever any input
// notifies, and pushed to its own listeners under the same equality
// suppression as [Property]. There is no Set: the read-only contract is
// enforced at compile time.
//
// A Derived holds non-owning references to its inputs. Dispose unlinks it
// from all of them; after that it never recomputes or notifies again,
// which is what keeps short-lived elements from being retained by the
// long-lived model properties they derive from.
type Derived[T any] struct {
	value    T
	old      T
	eq       func(a, b T) bool
	reg      registry[T]
	inputs   []Handle
	disposed bool
}

func newDerived[T comparable](initial T) *Derived[T] {
	return &Derived[T]{
		value: initial,
		old:   initial,
		eq:    func(a, b T) bool { return a == b },
	}
}

// push moves the derived value forward and notifies, unless suppressed.
func (d *Derived[T]) push(value T) {
	if d.disposed {
		return
	}
	if d.eq(value, d.value) {
		return
	}
	d.old = d.value
	d.value = value
	d.reg.notify(value, d.old)
}

// Get returns the current value.
func (d *Derived[T]) Get() T { return d.value }

// Link registers fn and invokes it once immediately with the current value.
func (d *Derived[T]) Link(fn Listener[T]) Handle {
	h := d.LazyLink(fn)
	fn(d.value, d.value)
	return h
}

// LazyLink registers fn without the initial invocation.
func (d *Derived[T]) LazyLink(fn Listener[T]) Handle {
	if d.disposed {
		panic("observable: Link on disposed Derived")
	}
	return d.reg.handleFor(d.reg.add(fn, false))
}

// Once registers fn for the next change only.
func (d *Derived[T]) Once(fn Listener[T]) Handle {
	if d.disposed {
		panic("observable: Link on disposed Derived")
	}
	return d.reg.handleFor(d.reg.add(fn, true))
}

// Dispose unlinks from all inputs and clears all listeners. Idempotent.
func (d *Derived[T]) Dispose() {
	if d.disposed {
		return
	}
	for _, h := range d.inputs {
		h.Unlink()
	}
	d.inputs = nil
	d.reg.clear()
	d.disposed = true
}

// Disposed reports whether Dispose has been called.
func (d *Derived[T]) Disposed() bool { return d.disposed }

// Derive1 creates a derived value f(a), kept current as a changes.
func Derive1[A any, T comparable](a Readable[A], f func(A) T) *Derived[T] {
	d := newDerived(f(a.Get()))
	recompute := func() { d.push(f(a.Get())) }
	d.inputs = []Handle{
		a.LazyLink(func(A, A) { recompute() }),
	}
	return d
}

// Derive2 creates a derived value f(a, b).
func Derive2[A, B any, T comparable](a Readable[A], b Readable[B], f func(A, B) T) *Derived[T] {
	d := newDerived(f(a.Get(), b.Get()))
	recompute := func() { d.push(f(a.Get(), b.Get())) }
	d.inputs = []Handle{
		a.LazyLink(func(A, A) { recompute() }),
		b.LazyLink(func(B, B) { recompute() }),
	}
	return d
}

// Derive3 creates a derived value f(a, b, c).
func Derive3[A, B, C any, T comparable](a Readable[A], b Readable[B], c Readable[C], f func(A, B, C) T) *Derived[T] {
	d := newDerived(f(a.Get(), b.Get(), c.Get()))
	recompute := func() { d.push(f(a.Get(), b.Get(), c.Get())) }
	d.inputs = []Handle{
		a.LazyLink(func(A, A) { recompute() }),
		b.LazyLink(func(B, B) { recompute() }),
		c.LazyLink(func(C, C) { recompute() }),
	}
	return d
}

// Derive4 creates a derived value f(a, b, c, e).
func Derive4[A, B, C, E any, T comparable](a Readable[A], b Readable[B], c Readable[C], e Readable[E], f func(A, B, C, E) T) *Derived[T] {
	d := newDerived(f(a.Get(), b.Get(), c.Get(), e.Get()))
	recompute := func() { d.push(f(a.Get(), b.Get(), c.Get(), e.Get())) }
	d.inputs = []Handle{
		a.LazyLink(func(A, A) { recompute() }),
		b.LazyLink(func(B, B) { recompute() }),
		c.LazyLink(func(C, C) { recompute() }),
		e.LazyLink(func(E, E) { recompute() }),
	}
	return d
}
