package observable

// Listener receives the new value and the value it replaced. For the
// immediate invocation at Link time both arguments carry the current value.
type Listener[T any] func(value, old T)

// Handle removes a registered listener. Unlink is idempotent and safe to
// call while a notification pass is in progress: the listener will not run
// again, even if it was captured for the current pass.
type Handle struct {
	unlink func()
}

// Unlink removes the listener the handle was returned for.
func (h Handle) Unlink() {
	if h.unlink != nil {
		h.unlink()
	}
}

// Join merges several handles into one that unlinks them all.
func Join(handles ...Handle) Handle {
	return Handle{unlink: func() {
		for _, h := range handles {
			h.Unlink()
		}
	}}
}

type entry[T any] struct {
	fn      Listener[T]
	once    bool
	removed bool
}

// registry is the per-observable listener list. Mutation during a
// notification pass is handled by iterating a snapshot and checking the
// removed flag on each entry before invoking it.
type registry[T any] struct {
	entries []*entry[T]
}

func (r *registry[T]) add(fn Listener[T], once bool) *entry[T] {
	e := &entry[T]{fn: fn, once: once}
	r.entries = append(r.entries, e)
	return e
}

func (r *registry[T]) remove(e *entry[T]) {
	if e.removed {
		return
	}
	e.removed = true
	for i, cur := range r.entries {
		if cur == e {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}

func (r *registry[T]) clear() {
	for _, e := range r.entries {
		e.removed = true
	}
	r.entries = nil
}

func (r *registry[T]) notify(value, old T) {
	if len(r.entries) == 0 {
		return
	}
	snapshot := make([]*entry[T], len(r.entries))
	copy(snapshot, r.entries)
	for _, e := range snapshot {
		if e.removed {
			continue
		}
		if e.once {
			r.remove(e)
		}
		e.fn(value, old)
	}
}

func (r *registry[T]) handleFor(e *entry[T]) Handle {
	return Handle{unlink: func() { r.remove(e) }}
}
