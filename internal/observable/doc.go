// Package observable provides the reactive value containers that every
// simulation model and view in simlab is built on.
//
// The package has three pieces:
//
//   - [Property]: a single mutable value slot with change notification
//   - [Derived]: a read-only value computed from other observables,
//     recomputed eagerly whenever any input changes
//   - [Multilink2] and friends: register one callback against several
//     observables at once
//
// Notification is synchronous and depth-first: a Set call invokes every
// registered listener before returning, and a listener that recomputes a
// [Derived] value propagates further down the graph within the same call
// stack. Everything runs on a single goroutine (the frame loop), so there
// is no locking.
//
// Listeners registered with Link fire once immediately with the current
// value, which lets a view initialize itself from model state without a
// separate sync pass:
//
//	angle := observable.New(0.5)
//	angle.Link(func(v, old float64) {
//	    readout = fmt.Sprintf("%.2f rad", v)
//	})
package observable
