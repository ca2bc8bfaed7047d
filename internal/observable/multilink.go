package observable

// Multilink2 invokes f with the current values of a and b, immediately and
// then again after every individual Set on either input. The callback
// always receives all current values, not just the one that changed.
// The returned handle unlinks from both inputs at once.
//
// Changes are not batched: two sequential sets in one logical update fire
// the callback twice, and the first firing can observe the mixed state
// between them. Callers that care sequence their sets accordingly.
func Multilink2[A, B any](a Readable[A], b Readable[B], f func(A, B)) Handle {
	fire := func() { f(a.Get(), b.Get()) }
	h := Join(
		a.LazyLink(func(A, A) { fire() }),
		b.LazyLink(func(B, B) { fire() }),
	)
	fire()
	return h
}

// Multilink3 is Multilink2 over three inputs.
func Multilink3[A, B, C any](a Readable[A], b Readable[B], c Readable[C], f func(A, B, C)) Handle {
	fire := func() { f(a.Get(), b.Get(), c.Get()) }
	h := Join(
		a.LazyLink(func(A, A) { fire() }),
		b.LazyLink(func(B, B) { fire() }),
		c.LazyLink(func(C, C) { fire() }),
	)
	fire()
	return h
}

// Multilink4 is Multilink2 over four inputs.
func Multilink4[A, B, C, D any](a Readable[A], b Readable[B], c Readable[C], d Readable[D], f func(A, B, C, D)) Handle {
	fire := func() { f(a.Get(), b.Get(), c.Get(), d.Get()) }
	h := Join(
		a.LazyLink(func(A, A) { fire() }),
		b.LazyLink(func(B, B) { fire() }),
		c.LazyLink(func(C, C) { fire() }),
		d.LazyLink(func(D, D) { fire() }),
	)
	fire()
	return h
}
