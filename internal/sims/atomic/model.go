// Package atomic is the atomic-interaction screen: two atoms coupled by a
// Lennard-Jones potential. One atom is pinned, the other moves along the
// separation axis under the interatomic force with adjustable damping.
package atomic

import (
	"math"

	"github.com/rgracey/simlab/internal/config"
	"github.com/rgracey/simlab/internal/observable"
	"github.com/rgracey/simlab/internal/screen"
)

const (
	atomMass = 1.0
	// Below this multiple of sigma the repulsive wall is treated as a
	// hard stop to keep the integrator out of the r^-13 blowup.
	minSeparationFactor = 0.6
	maxSeparationFactor = 5.0
)

// Potential evaluates the Lennard-Jones potential 4ε((σ/r)¹² − (σ/r)⁶).
func Potential(epsilon, sigma, r float64) float64 {
	sr6 := math.Pow(sigma/r, 6)
	return 4 * epsilon * (sr6*sr6 - sr6)
}

// Force evaluates −dU/dr. Positive pushes the atoms apart.
func Force(epsilon, sigma, r float64) float64 {
	sr6 := math.Pow(sigma/r, 6)
	return 24 * epsilon * (2*sr6*sr6 - sr6) / r
}

type Model struct {
	Epsilon    *observable.Property[float64]
	Sigma      *observable.Property[float64]
	Separation *observable.Property[float64]
	Velocity   *observable.Property[float64]

	PotentialEnergy *observable.Derived[float64]
	InteratomicF    *observable.Derived[float64]
	// WellDepth is the bond minimum position 2^(1/6)·σ.
	WellDepth *observable.Derived[float64]

	damping float64
}

func NewModel(cfg config.AtomicConfig) *Model {
	m := &Model{
		Epsilon:    observable.New(cfg.Epsilon),
		Sigma:      observable.New(cfg.Sigma),
		Separation: observable.New(cfg.Separation),
		Velocity:   observable.New(0.0),
		damping:    cfg.Damping,
	}
	m.PotentialEnergy = observable.Derive3(m.Epsilon, m.Sigma, m.Separation, Potential)
	m.InteratomicF = observable.Derive3(m.Epsilon, m.Sigma, m.Separation, Force)
	m.WellDepth = observable.Derive1[float64, float64](m.Sigma, func(s float64) float64 {
		return math.Pow(2, 1.0/6.0) * s
	})
	return m
}

// Step advances the free atom with semi-implicit Euler. The force is read
// from the derived property, which the set on Separation at the end of
// the step keeps current for the next frame.
func (m *Model) Step(dt float64) {
	f := m.InteratomicF.Get()
	v := m.Velocity.Get()
	r := m.Separation.Get()

	a := (f - m.damping*v) / atomMass
	v += a * dt
	r += v * dt

	sigma := m.Sigma.Get()
	if r < minSeparationFactor*sigma {
		r = minSeparationFactor * sigma
		v = 0
	}
	if r > maxSeparationFactor*sigma {
		r = maxSeparationFactor * sigma
		v = 0
	}

	m.Velocity.Set(v)
	m.Separation.Set(r)
}

func (m *Model) Reset() {
	m.Epsilon.Reset()
	m.Sigma.Reset()
	m.Separation.Reset()
	m.Velocity.Reset()
}

func (m *Model) Probes() []screen.Probe {
	return []screen.Probe{
		{Name: "separation", Source: m.Separation},
		{Name: "potential", Source: m.PotentialEnergy},
		{Name: "force", Source: m.InteratomicF},
	}
}

// AdjustEpsilon changes the well depth, clamped to stay positive.
func (m *Model) AdjustEpsilon(delta float64) {
	e := m.Epsilon.Get() + delta
	if e < 0.1 {
		e = 0.1
	}
	if e > 10 {
		e = 10
	}
	m.Epsilon.Set(e)
}

// AdjustSigma changes the atom diameter, clamped to stay positive.
func (m *Model) AdjustSigma(delta float64) {
	s := m.Sigma.Get() + delta
	if s < 0.2 {
		s = 0.2
	}
	if s > 3 {
		s = 3
	}
	m.Sigma.Set(s)
}

// Kick gives the free atom an outward velocity impulse.
func (m *Model) Kick(dv float64) {
	m.Velocity.Set(m.Velocity.Get() + dv)
}
