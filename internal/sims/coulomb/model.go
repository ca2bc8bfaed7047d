// Package coulomb is the charge-interaction screen: two point charges on
// a line, with the electrostatic force between them recomputed reactively
// as charge or separation changes.
package coulomb

import (
	"math"

	"github.com/rgracey/simlab/internal/config"
	"github.com/rgracey/simlab/internal/observable"
	"github.com/rgracey/simlab/internal/screen"
)

// K is the Coulomb constant in N·m²/C².
const K = 8.9875517923e9

// Adjustment clamps, shared with config validation.
const (
	MaxCharge     = config.MaxCharge
	MinSeparation = config.MinSeparation
	MaxSeparation = config.MaxSeparation
)

// Model publishes two charges, their separation, and the force between
// them. The charges never move on their own; this screen is driven purely
// by user input, so Step is a no-op.
type Model struct {
	Charge1    *observable.Property[float64] // microcoulombs
	Charge2    *observable.Property[float64] // microcoulombs
	Separation *observable.Property[float64] // meters

	// Force is signed: negative means attraction.
	Force      *observable.Derived[float64]
	Magnitude  *observable.Derived[float64]
	Attractive *observable.Derived[bool]
}

func NewModel(cfg config.CoulombConfig) *Model {
	m := &Model{
		Charge1:    observable.New(cfg.Charge1),
		Charge2:    observable.New(cfg.Charge2),
		Separation: observable.New(cfg.Separation),
	}
	m.Force = observable.Derive3(m.Charge1, m.Charge2, m.Separation,
		func(q1, q2, r float64) float64 {
			return K * (q1 * 1e-6) * (q2 * 1e-6) / (r * r)
		})
	m.Magnitude = observable.Derive1[float64, float64](m.Force, math.Abs)
	m.Attractive = observable.Derive1[float64, bool](m.Force, func(f float64) bool {
		return f < 0
	})
	return m
}

func (m *Model) Step(dt float64) {}

func (m *Model) Reset() {
	m.Charge1.Reset()
	m.Charge2.Reset()
	m.Separation.Reset()
}

func (m *Model) Probes() []screen.Probe {
	return []screen.Probe{
		{Name: "force_n", Source: m.Force},
		{Name: "separation_m", Source: m.Separation},
	}
}

// AdjustCharge1 shifts the first charge by delta microcoulombs, clamped.
func (m *Model) AdjustCharge1(delta float64) {
	m.Charge1.Set(clamp(m.Charge1.Get()+delta, -MaxCharge, MaxCharge))
}

// AdjustCharge2 shifts the second charge by delta microcoulombs, clamped.
func (m *Model) AdjustCharge2(delta float64) {
	m.Charge2.Set(clamp(m.Charge2.Get()+delta, -MaxCharge, MaxCharge))
}

// AdjustSeparation shifts the separation by delta meters, clamped.
func (m *Model) AdjustSeparation(delta float64) {
	m.Separation.Set(clamp(m.Separation.Get()+delta, MinSeparation, MaxSeparation))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
