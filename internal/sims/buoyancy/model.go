// Package buoyancy is the density/buoyancy screen: a cubic block dropped
// into a tank of fluid, integrating its vertical motion under gravity,
// buoyancy and drag. Volumes are in liters and densities in kg/L, so the
// block side comes out in decimeters; the displayed world uses those
// units directly.
package buoyancy

import (
	"math"

	"github.com/rgracey/simlab/internal/config"
	"github.com/rgracey/simlab/internal/observable"
	"github.com/rgracey/simlab/internal/screen"
)

const (
	gravity   = 9.8
	dragCoeff = 8.0
	// TankDepth is how far below the surface the tank floor sits, in the
	// same length unit as the block side.
	TankDepth = 6.0
	maxHeight = 4.0
)

// Side returns the cube edge length for a volume.
func Side(volume float64) float64 {
	return math.Cbrt(volume)
}

// SubmergedFraction returns how much of the block is underwater given the
// position of its bottom face relative to the surface (negative = below).
func SubmergedFraction(bottom, side float64) float64 {
	if bottom >= 0 {
		return 0
	}
	if bottom <= -side {
		return 1
	}
	return -bottom / side
}

type Model struct {
	Mass         *observable.Property[float64] // kg
	Volume       *observable.Property[float64] // L
	FluidDensity *observable.Property[float64] // kg/L

	// Bottom is the block's bottom face relative to the fluid surface.
	Bottom   *observable.Property[float64]
	Velocity *observable.Property[float64]

	Density      *observable.Derived[float64]
	BuoyantForce *observable.Derived[float64]
	Floats       *observable.Derived[bool]
}

func NewModel(cfg config.BuoyancyConfig) *Model {
	m := &Model{
		Mass:         observable.New(cfg.BlockMass),
		Volume:       observable.New(cfg.BlockVolume),
		FluidDensity: observable.New(cfg.FluidDensity),
		Bottom:       observable.New(maxHeight / 2),
		Velocity:     observable.New(0.0),
	}
	m.Density = observable.Derive2(m.Mass, m.Volume,
		func(mass, vol float64) float64 { return mass / vol })
	m.BuoyantForce = observable.Derive3(m.FluidDensity, m.Volume, m.Bottom,
		func(rho, vol, bottom float64) float64 {
			return rho * gravity * vol * SubmergedFraction(bottom, Side(vol))
		})
	m.Floats = observable.Derive2(m.Density, m.FluidDensity,
		func(rho, fluid float64) bool { return rho < fluid })
	return m
}

// Step integrates the block's vertical motion. Drag is only applied while
// some of the block is wet; in the air it free-falls.
func (m *Model) Step(dt float64) {
	mass := m.Mass.Get()
	y := m.Bottom.Get()
	v := m.Velocity.Get()

	frac := SubmergedFraction(y, Side(m.Volume.Get()))
	f := -mass*gravity + m.BuoyantForce.Get() - dragCoeff*frac*v

	v += f / mass * dt
	y += v * dt

	if y < -TankDepth {
		y = -TankDepth
		v = 0
	}
	if y > maxHeight {
		y = maxHeight
		v = 0
	}

	m.Velocity.Set(v)
	m.Bottom.Set(y)
}

func (m *Model) Reset() {
	m.Mass.Reset()
	m.Volume.Reset()
	m.FluidDensity.Reset()
	m.Bottom.Reset()
	m.Velocity.Reset()
}

func (m *Model) Probes() []screen.Probe {
	return []screen.Probe{
		{Name: "bottom", Source: m.Bottom},
		{Name: "buoyant_force", Source: m.BuoyantForce},
		{Name: "density", Source: m.Density},
	}
}

// AdjustMass changes the block mass, clamped positive.
func (m *Model) AdjustMass(delta float64) {
	mass := m.Mass.Get() + delta
	if mass < 0.5 {
		mass = 0.5
	}
	if mass > 20 {
		mass = 20
	}
	m.Mass.Set(mass)
}

// AdjustVolume changes the block volume, clamped positive.
func (m *Model) AdjustVolume(delta float64) {
	vol := m.Volume.Get() + delta
	if vol < 1 {
		vol = 1
	}
	if vol > 10 {
		vol = 10
	}
	m.Volume.Set(vol)
}

// AdjustFluid changes the fluid density, clamped positive.
func (m *Model) AdjustFluid(delta float64) {
	rho := m.FluidDensity.Get() + delta
	if rho < 0.2 {
		rho = 0.2
	}
	if rho > 3 {
		rho = 3
	}
	m.FluidDensity.Set(rho)
}
