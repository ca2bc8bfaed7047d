package buoyancy

import (
	"math"
	"testing"

	"github.com/rgracey/simlab/internal/config"
)

func floaterCfg() config.BuoyancyConfig {
	return config.BuoyancyConfig{BlockMass: 2, BlockVolume: 5, FluidDensity: 1}
}

func sinkerCfg() config.BuoyancyConfig {
	return config.BuoyancyConfig{BlockMass: 8, BlockVolume: 5, FluidDensity: 1}
}

func TestSubmergedFraction(t *testing.T) {
	tests := []struct {
		bottom, side, want float64
	}{
		{1, 2, 0},     // fully above
		{0, 2, 0},     // resting on the surface
		{-1, 2, 0.5},  // half in
		{-2, 2, 1},    // exactly submerged
		{-5, 2, 1},    // deep
	}

	for _, tt := range tests {
		got := SubmergedFraction(tt.bottom, tt.side)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("SubmergedFraction(%f, %f) = %f, want %f", tt.bottom, tt.side, got, tt.want)
		}
	}
}

func TestDerivedDensity(t *testing.T) {
	m := NewModel(floaterCfg())

	if math.Abs(m.Density.Get()-0.4) > 1e-9 {
		t.Errorf("expected density 0.4, got %f", m.Density.Get())
	}
	if !m.Floats.Get() {
		t.Error("density 0.4 in water should float")
	}

	m.Mass.Set(10)
	if m.Floats.Get() {
		t.Error("density 2.0 in water should sink")
	}
}

func TestFloaterEquilibriumFraction(t *testing.T) {
	m := NewModel(floaterCfg())

	for i := 0; i < 60000; i++ {
		m.Step(0.001)
	}

	// At rest, displaced fluid mass equals block mass, so the submerged
	// fraction equals the density ratio.
	frac := SubmergedFraction(m.Bottom.Get(), Side(m.Volume.Get()))
	want := m.Density.Get() / m.FluidDensity.Get()
	if math.Abs(frac-want) > 0.02 {
		t.Errorf("expected submerged fraction %f, got %f", want, frac)
	}
	if math.Abs(m.Velocity.Get()) > 0.01 {
		t.Errorf("expected block at rest, velocity %f", m.Velocity.Get())
	}
}

func TestSinkerReachesTankFloor(t *testing.T) {
	m := NewModel(sinkerCfg())

	for i := 0; i < 20000; i++ {
		m.Step(0.001)
	}

	if m.Bottom.Get() != -TankDepth {
		t.Errorf("expected block on the tank floor at %f, got %f", -TankDepth, m.Bottom.Get())
	}
}

func TestBuoyantForceTracksDepth(t *testing.T) {
	m := NewModel(floaterCfg())

	m.Bottom.Set(1) // fully out of the fluid
	if m.BuoyantForce.Get() != 0 {
		t.Errorf("expected no buoyant force in air, got %f", m.BuoyantForce.Get())
	}

	side := Side(m.Volume.Get())
	m.Bottom.Set(-side) // fully submerged
	want := m.FluidDensity.Get() * 9.8 * m.Volume.Get()
	if math.Abs(m.BuoyantForce.Get()-want) > 1e-9 {
		t.Errorf("expected submerged buoyant force %f, got %f", want, m.BuoyantForce.Get())
	}
}

func TestReset(t *testing.T) {
	m := NewModel(floaterCfg())

	for i := 0; i < 500; i++ {
		m.Step(0.01)
	}
	m.AdjustMass(5)
	m.Reset()

	if m.Mass.Get() != 2 {
		t.Errorf("expected initial mass after reset, got %f", m.Mass.Get())
	}
	if m.Bottom.Get() != 2 {
		t.Errorf("expected initial position after reset, got %f", m.Bottom.Get())
	}
	if m.Velocity.Get() != 0 {
		t.Errorf("expected zero velocity after reset, got %f", m.Velocity.Get())
	}
}
