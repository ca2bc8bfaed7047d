package atomic

import (
	"math"
	"testing"

	"github.com/rgracey/simlab/internal/config"
)

func defaultCfg() config.AtomicConfig {
	return config.AtomicConfig{Epsilon: 1, Sigma: 1, Separation: 2, Damping: 0.5}
}

func TestPotentialAtBondLength(t *testing.T) {
	rMin := math.Pow(2, 1.0/6.0)

	u := Potential(1, 1, rMin)
	if math.Abs(u-(-1)) > 1e-9 {
		t.Errorf("expected well depth -ε at bond length, got %f", u)
	}

	f := Force(1, 1, rMin)
	if math.Abs(f) > 1e-9 {
		t.Errorf("expected zero force at bond length, got %f", f)
	}
}

func TestPotentialZeroCrossing(t *testing.T) {
	u := Potential(1, 1, 1)
	if math.Abs(u) > 1e-9 {
		t.Errorf("expected zero potential at r=σ, got %f", u)
	}
}

func TestForceSigns(t *testing.T) {
	// Inside the bond length the wall repels, outside the well attracts.
	if Force(1, 1, 0.9) <= 0 {
		t.Error("expected repulsive force inside bond length")
	}
	if Force(1, 1, 2.0) >= 0 {
		t.Error("expected attractive force outside bond length")
	}
}

func TestDerivedFollowInputs(t *testing.T) {
	m := NewModel(defaultCfg())

	m.Separation.Set(1.0)
	if math.Abs(m.PotentialEnergy.Get()) > 1e-9 {
		t.Errorf("expected zero potential at r=σ, got %f", m.PotentialEnergy.Get())
	}

	m.Epsilon.Set(2.0)
	m.Separation.Set(math.Pow(2, 1.0/6.0))
	if math.Abs(m.PotentialEnergy.Get()-(-2)) > 1e-9 {
		t.Errorf("expected potential -2 at bond length with ε=2, got %f", m.PotentialEnergy.Get())
	}
}

func TestStepSettlesNearBondLength(t *testing.T) {
	cfg := defaultCfg()
	cfg.Damping = 2.0 // overdamped so it settles fast
	m := NewModel(cfg)

	for i := 0; i < 20000; i++ {
		m.Step(0.001)
	}

	rMin := math.Pow(2, 1.0/6.0)
	if math.Abs(m.Separation.Get()-rMin) > 0.01 {
		t.Errorf("expected settling near bond length %f, got %f", rMin, m.Separation.Get())
	}
	if math.Abs(m.Velocity.Get()) > 0.01 {
		t.Errorf("expected near-zero velocity after settling, got %f", m.Velocity.Get())
	}
}

func TestStepRespectsHardWall(t *testing.T) {
	m := NewModel(defaultCfg())
	m.Separation.Set(0.7)
	m.Velocity.Set(-50)

	m.Step(0.01)

	if m.Separation.Get() < minSeparationFactor*m.Sigma.Get() {
		t.Errorf("separation %f penetrated the hard wall", m.Separation.Get())
	}
}

func TestReset(t *testing.T) {
	m := NewModel(defaultCfg())

	for i := 0; i < 100; i++ {
		m.Step(0.01)
	}
	m.Kick(3)
	m.Reset()

	if m.Separation.Get() != 2 || m.Velocity.Get() != 0 {
		t.Errorf("expected initial state after reset, got r=%f v=%f", m.Separation.Get(), m.Velocity.Get())
	}
}
