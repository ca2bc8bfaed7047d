package coulomb

import (
	"math"
	"testing"

	"github.com/rgracey/simlab/internal/config"
)

func defaultCfg() config.CoulombConfig {
	return config.CoulombConfig{Charge1: 5, Charge2: -5, Separation: 4}
}

func TestForceMatchesCoulombsLaw(t *testing.T) {
	m := NewModel(defaultCfg())

	expected := K * (5e-6) * (-5e-6) / (4.0 * 4.0)
	if math.Abs(m.Force.Get()-expected) > 1e-9 {
		t.Errorf("expected force %g, got %g", expected, m.Force.Get())
	}
	if !m.Attractive.Get() {
		t.Error("opposite charges should attract")
	}
}

func TestForceReactsToInputs(t *testing.T) {
	m := NewModel(defaultCfg())

	var notified float64
	m.Force.LazyLink(func(f, old float64) { notified = f })

	m.Separation.Set(2)

	expected := K * (5e-6) * (-5e-6) / 4.0
	if math.Abs(m.Force.Get()-expected) > 1e-9 {
		t.Errorf("expected force %g, got %g", expected, m.Force.Get())
	}
	if notified != m.Force.Get() {
		t.Errorf("listener saw %g, value is %g", notified, m.Force.Get())
	}
}

func TestInverseSquare(t *testing.T) {
	m := NewModel(defaultCfg())

	f1 := m.Magnitude.Get()
	m.Separation.Set(8) // double the distance
	f2 := m.Magnitude.Get()

	if math.Abs(f1/f2-4.0) > 1e-9 {
		t.Errorf("doubling distance should quarter the force: %g vs %g", f1, f2)
	}
}

func TestLikeChargesRepel(t *testing.T) {
	m := NewModel(config.CoulombConfig{Charge1: 3, Charge2: 3, Separation: 2})

	if m.Force.Get() <= 0 {
		t.Errorf("like charges should repel, force %g", m.Force.Get())
	}
	if m.Attractive.Get() {
		t.Error("like charges should not report attractive")
	}
}

func TestAdjustClamps(t *testing.T) {
	m := NewModel(defaultCfg())

	for i := 0; i < 100; i++ {
		m.AdjustCharge1(1)
		m.AdjustSeparation(-1)
	}

	if m.Charge1.Get() != MaxCharge {
		t.Errorf("expected charge clamped to %f, got %f", MaxCharge, m.Charge1.Get())
	}
	if m.Separation.Get() != MinSeparation {
		t.Errorf("expected separation clamped to %f, got %f", MinSeparation, m.Separation.Get())
	}
}

func TestReset(t *testing.T) {
	m := NewModel(defaultCfg())

	m.AdjustCharge1(3)
	m.AdjustSeparation(2)
	m.Reset()

	if m.Charge1.Get() != 5 || m.Separation.Get() != 4 {
		t.Errorf("expected initial values after reset, got q1=%f r=%f", m.Charge1.Get(), m.Separation.Get())
	}

	expected := K * (5e-6) * (-5e-6) / 16.0
	if math.Abs(m.Force.Get()-expected) > 1e-9 {
		t.Errorf("derived force should follow reset, got %g", m.Force.Get())
	}
}
