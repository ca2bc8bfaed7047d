package orbits

import (
	"math"
	"testing"

	"github.com/rgracey/simlab/internal/config"
)

func circularCfg() config.OrbitsConfig {
	return config.OrbitsConfig{GM: 40, Distance: 5, Speed: 0}
}

func TestCircularLaunchSpeed(t *testing.T) {
	m := NewModel(circularCfg())

	expected := math.Sqrt(40.0 / 5.0)
	if math.Abs(m.Speed.Get()-expected) > 1e-9 {
		t.Errorf("expected circular speed %f, got %f", expected, m.Speed.Get())
	}
}

func TestCircularOrbitKeepsRadius(t *testing.T) {
	m := NewModel(circularCfg())

	for i := 0; i < 3000; i++ {
		m.Step(1.0 / 30.0)
		r := m.Distance.Get()
		if math.Abs(r-5.0) > 0.05 {
			t.Fatalf("circular orbit drifted to r=%f at step %d", r, i)
		}
	}
}

func TestEnergyConserved(t *testing.T) {
	cfg := circularCfg()
	cfg.Speed = 2.2 // elliptical
	m := NewModel(cfg)

	e0 := m.Energy.Get()
	for i := 0; i < 3000; i++ {
		m.Step(1.0 / 30.0)
	}
	drift := math.Abs(m.Energy.Get()-e0) / math.Abs(e0)

	if drift > 0.01 {
		t.Errorf("energy drifted by %f%%", drift*100)
	}
}

func TestBoundFlag(t *testing.T) {
	m := NewModel(circularCfg())

	if !m.Bound.Get() {
		t.Error("circular orbit should be bound")
	}

	// Above escape speed the energy goes positive.
	m.Kick(2.0)
	if m.Bound.Get() {
		t.Errorf("expected unbound after kick, energy %f", m.Energy.Get())
	}
}

func TestDerivedDistanceTracksPosition(t *testing.T) {
	m := NewModel(circularCfg())

	m.Position.Set(Vec2{X: 3, Y: 4})
	if math.Abs(m.Distance.Get()-5) > 1e-9 {
		t.Errorf("expected distance 5, got %f", m.Distance.Get())
	}
}

func TestReset(t *testing.T) {
	m := NewModel(circularCfg())

	for i := 0; i < 100; i++ {
		m.Step(1.0 / 30.0)
	}
	m.Kick(1.5)
	m.Reset()

	if m.Position.Get() != (Vec2{X: 5}) {
		t.Errorf("expected initial position after reset, got %v", m.Position.Get())
	}
	if math.Abs(m.Speed.Get()-math.Sqrt(8)) > 1e-9 {
		t.Errorf("expected initial speed after reset, got %f", m.Speed.Get())
	}
}
