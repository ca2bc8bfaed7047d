package record

import (
	"math"
	"testing"

	"github.com/rgracey/simlab/internal/config"
	"github.com/rgracey/simlab/internal/sims/atomic"
	"github.com/rgracey/simlab/internal/sims/coulomb"
)

func TestRunSamplesEveryFrame(t *testing.T) {
	m := atomic.NewModel(config.AtomicConfig{Epsilon: 1, Sigma: 1, Separation: 2, Damping: 0.5})

	result, err := Run(m, "atomic", 1.0, 0.01)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// 100 steps plus the initial sample.
	if len(result.Times) != 101 {
		t.Errorf("expected 101 samples, got %d", len(result.Times))
	}
	for _, name := range result.Names {
		if len(result.Series[name]) != len(result.Times) {
			t.Errorf("series %s has %d samples, times has %d", name, len(result.Series[name]), len(result.Times))
		}
	}

	if result.Series["separation"][0] != 2 {
		t.Errorf("expected initial separation 2, got %f", result.Series["separation"][0])
	}

	// The atoms attract from r=2, so the separation must have moved.
	last := result.Series["separation"][len(result.Times)-1]
	if last >= 2 {
		t.Errorf("expected separation to shrink, got %f", last)
	}
}

func TestRunTracksDerivedProbes(t *testing.T) {
	m := coulomb.NewModel(config.CoulombConfig{Charge1: 5, Charge2: -5, Separation: 4})

	result, err := Run(m, "coulomb", 0.1, 0.01)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	expected := coulomb.K * 5e-6 * 5e-6 / 16.0
	for i, f := range result.Series["force_n"] {
		if math.Abs(math.Abs(f)-expected) > 1e-9 {
			t.Fatalf("sample %d: expected |force| %g, got %g", i, expected, f)
		}
	}
}

func TestRunUnlinksProbes(t *testing.T) {
	m := coulomb.NewModel(config.CoulombConfig{Charge1: 5, Charge2: -5, Separation: 4})

	if _, err := Run(m, "coulomb", 0.1, 0.01); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// A second run must not double-sample through leftover listeners.
	result, err := Run(m, "coulomb", 0.1, 0.01)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if len(result.Times) != 11 {
		t.Errorf("expected 11 samples, got %d", len(result.Times))
	}
}

func TestRunValidatesArguments(t *testing.T) {
	m := coulomb.NewModel(config.CoulombConfig{Charge1: 1, Charge2: 1, Separation: 1})

	if _, err := Run(m, "coulomb", 0, 0.01); err == nil {
		t.Error("expected error for zero duration")
	}
	if _, err := Run(m, "coulomb", 1, -0.1); err == nil {
		t.Error("expected error for negative dt")
	}
}

func TestFinal(t *testing.T) {
	m := coulomb.NewModel(config.CoulombConfig{Charge1: 5, Charge2: -5, Separation: 4})

	result, err := Run(m, "coulomb", 0.1, 0.01)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	final := result.Final()
	if final["separation_m"] != 4 {
		t.Errorf("expected final separation 4, got %f", final["separation_m"])
	}
}
