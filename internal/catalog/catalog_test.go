package catalog

import (
	"testing"

	"github.com/rgracey/simlab/internal/colors"
	"github.com/rgracey/simlab/internal/config"
)

func TestRegistryResolvesAllScreens(t *testing.T) {
	r := NewRegistry()
	cfg := config.DefaultConfig()
	prof := colors.Default()

	for _, name := range r.Names() {
		s, err := r.Get(name)
		if err != nil {
			t.Fatalf("get %s: %v", name, err)
		}

		m, v := s.New(cfg, prof)
		if m == nil || v == nil {
			t.Fatalf("screen %s built nil model or view", name)
		}

		// Every screen must survive a frame, a reset, and a render.
		m.Step(cfg.Dt)
		m.Reset()
		if out := v.Render(80, 24); out == "" {
			t.Errorf("screen %s rendered nothing", name)
		}
		if len(m.Probes()) == 0 {
			t.Errorf("screen %s exposes no probes", name)
		}
	}
}

func TestRegistryUnknownScreen(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Get("nonexistent"); err == nil {
		t.Error("expected error for unknown screen")
	}
}

func TestAllPreservesRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	all := r.All()

	if len(all) != len(r.Names()) {
		t.Fatalf("All returned %d screens, Names %d", len(all), len(r.Names()))
	}
	if all[0].Name != "coulomb" {
		t.Errorf("expected coulomb first, got %s", all[0].Name)
	}
}

func TestProbeNamesUniquePerScreen(t *testing.T) {
	r := NewRegistry()
	cfg := config.DefaultConfig()
	prof := colors.Default()

	for _, s := range r.All() {
		m, _ := s.New(cfg, prof)
		seen := make(map[string]bool)
		for _, p := range m.Probes() {
			if p.Source == nil {
				t.Errorf("screen %s probe %s has nil source", s.Name, p.Name)
			}
			if seen[p.Name] {
				t.Errorf("screen %s has duplicate probe %s", s.Name, p.Name)
			}
			seen[p.Name] = true
		}
	}
}
