package shell

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgracey/simlab/internal/catalog"
	"github.com/rgracey/simlab/internal/colors"
	"github.com/rgracey/simlab/internal/config"
)

func newTestModel(t *testing.T, start string) Model {
	t.Helper()
	m, err := NewModel(catalog.NewRegistry(), config.DefaultConfig(), colors.Default(), start)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m
}

func TestNewModelUnknownScreen(t *testing.T) {
	_, err := NewModel(catalog.NewRegistry(), config.DefaultConfig(), colors.Default(), "nope")
	if err == nil {
		t.Error("expected error for unknown start screen")
	}
}

func TestNewModelStartsOnRequestedScreen(t *testing.T) {
	m := newTestModel(t, "orbits")
	if m.screens[m.idx].Name != "orbits" {
		t.Errorf("expected to start on orbits, got %s", m.screens[m.idx].Name)
	}
}

func TestTickStepsActiveModel(t *testing.T) {
	m := newTestModel(t, "atomic")

	before := m.active().model.Probes()[0].Source.Get()
	updated, _ := m.Update(TickMsg{})
	m = updated.(Model)
	after := m.active().model.Probes()[0].Source.Get()

	if before == after {
		t.Error("expected a tick to advance the atomic model")
	}
}

func TestPauseStopsStepping(t *testing.T) {
	m := newTestModel(t, "atomic")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = updated.(Model)

	before := m.active().model.Probes()[0].Source.Get()
	updated, _ = m.Update(TickMsg{})
	m = updated.(Model)
	after := m.active().model.Probes()[0].Source.Get()

	if before != after {
		t.Error("expected no stepping while paused")
	}
}

func TestScreenSwitchPreservesState(t *testing.T) {
	m := newTestModel(t, "coulomb")

	// Mutate the coulomb screen through its view.
	m.active().view.HandleKey("e")
	mutated := m.active().model.Probes()[0].Source.Get()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'['}})
	m = updated.(Model)

	if m.screens[m.idx].Name != "coulomb" {
		t.Fatalf("expected to be back on coulomb, got %s", m.screens[m.idx].Name)
	}
	if m.active().model.Probes()[0].Source.Get() != mutated {
		t.Error("expected screen state to survive switching away and back")
	}
}

func TestViewRenders(t *testing.T) {
	m := newTestModel(t, "")

	out := m.View()
	if !strings.Contains(out, "simlab") {
		t.Error("expected header in view output")
	}
	if !strings.Contains(out, m.screens[m.idx].Name) {
		t.Error("expected active screen name in header")
	}
	if !strings.Contains(out, "q quit") {
		t.Error("expected help line in view output")
	}
}
