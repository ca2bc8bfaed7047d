// Package catalog wires every simulation screen into a registry the shell
// and CLI resolve by name.
package catalog

import (
	"fmt"
	"sort"

	"github.com/rgracey/simlab/internal/colors"
	"github.com/rgracey/simlab/internal/config"
	"github.com/rgracey/simlab/internal/screen"
	"github.com/rgracey/simlab/internal/sims/atomic"
	"github.com/rgracey/simlab/internal/sims/buoyancy"
	"github.com/rgracey/simlab/internal/sims/coulomb"
	"github.com/rgracey/simlab/internal/sims/numberline"
	"github.com/rgracey/simlab/internal/sims/orbits"
	"github.com/rgracey/simlab/internal/sims/regression"
)

type Registry struct {
	screens map[string]screen.Screen
	order   []string
}

func NewRegistry() *Registry {
	r := &Registry{screens: make(map[string]screen.Screen)}

	r.register(screen.Screen{
		Name:        "coulomb",
		Title:       "Coulomb's Law",
		Description: "force between two point charges",
		New: func(cfg *config.Config, prof *colors.Profile) (screen.Model, screen.View) {
			m := coulomb.NewModel(cfg.Coulomb)
			return m, coulomb.NewView(m, prof)
		},
	})
	r.register(screen.Screen{
		Name:        "atomic",
		Title:       "Atomic Interactions",
		Description: "two atoms in a Lennard-Jones potential",
		New: func(cfg *config.Config, prof *colors.Profile) (screen.Model, screen.View) {
			m := atomic.NewModel(cfg.Atomic)
			return m, atomic.NewView(m, prof)
		},
	})
	r.register(screen.Screen{
		Name:        "orbits",
		Title:       "Kepler Orbits",
		Description: "a planet around a star",
		New: func(cfg *config.Config, prof *colors.Profile) (screen.Model, screen.View) {
			m := orbits.NewModel(cfg.Orbits)
			return m, orbits.NewView(m, prof)
		},
	})
	r.register(screen.Screen{
		Name:        "regression",
		Title:       "Least-Squares Regression",
		Description: "best-fit line through a scatter",
		New: func(cfg *config.Config, prof *colors.Profile) (screen.Model, screen.View) {
			m := regression.NewModel(cfg.Regression)
			return m, regression.NewView(m, prof)
		},
	})
	r.register(screen.Screen{
		Name:        "buoyancy",
		Title:       "Density & Buoyancy",
		Description: "a block floating or sinking in fluid",
		New: func(cfg *config.Config, prof *colors.Profile) (screen.Model, screen.View) {
			m := buoyancy.NewModel(cfg.Buoyancy)
			return m, buoyancy.NewView(m, prof)
		},
	})
	r.register(screen.Screen{
		Name:        "numberline",
		Title:       "Number Line: Integers",
		Description: "integers as elevation and temperature",
		New: func(cfg *config.Config, prof *colors.Profile) (screen.Model, screen.View) {
			m := numberline.NewModel(cfg.NumberLine)
			return m, numberline.NewView(m, prof)
		},
	})

	return r
}

func (r *Registry) register(s screen.Screen) {
	r.screens[s.Name] = s
	r.order = append(r.order, s.Name)
}

func (r *Registry) Get(name string) (screen.Screen, error) {
	s, ok := r.screens[name]
	if !ok {
		return screen.Screen{}, fmt.Errorf("unknown screen: %s", name)
	}
	return s, nil
}

// All returns the screens in registration order.
func (r *Registry) All() []screen.Screen {
	out := make([]screen.Screen, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.screens[name])
	}
	return out
}

// Names returns the screen names sorted alphabetically.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.screens))
	for name := range r.screens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
