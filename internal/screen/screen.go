// Package screen defines the model/view contract every simulation screen
// implements. A screen is a named factory over a model/view pair; all
// sim-specific behavior lives in the pair the factory returns.
package screen

import (
	"github.com/rgracey/simlab/internal/colors"
	"github.com/rgracey/simlab/internal/config"
	"github.com/rgracey/simlab/internal/observable"
)

// Model is the simulation side of a screen. The frame driver calls Step
// once per tick; all published state lives in observable properties that
// the paired view subscribes to.
type Model interface {
	Step(dt float64)
	// Reset returns every property to its initial value. Screen elements
	// are never destroyed while the program runs; reset is the lifecycle.
	Reset()
	// Probes exposes the model's headline quantities for recording.
	Probes() []Probe
}

// View renders a model to a terminal frame. Views subscribe to model
// properties at construction (fire-on-subscribe keeps them current) and
// never poll inside Render.
type View interface {
	Render(width, height int) string
	// HandleKey reacts to a screen-specific key, reporting whether the
	// key was consumed.
	HandleKey(key string) bool
	// Help lists the screen-specific key bindings.
	Help() string
}

// Probe is a named scalar source sampled by the recorder.
type Probe struct {
	Name   string
	Source observable.Readable[float64]
}

// Screen pairs a name with the factory that builds its model and view
// from explicit configuration.
type Screen struct {
	Name        string
	Title       string
	Description string
	New         func(cfg *config.Config, prof *colors.Profile) (Model, View)
}
