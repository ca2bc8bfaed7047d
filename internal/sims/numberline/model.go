// Package numberline is the integers screen: values placed on a number
// line across two scenes, elevation (a marker against sea level) and
// temperature (a reading that drifts toward an adjustable target).
package numberline

import (
	"github.com/rgracey/simlab/internal/config"
	"github.com/rgracey/simlab/internal/observable"
	"github.com/rgracey/simlab/internal/screen"
)

// Scene selects which quantity the number line shows.
type Scene int

const (
	Elevation Scene = iota
	Temperature
)

func (s Scene) String() string {
	if s == Temperature {
		return "temperature"
	}
	return "elevation"
}

// DriftRate is how fast the temperature approaches its target, degrees
// per second.
const DriftRate = 2.0

type Model struct {
	Scene     *observable.Property[Scene]
	Elevation *observable.Property[int]

	Temperature *observable.Property[float64]
	Target      *observable.Property[float64]

	// Opposite and Absolute follow whichever scene is active.
	Opposite *observable.Derived[int]
	Absolute *observable.Derived[int]

	// Scalar views for recording.
	ElevationF   *observable.Derived[float64]
	TemperatureF *observable.Derived[float64]

	rng int // line half-range
}

func NewModel(cfg config.NumberLineConfig) *Model {
	m := &Model{
		Scene:       observable.New(Elevation),
		Elevation:   observable.New(cfg.Elevation),
		Temperature: observable.New(0.0),
		Target:      observable.New(0.0),
		rng:         cfg.Range,
	}
	m.Opposite = observable.Derive3(m.Scene, m.Elevation, m.Temperature,
		func(s Scene, elev int, temp float64) int {
			return -m.active(s, elev, temp)
		})
	m.Absolute = observable.Derive3(m.Scene, m.Elevation, m.Temperature,
		func(s Scene, elev int, temp float64) int {
			v := m.active(s, elev, temp)
			if v < 0 {
				return -v
			}
			return v
		})
	m.ElevationF = observable.Derive1[int, float64](m.Elevation, func(v int) float64 {
		return float64(v)
	})
	m.TemperatureF = observable.Derive1[float64, float64](m.Temperature, func(v float64) float64 {
		return v
	})
	return m
}

// active rounds the scene's quantity to its integer on the line.
func (m *Model) active(s Scene, elev int, temp float64) int {
	if s == Temperature {
		if temp < 0 {
			return int(temp - 0.5)
		}
		return int(temp + 0.5)
	}
	return elev
}

// Value returns the integer currently marked on the line.
func (m *Model) Value() int {
	return m.active(m.Scene.Get(), m.Elevation.Get(), m.Temperature.Get())
}

// Range returns the line half-range.
func (m *Model) Range() int { return m.rng }

// Step drifts the temperature toward its target. The elevation scene is
// input-driven and does not animate.
func (m *Model) Step(dt float64) {
	temp := m.Temperature.Get()
	target := m.Target.Get()
	if temp == target {
		return
	}

	delta := DriftRate * dt
	if temp < target {
		temp += delta
		if temp > target {
			temp = target
		}
	} else {
		temp -= delta
		if temp < target {
			temp = target
		}
	}
	m.Temperature.Set(temp)
}

func (m *Model) Reset() {
	m.Scene.Reset()
	m.Elevation.Reset()
	m.Temperature.Reset()
	m.Target.Reset()
}

func (m *Model) Probes() []screen.Probe {
	return []screen.Probe{
		{Name: "elevation", Source: m.ElevationF},
		{Name: "temperature", Source: m.TemperatureF},
	}
}

// ToggleScene switches between elevation and temperature.
func (m *Model) ToggleScene() {
	if m.Scene.Get() == Elevation {
		m.Scene.Set(Temperature)
	} else {
		m.Scene.Set(Elevation)
	}
}

// Adjust moves the active scene's controlled value by delta steps,
// clamped to the line range.
func (m *Model) Adjust(delta int) {
	limit := m.rng
	if m.Scene.Get() == Temperature {
		t := m.Target.Get() + float64(delta)
		if t > float64(limit) {
			t = float64(limit)
		}
		if t < float64(-limit) {
			t = float64(-limit)
		}
		m.Target.Set(t)
		return
	}

	e := m.Elevation.Get() + delta
	if e > limit {
		e = limit
	}
	if e < -limit {
		e = -limit
	}
	m.Elevation.Set(e)
}
