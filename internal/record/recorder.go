// Package record drives a screen model headlessly and samples its probes
// each frame, producing a time series for storage and plotting.
package record

import (
	"fmt"

	"github.com/rgracey/simlab/internal/screen"
)

// Result is a sampled run: one column per probe plus the time axis.
type Result struct {
	Screen string
	Dt     float64
	Names  []string
	Times  []float64
	Series map[string][]float64
}

// Final returns the last sampled value per probe.
func (r *Result) Final() map[string]float64 {
	out := make(map[string]float64, len(r.Names))
	for _, name := range r.Names {
		col := r.Series[name]
		if len(col) > 0 {
			out[name] = col[len(col)-1]
		}
	}
	return out
}

// Run steps the model for the given duration, sampling every probe once
// per frame. Probe values are tracked through subscriptions, not polling:
// the link fires immediately with the current value and again on every
// change, so the row written after each Step is exactly the state the
// frame ended with.
func Run(m screen.Model, screenName string, duration, dt float64) (*Result, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("dt must be positive, got %f", dt)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %f", duration)
	}

	probes := m.Probes()
	if len(probes) == 0 {
		return nil, fmt.Errorf("screen %s exposes no probes", screenName)
	}

	steps := int(duration / dt)
	result := &Result{
		Screen: screenName,
		Dt:     dt,
		Names:  make([]string, 0, len(probes)),
		Times:  make([]float64, 0, steps+1),
		Series: make(map[string][]float64, len(probes)),
	}

	latest := make(map[string]float64, len(probes))
	unlinks := make([]func(), 0, len(probes))
	for _, p := range probes {
		name := p.Name
		result.Names = append(result.Names, name)
		result.Series[name] = make([]float64, 0, steps+1)
		h := p.Source.Link(func(v, old float64) { latest[name] = v })
		unlinks = append(unlinks, h.Unlink)
	}
	defer func() {
		for _, unlink := range unlinks {
			unlink()
		}
	}()

	sample := func(t float64) {
		result.Times = append(result.Times, t)
		for _, name := range result.Names {
			result.Series[name] = append(result.Series[name], latest[name])
		}
	}

	sample(0)
	t := 0.0
	for i := 0; i < steps; i++ {
		m.Step(dt)
		t += dt
		sample(t)
	}

	return result, nil
}
