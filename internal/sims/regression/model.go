// Package regression is the least-squares screen: a scatter of points and
// the best-fit line through them, recomputed reactively as points are
// added and removed.
package regression

import (
	"math"
	"math/rand"

	"github.com/rgracey/simlab/internal/config"
	"github.com/rgracey/simlab/internal/observable"
	"github.com/rgracey/simlab/internal/screen"
)

type Point struct {
	X, Y float64
}

// Fit is the least-squares summary of the current point set. With fewer
// than two points there is no line and Valid is false.
type Fit struct {
	Slope     float64
	Intercept float64
	R         float64
	N         int
	Valid     bool
}

// ComputeFit runs ordinary least squares over the points.
func ComputeFit(points []Point) Fit {
	n := len(points)
	if n < 2 {
		return Fit{N: n}
	}

	var sx, sy, sxx, syy, sxy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
		sxx += p.X * p.X
		syy += p.Y * p.Y
		sxy += p.X * p.Y
	}

	fn := float64(n)
	denomX := fn*sxx - sx*sx
	if denomX == 0 {
		// Vertical stack of points has no least-squares line.
		return Fit{N: n}
	}

	slope := (fn*sxy - sx*sy) / denomX
	intercept := (sy - slope*sx) / fn

	r := 0.0
	denomY := fn*syy - sy*sy
	if denomY > 0 {
		r = (fn*sxy - sx*sy) / math.Sqrt(denomX*denomY)
	}

	return Fit{Slope: slope, Intercept: intercept, R: r, N: n, Valid: true}
}

// Model owns the observable point set. Points is slice-valued, so it uses
// an explicit equality predicate; mutations always replace the slice.
type Model struct {
	Points *observable.Property[[]Point]
	Fit    *observable.Derived[Fit]

	// Scalar projections of the fit for recording.
	Slope *observable.Derived[float64]
	RVal  *observable.Derived[float64]
	Count *observable.Derived[float64]

	hidden config.RegressionConfig
	rng    *rand.Rand
}

func pointsEqual(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func NewModel(cfg config.RegressionConfig) *Model {
	m := &Model{
		Points: observable.NewWithEquals([]Point(nil), pointsEqual),
		hidden: cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}
	m.Fit = observable.Derive1(m.Points, ComputeFit)
	m.Slope = observable.Derive1[Fit, float64](m.Fit, func(f Fit) float64 { return f.Slope })
	m.RVal = observable.Derive1[Fit, float64](m.Fit, func(f Fit) float64 { return f.R })
	m.Count = observable.Derive1[Fit, float64](m.Fit, func(f Fit) float64 { return float64(f.N) })
	return m
}

func (m *Model) Step(dt float64) {}

func (m *Model) Reset() {
	m.Points.Reset()
	m.rng = rand.New(rand.NewSource(m.hidden.Seed))
}

func (m *Model) Probes() []screen.Probe {
	return []screen.Probe{
		{Name: "slope", Source: m.Slope},
		{Name: "r", Source: m.RVal},
		{Name: "n", Source: m.Count},
	}
}

// AddPoint appends a point, replacing the slice so listeners fire.
func (m *Model) AddPoint(p Point) {
	cur := m.Points.Get()
	next := make([]Point, len(cur)+1)
	copy(next, cur)
	next[len(cur)] = p
	m.Points.Set(next)
}

// AddRandom samples a point scattered around the hidden line.
func (m *Model) AddRandom() {
	x := m.rng.Float64() * 20
	y := m.hidden.Slope*x + m.hidden.Intercept + m.rng.NormFloat64()*m.hidden.Noise
	m.AddPoint(Point{X: x, Y: y})
}

// RemoveLast drops the most recently added point.
func (m *Model) RemoveLast() {
	cur := m.Points.Get()
	if len(cur) == 0 {
		return
	}
	next := make([]Point, len(cur)-1)
	copy(next, cur[:len(cur)-1])
	m.Points.Set(next)
}

// Clear removes all points.
func (m *Model) Clear() {
	m.Points.Set(nil)
}
