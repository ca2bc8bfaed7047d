// Package orbits is the orbital-mechanics screen: a planet around a fixed
// star, integrated with a leapfrog scheme so closed orbits stay closed.
package orbits

import (
	"math"

	"github.com/rgracey/simlab/internal/config"
	"github.com/rgracey/simlab/internal/observable"
	"github.com/rgracey/simlab/internal/screen"
)

// Vec2 is a plane vector. It is comparable, so properties holding it get
// the default equality suppression.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Norm() float64        { return math.Hypot(v.X, v.Y) }

// substeps per frame keeps the integrator stable at display frame rates.
const substeps = 8

type Model struct {
	GM       *observable.Property[float64]
	Position *observable.Property[Vec2]
	Velocity *observable.Property[Vec2]

	Distance *observable.Derived[float64]
	Speed    *observable.Derived[float64]
	// Energy is the specific orbital energy v²/2 − GM/r; negative means
	// the orbit is bound.
	Energy *observable.Derived[float64]
	Bound  *observable.Derived[bool]
}

func NewModel(cfg config.OrbitsConfig) *Model {
	speed := cfg.Speed
	if speed == 0 {
		// Circular orbit speed for the launch radius.
		speed = math.Sqrt(cfg.GM / cfg.Distance)
	}

	m := &Model{
		GM:       observable.New(cfg.GM),
		Position: observable.New(Vec2{X: cfg.Distance}),
		Velocity: observable.New(Vec2{Y: speed}),
	}
	m.Distance = observable.Derive1(m.Position, Vec2.Norm)
	m.Speed = observable.Derive1(m.Velocity, Vec2.Norm)
	m.Energy = observable.Derive3(m.Position, m.Velocity, m.GM,
		func(p, v Vec2, gm float64) float64 {
			return 0.5*v.Norm()*v.Norm() - gm/p.Norm()
		})
	m.Bound = observable.Derive1[float64, bool](m.Energy, func(e float64) bool {
		return e < 0
	})
	return m
}

func (m *Model) accel(p Vec2) Vec2 {
	r := p.Norm()
	if r < 0.1 {
		r = 0.1
	}
	return p.Scale(-m.GM.Get() / (r * r * r))
}

// Step advances one frame with kick-drift-kick leapfrog substeps. The
// position and velocity properties are set once per frame; listeners see
// frame-granular transitions, not substeps.
func (m *Model) Step(dt float64) {
	p := m.Position.Get()
	v := m.Velocity.Get()
	h := dt / substeps

	for i := 0; i < substeps; i++ {
		v = v.Add(m.accel(p).Scale(h / 2))
		p = p.Add(v.Scale(h))
		v = v.Add(m.accel(p).Scale(h / 2))
	}

	m.Position.Set(p)
	m.Velocity.Set(v)
}

func (m *Model) Reset() {
	m.GM.Reset()
	m.Position.Reset()
	m.Velocity.Reset()
}

func (m *Model) Probes() []screen.Probe {
	return []screen.Probe{
		{Name: "distance", Source: m.Distance},
		{Name: "speed", Source: m.Speed},
		{Name: "energy", Source: m.Energy},
	}
}

// Kick scales the planet's speed by factor, changing the orbit shape.
func (m *Model) Kick(factor float64) {
	m.Velocity.Set(m.Velocity.Get().Scale(factor))
}
