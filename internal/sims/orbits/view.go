package orbits

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgracey/simlab/internal/colors"
	"github.com/rgracey/simlab/internal/observable"
)

const (
	gridW = 56
	gridH = 20
	// World units mapped onto the grid half-width.
	worldSpan = 12.0
	trailCap  = 400
)

type View struct {
	model *Model
	prof  *colors.Profile

	trail    []Vec2
	readouts [3]string
	bound    bool
}

func NewView(m *Model, prof *colors.Profile) *View {
	v := &View{model: m, prof: prof, trail: make([]Vec2, 0, trailCap)}

	m.Position.Link(func(p, old Vec2) {
		v.trail = append(v.trail, p)
		if len(v.trail) > trailCap {
			v.trail = v.trail[1:]
		}
	})
	observable.Multilink2[float64, float64](m.Distance, m.Speed,
		func(r, s float64) {
			v.readouts[0] = fmt.Sprintf("%.2f", r)
			v.readouts[1] = fmt.Sprintf("%.2f", s)
		})
	m.Energy.Link(func(e, old float64) {
		v.readouts[2] = fmt.Sprintf("%.3f", e)
	})
	m.Bound.Link(func(b, old bool) { v.bound = b })

	return v
}

func (v *View) renderOrbit() string {
	grid := make([][]rune, gridH)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", gridW))
	}

	plot := func(p Vec2, r rune) {
		// Terminal cells are twice as tall as wide.
		col := gridW/2 + int(p.X/worldSpan*float64(gridW)/2)
		row := gridH/2 - int(p.Y/worldSpan*float64(gridH)/2)
		if col >= 0 && col < gridW && row >= 0 && row < gridH {
			grid[row][col] = r
		}
	}

	for _, p := range v.trail {
		plot(p, '·')
	}
	plot(Vec2{}, '☀')
	if len(v.trail) > 0 {
		plot(v.trail[len(v.trail)-1], '●')
	}

	lines := make([]string, gridH)
	for i, g := range grid {
		lines[i] = string(g)
	}
	return lipgloss.NewStyle().Foreground(v.prof.Trace).Render(strings.Join(lines, "\n"))
}

func (v *View) Render(width, height int) string {
	label := v.prof.LabelStyle()
	value := v.prof.ValueStyle()

	orbitKind := "unbound (escape)"
	if v.bound {
		orbitKind = "bound"
	}

	panel := v.prof.PanelStyle().Render(strings.Join([]string{
		label.Render("distance") + value.Render(v.readouts[0]),
		label.Render("speed") + value.Render(v.readouts[1]),
		label.Render("energy") + value.Render(v.readouts[2]),
		label.Render("orbit") + value.Render(orbitKind),
	}, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left,
		v.prof.HeaderStyle().Render("Kepler Orbits"),
		lipgloss.NewStyle().Padding(0, 2).Render(v.renderOrbit()),
		panel,
	)
}

func (v *View) HandleKey(key string) bool {
	switch key {
	case "k":
		v.model.Kick(1.05)
	case "j":
		v.model.Kick(0.95)
	case "c":
		v.trail = v.trail[:0]
	default:
		return false
	}
	return true
}

func (v *View) Help() string {
	return "k/j speed up / slow down  c clear trail"
}
