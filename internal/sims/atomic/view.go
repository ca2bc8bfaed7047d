package atomic

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgracey/simlab/internal/colors"
	"github.com/rgracey/simlab/internal/observable"
)

type View struct {
	model *Model
	prof  *colors.Profile

	scene    string
	well     string
	readouts [4]string
}

func NewView(m *Model, prof *colors.Profile) *View {
	v := &View{model: m, prof: prof}

	observable.Multilink3(m.Epsilon, m.Sigma, m.Separation,
		func(eps, sigma, r float64) {
			v.scene = v.renderAtoms(sigma, r)
			v.well = v.renderWell(eps, sigma, r)
			v.readouts[0] = fmt.Sprintf("%.2f σ=%.2f", eps, sigma)
			v.readouts[1] = fmt.Sprintf("%.3f", r)
		})
	m.PotentialEnergy.Link(func(u, old float64) {
		v.readouts[2] = fmt.Sprintf("%.3f", u)
	})
	m.InteratomicF.Link(func(f, old float64) {
		kind := "repulsive"
		if f < 0 {
			kind = "attractive"
		}
		v.readouts[3] = fmt.Sprintf("%.3f (%s)", f, kind)
	})

	return v
}

func (v *View) renderAtoms(sigma, r float64) string {
	const width = 56
	line := []rune(strings.Repeat(" ", width))
	line[2] = '●'

	pos := 2 + int(r/(maxSeparationFactor*sigma)*float64(width-6))
	if pos <= 2 {
		pos = 3
	}
	if pos >= width {
		pos = width - 1
	}
	line[pos] = '●'

	return lipgloss.NewStyle().Foreground(v.prof.Accent).Render(string(line))
}

// renderWell draws the potential curve as a sparkline with the current
// separation marked.
func (v *View) renderWell(eps, sigma, r float64) string {
	const cols = 56
	const rows = 7
	rMin := minSeparationFactor * sigma
	rMax := maxSeparationFactor * sigma

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}

	// Clip the repulsive wall so the well stays visible.
	uMax := 2 * eps
	uMin := -1.2 * eps
	for c := 0; c < cols; c++ {
		rr := rMin + (rMax-rMin)*float64(c)/float64(cols-1)
		u := Potential(eps, sigma, rr)
		if u > uMax {
			u = uMax
		}
		row := int((uMax - u) / (uMax - uMin) * float64(rows-1))
		if row < 0 {
			row = 0
		}
		if row >= rows {
			row = rows - 1
		}
		grid[row][c] = '·'
	}

	marker := int((r - rMin) / (rMax - rMin) * float64(cols-1))
	if marker >= 0 && marker < cols {
		u := Potential(eps, sigma, r)
		if u > uMax {
			u = uMax
		}
		row := int((uMax - u) / (uMax - uMin) * float64(rows-1))
		if row >= 0 && row < rows {
			grid[row][marker] = '●'
		}
	}

	lines := make([]string, rows)
	for i, g := range grid {
		lines[i] = string(g)
	}
	return lipgloss.NewStyle().Foreground(v.prof.Trace).Render(strings.Join(lines, "\n"))
}

func (v *View) Render(width, height int) string {
	label := v.prof.LabelStyle()
	value := v.prof.ValueStyle()

	panel := v.prof.PanelStyle().Render(strings.Join([]string{
		label.Render("ε / σ") + value.Render(v.readouts[0]),
		label.Render("separation") + value.Render(v.readouts[1]),
		label.Render("potential") + value.Render(v.readouts[2]),
		label.Render("force") + value.Render(v.readouts[3]),
		label.Render("bond length") + value.Render(fmt.Sprintf("%.3f", v.model.WellDepth.Get())),
	}, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left,
		v.prof.HeaderStyle().Render("Atomic Interactions (Lennard-Jones)"),
		lipgloss.NewStyle().Padding(0, 2).Render(v.scene),
		lipgloss.NewStyle().Padding(1, 2).Render(v.well),
		panel,
	)
}

func (v *View) HandleKey(key string) bool {
	switch key {
	case "e":
		v.model.AdjustEpsilon(0.1)
	case "d":
		v.model.AdjustEpsilon(-0.1)
	case "w":
		v.model.AdjustSigma(0.05)
	case "s":
		v.model.AdjustSigma(-0.05)
	case "k":
		v.model.Kick(1.0)
	case "j":
		v.model.Kick(-1.0)
	default:
		return false
	}
	return true
}

func (v *View) Help() string {
	return "e/d well depth  w/s diameter  k/j kick atom"
}
