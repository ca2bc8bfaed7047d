package regression

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgracey/simlab/internal/colors"
	"github.com/rgracey/simlab/internal/observable"
)

const (
	plotW = 56
	plotH = 16
	xMax  = 20.0
	yMax  = 20.0
)

type View struct {
	model *Model
	prof  *colors.Profile

	scatter string
	summary [3]string
}

func NewView(m *Model, prof *colors.Profile) *View {
	v := &View{model: m, prof: prof}

	// One multilink keeps scatter and summary consistent: the fit shown
	// always belongs to the points shown.
	observable.Multilink2[[]Point, Fit](m.Points, m.Fit,
		func(points []Point, fit Fit) {
			v.scatter = v.renderScatter(points, fit)
			v.summary[0] = fmt.Sprintf("%d", fit.N)
			if fit.Valid {
				v.summary[1] = fmt.Sprintf("y = %.2fx %+.2f", fit.Slope, fit.Intercept)
				v.summary[2] = fmt.Sprintf("%.3f", fit.R)
			} else {
				v.summary[1] = "—"
				v.summary[2] = "—"
			}
		})

	return v
}

func (v *View) renderScatter(points []Point, fit Fit) string {
	grid := make([][]rune, plotH)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", plotW))
	}

	cell := func(x, y float64) (int, int, bool) {
		col := int(x / xMax * float64(plotW-1))
		row := plotH - 1 - int(y/yMax*float64(plotH-1))
		ok := col >= 0 && col < plotW && row >= 0 && row < plotH
		return row, col, ok
	}

	if fit.Valid {
		for c := 0; c < plotW; c++ {
			x := float64(c) / float64(plotW-1) * xMax
			if row, col, ok := cell(x, fit.Slope*x+fit.Intercept); ok {
				grid[row][col] = '·'
			}
		}
	}
	for _, p := range points {
		if row, col, ok := cell(p.X, p.Y); ok {
			grid[row][col] = '●'
		}
	}

	lines := make([]string, plotH)
	for i, g := range grid {
		lines[i] = string(g)
	}
	return lipgloss.NewStyle().Foreground(v.prof.Trace).Render(strings.Join(lines, "\n"))
}

func (v *View) Render(width, height int) string {
	label := v.prof.LabelStyle()
	value := v.prof.ValueStyle()

	panel := v.prof.PanelStyle().Render(strings.Join([]string{
		label.Render("points") + value.Render(v.summary[0]),
		label.Render("best fit") + value.Render(v.summary[1]),
		label.Render("correlation") + value.Render(v.summary[2]),
	}, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left,
		v.prof.HeaderStyle().Render("Least-Squares Regression"),
		lipgloss.NewStyle().Padding(0, 2).Render(v.scatter),
		panel,
	)
}

func (v *View) HandleKey(key string) bool {
	switch key {
	case "p":
		v.model.AddRandom()
	case "d":
		v.model.RemoveLast()
	case "c":
		v.model.Clear()
	default:
		return false
	}
	return true
}

func (v *View) Help() string {
	return "p add point  d delete last  c clear"
}
