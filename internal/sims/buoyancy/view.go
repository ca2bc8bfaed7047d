package buoyancy

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgracey/simlab/internal/colors"
	"github.com/rgracey/simlab/internal/observable"
)

const (
	tankW = 32
	// Rows above the surface plus rows down to the tank floor.
	airRows   = 5
	fluidRows = 7
)

type View struct {
	model *Model
	prof  *colors.Profile

	tank     string
	readouts [4]string
	floats   bool
}

func NewView(m *Model, prof *colors.Profile) *View {
	v := &View{model: m, prof: prof}

	observable.Multilink2[float64, float64](m.Bottom, m.Volume,
		func(bottom, vol float64) {
			v.tank = v.renderTank(bottom, Side(vol))
		})
	observable.Multilink3[float64, float64, float64](m.Mass, m.Volume, m.FluidDensity,
		func(mass, vol, rho float64) {
			v.readouts[0] = fmt.Sprintf("%.1f kg", mass)
			v.readouts[1] = fmt.Sprintf("%.1f L", vol)
			v.readouts[2] = fmt.Sprintf("%.2f kg/L", rho)
		})
	m.BuoyantForce.Link(func(f, old float64) {
		v.readouts[3] = fmt.Sprintf("%.1f N", f)
	})
	m.Floats.Link(func(b, old bool) { v.floats = b })

	return v
}

func (v *View) renderTank(bottom, side float64) string {
	rows := airRows + fluidRows
	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", tankW))
	}

	// Surface line at airRows; one world unit per fluid row.
	unit := TankDepth / float64(fluidRows)
	for c := 0; c < tankW; c++ {
		grid[airRows][c] = '~'
	}

	blockTopRow := airRows - int((bottom+side)/unit)
	blockBottomRow := airRows - int(bottom/unit)
	left := tankW/2 - 4
	for r := blockTopRow; r <= blockBottomRow; r++ {
		if r < 0 || r >= rows {
			continue
		}
		for c := left; c < left+8; c++ {
			grid[r][c] = '█'
		}
	}

	fluid := lipgloss.NewStyle().Foreground(v.prof.Trace)
	block := lipgloss.NewStyle().Foreground(v.prof.Accent)

	lines := make([]string, rows)
	for i, g := range grid {
		s := string(g)
		if i == airRows {
			lines[i] = fluid.Render(s)
		} else if strings.ContainsRune(s, '█') {
			lines[i] = block.Render(s)
		} else {
			lines[i] = s
		}
	}
	return strings.Join(lines, "\n")
}

func (v *View) Render(width, height int) string {
	label := v.prof.LabelStyle()
	value := v.prof.ValueStyle()

	state := "sinks"
	if v.floats {
		state = "floats"
	}

	panel := v.prof.PanelStyle().Render(strings.Join([]string{
		label.Render("mass") + value.Render(v.readouts[0]),
		label.Render("volume") + value.Render(v.readouts[1]),
		label.Render("fluid") + value.Render(v.readouts[2]),
		label.Render("buoyant force") + value.Render(v.readouts[3]),
		label.Render("block") + value.Render(state),
	}, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left,
		v.prof.HeaderStyle().Render("Density & Buoyancy"),
		lipgloss.NewStyle().Padding(0, 2).Render(v.tank),
		panel,
	)
}

func (v *View) HandleKey(key string) bool {
	switch key {
	case "u":
		v.model.AdjustMass(0.5)
	case "j":
		v.model.AdjustMass(-0.5)
	case "w":
		v.model.AdjustVolume(0.5)
	case "s":
		v.model.AdjustVolume(-0.5)
	case "e":
		v.model.AdjustFluid(0.1)
	case "d":
		v.model.AdjustFluid(-0.1)
	default:
		return false
	}
	return true
}

func (v *View) Help() string {
	return "u/j mass  w/s volume  e/d fluid density"
}
