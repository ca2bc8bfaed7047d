package coulomb

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgracey/simlab/internal/colors"
	"github.com/rgracey/simlab/internal/observable"
)

// View renders the two charges on a scaled track with a force readout.
// All displayed strings are rebuilt by subscriptions; Render only
// composes them.
type View struct {
	model *Model
	prof  *colors.Profile

	track    string
	readouts []string
}

func NewView(m *Model, prof *colors.Profile) *View {
	v := &View{model: m, prof: prof, readouts: make([]string, 4)}

	observable.Multilink3(m.Charge1, m.Charge2, m.Separation,
		func(q1, q2, r float64) {
			v.track = v.renderTrack(q1, q2, r)
			v.readouts[0] = fmt.Sprintf("%+.1f µC", q1)
			v.readouts[1] = fmt.Sprintf("%+.1f µC", q2)
			v.readouts[2] = fmt.Sprintf("%.1f m", r)
		})
	m.Force.Link(func(f, old float64) {
		dir := "repulsive"
		if f < 0 {
			dir = "attractive"
		}
		v.readouts[3] = fmt.Sprintf("%.3g N  (%s)", abs(f), dir)
	})

	return v
}

func (v *View) renderTrack(q1, q2, r float64) string {
	const width = 56
	line := []rune(strings.Repeat("─", width))

	// Separation scales across the track, charges centered. The model
	// clamps key-driven adjustments but config-seeded values can land
	// outside [MinSeparation, MaxSeparation]; the track shows the edge.
	if r < MinSeparation {
		r = MinSeparation
	}
	if r > MaxSeparation {
		r = MaxSeparation
	}
	span := int(r / MaxSeparation * float64(width-8))
	if span < 1 {
		span = 1
	}
	left := (width - span) / 2
	right := left + span

	line[left] = chargeRune(q1)
	line[right] = chargeRune(q2)

	styled := lipgloss.NewStyle().Foreground(v.prof.Trace).Render(string(line[:left])) +
		chargeStyle(v.prof, q1).Render(string(line[left])) +
		lipgloss.NewStyle().Foreground(v.prof.Trace).Render(string(line[left+1:right])) +
		chargeStyle(v.prof, q2).Render(string(line[right])) +
		lipgloss.NewStyle().Foreground(v.prof.Trace).Render(string(line[right+1:]))
	return styled
}

func chargeRune(q float64) rune {
	switch {
	case q > 0:
		return '⊕'
	case q < 0:
		return '⊖'
	default:
		return '◯'
	}
}

func chargeStyle(prof *colors.Profile, q float64) lipgloss.Style {
	if q < 0 {
		return lipgloss.NewStyle().Foreground(prof.Negative).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(prof.Positive).Bold(true)
}

func (v *View) Render(width, height int) string {
	label := v.prof.LabelStyle()
	value := v.prof.ValueStyle()

	panel := v.prof.PanelStyle().Render(strings.Join([]string{
		label.Render("charge 1") + value.Render(v.readouts[0]),
		label.Render("charge 2") + value.Render(v.readouts[1]),
		label.Render("separation") + value.Render(v.readouts[2]),
		label.Render("force") + value.Render(v.readouts[3]),
	}, "\n"))

	scene := lipgloss.NewStyle().Padding(1, 2).Render(v.track)

	return lipgloss.JoinVertical(lipgloss.Left,
		v.prof.HeaderStyle().Render("Coulomb's Law"),
		scene,
		panel,
	)
}

func (v *View) HandleKey(key string) bool {
	switch key {
	case "e":
		v.model.AdjustCharge1(1)
	case "d":
		v.model.AdjustCharge1(-1)
	case "w":
		v.model.AdjustCharge2(1)
	case "s":
		v.model.AdjustCharge2(-1)
	case "left":
		v.model.AdjustSeparation(-0.5)
	case "right":
		v.model.AdjustSeparation(0.5)
	default:
		return false
	}
	return true
}

func (v *View) Help() string {
	return "e/d charge 1  w/s charge 2  ←/→ separation"
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
