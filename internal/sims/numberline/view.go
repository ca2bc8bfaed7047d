package numberline

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

	line     string
	scene    string
	readouts [3]string
}

func NewView(m *Model, prof *colors.Profile) *View {
	v := &View{model: m, prof: prof}

	observable.Multilink4[Scene, int, float64, float64](
		m.Scene, m.Elevation, m.Temperature, m.Target,
		func(s Scene, elev int, temp, target float64) {
			v.scene = s.String()
			v.line = v.renderLine(m.Value())
			switch s {
			case Temperature:
				v.readouts[0] = fmt.Sprintf("%.1f ° (target %+.0f °)", temp, target)
			default:
				v.readouts[0] = fmt.Sprintf("%+d m", elev)
			}
		})
	m.Opposite.Link(func(o, old int) { v.readouts[1] = fmt.Sprintf("%+d", o) })
	m.Absolute.Link(func(a, old int) { v.readouts[2] = fmt.Sprintf("%d", a) })

	return v
}

func (v *View) renderLine(value int) string {
	rng := v.model.Range()
	cells := 2*rng + 1

	marks := make([]rune, cells)
	for i := range marks {
		marks[i] = '┬'
	}
	marks[rng] = '╂' // zero

	idx := value + rng
	if idx >= 0 && idx < cells {
		marks[idx] = '●'
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("─", cells*2))
	b.WriteByte('\n')
	for i, r := range marks {
		b.WriteRune(r)
		if i < cells-1 {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("%-*d%*s%*d", cells/2, -rng, 2, "0", cells/2, rng))

	return lipgloss.NewStyle().Foreground(v.prof.Trace).Render(b.String())
}

func (v *View) Render(width, height int) string {
	label := v.prof.LabelStyle()
	value := v.prof.ValueStyle()

	panel := v.prof.PanelStyle().Render(strings.Join([]string{
		label.Render("scene") + value.Render(v.scene),
		label.Render("value") + value.Render(v.readouts[0]),
		label.Render("opposite") + value.Render(v.readouts[1]),
		label.Render("absolute") + value.Render(v.readouts[2]),
	}, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left,
		v.prof.HeaderStyle().Render("Number Line: Integers"),
		lipgloss.NewStyle().Padding(1, 2).Render(v.line),
		panel,
	)
}

func (v *View) HandleKey(key string) bool {
	switch key {
	case "up", "k":
		v.model.Adjust(1)
	case "down", "j":
		v.model.Adjust(-1)
	case "t":
		v.model.ToggleScene()
	default:
		return false
	}
	return true
}

func (v *View) Help() string {
	return "↑/↓ adjust value  t switch scene"
}
