// Package shell is the interactive launcher: a bubbletea program whose
// tick loop drives the active screen's model and whose key handling is
// shared across screens, with sim-specific keys delegated to the view.
package shell

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rgracey/simlab/internal/catalog"
	"github.com/rgracey/simlab/internal/colors"
	"github.com/rgracey/simlab/internal/config"
	"github.com/rgracey/simlab/internal/screen"
)

type TickMsg time.Time

// pair caches a constructed model/view so screen state survives switching
// away and back. Screens are built lazily on first visit and never torn
// down; Reset is the lifecycle.
type pair struct {
	model screen.Model
	view  screen.View
}

type Model struct {
	screens []screen.Screen
	cfg     *config.Config
	prof    *colors.Profile

	idx      int
	pairs    map[string]*pair
	running  bool
	showHelp bool

	width, height int
}

func NewModel(reg *catalog.Registry, cfg *config.Config, prof *colors.Profile, start string) (Model, error) {
	screens := reg.All()

	idx := 0
	found := start == ""
	for i, s := range screens {
		if s.Name == start {
			idx = i
			found = true
			break
		}
	}
	if !found {
		return Model{}, fmt.Errorf("unknown screen: %s", start)
	}

	return Model{
		screens: screens,
		cfg:     cfg,
		prof:    prof,
		idx:     idx,
		pairs:   make(map[string]*pair),
		running: true,
	}, nil
}

// Run launches the shell on the given start screen.
func Run(reg *catalog.Registry, cfg *config.Config, prof *colors.Profile, start string) error {
	m, err := NewModel(reg, cfg, prof, start)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func (m Model) active() *pair {
	s := m.screens[m.idx]
	p, ok := m.pairs[s.Name]
	if !ok {
		mod, view := s.New(m.cfg, m.prof)
		p = &pair{model: mod, view: view}
		m.pairs[s.Name] = p
	}
	return p
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.FrameRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.active().model.Reset()
		case "tab", "]":
			m.idx = (m.idx + 1) % len(m.screens)
		case "[":
			m.idx = (m.idx - 1 + len(m.screens)) % len(m.screens)
		case "?":
			m.showHelp = !m.showHelp
		default:
			m.active().view.HandleKey(key)
		}

	case TickMsg:
		if m.running {
			m.active().model.Step(m.cfg.Dt)
		}
		return m, m.tick()
	}

	return m, nil
}

func (m Model) View() string {
	s := m.screens[m.idx]
	p := m.active()

	status := "running"
	if !m.running {
		status = "paused"
	}
	header := lipgloss.NewStyle().Foreground(m.prof.Label).Render(
		fmt.Sprintf("simlab · %s %d/%d · %s", s.Name, m.idx+1, len(m.screens), status))

	body := p.view.Render(m.width, m.height)

	help := m.prof.HelpStyle().Render("? help  tab next screen  space pause  r reset  q quit")
	if m.showHelp {
		help = m.prof.HelpStyle().Render(
			"tab/] next  [ prev  space pause  r reset  q quit\n" + p.view.Help())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, help)
}
