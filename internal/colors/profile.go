// Package colors defines the terminal color profiles shared by all screen
// views. A profile is an explicit struct constructed once at startup and
// passed into each view, so there is no ambient global to mutate.
package colors

import "github.com/charmbracelet/lipgloss"

// Profile holds the palette for one rendering mode.
type Profile struct {
	Name string

	Accent   lipgloss.Color // headers, selected items
	Label    lipgloss.Color // readout labels
	Value    lipgloss.Color // readout values
	Positive lipgloss.Color // positive quantities, attractive forces
	Negative lipgloss.Color // negative quantities, repulsive forces
	Trace    lipgloss.Color // trails and plotted series
	Border   lipgloss.Color
	Help     lipgloss.Color
}

// Default is the standard dark-terminal palette.
func Default() *Profile {
	return &Profile{
		Name:     "default",
		Accent:   lipgloss.Color("86"),
		Label:    lipgloss.Color("245"),
		Value:    lipgloss.Color("252"),
		Positive: lipgloss.Color("49"),
		Negative: lipgloss.Color("205"),
		Trace:    lipgloss.Color("39"),
		Border:   lipgloss.Color("240"),
		Help:     lipgloss.Color("240"),
	}
}

// Projector is a high-contrast palette for classroom projection.
func Projector() *Profile {
	return &Profile{
		Name:     "projector",
		Accent:   lipgloss.Color("21"),
		Label:    lipgloss.Color("232"),
		Value:    lipgloss.Color("16"),
		Positive: lipgloss.Color("28"),
		Negative: lipgloss.Color("160"),
		Trace:    lipgloss.Color("20"),
		Border:   lipgloss.Color("238"),
		Help:     lipgloss.Color("240"),
	}
}

// ByName resolves a profile name from configuration. Unknown names fall
// back to the default palette.
func ByName(name string) *Profile {
	if name == "projector" {
		return Projector()
	}
	return Default()
}

// LabelStyle returns the style used for readout labels.
func (p *Profile) LabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Label).Width(14)
}

// ValueStyle returns the style used for readout values.
func (p *Profile) ValueStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Value)
}

// HeaderStyle returns the style used for screen titles.
func (p *Profile) HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Accent).Bold(true).MarginBottom(1)
}

// PanelStyle returns the bordered style used for readout panels.
func (p *Profile) PanelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(p.Border).
		Padding(0, 2)
}

// HelpStyle returns the style used for key hints.
func (p *Profile) HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Help).MarginTop(1)
}
