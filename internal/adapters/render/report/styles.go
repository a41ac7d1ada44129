package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	key        lipgloss.Style
	detail     lipgloss.Style
	value      lipgloss.Style
	warning    lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	index      lipgloss.Style
	cell       lipgloss.Style
	cellActive lipgloss.Style
	marker     lipgloss.Style
}

func newStyles() styles {
	cell := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Right)

	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		key:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		value:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		index:      cell.Foreground(lipgloss.Color("244")),
		cell:       cell.Foreground(lipgloss.Color("250")),
		cellActive: cell.Bold(true).Foreground(lipgloss.Color("214")),
		marker:     cell.Foreground(lipgloss.Color("214")),
	}
}
