package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortscope/internal/trace"
)

type styles struct {
	title       lipgloss.Style
	label       lipgloss.Style
	value       lipgloss.Style
	muted       lipgloss.Style
	selected    lipgloss.Style
	panel       lipgloss.Style
	explanation lipgloss.Style
	playing     lipgloss.Style
	paused      lipgloss.Style
	errText     lipgloss.Style
	roles       map[trace.Role]lipgloss.Style
}

func newStyles(t Theme) styles {
	s := styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent).
			MarginBottom(1),
		label: lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		value: lipgloss.NewStyle().Foreground(t.Text),
		muted: lipgloss.NewStyle().Foreground(t.Muted),
		selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		explanation: lipgloss.NewStyle().
			Foreground(t.Text).
			Italic(true).
			MarginTop(1),
		playing: lipgloss.NewStyle().Bold(true).Foreground(t.Sorted),
		paused:  lipgloss.NewStyle().Bold(true).Foreground(t.Pivot),
		errText: lipgloss.NewStyle().Foreground(t.Comparing),
		roles:   make(map[trace.Role]lipgloss.Style, 5),
	}
	for _, r := range []trace.Role{trace.RoleIdle, trace.RoleHighlighted, trace.RoleComparing, trace.RolePivot, trace.RoleSorted} {
		s.roles[r] = lipgloss.NewStyle().Foreground(t.RoleColor(r))
	}
	return s
}
