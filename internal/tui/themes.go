package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortscope/internal/trace"
)

const DefaultThemeName = "cyberpunk"

// Theme colours the player. Role colours follow the console renderer's
// meaning: sorted, pivot, comparing, highlighted, idle.
type Theme struct {
	Name        string
	Primary     lipgloss.Color
	Accent      lipgloss.Color
	Text        lipgloss.Color
	Muted       lipgloss.Color
	Sorted      lipgloss.Color
	Pivot       lipgloss.Color
	Comparing   lipgloss.Color
	Highlighted lipgloss.Color
	Idle        lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:        "cyberpunk",
		Primary:     lipgloss.Color("#ff00ff"),
		Accent:      lipgloss.Color("#00ffff"),
		Text:        lipgloss.Color("#ffffff"),
		Muted:       lipgloss.Color("#666666"),
		Sorted:      lipgloss.Color("#00ff88"),
		Pivot:       lipgloss.Color("#ffff00"),
		Comparing:   lipgloss.Color("#ff0055"),
		Highlighted: lipgloss.Color("#00aaff"),
		Idle:        lipgloss.Color("#aaaaaa"),
	}

	ThemeRetroGreen = Theme{
		Name:        "retro",
		Primary:     lipgloss.Color("#00ff00"), // Green phosphor
		Accent:      lipgloss.Color("#88ff88"),
		Text:        lipgloss.Color("#00ff00"),
		Muted:       lipgloss.Color("#005500"),
		Sorted:      lipgloss.Color("#88ff88"),
		Pivot:       lipgloss.Color("#ffff00"),
		Comparing:   lipgloss.Color("#ff0000"),
		Highlighted: lipgloss.Color("#00cc00"),
		Idle:        lipgloss.Color("#007700"),
	}

	ThemeMinimal = Theme{
		Name:        "minimal",
		Primary:     lipgloss.Color("#ffffff"),
		Accent:      lipgloss.Color("#0088ff"),
		Text:        lipgloss.Color("#ffffff"),
		Muted:       lipgloss.Color("#888888"),
		Sorted:      lipgloss.Color("#00ff00"),
		Pivot:       lipgloss.Color("#ffaa00"),
		Comparing:   lipgloss.Color("#ff0000"),
		Highlighted: lipgloss.Color("#0088ff"),
		Idle:        lipgloss.Color("#cccccc"),
	}

	ThemeOcean = Theme{
		Name:        "ocean",
		Primary:     lipgloss.Color("#0077be"),
		Accent:      lipgloss.Color("#ffd700"),
		Text:        lipgloss.Color("#e0f0ff"),
		Muted:       lipgloss.Color("#4488aa"),
		Sorted:      lipgloss.Color("#00ff88"),
		Pivot:       lipgloss.Color("#ffd700"),
		Comparing:   lipgloss.Color("#ff4444"),
		Highlighted: lipgloss.Color("#00a8cc"),
		Idle:        lipgloss.Color("#88aacc"),
	}

	ThemeSunset = Theme{
		Name:        "sunset",
		Primary:     lipgloss.Color("#ff6b6b"), // Coral
		Accent:      lipgloss.Color("#feca57"),
		Text:        lipgloss.Color("#fff5f5"),
		Muted:       lipgloss.Color("#8b6b8c"),
		Sorted:      lipgloss.Color("#5fd068"),
		Pivot:       lipgloss.Color("#feca57"),
		Comparing:   lipgloss.Color("#ff4757"),
		Highlighted: lipgloss.Color("#ff9ff3"),
		Idle:        lipgloss.Color("#c8b6c9"),
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to DefaultThemeName.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme returns the theme after current in Themes, wrapping around.
func NextTheme(current Theme) Theme {
	for i, t := range Themes {
		if t.Name == current.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func (t Theme) RoleColor(r trace.Role) lipgloss.Color {
	switch r {
	case trace.RoleSorted:
		return t.Sorted
	case trace.RolePivot:
		return t.Pivot
	case trace.RoleComparing:
		return t.Comparing
	case trace.RoleHighlighted:
		return t.Highlighted
	}
	return t.Idle
}
