package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds the palette used by Styles.
type Theme struct {
	Name    string
	Accent  lipgloss.Color
	Border  lipgloss.Color
	Muted   lipgloss.Color
	Danger  lipgloss.Color
	Success lipgloss.Color
}

// Themes known to ThemeByName.
var (
	DarkTheme = Theme{
		Name:    "dark",
		Accent:  lipgloss.Color("#0EA5E9"), // sky
		Border:  lipgloss.Color("#0EA5E9"),
		Muted:   lipgloss.Color("#6B7280"),
		Danger:  lipgloss.Color("#EF4444"),
		Success: lipgloss.Color("#22C55E"),
	}
	LightTheme = Theme{
		Name:    "light",
		Accent:  lipgloss.Color("#0369A1"),
		Border:  lipgloss.Color("#0284C7"),
		Muted:   lipgloss.Color("#9CA3AF"),
		Danger:  lipgloss.Color("#B91C1C"),
		Success: lipgloss.Color("#15803D"),
	}
	MonoTheme = Theme{
		Name:    "mono",
		Accent:  lipgloss.Color("15"),
		Border:  lipgloss.Color("7"),
		Muted:   lipgloss.Color("8"),
		Danger:  lipgloss.Color("15"),
		Success: lipgloss.Color("15"),
	}
)

// ThemeByName falls back to DarkTheme for unknown names.
func ThemeByName(name string) Theme {
	switch name {
	case LightTheme.Name:
		return LightTheme
	case MonoTheme.Name:
		return MonoTheme
	default:
		return DarkTheme
	}
}

// Styles are the rendered building blocks of the view.
type Styles struct {
	Header    lipgloss.Style
	Section   lipgloss.Style
	Card      lipgloss.Style
	Selected  lipgloss.Style
	Fading    lipgloss.Style
	Tag       lipgloss.Style
	ActiveTag lipgloss.Style
	Label     lipgloss.Style
	Alert     lipgloss.Style
	Muted     lipgloss.Style
}

// NewStyles derives Styles from a theme.
func NewStyles(t Theme) Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(t.Accent).MarginBottom(1),
		Section:   lipgloss.NewStyle().Bold(true).MarginTop(1),
		Card:      card,
		Selected:  card.BorderForeground(t.Success).BorderStyle(lipgloss.ThickBorder()),
		Fading:    card.Faint(true).Strikethrough(true).BorderForeground(t.Muted),
		Tag:       lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(t.Border).Padding(0, 1),
		ActiveTag: lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(t.Accent).Padding(0, 1).Bold(true),
		Label:     lipgloss.NewStyle().Bold(true),
		Alert:     lipgloss.NewStyle().Foreground(t.Danger).Bold(true).Border(lipgloss.DoubleBorder()).BorderForeground(t.Danger).Padding(0, 1),
		Muted:     lipgloss.NewStyle().Foreground(t.Muted),
	}
}
