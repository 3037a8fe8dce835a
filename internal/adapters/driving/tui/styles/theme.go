// Package styles defines the colour theme and lipgloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the colour palette the TUI renders with.
type Theme struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Highlight lipgloss.Color
	Error     lipgloss.Color
	Warning   lipgloss.Color
	Surface   lipgloss.Color
}

// DefaultTheme returns the standard palette.
func DefaultTheme() Theme {
	return Theme{
		Primary:   lipgloss.Color("#89b4fa"),
		Secondary: lipgloss.Color("#94e2d5"),
		Text:      lipgloss.Color("#cdd6f4"),
		Muted:     lipgloss.Color("#6c7086"),
		Highlight: lipgloss.Color("#f9e2af"),
		Error:     lipgloss.Color("#f38ba8"),
		Warning:   lipgloss.Color("#fab387"),
		Surface:   lipgloss.Color("#313244"),
	}
}

// Styles holds the pre-built lipgloss styles for every TUI element.
type Styles struct {
	Title     lipgloss.Style
	Normal    lipgloss.Style
	Muted     lipgloss.Style
	Selected  lipgloss.Style
	Match     lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Input     lipgloss.Style
	StatusBar lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Normal: lipgloss.NewStyle().
			Foreground(t.Text),
		Muted: lipgloss.NewStyle().
			Foreground(t.Muted),
		Selected: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Surface).
			Bold(true),
		Match: lipgloss.NewStyle().
			Foreground(t.Highlight).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(t.Error),
		Warning: lipgloss.NewStyle().
			Foreground(t.Warning),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Foreground(t.Muted).
			Background(t.Surface).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(t.Muted),
	}
}

// DefaultStyles returns the style set for the default theme.
func DefaultStyles() Styles {
	return NewStyles(DefaultTheme())
}
