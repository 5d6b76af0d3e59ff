package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the browser.
type Theme struct {
	Primary   lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	TextMuted lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
}

// DefaultTheme is the stock color scheme.
var DefaultTheme = Theme{
	Primary:   lipgloss.AdaptiveColor{Light: "#6B3FA0", Dark: "#9B59B6"},
	Accent:    lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#F1C40F"},
	Text:      lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#E5E5E5"},
	TextMuted: lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#6B6B6B"},
	Error:     lipgloss.AdaptiveColor{Light: "#CC0033", Dark: "#FF0040"},
}

// Styles contains the reusable Lipgloss styles for the browser.
type Styles struct {
	Header       lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	Muted        lipgloss.Style
	Tag          lipgloss.Style
	Detail       lipgloss.Style
	DetailLabel  lipgloss.Style
	Error        lipgloss.Style
	Footer       lipgloss.Style
}

// NewStyles builds the style set from a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Padding(0, 1),
		Item: lipgloss.NewStyle().
			Foreground(t.Text).
			Padding(0, 2),
		ItemSelected: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true).
			Padding(0, 1).
			SetString("▸ "),
		Muted: lipgloss.NewStyle().
			Foreground(t.TextMuted),
		Tag: lipgloss.NewStyle().
			Foreground(t.Primary),
		Detail: lipgloss.NewStyle().
			Padding(1, 2),
		DetailLabel: lipgloss.NewStyle().
			Foreground(t.TextMuted).
			Width(10),
		Error: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true),
		Footer: lipgloss.NewStyle().
			Foreground(t.TextMuted).
			Padding(0, 1),
	}
}
