package theme

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles every screen draws with.
type Styles struct {
	Theme Theme

	TopBar      lipgloss.Style
	BackArrow   lipgloss.Style
	Breadcrumb  lipgloss.Style
	Button      lipgloss.Style
	ButtonFocus lipgloss.Style
	Panel       lipgloss.Style
	Author      lipgloss.Style
	Card        lipgloss.Style
	CardFocus   lipgloss.Style
	CardOpen    lipgloss.Style
	Readout     lipgloss.Style
	Value       lipgloss.Style
	Dim         lipgloss.Style
	Notice      lipgloss.Style
}

// NewStyles derives the screen styles from t.
func NewStyles(t Theme) Styles {
	c := func(s string) lipgloss.Color { return lipgloss.Color(s) }
	button := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c(t.Border)).
		Foreground(c(t.Foreground)).
		Padding(0, 2)

	card := lipgloss.NewStyle().
		Background(c(t.CardSurface)).
		Foreground(c(t.Foreground)).
		Padding(0, 1)

	return Styles{
		Theme:       t,
		TopBar:      lipgloss.NewStyle().Bold(true).Foreground(c(t.Title)),
		BackArrow:   lipgloss.NewStyle().Foreground(c(t.Accent)),
		Breadcrumb:  lipgloss.NewStyle().Foreground(c(t.Dim)),
		Button:      button,
		ButtonFocus: button.BorderForeground(c(t.BorderFocus)).Bold(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(c(t.Border)),
		Author:    lipgloss.NewStyle().Bold(true).Foreground(c(t.Accent)),
		Card:      card,
		CardFocus: card.Bold(true),
		CardOpen:  card.Background(c(t.CardExpanded)),
		Readout:   lipgloss.NewStyle().Foreground(c(t.Dim)),
		Value:     lipgloss.NewStyle().Bold(true).Foreground(c(t.StatusOK)),
		Dim:       lipgloss.NewStyle().Foreground(c(t.Dim)),
		Notice:    lipgloss.NewStyle().Italic(true).Foreground(c(t.StatusWarn)),
	}
}
