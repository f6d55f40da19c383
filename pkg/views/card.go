package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/collar-pulse/pkg/components"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/conversation"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/theme"
)

// cardState selects how a message card is drawn.
type cardState struct {
	focused  bool
	expanded bool
}

// renderCard draws the author line above the quoted body. Collapsed cards
// show one line; expanded cards wrap the whole body.
func renderCard(s theme.Styles, m conversation.Message, width int, st cardState) string {
	inner := max(width-2, 1)
	body := conversation.Quote(m.Body)
	if st.expanded {
		body = strings.Join(components.Wrap(body, inner), "\n")
	} else {
		body = components.Fit(body, inner)
	}

	style := s.Card
	switch {
	case st.expanded:
		style = s.CardOpen
	case st.focused:
		style = s.CardFocus
	}
	marker := "  "
	if st.focused {
		marker = "› "
	}
	author := s.Author.Render(marker + m.Author)
	return lipgloss.JoinVertical(lipgloss.Left, author, style.Width(width).Render(body))
}
