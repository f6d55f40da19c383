package views

import (
	stdimage "image"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/collar-pulse/pkg/image"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/nav"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/screen"
)

// Camera stands in for the collar's first-person video stream with a
// generated test card.
type Camera struct {
	d        Deps
	renderer *image.Renderer
	card     stdimage.Image
}

// NewCamera returns the camera placeholder drawn through r.
func NewCamera(d Deps, r *image.Renderer) *Camera {
	return &Camera{d: d, renderer: r, card: image.NoSignal(160, 90)}
}

func (c *Camera) ID() screen.ID            { return screen.FpvStream }
func (c *Camera) Title() string            { return screen.FpvStream.Title() }
func (c *Camera) Enter() tea.Cmd           { return nil }
func (c *Camera) Update(_ tea.Msg) tea.Cmd { return nil }

// HandleKey pushes Home on h.
func (c *Camera) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "h" {
		return nav.To(screen.Home)
	}
	return nil
}

func (c *Camera) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	s := c.d.Styles
	notice := s.Notice.Render("No signal: the collar camera is not streaming.")
	if height < 3 {
		return fill(notice, height)
	}

	pic, err := c.renderer.Render(c.card, width, height-2)
	if err != nil {
		c.d.Logger.Error("camera: render test card", "err", err)
		pic = s.Dim.Render(err.Error())
	}
	body := lipgloss.JoinVertical(lipgloss.Center, pic, "", notice)
	return fill(lipgloss.PlaceHorizontal(width, lipgloss.Center, body), height)
}
