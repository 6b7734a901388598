package terminal

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/scribe/annotated"
)

// Style controls how Screen paints annotated text, inverted rows and the
// cursor cell.
type Style struct {
	Text          lipgloss.Style
	Match         lipgloss.Style
	SelectedMatch lipgloss.Style
	Inverted      lipgloss.Style
	Cursor        lipgloss.Style
}

func DefaultStyle() Style {
	return NewStyle(lipgloss.DefaultRenderer())
}

// NewStyle builds the default styles on r. Tests pass a renderer with a
// fixed color profile.
func NewStyle(r *lipgloss.Renderer) Style {
	return Style{
		Text: r.NewStyle(),
		Match: r.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#D3D3D3")),
		SelectedMatch: r.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#FF3300")),
		Inverted: r.NewStyle().Reverse(true),
		Cursor:   r.NewStyle().Reverse(true),
	}
}

func (s Style) forKind(k annotated.Kind) (lipgloss.Style, bool) {
	switch k {
	case annotated.Match:
		return s.Match, true
	case annotated.SelectedMatch:
		return s.SelectedMatch, true
	default:
		return s.Text, false
	}
}
