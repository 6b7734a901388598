package line

import "github.com/iw2rmb/scribe/internal/grapheme"

const ellipsis = "⋯"

// Glyphs drawn in place of graphemes that have no useful rendering.
const (
	noGlyph         rune = 0
	tabGlyph        rune = ' '
	whitespaceGlyph rune = '␣'
	controlGlyph    rune = '▯'
	zeroWidthGlyph  rune = '·'
)

// fragment is the render metadata derived for one grapheme cluster.
type fragment struct {
	grapheme    string
	width       Width
	replacement rune
	start       int
}

func (f fragment) end() int {
	return f.start + len(f.grapheme)
}

func fragmentsOf(text string) []fragment {
	clusters := grapheme.Clusters(text)
	if len(clusters) == 0 {
		return nil
	}
	out := make([]fragment, 0, len(clusters))
	for _, c := range clusters {
		f := fragment{grapheme: c.Text, start: c.Start}
		if r := replacementFor(c.Text); r != noGlyph {
			f.replacement = r
			f.width = Half
		} else if grapheme.Width(c.Text) <= 1 {
			f.width = Half
		} else {
			f.width = Full
		}
		out = append(out, f)
	}
	return out
}

// replacementFor returns the glyph drawn instead of g, or noGlyph when g is
// drawn as itself.
func replacementFor(g string) rune {
	w := grapheme.Width(g)
	switch {
	case g == " ":
		return noGlyph
	case g == "\t":
		return tabGlyph
	case w > 0 && grapheme.IsSpace(g):
		return whitespaceGlyph
	case w == 0:
		if grapheme.IsControl(g) {
			return controlGlyph
		}
		return zeroWidthGlyph
	default:
		return noGlyph
	}
}
