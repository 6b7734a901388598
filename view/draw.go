package view

import (
	"strings"

	graphemeutil "github.com/iw2rmb/scribe/internal/grapheme"
	"github.com/iw2rmb/scribe/line"
	"github.com/iw2rmb/scribe/terminal"
)

// Draw prints every row of the view to sink, starting at originRow.
func (v *View) Draw(sink terminal.Sink, originRow int) error {
	w, h := v.size.Width, v.size.Height
	bannerRow := ceilDiv(h, 3)

	for row := 0; row < h; row++ {
		idx := v.scroll.Row + row
		if l, ok := v.buf.Line(idx); ok {
			query, selected := "", line.NoMatch
			if v.search != nil {
				query = v.search.query
				if idx == v.loc.LineIndex {
					selected = v.loc.GraphemeIndex
				}
			}
			text := l.AnnotatedVisibleSubstr(v.scroll.Col, v.scroll.Col+w, query, selected)
			if err := sink.PrintAnnotatedLine(originRow+row, text); err != nil {
				return err
			}
			continue
		}

		text := "~"
		if row == bannerRow && v.buf.IsEmpty() {
			text = welcome(v.opts.Banner, w)
		}
		if err := sink.PrintLine(originRow+row, text); err != nil {
			return err
		}
	}
	return nil
}

// welcome centers banner in the columns after a leading "~".
func welcome(banner string, width int) string {
	if width == 0 {
		return ""
	}
	rest := width - 1
	bw := graphemeutil.StringWidth(banner)
	if banner == "" || rest < bw {
		return "~"
	}
	pad := rest - bw
	left := pad / 2
	return "~" + strings.Repeat(" ", left) + banner + strings.Repeat(" ", pad-left)
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }
