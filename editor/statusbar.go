package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/scribe/terminal"
	"github.com/iw2rmb/scribe/view"
)

// statusBar renders the view status in reverse video.
type statusBar struct {
	bar
	status view.Status
}

// update stores s and marks the bar when it differs from the shown status.
func (b *statusBar) update(s view.Status) {
	if s == b.status {
		return
	}
	b.status = s
	b.needsRedraw = true
}

func (b *statusBar) Draw(sink terminal.Sink, originRow int) error {
	return sink.PrintInvertedLine(originRow, formatStatus(b.status, b.size.Width))
}

// formatStatus lays out the file part on the left and the position part on
// the right. It returns "" when both do not fit in width.
func formatStatus(s view.Status, width int) string {
	modified := "NOT MODIFIED"
	if s.Modified {
		modified = "MODIFIED"
	}
	lines := fmt.Sprintf("%d LINES", s.LineCount)
	if s.LineCount == 1 {
		lines = "1 LINE"
	}

	left := fmt.Sprintf("[ STATUS ] :: [ %s ] [ %s ]", s.FileName, modified)
	right := fmt.Sprintf(" [ %d:%d ] [ %s ]", s.CurrentLineIndex+1, s.LineCount, lines)

	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 0 {
		return ""
	}
	return left + strings.Repeat(" ", gap) + right
}
