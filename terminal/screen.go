package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/scribe/annotated"
	graphemeutil "github.com/iw2rmb/scribe/internal/grapheme"
)

type segment struct {
	text   string
	style  lipgloss.Style
	styled bool
}

func (s segment) render(text string) string {
	if text == "" || !s.styled {
		return text
	}
	return s.style.Render(text)
}

// Screen is a Sink that keeps the last printed content of every row and
// composes it into a single frame on Execute.
//
// Rows keep their content until they are printed again or the screen is
// resized, so callers only need to repaint what changed.
type Screen struct {
	style Style
	size  Size
	rows  [][]segment

	cursor       Position
	cursorHidden bool

	frame string
}

var _ Sink = (*Screen)(nil)

func NewScreen(size Size, style Style) *Screen {
	s := &Screen{style: style}
	s.Resize(size)
	return s
}

// Resize changes the frame size and blanks every row and the frame.
func (s *Screen) Resize(size Size) {
	size.Width = max(size.Width, 0)
	size.Height = max(size.Height, 0)
	s.size = size
	s.rows = make([][]segment, size.Height)
	s.frame = ""
}

func (s *Screen) Size() (Size, error) { return s.size, nil }

func (s *Screen) PrintLine(row int, text string) error {
	return s.setRow(row, []segment{{text: text}})
}

func (s *Screen) PrintAnnotatedLine(row int, text *annotated.String) error {
	var segs []segment
	for part := range text.Parts() {
		st, styled := s.style.forKind(part.Kind)
		segs = append(segs, segment{text: part.Text, style: st, styled: styled})
	}
	return s.setRow(row, segs)
}

// PrintInvertedLine prints text in reverse video, truncated or padded to the
// full width.
func (s *Screen) PrintInvertedLine(row int, text string) error {
	text = ansi.Truncate(text, s.size.Width, "")
	if pad := s.size.Width - ansi.StringWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return s.setRow(row, []segment{{text: text, style: s.style.Inverted, styled: true}})
}

func (s *Screen) MoveCursorTo(pos Position) error {
	s.cursor = pos
	return nil
}

func (s *Screen) HideCursor() error {
	s.cursorHidden = true
	return nil
}

func (s *Screen) ShowCursor() error {
	s.cursorHidden = false
	return nil
}

// Execute composes the rows into the frame returned by String.
func (s *Screen) Execute() error {
	out := make([]string, len(s.rows))
	for i := range s.rows {
		out[i] = s.composeRow(i)
	}
	s.frame = strings.Join(out, "\n")
	return nil
}

// String returns the frame built by the last Execute.
func (s *Screen) String() string { return s.frame }

func (s *Screen) setRow(row int, segs []segment) error {
	if row < 0 || row >= len(s.rows) {
		return fmt.Errorf("print row %d of %d: %w", row, len(s.rows), ErrRowOutOfRange)
	}
	s.rows[row] = segs
	return nil
}

func (s *Screen) composeRow(row int) string {
	cursorCol := -1
	if !s.cursorHidden && s.cursor.Row == row && s.cursor.Col < s.size.Width {
		cursorCol = s.cursor.Col
	}

	var sb strings.Builder
	col := 0
	placed := false
	for _, seg := range s.rows[row] {
		w := graphemeutil.StringWidth(seg.text)
		if !placed && cursorCol >= col && cursorCol < col+w {
			before, cell, after := splitAtColumn(seg.text, cursorCol-col)
			sb.WriteString(seg.render(before))
			sb.WriteString(s.style.Cursor.Render(cell))
			sb.WriteString(seg.render(after))
			placed = true
		} else {
			sb.WriteString(seg.render(seg.text))
		}
		col += w
	}

	if cursorCol >= 0 && !placed {
		if cursorCol > col {
			sb.WriteString(strings.Repeat(" ", cursorCol-col))
		}
		sb.WriteString(s.style.Cursor.Render(" "))
	}
	return sb.String()
}

// splitAtColumn cuts text around the grapheme covering cell col.
func splitAtColumn(text string, col int) (before, cell, after string) {
	x := 0
	for _, c := range graphemeutil.Clusters(text) {
		w := graphemeutil.Width(c.Text)
		if col >= x && col < x+w {
			return text[:c.Start], c.Text, text[c.End():]
		}
		x += w
	}
	return text, "", ""
}
