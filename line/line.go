// Package line implements a grapheme-segmented line of text and its
// column-window rendering.
//
// All positions taken by Line methods are grapheme indices. The fragment
// index is recomputed from the text after every mutation.
package line

import (
	"strings"

	"github.com/iw2rmb/scribe/annotated"
)

// NoMatch is passed as the selected match when no match is selected.
const NoMatch = -1

// Line is a UTF-8 string plus the fragments derived from it.
type Line struct {
	fragments []fragment
	text      string
}

// From builds a Line from s.
func From(s string) Line {
	return Line{fragments: fragmentsOf(s), text: s}
}

func (l *Line) String() string { return l.text }

// IsEmpty reports whether the line holds no text.
func (l *Line) IsEmpty() bool { return l.text == "" }

// GraphemeCount returns the number of grapheme clusters. It is also the
// append position.
func (l *Line) GraphemeCount() int { return len(l.fragments) }

// Width returns the rendered width of the whole line in cells.
func (l *Line) Width() int { return l.WidthUntil(l.GraphemeCount()) }

// WidthUntil returns the rendered width of the first n graphemes.
func (l *Line) WidthUntil(n int) int {
	n = min(n, len(l.fragments))
	w := 0
	for i := 0; i < n; i++ {
		w += l.fragments[i].width.Cells()
	}
	return w
}

// InsertChar inserts c before grapheme at. Positions at or past the end
// append; negative positions are ignored.
func (l *Line) InsertChar(c rune, at int) {
	if at < 0 {
		return
	}
	if at < len(l.fragments) {
		pos := l.fragments[at].start
		l.text = l.text[:pos] + string(c) + l.text[pos:]
	} else {
		l.text += string(c)
	}
	l.rebuild()
}

// AppendChar appends c to the end of the line.
func (l *Line) AppendChar(c rune) {
	l.InsertChar(c, l.GraphemeCount())
}

// RemoveChar deletes grapheme at. Out of range positions are ignored.
func (l *Line) RemoveChar(at int) {
	if at < 0 || at >= len(l.fragments) {
		return
	}
	f := l.fragments[at]
	l.text = l.text[:f.start] + l.text[f.end():]
	l.rebuild()
}

// RemoveLastChar deletes the final grapheme, if any.
func (l *Line) RemoveLastChar() {
	l.RemoveChar(l.GraphemeCount() - 1)
}

// Append concatenates other onto l.
func (l *Line) Append(other Line) {
	l.text += other.text
	l.rebuild()
}

// Split truncates l before grapheme at and returns the removed tail. An
// invalid position yields an empty Line and leaves l unchanged.
func (l *Line) Split(at int) Line {
	if at < 0 || at >= len(l.fragments) {
		return Line{}
	}
	pos := l.fragments[at].start
	rest := l.text[pos:]
	l.text = l.text[:pos]
	l.rebuild()
	return From(rest)
}

func (l *Line) rebuild() {
	l.fragments = fragmentsOf(l.text)
}

// VisibleGraphemes returns the text visible in the column window
// [left, right).
func (l *Line) VisibleGraphemes(left, right int) string {
	return l.AnnotatedVisibleSubstr(left, right, "", NoMatch).String()
}

// AnnotatedVisibleSubstr returns the column window [left, right) of the line
// with every occurrence of query annotated. The occurrence starting at
// grapheme selected is annotated as the selected match.
//
// Fragments straddling a window edge are drawn as a single ellipsis and
// fragments outside the window are clipped.
func (l *Line) AnnotatedVisibleSubstr(left, right int, query string, selected int) *annotated.String {
	if left >= right {
		return annotated.From("")
	}

	out := annotated.From(l.text)
	if query != "" {
		for _, m := range l.findAll(query, 0, len(l.text)) {
			kind := annotated.Match
			if selected >= 0 && m.grapheme == selected {
				kind = annotated.SelectedMatch
			}
			out.AddAnnotation(kind, m.byteIndex, m.byteIndex+len(query))
		}
	}

	// Walk right to left so byte offsets of unvisited fragments stay valid.
	fragStart := l.Width()
	for i := len(l.fragments) - 1; i >= 0; i-- {
		f := l.fragments[i]
		fragEnd := fragStart
		fragStart = max(fragStart-f.width.Cells(), 0)

		if fragStart > right {
			continue
		}
		if fragStart < right && fragEnd > right {
			out.Replace(f.start, len(l.text), ellipsis)
			continue
		}
		if fragStart == right {
			out.Replace(f.start, len(l.text), "")
			continue
		}

		if fragEnd <= left {
			out.Replace(0, f.end(), "")
			break
		}
		if fragStart < left && fragEnd > left {
			out.Replace(0, f.end(), ellipsis)
			break
		}

		if f.replacement != noGlyph {
			out.Replace(f.start, f.end(), string(f.replacement))
		}
	}

	return out
}

// SearchNext returns the grapheme index of the first occurrence of query
// starting at or after grapheme from.
func (l *Line) SearchNext(query string, from int) (int, bool) {
	if query == "" || from < 0 || from >= l.GraphemeCount() {
		return 0, false
	}
	matches := l.findAll(query, l.graphemeToByte(from), len(l.text))
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0].grapheme, true
}

// SearchPrevious returns the grapheme index of the last occurrence of query
// that ends at or before grapheme from.
func (l *Line) SearchPrevious(query string, from int) (int, bool) {
	if query == "" || from <= 0 {
		return 0, false
	}
	matches := l.findAll(query, 0, l.graphemeToByte(from))
	if len(matches) == 0 {
		return 0, false
	}
	return matches[len(matches)-1].grapheme, true
}

type match struct {
	byteIndex int
	grapheme  int
}

// findAll returns non-overlapping occurrences of query inside text[start:end]
// that begin on a grapheme boundary.
func (l *Line) findAll(query string, start, end int) []match {
	if query == "" || start < 0 || end > len(l.text) || start > end {
		return nil
	}
	var out []match
	hay := l.text[start:end]
	offset := 0
	for {
		i := strings.Index(hay[offset:], query)
		if i < 0 {
			return out
		}
		abs := start + offset + i
		g, ok := l.byteToGrapheme(abs)
		if !ok {
			offset += i + 1
			continue
		}
		out = append(out, match{byteIndex: abs, grapheme: g})
		offset += i + len(query)
	}
}

func (l *Line) graphemeToByte(g int) int {
	if g <= 0 {
		return 0
	}
	if g >= len(l.fragments) {
		return len(l.text)
	}
	return l.fragments[g].start
}

func (l *Line) byteToGrapheme(b int) (int, bool) {
	for i, f := range l.fragments {
		if f.start == b {
			return i, true
		}
		if f.start > b {
			break
		}
	}
	return 0, false
}
