package buffer

import "github.com/iw2rmb/scribe/line"

// InsertChar inserts c at loc. At the append position a new line holding c
// is created.
func (b *Buffer) InsertChar(c rune, loc Location) {
	if loc.LineIndex < 0 || loc.LineIndex > b.Height() || loc.GraphemeIndex < 0 {
		return
	}
	if loc.LineIndex == b.Height() {
		b.lines = append(b.lines, line.From(string(c)))
		b.modified = true
		return
	}
	b.lines[loc.LineIndex].InsertChar(c, loc.GraphemeIndex)
	b.modified = true
}

// InsertLine breaks the line at loc, moving the remainder to a new line
// right after it. At the append position an empty line is added.
func (b *Buffer) InsertLine(loc Location) {
	if loc.LineIndex < 0 || loc.LineIndex > b.Height() || loc.GraphemeIndex < 0 {
		return
	}
	if loc.LineIndex == b.Height() {
		b.lines = append(b.lines, line.Line{})
		b.modified = true
		return
	}
	rest := b.lines[loc.LineIndex].Split(loc.GraphemeIndex)
	b.lines = append(b.lines, line.Line{})
	copy(b.lines[loc.LineIndex+2:], b.lines[loc.LineIndex+1:])
	b.lines[loc.LineIndex+1] = rest
	b.modified = true
}

// Delete removes the grapheme at loc. At the end of a line that has a
// successor, the next line is joined onto this one.
func (b *Buffer) Delete(loc Location) {
	l, ok := b.Line(loc.LineIndex)
	if !ok || loc.GraphemeIndex < 0 {
		return
	}
	count := l.GraphemeCount()
	switch {
	case loc.GraphemeIndex >= count && loc.LineIndex+1 < b.Height():
		next := b.lines[loc.LineIndex+1]
		l.Append(next)
		b.lines = append(b.lines[:loc.LineIndex+1], b.lines[loc.LineIndex+2:]...)
		b.modified = true
	case loc.GraphemeIndex < count:
		l.RemoveChar(loc.GraphemeIndex)
		b.modified = true
	}
}
