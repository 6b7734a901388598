package buffer

import (
	"strings"

	"github.com/iw2rmb/scribe/line"
)

// Buffer is an ordered sequence of lines. The zero value is an empty,
// untitled, unmodified document.
type Buffer struct {
	lines    []line.Line
	modified bool
	file     FileInfo
}

// New returns an untitled buffer holding text split on newlines.
func New(text string) *Buffer {
	return &Buffer{lines: splitLines(text)}
}

// Height returns the number of lines.
func (b *Buffer) Height() int { return len(b.lines) }

// IsEmpty reports whether the buffer has no lines.
func (b *Buffer) IsEmpty() bool { return len(b.lines) == 0 }

// IsModified reports whether the buffer changed since it was loaded or saved.
func (b *Buffer) IsModified() bool { return b.modified }

// IsFileLoaded reports whether the buffer has an associated file.
func (b *Buffer) IsFileLoaded() bool { return b.file.HasPath() }

// FileInfo returns the file identity of the buffer.
func (b *Buffer) FileInfo() FileInfo { return b.file }

// Line returns line i. ok is false when i is out of range.
func (b *Buffer) Line(i int) (*line.Line, bool) {
	if i < 0 || i >= len(b.lines) {
		return nil, false
	}
	return &b.lines[i], true
}

// GraphemeCount returns the grapheme count of line i, or 0 when i is out of
// range.
func (b *Buffer) GraphemeCount(i int) int {
	if l, ok := b.Line(i); ok {
		return l.GraphemeCount()
	}
	return 0
}

// Text returns the document joined with newlines.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(b.lines[i].String())
	}
	return sb.String()
}

// splitLines breaks text into lines on '\n', dropping a trailing '\r' from
// each line. A final newline does not start an extra empty line.
func splitLines(text string) []line.Line {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	lines := make([]line.Line, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, line.From(strings.TrimSuffix(s, "\r")))
	}
	return lines
}
