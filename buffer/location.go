package buffer

// Location points into the document by (line, grapheme). Both are 0-based.
// LineIndex == Height() is the append position past the last line.
type Location struct {
	LineIndex     int
	GraphemeIndex int
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Clamp snaps loc into the valid range of b:
//
// - 0 <= LineIndex <= Height()
// - 0 <= GraphemeIndex <= GraphemeCount of that line (0 past the last line)
func (b *Buffer) Clamp(loc Location) Location {
	row := clampInt(loc.LineIndex, 0, b.Height())
	maxCol := 0
	if row < len(b.lines) {
		maxCol = b.lines[row].GraphemeCount()
	}
	return Location{LineIndex: row, GraphemeIndex: clampInt(loc.GraphemeIndex, 0, maxCol)}
}
