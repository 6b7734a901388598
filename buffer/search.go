package buffer

// SearchNext scans forward for query starting at from, continuing past the
// last line back to the first and ending on the starting line. It returns
// the first match in scan order.
func (b *Buffer) SearchNext(query string, from Location) (Location, bool) {
	h := b.Height()
	if query == "" || h == 0 {
		return Location{}, false
	}
	from = b.Clamp(from)

	// The starting line is visited twice: from the grapheme, then whole.
	for step := 0; step <= h; step++ {
		idx := (from.LineIndex + step) % h
		start := 0
		if step == 0 {
			start = from.GraphemeIndex
		}
		if g, ok := b.lines[idx].SearchNext(query, start); ok {
			return Location{LineIndex: idx, GraphemeIndex: g}, true
		}
	}
	return Location{}, false
}

// SearchPrevious scans backward for query ending before from, continuing
// past the first line to the last and ending on the starting line. It
// returns the first match in scan order.
func (b *Buffer) SearchPrevious(query string, from Location) (Location, bool) {
	h := b.Height()
	if query == "" || h == 0 {
		return Location{}, false
	}
	from = b.Clamp(from)
	if from.LineIndex == h {
		// Past the last line: start at the end of the last one.
		from = Location{LineIndex: h - 1, GraphemeIndex: b.lines[h-1].GraphemeCount()}
	}

	for step := 0; step <= h; step++ {
		idx := ((from.LineIndex-step)%h + h) % h
		end := b.lines[idx].GraphemeCount()
		if step == 0 {
			end = from.GraphemeIndex
		}
		if g, ok := b.lines[idx].SearchPrevious(query, end); ok {
			return Location{LineIndex: idx, GraphemeIndex: g}, true
		}
	}
	return Location{}, false
}
