package view

func (v *View) moveUp(step int) {
	v.loc.LineIndex = max(v.loc.LineIndex-step, 0)
	v.snapToValidGrapheme()
}

func (v *View) moveDown(step int) {
	v.loc.LineIndex += step
	v.snapToValidGrapheme()
	v.snapToValidLine()
}

// moveRight steps one grapheme, wrapping to the start of the next line.
func (v *View) moveRight() {
	count := v.buf.GraphemeCount(v.loc.LineIndex)
	if v.loc.GraphemeIndex < count {
		v.loc.GraphemeIndex++
		return
	}
	v.loc.GraphemeIndex = 0
	v.moveDown(1)
}

// moveLeft steps one grapheme, wrapping to the end of the previous line.
func (v *View) moveLeft() {
	if v.loc.GraphemeIndex > 0 {
		v.loc.GraphemeIndex--
		return
	}
	if v.loc.LineIndex > 0 {
		v.moveUp(1)
		v.loc.GraphemeIndex = v.buf.GraphemeCount(v.loc.LineIndex)
	}
}

func (v *View) snapToValidGrapheme() {
	v.loc.GraphemeIndex = min(v.loc.GraphemeIndex, v.buf.GraphemeCount(v.loc.LineIndex))
}

func (v *View) snapToValidLine() {
	v.loc.LineIndex = min(v.loc.LineIndex, v.buf.Height())
}

func (v *View) scrollLocationIntoView() {
	pos := v.locationToPosition()
	v.scrollHorizontally(pos.Col)
	v.scrollVertically(pos.Row)
}

// scrollHorizontally aligns column to the nearest edge when it is outside
// the window.
func (v *View) scrollHorizontally(column int) {
	w := v.size.Width
	changed := true
	switch {
	case column < v.scroll.Col:
		v.scroll.Col = column
	case column >= v.scroll.Col+w:
		v.scroll.Col = max(column-w+1, 0)
	default:
		changed = false
	}
	if changed {
		v.needsRedraw = true
	}
}

func (v *View) scrollVertically(row int) {
	h := v.size.Height
	changed := true
	switch {
	case row < v.scroll.Row:
		v.scroll.Row = row
	case row >= v.scroll.Row+h:
		v.scroll.Row = max(row-h+1, 0)
	default:
		changed = false
	}
	if changed {
		v.needsRedraw = true
	}
}

// centerLocation scrolls so the caret sits in the middle of the view.
func (v *View) centerLocation() {
	pos := v.locationToPosition()
	v.scroll.Col = max(pos.Col-ceilHalf(v.size.Width), 0)
	v.scroll.Row = max(pos.Row-ceilHalf(v.size.Height), 0)
	v.needsRedraw = true
}

func ceilHalf(n int) int { return (n + 1) / 2 }
