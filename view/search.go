package view

import "github.com/iw2rmb/scribe/buffer"

// EnterSearch starts a search session, remembering the caret and scroll
// offset for DismissSearch.
func (v *View) EnterSearch() {
	v.search = &searchInfo{prevLocation: v.loc, prevScroll: v.scroll}
}

// IsSearching reports whether a search session is active.
func (v *View) IsSearching() bool { return v.search != nil }

// ExitSearch ends the session and keeps the caret at the current match.
func (v *View) ExitSearch() {
	v.search = nil
	v.needsRedraw = true
}

// DismissSearch ends the session and restores the caret and scroll offset
// from before EnterSearch.
func (v *View) DismissSearch() {
	if v.search != nil {
		v.loc = v.buf.Clamp(v.search.prevLocation)
		v.scroll = v.search.prevScroll
		v.scrollLocationIntoView()
	}
	v.search = nil
	v.needsRedraw = true
}

// Search sets the query and jumps to the first match at or after the caret
// position held before the session started.
func (v *View) Search(query string) {
	if v.search == nil {
		return
	}
	v.search.query = query
	v.searchForward(v.search.prevLocation)
	v.needsRedraw = true
}

// SearchNext jumps to the next match after the caret, wrapping around.
func (v *View) SearchNext() {
	if v.search == nil {
		return
	}
	step := 1
	if v.search.query == "" {
		step = 0
	}
	v.searchForward(buffer.Location{
		LineIndex:     v.loc.LineIndex,
		GraphemeIndex: v.loc.GraphemeIndex + step,
	})
}

// SearchPrevious jumps to the closest match before the caret, wrapping
// around.
func (v *View) SearchPrevious() {
	if v.search == nil || v.search.query == "" {
		return
	}
	if loc, ok := v.buf.SearchPrevious(v.search.query, v.loc); ok {
		v.jumpTo(loc)
	}
}

func (v *View) searchForward(from buffer.Location) {
	if v.search.query == "" {
		return
	}
	if loc, ok := v.buf.SearchNext(v.search.query, from); ok {
		v.jumpTo(loc)
	}
}

func (v *View) jumpTo(loc buffer.Location) {
	v.loc = loc
	v.centerLocation()
}
