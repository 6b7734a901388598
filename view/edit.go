package view

import (
	"github.com/iw2rmb/scribe/buffer"
	"github.com/iw2rmb/scribe/command"
)

// insertChar types c and moves right if the line gained a grapheme. A
// combining mark merges into the previous cluster and leaves the caret.
func (v *View) insertChar(c rune) {
	before := v.buf.GraphemeCount(v.loc.LineIndex)
	v.buf.InsertChar(c, v.loc)
	after := v.buf.GraphemeCount(v.loc.LineIndex)
	if after > before {
		v.HandleMove(command.Right)
	}
	v.needsRedraw = true
}

func (v *View) insertTab() {
	if !v.opts.ExpandTabs {
		v.insertChar('\t')
		return
	}
	for range max(v.opts.TabWidth, 1) {
		v.insertChar(' ')
	}
}

func (v *View) insertLine() {
	v.buf.InsertLine(v.loc)
	v.HandleMove(command.Right)
	v.needsRedraw = true
}

func (v *View) deletePrevious() {
	if v.loc == (buffer.Location{}) {
		return
	}
	v.HandleMove(command.Left)
	v.buf.Delete(v.loc)
	v.needsRedraw = true
}

func (v *View) deleteNext() {
	v.buf.Delete(v.loc)
	v.needsRedraw = true
}
