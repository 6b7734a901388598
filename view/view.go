// Package view maps a buffer onto a rectangle of the terminal.
//
// View owns the caret Location, the scroll offset, and the optional search
// session. Edits go through the buffer and the caret follows them using the
// same movement primitives as navigation.
package view

import (
	"github.com/iw2rmb/scribe/buffer"
	"github.com/iw2rmb/scribe/command"
	"github.com/iw2rmb/scribe/terminal"
)

// Options configures a View.
type Options struct {
	// TabWidth is the number of spaces InsertTab inserts when ExpandTabs is
	// set.
	TabWidth   int
	ExpandTabs bool

	// Banner is shown on an empty buffer.
	Banner string
}

// Status is the snapshot handed to the status bar.
type Status struct {
	LineCount        int
	CurrentLineIndex int
	Modified         bool
	FileName         string
}

type searchInfo struct {
	prevLocation buffer.Location
	prevScroll   terminal.Position
	query        string
}

// View is a cursor and viewport over a Buffer.
type View struct {
	buf  *buffer.Buffer
	opts Options

	needsRedraw bool
	size        terminal.Size

	loc    buffer.Location
	scroll terminal.Position

	search *searchInfo
}

// New returns a View over buf with the caret at the start of the document.
// A nil buf is replaced by an empty buffer.
func New(buf *buffer.Buffer, opts Options) *View {
	if buf == nil {
		buf = &buffer.Buffer{}
	}
	return &View{buf: buf, opts: opts, needsRedraw: true}
}

func (v *View) Buffer() *buffer.Buffer { return v.buf }

// Load replaces the buffer with the contents of path. On failure the view is
// unchanged.
func (v *View) Load(path string) error {
	buf, err := buffer.Load(path)
	if err != nil {
		return err
	}
	v.buf = buf
	v.loc = buffer.Location{}
	v.scroll = terminal.Position{}
	v.needsRedraw = true
	return nil
}

func (v *View) Save() error { return v.buf.Save() }

func (v *View) SaveAs(path string) error { return v.buf.SaveAs(path) }

func (v *View) IsFileLoaded() bool { return v.buf.IsFileLoaded() }

func (v *View) Location() buffer.Location { return v.loc }

func (v *View) ScrollOffset() terminal.Position { return v.scroll }

func (v *View) Status() Status {
	return Status{
		LineCount:        v.buf.Height(),
		CurrentLineIndex: v.loc.LineIndex,
		Modified:         v.buf.IsModified(),
		FileName:         v.buf.FileInfo().Name(),
	}
}

func (v *View) NeedsRedraw() bool { return v.needsRedraw }

func (v *View) SetNeedsRedraw(b bool) { v.needsRedraw = b }

// Resize sets the view size and brings the caret back into view.
func (v *View) Resize(size terminal.Size) {
	v.size = size
	v.scrollLocationIntoView()
	v.needsRedraw = true
}

// CaretPosition returns the caret cell relative to the view origin.
func (v *View) CaretPosition() terminal.Position {
	return v.locationToPosition().Sub(v.scroll)
}

// HandleMove moves the caret and scrolls it into view.
func (v *View) HandleMove(kind command.MoveKind) {
	step := max(v.size.Height, 1)
	switch kind {
	case command.Up:
		v.moveUp(1)
	case command.Down:
		v.moveDown(1)
	case command.Left:
		v.moveLeft()
	case command.Right:
		v.moveRight()
	case command.PageUp:
		v.moveUp(step)
	case command.PageDown:
		v.moveDown(step)
	case command.Home:
		v.loc.GraphemeIndex = 0
	case command.End:
		v.loc.GraphemeIndex = v.buf.GraphemeCount(v.loc.LineIndex)
	}
	v.scrollLocationIntoView()
}

// HandleEdit applies e to the buffer at the caret.
func (v *View) HandleEdit(e command.Edit) {
	switch e.Kind {
	case command.InsertChar:
		v.insertChar(e.Char)
	case command.InsertTab:
		v.insertTab()
	case command.InsertLine:
		v.insertLine()
	case command.DeletePrevious:
		v.deletePrevious()
	case command.DeleteNext:
		v.deleteNext()
	}
}

func (v *View) locationToPosition() terminal.Position {
	col := 0
	if l, ok := v.buf.Line(v.loc.LineIndex); ok {
		col = l.WidthUntil(v.loc.GraphemeIndex)
	}
	return terminal.Position{Col: col, Row: v.loc.LineIndex}
}
