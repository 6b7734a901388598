// Package terminal defines the drawing surface the editor renders into.
//
// Sink is the only contract the view and chrome widgets depend on. Screen is
// the in-memory implementation composed into a Bubble Tea frame.
package terminal

import (
	"errors"

	"github.com/iw2rmb/scribe/annotated"
)

// ErrRowOutOfRange is returned when printing outside the current size.
var ErrRowOutOfRange = errors.New("terminal: row out of range")

// Position is a screen cell. Col is measured in cells, not graphemes.
type Position struct {
	Col, Row int
}

// Sub returns p-o, saturating each coordinate at 0.
func (p Position) Sub(o Position) Position {
	return Position{Col: max(p.Col-o.Col, 0), Row: max(p.Row-o.Row, 0)}
}

// Size is a rectangle in cells.
type Size struct {
	Width, Height int
}

// Sink receives rows of text and the cursor position for one frame.
//
// Nothing reaches the device until Execute.
type Sink interface {
	PrintLine(row int, text string) error
	PrintAnnotatedLine(row int, text *annotated.String) error
	PrintInvertedLine(row int, text string) error
	MoveCursorTo(pos Position) error
	HideCursor() error
	ShowCursor() error
	Size() (Size, error)
	Execute() error
}
