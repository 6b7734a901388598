package editor

import (
	"log"

	"github.com/iw2rmb/scribe/terminal"
)

// component is a rectangle of the screen that repaints only when marked.
type component interface {
	NeedsRedraw() bool
	SetNeedsRedraw(bool)
	Resize(terminal.Size)
	Draw(sink terminal.Sink, originRow int) error
}

// render draws c if it is marked. A failed draw stays marked and is retried
// on the next refresh.
func render(c component, sink terminal.Sink, originRow int) {
	if !c.NeedsRedraw() {
		return
	}
	if err := c.Draw(sink, originRow); err != nil {
		log.Printf("draw row %d: %v", originRow, err)
		return
	}
	c.SetNeedsRedraw(false)
}

// bar holds the redraw flag and size shared by the single-row widgets.
type bar struct {
	needsRedraw bool
	size        terminal.Size
}

func (b *bar) NeedsRedraw() bool { return b.needsRedraw }

func (b *bar) SetNeedsRedraw(v bool) { b.needsRedraw = v }

func (b *bar) Resize(size terminal.Size) {
	b.size = size
	b.needsRedraw = true
}
