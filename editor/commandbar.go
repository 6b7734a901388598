package editor

import (
	"github.com/iw2rmb/scribe/command"
	graphemeutil "github.com/iw2rmb/scribe/internal/grapheme"
	"github.com/iw2rmb/scribe/line"
	"github.com/iw2rmb/scribe/terminal"
)

// commandBar is a one-line prompt with an editable value. Only appending
// and deleting the last grapheme are supported.
type commandBar struct {
	bar
	prompt string
	value  line.Line
}

func (b *commandBar) setPrompt(prompt string) {
	b.prompt = prompt
	b.needsRedraw = true
}

func (b *commandBar) clear() {
	b.value = line.Line{}
	b.needsRedraw = true
}

func (b *commandBar) Value() string { return b.value.String() }

func (b *commandBar) handleEdit(e command.Edit) {
	switch e.Kind {
	case command.InsertChar:
		b.value.AppendChar(e.Char)
	case command.DeletePrevious:
		b.value.RemoveLastChar()
	}
	b.needsRedraw = true
}

// caretColumn returns the cell right after the value, capped at the last
// column.
func (b *commandBar) caretColumn() int {
	return min(graphemeutil.StringWidth(b.prompt)+b.value.Width(), max(b.size.Width-1, 0))
}

// Draw prints the prompt followed by the tail of the value that fits.
func (b *commandBar) Draw(sink terminal.Sink, originRow int) error {
	promptWidth := graphemeutil.StringWidth(b.prompt)
	if promptWidth > b.size.Width {
		return sink.PrintLine(originRow, "")
	}
	area := b.size.Width - promptWidth
	end := b.value.Width()
	start := max(end-area, 0)
	return sink.PrintLine(originRow, b.prompt+b.value.VisibleGraphemes(start, end))
}
