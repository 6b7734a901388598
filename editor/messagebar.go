package editor

import (
	"time"

	"github.com/iw2rmb/scribe/terminal"
)

// messageBar shows the latest message until it is older than duration.
type messageBar struct {
	bar
	text     string
	setAt    time.Time
	duration time.Duration
	now      func() time.Time

	// cleared is set once an expired message has been painted away.
	cleared bool
}

func (b *messageBar) update(text string) {
	b.text = text
	b.setAt = b.now()
	b.cleared = false
	b.needsRedraw = true
}

func (b *messageBar) expired() bool {
	return b.now().Sub(b.setAt) >= b.duration
}

// tick marks the bar once its message has expired.
func (b *messageBar) tick() {
	if !b.cleared && b.expired() {
		b.needsRedraw = true
	}
}

func (b *messageBar) Draw(sink terminal.Sink, originRow int) error {
	text := b.text
	if b.expired() {
		text = ""
		b.cleared = true
	}
	return sink.PrintLine(originRow, text)
}
