package editor

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	scribe "github.com/iw2rmb/scribe"
	"github.com/iw2rmb/scribe/terminal"
	"github.com/iw2rmb/scribe/view"
)

const (
	startupHint  = "HELP: Ctrl-F = find | Ctrl-S = save | Ctrl-Q = quit"
	searchPrompt = "Search (Esc to cancel, Arrows to navigate): "
	savePrompt   = "Save as: "

	msgSaved       = "File saved successfully."
	msgSaveFailed  = "Error writing file!"
	msgSaveAborted = "Save aborted."
)

// Mode selects how commands are routed.
type Mode int

const (
	Normal Mode = iota
	SearchPrompt
	SavePrompt
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case SearchPrompt:
		return "search"
	case SavePrompt:
		return "save"
	default:
		return "unknown"
	}
}

// messageExpiredMsg asks the editor to re-check message expiry.
type messageExpiredMsg struct{}

// Editor is the Bubble Tea model of the whole program.
type Editor struct {
	cfg Config

	screen  *terminal.Screen
	view    *view.View
	status  *statusBar
	message *messageBar
	prompt  *commandBar

	mode      Mode
	size      terminal.Size
	quitTimes int
	quitting  bool
	title     string

	now func() time.Time

	pending []tea.Cmd
}

// Option customizes an Editor.
type Option func(*Editor)

// WithClock replaces time.Now for message expiry.
func WithClock(now func() time.Time) Option {
	return func(e *Editor) { e.now = now }
}

// New returns an Editor for path. An empty path opens an untitled buffer.
// A path that cannot be loaded leaves the buffer empty and shows an error
// message instead of the startup hint.
func New(cfg Config, path string, opts ...Option) *Editor {
	e := &Editor{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}

	e.screen = terminal.NewScreen(terminal.Size{}, cfg.Style)
	e.view = view.New(nil, view.Options{
		TabWidth:   cfg.TabWidth,
		ExpandTabs: cfg.ExpandTabs,
		Banner:     scribe.Banner(),
	})
	e.status = &statusBar{}
	e.message = &messageBar{duration: cfg.MessageDuration, now: e.now}
	e.prompt = &commandBar{}

	e.setMessage(startupHint)
	if path != "" {
		if err := e.view.Load(path); err != nil {
			log.Printf("load %s: %v", path, err)
			e.setMessage(fmt.Sprintf("ERR: Could not open file: %s", path))
		}
	}
	e.refresh()
	return e
}

func (e *Editor) Init() tea.Cmd { return e.flush() }

// Update classifies msg into commands and routes each of them.
func (e *Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case messageExpiredMsg:
		e.message.tick()
	default:
		for _, cmd := range e.cfg.KeyMap.Commands(msg) {
			e.process(cmd)
			if e.quitting {
				return e, tea.Quit
			}
		}
	}
	e.refresh()
	return e, e.flush()
}

// View returns the frame built by the last refresh.
func (e *Editor) View() string {
	if e.quitting {
		return ""
	}
	return e.screen.String()
}

func (e *Editor) Mode() Mode { return e.mode }

func (e *Editor) Status() view.Status { return e.view.Status() }

func (e *Editor) Quitting() bool { return e.quitting }

func (e *Editor) setMessage(text string) {
	e.message.update(text)
	if d := e.cfg.MessageDuration; d > 0 {
		e.pending = append(e.pending, tea.Tick(d, func(time.Time) tea.Msg { return messageExpiredMsg{} }))
	}
}

// flush returns the commands queued since the last call.
func (e *Editor) flush() tea.Cmd {
	cmds := e.pending
	e.pending = nil
	return tea.Batch(cmds...)
}

func (e *Editor) resize(size terminal.Size) {
	e.size = size
	e.screen.Resize(size)
	e.view.Resize(terminal.Size{Width: size.Width, Height: max(size.Height-2, 0)})

	row := terminal.Size{Width: size.Width, Height: 1}
	e.status.Resize(row)
	e.message.Resize(row)
	e.prompt.Resize(row)
}

// refresh repaints what changed into the screen and composes the frame.
func (e *Editor) refresh() {
	status := e.view.Status()
	e.status.update(status)
	if title := fmt.Sprintf("%s - %s", status.FileName, scribe.Name); title != e.title {
		e.title = title
		e.pending = append(e.pending, tea.SetWindowTitle(title))
	}

	w, h := e.size.Width, e.size.Height
	if w == 0 || h == 0 {
		return
	}

	bottom := h - 1
	_ = e.screen.HideCursor()
	if e.mode == Normal {
		render(e.message, e.screen, bottom)
	} else {
		render(e.prompt, e.screen, bottom)
	}
	if h > 1 {
		render(e.status, e.screen, h-2)
	}
	if h > 2 {
		render(e.view, e.screen, 0)
	}

	caret := e.view.CaretPosition()
	if e.mode != Normal {
		caret = terminal.Position{Col: e.prompt.caretColumn(), Row: bottom}
	}
	_ = e.screen.MoveCursorTo(caret)
	_ = e.screen.ShowCursor()
	if err := e.screen.Execute(); err != nil {
		log.Printf("execute: %v", err)
	}
}
