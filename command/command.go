// Package command classifies Bubble Tea input into editor commands.
//
// Commands come in three families: Move, Edit, and System. Input that maps
// to none of them yields no command and is ignored by the editor.
package command

import "github.com/iw2rmb/scribe/terminal"

// Command is one of Move, Edit, or System.
type Command interface {
	isCommand()
}

type MoveKind int

const (
	Up MoveKind = iota
	Down
	Left
	Right
	PageUp
	PageDown
	Home
	End
)

func (k MoveKind) String() string {
	switch k {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case PageUp:
		return "page-up"
	case PageDown:
		return "page-down"
	case Home:
		return "home"
	case End:
		return "end"
	default:
		return "unknown"
	}
}

// Move moves the caret.
type Move struct {
	Kind MoveKind
}

type EditKind int

const (
	InsertChar EditKind = iota
	InsertTab
	InsertLine
	DeletePrevious
	DeleteNext
)

func (k EditKind) String() string {
	switch k {
	case InsertChar:
		return "insert-char"
	case InsertTab:
		return "insert-tab"
	case InsertLine:
		return "insert-line"
	case DeletePrevious:
		return "delete-previous"
	case DeleteNext:
		return "delete-next"
	default:
		return "unknown"
	}
}

// Edit changes text. Char is set only for InsertChar.
type Edit struct {
	Kind EditKind
	Char rune
}

type SystemKind int

const (
	Quit SystemKind = iota
	Resize
	Save
	Search
	Dismiss
)

func (k SystemKind) String() string {
	switch k {
	case Quit:
		return "quit"
	case Resize:
		return "resize"
	case Save:
		return "save"
	case Search:
		return "search"
	case Dismiss:
		return "dismiss"
	default:
		return "unknown"
	}
}

// System controls the editor. Size is set only for Resize.
type System struct {
	Kind SystemKind
	Size terminal.Size
}

func (Move) isCommand()   {}
func (Edit) isCommand()   {}
func (System) isCommand() {}
