package command

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/scribe/terminal"
)

// KeyMap defines the editor key bindings.
type KeyMap struct {
	Quit, Save, Search, Dismiss key.Binding

	Up, Down, Left, Right key.Binding
	PageUp, PageDown      key.Binding
	Home, End             key.Binding

	Enter, Tab        key.Binding
	Backspace, Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:    key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Search:  key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "find")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),

		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "page down")),
		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "line end")),

		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
	}
}

// Commands classifies msg. Pasted or multi-rune input yields one InsertChar
// per rune; unrecognized input yields nil.
func (km KeyMap) Commands(msg tea.Msg) []Command {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return []Command{System{Kind: Resize, Size: terminal.Size{Width: msg.Width, Height: msg.Height}}}
	case tea.KeyMsg:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			if msg.Alt {
				return nil
			}
			return insertRunes(msg.Runes)
		}
		if cmd, ok := km.edit(msg); ok {
			return []Command{cmd}
		}
		if cmd, ok := km.move(msg); ok {
			return []Command{cmd}
		}
		if cmd, ok := km.system(msg); ok {
			return []Command{cmd}
		}
	}
	return nil
}

func insertRunes(runes []rune) []Command {
	if len(runes) == 0 {
		return nil
	}
	out := make([]Command, 0, len(runes))
	for _, r := range runes {
		switch r {
		case '\n', '\r':
			out = append(out, Edit{Kind: InsertLine})
		case '\t':
			out = append(out, Edit{Kind: InsertTab})
		default:
			out = append(out, Edit{Kind: InsertChar, Char: r})
		}
	}
	return out
}

func (km KeyMap) edit(msg tea.KeyMsg) (Command, bool) {
	switch {
	case key.Matches(msg, km.Enter):
		return Edit{Kind: InsertLine}, true
	case key.Matches(msg, km.Tab):
		return Edit{Kind: InsertTab}, true
	case key.Matches(msg, km.Backspace):
		return Edit{Kind: DeletePrevious}, true
	case key.Matches(msg, km.Delete):
		return Edit{Kind: DeleteNext}, true
	}
	return nil, false
}

func (km KeyMap) move(msg tea.KeyMsg) (Command, bool) {
	switch {
	case key.Matches(msg, km.Up):
		return Move{Kind: Up}, true
	case key.Matches(msg, km.Down):
		return Move{Kind: Down}, true
	case key.Matches(msg, km.Left):
		return Move{Kind: Left}, true
	case key.Matches(msg, km.Right):
		return Move{Kind: Right}, true
	case key.Matches(msg, km.PageUp):
		return Move{Kind: PageUp}, true
	case key.Matches(msg, km.PageDown):
		return Move{Kind: PageDown}, true
	case key.Matches(msg, km.Home):
		return Move{Kind: Home}, true
	case key.Matches(msg, km.End):
		return Move{Kind: End}, true
	}
	return nil, false
}

func (km KeyMap) system(msg tea.KeyMsg) (Command, bool) {
	switch {
	case key.Matches(msg, km.Quit):
		return System{Kind: Quit}, true
	case key.Matches(msg, km.Save):
		return System{Kind: Save}, true
	case key.Matches(msg, km.Search):
		return System{Kind: Search}, true
	case key.Matches(msg, km.Dismiss):
		return System{Kind: Dismiss}, true
	}
	return nil, false
}
