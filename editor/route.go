package editor

import (
	"fmt"
	"log"

	"github.com/iw2rmb/scribe/command"
)

// process routes one command according to the current mode. Resize is
// handled the same way in every mode.
func (e *Editor) process(cmd command.Command) {
	if sys, ok := cmd.(command.System); ok && sys.Kind == command.Resize {
		e.resize(sys.Size)
		return
	}

	switch e.mode {
	case Normal:
		e.processNormal(cmd)
	case SearchPrompt:
		e.processSearch(cmd)
	case SavePrompt:
		e.processSave(cmd)
	}
}

func (e *Editor) processNormal(cmd command.Command) {
	if sys, ok := cmd.(command.System); ok && sys.Kind == command.Quit {
		e.handleQuit()
		return
	}
	e.resetQuitTimes()

	switch cmd := cmd.(type) {
	case command.System:
		switch cmd.Kind {
		case command.Save:
			if e.view.IsFileLoaded() {
				e.save("")
			} else {
				e.setMode(SavePrompt)
			}
		case command.Search:
			e.setMode(SearchPrompt)
		}
	case command.Move:
		e.view.HandleMove(cmd.Kind)
	case command.Edit:
		e.view.HandleEdit(cmd)
	}
}

func (e *Editor) processSearch(cmd command.Command) {
	switch cmd := cmd.(type) {
	case command.System:
		if cmd.Kind == command.Dismiss {
			e.setMode(Normal)
			e.view.DismissSearch()
		}
	case command.Edit:
		if cmd.Kind == command.InsertLine {
			e.setMode(Normal)
			e.view.ExitSearch()
			return
		}
		e.prompt.handleEdit(cmd)
		e.view.Search(e.prompt.Value())
	case command.Move:
		switch cmd.Kind {
		case command.Right, command.Down:
			e.view.SearchNext()
		case command.Left, command.Up:
			e.view.SearchPrevious()
		}
	}
}

func (e *Editor) processSave(cmd command.Command) {
	switch cmd := cmd.(type) {
	case command.System:
		if cmd.Kind == command.Dismiss {
			e.setMode(Normal)
			e.setMessage(msgSaveAborted)
		}
	case command.Edit:
		if cmd.Kind == command.InsertLine {
			e.save(e.prompt.Value())
			e.setMode(Normal)
			return
		}
		e.prompt.handleEdit(cmd)
	}
}

// setMode switches the bottom row between the message bar and a prompt.
func (e *Editor) setMode(mode Mode) {
	switch mode {
	case Normal:
		e.message.SetNeedsRedraw(true)
	case SearchPrompt:
		e.view.EnterSearch()
		e.prompt.setPrompt(searchPrompt)
	case SavePrompt:
		e.prompt.setPrompt(savePrompt)
	}
	e.prompt.clear()
	e.mode = mode
}

// save writes the buffer to its file, or to name when name is set.
func (e *Editor) save(name string) {
	var err error
	if name == "" {
		err = e.view.Save()
	} else {
		err = e.view.SaveAs(name)
	}
	if err != nil {
		log.Printf("save: %v", err)
		e.setMessage(msgSaveFailed)
		return
	}
	e.setMessage(msgSaved)
}

// handleQuit quits unless a named file has unsaved changes. QuitTimes
// presses in a row quit anyway.
func (e *Editor) handleQuit() {
	status := e.view.Status()
	if !status.Modified || !e.view.IsFileLoaded() || e.quitTimes+1 >= e.cfg.QuitTimes {
		e.quitting = true
		return
	}
	e.quitTimes++
	e.setMessage(fmt.Sprintf(
		"WARNING! File has unsaved changes. Press Ctrl-Q %d more times to quit.",
		e.cfg.QuitTimes-e.quitTimes,
	))
}

func (e *Editor) resetQuitTimes() {
	if e.quitTimes == 0 {
		return
	}
	e.quitTimes = 0
	e.setMessage("")
}
