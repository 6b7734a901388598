// Package editor is the Bubble Tea program model of scribe.
//
// Editor routes classified commands according to the active mode (normal
// editing, search prompt, save prompt), keeps the status, message and
// command bars in sync with the view, and paints everything into a
// terminal.Screen whose frame is returned by View.
package editor
