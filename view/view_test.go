package view

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/scribe/buffer"
	"github.com/iw2rmb/scribe/command"
	"github.com/iw2rmb/scribe/terminal"
)

func newView(text string, w, h int) *View {
	v := New(buffer.New(text), Options{TabWidth: 4, ExpandTabs: true, Banner: "Welcome!"})
	v.Resize(terminal.Size{Width: w, Height: h})
	return v
}

func loc(line, grapheme int) buffer.Location {
	return buffer.Location{LineIndex: line, GraphemeIndex: grapheme}
}

func moves(v *View, kinds ...command.MoveKind) {
	for _, k := range kinds {
		v.HandleMove(k)
	}
}

func TestMove_RaggedVertical(t *testing.T) {
	v := newView("long line\nab\nanother long", 80, 10)
	moves(v, command.End)
	if got := v.Location(); got != loc(0, 9) {
		t.Fatalf("End: got %v, want (0,9)", got)
	}

	moves(v, command.Down)
	if got := v.Location(); got != loc(1, 2) {
		t.Fatalf("Down onto short line: got %v, want (1,2)", got)
	}

	moves(v, command.Down)
	if got := v.Location(); got != loc(2, 2) {
		t.Fatalf("Down keeps snapped column: got %v, want (2,2)", got)
	}
}

func TestMove_WrapsAtLineBoundaries(t *testing.T) {
	v := newView("ab\ncd", 80, 10)

	moves(v, command.End, command.Right)
	if got := v.Location(); got != loc(1, 0) {
		t.Fatalf("Right at end of line: got %v, want (1,0)", got)
	}

	moves(v, command.Left)
	if got := v.Location(); got != loc(0, 2) {
		t.Fatalf("Left at line start: got %v, want (0,2)", got)
	}

	moves(v, command.Home, command.Left)
	if got := v.Location(); got != loc(0, 0) {
		t.Fatalf("Left at document start: got %v, want (0,0)", got)
	}
}

func TestMove_ClampsAtDocumentEnd(t *testing.T) {
	v := newView("ab", 80, 10)
	moves(v, command.End, command.Right)
	if got := v.Location(); got != loc(1, 0) {
		t.Fatalf("Right past last line: got %v, want append position (1,0)", got)
	}
	moves(v, command.Right, command.Down, command.PageDown)
	if got := v.Location(); got != loc(1, 0) {
		t.Fatalf("moves past end: got %v, want (1,0)", got)
	}
}

func TestMove_PageStepsByViewHeight(t *testing.T) {
	text := ""
	for i := 0; i < 30; i++ {
		text += "x\n"
	}
	v := newView(text, 80, 5)

	moves(v, command.PageDown)
	if got := v.Location(); got != loc(5, 0) {
		t.Fatalf("PageDown: got %v, want (5,0)", got)
	}
	if got := v.ScrollOffset(); got != (terminal.Position{Row: 1}) {
		t.Fatalf("scroll after PageDown: got %v, want row 1", got)
	}

	moves(v, command.PageUp, command.PageUp)
	if got := v.Location(); got != loc(0, 0) {
		t.Fatalf("PageUp: got %v, want (0,0)", got)
	}
	if got := v.ScrollOffset(); got != (terminal.Position{}) {
		t.Fatalf("scroll after PageUp: got %v, want origin", got)
	}
}

func TestScrollHorizontally_AlignsToNearestEdge(t *testing.T) {
	v := newView("0123456789abcdefghij", 10, 3)

	for i := 0; i < 15; i++ {
		moves(v, command.Right)
	}
	if got := v.ScrollOffset().Col; got != 6 {
		t.Fatalf("offset at column 15: got %d, want 6", got)
	}
	if got := v.CaretPosition(); got != (terminal.Position{Col: 9}) {
		t.Fatalf("caret at right edge: got %v, want col 9", got)
	}

	for i := 0; i < 12; i++ {
		moves(v, command.Left)
	}
	if got := v.ScrollOffset().Col; got != 3 {
		t.Fatalf("offset at column 3: got %d, want 3", got)
	}
}

func TestScroll_UsesRenderedWidth(t *testing.T) {
	v := newView("界界界界界界", 6, 3)
	moves(v, command.End)
	if got := v.ScrollOffset().Col; got != 7 {
		t.Fatalf("offset: got %d, want 7", got)
	}
	if got := v.CaretPosition(); got != (terminal.Position{Col: 5}) {
		t.Fatalf("caret: got %v, want col 5", got)
	}
}

func TestResize_ScrollsCaretIntoView(t *testing.T) {
	v := newView("a\nb\nc\nd\ne", 80, 10)
	moves(v, command.Down, command.Down, command.Down, command.Down)
	v.SetNeedsRedraw(false)

	v.Resize(terminal.Size{Width: 80, Height: 2})
	if got := v.ScrollOffset().Row; got != 3 {
		t.Fatalf("scroll row: got %d, want 3", got)
	}
	if !v.NeedsRedraw() {
		t.Fatalf("resize must request a redraw")
	}
}

func TestEdit_InsertMovesRight(t *testing.T) {
	v := newView("", 80, 10)
	for _, r := range "hi" {
		v.HandleEdit(command.Edit{Kind: command.InsertChar, Char: r})
	}
	if got := v.Buffer().Text(); got != "hi" {
		t.Fatalf("text: got %q, want %q", got, "hi")
	}
	if got := v.Location(); got != loc(0, 2) {
		t.Fatalf("caret: got %v, want (0,2)", got)
	}
}

func TestEdit_CombiningMarkKeepsCaret(t *testing.T) {
	v := newView("", 80, 10)
	v.HandleEdit(command.Edit{Kind: command.InsertChar, Char: 'e'})
	v.HandleEdit(command.Edit{Kind: command.InsertChar, Char: '\u0301'})
	if got := v.Location(); got != loc(0, 1) {
		t.Fatalf("caret: got %v, want (0,1)", got)
	}
	if got := v.Buffer().GraphemeCount(0); got != 1 {
		t.Fatalf("graphemes: got %d, want 1", got)
	}
}

func TestEdit_InsertTab(t *testing.T) {
	v := newView("x", 80, 10)
	v.HandleEdit(command.Edit{Kind: command.InsertTab})
	if got := v.Buffer().Text(); got != "    x" {
		t.Fatalf("expanded tab: got %q", got)
	}
	if got := v.Location(); got != loc(0, 4) {
		t.Fatalf("caret: got %v, want (0,4)", got)
	}

	lit := New(buffer.New("x"), Options{ExpandTabs: false})
	lit.Resize(terminal.Size{Width: 80, Height: 10})
	lit.HandleEdit(command.Edit{Kind: command.InsertTab})
	if got := lit.Buffer().Text(); got != "\tx" {
		t.Fatalf("literal tab: got %q", got)
	}
}

func TestEdit_InsertLineThenBackspace(t *testing.T) {
	v := newView("hello world", 80, 10)
	for i := 0; i < 5; i++ {
		moves(v, command.Right)
	}
	v.HandleEdit(command.Edit{Kind: command.InsertLine})
	if diff := cmp.Diff("hello\n world", v.Buffer().Text()); diff != "" {
		t.Fatalf("after newline (-want +got):\n%s", diff)
	}
	if got := v.Location(); got != loc(1, 0) {
		t.Fatalf("caret after newline: got %v, want (1,0)", got)
	}

	v.HandleEdit(command.Edit{Kind: command.DeletePrevious})
	if got := v.Buffer().Text(); got != "hello world" {
		t.Fatalf("after backspace: got %q", got)
	}
	if got := v.Location(); got != loc(0, 5) {
		t.Fatalf("caret after backspace: got %v, want (0,5)", got)
	}
}

func TestEdit_BackspaceAtOriginIsNoop(t *testing.T) {
	v := newView("abc", 80, 10)
	v.HandleEdit(command.Edit{Kind: command.DeletePrevious})
	if got := v.Buffer().Text(); got != "abc" {
		t.Fatalf("text: got %q", got)
	}
	if v.Buffer().IsModified() {
		t.Fatalf("buffer must stay unmodified")
	}
}

func TestEdit_DeleteNextJoinsLines(t *testing.T) {
	v := newView("ab\ncd", 80, 10)
	moves(v, command.End)
	v.HandleEdit(command.Edit{Kind: command.DeleteNext})
	if got := v.Buffer().Text(); got != "abcd" {
		t.Fatalf("text: got %q", got)
	}
	if got := v.Location(); got != loc(0, 2) {
		t.Fatalf("caret: got %v, want (0,2)", got)
	}
}

func TestEndToEnd_RightThenBackspaceMergesLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "three.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	v := New(nil, Options{})
	if err := v.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	v.Resize(terminal.Size{Width: 80, Height: 10})

	moves(v, command.End, command.Right)
	if got := v.Location(); got != loc(1, 0) {
		t.Fatalf("caret: got %v, want (1,0)", got)
	}

	v.HandleEdit(command.Edit{Kind: command.DeletePrevious})
	if got := v.Buffer().Text(); got != "onetwo\nthree" {
		t.Fatalf("text: got %q", got)
	}
	if got := v.Location(); got != loc(0, 3) {
		t.Fatalf("caret: got %v, want (0,3)", got)
	}
}

func TestLoad_FailureKeepsBuffer(t *testing.T) {
	v := newView("keep", 80, 10)
	if err := v.Load(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected load error")
	}
	if got := v.Buffer().Text(); got != "keep" {
		t.Fatalf("text: got %q", got)
	}
}

func TestStatus(t *testing.T) {
	v := newView("a\nb", 80, 10)
	moves(v, command.Down)
	v.HandleEdit(command.Edit{Kind: command.InsertChar, Char: 'x'})

	want := Status{LineCount: 2, CurrentLineIndex: 1, Modified: true, FileName: buffer.Untitled}
	if diff := cmp.Diff(want, v.Status()); diff != "" {
		t.Fatalf("status mismatch (-want +got):\n%s", diff)
	}
}
