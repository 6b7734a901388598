package buffer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func lineStrings(b *Buffer) []string {
	out := make([]string, 0, b.Height())
	for i := 0; i < b.Height(); i++ {
		l, _ := b.Line(i)
		out = append(out, l.String())
	}
	return out
}

func TestNew_SplitsLines(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: []string{}},
		{name: "single", text: "abc", want: []string{"abc"}},
		{name: "trailing newline", text: "a\nb\n", want: []string{"a", "b"}},
		{name: "crlf", text: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "blank lines", text: "a\n\n\nb", want: []string{"a", "", "", "b"}},
		{name: "only newline", text: "\n", want: []string{""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := New(tc.text)
			if diff := cmp.Diff(tc.want, lineStrings(b)); diff != "" {
				t.Fatalf("lines mismatch (-want +got):\n%s", diff)
			}
			if b.IsModified() {
				t.Fatalf("new buffer must not be modified")
			}
			if b.IsFileLoaded() {
				t.Fatalf("new buffer must be untitled")
			}
		})
	}
}

func TestBuffer_ZeroValue(t *testing.T) {
	var b Buffer
	if !b.IsEmpty() || b.Height() != 0 {
		t.Fatalf("zero buffer: empty=%v height=%d", b.IsEmpty(), b.Height())
	}
	if _, ok := b.Line(0); ok {
		t.Fatalf("Line(0) on empty buffer must fail")
	}
	if got := b.GraphemeCount(0); got != 0 {
		t.Fatalf("GraphemeCount(0)=%d, want 0", got)
	}
	if got := b.FileInfo().Name(); got != Untitled {
		t.Fatalf("Name()=%q, want %q", got, Untitled)
	}
}

func TestBuffer_Text(t *testing.T) {
	b := New("one\ntwo\n")
	if got, want := b.Text(), "one\ntwo"; got != want {
		t.Fatalf("Text()=%q, want %q", got, want)
	}
}

func TestFileInfo_Name(t *testing.T) {
	fi := NewFileInfo("/tmp/dir/notes.txt")
	if got, want := fi.Name(), "notes.txt"; got != want {
		t.Fatalf("Name()=%q, want %q", got, want)
	}
	if !fi.HasPath() {
		t.Fatalf("expected HasPath")
	}
	if got := (FileInfo{}).Name(); got != Untitled {
		t.Fatalf("untitled Name()=%q, want %q", got, Untitled)
	}
}
