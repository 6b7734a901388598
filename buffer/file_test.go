package buffer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("one\r\ntwo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := b.Text(), "one\ntwo"; got != want {
		t.Fatalf("Text()=%q, want %q", got, want)
	}
	if !b.IsFileLoaded() || b.FileInfo().Path() != path {
		t.Fatalf("file info not set: %v", b.FileInfo())
	}
	if b.IsModified() {
		t.Fatalf("loaded buffer must not be modified")
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file: got %v, want os.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.bin")
	if err := os.WriteFile(bad, []byte{'a', 0xff, 'b'}, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("invalid utf8: got %v, want ErrInvalidUTF8", err)
	}
}

func TestSave_Untitled(t *testing.T) {
	b := New("x")
	if err := b.Save(); !errors.Is(err, ErrNoFileName) {
		t.Fatalf("Save()=%v, want ErrNoFileName", err)
	}
}

func TestSaveAs_ThenSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	b := New("")
	b.InsertChar('a', Location{})
	b.InsertLine(Location{LineIndex: 0, GraphemeIndex: 1})

	if err := b.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	if b.IsModified() {
		t.Fatalf("SaveAs must clear modified")
	}
	if got := b.FileInfo().Name(); got != "out.txt" {
		t.Fatalf("Name()=%q, want out.txt", got)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), "a\n\n"; got != want {
		t.Fatalf("file=%q, want %q", got, want)
	}

	b.InsertChar('b', Location{LineIndex: 1})
	if err := b.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err = os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), "a\nb\n"; got != want {
		t.Fatalf("file=%q, want %q", got, want)
	}
}

func TestSaveAs_FailureKeepsState(t *testing.T) {
	b := New("x")
	b.InsertChar('y', Location{})

	bad := filepath.Join(t.TempDir(), "no-such-dir", "out.txt")
	if err := b.SaveAs(bad); err == nil {
		t.Fatalf("expected error writing into a missing directory")
	}
	if b.IsFileLoaded() {
		t.Fatalf("failed SaveAs must not set the file")
	}
	if !b.IsModified() {
		t.Fatalf("failed SaveAs must keep the modified flag")
	}
}

func TestLoadSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rt.txt")
	content := "first\n界界\n\tindent\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Save(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != content {
		t.Fatalf("round trip: got %q, want %q", data, content)
	}
}
