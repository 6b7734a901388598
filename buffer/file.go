package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

var (
	// ErrNoFileName is returned by Save when the buffer is untitled.
	ErrNoFileName = errors.New("buffer: no file name")
	// ErrInvalidUTF8 is returned by Load for files that are not UTF-8 text.
	ErrInvalidUTF8 = errors.New("buffer: file is not valid UTF-8")
)

// Load reads path into a new unmodified Buffer associated with path.
func Load(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("load %s: %w", path, ErrInvalidUTF8)
	}
	return &Buffer{
		lines: splitLines(string(data)),
		file:  NewFileInfo(path),
	}, nil
}

// Save writes the buffer to its associated file and clears the modified flag.
func (b *Buffer) Save() error {
	if !b.file.HasPath() {
		return ErrNoFileName
	}
	if err := b.writeTo(b.file.Path()); err != nil {
		return err
	}
	b.modified = false
	return nil
}

// SaveAs writes the buffer to path. On success path becomes the buffer's
// file and the modified flag is cleared; on failure nothing changes.
func (b *Buffer) SaveAs(path string) error {
	if path == "" {
		return ErrNoFileName
	}
	if err := b.writeTo(path); err != nil {
		return err
	}
	b.file = NewFileInfo(path)
	b.modified = false
	return nil
}

// writeTo writes every line followed by a newline.
func (b *Buffer) writeTo(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("save %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for i := range b.lines {
		if _, err := w.WriteString(b.lines[i].String()); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
