package buffer

import "path/filepath"

// Untitled is the display name of a buffer with no associated file.
const Untitled = "UNTITLED"

// FileInfo is the file identity of a Buffer. The zero value is untitled.
type FileInfo struct {
	path string
}

// NewFileInfo returns a FileInfo for path.
func NewFileInfo(path string) FileInfo {
	return FileInfo{path: path}
}

// Path returns the associated path, or "" when untitled.
func (f FileInfo) Path() string { return f.path }

// HasPath reports whether a file is associated.
func (f FileInfo) HasPath() bool { return f.path != "" }

// Name returns the base name of the file, or Untitled.
func (f FileInfo) Name() string {
	if f.path == "" {
		return Untitled
	}
	return filepath.Base(f.path)
}

func (f FileInfo) String() string { return f.Name() }
