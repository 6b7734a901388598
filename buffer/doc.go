// Package buffer holds the document: an ordered list of lines with file
// identity, a modified flag, edit operations, and cyclic search.
//
// Coordinates are 0-based (LineIndex, GraphemeIndex) Locations. Edit
// operations never fail: a Location outside the document turns the operation
// into a no-op. Only Load, Save, and SaveAs return errors.
package buffer
