// Package grapheme wraps Unicode grapheme segmentation and terminal cell
// widths for the rest of the editor.
package grapheme

import (
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cluster is one grapheme cluster and the byte offset where it starts in the
// segmented text.
type Cluster struct {
	Text  string
	Start int
}

// End returns the byte offset just past the cluster.
func (c Cluster) End() int {
	return c.Start + len(c.Text)
}

// Clusters returns grapheme clusters for text in visual order, each with its
// source byte offset.
func Clusters(text string) []Cluster {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]Cluster, 0, utf8.RuneCountInString(text))
	for g.Next() {
		start, _ := g.Positions()
		out = append(out, Cluster{Text: g.Str(), Start: start})
	}
	return out
}

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, utf8.RuneCountInString(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Width returns the terminal cell width of a single cluster.
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(cluster)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

// StringWidth returns the summed cell width of every cluster in text.
func StringWidth(text string) int {
	w := 0
	for _, c := range Split(text) {
		w += Width(c)
	}
	return w
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsControl reports whether cluster is exactly one control rune.
func IsControl(cluster string) bool {
	r, size := utf8.DecodeRuneInString(cluster)
	if size == 0 || size != len(cluster) {
		return false
	}
	return unicode.IsControl(r)
}
