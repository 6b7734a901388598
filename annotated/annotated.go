// Package annotated implements strings decorated with half-open byte-range
// annotations that survive text replacement.
package annotated

import "iter"

// Kind identifies what an annotation marks.
type Kind uint8

const (
	// None is the kind of a Part not covered by any annotation.
	None Kind = iota
	Match
	SelectedMatch
)

func (k Kind) String() string {
	switch k {
	case Match:
		return "match"
	case SelectedMatch:
		return "selected-match"
	default:
		return "none"
	}
}

// Annotation tags the byte range [Start, End) of a String.
type Annotation struct {
	Kind  Kind
	Start int
	End   int
}

// Part is a contiguous run of text sharing one annotation kind.
type Part struct {
	Text string
	Kind Kind
}

// String owns its text and the annotations laid over it. It is derived render
// state, rebuilt per frame.
type String struct {
	text        string
	annotations []Annotation
}

// From returns an unannotated String holding s.
func From(s string) *String {
	return &String{text: s}
}

func (s *String) String() string { return s.text }

// Len returns the byte length of the text.
func (s *String) Len() int { return len(s.text) }

// Annotations returns a copy of the current annotations in insertion order.
func (s *String) Annotations() []Annotation {
	if len(s.annotations) == 0 {
		return nil
	}
	out := make([]Annotation, len(s.annotations))
	copy(out, s.annotations)
	return out
}

// AddAnnotation marks [start, end) with kind. Later annotations win where
// ranges overlap.
func (s *String) AddAnnotation(kind Kind, start, end int) {
	s.annotations = append(s.annotations, Annotation{Kind: kind, Start: start, End: end})
}

// Replace splices text into [start, end) and moves annotation boundaries to
// follow the edit. end is clamped to the text length; start > end is a no-op.
//
// Boundaries at or after end shift by the length delta. A Start strictly
// inside (start, end) snaps to the end of the new text and an End strictly
// inside snaps to start, so no boundary ever lands inside with. Annotations
// left empty or starting past the new text are dropped.
func (s *String) Replace(start, end int, with string) {
	end = min(end, len(s.text))
	if start < 0 || start > end {
		return
	}

	s.text = s.text[:start] + with + s.text[end:]
	newEnd := start + len(with)

	shift := func(b int) int { return b - end + newEnd }

	kept := s.annotations[:0]
	for _, a := range s.annotations {
		switch {
		case a.Start >= end:
			a.Start = shift(a.Start)
		case a.Start > start:
			a.Start = newEnd
		}
		switch {
		case a.End >= end:
			a.End = shift(a.End)
		case a.End > start:
			a.End = start
		}
		if a.Start < a.End && a.Start < len(s.text) {
			kept = append(kept, a)
		}
	}
	s.annotations = kept
}

// Parts yields the text as contiguous parts in order, covering every byte
// exactly once. The sequence can be ranged over repeatedly.
func (s *String) Parts() iter.Seq[Part] {
	return func(yield func(Part) bool) {
		for at := 0; at < len(s.text); {
			p, next := s.partAt(at)
			if !yield(p) {
				return
			}
			at = next
		}
	}
}

func (s *String) partAt(at int) (Part, int) {
	// Most recently added covering annotation wins.
	for i := len(s.annotations) - 1; i >= 0; i-- {
		a := s.annotations[i]
		if a.Start <= at && a.End > at {
			end := min(a.End, len(s.text))
			for _, later := range s.annotations[i+1:] {
				if later.Start > at && later.Start < end {
					end = later.Start
				}
			}
			return Part{Text: s.text[at:end], Kind: a.Kind}, end
		}
	}

	end := len(s.text)
	for _, a := range s.annotations {
		if a.Start > at && a.Start < end {
			end = a.Start
		}
	}
	return Part{Text: s.text[at:end]}, end
}
