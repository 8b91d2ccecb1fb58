// Package dotpath parses dot-separated path strings into typed segments for
// navigating configuration trees.
//
// A path like "courses.datintro22.TAs.0" splits into four segments. Each
// segment that parses as a base-10 integer becomes an Index for addressing
// sequence elements; every other segment is a Key for addressing mapping
// entries. The empty path refers to the whole document.
package dotpath

import (
	"strconv"
	"strings"
)

// SegmentKind discriminates the two segment variants.
type SegmentKind int

const (
	// Key addresses an entry of a mapping by name.
	Key SegmentKind = iota
	// Index addresses an element of a sequence by position.
	Index
)

// Segment is one atomic component of a parsed path: either a string Key or
// an integer Index. The kind is decided once at parse time so consumers
// switch on it rather than re-probing the raw token.
type Segment struct {
	Kind  SegmentKind
	Key   string
	Index int
}

// String returns the segment as it appears inside a path string.
func (s Segment) String() string {
	if s.Kind == Index {
		return strconv.Itoa(s.Index)
	}
	return s.Key
}

// Parse splits path on "." and types each token. Tokens that parse as
// base-10 integers (a leading "-" is allowed) become Index segments; all
// others, including empty tokens from consecutive dots, become Key segments.
// The empty path yields no segments and refers to the whole document.
func Parse(path string) []Segment {
	if path == "" {
		return nil
	}

	tokens := strings.Split(path, ".")
	segments := make([]Segment, 0, len(tokens))
	for _, tok := range tokens {
		if n, err := strconv.Atoi(tok); err == nil {
			segments = append(segments, Segment{Kind: Index, Index: n})
			continue
		}
		segments = append(segments, Segment{Kind: Key, Key: tok})
	}
	return segments
}

// Join appends a child component to a path prefix. An empty prefix yields
// the child itself, so Join("", "courses") == "courses" and
// Join("courses", "prgx22") == "courses.prgx22".
func Join(prefix, child string) string {
	if prefix == "" {
		return child
	}
	return prefix + "." + child
}
