// Package node classifies and normalizes the values that make up a
// configuration document.
//
// A document is a tree of three node kinds: mappings (ordered string-keyed
// maps), sequences (slices), and scalars (everything else, including nil).
// Traversal code switches on an explicit [Kind] tag instead of probing each
// value's capabilities at the use site.
//
// Mappings are represented as *orderedmap.OrderedMap so that key iteration
// order is deterministic (insertion order) and survives JSON round-trips.
// [Normalize] rewrites the other mapping shapes that appear at package
// boundaries (value-typed OrderedMaps produced by JSON decoding, plain
// map[string]any supplied by callers) into that canonical form.
package node

import (
	"reflect"
	"sort"

	"github.com/iancoleman/orderedmap"
)

// Kind tags the three node variants of a document tree.
type Kind int

const (
	// Scalar is a leaf value: string, number, bool, or nil.
	Scalar Kind = iota
	// Mapping is an ordered map from string keys to child nodes.
	Mapping
	// Sequence is an ordered list of child nodes.
	Sequence
)

// KindOf classifies a normalized document value.
func KindOf(v any) Kind {
	switch v.(type) {
	case *orderedmap.OrderedMap, orderedmap.OrderedMap, map[string]any:
		return Mapping
	case []any:
		return Sequence
	default:
		return Scalar
	}
}

// AsMapping returns v as a canonical mapping. It only recognizes the
// normalized pointer form; call [Normalize] first for values from other
// sources.
func AsMapping(v any) (*orderedmap.OrderedMap, bool) {
	m, ok := v.(*orderedmap.OrderedMap)
	return m, ok
}

// AsSequence returns v as a sequence.
func AsSequence(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

// NewMapping returns an empty canonical mapping.
func NewMapping() *orderedmap.OrderedMap {
	return orderedmap.New()
}

// Normalize converts v and everything below it into canonical document form:
// mappings become *orderedmap.OrderedMap and sequences become []any. Plain
// map[string]any has no inherent order, so its keys are sorted to keep the
// result deterministic. Scalars pass through unchanged.
//
// The result shares no mutable containers with the input, so callers keep
// ownership of what they passed in and the engine owns what it stores.
func Normalize(v any) any {
	switch val := v.(type) {
	case *orderedmap.OrderedMap:
		m := orderedmap.New()
		for _, k := range val.Keys() {
			child, _ := val.Get(k)
			m.Set(k, Normalize(child))
		}
		return m
	case orderedmap.OrderedMap:
		// JSON decoding nests value-typed OrderedMaps; rebuild as pointers.
		m := orderedmap.New()
		for _, k := range val.Keys() {
			child, _ := val.Get(k)
			m.Set(k, Normalize(child))
		}
		return m
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := orderedmap.New()
		for _, k := range keys {
			m.Set(k, Normalize(val[k]))
		}
		return m
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = Normalize(child)
		}
		return out
	case nil:
		return nil
	}

	// Other slice types ([]string and friends) flatten to []any.
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = Normalize(rv.Index(i).Interface())
		}
		return out
	}

	return v
}
