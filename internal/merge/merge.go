// Package merge deep-merges configuration document mappings.
package merge

import (
	"github.com/iancoleman/orderedmap"

	"github.com/thoreinstein/dotconf/internal/node"
)

// Merge combines base and overlay into a new mapping. Neither input is
// modified.
//
// For each overlay key: if both sides hold mappings the values merge
// recursively; otherwise the overlay value replaces the base value, whatever
// the kinds involved. Keys only present in base carry over unchanged.
// Sequences are opaque leaves here, they are never merged element-wise.
//
// The result starts as a shallow copy of base, so unreplaced subtrees are
// shared with the inputs. Key order is base's order followed by overlay-only
// keys in overlay order.
func Merge(base, overlay *orderedmap.OrderedMap) *orderedmap.OrderedMap {
	result := node.NewMapping()
	if base != nil {
		for _, k := range base.Keys() {
			v, _ := base.Get(k)
			result.Set(k, v)
		}
	}
	if overlay == nil {
		return result
	}

	for _, k := range overlay.Keys() {
		ov, _ := overlay.Get(k)
		if bv, ok := result.Get(k); ok {
			bm, baseIsMap := node.AsMapping(bv)
			om, overlayIsMap := node.AsMapping(ov)
			if baseIsMap && overlayIsMap {
				result.Set(k, Merge(bm, om))
				continue
			}
		}
		result.Set(k, ov)
	}
	return result
}
