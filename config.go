package dotconf

import (
	"strconv"

	"github.com/iancoleman/orderedmap"

	"github.com/thoreinstein/dotconf/internal/dotpath"
	"github.com/thoreinstein/dotconf/internal/errors"
	"github.com/thoreinstein/dotconf/internal/node"
)

// Config is a navigable configuration document addressed by dot-separated
// path strings, with an optional writeback binding that persists every
// mutation to a backing store.
//
// A Config owns its document exclusively. It is not safe for concurrent
// use; the design assumes one engine instance per backing store, accessed
// from one goroutine.
type Config struct {
	doc *orderedmap.OrderedMap

	// Writeback binding. When bound, every successful Set flushes the
	// full document to locator.
	locator   string
	writeback bool
}

// New returns a Config holding an empty document with no store binding.
func New() *Config {
	return &Config{doc: node.NewMapping()}
}

// Load builds a Config from caller-supplied initial data merged under the
// contents of the store at locator, then binds writeback to that locator.
// The store's values win on conflicts. An empty locator selects the default
// per-user store. initial may be nil for an empty base document.
//
// The initial data is normalized into the engine's canonical document form
// and shares no mutable state with the caller's value afterwards.
func Load(initial any, locator string) (*Config, error) {
	c := New()
	if initial != nil {
		m, ok := node.Normalize(initial).(*orderedmap.OrderedMap)
		if !ok {
			return nil, errors.Newf("initial document must be a mapping, got %T", initial)
		}
		c.doc = m
	}
	if err := c.ReadFile(locator, true); err != nil {
		return nil, err
	}
	return c, nil
}

// Bound reports whether the engine has a writeback binding, and to which
// store locator.
func (c *Config) Bound() (string, bool) {
	return c.locator, c.writeback
}

// Get returns the value at path. The empty path returns the whole document.
//
// The walk fails with ErrPathNotFound at the first segment that cannot be
// resolved: a key absent from a mapping, an index outside a sequence's
// bounds, or a segment kind applied to the wrong node kind.
func (c *Config) Get(path string) (any, error) {
	cur := any(c.doc)
	for _, seg := range dotpath.Parse(path) {
		switch node.KindOf(cur) {
		case node.Mapping:
			if seg.Kind != dotpath.Key {
				return nil, notFound(path, seg, "index used on a mapping")
			}
			m, _ := node.AsMapping(cur)
			v, ok := m.Get(seg.Key)
			if !ok {
				return nil, notFound(path, seg, "no such key")
			}
			cur = v
		case node.Sequence:
			if seg.Kind != dotpath.Index {
				return nil, notFound(path, seg, "key used on a sequence")
			}
			s, _ := node.AsSequence(cur)
			if seg.Index < 0 || seg.Index >= len(s) {
				return nil, notFound(path, seg, "index out of bounds")
			}
			cur = s[seg.Index]
		default:
			return nil, notFound(path, seg, "scalar has no children")
		}
	}
	return cur, nil
}

// Set assigns value at path, then flushes the document to the bound store
// if writeback is enabled. A nil value is the delete sentinel: the entry at
// path is removed if present, and deleting an absent entry is a silent
// no-op.
//
// Missing intermediate keys are created as empty mappings while setting.
// Sequences are never grown: addressing an index at or past a sequence's
// length fails with ErrIndexOutOfRange. While deleting, a missing
// intermediate node makes the whole call a no-op instead.
//
// A writeback flush failure is returned as an error, but the in-memory
// mutation stands; there is no rollback.
func (c *Config) Set(path string, value any) error {
	segs := dotpath.Parse(path)
	deleting := value == nil

	if len(segs) == 0 {
		if err := c.setRoot(value); err != nil {
			return err
		}
		return c.flush()
	}

	// put writes the current node back into its parent container. It is
	// needed when a mutation replaces the node itself (sequence element
	// removal changes the slice length).
	put := func(v any) {
		c.doc, _ = node.AsMapping(v)
	}

	cur := any(c.doc)
	for _, seg := range segs[:len(segs)-1] {
		switch node.KindOf(cur) {
		case node.Mapping:
			if seg.Kind != dotpath.Key {
				return notFound(path, seg, "index used on a mapping")
			}
			m, _ := node.AsMapping(cur)
			v, ok := m.Get(seg.Key)
			if !ok {
				if deleting {
					return nil
				}
				v = node.NewMapping()
				m.Set(seg.Key, v)
			}
			key := seg.Key
			put = func(nv any) { m.Set(key, nv) }
			cur = v
		case node.Sequence:
			if seg.Kind != dotpath.Index {
				return notFound(path, seg, "key used on a sequence")
			}
			s, _ := node.AsSequence(cur)
			if seg.Index < 0 || seg.Index >= len(s) {
				if deleting {
					return nil
				}
				return outOfRange(path, seg, len(s))
			}
			idx := seg.Index
			put = func(nv any) { s[idx] = nv }
			cur = s[seg.Index]
		default:
			return notFound(path, seg, "scalar has no children")
		}
	}

	last := segs[len(segs)-1]
	switch node.KindOf(cur) {
	case node.Mapping:
		if last.Kind != dotpath.Key {
			return notFound(path, last, "index used on a mapping")
		}
		m, _ := node.AsMapping(cur)
		if deleting {
			m.Delete(last.Key)
		} else {
			m.Set(last.Key, node.Normalize(value))
		}
	case node.Sequence:
		if last.Kind != dotpath.Index {
			return notFound(path, last, "key used on a sequence")
		}
		s, _ := node.AsSequence(cur)
		switch {
		case last.Index >= 0 && last.Index < len(s):
			if deleting {
				put(append(s[:last.Index:last.Index], s[last.Index+1:]...))
			} else {
				s[last.Index] = node.Normalize(value)
			}
		case deleting:
			// Absent entries delete silently.
		default:
			return outOfRange(path, last, len(s))
		}
	default:
		return notFound(path, last, "scalar has no children")
	}

	return c.flush()
}

// setRoot handles Set with the empty path, which addresses the whole
// document. The delete sentinel resets the document to an empty mapping.
func (c *Config) setRoot(value any) error {
	if value == nil {
		c.doc = node.NewMapping()
		return nil
	}
	m, ok := node.Normalize(value).(*orderedmap.OrderedMap)
	if !ok {
		return errors.Newf("document root must be a mapping, got %T", value)
	}
	c.doc = m
	return nil
}

// Paths returns every path reachable from fromRoot in depth-first pre-order.
// Mapping nodes emit each key's path and then recurse into it; sequence
// nodes emit one path per index without descending into the elements, even
// when an element is itself a mapping. Scalars emit nothing.
//
// The sequence behavior means mappings nested inside sequences are not
// enumerated. That is a known gap kept for compatibility with the
// established path semantics.
func (c *Config) Paths(fromRoot string) ([]string, error) {
	start, err := c.Get(fromRoot)
	if err != nil {
		return nil, err
	}
	var out []string
	collectPaths(start, fromRoot, &out)
	return out, nil
}

func collectPaths(v any, prefix string, out *[]string) {
	switch node.KindOf(v) {
	case node.Mapping:
		m, _ := node.AsMapping(v)
		for _, k := range m.Keys() {
			p := dotpath.Join(prefix, k)
			*out = append(*out, p)
			child, _ := m.Get(k)
			collectPaths(child, p, out)
		}
	case node.Sequence:
		s, _ := node.AsSequence(v)
		for i := range s {
			*out = append(*out, dotpath.Join(prefix, strconv.Itoa(i)))
		}
	}
}

func notFound(path string, seg dotpath.Segment, cause string) error {
	return errors.Wrapf(errors.ErrPathNotFound,
		"segment %q in path %q: %s", seg.String(), path, cause)
}

func outOfRange(path string, seg dotpath.Segment, length int) error {
	return errors.Wrapf(errors.ErrIndexOutOfRange,
		"index %d in path %q: sequence has %d elements", seg.Index, path, length)
}
