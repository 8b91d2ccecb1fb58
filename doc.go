// Package dotconf reads, navigates, mutates, and persists hierarchical
// configuration data addressed by dot-separated path strings.
//
// A [Config] holds one document: a tree of ordered mappings, sequences, and
// scalars, stored on disk as a JSON object. Paths address nodes by joining
// mapping keys and sequence indices with dots:
//
//	cfg, err := dotconf.Load(nil, "")
//	// ...
//	v, err := cfg.Get("courses.datintro22.TAs.0")
//	err = cfg.Set("courses.datintro22.url", "https://example.org")
//
// Numeric path segments address sequence elements; everything else is a
// mapping key. Setting creates missing intermediate mappings on the way
// down, and setting a nil value deletes the entry (deleting something
// already absent is a no-op).
//
// # Writeback
//
// An engine may be bound to a backing store with writeback, after which
// every successful Set flushes the full document to the store
// synchronously. [Load] binds writeback automatically; [Config.ReadFile]
// and [Config.Read] bind it on request. Reading a store that does not
// exist yet is a defined no-op, so first runs need no setup. Callers doing
// many sequential sets can avoid the per-call flush by mutating an unbound
// engine and calling [Config.WriteFile] once.
//
// # Default engine
//
// The package-level [Get] and [Set] operate on a process-wide engine bound
// to the default per-user store (XDG config home). It is constructed
// lazily on first use; [SetDefault] substitutes it in tests.
//
// Engines are single-threaded: one instance per backing store, no internal
// locking.
package dotconf
