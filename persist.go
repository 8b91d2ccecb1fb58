package dotconf

import (
	"encoding/json"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/iancoleman/orderedmap"

	"github.com/thoreinstein/dotconf/internal/errors"
	"github.com/thoreinstein/dotconf/internal/merge"
	"github.com/thoreinstein/dotconf/internal/node"
	"github.com/thoreinstein/dotconf/internal/paths"
	"github.com/thoreinstein/dotconf/pkg/fileutil"
)

// Read decodes a full JSON document from r and merges it over the current
// in-memory document; the decoded data wins on conflicts. Reading never
// replaces the document wholesale, so several sources can be layered with
// repeated reads.
//
// If writeback is true, the stream must be reopenable later: an *os.File
// backed by a real path. Anything else fails with ErrUnbindableStream,
// since there is no locator the engine could flush future mutations to.
func (c *Config) Read(r io.Reader, writeback bool) error {
	var locator string
	if writeback {
		f, ok := r.(*os.File)
		if !ok || f.Name() == "" || strings.HasPrefix(f.Name(), "|") {
			return errors.Wrap(errors.ErrUnbindableStream, "read with writeback")
		}
		locator = f.Name()
	}

	data, err := fileutil.ReadAllWithLimit(r)
	if err != nil {
		return err
	}
	if err := c.decodeAndMerge(data, streamIdentity(r)); err != nil {
		return err
	}

	if writeback {
		c.bind(locator)
	}
	return nil
}

// ReadFile opens the store at locator, decodes it, and merges its contents
// over the current document. An empty locator selects the default per-user
// store.
//
// A store that does not exist yet is not an error: the read is a no-op, the
// common first-run case. A locator whose directory component turns out to
// be a regular file fails with ErrPathConflict. Malformed content fails
// with ErrDecode, naming the store.
//
// If writeback is true the locator is bound to the engine even when the
// store is missing, so the first mutation creates it.
func (c *Config) ReadFile(locator string, writeback bool) error {
	if locator == "" {
		locator = paths.DefaultStorePath()
	}

	data, err := fileutil.ReadFileWithLimit(locator)
	switch {
	case err == nil:
		if derr := c.decodeAndMerge(data, locator); derr != nil {
			return derr
		}
	case errors.Is(err, fs.ErrNotExist):
		// First run: nothing to merge.
	case errors.Is(err, syscall.ENOTDIR):
		return errors.Wrapf(errors.ErrPathConflict, "store %q: %v", locator, err)
	default:
		return err
	}

	if writeback {
		c.bind(locator)
	}
	return nil
}

// Write serializes the full document as indented JSON to w. The document is
// written in its entirety; no merging happens on the write side.
func (c *Config) Write(w io.Writer) error {
	data, err := json.MarshalIndent(c.doc, "", "  ")
	if err != nil {
		return errors.Wrapf(errors.ErrWrite, "encoding document: %v", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return errors.Wrapf(errors.ErrWrite, "%v", err)
	}
	return nil
}

// WriteFile serializes the full document to the store at locator, creating
// any missing parent directories. An empty locator selects the bound
// writeback store, falling back to the default per-user store. All
// failures surface as ErrWrite.
func (c *Config) WriteFile(locator string) error {
	if locator == "" {
		locator = c.locator
	}
	if locator == "" {
		locator = paths.DefaultStorePath()
	}

	if err := paths.EnsureDir(filepath.Dir(locator), 0); err != nil {
		return errors.Wrapf(errors.ErrWrite, "creating directories for %q: %v", locator, err)
	}
	if err := fileutil.AtomicWriteJSON(locator, c.doc); err != nil {
		return errors.Wrapf(errors.ErrWrite, "store %q: %v", locator, err)
	}
	return nil
}

// bind establishes the writeback binding to locator.
func (c *Config) bind(locator string) {
	c.locator = locator
	c.writeback = true
}

// flush persists the document to the bound store after a mutation. Without
// a binding it does nothing.
func (c *Config) flush() error {
	if !c.writeback {
		return nil
	}
	return c.WriteFile(c.locator)
}

// decodeAndMerge parses data as a JSON object and merges it over the
// current document. identity names the store in error messages.
func (c *Config) decodeAndMerge(data []byte, identity string) error {
	m := orderedmap.New()
	if err := json.Unmarshal(data, m); err != nil {
		return errors.Wrapf(errors.ErrDecode, "store %q: %v", identity, err)
	}
	doc, _ := node.Normalize(m).(*orderedmap.OrderedMap)
	c.doc = merge.Merge(c.doc, doc)
	return nil
}

// streamIdentity names an open stream for diagnostics.
func streamIdentity(r io.Reader) string {
	if f, ok := r.(*os.File); ok && f.Name() != "" {
		return f.Name()
	}
	return "(stream)"
}
