// Package cli holds the logic behind the config command, shared by both
// host CLI mounts (the cobra binary and the declarative dc binary). Both
// route here so argument semantics stay identical: a positional path
// defaulting to the empty string, and zero or more set values.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"

	"github.com/thoreinstein/dotconf"
	"github.com/thoreinstein/dotconf/internal/errors"
	"github.com/thoreinstein/dotconf/internal/node"
)

// pathColor highlights the path part of printed lines. color disables
// itself automatically when stdout is not a terminal.
var pathColor = color.New(color.FgCyan)

// Run executes the config command: with no set values it prints every leaf
// reachable from path, otherwise it stores the parsed set values at path.
//
// Errors come back as *errors.ExitError: unresolvable paths map to a user
// error (exit 1) with nothing printed, store failures to a system error
// (exit 2).
func Run(cfg *dotconf.Config, out io.Writer, path string, setValues []string) error {
	if len(setValues) == 0 {
		return printLeaves(cfg, out, path)
	}

	value := ParseSetValues(setValues)
	slog.Debug("setting config value", "path", path, "delete", value == nil)

	if err := cfg.Set(path, value); err != nil {
		if errors.Is(err, errors.ErrWrite) {
			return errors.NewSystemError(err, "check permissions on the config store")
		}
		return errors.NewExitError(err, errors.ExitUser)
	}
	return nil
}

// printLeaves renders every leaf under path as "fullpath = value", one per
// line, depth-first. Mappings are recursed into; sequences and scalars
// print whole. The initial path resolves before anything is printed, so an
// unknown path produces no output at all.
func printLeaves(cfg *dotconf.Config, out io.Writer, path string) error {
	v, err := cfg.Get(path)
	if err != nil {
		return errors.NewExitError(err, errors.ExitUser)
	}
	printNode(out, path, v)
	return nil
}

func printNode(out io.Writer, path string, v any) {
	m, ok := node.AsMapping(v)
	if !ok {
		fmt.Fprintf(out, "%s = %s\n", pathColor.Sprint(path), renderValue(v))
		return
	}
	for _, k := range m.Keys() {
		child, _ := m.Get(k)
		childPath := k
		if path != "" {
			childPath = path + "." + k
		}
		printNode(out, childPath, child)
	}
}

// renderValue formats a leaf for display. Strings print raw; everything
// else (numbers, booleans, null, sequences) renders as compact JSON.
func renderValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// ParseSetValues converts raw --set arguments into a document value. Each
// argument parses as JSON when possible and falls back to a literal string.
// One value stores as-is, several store as a sequence, and a single empty
// string is the delete request (nil).
func ParseSetValues(values []string) any {
	if len(values) == 1 {
		if values[0] == "" {
			return nil
		}
		return parseValue(values[0])
	}
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = parseValue(v)
	}
	return out
}

func parseValue(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return v
}

// Complete returns every known path with the given prefix, for shell
// completion of the path argument.
func Complete(cfg *dotconf.Config, prefix string) []string {
	paths, err := cfg.Paths("")
	if err != nil {
		return nil
	}
	var out []string
	for _, p := range paths {
		if strings.HasPrefix(p, prefix) {
			out = append(out, p)
		}
	}
	return out
}

// LoadDefault builds the engine both CLI mounts start from, bound with
// writeback to locator (empty means the per-user default store). Only a
// failure to establish the writeback binding is suppressed, leaving an
// unbound in-memory engine so the command can still run; every other load
// failure aborts startup.
func LoadDefault(locator string) (*dotconf.Config, error) {
	cfg, err := dotconf.Load(nil, locator)
	if err != nil {
		if errors.Is(err, errors.ErrUnbindableStream) {
			slog.Warn("config store not bindable, changes will not persist", "err", err)
			return dotconf.New(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// ExitCode extracts the exit code from err: 0 for nil, the embedded code
// for *errors.ExitError, ExitUser otherwise.
func ExitCode(err error) int {
	if err == nil {
		return errors.ExitSuccess
	}
	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return errors.ExitUser
}
