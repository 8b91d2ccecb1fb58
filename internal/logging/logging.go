package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
)

// Format selects the log record encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config describes the logger the CLI mounts build from their verbosity
// and format flags.
type Config struct {
	// Level is the minimum record level that gets written.
	Level slog.Level
	// Format is text or json. Anything unrecognized means text.
	Format Format
	// Output receives the records, os.Stderr when nil.
	Output io.Writer
}

// New builds a logger per cfg. Text records go through the color handler,
// which degrades to plain output when the destination is not a terminal.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}
	if cfg.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(out, opts))
	}
	return slog.New(NewHandler(out, opts))
}

// Default is the logger a mount runs with before its flags say otherwise:
// warnings and errors only, text, stderr. Matches verbosity zero.
func Default() *slog.Logger {
	return New(Config{Level: slog.LevelWarn})
}

// NewDiscard returns a logger that drops every record, for --quiet.
func NewDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ForTest returns a debug-level logger routed through t.Log, so records
// attach to the test that produced them instead of interleaving on stderr.
func ForTest(t *testing.T) *slog.Logger {
	t.Helper()
	return New(Config{
		Level:  slog.LevelDebug,
		Output: &testWriter{t: t},
	})
}

// testWriter adapts testing.T to io.Writer.
type testWriter struct {
	t *testing.T
}

func (w *testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	// t.Log supplies its own newline.
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
