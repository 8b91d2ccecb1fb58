package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/dotconf"
	"github.com/thoreinstein/dotconf/internal/errors"
)

func TestMain(m *testing.M) {
	// Keep printed output free of escape codes regardless of the test
	// runner's terminal.
	color.NoColor = true
	os.Exit(m.Run())
}

// newEngine returns an unbound engine seeded with the standard test course.
func newEngine(t *testing.T) *dotconf.Config {
	t.Helper()
	cfg := dotconf.New()
	require.NoError(t, cfg.Set("courses.datintro22.url", "https://x"))
	require.NoError(t, cfg.Set("courses.datintro22.TAs", []any{"Asse", "Assa"}))
	return cfg
}

func TestRun_PrintsLeaves(t *testing.T) {
	cfg := newEngine(t)
	var buf bytes.Buffer

	err := Run(cfg, &buf, "", nil)
	require.NoError(t, err)

	want := "courses.datintro22.url = https://x\n" +
		"courses.datintro22.TAs = [\"Asse\",\"Assa\"]\n"
	assert.Equal(t, want, buf.String())
}

func TestRun_PrintsSubtree(t *testing.T) {
	cfg := newEngine(t)
	var buf bytes.Buffer

	err := Run(cfg, &buf, "courses.datintro22.url", nil)
	require.NoError(t, err)
	assert.Equal(t, "courses.datintro22.url = https://x\n", buf.String())
}

func TestRun_UnknownPathPrintsNothing(t *testing.T) {
	cfg := newEngine(t)
	var buf bytes.Buffer

	err := Run(cfg, &buf, "courses.nosuch", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrPathNotFound))
	assert.Equal(t, errors.ExitUser, ExitCode(err))
	assert.Empty(t, buf.String(), "failed get must produce no output")
}

func TestRun_SetSingleValue(t *testing.T) {
	cfg := newEngine(t)

	err := Run(cfg, &bytes.Buffer{}, "courses.datintro22.room", []string{"D37"})
	require.NoError(t, err)

	got, err := cfg.Get("courses.datintro22.room")
	require.NoError(t, err)
	assert.Equal(t, "D37", got)
}

func TestRun_SetJSONValue(t *testing.T) {
	cfg := newEngine(t)

	require.NoError(t, Run(cfg, &bytes.Buffer{}, "limit", []string{"42"}))
	got, err := cfg.Get("limit")
	require.NoError(t, err)
	assert.Equal(t, float64(42), got)
}

func TestRun_SetMultipleValuesStoreSequence(t *testing.T) {
	cfg := newEngine(t)

	err := Run(cfg, &bytes.Buffer{}, "courses.prgx22.TAs",
		[]string{"Asse", "Assa", "Asselina"})
	require.NoError(t, err)

	got, err := cfg.Get("courses.prgx22.TAs")
	require.NoError(t, err)
	assert.Equal(t, []any{"Asse", "Assa", "Asselina"}, got)
}

func TestRun_SetEmptyStringDeletes(t *testing.T) {
	cfg := newEngine(t)

	err := Run(cfg, &bytes.Buffer{}, "courses.datintro22.url", []string{""})
	require.NoError(t, err)

	_, err = cfg.Get("courses.datintro22.url")
	assert.True(t, errors.Is(err, errors.ErrPathNotFound))
}

func TestParseSetValues(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   any
	}{
		{"literal string", []string{"hello"}, "hello"},
		{"JSON number", []string{"3.5"}, 3.5},
		{"JSON bool", []string{"true"}, true},
		{"JSON object", []string{`{"a":1}`}, map[string]any{"a": float64(1)}},
		{"JSON array", []string{`[1,2]`}, []any{float64(1), float64(2)}},
		{"empty string is delete", []string{""}, nil},
		{"multiple mixed values", []string{"x", "2"}, []any{"x", float64(2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSetValues(tt.values)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSetValues(%v) = %#v, want %#v", tt.values, got, tt.want)
			}
		})
	}
}

func TestComplete(t *testing.T) {
	cfg := newEngine(t)

	got := Complete(cfg, "courses.datintro22.TA")
	want := []string{
		"courses.datintro22.TAs",
		"courses.datintro22.TAs.0",
		"courses.datintro22.TAs.1",
	}
	assert.Equal(t, want, got)

	assert.Empty(t, Complete(cfg, "zzz"))
}

func TestLoadDefault_BindsStore(t *testing.T) {
	locator := filepath.Join(t.TempDir(), "config.json")

	cfg, err := LoadDefault(locator)
	require.NoError(t, err)

	bound, ok := cfg.Bound()
	assert.True(t, ok)
	assert.Equal(t, locator, bound)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, errors.ExitSuccess, ExitCode(nil))
	assert.Equal(t, errors.ExitUser,
		ExitCode(errors.NewExitError(errors.ErrPathNotFound, errors.ExitUser)))
	assert.Equal(t, errors.ExitSystem,
		ExitCode(errors.NewSystemError(errors.ErrWrite, "")))
	assert.Equal(t, errors.ExitUser, ExitCode(errors.New("plain")))
}
