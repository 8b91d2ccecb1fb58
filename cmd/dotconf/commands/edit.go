package commands

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/iancoleman/orderedmap"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/dotconf"
	"github.com/thoreinstein/dotconf/internal/editor"
	"github.com/thoreinstein/dotconf/internal/errors"
	"github.com/thoreinstein/dotconf/internal/paths"
	"github.com/thoreinstein/dotconf/pkg/fileutil"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config store in your editor",
	Long: `Open the backing store file in $EDITOR (falling back to $VISUAL,
nano, vi). A missing store is created first so the editor starts from a
valid empty document. After the editor exits the file is re-parsed and a
syntax problem is reported without discarding the edit.`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(_ *cobra.Command, _ []string) error {
	locator := storeFlag
	if locator == "" && settings != nil {
		locator = settings.Store
	}
	if locator == "" {
		locator = paths.DefaultStorePath()
	}

	if _, err := os.Stat(locator); os.IsNotExist(err) {
		slog.Info("creating empty store", "store", locator)
		if err := paths.EnsureDir(filepath.Dir(locator), 0); err != nil {
			return errors.NewSystemError(err, "check permissions on "+filepath.Dir(locator))
		}
		if err := fileutil.AtomicWriteJSON(locator, orderedmap.New()); err != nil {
			return errors.NewSystemError(err, "check permissions on "+locator)
		}
	}

	if err := editor.Open(locator); err != nil {
		return errors.NewSystemError(err, "set $EDITOR to a working editor command")
	}

	if err := dotconf.New().ReadFile(locator, false); err != nil {
		return errors.NewUserError(err, "re-run 'dotconf edit' and fix the JSON syntax")
	}
	return nil
}
