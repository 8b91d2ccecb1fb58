// Package commands implements the CLI commands for dotconf.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/dotconf/internal/config"
	"github.com/thoreinstein/dotconf/internal/errors"
	"github.com/thoreinstein/dotconf/internal/logging"
)

// version is set at build time via ldflags.
// Default to a development version for local builds.
const version = "0.1.0"

// storeFlag holds the value of the --store flag.
var storeFlag string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// settings holds the CLI settings loaded at startup.
var settings *config.Settings

// settingsLoadErr holds any error that occurred during settings loading.
var settingsLoadErr error

func init() {
	cobra.OnInitialize(initSettings)

	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "",
		"backing store file (default: per-user config directory)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format: text, json")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("dotconf version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initSettings() {
	config.Init()
	settings, settingsLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "dotconf",
	Short: "Get and set values in a dot-path addressed config store",
	Long: `dotconf manages a JSON configuration document stored per user,
addressed by dot-separated paths like courses.datintro22.TAs.0.

Reads print every leaf under a path as "path = value" lines; writes
persist immediately to the backing store.`,
	Example: `  # Print the whole document
  dotconf config

  # Print one subtree
  dotconf config courses.datintro22

  # Set a value
  dotconf config courses.datintro22.url --set https://example.org

  # Store several values as a sequence
  dotconf config courses.prgx22.TAs -s Asse -s Assa -s Asselina

  # Delete an entry
  dotconf config courses.datintro22.url --set ""`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(_ *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	if quiet {
		slog.SetDefault(logging.NewDiscard())
		return nil
	}

	var level slog.Level
	switch {
	case verbosity >= 2:
		level = slog.LevelDebug
	case verbosity == 1:
		level = slog.LevelInfo
	default:
		level = slog.LevelWarn
	}

	format := logging.Format(logFormat)
	if logFormat == "" && settings != nil {
		format = logging.Format(settings.LogFormat)
	}

	slog.SetDefault(logging.New(logging.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
	}))

	if settingsLoadErr != nil {
		slog.Warn("settings not loaded, using defaults", "err", settingsLoadErr)
	}
	return nil
}

// Execute runs the root command and reports errors to stderr. The caller
// derives the process exit code from the returned error.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "Suggestion: %s\n", exitErr.Suggestion)
		}
	}
	return err
}
