package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/dotconf"
	"github.com/thoreinstein/dotconf/internal/cli"
	"github.com/thoreinstein/dotconf/internal/errors"
)

// setValues holds the values of the --set flags.
var setValues []string

var configCmd = &cobra.Command{
	Use:   "config [path]",
	Short: "Get or set a configuration value",
	Long: `Get or set configuration values by dot-separated path.

Without --set, prints every leaf reachable from path as "path = value",
one per line. The path defaults to the empty string, the whole document.

With --set, stores the given values at path. Each value is parsed as JSON
when possible, otherwise kept as a literal string. One value is stored
as-is, several values are stored as a sequence, and a single empty string
deletes the entry.`,
	Example: `  # Print everything
  dotconf config

  # Read one value
  dotconf config courses.datintro22.TAs.0

  # Write one value
  dotconf config courses.datintro22.TAs.0 --set Asselina

  # Delete
  dotconf config courses.datintro22 --set ""`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completePath,
	RunE:              runConfig,
}

func init() {
	configCmd.Flags().StringArrayVarP(&setValues, "set", "s", nil,
		"value to store at path (repeatable)")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	engine, err := loadEngine()
	if err != nil {
		return errors.NewSystemError(err, "check the config store with: dotconf config")
	}

	return cli.Run(engine, cmd.OutOrStdout(), path, setValues)
}

// loadEngine builds the engine for one command invocation, honoring the
// --store flag and the settings-file override in that order.
func loadEngine() (*dotconf.Config, error) {
	locator := storeFlag
	if locator == "" && settings != nil {
		locator = settings.Store
	}
	return cli.LoadDefault(locator)
}

// completePath completes the path argument from the known paths of the
// current document.
func completePath(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	engine, err := loadEngine()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return cli.Complete(engine, toComplete), cobra.ShellCompDirectiveNoFileComp
}
