package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/iancoleman/orderedmap"
	"github.com/scott-cotton/cli"

	"github.com/thoreinstein/dotconf"
	dccli "github.com/thoreinstein/dotconf/internal/cli"
	"github.com/thoreinstein/dotconf/internal/editor"
	"github.com/thoreinstein/dotconf/internal/errors"
	"github.com/thoreinstein/dotconf/internal/logging"
	"github.com/thoreinstein/dotconf/internal/paths"
	"github.com/thoreinstein/dotconf/pkg/fileutil"
)

// MainConfig carries the options shared by every dc subcommand.
type MainConfig struct {
	Store string `cli:"name=store desc='backing store file (default: per-user config directory)'"`
	Quiet bool   `cli:"name=q aliases=quiet desc='suppress log output'"`

	Main *cli.Command
}

// MainCommand builds the dc command tree.
func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Main, "dc").
		WithSynopsis("dc [opts] <command> [args]").
		WithDescription("dc gets and sets values in a dot-path addressed config store.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			cfg.Main.Usage(cc, nil)
			return nil
		}).
		WithSubs(ConfigCommand(cfg), EditCommand(cfg))
}

// ConfigConfig carries the config subcommand's state.
type ConfigConfig struct {
	*MainConfig

	Config *cli.Command

	// sets accumulates repeated -set values in order.
	sets []string
}

// ConfigCommand declares the config subcommand with the same argument
// semantics as the cobra mount: an optional positional path and zero or
// more -set values.
func ConfigCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConfigConfig{MainConfig: mainCfg}

	setOpt := &cli.Opt{
		Name:        "set",
		Aliases:     []string{"s"},
		Description: "value to store at path (repeatable); a single empty string deletes",
		Type: cli.NamedFuncOpt(cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
			cfg.sets = append(cfg.sets, v)
			return v, nil
		}), "(value)"),
	}

	cmd := cli.NewCommand("config").
		WithAliases("c").
		WithSynopsis("config [path] [-set value ...]").
		WithDescription("get or set configuration values by dot-separated path").
		WithOpts(setOpt).
		WithRun(func(cc *cli.Context, args []string) error {
			return runConfig(cfg, cc, args)
		})
	cfg.Config = cmd
	return cmd
}

func runConfig(cfg *ConfigConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Config.Parse(cc, args)
	if err != nil {
		cfg.Config.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return configMain(cfg, cc.Out, args)
}

// configMain is everything the config subcommand does after flag parsing.
func configMain(cfg *ConfigConfig, out io.Writer, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: config takes at most one path argument", cli.ErrUsage)
	}
	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	setupLogging(cfg.MainConfig)

	engine, err := dccli.LoadDefault(cfg.Store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitCodeErr(errors.ExitSystem)
	}

	if err := dccli.Run(engine, out, path, cfg.sets); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitCodeErr(dccli.ExitCode(err))
	}
	return nil
}

// EditCommand declares the edit subcommand, which opens the store file
// in $EDITOR and re-parses it afterwards.
func EditCommand(mainCfg *MainConfig) *cli.Command {
	var cmd *cli.Command
	return cli.NewCommandAt(&cmd, "edit").
		WithAliases("e").
		WithSynopsis("edit").
		WithDescription("open the config store in your editor").
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cmd.Parse(cc, args)
			if err != nil {
				cmd.Usage(cc, err)
				return cli.ExitCodeErr(1)
			}
			if len(args) > 0 {
				return fmt.Errorf("%w: edit takes no arguments", cli.ErrUsage)
			}

			setupLogging(mainCfg)

			if err := editStore(mainCfg.Store); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return cli.ExitCodeErr(dccli.ExitCode(err))
			}
			return nil
		})
}

// editStore opens locator (or the default store) in the user's editor,
// creating an empty document first when the file does not exist.
func editStore(locator string) error {
	if locator == "" {
		locator = paths.DefaultStorePath()
	}

	if _, err := os.Stat(locator); os.IsNotExist(err) {
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
		return errors.NewUserError(err, "re-run 'dc edit' and fix the JSON syntax")
	}
	return nil
}

func setupLogging(cfg *MainConfig) {
	if cfg.Quiet {
		slog.SetDefault(logging.NewDiscard())
		return
	}
	slog.SetDefault(logging.Default())
}
