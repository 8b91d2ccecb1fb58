// Package main is the entry point for the dotconf CLI.
package main

import (
	"os"

	"github.com/thoreinstein/dotconf/cmd/dotconf/commands"
	"github.com/thoreinstein/dotconf/internal/cli"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
