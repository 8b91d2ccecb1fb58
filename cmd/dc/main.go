// Package main is the dc binary: the config command mounted on a
// declarative option parser instead of the cobra tree that cmd/dotconf
// uses. Both route to the same underlying get/set/print logic.
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
