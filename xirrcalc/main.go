// Command xirrcalc computes the internal rate of return of dated cash
// flows read from a CSV file or a spreadsheet.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/xirr/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	cmd.Register(commander)
	commander.Register(commander.HelpCommand(), "")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
