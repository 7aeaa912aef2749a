// Command sgs tracks savings goals from the command line.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/savings/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// a missing .env is fine.
	_ = godotenv.Load()

	// handles shell completion requests and exits, if any.
	cmd.Completion().Complete("sgs")

	commander := subcommands.NewCommander(flag.CommandLine, "sgs")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
