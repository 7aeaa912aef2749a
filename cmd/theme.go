package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/savings/storage"
	"github.com/google/subcommands"
)

type themeCmd struct{}

func (*themeCmd) Name() string     { return "theme" }
func (*themeCmd) Synopsis() string { return "show or set the display theme" }
func (*themeCmd) Usage() string {
	return `sgs theme [light|dark|toggle]

  Prints the display theme, or changes it. The theme selects the colors used
  to render markdown in the terminal.
`
}

func (c *themeCmd) SetFlags(f *flag.FlagSet) {}

func (c *themeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(stderr, "Error: expected at most one argument")
		return subcommands.ExitUsageError
	}
	e, status := openOrFail()
	if e == nil {
		return status
	}
	defer e.Close()

	theme := e.themes.Load()
	switch arg := f.Arg(0); arg {
	case "":
		fmt.Fprintln(stdout, theme)
		return subcommands.ExitSuccess
	case "toggle":
		if theme == storage.Dark {
			theme = storage.Light
		} else {
			theme = storage.Dark
		}
	case string(storage.Light), string(storage.Dark):
		theme = storage.Theme(arg)
	default:
		fmt.Fprintf(stderr, "Error: unknown theme %q, want light, dark or toggle\n", arg)
		return subcommands.ExitUsageError
	}
	e.themes.Save(theme)
	fmt.Fprintln(stdout, theme)
	return subcommands.ExitSuccess
}
