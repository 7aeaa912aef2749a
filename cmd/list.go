package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/savings/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	full bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the savings goals with their progress" }
func (*listCmd) Usage() string {
	return `sgs list [-full]

  Lists the goals in display order, with their progress. Ids are abbreviated
  to a unique prefix, usable in any other command.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.full, "full", false, "Print whole goal ids.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, status := openOrFail()
	if e == nil {
		return status
	}
	defer e.Close()

	idLen := 8
	if c.full {
		idLen = 0
	}
	printMarkdown(renderer.RenderList(renderer.NewList(e.session.Goals(), idLen)), e.themes.Load())
	return subcommands.ExitSuccess
}

type showCmd struct {
	history bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "show a savings goal and its history" }
func (*showCmd) Usage() string {
	return `sgs show [-history] <id>

  Shows the detail of a goal and its transactions, most recent first.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.history, "history", false, "Show only the history.")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, status := openOrFail()
	if e == nil {
		return status
	}
	defer e.Close()

	g, err := e.resolve(f.Args())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	d := renderer.NewDetail(g, now())
	if c.history {
		printMarkdown(renderer.RenderHistory(d), e.themes.Load())
	} else {
		printMarkdown(renderer.RenderGoal(d), e.themes.Load())
	}
	return subcommands.ExitSuccess
}
