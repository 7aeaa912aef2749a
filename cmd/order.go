package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// moveCmd moves a goal one position up or down the list.
type moveCmd struct {
	up bool
}

func (c *moveCmd) Name() string {
	if c.up {
		return "up"
	}
	return "down"
}

func (c *moveCmd) Synopsis() string {
	if c.up {
		return "move a goal one position up"
	}
	return "move a goal one position down"
}

func (c *moveCmd) Usage() string {
	return fmt.Sprintf(`sgs %s <id>

  %s. Nothing happens at the edge of the list.
`, c.Name(), c.Synopsis())
}

func (c *moveCmd) SetFlags(f *flag.FlagSet) {}

func (c *moveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	move := e.session.MoveDown
	if c.up {
		move = e.session.MoveUp
	}
	moved, err := move(g.ID)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if !moved {
		fmt.Fprintf(stderr, "Goal %q is already at the edge of the list.\n", g.Title)
	}
	return subcommands.ExitSuccess
}

type reorderCmd struct{}

func (*reorderCmd) Name() string     { return "reorder" }
func (*reorderCmd) Synopsis() string { return "set the order of the goals" }
func (*reorderCmd) Usage() string {
	return `sgs reorder <id>...

  Puts the given goals first, in the given order. The other goals keep their
  relative order after them.
`
}

func (c *reorderCmd) SetFlags(f *flag.FlagSet) {}

func (c *reorderCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, status := openOrFail()
	if e == nil {
		return status
	}
	defer e.Close()

	goals := e.session.Goals()
	ids := make([]string, 0, f.NArg())
	for _, arg := range f.Args() {
		id, err := resolveID(goals, arg)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		ids = append(ids, id)
	}
	// listed goals first, the others after them.
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	for _, g := range goals {
		if !seen[g.ID] {
			ids = append(ids, g.ID)
		}
	}
	e.session.Reorder(ids...)
	return subcommands.ExitSuccess
}
