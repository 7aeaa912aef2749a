package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/savings"
	"github.com/google/subcommands"
)

// savingCmd records a deposit (debit) or a withdrawal (credit) on a goal.
type savingCmd struct {
	t savings.TxType
}

func (c *savingCmd) Name() string {
	if c.t == savings.Credit {
		return "withdraw"
	}
	return "deposit"
}

func (c *savingCmd) Synopsis() string {
	if c.t == savings.Credit {
		return "take money out of a savings goal"
	}
	return "add money to a savings goal"
}

func (c *savingCmd) Usage() string {
	if c.t == savings.Credit {
		return `sgs withdraw <id> <amount>

  Records a withdrawal from the goal. The amount cannot exceed the saved amount.
`
	}
	return `sgs deposit <id> <amount>

  Records a deposit on the goal. The amount cannot exceed what remains to
  reach the target.
`
}

func (c *savingCmd) SetFlags(f *flag.FlagSet) {}

func (c *savingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintf(stderr, "Error: expected a goal id and an amount\n")
		return subcommands.ExitUsageError
	}
	amount, err := savings.ParseAmount(f.Arg(1))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	e, status := openOrFail()
	if e == nil {
		return status
	}
	defer e.Close()

	g, err := e.resolve(f.Args()[:1])
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := savings.ValidateTransaction(g, amount, c.t); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	tx, err := e.session.Apply(g.ID, amount, c.t)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	g, _ = e.session.Get(g.ID)
	fmt.Fprintf(stderr, "✅ %s on %q: %s saved of %s (%s).\n",
		savings.M(tx.Signed(), g.Currency).SignedString(), g.Title, g.Saved(), g.Target(), g.Progress())
	if g.Completed() {
		fmt.Fprintln(stderr, "🎉 Goal reached!")
	}
	return subcommands.ExitSuccess
}
