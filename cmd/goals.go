package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/savings"
	"github.com/etnz/savings/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// goalFlags are the flags describing a goal, shared by new and edit.
type goalFlags struct {
	title       string
	target      string
	saved       string
	currency    string
	icon        string
	color       string
	description string
	deadline    string
}

func (g *goalFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&g.target, "t", "", "Target amount.")
	f.StringVar(&g.saved, "s", "", "Amount already saved. It is not recorded in the history.")
	f.StringVar(&g.currency, "c", "", "Currency code (USD, IDR, EUR, GBP, JPY or any other code). Defaults to the configured currency.")
	f.StringVar(&g.icon, "i", "", "Icon, usually an emoji. Defaults to "+savings.DefaultIcon+".")
	f.StringVar(&g.color, "color", "", "Icon color, like #3B82F6.")
	f.StringVar(&g.description, "desc", "", "Free form description.")
	f.StringVar(&g.deadline, "deadline", "", "Deadline day, as YYYY-MM-DD.")
}

// parseSaved parses a saved amount, zero is allowed.
func parseSaved(s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid saved amount %q: not a number", s)
	}
	if v.IsNegative() {
		return decimal.Zero, fmt.Errorf("invalid saved amount %q: %w", s, savings.ErrNegativeSaved)
	}
	return v, nil
}

// parseDeadline normalizes a deadline day, empty is no deadline.
func parseDeadline(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	d, err := date.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid deadline %q: %w", s, err)
	}
	return d.String(), nil
}

type newCmd struct {
	goalFlags
}

func (*newCmd) Name() string     { return "new" }
func (*newCmd) Synopsis() string { return "create a savings goal" }
func (*newCmd) Usage() string {
	return `sgs new -t <target> [-s <saved>] [-c <currency>] [-i <icon>] [-color <color>] [-desc <text>] [-deadline <day>] <title>

  Creates a new savings goal at the end of the list and prints its id.

Usage Examples:
$ sgs new -t 1000 -c EUR -i ✈️ Trip to Lisbon
`
}

func (c *newCmd) SetFlags(f *flag.FlagSet) { c.goalFlags.setFlags(f) }

func (c *newCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	saved := decimal.Zero
	if c.saved != "" {
		var err error
		if saved, err = parseSaved(c.saved); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	title, target, err := savings.ValidateForm(strings.Join(f.Args(), " "), c.target, saved)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	deadline, err := parseDeadline(c.deadline)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	e, status := openOrFail()
	if e == nil {
		return status
	}
	defer e.Close()

	currency := strings.ToUpper(strings.TrimSpace(c.currency))
	if currency == "" {
		currency = e.cfg.Default.Currency
	}
	color := c.color
	if color == "" {
		color = e.cfg.Default.IconColor
	}
	data := savings.GoalData{
		Title:        title,
		Icon:         c.icon,
		IconColor:    color,
		Description:  c.description,
		Currency:     currency,
		TargetAmount: target,
		Deadline:     deadline,
	}
	if c.saved != "" {
		data.SavedAmount = &saved
	}
	g, err := e.session.Create(data)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, g.ID)
	fmt.Fprintf(stderr, "✅ Created goal %q, target %s.\n", g.Title, g.Target())
	return subcommands.ExitSuccess
}

type editCmd struct {
	goalFlags
	record bool
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit a savings goal" }
func (*editCmd) Usage() string {
	return `sgs edit [-title <title>] [-t <target>] [-s <saved>] [-c <currency>] [-i <icon>] [-color <color>] [-desc <text>] [-deadline <day>] [-record] <id>

  Changes the fields of a goal given by its id, or any unique prefix of it.
  Only the flags given are changed. Use -deadline "" to remove the deadline.

  Setting the saved amount directly is not recorded in the history, unless
  -record is given.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	c.goalFlags.setFlags(f)
	f.StringVar(&c.title, "title", "", "New title.")
	f.BoolVar(&c.record, "record", false, "Record a change of the saved amount as a deposit or a withdrawal.")
}

// patch builds the update from the flags set on the command line.
func (c *editCmd) patch(f *flag.FlagSet, g savings.Goal) (savings.GoalPatch, error) {
	var p savings.GoalPatch
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	var errs error
	saved := g.SavedAmount
	if set["s"] {
		v, err := parseSaved(c.saved)
		if err != nil {
			errs = errors.Join(errs, err)
		} else {
			saved = v
			p.SavedAmount = &v
		}
	}
	if set["title"] || set["t"] {
		title, target := g.Title, g.TargetAmount.String()
		if set["title"] {
			title = c.title
		}
		if set["t"] {
			target = c.target
		}
		title, amount, err := savings.ValidateForm(title, target, saved)
		switch {
		case err != nil:
			errs = errors.Join(errs, err)
		case set["t"]:
			p.TargetAmount = &amount
		}
		if err == nil && set["title"] {
			p.Title = &title
		}
	}
	if set["c"] {
		currency := strings.ToUpper(strings.TrimSpace(c.currency))
		p.Currency = &currency
	}
	if set["i"] {
		p.Icon = &c.icon
	}
	if set["color"] {
		p.IconColor = &c.color
	}
	if set["desc"] {
		p.Description = &c.description
	}
	if set["deadline"] {
		deadline, err := parseDeadline(c.deadline)
		if err != nil {
			errs = errors.Join(errs, err)
		}
		p.Deadline = &deadline
	}
	if len(set) == 0 || len(set) == 1 && set["record"] {
		errs = errors.New("nothing to change")
	}
	return p, errs
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var opts []savings.Option
	if c.record {
		opts = append(opts, savings.WithReconciler(savings.SynthesizeTransaction))
	}
	e, status := openOrFail(opts...)
	if e == nil {
		return status
	}
	defer e.Close()

	g, err := e.resolve(f.Args())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, err := c.patch(f, g)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := e.session.Edit(g.ID, p); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	g, _ = e.session.Get(g.ID)
	fmt.Fprintf(stderr, "✅ Updated goal %q: %s of %s.\n", g.Title, g.Saved(), g.Target())
	return subcommands.ExitSuccess
}

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a savings goal" }
func (*rmCmd) Usage() string {
	return `sgs rm <id>

  Deletes a goal and its history.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := e.session.Delete(g.ID); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stderr, "✅ Deleted goal %q.\n", g.Title)
	return subcommands.ExitSuccess
}
