package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/savings"
	"github.com/etnz/savings/export"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the goals to a spreadsheet or json file" }
func (*exportCmd) Usage() string {
	return `sgs export [-o <file>]

  Exports all goals and their history. The format follows the file extension:
  .xlsx for a workbook with a Goals and a History sheet, .csv for the history
  only, and .json for the collection as stored. Without -o the json collection
  is printed on the standard output.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file (.xlsx, .csv or .json).")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var write func(io.Writer, []savings.Goal) error
	switch ext := strings.ToLower(filepath.Ext(c.output)); {
	case c.output == "" || ext == ".json":
		write = savings.EncodeGoals
	case ext == ".xlsx":
		write = export.WriteXLSX
	case ext == ".csv":
		write = export.WriteCSV
	default:
		fmt.Fprintf(stderr, "Error: unsupported export format %q\n", ext)
		return subcommands.ExitUsageError
	}

	e, status := openOrFail()
	if e == nil {
		return status
	}
	defer e.Close()
	goals := e.session.Goals()

	if c.output == "" {
		if err := write(stdout, goals); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := write(out, goals); err != nil {
		out.Close()
		fmt.Fprintf(stderr, "Error: cannot export to %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stderr, "✅ Exported %d goals to %s.\n", len(goals), c.output)
	return subcommands.ExitSuccess
}
