package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/savings/storage"
)

// printMarkdown renders md for the terminal in the preferred theme, or prints
// it as is with -raw.
func printMarkdown(md string, theme storage.Theme) {
	if *raw {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(string(theme)),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
