package export

import (
	"encoding/csv"
	"io"

	"github.com/etnz/savings"
)

// WriteCSV writes the history of every goal to w, one transaction per line,
// with the same columns as the History sheet.
func WriteCSV(w io.Writer, goals []savings.Goal) error {
	cw := csv.NewWriter(w)
	header := make([]string, len(historyHeaders))
	for i, h := range historyHeaders {
		header[i] = h.(string)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, g := range goals {
		for _, tx := range g.Transactions {
			err := cw.Write([]string{
				g.ID,
				g.Title,
				tx.ID,
				string(tx.Type),
				tx.Signed().String(),
				g.Currency,
				tx.Date.UTC().Format(timeLayout),
			})
			if err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
