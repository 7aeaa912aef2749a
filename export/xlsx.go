// Package export writes the goal collection to spreadsheet formats.
package export

import (
	"fmt"
	"io"

	"github.com/etnz/savings"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the workbook.
const (
	GoalsSheet   = "Goals"
	HistorySheet = "History"
)

var (
	goalHeaders    = []any{"ID", "Title", "Icon", "Currency", "Target", "Saved", "Remaining", "Progress (%)", "Deadline", "Description", "Created", "Updated"}
	historyHeaders = []any{"Goal ID", "Goal", "Transaction ID", "Type", "Amount", "Currency", "Date"}
)

const timeLayout = "2006-01-02 15:04:05"

// WriteXLSX writes the goals to w as an xlsx workbook with a Goals sheet, in
// display order, and a History sheet with every transaction, goal by goal.
func WriteXLSX(w io.Writer, goals []savings.Goal) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", GoalsSheet); err != nil {
		return fmt.Errorf("create goals sheet: %w", err)
	}
	if _, err := f.NewSheet(HistorySheet); err != nil {
		return fmt.Errorf("create history sheet: %w", err)
	}

	if err := f.SetSheetRow(GoalsSheet, "A1", &goalHeaders); err != nil {
		return err
	}
	for i, g := range goals {
		row := []any{
			g.ID,
			g.Title,
			g.Icon,
			g.Currency,
			g.TargetAmount.InexactFloat64(),
			g.SavedAmount.InexactFloat64(),
			g.Remaining().InexactFloat64(),
			float64(g.Progress()),
			g.Deadline,
			g.Description,
			g.CreatedAt.UTC().Format(timeLayout),
			g.UpdatedAt.UTC().Format(timeLayout),
		}
		if err := f.SetSheetRow(GoalsSheet, cell(1, i+2), &row); err != nil {
			return fmt.Errorf("write goal %q: %w", g.ID, err)
		}
	}

	if err := f.SetSheetRow(HistorySheet, "A1", &historyHeaders); err != nil {
		return err
	}
	n := 2
	for _, g := range goals {
		for _, tx := range g.Transactions {
			row := []any{
				g.ID,
				g.Title,
				tx.ID,
				string(tx.Type),
				tx.Signed().InexactFloat64(),
				g.Currency,
				tx.Date.UTC().Format(timeLayout),
			}
			if err := f.SetSheetRow(HistorySheet, cell(1, n), &row); err != nil {
				return fmt.Errorf("write transaction %q: %w", tx.ID, err)
			}
			n++
		}
	}

	f.SetColWidth(GoalsSheet, "A", "A", 38)
	f.SetColWidth(GoalsSheet, "B", "B", 24)
	f.SetColWidth(GoalsSheet, "J", "J", 40)
	f.SetColWidth(GoalsSheet, "K", "L", 20)
	f.SetColWidth(HistorySheet, "A", "A", 38)
	f.SetColWidth(HistorySheet, "B", "B", 24)
	f.SetColWidth(HistorySheet, "C", "C", 38)
	f.SetColWidth(HistorySheet, "G", "G", 20)
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
