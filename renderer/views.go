package renderer

import (
	"time"

	"github.com/etnz/savings"
	"github.com/etnz/savings/date"
)

// Row is a goal as displayed in the list of goals.
type Row struct {
	Position  int
	ID        string
	Icon      string
	Title     string
	Saved     string
	Target    string
	Remaining string
	Progress  string
	Level     savings.Level
	Completed bool
}

// List is the view of the whole collection.
type List struct {
	Rows []Row
}

// NewList builds the view of 'goals'. IDs are abbreviated to their shortest
// unique prefix of at least 'idLen' characters, 0 keeps them whole.
func NewList(goals []savings.Goal, idLen int) *List {
	short := Abbreviations(goals, idLen)
	l := &List{Rows: make([]Row, 0, len(goals))}
	for i, g := range goals {
		l.Rows = append(l.Rows, Row{
			Position:  i + 1,
			ID:        short[g.ID],
			Icon:      icon(g),
			Title:     g.Title,
			Saved:     g.Saved().String(),
			Target:    g.Target().String(),
			Remaining: savings.FormatCurrency(g.Remaining(), g.Currency),
			Progress:  g.Progress().String(),
			Level:     g.Progress().Level(),
			Completed: g.Completed(),
		})
	}
	return l
}

// Entry is a transaction as displayed in a goal history.
type Entry struct {
	Label  string
	Amount string
	When   string
}

// Detail is the view of one goal.
type Detail struct {
	Row
	Description string
	Deadline    string
	DaysLeft    string
	Unrecorded  string
	Created     string
	Updated     string
	History     []Entry // most recent first
}

// NewDetail builds the view of 'g' as seen at time 'now'.
func NewDetail(g savings.Goal, now time.Time) *Detail {
	d := &Detail{
		Row:         NewList([]savings.Goal{g}, 0).Rows[0],
		Description: g.Description,
		Deadline:    g.Deadline,
		Created:     Timestamp(g.CreatedAt, now),
		Updated:     Timestamp(g.UpdatedAt, now),
	}
	d.Position = 0
	if day, ok := g.DeadlineDate(); ok {
		d.DaysLeft = DaysLeft(date.Of(now).DaysUntil(day))
	}
	if u := g.Unreconciled(); !u.IsZero() {
		d.Unrecorded = savings.M(u, g.Currency).SignedString()
	}
	for i := len(g.Transactions) - 1; i >= 0; i-- {
		tx := g.Transactions[i]
		label := "Deposit"
		if tx.Type == savings.Credit {
			label = "Withdrawal"
		}
		d.History = append(d.History, Entry{
			Label:  label,
			Amount: savings.M(tx.Signed(), g.Currency).SignedString(),
			When:   TransactionDate(tx.Date, now),
		})
	}
	return d
}

func icon(g savings.Goal) string {
	if g.Icon == "" {
		return savings.DefaultIcon
	}
	return g.Icon
}
