package savings

import (
	"slices"
	"time"

	"github.com/etnz/savings/date"
	"github.com/shopspring/decimal"
)

// DefaultIcon is the icon of goals created without one.
const DefaultIcon = "🎯"

// IconColors is the palette offered for goal icons, DefaultIconColor first.
var IconColors = []string{
	"#3B82F6", // blue
	"#0D9488", // teal
	"#6366F1", // indigo
	"#8B5CF6", // violet
	"#0891B2", // cyan
	"#059669", // emerald
	"#D97706", // amber
	"#DB2777", // pink
	"#4F46E5", // deep indigo
	"#64748B", // slate
}

// DefaultIconColor is the first color of the palette.
var DefaultIconColor = IconColors[0]

// TxType is the direction of a saving transaction.
type TxType string

const (
	// Debit adds money to a goal.
	Debit TxType = "debit"
	// Credit takes money out of a goal.
	Credit TxType = "credit"
)

// Valid reports whether t is a known transaction type.
func (t TxType) Valid() bool { return t == Debit || t == Credit }

// Transaction is one recorded change of a goal's saved amount.
//
// Amount is always positive, the direction is carried by Type.
type Transaction struct {
	ID     string
	Amount decimal.Decimal
	Type   TxType
	Date   time.Time
}

// Signed returns the amount with the sign of its effect on the saved amount.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == Credit {
		return t.Amount.Neg()
	}
	return t.Amount
}

func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID && t.Amount.Equal(o.Amount) && t.Type == o.Type && t.Date.Equal(o.Date)
}

// Goal is a savings objective with its running balance.
type Goal struct {
	ID           string
	Title        string
	Icon         string
	IconColor    string
	Description  string
	Currency     string
	TargetAmount decimal.Decimal
	SavedAmount  decimal.Decimal
	Deadline     string // free form, usually a YYYY-MM-DD day
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Transactions []Transaction // chronological, append-only
}

// clone returns a copy of g that shares no memory with it.
func (g Goal) clone() Goal {
	g.Transactions = slices.Clone(g.Transactions)
	if g.Transactions == nil {
		g.Transactions = []Transaction{}
	}
	return g
}

// Equal reports whether both goals have exactly the same content.
func (g Goal) Equal(o Goal) bool {
	return g.ID == o.ID &&
		g.Title == o.Title &&
		g.Icon == o.Icon &&
		g.IconColor == o.IconColor &&
		g.Description == o.Description &&
		g.Currency == o.Currency &&
		g.TargetAmount.Equal(o.TargetAmount) &&
		g.SavedAmount.Equal(o.SavedAmount) &&
		g.Deadline == o.Deadline &&
		g.CreatedAt.Equal(o.CreatedAt) &&
		g.UpdatedAt.Equal(o.UpdatedAt) &&
		slices.EqualFunc(g.Transactions, o.Transactions, Transaction.Equal)
}

// Target returns the target amount as Money.
func (g Goal) Target() Money { return M(g.TargetAmount, g.Currency) }

// Saved returns the saved amount as Money.
func (g Goal) Saved() Money { return M(g.SavedAmount, g.Currency) }

// Remaining returns what is left to save, never negative.
func (g Goal) Remaining() decimal.Decimal {
	return decimal.Max(decimal.Zero, g.TargetAmount.Sub(g.SavedAmount))
}

// Limit returns the largest amount a transaction of type t can have.
func (g Goal) Limit(t TxType) decimal.Decimal {
	if t == Credit {
		return g.SavedAmount
	}
	return g.Remaining()
}

// Progress returns the saved percentage of the target.
func (g Goal) Progress() Percent { return CalculatePercentage(g.SavedAmount, g.TargetAmount) }

// Completed reports whether the target has been reached.
func (g Goal) Completed() bool {
	return g.TargetAmount.IsPositive() && g.SavedAmount.GreaterThanOrEqual(g.TargetAmount)
}

// Balance returns the signed sum of all transactions.
func (g Goal) Balance() decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range g.Transactions {
		sum = sum.Add(tx.Signed())
	}
	return sum
}

// Unreconciled returns the part of the saved amount that is not explained by
// the transaction history: the initial seed and direct edits.
func (g Goal) Unreconciled() decimal.Decimal { return g.SavedAmount.Sub(g.Balance()) }

// DeadlineDate interprets the deadline as a day. It returns false if there is
// no deadline or if it is not a valid date.
func (g Goal) DeadlineDate() (date.Date, bool) {
	if g.Deadline == "" {
		return date.Date{}, false
	}
	d, err := date.Parse(g.Deadline)
	if err != nil {
		return date.Date{}, false
	}
	return d, true
}

// GoalData holds the values of a goal to be created.
type GoalData struct {
	Title        string
	Icon         string
	IconColor    string
	Description  string
	Currency     string
	TargetAmount decimal.Decimal
	Deadline     string
	SavedAmount  *decimal.Decimal // optional initial balance
}

// GoalPatch is a partial update of a goal, nil fields are left untouched.
type GoalPatch struct {
	Title        *string
	Icon         *string
	IconColor    *string
	Description  *string
	Currency     *string
	TargetAmount *decimal.Decimal
	Deadline     *string
	SavedAmount  *decimal.Decimal
}

// apply returns a copy of g with the patch applied.
func (p GoalPatch) apply(g Goal) Goal {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&g.Title, p.Title)
	set(&g.Icon, p.Icon)
	set(&g.IconColor, p.IconColor)
	set(&g.Description, p.Description)
	set(&g.Currency, p.Currency)
	set(&g.Deadline, p.Deadline)
	if p.TargetAmount != nil {
		g.TargetAmount = *p.TargetAmount
	}
	if p.SavedAmount != nil {
		g.SavedAmount = *p.SavedAmount
	}
	return g
}
