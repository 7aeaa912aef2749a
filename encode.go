package savings

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// TimestampFormat is the ISO-8601 format of persisted timestamps, always in UTC.
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

func formatTimestamp(t time.Time) string { return t.UTC().Format(TimestampFormat) }

// timestampLayouts are the accepted layouts of stored timestamps, tried in order.
// RFC3339 accepts an optional fractional second when parsing.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// parseTimestamp reads a stored timestamp in any of the accepted layouts.
// Layouts without a zone are read as UTC. Anything else reads as the zero time.
func parseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("amount", t.Amount)
	w.Append("type", t.Type)
	w.Append("date", formatTimestamp(t.Date))
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
// It rejects transactions that could not have been produced by a Ledger.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID     string          `json:"id"`
		Amount decimal.Decimal `json:"amount"`
		Type   TxType          `json:"type"`
		Date   string          `json:"date"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	if !temp.Type.Valid() {
		return fmt.Errorf("transaction %q: %w %q", temp.ID, ErrInvalidType, temp.Type)
	}
	if !temp.Amount.IsPositive() {
		return fmt.Errorf("transaction %q: %w, got %s", temp.ID, ErrInvalidAmount, temp.Amount)
	}
	*t = Transaction{ID: temp.ID, Amount: temp.Amount, Type: temp.Type, Date: parseTimestamp(temp.Date)}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Goal.
func (g Goal) MarshalJSON() ([]byte, error) {
	txs := g.Transactions
	if txs == nil {
		txs = []Transaction{}
	}
	var w jsonObjectWriter
	w.Append("id", g.ID)
	w.Append("title", g.Title)
	w.Append("icon", g.Icon)
	w.Optional("iconColor", g.IconColor)
	w.Optional("description", g.Description)
	w.Append("currency", g.Currency)
	w.Append("targetAmount", g.TargetAmount)
	w.Append("savedAmount", g.SavedAmount)
	w.Optional("deadline", g.Deadline)
	w.Append("createdAt", formatTimestamp(g.CreatedAt))
	w.Append("updatedAt", formatTimestamp(g.UpdatedAt))
	w.Append("transactions", txs)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Goal.
// A missing transactions field decodes as an empty history, and an unreadable
// timestamp as the zero time.
func (g *Goal) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID           string          `json:"id"`
		Title        string          `json:"title"`
		Icon         string          `json:"icon"`
		IconColor    string          `json:"iconColor"`
		Description  string          `json:"description"`
		Currency     string          `json:"currency"`
		TargetAmount decimal.Decimal `json:"targetAmount"`
		SavedAmount  decimal.Decimal `json:"savedAmount"`
		Deadline     string          `json:"deadline"`
		CreatedAt    string          `json:"createdAt"`
		UpdatedAt    string          `json:"updatedAt"`
		Transactions []Transaction   `json:"transactions"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	if temp.Transactions == nil {
		temp.Transactions = []Transaction{}
	}
	*g = Goal{
		ID:           temp.ID,
		Title:        temp.Title,
		Icon:         temp.Icon,
		IconColor:    temp.IconColor,
		Description:  temp.Description,
		Currency:     temp.Currency,
		TargetAmount: temp.TargetAmount,
		SavedAmount:  temp.SavedAmount,
		Deadline:     temp.Deadline,
		CreatedAt:    parseTimestamp(temp.CreatedAt),
		UpdatedAt:    parseTimestamp(temp.UpdatedAt),
		Transactions: temp.Transactions,
	}
	return nil
}

// EncodeGoals writes the goal collection to w as a single JSON array.
func EncodeGoals(w io.Writer, goals []Goal) error {
	if goals == nil {
		goals = []Goal{}
	}
	data, err := json.Marshal(goals)
	if err != nil {
		return fmt.Errorf("failed to marshal goals: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write goals: %w", err)
	}
	return nil
}

// DecodeGoals reads a goal collection written by EncodeGoals.
func DecodeGoals(r io.Reader) ([]Goal, error) {
	var goals []Goal
	if err := json.NewDecoder(r).Decode(&goals); err != nil {
		return nil, fmt.Errorf("could not decode goals: %w", err)
	}
	if goals == nil {
		goals = []Goal{}
	}
	return goals, nil
}
