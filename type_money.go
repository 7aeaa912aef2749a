package savings

import (
	"slices"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// display describes how amounts of a currency are shown to the user.
type display struct {
	grapheme string
	thousand string // locale thousands separator
}

// displays is the static lookup table of currencies known to the tracker.
var displays = map[string]display{
	"USD": {grapheme: "$", thousand: ","},  // en-US
	"IDR": {grapheme: "Rp", thousand: "."}, // id-ID
	"EUR": {grapheme: "€", thousand: "."},  // de-DE
	"GBP": {grapheme: "£", thousand: ","},  // en-GB
	"JPY": {grapheme: "¥", thousand: ","},  // ja-JP
}

// Currencies returns the sorted list of currency codes with a dedicated display.
func Currencies() []string {
	codes := make([]string, 0, len(displays))
	for code := range displays {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// FormatCurrency formats amount for display in the currency 'code'.
//
// Amounts are rounded to whole units. Unknown codes are rendered as
// "<CODE> <number>" with the en-US grouping. Amounts are expected within
// [-MaxAmount, MaxAmount].
func FormatCurrency(amount decimal.Decimal, code string) string {
	d, ok := displays[code]
	if !ok {
		d = display{grapheme: code + " ", thousand: ","}
	}
	// fraction is 0, so the decimal separator is never printed.
	f := money.NewFormatter(0, ".", d.thousand, d.grapheme, "$1")
	return f.Format(amount.Round(0).IntPart())
}

// Money represents a monetary value in a given currency.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M creates a Money from any numeric value.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	}
	return decimal.Zero
}

// String returns the value formatted for display.
func (m Money) String() string { return FormatCurrency(m.value, m.cur) }

func (m Money) Currency() string         { return m.cur }
func (m Money) Amount() decimal.Decimal  { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }

// SignedString returns the formatted value with an explicit sign.
// 0 is represented as "-".
func (m Money) SignedString() string {
	switch {
	case m.value.IsZero():
		return "-"
	case m.value.IsPositive():
		return "+" + m.String()
	default:
		return "-" + FormatCurrency(m.value.Abs(), m.cur)
	}
}
