package savings

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Percent is a progress percentage in [0, 100].
type Percent float64

var hundred = decimal.NewFromInt(100)

// CalculatePercentage returns the progress of 'saved' towards 'target',
// rounded to one decimal and clamped to [0, 100].
//
// A target lower or equal to zero has no progress.
func CalculatePercentage(saved, target decimal.Decimal) Percent {
	if !target.IsPositive() {
		return 0
	}
	v := saved.Div(target).Mul(hundred).Round(1)
	if v.IsNegative() {
		// saved is never negative in a valid ledger.
		return 0
	}
	if v.GreaterThan(hundred) {
		return 100
	}
	return Percent(v.InexactFloat64())
}

// Equal compares percentages with a tolerance finer than the displayed precision.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// String returns the percentage with the shortest decimal representation, e.g. "33.3%", "50%".
func (p Percent) String() string {
	return strconv.FormatFloat(float64(p), 'f', -1, 64) + "%"
}

// Level is a coarse classification of a progress percentage.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Level returns the progress band: below 30% is low, below 70% is medium.
func (p Percent) Level() Level {
	switch {
	case p < 30:
		return LevelLow
	case p < 70:
		return LevelMedium
	default:
		return LevelHigh
	}
}
