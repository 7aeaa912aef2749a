package savings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Input validation for front ends. The Ledger re-checks amount bounds itself
// but trusts free text, so titles and raw numbers must be checked here first.

// ErrTitleRequired is returned by ValidateForm for blank titles.
var ErrTitleRequired = errors.New("title is required")

// MaxAmount is the largest accepted amount. Every saved amount is bounded by a
// target itself bounded by MaxAmount, so amounts always fit in an int64.
var MaxAmount = decimal.New(1, 15)

// ParseAmount parses a user-entered, strictly positive amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, errors.New("amount is required")
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: not a number", s)
	}
	if !v.IsPositive() {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, ErrInvalidAmount)
	}
	if v.GreaterThan(MaxAmount) {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w, at most %s", s, ErrAmountTooLarge, MaxAmount)
	}
	return v, nil
}

// ValidateForm checks the fields of a goal form.
//
// 'target' is the raw target amount, it must be a number not lower than
// 'saved', the amount already saved on the goal (zero for a new goal).
// It returns the trimmed title, the parsed target and all failures joined.
func ValidateForm(title, target string, saved decimal.Decimal) (string, decimal.Decimal, error) {
	var errs error
	title = strings.TrimSpace(title)
	if title == "" {
		errs = errors.Join(errs, ErrTitleRequired)
	}
	var amount decimal.Decimal
	target = strings.TrimSpace(target)
	if target == "" {
		errs = errors.Join(errs, errors.New("target amount is required"))
	} else if v, err := decimal.NewFromString(target); err != nil {
		errs = errors.Join(errs, fmt.Errorf("invalid target amount %q: not a number", target))
	} else if v.GreaterThan(MaxAmount) {
		errs = errors.Join(errs, fmt.Errorf("invalid target amount %q: %w, at most %s", target, ErrAmountTooLarge, MaxAmount))
	} else if v.LessThan(saved) {
		errs = errors.Join(errs, fmt.Errorf("target must be at least %s (current saved): %w", saved, ErrTargetBelowSaved))
	} else {
		amount = v
	}
	return title, amount, errs
}

// ValidateTransaction checks that a transaction of 'amount' can be applied to 'goal'.
// The error message is meant for the user.
func ValidateTransaction(goal Goal, amount decimal.Decimal, t TxType) error {
	if !t.Valid() {
		return fmt.Errorf("%w %q", ErrInvalidType, t)
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	limit := goal.Limit(t)
	if amount.LessThanOrEqual(limit) {
		return nil
	}
	max := FormatCurrency(limit, goal.Currency)
	if t == Debit {
		return fmt.Errorf("%w: at most %s", ErrExceedsTarget, max)
	}
	return fmt.Errorf("%w: at most %s", ErrBelowZero, max)
}
