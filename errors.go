package savings

import "errors"

// ErrNotFound is returned when an operation targets an unknown goal id.
var ErrNotFound = errors.New("goal not found")

// ErrIDExhausted is returned when the IDGenerator only yields ids already in use.
var ErrIDExhausted = errors.New("no unused id available")

// Rejections: the operation would break the ledger bounds.
var (
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidType      = errors.New("unknown transaction type")
	ErrExceedsTarget    = errors.New("cannot exceed remaining balance")
	ErrBelowZero        = errors.New("cannot withdraw more than saved")
	ErrNegativeTarget   = errors.New("target amount cannot be negative")
	ErrNegativeSaved    = errors.New("saved amount cannot be negative")
	ErrTargetBelowSaved = errors.New("target amount cannot be lower than saved amount")
	ErrAmountTooLarge   = errors.New("amount is too large")
)

var rejections = []error{
	ErrInvalidAmount,
	ErrInvalidType,
	ErrExceedsTarget,
	ErrBelowZero,
	ErrNegativeTarget,
	ErrNegativeSaved,
	ErrTargetBelowSaved,
	ErrAmountTooLarge,
}

// IsRejection reports whether err is a bound violation, an expected outcome
// of user input rather than a fault.
func IsRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}
