package renderer

import (
	"fmt"
	"time"
)

// TransactionDate formats t relatively to now, in now's location:
// "Today, 15:04", "Yesterday, 15:04", "2 Jan, 15:04" within the year, and
// "2 Jan 2006, 15:04" otherwise.
func TransactionDate(t, now time.Time) string {
	t = t.In(now.Location())
	ty, tm, td := t.Date()
	ny, nm, nd := now.Date()
	yy, ym, yd := now.AddDate(0, 0, -1).Date()
	switch {
	case ty == ny && tm == nm && td == nd:
		return "Today, " + t.Format("15:04")
	case ty == yy && tm == ym && td == yd:
		return "Yesterday, " + t.Format("15:04")
	case ty == ny:
		return t.Format("2 Jan, 15:04")
	default:
		return t.Format("2 Jan 2006, 15:04")
	}
}

// Timestamp formats a creation or update time.
func Timestamp(t, now time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return TransactionDate(t, now)
}

// DaysLeft describes a number of days until a deadline.
func DaysLeft(n int) string {
	switch {
	case n == 0:
		return "due today"
	case n == 1:
		return "1 day left"
	case n > 1:
		return fmt.Sprintf("%d days left", n)
	case n == -1:
		return "1 day overdue"
	default:
		return fmt.Sprintf("%d days overdue", -n)
	}
}
