package savings

import (
	"time"

	"github.com/shopspring/decimal"
)

// D is a helper for tests to create decimals from constants.
func D(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// ptr returns a pointer to v.
func ptr[T any](v T) *T { return &v }

// t0 is the time of the first tick of test clocks.
var t0 = time.Date(2025, time.March, 1, 9, 30, 0, 0, time.UTC)

// tick is a clock advancing one minute at each call.
type tick struct{ n int }

func (c *tick) Now() time.Time {
	t := t0.Add(time.Duration(c.n) * time.Minute)
	c.n++
	return t
}

// recorder is an in-memory Store recording every save.
type recorder struct {
	initial []Goal
	saves   [][]Goal
}

func (r *recorder) Load() []Goal { return r.initial }

func (r *recorder) Save(goals []Goal) { r.saves = append(r.saves, goals) }

// last returns the last saved collection.
func (r *recorder) last() []Goal {
	if len(r.saves) == 0 {
		return nil
	}
	return r.saves[len(r.saves)-1]
}

// newTestLedger returns a deterministic ledger and the recorder of its saves.
func newTestLedger(goals ...Goal) (*Ledger, *recorder) {
	rec := &recorder{}
	l := NewLedger(goals, WithClock(&tick{}), WithIDs(&Sequence{Prefix: "id"}), WithPersister(rec))
	return l, rec
}

// mustCreate creates a goal with 'target' and an optional seed, or panics.
func mustCreate(l *Ledger, title string, target float64, saved ...float64) Goal {
	data := GoalData{Title: title, Currency: "USD", TargetAmount: D(target)}
	if len(saved) > 0 {
		data.SavedAmount = ptr(D(saved[0]))
	}
	g, err := l.Create(data)
	if err != nil {
		panic(err)
	}
	return g
}

// ids returns the ids of goals in order.
func ids(goals []Goal) []string {
	res := make([]string, len(goals))
	for i, g := range goals {
		res[i] = g.ID
	}
	return res
}
