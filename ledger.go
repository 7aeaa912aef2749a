package savings

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Clock is the source of the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// IDGenerator is a source of unique identifiers.
type IDGenerator interface {
	NewID() string
}

// UUIDs generates random (version 4) UUIDs.
type UUIDs struct{}

func (UUIDs) NewID() string { return uuid.NewString() }

// Sequence generates predictable ids: Prefix followed by a counter starting at 1.
type Sequence struct {
	Prefix string
	n      int
}

func (s *Sequence) NewID() string {
	s.n++
	return s.Prefix + strconv.Itoa(s.n)
}

// Persister durably stores the full goal collection.
//
// Save cannot fail from the Ledger's point of view: the in-memory state remains
// the source of truth whatever happens to the write.
type Persister interface {
	Save(goals []Goal)
}

// Loader reads the goal collection back.
type Loader interface {
	Load() []Goal
}

// Store is a Persister that can also load.
type Store interface {
	Loader
	Persister
}

// Reconciler is called when an edit changes the saved amount of a goal
// directly. It may return a transaction to append to the goal history.
// The Ledger always assigns the transaction ID, and fills in the Date when it
// is zero.
type Reconciler func(before Goal, to decimal.Decimal) (tx Transaction, ok bool)

// SynthesizeTransaction is a Reconciler that records the difference as a
// debit or a credit, so that edits stay visible in the history.
func SynthesizeTransaction(before Goal, to decimal.Decimal) (Transaction, bool) {
	diff := to.Sub(before.SavedAmount)
	switch {
	case diff.IsPositive():
		return Transaction{Amount: diff, Type: Debit}, true
	case diff.IsNegative():
		return Transaction{Amount: diff.Neg(), Type: Credit}, true
	default:
		return Transaction{}, false
	}
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock sets the time source, the system clock by default.
func WithClock(c Clock) Option { return func(l *Ledger) { l.clock = c } }

// WithIDs sets the id generator, UUIDs by default.
func WithIDs(g IDGenerator) Option { return func(l *Ledger) { l.ids = g } }

// WithPersister sets where the collection is saved after each mutation.
func WithPersister(p Persister) Option { return func(l *Ledger) { l.persister = p } }

// WithReconciler sets the hook called on direct edits of the saved amount.
func WithReconciler(r Reconciler) Option { return func(l *Ledger) { l.reconcile = r } }

// WithLogger sets the logger, silent by default.
func WithLogger(log zerolog.Logger) Option { return func(l *Ledger) { l.log = log } }

// Ledger is the authoritative collection of goals.
//
// Goals are kept in display order. Every successful mutation is applied
// atomically and then persisted. Failed operations leave the collection
// untouched and are not persisted.
//
// A Ledger is not safe for concurrent use.
type Ledger struct {
	goals     []Goal
	seen      map[string]struct{} // every id ever used, goals and transactions
	clock     Clock
	ids       IDGenerator
	persister Persister
	reconcile Reconciler
	log       zerolog.Logger
}

// NewLedger creates a ledger holding 'goals', in that order.
//
// Goals with an id already present are dropped.
func NewLedger(goals []Goal, opts ...Option) *Ledger {
	l := &Ledger{
		clock: ClockFunc(time.Now),
		ids:   UUIDs{},
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.load(goals)
	return l
}

// load replaces the collection without persisting it.
func (l *Ledger) load(goals []Goal) {
	l.goals = make([]Goal, 0, len(goals))
	if l.seen == nil {
		l.seen = make(map[string]struct{})
	}
	present := make(map[string]struct{}, len(goals))
	for _, g := range goals {
		if _, dup := present[g.ID]; dup {
			l.log.Warn().Str("goal", g.ID).Msg("dropping goal with a duplicate id")
			continue
		}
		present[g.ID] = struct{}{}
		l.seen[g.ID] = struct{}{}
		for _, tx := range g.Transactions {
			l.seen[tx.ID] = struct{}{}
		}
		l.goals = append(l.goals, g.clone())
	}
}

// now returns the current time, in UTC with a millisecond precision.
func (l *Ledger) now() time.Time {
	return l.clock.Now().UTC().Truncate(time.Millisecond)
}

// maxIDAttempts bounds the calls to the IDGenerator for a single new id.
const maxIDAttempts = 1000

// newID returns an id that has never been used in this ledger.
func (l *Ledger) newID() (string, error) {
	for range maxIDAttempts {
		id := l.ids.NewID()
		if _, used := l.seen[id]; !used && id != "" {
			l.seen[id] = struct{}{}
			return id, nil
		}
	}
	return "", fmt.Errorf("%w after %d attempts", ErrIDExhausted, maxIDAttempts)
}

func (l *Ledger) persist() {
	if l.persister == nil {
		return
	}
	l.persister.Save(l.Goals())
}

func (l *Ledger) index(id string) int {
	return slices.IndexFunc(l.goals, func(g Goal) bool { return g.ID == id })
}

// Len returns the number of goals.
func (l *Ledger) Len() int { return len(l.goals) }

// Goals returns a copy of the goals in display order.
func (l *Ledger) Goals() []Goal {
	goals := make([]Goal, len(l.goals))
	for i, g := range l.goals {
		goals[i] = g.clone()
	}
	return goals
}

// Get returns the goal with this id.
func (l *Ledger) Get(id string) (Goal, bool) {
	i := l.index(id)
	if i < 0 {
		return Goal{}, false
	}
	return l.goals[i].clone(), true
}

// checkBounds verifies the amount invariants of a goal.
func checkBounds(target, saved decimal.Decimal) error {
	switch {
	case target.GreaterThan(MaxAmount):
		return fmt.Errorf("%w, got %s, at most %s", ErrAmountTooLarge, target, MaxAmount)
	case target.IsNegative():
		return fmt.Errorf("%w, got %s", ErrNegativeTarget, target)
	case saved.IsNegative():
		return fmt.Errorf("%w, got %s", ErrNegativeSaved, saved)
	case target.LessThan(saved):
		return fmt.Errorf("%w: target %s, saved %s", ErrTargetBelowSaved, target, saved)
	}
	return nil
}

// Create appends a new goal at the end of the collection and returns it.
//
// Free text (title, currency) is taken as is. The optional initial saved amount
// is not recorded as a transaction.
func (l *Ledger) Create(data GoalData) (Goal, error) {
	saved := decimal.Zero
	if data.SavedAmount != nil {
		saved = *data.SavedAmount
	}
	if err := checkBounds(data.TargetAmount, saved); err != nil {
		return Goal{}, fmt.Errorf("cannot create goal %q: %w", data.Title, err)
	}
	icon := data.Icon
	if icon == "" {
		icon = DefaultIcon
	}
	id, err := l.newID()
	if err != nil {
		return Goal{}, fmt.Errorf("cannot create goal %q: %w", data.Title, err)
	}
	now := l.now()
	g := Goal{
		ID:           id,
		Title:        data.Title,
		Icon:         icon,
		IconColor:    data.IconColor,
		Description:  data.Description,
		Currency:     data.Currency,
		TargetAmount: data.TargetAmount,
		SavedAmount:  saved,
		Deadline:     data.Deadline,
		CreatedAt:    now,
		UpdatedAt:    now,
		Transactions: []Transaction{},
	}
	l.goals = append(l.goals, g)
	l.log.Debug().Str("goal", g.ID).Str("title", g.Title).Msg("goal created")
	l.persist()
	return g.clone(), nil
}

// Edit applies a partial update to the goal with this id.
//
// The update is rejected if the resulting target is lower than the resulting
// saved amount. A change of the saved amount is not recorded in the history
// unless a Reconciler says otherwise.
func (l *Ledger) Edit(id string, patch GoalPatch) error {
	i := l.index(id)
	if i < 0 {
		return fmt.Errorf("cannot edit goal %q: %w", id, ErrNotFound)
	}
	current := l.goals[i]
	next := patch.apply(current.clone())
	next.ID, next.CreatedAt = current.ID, current.CreatedAt

	if err := checkBounds(next.TargetAmount, next.SavedAmount); err != nil {
		return fmt.Errorf("cannot edit goal %q: %w", id, err)
	}
	next.UpdatedAt = l.now()

	if !next.SavedAmount.Equal(current.SavedAmount) && l.reconcile != nil {
		if tx, ok := l.reconcile(current.clone(), next.SavedAmount); ok {
			if !tx.Type.Valid() || !tx.Amount.IsPositive() {
				return fmt.Errorf("cannot edit goal %q: invalid reconciling transaction: %w", id, ErrInvalidAmount)
			}
			txID, err := l.newID()
			if err != nil {
				return fmt.Errorf("cannot edit goal %q: %w", id, err)
			}
			tx.ID = txID
			if tx.Date.IsZero() {
				tx.Date = next.UpdatedAt
			}
			next.Transactions = append(next.Transactions, tx)
		}
	}

	l.goals[i] = next
	l.log.Debug().Str("goal", id).Msg("goal edited")
	l.persist()
	return nil
}

// Delete removes the goal with this id. Its id is never reused.
func (l *Ledger) Delete(id string) error {
	i := l.index(id)
	if i < 0 {
		return fmt.Errorf("cannot delete goal %q: %w", id, ErrNotFound)
	}
	l.goals = slices.Delete(l.goals, i, i+1)
	l.log.Debug().Str("goal", id).Msg("goal deleted")
	l.persist()
	return nil
}

// Apply records a saving transaction on the goal with this id: a Debit adds
// 'amount' to the saved amount, a Credit removes it.
//
// It is rejected if the amount is not positive, if a debit would overshoot the
// target, or if a credit would make the saved amount negative.
func (l *Ledger) Apply(id string, amount decimal.Decimal, t TxType) (Transaction, error) {
	i := l.index(id)
	if i < 0 {
		return Transaction{}, fmt.Errorf("cannot apply %s to goal %q: %w", t, id, ErrNotFound)
	}
	if !t.Valid() {
		return Transaction{}, fmt.Errorf("cannot apply %q to goal %q: %w", t, id, ErrInvalidType)
	}
	if !amount.IsPositive() {
		return Transaction{}, fmt.Errorf("cannot apply %s of %s to goal %q: %w", t, amount, id, ErrInvalidAmount)
	}
	g := l.goals[i]
	delta := amount
	if t == Credit {
		delta = amount.Neg()
	}
	raw := g.SavedAmount.Add(delta)
	if t == Debit && raw.GreaterThan(g.TargetAmount) {
		return Transaction{}, fmt.Errorf("cannot apply %s of %s to goal %q, at most %s: %w", t, amount, id, g.Remaining(), ErrExceedsTarget)
	}
	if t == Credit && raw.IsNegative() {
		return Transaction{}, fmt.Errorf("cannot apply %s of %s to goal %q, at most %s: %w", t, amount, id, g.SavedAmount, ErrBelowZero)
	}

	saved := decimal.Min(decimal.Max(raw, decimal.Zero), g.TargetAmount)
	if !saved.Equal(raw) {
		// only reachable if the goal was out of bounds before the transaction.
		l.log.Error().Str("goal", id).Stringer("computed", raw).Stringer("clamped", saved).Msg("saved amount clamped into bounds")
	}

	txID, err := l.newID()
	if err != nil {
		return Transaction{}, fmt.Errorf("cannot apply %s to goal %q: %w", t, id, err)
	}
	now := l.now()
	tx := Transaction{ID: txID, Amount: amount, Type: t, Date: now}
	next := g.clone()
	next.SavedAmount = saved
	next.UpdatedAt = now
	next.Transactions = append(next.Transactions, tx)
	l.goals[i] = next

	l.log.Debug().Str("goal", id).Str("type", string(t)).Stringer("amount", amount).Msg("transaction applied")
	l.persist()
	return tx, nil
}

// MoveUp swaps the goal with its predecessor. It reports whether the order changed.
func (l *Ledger) MoveUp(id string) (bool, error) {
	i := l.index(id)
	if i < 0 {
		return false, fmt.Errorf("cannot move goal %q: %w", id, ErrNotFound)
	}
	if i == 0 {
		return false, nil
	}
	l.goals[i-1], l.goals[i] = l.goals[i], l.goals[i-1]
	l.persist()
	return true, nil
}

// MoveDown swaps the goal with its successor. It reports whether the order changed.
func (l *Ledger) MoveDown(id string) (bool, error) {
	i := l.index(id)
	if i < 0 {
		return false, fmt.Errorf("cannot move goal %q: %w", id, ErrNotFound)
	}
	if i == len(l.goals)-1 {
		return false, nil
	}
	l.goals[i], l.goals[i+1] = l.goals[i+1], l.goals[i]
	l.persist()
	return true, nil
}

// Reorder sorts the goals to follow the relative order of 'ids'.
//
// The sort is stable and goals missing from 'ids' sort as if they were at
// position 0.
func (l *Ledger) Reorder(ids ...string) {
	position := make(map[string]int, len(ids))
	for i, id := range ids {
		position[id] = i
	}
	slices.SortStableFunc(l.goals, func(a, b Goal) int {
		return cmp.Compare(position[a.ID], position[b.ID])
	})
	l.persist()
}
