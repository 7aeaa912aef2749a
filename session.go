package savings

import (
	"github.com/shopspring/decimal"
)

// Session binds a Ledger to its Store for an interactive front end.
//
// The state is loaded once when the session is created. After every successful
// mutation, subscribers are notified synchronously with a snapshot of the
// goals, before the mutating call returns.
type Session struct {
	store       Store
	ledger      *Ledger
	subscribers map[int]func([]Goal)
	next        int
}

// NewSession loads the goals from 'store' and returns a session that persists
// every mutation back to it.
func NewSession(store Store, opts ...Option) *Session {
	opts = append(opts, WithPersister(store))
	return &Session{
		store:       store,
		ledger:      NewLedger(store.Load(), opts...),
		subscribers: make(map[int]func([]Goal)),
	}
}

// Subscribe registers fn to be called after each change. The returned function
// cancels the subscription.
func (s *Session) Subscribe(fn func([]Goal)) (cancel func()) {
	id := s.next
	s.next++
	s.subscribers[id] = fn
	return func() { delete(s.subscribers, id) }
}

func (s *Session) notify() {
	if len(s.subscribers) == 0 {
		return
	}
	goals := s.ledger.Goals()
	for i := range s.next {
		if fn, ok := s.subscribers[i]; ok {
			fn(goals)
		}
	}
}

// notifyOn notifies subscribers if err is nil and returns it.
func (s *Session) notifyOn(err error) error {
	if err == nil {
		s.notify()
	}
	return err
}

// Refresh reloads the goals from the store, dropping the in-memory state.
func (s *Session) Refresh() {
	s.ledger.load(s.store.Load())
	s.notify()
}

// Goals returns the goals in display order.
func (s *Session) Goals() []Goal { return s.ledger.Goals() }

// Get returns the goal with this id.
func (s *Session) Get(id string) (Goal, bool) { return s.ledger.Get(id) }

// Create see [Ledger.Create].
func (s *Session) Create(data GoalData) (Goal, error) {
	g, err := s.ledger.Create(data)
	return g, s.notifyOn(err)
}

// Edit see [Ledger.Edit].
func (s *Session) Edit(id string, patch GoalPatch) error {
	return s.notifyOn(s.ledger.Edit(id, patch))
}

// Delete see [Ledger.Delete].
func (s *Session) Delete(id string) error {
	return s.notifyOn(s.ledger.Delete(id))
}

// Apply see [Ledger.Apply].
func (s *Session) Apply(id string, amount decimal.Decimal, t TxType) (Transaction, error) {
	tx, err := s.ledger.Apply(id, amount, t)
	return tx, s.notifyOn(err)
}

// MoveUp see [Ledger.MoveUp].
func (s *Session) MoveUp(id string) (bool, error) {
	moved, err := s.ledger.MoveUp(id)
	if moved {
		s.notify()
	}
	return moved, err
}

// MoveDown see [Ledger.MoveDown].
func (s *Session) MoveDown(id string) (bool, error) {
	moved, err := s.ledger.MoveDown(id)
	if moved {
		s.notify()
	}
	return moved, err
}

// Reorder see [Ledger.Reorder].
func (s *Session) Reorder(ids ...string) {
	s.ledger.Reorder(ids...)
	s.notify()
}
