// Package settlement tracks the session-local "already paid" and "already
// received" override sets that feed the dashboard aggregation. Each
// billable or receivable item is either pending or settled; the toggle is
// reversible. The sets are deliberately held in memory only: they reset
// when the process restarts and are never written to the database.
package settlement

import "sync"

// Kind separates received income occurrences from paid expenses and cards.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Store holds per-user settlement sets. Safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	received map[string]map[string]struct{}
	paid     map[string]map[string]struct{}
}

// NewStore creates an empty settlement store.
func NewStore() *Store {
	return &Store{
		received: make(map[string]map[string]struct{}),
		paid:     make(map[string]map[string]struct{}),
	}
}

// Toggle flips the settled state of one item for the user and reports the
// new state: true when the item is now settled.
func (s *Store) Toggle(userID string, kind Kind, itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.userSet(userID, kind)
	if _, settled := set[itemID]; settled {
		delete(set, itemID)
		return false
	}
	set[itemID] = struct{}{}
	return true
}

// Settled reports whether the item is currently marked settled.
func (s *Store) Settled(userID string, kind Kind, itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.userSet(userID, kind)[itemID]
	return ok
}

// Snapshot returns a copy of the user's settled-item set for the given
// kind, suitable for passing into the aggregator.
func (s *Store) Snapshot(userID string, kind Kind) map[string]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.userSet(userID, kind)
	out := make(map[string]struct{}, len(set))
	for id := range set {
		out[id] = struct{}{}
	}
	return out
}

// Reset clears both sets for the user, returning every item to pending.
func (s *Store) Reset(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.received, userID)
	delete(s.paid, userID)
}

// userSet returns the live set for a user and kind, creating it if needed.
// Callers must hold s.mu.
func (s *Store) userSet(userID string, kind Kind) map[string]struct{} {
	byUser := s.paid
	if kind == KindIncome {
		byUser = s.received
	}
	set, ok := byUser[userID]
	if !ok {
		set = make(map[string]struct{})
		byUser[userID] = set
	}
	return set
}
