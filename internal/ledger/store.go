// Package ledger holds the authoritative in-memory collection of journal
// entries for the running session and the filtering applied to it for
// display. The store performs no aggregation; see internal/report.
package ledger

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"spolek/internal/core"
)

// Store is the session ledger. It is safe for concurrent use; every other
// component treats its contents as read-only input. Contents are not
// persisted; the lifecycle is the running process.
type Store struct {
	mu    sync.Mutex
	items []core.Transaction
}

func NewStore() *Store {
	return &Store{}
}

// Add validates the entry, assigns a fresh unique ID and inserts it. The
// collection is re-sorted descending by date after every insert; entries on
// the same date keep their relative insertion order. Duplicate content is
// allowed here, duplicate suppression belongs to the import reconciler.
func (s *Store) Add(t core.Transaction) (core.Transaction, error) {
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}
	t.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, t)
	sort.SliceStable(s.items, func(i, j int) bool {
		return s.items[i].Date.After(s.items[j].Date.Time)
	})
	return t, nil
}

// Remove deletes the entry with the given ID. A missing ID is a no-op and
// reports false.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.items {
		if t.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// List returns a copy of the full ordered collection.
func (s *Store) List() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Seed inserts demo entries at startup. Invalid entries are skipped.
func (s *Store) Seed(entries []core.Transaction) int {
	n := 0
	for _, e := range entries {
		if _, err := s.Add(e); err == nil {
			n++
		}
	}
	return n
}
