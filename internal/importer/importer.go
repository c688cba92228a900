// Package importer reconciles externally-sourced transaction drafts (from
// document or spreadsheet extraction) against the session ledger before they
// are materialized. The duplicate flag is advisory; the user decides what
// gets imported.
package importer

import (
	"errors"

	"github.com/google/uuid"

	"spolek/internal/core"
)

// Draft carries the transaction fields of one extracted record, without an
// ID.
type Draft struct {
	Date           core.Date
	Description    string
	Amount         core.Money
	Type           core.TransactionType
	ActivityType   core.ActivityType
	TaxCategory    core.TaxCategory
	VariableSymbol string
}

// Candidate is a draft awaiting user confirmation. It exists only for the
// duration of one import session.
type Candidate struct {
	TempID string
	Draft
	IsDuplicate     bool
	DuplicateReason string
	Selected        bool
}

// Session holds the candidates of one import run until the user confirms or
// cancels.
type Session struct {
	ID         string
	Candidates []Candidate
}

var ErrEmptySession = errors.New("import session has no candidates")

// Reconcile flags each draft against the existing ledger snapshot and
// returns a new session. An existing entry is a duplicate witness when its
// date and absolute amount equal the draft's and either the variable symbol
// or the exact description matches. The scan is linear with first-match
// semantics. Duplicates default to unselected; everything else is selected.
func Reconcile(existing []core.Transaction, drafts []Draft) *Session {
	sess := &Session{
		ID:         uuid.NewString(),
		Candidates: make([]Candidate, 0, len(drafts)),
	}
	for _, d := range drafts {
		c := Candidate{TempID: uuid.NewString(), Draft: d}
		if witness, ok := findDuplicate(existing, d); ok {
			c.IsDuplicate = true
			c.DuplicateReason = "matches entry \"" + witness.Description + "\" from " + witness.Date.ISO()
		}
		c.Selected = !c.IsDuplicate
		sess.Candidates = append(sess.Candidates, c)
	}
	return sess
}

func findDuplicate(existing []core.Transaction, d Draft) (core.Transaction, bool) {
	for _, t := range existing {
		if !t.Date.Equal(d.Date.Time) {
			continue
		}
		if abs(t.Amount.Cents) != abs(d.Amount.Cents) {
			continue
		}
		if (d.VariableSymbol != "" && t.VariableSymbol == d.VariableSymbol) ||
			t.Description == d.Description {
			return t, true
		}
	}
	return core.Transaction{}, false
}

// SetSelected overrides the user's inclusion choice for one candidate. The
// duplicate flag never blocks selection.
func (s *Session) SetSelected(tempID string, selected bool) bool {
	for i := range s.Candidates {
		if s.Candidates[i].TempID == tempID {
			s.Candidates[i].Selected = selected
			return true
		}
	}
	return false
}

// SelectedCount reports how many candidates are currently selected.
func (s *Session) SelectedCount() int {
	n := 0
	for _, c := range s.Candidates {
		if c.Selected {
			n++
		}
	}
	return n
}

// Adder is the slice of the ledger store the confirm step needs.
type Adder interface {
	Add(core.Transaction) (core.Transaction, error)
}

// Confirm materializes every selected candidate into the store, each
// receiving a freshly generated ID from the store itself. Candidates that
// fail validation are skipped and reported; the rest still land. The session
// is spent afterwards.
func (s *Session) Confirm(store Adder) (added []core.Transaction, skipped []Candidate, err error) {
	if len(s.Candidates) == 0 {
		return nil, nil, ErrEmptySession
	}
	for _, c := range s.Candidates {
		if !c.Selected {
			continue
		}
		tx := core.Transaction{
			Date:           c.Date,
			Description:    c.Description,
			Amount:         c.Amount,
			Type:           c.Type,
			ActivityType:   c.ActivityType,
			TaxCategory:    c.TaxCategory,
			VariableSymbol: c.VariableSymbol,
		}
		created, addErr := store.Add(tx)
		if addErr != nil {
			skipped = append(skipped, c)
			continue
		}
		added = append(added, created)
	}
	s.Candidates = nil
	return added, skipped, nil
}

// Cancel discards the session with no effect on the store.
func (s *Session) Cancel() {
	s.Candidates = nil
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
