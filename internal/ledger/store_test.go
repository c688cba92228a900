package ledger

import (
	"testing"

	"spolek/internal/core"
)

func entry(date string, desc string, cents int64) core.Transaction {
	d, _ := core.ParseDate(date)
	return core.Transaction{
		Date:         d,
		Description:  desc,
		Amount:       core.Money{Cents: cents},
		Type:         core.Income,
		ActivityType: core.Main,
		TaxCategory:  core.NonTaxable,
	}
}

func TestAddAssignsUniqueIDs(t *testing.T) {
	s := NewStore()
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		tx, err := s.Add(entry("2024-01-15", "Příspěvek", 100))
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if tx.ID == "" || seen[tx.ID] {
			t.Fatalf("id %q not fresh and unique", tx.ID)
		}
		seen[tx.ID] = true
	}
}

func TestAddKeepsDescendingDateOrder(t *testing.T) {
	s := NewStore()
	dates := []string{"2024-01-15", "2024-03-05", "2024-02-10", "2024-03-05", "2023-12-31"}
	for i, d := range dates {
		if _, err := s.Add(entry(d, "e", int64(i+1)*100)); err != nil {
			t.Fatalf("add %s: %v", d, err)
		}
		// Invariant holds after every insert, not just at the end.
		items := s.List()
		for j := 1; j < len(items); j++ {
			if items[j-1].Date.Before(items[j].Date.Time) {
				t.Fatalf("after insert %d: not descending at %d", i, j)
			}
		}
	}

	items := s.List()
	got := make([]string, len(items))
	for i, it := range items {
		got[i] = it.Date.ISO()
	}
	want := []string{"2024-03-05", "2024-03-05", "2024-02-10", "2024-01-15", "2023-12-31"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
	// Stable ties: the first 2024-03-05 inserted (amount 200) stays first.
	if items[0].Amount.Cents != 200 || items[1].Amount.Cents != 400 {
		t.Fatalf("tie order not preserved: %d, %d", items[0].Amount.Cents, items[1].Amount.Cents)
	}
}

func TestAddRejectsInvalid(t *testing.T) {
	s := NewStore()
	bad := entry("2024-01-15", "x", 100)
	bad.Amount = core.Money{}
	if _, err := s.Add(bad); err != core.ErrInvalidAmount {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("rejected entry must not be stored")
	}
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	s := NewStore()
	a, _ := s.Add(entry("2024-01-15", "a", 100))
	b, _ := s.Add(entry("2024-02-10", "b", 200))

	if s.Remove("no-such-id") {
		t.Fatalf("removing absent id must report false")
	}
	items := s.List()
	if len(items) != 2 || items[0].ID != b.ID || items[1].ID != a.ID {
		t.Fatalf("collection changed by absent remove")
	}

	if !s.Remove(a.ID) {
		t.Fatalf("expected remove of %s to succeed", a.ID)
	}
	if s.Len() != 1 {
		t.Fatalf("expected one entry left, got %d", s.Len())
	}
}

func TestListReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Add(entry("2024-01-15", "a", 100))
	items := s.List()
	items[0].Description = "mutated"
	if s.List()[0].Description != "a" {
		t.Fatalf("List must return a copy")
	}
}

func TestSeedDemoEntries(t *testing.T) {
	s := NewStore()
	if n := s.Seed(DemoEntries()); n != 3 {
		t.Fatalf("seeded %d entries, want 3", n)
	}
	items := s.List()
	if items[0].Description != "Reklamní banner web" {
		t.Fatalf("newest entry first, got %q", items[0].Description)
	}
	if items[2].VariableSymbol != "CASH" || items[2].Amount.Cents != 1500000 {
		t.Fatalf("membership fees entry mangled: %+v", items[2])
	}
}

func TestSeedSkipsInvalid(t *testing.T) {
	s := NewStore()
	bad := entry("2024-01-15", "", 100)
	n := s.Seed([]core.Transaction{entry("2024-01-15", "ok", 100), bad})
	if n != 1 || s.Len() != 1 {
		t.Fatalf("expected 1 seeded entry, got n=%d len=%d", n, s.Len())
	}
}
