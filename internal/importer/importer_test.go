package importer

import (
	"testing"

	"spolek/internal/core"
	"spolek/internal/ledger"
)

func existing() []core.Transaction {
	d, _ := core.ParseDate("2024-01-15")
	return []core.Transaction{{
		ID: "t1", Date: d, Description: "Členské příspěvky 2024",
		Amount: core.Money{Cents: 1500000}, Type: core.Income,
		ActivityType: core.Main, TaxCategory: core.NonTaxable,
		VariableSymbol: "CASH",
	}}
}

func draft(date, desc, vs string, cents int64) Draft {
	d, _ := core.ParseDate(date)
	return Draft{
		Date: d, Description: desc, VariableSymbol: vs,
		Amount: core.Money{Cents: cents}, Type: core.Income,
		ActivityType: core.Main, TaxCategory: core.NonTaxable,
	}
}

func TestReconcileFlagsDuplicateBySymbol(t *testing.T) {
	sess := Reconcile(existing(), []Draft{
		draft("2024-01-15", "Jiný popis", "CASH", 1500000),
	})
	c := sess.Candidates[0]
	if !c.IsDuplicate || c.Selected {
		t.Fatalf("expected isDuplicate=true selected=false, got %v/%v", c.IsDuplicate, c.Selected)
	}
	if c.DuplicateReason == "" {
		t.Fatalf("duplicate must carry a reason")
	}
}

func TestReconcileFlagsDuplicateByDescription(t *testing.T) {
	sess := Reconcile(existing(), []Draft{
		draft("2024-01-15", "Členské příspěvky 2024", "", 1500000),
	})
	if !sess.Candidates[0].IsDuplicate {
		t.Fatalf("exact description with equal date+amount must flag a duplicate")
	}
}

func TestReconcileNonDuplicateSelected(t *testing.T) {
	sess := Reconcile(existing(), []Draft{
		draft("2024-05-01", "Unrelated", "", 20000),
	})
	c := sess.Candidates[0]
	if c.IsDuplicate || !c.Selected {
		t.Fatalf("expected isDuplicate=false selected=true, got %v/%v", c.IsDuplicate, c.Selected)
	}
}

func TestReconcileRequiresDateAndAmount(t *testing.T) {
	// Same symbol but different date: not a duplicate.
	sess := Reconcile(existing(), []Draft{
		draft("2024-01-16", "Členské příspěvky 2024", "CASH", 1500000),
	})
	if sess.Candidates[0].IsDuplicate {
		t.Fatalf("different date must not flag")
	}
	// Same date but different amount: not a duplicate.
	sess = Reconcile(existing(), []Draft{
		draft("2024-01-15", "Členské příspěvky 2024", "CASH", 1400000),
	})
	if sess.Candidates[0].IsDuplicate {
		t.Fatalf("different amount must not flag")
	}
}

func TestSetSelectedOverridesAdvisoryFlag(t *testing.T) {
	sess := Reconcile(existing(), []Draft{
		draft("2024-01-15", "Členské příspěvky 2024", "CASH", 1500000),
	})
	id := sess.Candidates[0].TempID
	if !sess.SetSelected(id, true) {
		t.Fatalf("expected SetSelected to find the candidate")
	}
	if sess.SelectedCount() != 1 {
		t.Fatalf("duplicate flag must not block selection")
	}
	if sess.SetSelected("missing", true) {
		t.Fatalf("unknown temp id must report false")
	}
}

func TestConfirmAddsOnlySelected(t *testing.T) {
	store := ledger.NewStore()
	sess := Reconcile(nil, []Draft{
		draft("2024-05-01", "a", "", 10000),
		draft("2024-05-02", "b", "", 20000),
		draft("2024-05-03", "c", "", 30000),
	})
	sess.SetSelected(sess.Candidates[2].TempID, false)

	added, skipped, err := sess.Confirm(store)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if len(added) != 2 || len(skipped) != 0 {
		t.Fatalf("expected 2 added, 0 skipped; got %d/%d", len(added), len(skipped))
	}
	if store.Len() != 2 {
		t.Fatalf("store must grow by exactly the selected count, got %d", store.Len())
	}
	if added[0].ID == "" || added[1].ID == "" || added[0].ID == added[1].ID {
		t.Fatalf("materialized entries must carry fresh unique ids")
	}
	if len(sess.Candidates) != 0 {
		t.Fatalf("session must be spent after confirm")
	}
}

func TestConfirmSkipsInvalidCandidates(t *testing.T) {
	store := ledger.NewStore()
	bad := draft("2024-05-01", "", "", 10000) // empty description fails validation
	sess := Reconcile(nil, []Draft{bad, draft("2024-05-02", "ok", "", 20000)})
	added, skipped, err := sess.Confirm(store)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if len(added) != 1 || len(skipped) != 1 {
		t.Fatalf("expected 1 added, 1 skipped; got %d/%d", len(added), len(skipped))
	}
}

func TestCancelLeavesStoreUntouched(t *testing.T) {
	store := ledger.NewStore()
	sess := Reconcile(nil, []Draft{draft("2024-05-01", "a", "", 10000)})
	sess.Cancel()
	if store.Len() != 0 || len(sess.Candidates) != 0 {
		t.Fatalf("cancel must discard candidates without touching the store")
	}
	if _, _, err := sess.Confirm(store); err != ErrEmptySession {
		t.Fatalf("confirm after cancel must report an empty session, got %v", err)
	}
}
