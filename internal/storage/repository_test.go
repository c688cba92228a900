package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"spolek/internal/checklist"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "spolek.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository() error = %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestChecklistSeeded(t *testing.T) {
	repo := newTestRepo(t)
	items, err := repo.ListChecklist(context.Background())
	if err != nil {
		t.Fatalf("ListChecklist() error = %v", err)
	}
	defaults := checklist.Defaults()
	if len(items) != len(defaults) {
		t.Fatalf("got %d items, want %d", len(items), len(defaults))
	}
	for i, it := range items {
		if it.ID != defaults[i].ID || it.Text != defaults[i].Text || it.Checked {
			t.Errorf("item %d = %+v", i, it)
		}
	}
}

func TestToggleChecked(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	checked, err := repo.ToggleChecked(ctx, "1")
	if err != nil || !checked {
		t.Fatalf("ToggleChecked() = %v, %v", checked, err)
	}
	checked, err = repo.ToggleChecked(ctx, "1")
	if err != nil || checked {
		t.Fatalf("second ToggleChecked() = %v, %v", checked, err)
	}
	if _, err := repo.ToggleChecked(ctx, "missing"); !errors.Is(err, checklist.ErrNotFound) {
		t.Errorf("unknown id error = %v", err)
	}
}

func TestSetChecked(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.SetChecked(ctx, "4", true); err != nil {
		t.Fatalf("SetChecked() error = %v", err)
	}
	items, err := repo.ListChecklist(ctx)
	if err != nil {
		t.Fatalf("ListChecklist() error = %v", err)
	}
	for _, it := range items {
		if it.ID == "4" && !it.Checked {
			t.Error("item 4 not checked after SetChecked")
		}
	}
	if err := repo.SetChecked(ctx, "missing", true); !errors.Is(err, checklist.ErrNotFound) {
		t.Errorf("unknown id error = %v", err)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	if err := repo.SetChecked(ctx, "1", true); err != nil {
		t.Fatal(err)
	}
	// A second seed run must not reset user state.
	if err := repo.seedChecklist(ctx); err != nil {
		t.Fatalf("seedChecklist() error = %v", err)
	}
	items, err := repo.ListChecklist(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != len(checklist.Defaults()) {
		t.Errorf("got %d items after reseed", len(items))
	}
	if !items[0].Checked {
		t.Error("reseed reset the checked flag")
	}
}

func TestAuditLog(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := AuditEvent{
		EntryID:     "abc",
		Action:      "entry.created",
		Description: "Dotace",
		AmountCents: 1500000,
		EntryDate:   "2024-01-15",
		OccurredAt:  time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}
	if err := repo.RecordAuditEvent(ctx, first); err != nil {
		t.Fatalf("RecordAuditEvent() error = %v", err)
	}
	second := first
	second.Action = "entry.removed"
	second.OccurredAt = second.OccurredAt.Add(time.Hour)
	if err := repo.RecordAuditEvent(ctx, second); err != nil {
		t.Fatalf("RecordAuditEvent() error = %v", err)
	}

	events, err := repo.ListAuditEvents(ctx, 10)
	if err != nil {
		t.Fatalf("ListAuditEvents() error = %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// Newest first.
	if events[0].Action != "entry.removed" || events[1].Action != "entry.created" {
		t.Errorf("order = %s, %s", events[0].Action, events[1].Action)
	}
	if !events[1].OccurredAt.Equal(first.OccurredAt) {
		t.Errorf("occurred_at round trip = %v", events[1].OccurredAt)
	}
}
