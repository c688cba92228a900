// Package storage is the SQLite persistence layer: the compliance checklist
// and the audit log live here. The journal itself is deliberately not
// persisted.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"spolek/internal/checklist"

	_ "modernc.org/sqlite"
)

// AuditEvent is one recorded ledger mutation.
type AuditEvent struct {
	ID          int64
	EntryID     string
	Action      string
	Description string
	AmountCents int64
	EntryDate   string
	OccurredAt  time.Time
}

type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database, applies migrations and seeds the
// default checklist items when they are missing.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	repo := &SQLiteRepository{db: db}
	if err := repo.seedChecklist(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed checklist: %w", err)
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *SQLiteRepository) seedChecklist(ctx context.Context) error {
	for i, it := range checklist.Defaults() {
		_, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO checklist_items (id, category, text, checked, position)
			 VALUES (?, ?, ?, 0, ?)`,
			it.ID, string(it.Category), it.Text, i)
		if err != nil {
			return fmt.Errorf("insert item %s: %w", it.ID, err)
		}
	}
	return nil
}

// ListChecklist returns all checklist items in seed order.
func (r *SQLiteRepository) ListChecklist(ctx context.Context) ([]checklist.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, category, text, checked FROM checklist_items ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query checklist: %w", err)
	}
	defer rows.Close()

	var items []checklist.Item
	for rows.Next() {
		var it checklist.Item
		var checked int
		if err := rows.Scan(&it.ID, &it.Category, &it.Text, &checked); err != nil {
			return nil, fmt.Errorf("scan checklist row: %w", err)
		}
		it.Checked = checked != 0
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checklist rows: %w", err)
	}
	return items, nil
}

// SetChecked updates the checked flag of one item.
func (r *SQLiteRepository) SetChecked(ctx context.Context, id string, checked bool) error {
	val := 0
	if checked {
		val = 1
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE checklist_items SET checked = ? WHERE id = ?`, val, id)
	if err != nil {
		return fmt.Errorf("update item %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return checklist.ErrNotFound
	}
	return nil
}

// ToggleChecked flips the checked flag of one item and returns the new
// state.
func (r *SQLiteRepository) ToggleChecked(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE checklist_items SET checked = 1 - checked WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("toggle item %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return false, checklist.ErrNotFound
	}

	var checked int
	err = r.db.QueryRowContext(ctx,
		`SELECT checked FROM checklist_items WHERE id = ?`, id).Scan(&checked)
	if err != nil {
		return false, fmt.Errorf("read item %s: %w", id, err)
	}
	return checked != 0, nil
}

// RecordAuditEvent appends one ledger mutation to the audit log.
func (r *SQLiteRepository) RecordAuditEvent(ctx context.Context, ev AuditEvent) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO audit_log (entry_id, action, description, amount_cents, entry_date, occurred_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		ev.EntryID, ev.Action, ev.Description, ev.AmountCents, ev.EntryDate,
		ev.OccurredAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// ListAuditEvents returns the most recent events, newest first.
func (r *SQLiteRepository) ListAuditEvents(ctx context.Context, limit int) ([]AuditEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, entry_id, action, description, amount_cents, entry_date, occurred_at
		 FROM audit_log ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	defer rows.Close()

	var events []AuditEvent
	for rows.Next() {
		var ev AuditEvent
		var occurred string
		if err := rows.Scan(&ev.ID, &ev.EntryID, &ev.Action, &ev.Description,
			&ev.AmountCents, &ev.EntryDate, &occurred); err != nil {
			return nil, fmt.Errorf("scan audit row: %w", err)
		}
		ev.OccurredAt, err = time.Parse(time.RFC3339, occurred)
		if err != nil {
			return nil, fmt.Errorf("parse occurred_at %q: %w", occurred, err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit rows: %w", err)
	}
	return events, nil
}
