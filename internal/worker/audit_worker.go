// Package worker contains the audit consumer run by the spolek-worker
// binary. It drains ledger events from the broker into the SQLite audit
// log.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"spolek/internal/amqp"
	"spolek/internal/storage"
)

// AuditWorker persists ledger events.
type AuditWorker struct {
	storage *storage.SQLiteRepository
}

func NewAuditWorker(storage *storage.SQLiteRepository) *AuditWorker {
	return &AuditWorker{storage: storage}
}

// HandleLedgerEvent records one event. Returning an error requeues the
// delivery.
func (w *AuditWorker) HandleLedgerEvent(ctx context.Context, msg *amqp.LedgerEventMessage) error {
	if msg.Action != amqp.ActionCreated && msg.Action != amqp.ActionRemoved {
		// Drop unknown actions instead of requeueing them forever.
		slog.WarnContext(ctx, "Ignoring ledger event with unknown action",
			"entry_id", msg.EntryID,
			"action", msg.Action)
		return nil
	}

	ev := storage.AuditEvent{
		EntryID:     msg.EntryID,
		Action:      msg.Action,
		Description: msg.Description,
		AmountCents: msg.AmountCents,
		EntryDate:   msg.Date,
		OccurredAt:  msg.OccurredAt,
	}
	if err := w.storage.RecordAuditEvent(ctx, ev); err != nil {
		return fmt.Errorf("record audit event: %w", err)
	}

	slog.InfoContext(ctx, "Audit event recorded",
		"entry_id", msg.EntryID,
		"action", msg.Action,
		"amount_cents", msg.AmountCents)
	return nil
}

// Run consumes ledger events until the context ends.
func (w *AuditWorker) Run(ctx context.Context, client *amqp.Client) error {
	return client.ConsumeLedgerEvents(ctx, func(msg *amqp.LedgerEventMessage) error {
		return w.HandleLedgerEvent(ctx, msg)
	})
}
