// Package services orchestrates the domain packages: journal mutations with
// their audit events, and the import session lifecycle.
package services

import (
	"context"
	"log/slog"

	"spolek/internal/amqp"
	"spolek/internal/core"
	"spolek/internal/ledger"
	"spolek/internal/report"
)

// EventPublisher is the slice of the AMQP client the service needs. A nil
// publisher disables the audit trail.
type EventPublisher interface {
	PublishLedgerEvent(ctx context.Context, msg *amqp.LedgerEventMessage) error
}

// LedgerService wraps the journal store and announces mutations to the
// audit pipeline. Publishing is fire-and-forget: a broker failure never
// fails the journal operation.
type LedgerService struct {
	store *ledger.Store
	pub   EventPublisher
}

func NewLedgerService(store *ledger.Store, pub EventPublisher) *LedgerService {
	return &LedgerService{store: store, pub: pub}
}

// Create validates and adds one entry, then publishes an audit event.
func (s *LedgerService) Create(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	created, err := s.store.Add(tx)
	if err != nil {
		return core.Transaction{}, err
	}
	s.publish(ctx, amqp.ActionCreated, created)
	return created, nil
}

// Remove deletes one entry by id. Removing an absent id is a no-op.
func (s *LedgerService) Remove(ctx context.Context, id string) bool {
	// Snapshot the entry first so the audit event can carry its fields.
	var removed core.Transaction
	for _, t := range s.store.List() {
		if t.ID == id {
			removed = t
			break
		}
	}
	if !s.store.Remove(id) {
		return false
	}
	s.publish(ctx, amqp.ActionRemoved, removed)
	return true
}

// List returns the journal snapshot, newest first.
func (s *LedgerService) List() []core.Transaction {
	return s.store.List()
}

// Filter applies the criteria to the journal snapshot.
func (s *LedgerService) Filter(c ledger.Criteria) []core.Transaction {
	return c.Apply(s.store.List())
}

// Summary recomputes the derived figures from the current snapshot.
func (s *LedgerService) Summary() report.Summary {
	return report.Compute(s.store.List())
}

func (s *LedgerService) publish(ctx context.Context, action string, tx core.Transaction) {
	if s.pub == nil {
		return
	}
	msg := amqp.NewLedgerEventMessage(tx.ID, action, tx.Description, tx.Amount.Cents, tx.Date.ISO())
	if err := s.pub.PublishLedgerEvent(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "Failed to publish ledger event",
			"entry_id", tx.ID,
			"action", action,
			"error", err)
		// The journal mutation already happened; the audit trail is best
		// effort.
	}
}
