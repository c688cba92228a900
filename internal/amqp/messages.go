package amqp

import (
	"encoding/json"
	"time"
)

// Ledger mutation actions carried on the wire.
const (
	ActionCreated = "entry.created"
	ActionRemoved = "entry.removed"
)

// LedgerEventMessage announces one journal mutation to the audit consumer.
// It carries a denormalized copy of the entry because the journal is
// in-memory and gone by the time the consumer runs.
type LedgerEventMessage struct {
	EntryID     string    `json:"entry_id"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	AmountCents int64     `json:"amount_cents"`
	Date        string    `json:"date"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func NewLedgerEventMessage(entryID, action, description string, amountCents int64, date string) *LedgerEventMessage {
	return &LedgerEventMessage{
		EntryID:     entryID,
		Action:      action,
		Description: description,
		AmountCents: amountCents,
		Date:        date,
		OccurredAt:  time.Now(),
	}
}

func (m *LedgerEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func LedgerEventMessageFromJSON(data []byte) (*LedgerEventMessage, error) {
	var msg LedgerEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
