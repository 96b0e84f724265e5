// Package events announces committed ledger changes to other systems.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofrs/uuid/v5"
)

type Kind string

const (
	KindCategoryCreated    Kind = "category.created"
	KindTransactionCreated Kind = "transaction.created"
	KindBudgetUpserted     Kind = "budget.upserted"
)

// LedgerEvent identifies a record that changed. Consumers read the record
// itself from the ledger.
type LedgerEvent struct {
	Kind       Kind      `json:"kind"`
	ID         uuid.UUID `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewLedgerEvent(kind Kind, id uuid.UUID) LedgerEvent {
	return LedgerEvent{Kind: kind, ID: id, OccurredAt: time.Now().UTC()}
}

func (e LedgerEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func LedgerEventFromJSON(data []byte) (*LedgerEvent, error) {
	var e LedgerEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// Publisher delivers ledger events. Implementations must be safe for
// concurrent use.
type Publisher interface {
	Publish(ctx context.Context, event LedgerEvent) error
	Close() error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, LedgerEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
