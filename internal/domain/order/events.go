package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Event types published after a committed transition.
const (
	EventCreated   = "order.created"
	EventUpdated   = "order.updated"
	EventPaid      = "order.paid"
	EventCancelled = "order.cancelled"
)

// Event describes a committed order transition.
type Event struct {
	Type       string
	OrderID    string
	Number     string
	StoreID    string
	CustomerID string
	Status     Status
	Total      decimal.Decimal
	ActorID    string
	OccurredAt time.Time
}

func newEvent(typ string, o *Order, actorID string, at time.Time) Event {
	return Event{
		Type:       typ,
		OrderID:    o.ID,
		Number:     o.Number,
		StoreID:    o.StoreID,
		CustomerID: o.CustomerID,
		Status:     o.Status,
		Total:      o.TotalAmount,
		ActorID:    actorID,
		OccurredAt: at,
	}
}

// Publisher delivers order events to interested parties. Delivery is best
// effort; a failure never undoes the transition.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// SnapshotType selects which receipt rendering of an order is produced.
type SnapshotType string

const (
	SnapshotPending SnapshotType = "pending"
	SnapshotPaid    SnapshotType = "paid"
)

// Snapshotter renders and stores a receipt snapshot of an order.
type Snapshotter interface {
	Generate(ctx context.Context, o *Order, t SnapshotType) error
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, Event) error { return nil }

type nopSnapshotter struct{}

func (nopSnapshotter) Generate(context.Context, *Order, SnapshotType) error { return nil }
