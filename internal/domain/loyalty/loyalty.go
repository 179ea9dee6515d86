// Package loyalty implements the customer points ledger and its audit trail.
package loyalty

import (
	"context"
	"fmt"
	"time"

	"github.com/xenking/pos-engine/internal/domain/fault"
)

// Kind classifies a points history entry.
type Kind string

const (
	KindEarned   Kind = "earned"
	KindRedeemed Kind = "redeemed"
	KindAdjusted Kind = "adjusted"
	KindRefunded Kind = "refunded"
)

// ErrCustomerNotFound is returned for unknown or cross-store customers.
var ErrCustomerNotFound = fault.NotFound("customer not found")

// Customer is a store customer holding a points balance.
type Customer struct {
	ID      string
	StoreID string
	Name    string
	Phone   string
	Email   string
	Points  int
}

// Entry is one immutable points history row. Points is signed; BalanceAfter
// is the customer balance right after the entry was applied.
type Entry struct {
	ID            string
	CustomerID    string
	Kind          Kind
	Points        int
	BalanceAfter  int
	TransactionID string
	Notes         string
	CreatedBy     string
	CreatedAt     time.Time
}

// Change describes one balance mutation. Points is always positive; the
// direction comes from the ledger operation.
type Change struct {
	CustomerID    string
	Points        int
	Kind          Kind
	TransactionID string
	Notes         string
	ActorID       string
	At            time.Time
}

// InsufficientPointsError is returned when a deduction exceeds the balance.
type InsufficientPointsError struct {
	CustomerID string
	Requested  int
	Balance    int
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("insufficient points for customer %s: requested %d, balance %d",
		e.CustomerID, e.Requested, e.Balance)
}

func (e *InsufficientPointsError) Unwrap() error { return fault.ErrInsufficientBalance }

// Ledger mutates customer balances. Earn and Redeem change the balance and
// append the history entry in one atomic step.
type Ledger interface {
	// Customer loads a customer of the store. Inside a unit of work the
	// customer row stays locked until the unit ends.
	Customer(ctx context.Context, storeID, id string) (*Customer, error)
	// Earn adds c.Points to the balance.
	Earn(ctx context.Context, c Change) (Entry, error)
	// Redeem deducts c.Points from the balance, failing with
	// *InsufficientPointsError when the balance is lower.
	Redeem(ctx context.Context, c Change) (Entry, error)
	// History lists entries of a customer, newest first.
	History(ctx context.Context, customerID string, limit int) ([]Entry, error)
}

// Validate checks a change before it reaches a ledger.
func (c Change) Validate() error {
	if c.CustomerID == "" {
		return fault.Validation("customer id is required")
	}
	if c.Points <= 0 {
		return fault.Validation("points must be positive, got %d", c.Points)
	}
	switch c.Kind {
	case KindEarned, KindRedeemed, KindAdjusted, KindRefunded:
		return nil
	default:
		return fault.Validation("unknown points entry kind %q", c.Kind)
	}
}
