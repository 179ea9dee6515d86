// Package stock defines the inventory counter ledger.
package stock

import (
	"context"
	"fmt"
	"slices"

	"github.com/xenking/pos-engine/internal/domain/fault"
)

// Ledger mutates per-product inventory counters. Both operations are single
// atomic counter updates in the backing store, never read-then-write.
type Ledger interface {
	// Decrease takes qty units out of stock. It fails with
	// *InsufficientStockError when fewer than qty units are available.
	Decrease(ctx context.Context, productID string, qty int) error
	// Increase puts qty units back into stock.
	Increase(ctx context.Context, productID string, qty int) error
}

// InsufficientStockError is returned when a decrease would take a product's
// stock below zero.
type InsufficientStockError struct {
	ProductID string
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d", e.ProductID, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return fault.ErrInsufficientBalance }

// Movement is a signed quantity change for one product.
type Movement struct {
	ProductID string
	Delta     int
}

// Apply nets the movements per product and runs them against the ledger in
// product ID order. Every caller touching several products therefore takes
// their row locks in the same order.
func Apply(ctx context.Context, l Ledger, moves []Movement) error {
	net := make(map[string]int, len(moves))
	for _, m := range moves {
		net[m.ProductID] += m.Delta
	}
	ids := make([]string, 0, len(net))
	for id := range net {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		switch d := net[id]; {
		case d > 0:
			if err := l.Increase(ctx, id, d); err != nil {
				return err
			}
		case d < 0:
			if err := l.Decrease(ctx, id, -d); err != nil {
				return err
			}
		}
	}
	return nil
}
