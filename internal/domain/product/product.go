package product

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/xenking/pos-engine/internal/domain/fault"
)

// ErrNotFound is returned when a requested product does not exist in the store.
var ErrNotFound = fault.NotFound("product not found")

// Product is a sellable catalog item of a store. Stock is owned by the stock
// ledger and is only informational here.
type Product struct {
	ID       string
	StoreID  string
	Name     string
	Barcode  string
	Price    decimal.Decimal
	Stock    int
	IsActive bool
}

// Repository defines read operations for the product catalog.
type Repository interface {
	GetByID(ctx context.Context, storeID, id string) (*Product, error)
	GetByIDs(ctx context.Context, storeID string, ids []string) ([]Product, error)
}
