// Package voucher implements store discount codes and their usage counter.
package voucher

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xenking/pos-engine/internal/domain/fault"
)

// Type enumerates the supported voucher discount strategies.
type Type string

const (
	// TypePercentage discounts a percentage of the purchase amount.
	TypePercentage Type = "percentage"
	// TypeFixed discounts a fixed amount.
	TypeFixed Type = "fixed"
)

var (
	// ErrNotFound is returned for unknown or cross-store voucher codes.
	ErrNotFound = fault.NotFound("voucher not found")
	// ErrInactive is returned when a voucher is disabled or outside its validity window.
	ErrInactive = fault.Validation("voucher expired or inactive")
	// ErrUsageLimitReached is returned when a voucher has no uses left.
	ErrUsageLimitReached = fault.Validation("voucher usage limit reached")
	// ErrMinPurchase is returned when the purchase amount is below the voucher minimum.
	ErrMinPurchase = fault.Validation("minimum purchase not met")
	// ErrDuplicateCode is returned when creating a voucher whose code the store already uses.
	ErrDuplicateCode = fault.Conflict("voucher code already exists")
)

var hundred = decimal.NewFromInt(100)

// Voucher is a discount code owned by a store. StartDate and EndDate are
// calendar dates; the window is inclusive on both ends.
type Voucher struct {
	ID          string
	StoreID     string
	Code        string
	Barcode     string
	Name        string
	Description string
	Type        Type
	Value       decimal.Decimal
	MinPurchase decimal.Decimal
	MaxDiscount *decimal.Decimal
	UsageLimit  *int
	UsedCount   int
	StartDate   time.Time
	EndDate     time.Time
	IsActive    bool
}

// IsValid reports whether the voucher is active and today falls inside its
// validity window.
func (v *Voucher) IsValid(today time.Time) bool {
	if !v.IsActive {
		return false
	}
	d := dateOf(today)
	return !d.Before(dateOf(v.StartDate)) && !d.After(dateOf(v.EndDate))
}

// IsUsable reports whether the voucher still has uses left.
func (v *Voucher) IsUsable() bool {
	return v.UsageLimit == nil || v.UsedCount < *v.UsageLimit
}

// Discount returns the unrounded discount for a purchase amount, or zero
// when the amount is below the minimum purchase.
func (v *Voucher) Discount(amount decimal.Decimal) decimal.Decimal {
	if amount.LessThan(v.MinPurchase) {
		return decimal.Zero
	}

	var d decimal.Decimal
	switch v.Type {
	case TypePercentage:
		d = amount.Mul(v.Value).Div(hundred)
	default:
		d = v.Value
	}

	if v.MaxDiscount != nil && d.GreaterThan(*v.MaxDiscount) {
		d = *v.MaxDiscount
	}
	return d
}

// Applicable reports whether the voucher applies to a purchase on today.
func (v *Voucher) Applicable(today time.Time, amount decimal.Decimal) bool {
	return v.IsValid(today) && v.IsUsable() && !amount.LessThan(v.MinPurchase)
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Repository provides lookup, creation and the atomic usage counter.
type Repository interface {
	// FindByCode matches code case-insensitively within the store. Inside a
	// unit of work the voucher row stays locked until the unit ends.
	FindByCode(ctx context.Context, storeID, code string) (*Voucher, error)
	FindByBarcode(ctx context.Context, storeID, barcode string) (*Voucher, error)
	Create(ctx context.Context, v *Voucher) error
	// IncrementUsage adds one use, failing with ErrUsageLimitReached when
	// the limit has already been reached.
	IncrementUsage(ctx context.Context, id string) error
}
