// Package store holds the store profile and its key/value settings.
package store

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/xenking/pos-engine/internal/domain/fault"
)

// Setting keys read by the transaction engine.
const (
	SettingPointsRate      = "points_rate"
	SettingPointsValueRate = "points_value_rate"
)

// DefaultPointsRate is the currency amount that earns one loyalty point.
const DefaultPointsRate = 1000

// ErrNotFound is returned when the store does not exist.
var ErrNotFound = fault.NotFound("store not found")

// Store is the merchant profile rendered on receipts.
type Store struct {
	ID      string
	Name    string
	Slug    string
	Type    string
	Address string
	Phone   string
	Logo    string
}

// Settings is the raw key/value configuration of a store.
type Settings map[string]string

// PointsRate returns the subtotal amount per earned point. Missing, malformed
// or non-positive values fall back to DefaultPointsRate.
func (s Settings) PointsRate() decimal.Decimal {
	if v, ok := s[SettingPointsRate]; ok {
		if d, err := decimal.NewFromString(v); err == nil && d.IsPositive() {
			return d
		}
	}
	return decimal.NewFromInt(DefaultPointsRate)
}

// PointsValueRate returns the currency value of one redeemed point when
// converting points into a voucher. Defaults to 1.
func (s Settings) PointsValueRate() decimal.Decimal {
	if v, ok := s[SettingPointsValueRate]; ok {
		if d, err := decimal.NewFromString(v); err == nil && d.IsPositive() {
			return d
		}
	}
	return decimal.NewFromInt(1)
}

// Repository provides read access to stores and their settings.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Store, error)
	Settings(ctx context.Context, storeID string) (Settings, error)
}
