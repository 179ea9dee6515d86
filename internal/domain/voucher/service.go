package voucher

import (
	"context"
	"crypto/rand"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/pos-engine/internal/domain/fault"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Applied is a voucher together with the discount it gives for a purchase.
type Applied struct {
	Voucher  *Voucher
	Discount decimal.Decimal
}

// Service answers voucher lookups for the checkout screen.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a Service backed by the given Repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Validate finds a voucher by code or barcode and checks that it can be
// applied to a purchase of subtotal. It does not consume a use.
func (s *Service) Validate(ctx context.Context, storeID, code string, subtotal decimal.Decimal) (*Applied, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fault.Validation("voucher code is required")
	}
	if subtotal.IsNegative() {
		return nil, fault.Validation("subtotal must not be negative")
	}

	v, err := s.repo.FindByCode(ctx, storeID, code)
	if errors.Is(err, ErrNotFound) {
		v, err = s.repo.FindByBarcode(ctx, storeID, code)
	}
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "lookup voucher")
	}

	switch {
	case !v.IsValid(s.now()):
		return nil, ErrInactive
	case !v.IsUsable():
		return nil, ErrUsageLimitReached
	case subtotal.LessThan(v.MinPurchase):
		return nil, ErrMinPurchase
	}

	return &Applied{Voucher: v, Discount: v.Discount(subtotal)}, nil
}

// FindByBarcode returns the store voucher printed with barcode.
func (s *Service) FindByBarcode(ctx context.Context, storeID, barcode string) (*Voucher, error) {
	if strings.TrimSpace(barcode) == "" {
		return nil, fault.Validation("barcode is required")
	}
	return s.repo.FindByBarcode(ctx, storeID, barcode)
}

// Prepare validates a new voucher and fills its id, upper-cased code and
// generated barcode.
func Prepare(v *Voucher) error {
	v.Code = strings.ToUpper(strings.TrimSpace(v.Code))
	switch {
	case v.StoreID == "":
		return fault.Validation("voucher store is required")
	case v.Code == "":
		return fault.Validation("voucher code is required")
	case v.Type != TypePercentage && v.Type != TypeFixed:
		return fault.Validation("unknown voucher type %q", v.Type)
	case !v.Value.IsPositive():
		return fault.Validation("voucher value must be positive")
	case v.Type == TypePercentage && v.Value.GreaterThan(hundred):
		return fault.Validation("percentage voucher value must not exceed 100")
	case v.EndDate.Before(v.StartDate):
		return fault.Validation("voucher end date is before start date")
	}
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.Barcode == "" {
		v.Barcode = "VCH" + RandomCode(10)
	}
	return nil
}

// RandomCode returns n random characters from the upper-case alphanumeric set.
func RandomCode(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf)
}
