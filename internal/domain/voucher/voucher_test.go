package voucher

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/pos-engine/internal/domain/fault"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func ptr[T any](v T) *T { return &v }

type mockVoucherRepo struct {
	byCode    map[string]*Voucher
	byBarcode map[string]*Voucher
	err       error
}

func (m *mockVoucherRepo) FindByCode(_ context.Context, _, code string) (*Voucher, error) {
	if m.err != nil {
		return nil, m.err
	}
	v, ok := m.byCode[strings.ToUpper(code)]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (m *mockVoucherRepo) FindByBarcode(_ context.Context, _, barcode string) (*Voucher, error) {
	v, ok := m.byBarcode[barcode]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (m *mockVoucherRepo) Create(_ context.Context, _ *Voucher) error { return nil }

func (m *mockVoucherRepo) IncrementUsage(_ context.Context, _ string) error { return nil }

func TestVoucher_IsValid(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		active bool
		today  time.Time
		want   bool
	}{
		{name: "inside window", active: true, today: time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC), want: true},
		{name: "first day", active: true, today: start, want: true},
		{name: "last day late evening", active: true, today: time.Date(2025, 6, 30, 23, 59, 0, 0, time.UTC), want: true},
		{name: "day before start", active: true, today: start.AddDate(0, 0, -1), want: false},
		{name: "day after end", active: true, today: end.AddDate(0, 0, 1), want: false},
		{name: "inactive", active: false, today: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &Voucher{IsActive: tt.active, StartDate: start, EndDate: end}
			assert.Equal(t, tt.want, v.IsValid(tt.today))
		})
	}
}

func TestVoucher_IsUsable(t *testing.T) {
	assert.True(t, (&Voucher{UsedCount: 1000}).IsUsable())
	assert.True(t, (&Voucher{UsageLimit: ptr(2), UsedCount: 1}).IsUsable())
	assert.False(t, (&Voucher{UsageLimit: ptr(2), UsedCount: 2}).IsUsable())
}

func TestVoucher_Discount(t *testing.T) {
	tests := []struct {
		name    string
		voucher Voucher
		amount  decimal.Decimal
		want    decimal.Decimal
	}{
		{
			name:    "fixed",
			voucher: Voucher{Type: TypeFixed, Value: d("5000")},
			amount:  d("25000"),
			want:    d("5000"),
		},
		{
			name:    "percentage",
			voucher: Voucher{Type: TypePercentage, Value: d("15")},
			amount:  d("33333"),
			want:    d("4999.95"),
		},
		{
			name:    "below minimum purchase",
			voucher: Voucher{Type: TypeFixed, Value: d("5000"), MinPurchase: d("20000")},
			amount:  d("19999.99"),
			want:    d("0"),
		},
		{
			name:    "exactly minimum purchase",
			voucher: Voucher{Type: TypeFixed, Value: d("5000"), MinPurchase: d("20000")},
			amount:  d("20000"),
			want:    d("5000"),
		},
		{
			name:    "capped by max discount",
			voucher: Voucher{Type: TypePercentage, Value: d("50"), MaxDiscount: ptr(d("7500"))},
			amount:  d("40000"),
			want:    d("7500"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.voucher.Discount(tt.amount)
			assert.True(t, tt.want.Equal(got), "expected %s, got %s", tt.want, got)
		})
	}
}

func TestService_Validate(t *testing.T) {
	fixedNow := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	window := func(v *Voucher) *Voucher {
		v.IsActive = true
		v.StartDate = fixedNow.AddDate(0, 0, -1)
		v.EndDate = fixedNow.AddDate(0, 0, 1)
		return v
	}

	hemat := window(&Voucher{Code: "HEMAT", Barcode: "VCHABCDEFGHIJ", Type: TypeFixed, Value: d("5000"), MinPurchase: d("20000")})
	expired := &Voucher{Code: "OLD", IsActive: true, Type: TypeFixed, Value: d("1"),
		StartDate: fixedNow.AddDate(0, -2, 0), EndDate: fixedNow.AddDate(0, -1, 0)}
	usedUp := window(&Voucher{Code: "ONCE", Type: TypeFixed, Value: d("1"), UsageLimit: ptr(1), UsedCount: 1})

	repo := &mockVoucherRepo{
		byCode:    map[string]*Voucher{"HEMAT": hemat, "OLD": expired, "ONCE": usedUp},
		byBarcode: map[string]*Voucher{"VCHABCDEFGHIJ": hemat},
	}

	tests := []struct {
		name     string
		repo     *mockVoucherRepo
		code     string
		subtotal decimal.Decimal
		want     decimal.Decimal
		wantErr  error
		internal bool
	}{
		{name: "by code case insensitive", repo: repo, code: "hemat", subtotal: d("25000"), want: d("5000")},
		{name: "by barcode", repo: repo, code: "VCHABCDEFGHIJ", subtotal: d("25000"), want: d("5000")},
		{name: "unknown code", repo: repo, code: "NOPE", subtotal: d("25000"), wantErr: ErrNotFound},
		{name: "expired", repo: repo, code: "OLD", subtotal: d("25000"), wantErr: ErrInactive},
		{name: "usage limit reached", repo: repo, code: "ONCE", subtotal: d("25000"), wantErr: ErrUsageLimitReached},
		{name: "minimum purchase not met", repo: repo, code: "HEMAT", subtotal: d("100"), wantErr: ErrMinPurchase},
		{name: "empty code", repo: repo, code: "  ", subtotal: d("100"), wantErr: fault.ErrValidation},
		{name: "repository failure", repo: &mockVoucherRepo{err: errors.New("db down")}, code: "HEMAT", subtotal: d("100"), internal: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.repo)
			svc.now = func() time.Time { return fixedNow }

			got, err := svc.Validate(context.Background(), "1", tt.code, tt.subtotal)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
				return
			}
			if tt.internal {
				require.Error(t, err)
				assert.False(t, fault.IsDomain(err))
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.Discount), "expected %s, got %s", tt.want, got.Discount)
		})
	}
}

func TestPrepare(t *testing.T) {
	v := &Voucher{
		StoreID:   "1",
		Code:      " pts123 ",
		Type:      TypeFixed,
		Value:     d("1000"),
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, Prepare(v))
	assert.Equal(t, "PTS123", v.Code)
	assert.NotEmpty(t, v.ID)
	assert.Len(t, v.Barcode, 13)
	assert.True(t, strings.HasPrefix(v.Barcode, "VCH"))

	bad := *v
	bad.Value = d("150")
	bad.Type = TypePercentage
	assert.True(t, errors.Is(Prepare(&bad), fault.ErrValidation))
}

func TestRandomCode(t *testing.T) {
	code := RandomCode(32)
	require.Len(t, code, 32)
	for _, r := range code {
		assert.True(t, strings.ContainsRune(codeAlphabet, r), "unexpected rune %q", r)
	}
}
