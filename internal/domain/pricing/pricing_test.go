package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/xenking/pos-engine/internal/domain/voucher"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func ptr[T any](v T) *T { return &v }

func TestRecalculate(t *testing.T) {
	tests := []struct {
		name      string
		subtotal  decimal.Decimal
		tax       decimal.Decimal
		fee       decimal.Decimal
		discount  decimal.Decimal
		wantTax   decimal.Decimal
		wantTotal decimal.Decimal
	}{
		{
			name:      "no tax no fee",
			subtotal:  d("25000"),
			wantTax:   d("0"),
			wantTotal: d("25000"),
		},
		{
			name:      "tax and delivery fee",
			subtotal:  d("25000"),
			tax:       d("10"),
			fee:       d("2000"),
			wantTax:   d("2500"),
			wantTotal: d("29500"),
		},
		{
			name:      "tax rounded to two places",
			subtotal:  d("33.33"),
			tax:       d("11"),
			wantTax:   d("3.67"),
			wantTotal: d("37"),
		},
		{
			name:      "discount larger than amount floors at zero",
			subtotal:  d("1000"),
			tax:       d("10"),
			discount:  d("5000"),
			wantTax:   d("100"),
			wantTotal: d("0"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recalculate(tt.subtotal, tt.tax, tt.fee, tt.discount)
			assert.True(t, tt.wantTax.Equal(got.TaxAmount), "expected tax %s, got %s", tt.wantTax, got.TaxAmount)
			assert.True(t, tt.wantTotal.Equal(got.Total), "expected total %s, got %s", tt.wantTotal, got.Total)
		})
	}
}

func TestCheckout(t *testing.T) {
	fixed5000 := &voucher.Voucher{
		Type:        voucher.TypeFixed,
		Value:       d("5000"),
		MinPurchase: d("20000"),
	}

	tests := []struct {
		name              string
		in                Input
		wantTax           decimal.Decimal
		wantVoucher       decimal.Decimal
		wantPointsUsed    int
		wantTotalDiscount decimal.Decimal
		wantTotal         decimal.Decimal
		wantChange        decimal.Decimal
		wantPointsEarned  int
	}{
		{
			name: "tax fee and fixed voucher",
			in: Input{
				Subtotal:      d("25000"),
				TaxPercentage: d("10"),
				DeliveryFee:   d("2000"),
				Voucher:       fixed5000,
				PaymentAmount: d("30000"),
				PointsRate:    d("1000"),
			},
			wantTax:           d("2500"),
			wantVoucher:       d("5000"),
			wantTotalDiscount: d("5000"),
			wantTotal:         d("24500"),
			wantChange:        d("5500"),
			wantPointsEarned:  25,
		},
		{
			name: "voucher below minimum purchase gives nothing",
			in: Input{
				Subtotal:      d("15000"),
				Voucher:       fixed5000,
				PaymentAmount: d("15000"),
				PointsRate:    d("1000"),
			},
			wantTax:           d("0"),
			wantVoucher:       d("0"),
			wantTotalDiscount: d("0"),
			wantTotal:         d("15000"),
			wantChange:        d("0"),
			wantPointsEarned:  15,
		},
		{
			name: "percentage voucher capped at max discount",
			in: Input{
				Subtotal: d("100000"),
				Voucher: &voucher.Voucher{
					Type:        voucher.TypePercentage,
					Value:       d("50"),
					MaxDiscount: ptr(d("10000")),
				},
				PaymentAmount: d("90000"),
				PointsRate:    d("1000"),
			},
			wantTax:           d("0"),
			wantVoucher:       d("10000"),
			wantTotalDiscount: d("10000"),
			wantTotal:         d("90000"),
			wantChange:        d("0"),
			wantPointsEarned:  100,
		},
		{
			name: "points capped at balance",
			in: Input{
				Subtotal:        d("25000"),
				PointsRequested: 30000,
				CustomerBalance: 10000,
				PaymentAmount:   d("15000"),
				PointsRate:      d("1000"),
			},
			wantTax:           d("0"),
			wantVoucher:       d("0"),
			wantPointsUsed:    10000,
			wantTotalDiscount: d("10000"),
			wantTotal:         d("15000"),
			wantChange:        d("0"),
			wantPointsEarned:  25,
		},
		{
			name: "points capped at payable amount",
			in: Input{
				Subtotal:        d("5000"),
				TaxPercentage:   d("10"),
				PointsRequested: 9000,
				CustomerBalance: 9000,
				PointsRate:      d("1000"),
			},
			wantTax:           d("500"),
			wantVoucher:       d("0"),
			wantPointsUsed:    5500,
			wantTotalDiscount: d("5500"),
			wantTotal:         d("0"),
			wantChange:        d("0"),
			wantPointsEarned:  5,
		},
		{
			name: "manual discount on top of points is clamped by total",
			in: Input{
				Subtotal:        d("10000"),
				PointsRequested: 8000,
				CustomerBalance: 8000,
				ManualDiscount:  d("5000"),
				PaymentAmount:   d("0"),
				PointsRate:      d("1000"),
			},
			wantTax:           d("0"),
			wantVoucher:       d("0"),
			wantPointsUsed:    8000,
			wantTotalDiscount: d("13000"),
			wantTotal:         d("0"),
			wantChange:        d("0"),
			wantPointsEarned:  10,
		},
		{
			name: "non positive rate earns nothing",
			in: Input{
				Subtotal:      d("5000"),
				PaymentAmount: d("10000"),
			},
			wantTax:           d("0"),
			wantVoucher:       d("0"),
			wantTotalDiscount: d("0"),
			wantTotal:         d("5000"),
			wantChange:        d("5000"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Checkout(tt.in)

			assert.True(t, tt.wantTax.Equal(got.TaxAmount), "expected tax %s, got %s", tt.wantTax, got.TaxAmount)
			assert.True(t, tt.wantVoucher.Equal(got.VoucherDiscount), "expected voucher discount %s, got %s", tt.wantVoucher, got.VoucherDiscount)
			assert.Equal(t, tt.wantPointsUsed, got.PointsUsed)
			assert.True(t, tt.wantTotalDiscount.Equal(got.TotalDiscount), "expected total discount %s, got %s", tt.wantTotalDiscount, got.TotalDiscount)
			assert.True(t, tt.wantTotal.Equal(got.Total), "expected total %s, got %s", tt.wantTotal, got.Total)
			assert.True(t, tt.wantChange.Equal(got.Change), "expected change %s, got %s", tt.wantChange, got.Change)
			assert.Equal(t, tt.wantPointsEarned, got.PointsEarned)
			assert.False(t, got.Total.IsNegative())
		})
	}
}

func TestPointsUsable(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		balance   int
		payable   decimal.Decimal
		want      int
	}{
		{name: "request within everything", requested: 100, balance: 500, payable: d("1000"), want: 100},
		{name: "balance is the limit", requested: 800, balance: 500, payable: d("1000"), want: 500},
		{name: "payable is the limit", requested: 800, balance: 900, payable: d("750.60"), want: 750},
		{name: "nothing payable", requested: 10, balance: 10, payable: d("-5"), want: 0},
		{name: "negative request", requested: -3, balance: 10, payable: d("100"), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PointsUsable(tt.requested, tt.balance, tt.payable))
		})
	}
}

func TestPointsEarned(t *testing.T) {
	assert.Equal(t, 25, PointsEarned(d("25999.99"), d("1000")))
	assert.Equal(t, 0, PointsEarned(d("999"), d("1000")))
	assert.Equal(t, 0, PointsEarned(d("5000"), d("0")))
}

func TestTotalNeverNegative(t *testing.T) {
	subtotals := []string{"0", "0.01", "999.99", "25000"}
	discounts := []string{"0", "1", "1000000"}
	for _, s := range subtotals {
		for _, disc := range discounts {
			got := Checkout(Input{
				Subtotal:        d(s),
				TaxPercentage:   d("11"),
				DeliveryFee:     d("500"),
				PointsRequested: 100000,
				CustomerBalance: 100000,
				ManualDiscount:  d(disc),
			})
			assert.False(t, got.Total.IsNegative(), "subtotal %s discount %s", s, disc)
		}
	}
}
