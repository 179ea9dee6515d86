// Package pricing computes order totals, discounts, change and earned points.
//
// All functions are pure. Rounding to 2 decimal places happens only for the
// tax amount and the total; discounts are kept unrounded.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/pos-engine/internal/domain/voucher"
)

var hundred = decimal.NewFromInt(100)

// Totals is the priced state of a pending order.
type Totals struct {
	Subtotal    decimal.Decimal
	TaxAmount   decimal.Decimal
	DeliveryFee decimal.Decimal
	Discount    decimal.Decimal
	Total       decimal.Decimal
}

// Recalculate prices a pending order: tax on the subtotal, plus delivery
// fee, minus the order's manual discount, floored at zero.
func Recalculate(subtotal, taxPercentage, deliveryFee, discount decimal.Decimal) Totals {
	tax := Tax(subtotal, taxPercentage)
	return Totals{
		Subtotal:    subtotal,
		TaxAmount:   tax,
		DeliveryFee: deliveryFee,
		Discount:    discount,
		Total:       total(subtotal, tax, deliveryFee, discount),
	}
}

// Tax returns subtotal * percentage / 100 rounded to 2 places.
func Tax(subtotal, percentage decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(percentage).Div(hundred).Round(2)
}

// LineSubtotal returns qty * unit price.
func LineSubtotal(price decimal.Decimal, qty int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(qty)))
}

// Input is everything the checkout calculation depends on.
type Input struct {
	Subtotal        decimal.Decimal
	TaxPercentage   decimal.Decimal
	DeliveryFee     decimal.Decimal
	Voucher         *voucher.Voucher
	PointsRequested int
	CustomerBalance int
	ManualDiscount  decimal.Decimal
	PaymentAmount   decimal.Decimal
	// PointsRate is the subtotal amount that earns one point. Non-positive
	// rates earn nothing.
	PointsRate decimal.Decimal
}

// Summary is the outcome of a checkout calculation.
type Summary struct {
	Subtotal        decimal.Decimal
	TaxAmount       decimal.Decimal
	DeliveryFee     decimal.Decimal
	VoucherDiscount decimal.Decimal
	PointsDiscount  decimal.Decimal
	ManualDiscount  decimal.Decimal
	TotalDiscount   decimal.Decimal
	Total           decimal.Decimal
	PaymentAmount   decimal.Decimal
	Change          decimal.Decimal
	PointsUsed      int
	PointsEarned    int
}

// Checkout runs the full calculation. One point is worth one currency unit.
func Checkout(in Input) Summary {
	tax := Tax(in.Subtotal, in.TaxPercentage)

	voucherDiscount := decimal.Zero
	if in.Voucher != nil {
		voucherDiscount = in.Voucher.Discount(in.Subtotal)
	}

	payable := in.Subtotal.Add(tax).Add(in.DeliveryFee).Sub(voucherDiscount)
	pointsUsed := PointsUsable(in.PointsRequested, in.CustomerBalance, payable)
	pointsDiscount := decimal.NewFromInt(int64(pointsUsed))

	totalDiscount := voucherDiscount.Add(pointsDiscount).Add(in.ManualDiscount)
	t := total(in.Subtotal, tax, in.DeliveryFee, totalDiscount)

	return Summary{
		Subtotal:        in.Subtotal,
		TaxAmount:       tax,
		DeliveryFee:     in.DeliveryFee,
		VoucherDiscount: voucherDiscount,
		PointsDiscount:  pointsDiscount,
		ManualDiscount:  in.ManualDiscount,
		TotalDiscount:   totalDiscount,
		Total:           t,
		PaymentAmount:   in.PaymentAmount,
		Change:          Change(in.PaymentAmount, t),
		PointsUsed:      pointsUsed,
		PointsEarned:    PointsEarned(in.Subtotal, in.PointsRate),
	}
}

// PointsUsable caps a points request by the balance and by the payable
// amount, so points never push the amount due below zero.
func PointsUsable(requested, balance int, payable decimal.Decimal) int {
	n := min(requested, balance)
	if !payable.IsPositive() {
		return 0
	}
	if limit := payable.Floor().IntPart(); int64(n) > limit {
		n = int(limit)
	}
	return max(n, 0)
}

// PointsEarned returns floor(subtotal / rate).
func PointsEarned(subtotal, rate decimal.Decimal) int {
	if !rate.IsPositive() || !subtotal.IsPositive() {
		return 0
	}
	return int(subtotal.Div(rate).Floor().IntPart())
}

// Change returns max(0, paid - total).
func Change(paid, total decimal.Decimal) decimal.Decimal {
	return floorAtZero(paid.Sub(total))
}

func total(subtotal, tax, fee, discount decimal.Decimal) decimal.Decimal {
	return floorAtZero(subtotal.Add(tax).Add(fee).Sub(discount).Round(2))
}

func floorAtZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
