package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/xenking/pos-engine/gen/oas"
	"github.com/xenking/pos-engine/internal/domain/fault"
	"github.com/xenking/pos-engine/internal/domain/loyalty"
	"github.com/xenking/pos-engine/internal/domain/order"
	"github.com/xenking/pos-engine/internal/domain/voucher"
)

func money(d decimal.Decimal) string { return d.StringFixed(2) }

// parseMoney reads an amount the schema already matched against its pattern.
func parseMoney(field, v string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, fault.Validation("%s must be a decimal amount", field)
	}
	return d, nil
}

func parseOptMoney(field string, v oas.OptString) (*decimal.Decimal, error) {
	s, ok := v.Get()
	if !ok {
		return nil, nil
	}
	d, err := parseMoney(field, s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func optString(s string) oas.OptString {
	if s == "" {
		return oas.OptString{}
	}
	return oas.NewOptString(s)
}

func optDateTime(t *time.Time) oas.OptDateTime {
	if t == nil || t.IsZero() {
		return oas.OptDateTime{}
	}
	return oas.NewOptDateTime(*t)
}

func toItemInputs(items []oas.ItemInput) []order.ItemInput {
	if items == nil {
		return nil
	}
	out := make([]order.ItemInput, len(items))
	for i, it := range items {
		out[i] = order.ItemInput{ProductID: it.ProductID, Quantity: it.Quantity}
	}
	return out
}

func toOrder(o *order.Order) oas.Order {
	items := make([]oas.OrderItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = oas.OrderItem{
			ID:           it.ID,
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			ProductPrice: money(it.ProductPrice),
			Quantity:     it.Quantity,
			Subtotal:     money(it.Subtotal),
		}
	}
	resp := oas.Order{
		ID:                 o.ID,
		StoreID:            o.StoreID,
		UserID:             o.UserID,
		CustomerID:         optString(o.CustomerID),
		VoucherID:          optString(o.VoucherID),
		TransactionNumber:  o.Number,
		Status:             oas.OrderStatus(o.Status),
		Type:               oas.OrderType(o.Type),
		Notes:              optString(o.Notes),
		Subtotal:           money(o.Subtotal),
		TaxPercentage:      money(o.TaxPercentage),
		TaxAmount:          money(o.TaxAmount),
		DeliveryFee:        money(o.DeliveryFee),
		DiscountAmount:     money(o.DiscountAmount),
		TotalAmount:        money(o.TotalAmount),
		PaymentAmount:      money(o.PaymentAmount),
		ChangeAmount:       money(o.ChangeAmount),
		PointsUsed:         o.PointsUsed,
		PointsEarned:       o.PointsEarned,
		PaidAt:             optDateTime(o.PaidAt),
		CancelledBy:        optString(o.CancelledBy),
		CancelledAt:        optDateTime(o.CancelledAt),
		CancellationReason: optString(o.CancellationReason),
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
		Items:              items,
	}
	if o.PaymentMethod != "" {
		resp.PaymentMethod = oas.NewOptPaymentMethod(oas.PaymentMethod(o.PaymentMethod))
	}
	return resp
}

func toOrders(orders []order.Order) []oas.Order {
	out := make([]oas.Order, len(orders))
	for i := range orders {
		out[i] = toOrder(&orders[i])
	}
	return out
}

func toPayResult(res *order.PayResult) *oas.PayResult {
	s := res.Summary
	return &oas.PayResult{
		Order: toOrder(res.Order),
		Summary: oas.PaySummary{
			Subtotal:        money(s.Subtotal),
			TaxAmount:       money(s.TaxAmount),
			DeliveryFee:     money(s.DeliveryFee),
			VoucherDiscount: money(s.VoucherDiscount),
			PointsDiscount:  money(s.PointsDiscount),
			ManualDiscount:  money(s.ManualDiscount),
			TotalDiscount:   money(s.TotalDiscount),
			Total:           money(s.Total),
			PaymentAmount:   money(s.PaymentAmount),
			Change:          money(s.Change),
			PointsUsed:      s.PointsUsed,
			PointsEarned:    s.PointsEarned,
		},
	}
}

func toVoucher(v *voucher.Voucher) oas.Voucher {
	resp := oas.Voucher{
		ID:          v.ID,
		Code:        v.Code,
		Barcode:     v.Barcode,
		Name:        v.Name,
		Description: optString(v.Description),
		Type:        oas.VoucherType(v.Type),
		Value:       money(v.Value),
		MinPurchase: money(v.MinPurchase),
		UsedCount:   v.UsedCount,
		StartDate:   v.StartDate,
		EndDate:     v.EndDate,
		IsActive:    v.IsActive,
	}
	if v.MaxDiscount != nil {
		resp.MaxDiscount = oas.NewOptString(money(*v.MaxDiscount))
	}
	if v.UsageLimit != nil {
		resp.UsageLimit = oas.NewOptInt(*v.UsageLimit)
	}
	return resp
}

func toEntry(e loyalty.Entry) oas.PointsEntry {
	return oas.PointsEntry{
		ID:            e.ID,
		CustomerID:    e.CustomerID,
		Type:          oas.PointsEntryType(e.Kind),
		Points:        e.Points,
		BalanceAfter:  e.BalanceAfter,
		TransactionID: optString(e.TransactionID),
		Notes:         optString(e.Notes),
		CreatedBy:     optString(e.CreatedBy),
		CreatedAt:     e.CreatedAt,
	}
}
