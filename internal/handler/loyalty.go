package handler

import (
	"context"

	"github.com/xenking/pos-engine/gen/oas"
)

// ValidateVoucher checks a voucher code against a subtotal.
func (h *Handler) ValidateVoucher(ctx context.Context, req *oas.VoucherValidateRequest) (*oas.AppliedVoucher, error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	subtotal, err := parseMoney("subtotal", req.Subtotal)
	if err != nil {
		return nil, err
	}
	applied, err := h.vouchers.Validate(ctx, actor.StoreID, req.Code, subtotal)
	if err != nil {
		return nil, err
	}
	return &oas.AppliedVoucher{
		Voucher:  toVoucher(applied.Voucher),
		Discount: money(applied.Discount),
	}, nil
}

// GetVoucherByBarcode looks a voucher up by its printed barcode.
func (h *Handler) GetVoucherByBarcode(ctx context.Context, params oas.GetVoucherByBarcodeParams) (*oas.Voucher, error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	v, err := h.vouchers.FindByBarcode(ctx, actor.StoreID, params.Barcode)
	if err != nil {
		return nil, err
	}
	resp := toVoucher(v)
	return &resp, nil
}

// AdjustPoints applies a manual correction to a customer's balance.
func (h *Handler) AdjustPoints(ctx context.Context, req *oas.PointsAdjustRequest, params oas.AdjustPointsParams) (*oas.PointsEntry, error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	e, err := h.loyalty.Adjust(ctx, actor.StoreID, actor.UserID, params.ID, req.Points, req.Reason)
	if err != nil {
		return nil, err
	}
	resp := toEntry(e)
	return &resp, nil
}

// RedeemPoints converts points into a voucher.
func (h *Handler) RedeemPoints(ctx context.Context, req *oas.PointsRedeemRequest, params oas.RedeemPointsParams) (*oas.Redemption, error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	red, err := h.loyalty.RedeemToVoucher(ctx, actor.StoreID, actor.UserID, params.ID, req.Points)
	if err != nil {
		return nil, err
	}
	return &oas.Redemption{
		Entry:   toEntry(red.Entry),
		Voucher: toVoucher(red.Voucher),
	}, nil
}

// ListPointsHistory lists ledger entries of a customer, newest first.
func (h *Handler) ListPointsHistory(ctx context.Context, params oas.ListPointsHistoryParams) ([]oas.PointsEntry, error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := h.loyalty.History(ctx, actor.StoreID, params.ID, params.Limit.Or(0))
	if err != nil {
		return nil, err
	}
	out := make([]oas.PointsEntry, len(entries))
	for i, e := range entries {
		out[i] = toEntry(e)
	}
	return out, nil
}
