// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"

	ht "github.com/ogen-go/ogen/http"
)

// UnimplementedHandler is no-op Handler which returns http.ErrNotImplemented.
type UnimplementedHandler struct{}

var _ Handler = UnimplementedHandler{}

// AddOrderItem implements addOrderItem operation.
//
// POST /orders/{id}/items
func (UnimplementedHandler) AddOrderItem(ctx context.Context, req *ItemInput, params AddOrderItemParams) (r *Order, _ error) {
	return r, ht.ErrNotImplemented
}

// AdjustPoints implements adjustPoints operation.
//
// POST /customers/{id}/points/adjust
func (UnimplementedHandler) AdjustPoints(ctx context.Context, req *PointsAdjustRequest, params AdjustPointsParams) (r *PointsEntry, _ error) {
	return r, ht.ErrNotImplemented
}

// CancelOrder implements cancelOrder operation.
//
// POST /orders/{id}/cancel
func (UnimplementedHandler) CancelOrder(ctx context.Context, req *CancelRequest, params CancelOrderParams) (r *Order, _ error) {
	return r, ht.ErrNotImplemented
}

// CreateOrder implements createOrder operation.
//
// Place a pending order.
//
// POST /orders
func (UnimplementedHandler) CreateOrder(ctx context.Context, req *OrderCreate) (r *Order, _ error) {
	return r, ht.ErrNotImplemented
}

// GetOrder implements getOrder operation.
//
// GET /orders/{id}
func (UnimplementedHandler) GetOrder(ctx context.Context, params GetOrderParams) (r *Order, _ error) {
	return r, ht.ErrNotImplemented
}

// GetOrderByNumber implements getOrderByNumber operation.
//
// Find an order by its transaction number.
//
// GET /orders/number/{number}
func (UnimplementedHandler) GetOrderByNumber(ctx context.Context, params GetOrderByNumberParams) (r *Order, _ error) {
	return r, ht.ErrNotImplemented
}

// GetSnapshot implements getSnapshot operation.
//
// Download the rendered receipt of an order.
//
// GET /snapshots/{number}/{type}
func (UnimplementedHandler) GetSnapshot(ctx context.Context, params GetSnapshotParams) (r GetSnapshotOK, _ error) {
	return r, ht.ErrNotImplemented
}

// GetVoucherByBarcode implements getVoucherByBarcode operation.
//
// GET /vouchers/barcode/{barcode}
func (UnimplementedHandler) GetVoucherByBarcode(ctx context.Context, params GetVoucherByBarcodeParams) (r *Voucher, _ error) {
	return r, ht.ErrNotImplemented
}

// ListOrders implements listOrders operation.
//
// List orders of the store, newest first.
//
// GET /orders
func (UnimplementedHandler) ListOrders(ctx context.Context, params ListOrdersParams) (r []Order, _ error) {
	return r, ht.ErrNotImplemented
}

// ListPointsHistory implements listPointsHistory operation.
//
// GET /customers/{id}/points/history
func (UnimplementedHandler) ListPointsHistory(ctx context.Context, params ListPointsHistoryParams) (r []PointsEntry, _ error) {
	return r, ht.ErrNotImplemented
}

// PayOrder implements payOrder operation.
//
// POST /orders/{id}/pay
func (UnimplementedHandler) PayOrder(ctx context.Context, req *PayRequest, params PayOrderParams) (r *PayResult, _ error) {
	return r, ht.ErrNotImplemented
}

// RedeemPoints implements redeemPoints operation.
//
// POST /customers/{id}/points/redeem
func (UnimplementedHandler) RedeemPoints(ctx context.Context, req *PointsRedeemRequest, params RedeemPointsParams) (r *Redemption, _ error) {
	return r, ht.ErrNotImplemented
}

// RemoveOrderItem implements removeOrderItem operation.
//
// DELETE /orders/{id}/items/{item_id}
func (UnimplementedHandler) RemoveOrderItem(ctx context.Context, params RemoveOrderItemParams) (r *Order, _ error) {
	return r, ht.ErrNotImplemented
}

// ReplaceOrderItems implements replaceOrderItems operation.
//
// PUT /orders/{id}/items
func (UnimplementedHandler) ReplaceOrderItems(ctx context.Context, req *ItemsReplace, params ReplaceOrderItemsParams) (r *Order, _ error) {
	return r, ht.ErrNotImplemented
}

// UpdateOrder implements updateOrder operation.
//
// Edit a pending order.
//
// PATCH /orders/{id}
func (UnimplementedHandler) UpdateOrder(ctx context.Context, req *OrderUpdate, params UpdateOrderParams) (r *Order, _ error) {
	return r, ht.ErrNotImplemented
}

// ValidateVoucher implements validateVoucher operation.
//
// POST /vouchers/validate
func (UnimplementedHandler) ValidateVoucher(ctx context.Context, req *VoucherValidateRequest) (r *AppliedVoucher, _ error) {
	return r, ht.ErrNotImplemented
}

// NewError creates *ErrorStatusCode from error returned by handler.
//
// Used for common default response.
func (UnimplementedHandler) NewError(ctx context.Context, err error) (r *ErrorStatusCode) {
	r = new(ErrorStatusCode)
	return r
}
