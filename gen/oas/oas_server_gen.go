// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"
)

// Handler handles operations described by OpenAPI v3 specification.
type Handler interface {
	// AddOrderItem implements addOrderItem operation.
	//
	// POST /orders/{id}/items
	AddOrderItem(ctx context.Context, req *ItemInput, params AddOrderItemParams) (*Order, error)
	// AdjustPoints implements adjustPoints operation.
	//
	// POST /customers/{id}/points/adjust
	AdjustPoints(ctx context.Context, req *PointsAdjustRequest, params AdjustPointsParams) (*PointsEntry, error)
	// CancelOrder implements cancelOrder operation.
	//
	// POST /orders/{id}/cancel
	CancelOrder(ctx context.Context, req *CancelRequest, params CancelOrderParams) (*Order, error)
	// CreateOrder implements createOrder operation.
	//
	// Place a pending order.
	//
	// POST /orders
	CreateOrder(ctx context.Context, req *OrderCreate) (*Order, error)
	// GetOrder implements getOrder operation.
	//
	// GET /orders/{id}
	GetOrder(ctx context.Context, params GetOrderParams) (*Order, error)
	// GetOrderByNumber implements getOrderByNumber operation.
	//
	// Find an order by its transaction number.
	//
	// GET /orders/number/{number}
	GetOrderByNumber(ctx context.Context, params GetOrderByNumberParams) (*Order, error)
	// GetSnapshot implements getSnapshot operation.
	//
	// Download the rendered receipt of an order.
	//
	// GET /snapshots/{number}/{type}
	GetSnapshot(ctx context.Context, params GetSnapshotParams) (GetSnapshotOK, error)
	// GetVoucherByBarcode implements getVoucherByBarcode operation.
	//
	// GET /vouchers/barcode/{barcode}
	GetVoucherByBarcode(ctx context.Context, params GetVoucherByBarcodeParams) (*Voucher, error)
	// ListOrders implements listOrders operation.
	//
	// List orders of the store, newest first.
	//
	// GET /orders
	ListOrders(ctx context.Context, params ListOrdersParams) ([]Order, error)
	// ListPointsHistory implements listPointsHistory operation.
	//
	// GET /customers/{id}/points/history
	ListPointsHistory(ctx context.Context, params ListPointsHistoryParams) ([]PointsEntry, error)
	// PayOrder implements payOrder operation.
	//
	// POST /orders/{id}/pay
	PayOrder(ctx context.Context, req *PayRequest, params PayOrderParams) (*PayResult, error)
	// RedeemPoints implements redeemPoints operation.
	//
	// POST /customers/{id}/points/redeem
	RedeemPoints(ctx context.Context, req *PointsRedeemRequest, params RedeemPointsParams) (*Redemption, error)
	// RemoveOrderItem implements removeOrderItem operation.
	//
	// DELETE /orders/{id}/items/{item_id}
	RemoveOrderItem(ctx context.Context, params RemoveOrderItemParams) (*Order, error)
	// ReplaceOrderItems implements replaceOrderItems operation.
	//
	// PUT /orders/{id}/items
	ReplaceOrderItems(ctx context.Context, req *ItemsReplace, params ReplaceOrderItemsParams) (*Order, error)
	// UpdateOrder implements updateOrder operation.
	//
	// Edit a pending order.
	//
	// PATCH /orders/{id}
	UpdateOrder(ctx context.Context, req *OrderUpdate, params UpdateOrderParams) (*Order, error)
	// ValidateVoucher implements validateVoucher operation.
	//
	// POST /vouchers/validate
	ValidateVoucher(ctx context.Context, req *VoucherValidateRequest) (*AppliedVoucher, error)
	// NewError creates *ErrorStatusCode from error returned by handler.
	//
	// Used for common default response.
	NewError(ctx context.Context, err error) *ErrorStatusCode
}

// Server implements http server based on OpenAPI v3 specification and
// calls Handler to handle requests.
type Server struct {
	h   Handler
	sec SecurityHandler
	baseServer
}

// NewServer creates new Server.
func NewServer(h Handler, sec SecurityHandler, opts ...ServerOption) (*Server, error) {
	s, err := newServerConfig(opts...).baseServer()
	if err != nil {
		return nil, err
	}
	return &Server{
		h:          h,
		sec:        sec,
		baseServer: s,
	}, nil
}
