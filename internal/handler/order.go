package handler

import (
	"bytes"
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"

	"github.com/xenking/pos-engine/gen/oas"
	"github.com/xenking/pos-engine/internal/domain/fault"
	"github.com/xenking/pos-engine/internal/domain/order"
)

// listWindow holds the created_at bounds of a listing.
type listWindow struct {
	From time.Time
	To   time.Time `validate:"omitempty,gtfield=From"`
}

// ListOrders lists orders of the caller's store.
func (h *Handler) ListOrders(ctx context.Context, params oas.ListOrdersParams) ([]oas.Order, error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	f, err := h.listFilter(params)
	if err != nil {
		return nil, err
	}
	orders, err := h.orders.List(ctx, actor, f)
	if err != nil {
		return nil, err
	}
	return toOrders(orders), nil
}

func (h *Handler) listFilter(params oas.ListOrdersParams) (order.Filter, error) {
	f := order.Filter{
		CustomerID: params.CustomerID.Or(""),
		UserID:     params.UserID.Or(""),
		Search:     params.Search.Or(""),
		Limit:      params.Limit.Or(0),
		Offset:     params.Offset.Or(0),
	}
	if s, ok := params.Status.Get(); ok {
		f.Status = order.Status(s)
	}
	if d, ok := params.Date.Get(); ok {
		f.Date = &d
	}

	w := listWindow{From: params.From.Or(time.Time{}), To: params.To.Or(time.Time{})}
	if err := h.validate.Struct(w); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return f, fault.Validation("to must be after from")
		}
		return f, errors.Wrap(err, "validate window")
	}
	if !w.From.IsZero() {
		f.From = &w.From
	}
	if !w.To.IsZero() {
		f.To = &w.To
	}
	return f, nil
}

// CreateOrder places a pending order.
func (h *Handler) CreateOrder(ctx context.Context, req *oas.OrderCreate) (*oas.Order, error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	in := order.CreateInput{
		Items:      toItemInputs(req.Items),
		CustomerID: req.CustomerID.Or(""),
		Notes:      req.Notes.Or(""),
	}
	if t, ok := req.Type.Get(); ok {
		in.Type = order.Type(t)
	}
	if in.TaxPercentage, err = parseOptMoney("tax_percentage", req.TaxPercentage); err != nil {
		return nil, err
	}
	if in.DeliveryFee, err = parseOptMoney("delivery_fee", req.DeliveryFee); err != nil {
		return nil, err
	}
	if in.DiscountAmount, err = parseOptMoney("discount_amount", req.DiscountAmount); err != nil {
		return nil, err
	}

	o, err := h.orders.Create(ctx, actor, in)
	if err != nil {
		return nil, err
	}
	resp := toOrder(o)
	return &resp, nil
}

// GetOrder returns an order by id.
func (h *Handler) GetOrder(ctx context.Context, params oas.GetOrderParams) (*oas.Order, error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	o, err := h.orders.Get(ctx, actor, params.ID)
	if err != nil {
		return nil, err
	}
	resp := toOrder(o)
	return &resp, nil
}

// GetOrderByNumber returns an order by its transaction number.
func (h *Handler) GetOrderByNumber(ctx context.Context, params oas.GetOrderByNumberParams) (*oas.Order, error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	o, err := h.orders.GetByNumber(ctx, actor, params.Number)
	if err != nil {
		return nil, err
	}
	resp := toOrder(o)
	return &resp, nil
}

// UpdateOrder edits the present fields of a pending order.
func (h *Handler) UpdateOrder(ctx context.Context, req *oas.OrderUpdate, params oas.UpdateOrderParams) (*oas.Order, error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	in := order.UpdateInput{Items: toItemInputs(req.Items)}
	if v, ok := req.CustomerID.Get(); ok {
		in.CustomerID = &v
	}
	if v, ok := req.Notes.Get(); ok {
		in.Notes = &v
	}
	if v, ok := req.Type.Get(); ok {
		t := order.Type(v)
		in.Type = &t
	}
	if in.TaxPercentage, err = parseOptMoney("tax_percentage", req.TaxPercentage); err != nil {
		return nil, err
	}
	if in.DeliveryFee, err = parseOptMoney("delivery_fee", req.DeliveryFee); err != nil {
		return nil, err
	}
	if in.DiscountAmount, err = parseOptMoney("discount_amount", req.DiscountAmount); err != nil {
		return nil, err
	}

	o, err := h.orders.Update(ctx, actor, params.ID, in)
	if err != nil {
		return nil, err
	}
	resp := toOrder(o)
	return &resp, nil
}

// ReplaceOrderItems swaps the items of a pending order.
func (h *Handler) ReplaceOrderItems(ctx context.Context, req *oas.ItemsReplace, params oas.ReplaceOrderItemsParams) (*oas.Order, error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	o, err := h.orders.ReplaceItems(ctx, actor, params.ID, toItemInputs(req.Items))
	if err != nil {
		return nil, err
	}
	resp := toOrder(o)
	return &resp, nil
}

// AddOrderItem adds a product to a pending order.
func (h *Handler) AddOrderItem(ctx context.Context, req *oas.ItemInput, params oas.AddOrderItemParams) (*oas.Order, error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	o, err := h.orders.AddItem(ctx, actor, params.ID, order.ItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return nil, err
	}
	resp := toOrder(o)
	return &resp, nil
}

// RemoveOrderItem drops a line from a pending order.
func (h *Handler) RemoveOrderItem(ctx context.Context, params oas.RemoveOrderItemParams) (*oas.Order, error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	o, err := h.orders.RemoveItem(ctx, actor, params.ID, params.ItemID)
	if err != nil {
		return nil, err
	}
	resp := toOrder(o)
	return &resp, nil
}

// PayOrder settles a pending order.
func (h *Handler) PayOrder(ctx context.Context, req *oas.PayRequest, params oas.PayOrderParams) (*oas.PayResult, error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	in := order.PayInput{
		Method:      order.PaymentMethod(req.PaymentMethod),
		PointsToUse: req.PointsToUse.Or(0),
		VoucherCode: req.VoucherCode.Or(""),
	}
	if in.Amount, err = parseMoney("payment_amount", req.PaymentAmount); err != nil {
		return nil, err
	}
	if in.TaxPercentage, err = parseOptMoney("tax_percentage", req.TaxPercentage); err != nil {
		return nil, err
	}
	if in.DeliveryFee, err = parseOptMoney("delivery_fee", req.DeliveryFee); err != nil {
		return nil, err
	}
	if in.ManualDiscount, err = parseOptMoney("manual_discount", req.ManualDiscount); err != nil {
		return nil, err
	}

	res, err := h.orders.Pay(ctx, actor, params.ID, in)
	if err != nil {
		return nil, err
	}
	return toPayResult(res), nil
}

// CancelOrder cancels a pending or paid order.
func (h *Handler) CancelOrder(ctx context.Context, req *oas.CancelRequest, params oas.CancelOrderParams) (*oas.Order, error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	o, err := h.orders.Cancel(ctx, actor, params.ID, order.CancelInput{Reason: req.Reason})
	if err != nil {
		return nil, err
	}
	resp := toOrder(o)
	return &resp, nil
}

// GetSnapshot streams a rendered receipt.
func (h *Handler) GetSnapshot(ctx context.Context, params oas.GetSnapshotParams) (oas.GetSnapshotOK, error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return oas.GetSnapshotOK{}, err
	}
	data, err := h.snapshots.Get(ctx, actor.StoreID, params.Number, order.SnapshotType(params.Type))
	if err != nil {
		return oas.GetSnapshotOK{}, err
	}
	return oas.GetSnapshotOK{Data: bytes.NewReader(data)}, nil
}
