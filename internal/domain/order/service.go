package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/xenking/pos-engine/internal/domain/fault"
	"github.com/xenking/pos-engine/internal/domain/loyalty"
	"github.com/xenking/pos-engine/internal/domain/pricing"
	"github.com/xenking/pos-engine/internal/domain/product"
	"github.com/xenking/pos-engine/internal/domain/stock"
	"github.com/xenking/pos-engine/internal/domain/store"
	"github.com/xenking/pos-engine/internal/domain/txn"
	"github.com/xenking/pos-engine/internal/domain/voucher"
)

const instrumentationName = "github.com/xenking/pos-engine/internal/domain/order"

// Deps holds the collaborators of the order Service. Snapshots and Events
// may be nil.
type Deps struct {
	Tx        txn.Transactor
	Orders    Repository
	Products  product.Repository
	Stock     stock.Ledger
	Points    loyalty.Ledger
	Vouchers  voucher.Repository
	Stores    store.Repository
	Snapshots Snapshotter
	Events    Publisher
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the clock used for order numbers and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithTracerProvider sets the tracer provider for operation spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) { s.tracer = tp.Tracer(instrumentationName) }
}

// WithMeterProvider sets the meter provider for order counters.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(s *Service) { s.meter = mp.Meter(instrumentationName) }
}

// PayResult is a paid order together with its pricing breakdown.
type PayResult struct {
	Order   *Order
	Summary pricing.Summary
}

// Service is the order state machine. Every mutating operation runs as one
// unit of work covering stock, points, voucher usage and the order row.
type Service struct {
	deps   Deps
	now    func() time.Time
	tracer trace.Tracer
	meter  metric.Meter

	created   metric.Int64Counter
	paid      metric.Int64Counter
	cancelled metric.Int64Counter
	totals    metric.Float64Histogram
}

// NewService creates an order Service.
func NewService(deps Deps, opts ...Option) (*Service, error) {
	if deps.Snapshots == nil {
		deps.Snapshots = nopSnapshotter{}
	}
	if deps.Events == nil {
		deps.Events = nopPublisher{}
	}

	s := &Service{
		deps:   deps,
		now:    time.Now,
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
		meter:  otel.GetMeterProvider().Meter(instrumentationName),
	}
	for _, o := range opts {
		o(s)
	}

	var err error
	if s.created, err = s.meter.Int64Counter("pos.orders.created",
		metric.WithDescription("Orders created")); err != nil {
		return nil, errors.Wrap(err, "created counter")
	}
	if s.paid, err = s.meter.Int64Counter("pos.orders.paid",
		metric.WithDescription("Orders paid")); err != nil {
		return nil, errors.Wrap(err, "paid counter")
	}
	if s.cancelled, err = s.meter.Int64Counter("pos.orders.cancelled",
		metric.WithDescription("Orders cancelled")); err != nil {
		return nil, errors.Wrap(err, "cancelled counter")
	}
	if s.totals, err = s.meter.Float64Histogram("pos.orders.total",
		metric.WithDescription("Total amount of paid orders")); err != nil {
		return nil, errors.Wrap(err, "totals histogram")
	}

	return s, nil
}

// NumberPrefix returns the order number prefix of a store for a day.
func NumberPrefix(storeID string, day time.Time) string {
	return fmt.Sprintf("TRX-%s-%s-", storeID, day.Format("20060102"))
}

// Get returns an order of the actor's store.
func (s *Service) Get(ctx context.Context, actor Actor, id string) (*Order, error) {
	if err := actor.validate(); err != nil {
		return nil, err
	}
	return s.deps.Orders.Get(ctx, actor.StoreID, id)
}

// List returns orders of the actor's store, newest first.
func (s *Service) List(ctx context.Context, actor Actor, f Filter) ([]Order, error) {
	if err := actor.validate(); err != nil {
		return nil, err
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	if f.Date != nil {
		y, m, d := f.Date.Date()
		from := time.Date(y, m, d, 0, 0, 0, 0, f.Date.Location())
		to := from.AddDate(0, 0, 1)
		f.From, f.To, f.Date = &from, &to, nil
	}
	f.Search = strings.TrimSpace(f.Search)
	return s.deps.Orders.List(ctx, actor.StoreID, f)
}

// GetByNumber returns the order of the actor's store carrying the number.
func (s *Service) GetByNumber(ctx context.Context, actor Actor, number string) (*Order, error) {
	if err := actor.validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(number) == "" {
		return nil, fault.Validation("order number is required")
	}
	return s.deps.Orders.GetByNumber(ctx, actor.StoreID, number)
}

// Create places a new pending order and takes its quantities out of stock.
func (s *Service) Create(ctx context.Context, actor Actor, in CreateInput) (_ *Order, err error) {
	ctx, span := s.startSpan(ctx, "Create", actor, "")
	defer func() { endSpan(span, err) }()

	if err := actor.validate(); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	lines, err := mergeItems(in.Items)
	if err != nil {
		return nil, err
	}

	now := s.now()
	o := &Order{
		ID:             uuid.NewString(),
		StoreID:        actor.StoreID,
		UserID:         actor.UserID,
		CustomerID:     in.CustomerID,
		Status:         StatusPending,
		Type:           in.Type,
		Notes:          in.Notes,
		TaxPercentage:  valueOr(in.TaxPercentage),
		DeliveryFee:    valueOr(in.DeliveryFee),
		DiscountAmount: valueOr(in.DiscountAmount),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = s.deps.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if o.CustomerID != "" {
			if _, err := s.deps.Points.Customer(ctx, o.StoreID, o.CustomerID); err != nil {
				return err
			}
		}

		items, err := s.buildItems(ctx, o.StoreID, o.ID, lines)
		if err != nil {
			return err
		}
		if err := stock.Apply(ctx, s.deps.Stock, movements(nil, items)); err != nil {
			return err
		}
		o.Items = items

		prefix := NumberPrefix(o.StoreID, now)
		seq, err := s.deps.Orders.NextNumber(ctx, o.StoreID, prefix)
		if err != nil {
			return errors.Wrap(err, "next order number")
		}
		o.Number = fmt.Sprintf("%s%04d", prefix, seq)

		o.Recalculate()
		if err := s.deps.Orders.Create(ctx, o); err != nil {
			return errors.Wrap(err, "create order")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.created.Add(ctx, 1, metric.WithAttributes(attribute.String("store_id", o.StoreID)))
	s.afterCommit(ctx, EventCreated, o, actor, SnapshotPending)
	return o, nil
}

// Update edits the fields of a pending order. When in.Items is set the lines
// are replaced: old quantities go back to stock and new ones are taken out.
func (s *Service) Update(ctx context.Context, actor Actor, id string, in UpdateInput) (_ *Order, err error) {
	ctx, span := s.startSpan(ctx, "Update", actor, id)
	defer func() { endSpan(span, err) }()

	if err := actor.validate(); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var lines []ItemInput
	if in.Items != nil {
		if lines, err = mergeItems(in.Items); err != nil {
			return nil, err
		}
	}

	return s.mutatePending(ctx, actor, id, func(ctx context.Context, o *Order) error {
		if in.CustomerID != nil {
			if *in.CustomerID != "" {
				if _, err := s.deps.Points.Customer(ctx, o.StoreID, *in.CustomerID); err != nil {
					return err
				}
			}
			o.CustomerID = *in.CustomerID
		}
		if in.Type != nil {
			o.Type = *in.Type
		}
		if in.Notes != nil {
			o.Notes = *in.Notes
		}
		if in.TaxPercentage != nil {
			o.TaxPercentage = *in.TaxPercentage
		}
		if in.DeliveryFee != nil {
			o.DeliveryFee = *in.DeliveryFee
		}
		if in.DiscountAmount != nil {
			o.DiscountAmount = *in.DiscountAmount
		}
		if in.Items == nil {
			return nil
		}

		items, err := s.buildItems(ctx, o.StoreID, o.ID, lines)
		if err != nil {
			return err
		}
		if err := stock.Apply(ctx, s.deps.Stock, movements(o.Items, items)); err != nil {
			return err
		}
		o.Items = items
		return nil
	})
}

// ReplaceItems swaps all lines of a pending order.
func (s *Service) ReplaceItems(ctx context.Context, actor Actor, id string, items []ItemInput) (*Order, error) {
	if items == nil {
		items = []ItemInput{}
	}
	return s.Update(ctx, actor, id, UpdateInput{Items: items})
}

// AddItem adds a product to a pending order. A product already on the order
// increases the quantity of its existing line.
func (s *Service) AddItem(ctx context.Context, actor Actor, id string, in ItemInput) (_ *Order, err error) {
	ctx, span := s.startSpan(ctx, "AddItem", actor, id)
	defer func() { endSpan(span, err) }()

	if err := actor.validate(); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	return s.mutatePending(ctx, actor, id, func(ctx context.Context, o *Order) error {
		p, err := s.deps.Products.GetByID(ctx, o.StoreID, in.ProductID)
		if err != nil {
			if errors.Is(err, product.ErrNotFound) {
				return &ProductNotFoundError{ProductID: in.ProductID}
			}
			return errors.Wrapf(err, "get product %s", in.ProductID)
		}
		i, merge := o.ItemForProduct(p.ID)
		qty := in.Quantity
		if merge {
			if qty, err = addQuantity(p.ID, o.Items[i].Quantity, in.Quantity); err != nil {
				return err
			}
		}
		if err := s.deps.Stock.Decrease(ctx, p.ID, in.Quantity); err != nil {
			return err
		}

		if merge {
			o.Items[i].Quantity = qty
			return nil
		}
		o.Items = append(o.Items, newItem(o.ID, p, in.Quantity))
		return nil
	})
}

// RemoveItem drops a line from a pending order and returns its quantity to
// stock. The order may end up without lines.
func (s *Service) RemoveItem(ctx context.Context, actor Actor, id, itemID string) (_ *Order, err error) {
	ctx, span := s.startSpan(ctx, "RemoveItem", actor, id)
	defer func() { endSpan(span, err) }()

	if err := actor.validate(); err != nil {
		return nil, err
	}

	return s.mutatePending(ctx, actor, id, func(ctx context.Context, o *Order) error {
		i, ok := o.Item(itemID)
		if !ok {
			return ErrItemNotFound
		}
		it := o.Items[i]
		if err := s.deps.Stock.Increase(ctx, it.ProductID, it.Quantity); err != nil {
			return err
		}
		o.Items = append(o.Items[:i], o.Items[i+1:]...)
		return nil
	})
}

// Pay finalises a pending order: prices it with voucher, points and manual
// discount, consumes the voucher use and points, credits earned points and
// marks the order paid.
func (s *Service) Pay(ctx context.Context, actor Actor, id string, in PayInput) (_ *PayResult, err error) {
	ctx, span := s.startSpan(ctx, "Pay", actor, id)
	defer func() { endSpan(span, err) }()

	if err := actor.validate(); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var res *PayResult
	err = s.deps.Tx.WithinTx(ctx, func(ctx context.Context) error {
		o, err := s.deps.Orders.GetForUpdate(ctx, actor.StoreID, id)
		if err != nil {
			return err
		}
		switch o.Status {
		case StatusPaid:
			return ErrAlreadyPaid
		case StatusCancelled:
			return ErrAlreadyCancelled
		}

		if in.TaxPercentage != nil {
			o.TaxPercentage = *in.TaxPercentage
		}
		if in.DeliveryFee != nil {
			o.DeliveryFee = *in.DeliveryFee
		}
		manual := o.DiscountAmount
		if in.ManualDiscount != nil {
			manual = *in.ManualDiscount
		}
		o.Recalculate()
		now := s.now()

		v, err := s.applicableVoucher(ctx, o, in.VoucherCode, now)
		if err != nil {
			return err
		}

		calc := pricing.Input{
			Subtotal:        o.Subtotal,
			TaxPercentage:   o.TaxPercentage,
			DeliveryFee:     o.DeliveryFee,
			Voucher:         v,
			PointsRequested: in.PointsToUse,
			ManualDiscount:  manual,
			PaymentAmount:   in.Amount,
		}
		if o.CustomerID != "" {
			c, err := s.deps.Points.Customer(ctx, o.StoreID, o.CustomerID)
			if err != nil {
				return err
			}
			settings, err := s.deps.Stores.Settings(ctx, o.StoreID)
			if err != nil {
				return errors.Wrap(err, "load store settings")
			}
			calc.CustomerBalance = c.Points
			calc.PointsRate = settings.PointsRate()
		} else if in.PointsToUse > 0 {
			return fault.Validation("points can only be used on orders with a customer")
		}
		sum := pricing.Checkout(calc)

		if v != nil {
			if err := s.deps.Vouchers.IncrementUsage(ctx, v.ID); err != nil {
				return err
			}
			o.VoucherID = v.ID
		}
		if sum.PointsUsed > 0 {
			if _, err := s.deps.Points.Redeem(ctx, s.pointsChange(o, actor, sum.PointsUsed, loyalty.KindRedeemed,
				"Redeemed on transaction "+o.Number, now)); err != nil {
				return err
			}
		}
		if sum.PointsEarned > 0 {
			if _, err := s.deps.Points.Earn(ctx, s.pointsChange(o, actor, sum.PointsEarned, loyalty.KindEarned,
				"Earned from transaction "+o.Number, now)); err != nil {
				return err
			}
		}

		o.Status = StatusPaid
		o.PaymentMethod = in.Method
		o.PaymentAmount = in.Amount
		o.ChangeAmount = sum.Change
		o.TaxAmount = sum.TaxAmount
		o.DiscountAmount = sum.TotalDiscount
		o.TotalAmount = sum.Total
		o.PointsUsed = sum.PointsUsed
		o.PointsEarned = sum.PointsEarned
		o.PaidAt = &now
		o.UpdatedAt = now

		if err := s.deps.Orders.Update(ctx, o); err != nil {
			return errors.Wrap(err, "update order")
		}
		res = &PayResult{Order: o, Summary: sum}
		return nil
	})
	if err != nil {
		return nil, err
	}

	attrs := metric.WithAttributes(
		attribute.String("store_id", res.Order.StoreID),
		attribute.String("payment_method", string(res.Order.PaymentMethod)),
	)
	s.paid.Add(ctx, 1, attrs)
	s.totals.Record(ctx, res.Order.TotalAmount.InexactFloat64(), attrs)
	s.afterCommit(ctx, EventPaid, res.Order, actor, SnapshotPaid)
	return res, nil
}

// Cancel aborts a pending or paid order. Stock of every line is restored;
// for a paid order used points are refunded and earned points reversed.
func (s *Service) Cancel(ctx context.Context, actor Actor, id string, in CancelInput) (_ *Order, err error) {
	ctx, span := s.startSpan(ctx, "Cancel", actor, id)
	defer func() { endSpan(span, err) }()

	if err := actor.validate(); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var o *Order
	err = s.deps.Tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		o, err = s.deps.Orders.GetForUpdate(ctx, actor.StoreID, id)
		if err != nil {
			return err
		}
		if !o.CanTransition(StatusCancelled) {
			return ErrAlreadyCancelled
		}
		refund := o.Status == StatusPaid && o.CustomerID != ""
		now := s.now()

		// Customer row before product rows, the same order Create uses.
		var c *loyalty.Customer
		if refund {
			if c, err = s.deps.Points.Customer(ctx, o.StoreID, o.CustomerID); err != nil {
				return err
			}
		}
		if err := stock.Apply(ctx, s.deps.Stock, movements(o.Items, nil)); err != nil {
			return err
		}
		if refund {
			if err := s.reversePoints(ctx, o, c, actor, now); err != nil {
				return err
			}
		}

		o.Status = StatusCancelled
		o.CancelledBy = actor.UserID
		o.CancelledAt = &now
		o.CancellationReason = in.Reason
		o.UpdatedAt = now
		if err := s.deps.Orders.Update(ctx, o); err != nil {
			return errors.Wrap(err, "update order")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cancelled.Add(ctx, 1, metric.WithAttributes(attribute.String("store_id", o.StoreID)))
	s.afterCommit(ctx, EventCancelled, o, actor, "")
	return o, nil
}

// reversePoints refunds used points and takes back earned ones. Earned points
// the customer already spent cannot be taken back below a zero balance.
func (s *Service) reversePoints(ctx context.Context, o *Order, c *loyalty.Customer, actor Actor, now time.Time) error {
	balance := c.Points
	if o.PointsUsed > 0 {
		e, err := s.deps.Points.Earn(ctx, s.pointsChange(o, actor, o.PointsUsed, loyalty.KindRefunded,
			"Cancelled transaction - refunded used points", now))
		if err != nil {
			return err
		}
		balance = e.BalanceAfter
	}
	if o.PointsEarned <= 0 {
		return nil
	}

	n := min(o.PointsEarned, balance)
	if n < o.PointsEarned {
		zctx.From(ctx).Warn("Earned points partially reversed",
			zap.String("order_number", o.Number),
			zap.Int("earned", o.PointsEarned),
			zap.Int("reversed", n),
		)
	}
	if n == 0 {
		return nil
	}
	_, err := s.deps.Points.Redeem(ctx, s.pointsChange(o, actor, n, loyalty.KindAdjusted,
		"Cancelled transaction - reversed earned points", now))
	return err
}

// mutatePending locks a pending order, applies fn, recalculates and saves it.
// The pending snapshot is rendered again after commit.
func (s *Service) mutatePending(ctx context.Context, actor Actor, id string, fn func(ctx context.Context, o *Order) error) (*Order, error) {
	var o *Order
	err := s.deps.Tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		o, err = s.deps.Orders.GetForUpdate(ctx, actor.StoreID, id)
		if err != nil {
			return err
		}
		if !o.IsPending() {
			return ErrNotPending
		}
		if err := fn(ctx, o); err != nil {
			return err
		}

		o.Recalculate()
		o.UpdatedAt = s.now()
		if err := s.deps.Orders.Update(ctx, o); err != nil {
			return errors.Wrap(err, "update order")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterCommit(ctx, EventUpdated, o, actor, SnapshotPending)
	return o, nil
}

// applicableVoucher looks up a voucher code and returns it only when it can
// be applied to the order today. Unknown codes fail; inapplicable ones are
// ignored.
func (s *Service) applicableVoucher(ctx context.Context, o *Order, code string, now time.Time) (*voucher.Voucher, error) {
	if code == "" {
		return nil, nil
	}
	v, err := s.deps.Vouchers.FindByCode(ctx, o.StoreID, code)
	if err != nil {
		return nil, err
	}
	if !v.Applicable(now, o.Subtotal) {
		zctx.From(ctx).Info("Voucher not applicable",
			zap.String("order_number", o.Number),
			zap.String("voucher", v.Code),
		)
		return nil, nil
	}
	return v, nil
}

func (s *Service) buildItems(ctx context.Context, storeID, orderID string, in []ItemInput) ([]Item, error) {
	ids := make([]string, len(in))
	for i, it := range in {
		ids[i] = it.ProductID
	}

	products, err := s.deps.Products.GetByIDs(ctx, storeID, ids)
	if err != nil {
		return nil, errors.Wrap(err, "get products")
	}
	byID := make(map[string]*product.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	items := make([]Item, 0, len(in))
	for _, it := range in {
		p, ok := byID[it.ProductID]
		if !ok {
			return nil, &ProductNotFoundError{ProductID: it.ProductID}
		}
		items = append(items, newItem(orderID, p, it.Quantity))
	}
	return items, nil
}

func (s *Service) pointsChange(o *Order, actor Actor, points int, kind loyalty.Kind, notes string, at time.Time) loyalty.Change {
	return loyalty.Change{
		CustomerID:    o.CustomerID,
		Points:        points,
		Kind:          kind,
		TransactionID: o.ID,
		Notes:         notes,
		ActorID:       actor.UserID,
		At:            at,
	}
}

// afterCommit runs the best-effort side effects of a committed transition.
func (s *Service) afterCommit(ctx context.Context, event string, o *Order, actor Actor, snap SnapshotType) {
	lg := zctx.From(ctx)
	if snap != "" {
		if err := s.deps.Snapshots.Generate(ctx, o, snap); err != nil {
			lg.Warn("Snapshot generation failed",
				zap.String("order_number", o.Number),
				zap.String("type", string(snap)),
				zap.Error(err),
			)
		}
	}
	if err := s.deps.Events.Publish(ctx, newEvent(event, o, actor.UserID, s.now())); err != nil {
		lg.Warn("Publish order event failed",
			zap.String("order_number", o.Number),
			zap.String("event", event),
			zap.Error(err),
		)
	}
}

func (s *Service) startSpan(ctx context.Context, op string, actor Actor, orderID string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "order."+op, trace.WithAttributes(
		attribute.String("pos.store_id", actor.StoreID),
		attribute.String("pos.order_id", orderID),
	))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func newItem(orderID string, p *product.Product, qty int) Item {
	return Item{
		ID:           uuid.NewString(),
		OrderID:      orderID,
		ProductID:    p.ID,
		ProductName:  p.Name,
		ProductPrice: p.Price,
		Quantity:     qty,
		Subtotal:     pricing.LineSubtotal(p.Price, qty),
	}
}

// movements returns the stock changes for swapping old lines for new ones.
func movements(old, next []Item) []stock.Movement {
	moves := make([]stock.Movement, 0, len(old)+len(next))
	for _, it := range old {
		moves = append(moves, stock.Movement{ProductID: it.ProductID, Delta: it.Quantity})
	}
	for _, it := range next {
		moves = append(moves, stock.Movement{ProductID: it.ProductID, Delta: -it.Quantity})
	}
	return moves
}

func valueOr(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
