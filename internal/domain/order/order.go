package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xenking/pos-engine/internal/domain/pricing"
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

// Type tells whether the order is eaten in or taken away.
type Type string

const (
	TypeDineIn   Type = "dine_in"
	TypeTakeaway Type = "takeaway"
)

// PaymentMethod is how a paid order was settled.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentQRIS     PaymentMethod = "qris"
	PaymentTransfer PaymentMethod = "transfer"
)

// Order is one customer checkout. Money fields hold 2-place decimals.
type Order struct {
	ID         string
	StoreID    string
	UserID     string
	CustomerID string
	VoucherID  string
	Number     string
	Status     Status
	Type       Type
	Notes      string

	Subtotal       decimal.Decimal
	TaxPercentage  decimal.Decimal
	TaxAmount      decimal.Decimal
	DeliveryFee    decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	PaymentMethod  PaymentMethod
	PaymentAmount  decimal.Decimal
	ChangeAmount   decimal.Decimal
	PointsUsed     int
	PointsEarned   int

	PaidAt             *time.Time
	CancelledBy        string
	CancelledAt        *time.Time
	CancellationReason string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Items []Item
}

// Item is an order line. ProductName and ProductPrice are copied from the
// product when the line is created and never change afterwards.
type Item struct {
	ID           string
	OrderID      string
	ProductID    string
	ProductName  string
	ProductPrice decimal.Decimal
	Quantity     int
	Subtotal     decimal.Decimal
}

// transitions lists the allowed status changes.
var transitions = map[Status][]Status{
	StatusPending: {StatusPaid, StatusCancelled},
	StatusPaid:    {StatusCancelled},
}

// CanTransition reports whether the order may move to the given status.
func (o *Order) CanTransition(to Status) bool {
	for _, s := range transitions[o.Status] {
		if s == to {
			return true
		}
	}
	return false
}

// IsPending reports whether the order can still be edited.
func (o *Order) IsPending() bool { return o.Status == StatusPending }

// Item returns the line with the given id.
func (o *Order) Item(id string) (int, bool) {
	for i := range o.Items {
		if o.Items[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// ItemForProduct returns the line that sells the given product.
func (o *Order) ItemForProduct(productID string) (int, bool) {
	for i := range o.Items {
		if o.Items[i].ProductID == productID {
			return i, true
		}
	}
	return -1, false
}

// Recalculate refreshes line subtotals, the order subtotal and the pending
// totals from the current items, tax, fee and discount fields.
func (o *Order) Recalculate() {
	subtotal := decimal.Zero
	for i := range o.Items {
		it := &o.Items[i]
		it.Subtotal = pricing.LineSubtotal(it.ProductPrice, it.Quantity)
		subtotal = subtotal.Add(it.Subtotal)
	}

	t := pricing.Recalculate(subtotal, o.TaxPercentage, o.DeliveryFee, o.DiscountAmount)
	o.Subtotal = t.Subtotal
	o.TaxAmount = t.TaxAmount
	o.TotalAmount = t.Total
}

// Filter narrows an order listing.
type Filter struct {
	Status     Status
	CustomerID string
	UserID     string
	// Search matches a fragment of the order number, case-insensitive.
	Search string
	// Date selects the calendar day of Date's location. It replaces From and To.
	Date   *time.Time
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// Repository defines persistence operations for orders and their items.
type Repository interface {
	// Create inserts the order together with its items.
	Create(ctx context.Context, o *Order) error
	Get(ctx context.Context, storeID, id string) (*Order, error)
	// GetForUpdate loads the order and locks its row until the surrounding
	// unit of work ends.
	GetForUpdate(ctx context.Context, storeID, id string) (*Order, error)
	GetByNumber(ctx context.Context, storeID, number string) (*Order, error)
	List(ctx context.Context, storeID string, f Filter) ([]Order, error)
	// Update writes the order fields and replaces its items with o.Items.
	Update(ctx context.Context, o *Order) error
	// NextNumber returns the next sequence for an order number prefix,
	// serialised per prefix within the unit of work.
	NextNumber(ctx context.Context, storeID, prefix string) (int, error)
}
