// Package snapshot renders immutable JSON receipts of orders.
//
// A snapshot is keyed by order number and type. Pending snapshots are always
// rendered fresh because the order can still change. Paid snapshots are
// served from storage unless they were rendered by an older layout, detected
// through the Version stamp in the document.
package snapshot

import (
	"context"
	"slices"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/xenking/pos-engine/internal/domain/auth"
	"github.com/xenking/pos-engine/internal/domain/fault"
	"github.com/xenking/pos-engine/internal/domain/loyalty"
	"github.com/xenking/pos-engine/internal/domain/order"
	"github.com/xenking/pos-engine/internal/domain/store"
)

// Version is stamped into every snapshot. Bump it whenever the document
// layout changes so cached paid snapshots get rendered again.
const Version = 3

// ErrNotFound is returned by a Storage when no snapshot exists for a key.
var ErrNotFound = errors.New("snapshot not found")

// Storage persists rendered snapshots.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}

// Users resolves the cashier shown on a receipt.
type Users interface {
	GetUser(ctx context.Context, id string) (*auth.User, error)
}

// Customers resolves the customer shown on a receipt.
type Customers interface {
	Customer(ctx context.Context, storeID, id string) (*loyalty.Customer, error)
}

var _ order.Snapshotter = (*Generator)(nil)

// Generator renders snapshots and keeps them in Storage.
type Generator struct {
	orders    order.Repository
	stores    store.Repository
	customers Customers
	users     Users
	storage   Storage
	now       func() time.Time
}

// NewGenerator creates a Generator.
func NewGenerator(
	orders order.Repository,
	stores store.Repository,
	customers Customers,
	users Users,
	storage Storage,
) *Generator {
	return &Generator{
		orders:    orders,
		stores:    stores,
		customers: customers,
		users:     users,
		storage:   storage,
		now:       time.Now,
	}
}

// Key returns the storage key of a snapshot.
func Key(number string, t order.SnapshotType) string {
	return number + "_" + string(t) + ".json"
}

// Generate renders the snapshot of o and stores it.
func (g *Generator) Generate(ctx context.Context, o *order.Order, t order.SnapshotType) error {
	data, err := g.render(ctx, o, t)
	if err != nil {
		return errors.Wrap(err, "render snapshot")
	}
	if err := g.storage.Put(ctx, Key(o.Number, t), data); err != nil {
		return errors.Wrapf(err, "store snapshot %s", Key(o.Number, t))
	}
	return nil
}

// Get returns the snapshot of an order of the store.
func (g *Generator) Get(ctx context.Context, storeID, number string, t order.SnapshotType) ([]byte, error) {
	if t != order.SnapshotPending && t != order.SnapshotPaid {
		return nil, fault.Validation("snapshot type must be pending or paid, got %q", t)
	}

	o, err := g.orders.GetByNumber(ctx, storeID, number)
	if err != nil {
		return nil, err
	}

	lg := zctx.From(ctx)
	key := Key(o.Number, t)
	if t == order.SnapshotPaid {
		if o.Status != order.StatusPaid {
			return nil, fault.Conflict("order %s is not paid", o.Number)
		}
		data, err := g.storage.Get(ctx, key)
		switch {
		case err == nil && DocumentVersion(data) == Version:
			return data, nil
		case err != nil && !errors.Is(err, ErrNotFound):
			lg.Warn("Read cached snapshot failed", zap.String("key", key), zap.Error(err))
		}
	}

	data, err := g.render(ctx, o, t)
	if err != nil {
		return nil, errors.Wrap(err, "render snapshot")
	}
	if err := g.storage.Put(ctx, key, data); err != nil {
		lg.Warn("Store snapshot failed", zap.String("key", key), zap.Error(err))
	}
	return data, nil
}

// DocumentVersion reads the version stamp of a rendered snapshot. It returns
// 0 for documents without a readable stamp.
func DocumentVersion(data []byte) int {
	var v int
	err := jx.DecodeBytes(data).ObjBytes(func(d *jx.Decoder, key []byte) error {
		if string(key) != "version" {
			return d.Skip()
		}
		n, err := d.Int()
		v = n
		return err
	})
	if err != nil {
		return 0
	}
	return v
}

func (g *Generator) render(ctx context.Context, o *order.Order, t order.SnapshotType) ([]byte, error) {
	st, err := g.stores.GetByID(ctx, o.StoreID)
	if err != nil {
		return nil, errors.Wrap(err, "get store")
	}
	settings, err := g.stores.Settings(ctx, o.StoreID)
	if err != nil {
		return nil, errors.Wrap(err, "get store settings")
	}

	var customer *loyalty.Customer
	if o.CustomerID != "" {
		if customer, err = g.customers.Customer(ctx, o.StoreID, o.CustomerID); err != nil && !errors.Is(err, fault.ErrNotFound) {
			return nil, errors.Wrap(err, "get customer")
		}
	}
	user, err := g.users.GetUser(ctx, o.UserID)
	if err != nil && !errors.Is(err, fault.ErrNotFound) {
		return nil, errors.Wrap(err, "get user")
	}

	e := &jx.Encoder{}
	e.SetIdent(2)
	e.Obj(func(e *jx.Encoder) {
		e.Field("version", func(e *jx.Encoder) { e.Int(Version) })
		e.Field("type", func(e *jx.Encoder) { e.Str(string(t)) })
		e.Field("generated_at", func(e *jx.Encoder) { e.Str(g.now().Format(time.RFC3339)) })
		e.Field("transaction", func(e *jx.Encoder) { encodeOrder(e, o, customer, user) })
		e.Field("store", func(e *jx.Encoder) { encodeStore(e, st) })
		e.Field("store_settings", func(e *jx.Encoder) { encodeSettings(e, settings) })
	})
	return e.Bytes(), nil
}

func encodeOrder(e *jx.Encoder, o *order.Order, c *loyalty.Customer, u *auth.User) {
	e.Obj(func(e *jx.Encoder) {
		str(e, "id", o.ID)
		str(e, "transaction_number", o.Number)
		str(e, "status", string(o.Status))
		str(e, "order_type", string(o.Type))
		str(e, "notes", o.Notes)
		money(e, "subtotal", o.Subtotal)
		money(e, "tax_percentage", o.TaxPercentage)
		money(e, "tax_amount", o.TaxAmount)
		money(e, "delivery_fee", o.DeliveryFee)
		money(e, "discount_amount", o.DiscountAmount)
		money(e, "total_amount", o.TotalAmount)
		str(e, "payment_method", string(o.PaymentMethod))
		money(e, "payment_amount", o.PaymentAmount)
		money(e, "change_amount", o.ChangeAmount)
		e.Field("points_used", func(e *jx.Encoder) { e.Int(o.PointsUsed) })
		e.Field("points_earned", func(e *jx.Encoder) { e.Int(o.PointsEarned) })
		timestamp(e, "created_at", &o.CreatedAt)
		timestamp(e, "paid_at", o.PaidAt)
		if o.VoucherID != "" {
			str(e, "voucher_id", o.VoucherID)
		}
		if o.Status == order.StatusCancelled {
			str(e, "cancelled_by", o.CancelledBy)
			timestamp(e, "cancelled_at", o.CancelledAt)
			str(e, "cancellation_reason", o.CancellationReason)
		}
		e.Field("items", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, it := range o.Items {
					e.Obj(func(e *jx.Encoder) {
						str(e, "product_id", it.ProductID)
						str(e, "product_name", it.ProductName)
						money(e, "product_price", it.ProductPrice)
						e.Field("quantity", func(e *jx.Encoder) { e.Int(it.Quantity) })
						money(e, "subtotal", it.Subtotal)
					})
				}
			})
		})
		e.Field("customer", func(e *jx.Encoder) {
			if c == nil {
				e.Null()
				return
			}
			e.Obj(func(e *jx.Encoder) {
				str(e, "id", c.ID)
				str(e, "name", c.Name)
				str(e, "phone", c.Phone)
				e.Field("points", func(e *jx.Encoder) { e.Int(c.Points) })
			})
		})
		e.Field("user", func(e *jx.Encoder) {
			if u == nil {
				e.Null()
				return
			}
			e.Obj(func(e *jx.Encoder) {
				str(e, "id", u.ID)
				str(e, "name", u.Name)
			})
		})
	})
}

func encodeStore(e *jx.Encoder, s *store.Store) {
	e.Obj(func(e *jx.Encoder) {
		str(e, "id", s.ID)
		str(e, "name", s.Name)
		str(e, "slug", s.Slug)
		str(e, "type", s.Type)
		str(e, "address", s.Address)
		str(e, "phone", s.Phone)
		str(e, "logo", s.Logo)
	})
}

func encodeSettings(e *jx.Encoder, s store.Settings) {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	e.Obj(func(e *jx.Encoder) {
		for _, k := range keys {
			str(e, k, s[k])
		}
	})
}

func str(e *jx.Encoder, name, v string) {
	e.Field(name, func(e *jx.Encoder) { e.Str(v) })
}

func money(e *jx.Encoder, name string, v decimal.Decimal) {
	e.Field(name, func(e *jx.Encoder) { e.Str(v.StringFixed(2)) })
}

func timestamp(e *jx.Encoder, name string, t *time.Time) {
	e.Field(name, func(e *jx.Encoder) {
		if t == nil || t.IsZero() {
			e.Null()
			return
		}
		e.Str(t.UTC().Format(time.RFC3339))
	})
}
