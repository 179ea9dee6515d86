package order_test

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/pos-engine/internal/domain/fault"
	"github.com/xenking/pos-engine/internal/domain/loyalty"
	"github.com/xenking/pos-engine/internal/domain/order"
	"github.com/xenking/pos-engine/internal/domain/product"
	"github.com/xenking/pos-engine/internal/domain/stock"
	"github.com/xenking/pos-engine/internal/domain/store"
	"github.com/xenking/pos-engine/internal/domain/voucher"
	"github.com/xenking/pos-engine/internal/storage/memory"
)

var (
	testNow = time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	cashier = order.Actor{StoreID: "s1", UserID: "u1"}
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []order.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e order.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

type recordingSnapshotter struct {
	err   error
	calls []order.SnapshotType
}

func (s *recordingSnapshotter) Generate(_ context.Context, _ *order.Order, t order.SnapshotType) error {
	s.calls = append(s.calls, t)
	return s.err
}

type fixture struct {
	svc    *order.Service
	mem    *memory.Store
	events *recordingPublisher
	snaps  *recordingSnapshotter
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	m := memory.New()
	m.AddStore(store.Store{ID: "s1", Name: "Kopi Senja"}, store.Settings{store.SettingPointsRate: "1000"})
	m.AddProduct(product.Product{ID: "A", StoreID: "s1", Name: "Latte", Price: decimal.NewFromInt(10000), Stock: 10, IsActive: true})
	m.AddProduct(product.Product{ID: "B", StoreID: "s1", Name: "Croissant", Price: decimal.NewFromInt(5000), Stock: 5, IsActive: true})
	m.AddProduct(product.Product{ID: "X", StoreID: "s2", Name: "Foreign", Price: decimal.NewFromInt(1), Stock: 5, IsActive: true})
	m.AddCustomer(loyalty.Customer{ID: "c1", StoreID: "s1", Name: "Ann", Points: 10000})
	limit := 5
	m.AddVoucher(voucher.Voucher{
		ID: "v1", StoreID: "s1", Code: "HEMAT5", Type: voucher.TypeFixed,
		Value: decimal.NewFromInt(5000), MinPurchase: decimal.NewFromInt(20000),
		UsageLimit: &limit, IsActive: true,
		StartDate: testNow.AddDate(0, 0, -1), EndDate: testNow.AddDate(0, 0, 1),
	})

	f := &fixture{mem: m, events: &recordingPublisher{}, snaps: &recordingSnapshotter{}}
	svc, err := order.NewService(order.Deps{
		Tx:        m,
		Orders:    m.Orders(),
		Products:  m.Products(),
		Stock:     m.Stock(),
		Points:    m.Points(),
		Vouchers:  m.Vouchers(),
		Stores:    m.Stores(),
		Snapshots: f.snaps,
		Events:    f.events,
	}, order.WithClock(func() time.Time { return testNow }))
	require.NoError(t, err)
	f.svc = svc
	return f
}

func (f *fixture) create(t *testing.T, customerID string) *order.Order {
	t.Helper()
	o, err := f.svc.Create(context.Background(), cashier, order.CreateInput{
		CustomerID: customerID,
		Items: []order.ItemInput{
			{ProductID: "A", Quantity: 2},
			{ProductID: "B", Quantity: 1},
		},
	})
	require.NoError(t, err)
	return o
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func ptr[T any](v T) *T { return &v }

func assertDecimal(t *testing.T, want int64, got decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "%s: want %d, got %s", msg, want, got)
}

func TestCreate(t *testing.T) {
	f := newFixture(t)

	o := f.create(t, "")

	assert.Equal(t, order.StatusPending, o.Status)
	assert.Equal(t, order.TypeTakeaway, o.Type)
	assert.Equal(t, "TRX-s1-20240501-0001", o.Number)
	assertDecimal(t, 25000, o.Subtotal, "subtotal")
	assertDecimal(t, 25000, o.TotalAmount, "total")
	require.Len(t, o.Items, 2)
	assert.Equal(t, "Latte", o.Items[0].ProductName)
	assertDecimal(t, 20000, o.Items[0].Subtotal, "line subtotal")

	assert.Equal(t, 8, f.mem.StockOf("A"))
	assert.Equal(t, 4, f.mem.StockOf("B"))

	assert.Equal(t, []order.SnapshotType{order.SnapshotPending}, f.snaps.calls)
	assert.Equal(t, []string{order.EventCreated}, f.events.types())

	second := f.create(t, "")
	assert.Equal(t, "TRX-s1-20240501-0002", second.Number)
}

func TestCreateMergesDuplicateProducts(t *testing.T) {
	f := newFixture(t)

	o, err := f.svc.Create(context.Background(), cashier, order.CreateInput{
		Items: []order.ItemInput{{ProductID: "A", Quantity: 1}, {ProductID: "A", Quantity: 2}},
	})
	require.NoError(t, err)
	require.Len(t, o.Items, 1)
	assert.Equal(t, 3, o.Items[0].Quantity)
	assert.Equal(t, 7, f.mem.StockOf("A"))
}

func TestCreateRejects(t *testing.T) {
	tests := []struct {
		name    string
		in      order.CreateInput
		wantErr error
	}{
		{name: "no items", in: order.CreateInput{}, wantErr: fault.ErrValidation},
		{name: "zero quantity", in: order.CreateInput{Items: []order.ItemInput{{ProductID: "A"}}}, wantErr: fault.ErrValidation},
		{name: "unknown product", in: order.CreateInput{Items: []order.ItemInput{{ProductID: "nope", Quantity: 1}}}, wantErr: fault.ErrValidation},
		{name: "other store product", in: order.CreateInput{Items: []order.ItemInput{{ProductID: "X", Quantity: 1}}}, wantErr: fault.ErrNotFound},
		{name: "unknown customer", in: order.CreateInput{CustomerID: "ghost", Items: []order.ItemInput{{ProductID: "A", Quantity: 1}}}, wantErr: fault.ErrNotFound},
		{name: "bad tax", in: order.CreateInput{TaxPercentage: ptr(dec(101)), Items: []order.ItemInput{{ProductID: "A", Quantity: 1}}}, wantErr: fault.ErrValidation},
		{
			name: "oversell rolls back earlier lines",
			in: order.CreateInput{Items: []order.ItemInput{
				{ProductID: "A", Quantity: 1},
				{ProductID: "B", Quantity: 6},
			}},
			wantErr: fault.ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.svc.Create(context.Background(), cashier, tt.in)
			require.ErrorIs(t, err, tt.wantErr)

			assert.Equal(t, 10, f.mem.StockOf("A"))
			assert.Equal(t, 5, f.mem.StockOf("B"))
			assert.Empty(t, f.events.types())
		})
	}
}

func TestPay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := f.create(t, "")

	res, err := f.svc.Pay(ctx, cashier, o.ID, order.PayInput{
		Method:        order.PaymentCash,
		Amount:        dec(30000),
		VoucherCode:   "hemat5",
		TaxPercentage: ptr(dec(10)),
		DeliveryFee:   ptr(dec(2000)),
	})
	require.NoError(t, err)

	paid := res.Order
	assert.Equal(t, order.StatusPaid, paid.Status)
	assertDecimal(t, 2500, paid.TaxAmount, "tax")
	assertDecimal(t, 24500, paid.TotalAmount, "total")
	assertDecimal(t, 5000, paid.DiscountAmount, "discount")
	assertDecimal(t, 5500, paid.ChangeAmount, "change")
	assert.Equal(t, "v1", paid.VoucherID)
	require.NotNil(t, paid.PaidAt)
	assert.Zero(t, paid.PointsEarned, "walk-in orders earn nothing")

	v, _ := f.mem.Voucher("v1")
	assert.Equal(t, 1, v.UsedCount)

	_, err = f.svc.Pay(ctx, cashier, o.ID, order.PayInput{Method: order.PaymentCash, Amount: dec(30000), VoucherCode: "HEMAT5"})
	require.ErrorIs(t, err, fault.ErrStateConflict)
	assert.ErrorIs(t, err, order.ErrAlreadyPaid)

	v, _ = f.mem.Voucher("v1")
	assert.Equal(t, 1, v.UsedCount, "rejected payment must not consume the voucher")

	assert.Equal(t, []order.SnapshotType{order.SnapshotPending, order.SnapshotPaid}, f.snaps.calls)
	assert.Equal(t, []string{order.EventCreated, order.EventPaid}, f.events.types())
}

func TestPayPointsCappedByBalance(t *testing.T) {
	f := newFixture(t)
	o, err := f.svc.Create(context.Background(), cashier, order.CreateInput{
		CustomerID: "c1",
		Items:      []order.ItemInput{{ProductID: "A", Quantity: 4}},
	})
	require.NoError(t, err)

	res, err := f.svc.Pay(context.Background(), cashier, o.ID, order.PayInput{
		Method:      order.PaymentCard,
		Amount:      dec(30000),
		PointsToUse: 30000,
	})
	require.NoError(t, err)

	assert.Equal(t, 10000, res.Order.PointsUsed)
	assertDecimal(t, 30000, res.Order.TotalAmount, "total")
	assert.Equal(t, 40, res.Order.PointsEarned)
	assert.Equal(t, 40, f.mem.Balance("c1"))

	history, err := f.mem.Points().History(context.Background(), "c1", 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, loyalty.KindEarned, history[0].Kind)
	assert.Equal(t, loyalty.KindRedeemed, history[1].Kind)
	assert.Equal(t, o.ID, history[1].TransactionID)
}

func TestPayPointsCappedByPayable(t *testing.T) {
	f := newFixture(t)
	o, err := f.svc.Create(context.Background(), cashier, order.CreateInput{
		CustomerID: "c1",
		Items:      []order.ItemInput{{ProductID: "B", Quantity: 1}},
	})
	require.NoError(t, err)

	res, err := f.svc.Pay(context.Background(), cashier, o.ID, order.PayInput{
		Method:      order.PaymentCash,
		PointsToUse: 8000,
	})
	require.NoError(t, err)

	assert.Equal(t, 5000, res.Order.PointsUsed)
	assert.True(t, res.Order.TotalAmount.IsZero())
	assert.Equal(t, 10000-5000+5, f.mem.Balance("c1"))
}

func TestPayRejects(t *testing.T) {
	tests := []struct {
		name    string
		in      order.PayInput
		wantErr error
	}{
		{name: "unknown method", in: order.PayInput{Method: "barter"}, wantErr: fault.ErrValidation},
		{name: "negative amount", in: order.PayInput{Method: order.PaymentCash, Amount: dec(-1)}, wantErr: fault.ErrValidation},
		{name: "unknown voucher", in: order.PayInput{Method: order.PaymentCash, VoucherCode: "NOPE"}, wantErr: fault.ErrNotFound},
		{name: "points without customer", in: order.PayInput{Method: order.PaymentCash, PointsToUse: 10}, wantErr: fault.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			o := f.create(t, "")

			_, err := f.svc.Pay(context.Background(), cashier, o.ID, tt.in)
			require.ErrorIs(t, err, tt.wantErr)

			got, err := f.svc.Get(context.Background(), cashier, o.ID)
			require.NoError(t, err)
			assert.Equal(t, order.StatusPending, got.Status)
		})
	}
}

func TestPayIgnoresInapplicableVoucher(t *testing.T) {
	f := newFixture(t)
	o, err := f.svc.Create(context.Background(), cashier, order.CreateInput{
		Items: []order.ItemInput{{ProductID: "B", Quantity: 1}},
	})
	require.NoError(t, err)

	res, err := f.svc.Pay(context.Background(), cashier, o.ID, order.PayInput{
		Method: order.PaymentQRIS, Amount: dec(5000), VoucherCode: "HEMAT5",
	})
	require.NoError(t, err)

	assert.Empty(t, res.Order.VoucherID)
	assertDecimal(t, 5000, res.Order.TotalAmount, "total")
	v, _ := f.mem.Voucher("v1")
	assert.Zero(t, v.UsedCount)
}

func TestCancelPaidOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := f.create(t, "c1")

	_, err := f.svc.Pay(ctx, cashier, o.ID, order.PayInput{
		Method: order.PaymentCash, Amount: dec(25000), PointsToUse: 3000,
	})
	require.NoError(t, err)
	assert.Equal(t, 10000-3000+25, f.mem.Balance("c1"))

	cancelled, err := f.svc.Cancel(ctx, cashier, o.ID, order.CancelInput{Reason: "customer left"})
	require.NoError(t, err)

	assert.Equal(t, order.StatusCancelled, cancelled.Status)
	assert.Equal(t, "u1", cancelled.CancelledBy)
	assert.Equal(t, "customer left", cancelled.CancellationReason)
	require.NotNil(t, cancelled.CancelledAt)

	assert.Equal(t, 10, f.mem.StockOf("A"))
	assert.Equal(t, 5, f.mem.StockOf("B"))
	assert.Equal(t, 10000, f.mem.Balance("c1"))

	_, err = f.svc.Cancel(ctx, cashier, o.ID, order.CancelInput{Reason: "again"})
	require.ErrorIs(t, err, fault.ErrStateConflict)
	assert.Equal(t, 10, f.mem.StockOf("A"))
	assert.Equal(t, 10000, f.mem.Balance("c1"))

	_, err = f.svc.Pay(ctx, cashier, o.ID, order.PayInput{Method: order.PaymentCash})
	assert.ErrorIs(t, err, order.ErrAlreadyCancelled)

	assert.Equal(t, []string{order.EventCreated, order.EventPaid, order.EventCancelled}, f.events.types())
}

func TestCancelClampsSpentEarnedPoints(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := f.create(t, "c1")

	_, err := f.svc.Pay(ctx, cashier, o.ID, order.PayInput{Method: order.PaymentCash, Amount: dec(25000)})
	require.NoError(t, err)
	require.Equal(t, 10025, f.mem.Balance("c1"))

	_, err = f.mem.Points().Redeem(ctx, loyalty.Change{CustomerID: "c1", Points: 10010, Kind: loyalty.KindRedeemed})
	require.NoError(t, err)

	_, err = f.svc.Cancel(ctx, cashier, o.ID, order.CancelInput{Reason: "refund"})
	require.NoError(t, err)
	assert.Equal(t, 0, f.mem.Balance("c1"))
}

func TestCancelPendingOrder(t *testing.T) {
	f := newFixture(t)
	o := f.create(t, "")

	_, err := f.svc.Cancel(context.Background(), cashier, o.ID, order.CancelInput{Reason: "  "})
	require.ErrorIs(t, err, fault.ErrValidation)

	_, err = f.svc.Cancel(context.Background(), cashier, o.ID, order.CancelInput{Reason: "mistake"})
	require.NoError(t, err)
	assert.Equal(t, 10, f.mem.StockOf("A"))
	assert.Equal(t, 5, f.mem.StockOf("B"))
}

func TestEditPendingOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := f.create(t, "")

	o, err := f.svc.AddItem(ctx, cashier, o.ID, order.ItemInput{ProductID: "A", Quantity: 1})
	require.NoError(t, err)
	require.Len(t, o.Items, 2)
	assert.Equal(t, 3, o.Items[0].Quantity)
	assertDecimal(t, 35000, o.Subtotal, "subtotal after add")
	assert.Equal(t, 7, f.mem.StockOf("A"))

	bID := o.Items[1].ID
	o, err = f.svc.RemoveItem(ctx, cashier, o.ID, bID)
	require.NoError(t, err)
	require.Len(t, o.Items, 1)
	assertDecimal(t, 30000, o.Subtotal, "subtotal after remove")
	assert.Equal(t, 5, f.mem.StockOf("B"))

	_, err = f.svc.RemoveItem(ctx, cashier, o.ID, bID)
	assert.ErrorIs(t, err, fault.ErrNotFound)

	o, err = f.svc.ReplaceItems(ctx, cashier, o.ID, []order.ItemInput{{ProductID: "B", Quantity: 2}})
	require.NoError(t, err)
	require.Len(t, o.Items, 1)
	assertDecimal(t, 10000, o.Subtotal, "subtotal after replace")
	assert.Equal(t, 10, f.mem.StockOf("A"))
	assert.Equal(t, 3, f.mem.StockOf("B"))

	o, err = f.svc.Update(ctx, cashier, o.ID, order.UpdateInput{
		Notes:         ptr("no sugar"),
		Type:          ptr(order.TypeDineIn),
		TaxPercentage: ptr(dec(11)),
	})
	require.NoError(t, err)
	assert.Equal(t, "no sugar", o.Notes)
	assert.Equal(t, order.TypeDineIn, o.Type)
	assertDecimal(t, 1100, o.TaxAmount, "tax")
	assertDecimal(t, 11100, o.TotalAmount, "total")

	_, err = f.svc.ReplaceItems(ctx, cashier, o.ID, []order.ItemInput{{ProductID: "B", Quantity: 99}})
	require.ErrorIs(t, err, fault.ErrInsufficientBalance)
	assert.Equal(t, 10, f.mem.StockOf("A"))
	assert.Equal(t, 3, f.mem.StockOf("B"))
}

func TestEditNonPendingOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := f.create(t, "")
	_, err := f.svc.Pay(ctx, cashier, o.ID, order.PayInput{Method: order.PaymentCash, Amount: dec(25000)})
	require.NoError(t, err)

	_, err = f.svc.AddItem(ctx, cashier, o.ID, order.ItemInput{ProductID: "A", Quantity: 1})
	assert.ErrorIs(t, err, order.ErrNotPending)
	_, err = f.svc.RemoveItem(ctx, cashier, o.ID, o.Items[0].ID)
	assert.ErrorIs(t, err, fault.ErrStateConflict)
	_, err = f.svc.ReplaceItems(ctx, cashier, o.ID, []order.ItemInput{{ProductID: "A", Quantity: 1}})
	assert.ErrorIs(t, err, fault.ErrStateConflict)
	_, err = f.svc.Update(ctx, cashier, o.ID, order.UpdateInput{Notes: ptr("late")})
	assert.ErrorIs(t, err, fault.ErrStateConflict)

	assert.Equal(t, 8, f.mem.StockOf("A"))
}

func TestCrossStoreAccess(t *testing.T) {
	f := newFixture(t)
	o := f.create(t, "")
	other := order.Actor{StoreID: "s2", UserID: "u9"}

	_, err := f.svc.Get(context.Background(), other, o.ID)
	assert.ErrorIs(t, err, fault.ErrNotFound)
	_, err = f.svc.Cancel(context.Background(), other, o.ID, order.CancelInput{Reason: "x"})
	assert.ErrorIs(t, err, fault.ErrNotFound)
}

func TestSnapshotFailureDoesNotFailTransition(t *testing.T) {
	f := newFixture(t)
	f.snaps.err = errors.New("disk full")

	o := f.create(t, "")
	assert.Equal(t, order.StatusPending, o.Status)

	got, err := f.svc.Get(context.Background(), cashier, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.Number, got.Number)
}

func TestList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := f.create(t, "")
	f.create(t, "c1")
	_, err := f.svc.Pay(ctx, cashier, first.ID, order.PayInput{Method: order.PaymentCash, Amount: dec(25000)})
	require.NoError(t, err)

	paid, err := f.svc.List(ctx, cashier, order.Filter{Status: order.StatusPaid})
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.Equal(t, first.ID, paid[0].ID)

	all, err := f.svc.List(ctx, cashier, order.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := f.svc.List(ctx, cashier, order.Filter{CustomerID: "c1"})
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestItemQuantityBounds(t *testing.T) {
	tests := []struct {
		name string
		run  func(ctx context.Context, f *fixture, o *order.Order) error
	}{
		{
			name: "single line over the maximum",
			run: func(ctx context.Context, f *fixture, o *order.Order) error {
				_, err := f.svc.Create(ctx, cashier, order.CreateInput{
					Items: []order.ItemInput{{ProductID: "B", Quantity: order.MaxItemQuantity + 1}},
				})
				return err
			},
		},
		{
			name: "merged lines overflow int",
			run: func(ctx context.Context, f *fixture, o *order.Order) error {
				_, err := f.svc.Create(ctx, cashier, order.CreateInput{
					Items: []order.ItemInput{{ProductID: "B", Quantity: math.MaxInt}, {ProductID: "B", Quantity: 2}},
				})
				return err
			},
		},
		{
			name: "merged lines over the maximum",
			run: func(ctx context.Context, f *fixture, o *order.Order) error {
				_, err := f.svc.Create(ctx, cashier, order.CreateInput{
					Items: []order.ItemInput{
						{ProductID: "B", Quantity: order.MaxItemQuantity},
						{ProductID: "B", Quantity: 1},
					},
				})
				return err
			},
		},
		{
			name: "replaced items over the maximum",
			run: func(ctx context.Context, f *fixture, o *order.Order) error {
				_, err := f.svc.ReplaceItems(ctx, cashier, o.ID, []order.ItemInput{
					{ProductID: "B", Quantity: order.MaxItemQuantity},
					{ProductID: "B", Quantity: order.MaxItemQuantity},
				})
				return err
			},
		},
		{
			name: "added item merged over the maximum",
			run: func(ctx context.Context, f *fixture, o *order.Order) error {
				_, err := f.svc.AddItem(ctx, cashier, o.ID, order.ItemInput{ProductID: "B", Quantity: order.MaxItemQuantity})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			o := f.create(t, "")
			before := f.mem.StockOf("B")

			err := tt.run(ctx, f, o)
			require.ErrorIs(t, err, fault.ErrValidation)
			assert.Equal(t, before, f.mem.StockOf("B"))
		})
	}
}

func TestEditsRenderPendingSnapshot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := f.create(t, "")

	edits := []struct {
		name string
		run  func() error
	}{
		{"add item", func() error {
			_, err := f.svc.AddItem(ctx, cashier, o.ID, order.ItemInput{ProductID: "A", Quantity: 1})
			return err
		}},
		{"remove item", func() error {
			_, err := f.svc.RemoveItem(ctx, cashier, o.ID, o.Items[1].ID)
			return err
		}},
		{"update", func() error {
			_, err := f.svc.Update(ctx, cashier, o.ID, order.UpdateInput{Notes: ptr("extra hot")})
			return err
		}},
		{"replace items", func() error {
			_, err := f.svc.ReplaceItems(ctx, cashier, o.ID, []order.ItemInput{{ProductID: "B", Quantity: 1}})
			return err
		}},
	}

	for i, e := range edits {
		require.NoError(t, e.run(), e.name)

		require.Len(t, f.snaps.calls, i+2, e.name)
		assert.Equal(t, order.SnapshotPending, f.snaps.calls[i+1], e.name)
		types := f.events.types()
		assert.Equal(t, order.EventUpdated, types[len(types)-1], e.name)
	}
}

type lockLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *lockLog) add(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, s)
}

type loggingStock struct {
	stock.Ledger
	log *lockLog
}

func (s loggingStock) Decrease(ctx context.Context, productID string, qty int) error {
	s.log.add("product:" + productID)
	return s.Ledger.Decrease(ctx, productID, qty)
}

func (s loggingStock) Increase(ctx context.Context, productID string, qty int) error {
	s.log.add("product:" + productID)
	return s.Ledger.Increase(ctx, productID, qty)
}

type loggingPoints struct {
	loyalty.Ledger
	log *lockLog
}

func (p loggingPoints) Customer(ctx context.Context, storeID, id string) (*loyalty.Customer, error) {
	p.log.add("customer:" + id)
	return p.Ledger.Customer(ctx, storeID, id)
}

func TestLockOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	log := &lockLog{}
	svc, err := order.NewService(order.Deps{
		Tx:        f.mem,
		Orders:    f.mem.Orders(),
		Products:  f.mem.Products(),
		Stock:     loggingStock{Ledger: f.mem.Stock(), log: log},
		Points:    loggingPoints{Ledger: f.mem.Points(), log: log},
		Vouchers:  f.mem.Vouchers(),
		Stores:    f.mem.Stores(),
		Snapshots: f.snaps,
		Events:    f.events,
	}, order.WithClock(func() time.Time { return testNow }))
	require.NoError(t, err)

	o, err := svc.Create(ctx, cashier, order.CreateInput{
		CustomerID: "c1",
		Items:      []order.ItemInput{{ProductID: "B", Quantity: 1}, {ProductID: "A", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"customer:c1", "product:A", "product:B"}, log.calls)

	_, err = svc.Pay(ctx, cashier, o.ID, order.PayInput{Method: order.PaymentCash, Amount: dec(15000)})
	require.NoError(t, err)

	log.calls = nil
	_, err = svc.Cancel(ctx, cashier, o.ID, order.CancelInput{Reason: "wrong order"})
	require.NoError(t, err)
	require.NotEmpty(t, log.calls)
	assert.Equal(t, "customer:c1", log.calls[0])
	assert.Equal(t, []string{"product:A", "product:B"}, log.calls[1:])
}

func TestListFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := f.create(t, "")
	other := order.Actor{StoreID: "s1", UserID: "u2"}
	second, err := f.svc.Create(ctx, other, order.CreateInput{Items: []order.ItemInput{{ProductID: "A", Quantity: 1}}})
	require.NoError(t, err)

	day := testNow.Add(-3 * time.Hour)
	tests := []struct {
		name   string
		filter order.Filter
		want   []string
	}{
		{name: "by user", filter: order.Filter{UserID: "u2"}, want: []string{second.ID}},
		{name: "search number suffix", filter: order.Filter{Search: "0001"}, want: []string{first.ID}},
		{name: "search is case-insensitive", filter: order.Filter{Search: "trx-s1"}, want: []string{second.ID, first.ID}},
		{name: "same day", filter: order.Filter{Date: &day}, want: []string{second.ID, first.ID}},
		{name: "other day", filter: order.Filter{Date: ptr(testNow.AddDate(0, 0, 1))}},
		{name: "user and search", filter: order.Filter{UserID: "u1", Search: "0002"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.svc.List(ctx, cashier, tt.filter)
			require.NoError(t, err)
			ids := make([]string, len(got))
			for i, o := range got {
				ids[i] = o.ID
			}
			assert.ElementsMatch(t, tt.want, ids)
		})
	}
}

func TestGetByNumber(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := f.create(t, "")

	got, err := f.svc.GetByNumber(ctx, cashier, o.Number)
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.ID)

	_, err = f.svc.GetByNumber(ctx, order.Actor{StoreID: "s2", UserID: "u9"}, o.Number)
	assert.ErrorIs(t, err, fault.ErrNotFound)
	_, err = f.svc.GetByNumber(ctx, cashier, "TRX-missing")
	assert.ErrorIs(t, err, fault.ErrNotFound)
	_, err = f.svc.GetByNumber(ctx, cashier, " ")
	assert.ErrorIs(t, err, fault.ErrValidation)
}
