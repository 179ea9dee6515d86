package memory

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/pos-engine/internal/domain/fault"
	"github.com/xenking/pos-engine/internal/domain/loyalty"
	"github.com/xenking/pos-engine/internal/domain/order"
	"github.com/xenking/pos-engine/internal/domain/product"
	"github.com/xenking/pos-engine/internal/domain/stock"
	"github.com/xenking/pos-engine/internal/domain/voucher"
)

func newTestStore() *Store {
	s := New()
	s.AddProduct(product.Product{ID: "p1", StoreID: "s1", Name: "Tea", Price: decimal.NewFromInt(5000), Stock: 3, IsActive: true})
	s.AddCustomer(loyalty.Customer{ID: "c1", StoreID: "s1", Name: "Ann", Points: 100})
	limit := 1
	s.AddVoucher(voucher.Voucher{ID: "v1", StoreID: "s1", Code: "HEMAT", Type: voucher.TypeFixed, Value: decimal.NewFromInt(1000), UsageLimit: &limit, IsActive: true})
	return s
}

func TestWithinTxRollsBack(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	boom := errors.New("boom")
	err := s.WithinTx(ctx, func(ctx context.Context) error {
		require.NoError(t, s.Stock().Decrease(ctx, "p1", 2))
		_, err := s.Points().Redeem(ctx, loyalty.Change{CustomerID: "c1", Points: 50, Kind: loyalty.KindRedeemed})
		require.NoError(t, err)
		require.NoError(t, s.Vouchers().IncrementUsage(ctx, "v1"))
		return boom
	})
	require.ErrorIs(t, err, boom)

	assert.Equal(t, 3, s.StockOf("p1"))
	assert.Equal(t, 100, s.Balance("c1"))
	v, _ := s.Voucher("v1")
	assert.Equal(t, 0, v.UsedCount)

	history, err := s.Points().History(ctx, "c1", 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestWithinTxNested(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	err := s.WithinTx(ctx, func(ctx context.Context) error {
		return s.WithinTx(ctx, func(ctx context.Context) error {
			return s.Stock().Decrease(ctx, "p1", 1)
		})
	})
	require.NoError(t, err)
	assert.Equal(t, 2, s.StockOf("p1"))
}

func TestStockDecreaseFloor(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	err := s.Stock().Decrease(ctx, "p1", 4)
	var se *stock.InsufficientStockError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "p1", se.ProductID)
	assert.ErrorIs(t, err, fault.ErrInsufficientBalance)
	assert.Equal(t, 3, s.StockOf("p1"))

	require.NoError(t, s.Stock().Decrease(ctx, "p1", 3))
	assert.Equal(t, 0, s.StockOf("p1"))
}

func TestPointsLedger(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	l := s.Points()

	e, err := l.Earn(ctx, loyalty.Change{CustomerID: "c1", Points: 25, Kind: loyalty.KindEarned, TransactionID: "o1"})
	require.NoError(t, err)
	assert.Equal(t, 25, e.Points)
	assert.Equal(t, 125, e.BalanceAfter)

	e, err = l.Redeem(ctx, loyalty.Change{CustomerID: "c1", Points: 120, Kind: loyalty.KindRedeemed})
	require.NoError(t, err)
	assert.Equal(t, -120, e.Points)
	assert.Equal(t, 5, e.BalanceAfter)

	_, err = l.Redeem(ctx, loyalty.Change{CustomerID: "c1", Points: 6, Kind: loyalty.KindRedeemed})
	var pe *loyalty.InsufficientPointsError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 5, pe.Balance)

	history, err := l.History(ctx, "c1", 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, loyalty.KindRedeemed, history[0].Kind)
	assert.Equal(t, loyalty.KindEarned, history[1].Kind)

	_, err = l.Customer(ctx, "other-store", "c1")
	assert.ErrorIs(t, err, loyalty.ErrCustomerNotFound)
}

func TestVoucherUsageLimit(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	v, err := s.Vouchers().FindByCode(ctx, "s1", "hemat")
	require.NoError(t, err)
	assert.Equal(t, "v1", v.ID)

	require.NoError(t, s.Vouchers().IncrementUsage(ctx, "v1"))
	assert.ErrorIs(t, s.Vouchers().IncrementUsage(ctx, "v1"), voucher.ErrUsageLimitReached)

	err = s.Vouchers().Create(ctx, &voucher.Voucher{StoreID: "s1", Code: "HEMAT"})
	assert.ErrorIs(t, err, voucher.ErrDuplicateCode)
}

func TestOrdersNextNumberAndList(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	repo := s.Orders()

	n, err := repo.NextNumber(ctx, "s1", "TRX-s1-20240501-")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	o := &order.Order{StoreID: "s1", Number: "TRX-s1-20240501-0001", Status: order.StatusPending,
		Items: []order.Item{{ProductID: "p1", Quantity: 1}}}
	require.NoError(t, repo.Create(ctx, o))
	assert.NotEmpty(t, o.ID)
	assert.Equal(t, o.ID, o.Items[0].OrderID)

	n, err = repo.NextNumber(ctx, "s1", "TRX-s1-20240501-")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := repo.Get(ctx, "s1", o.ID)
	require.NoError(t, err)
	got.Items[0].Quantity = 9
	again, err := repo.Get(ctx, "s1", o.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Items[0].Quantity, "stored items must not alias returned ones")

	_, err = repo.Get(ctx, "s2", o.ID)
	assert.ErrorIs(t, err, order.ErrNotFound)

	list, err := repo.List(ctx, "s1", order.Filter{Status: order.StatusPaid})
	require.NoError(t, err)
	assert.Empty(t, list)
	list, err = repo.List(ctx, "s1", order.Filter{Status: order.StatusPending})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
