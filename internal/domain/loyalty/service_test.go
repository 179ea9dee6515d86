package loyalty_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/pos-engine/internal/domain/fault"
	"github.com/xenking/pos-engine/internal/domain/loyalty"
	"github.com/xenking/pos-engine/internal/domain/store"
	"github.com/xenking/pos-engine/internal/storage/memory"
)

func newService(t *testing.T, balance int) (*loyalty.Service, *memory.Store) {
	t.Helper()
	m := memory.New()
	m.AddStore(store.Store{ID: "s1", Name: "Kopi"}, store.Settings{store.SettingPointsValueRate: "10"})
	m.AddCustomer(loyalty.Customer{ID: "c1", StoreID: "s1", Name: "Ann", Points: balance})
	return loyalty.NewService(m, m.Points(), m.Vouchers(), m.Stores()), m
}

func TestServiceAdjust(t *testing.T) {
	tests := []struct {
		name        string
		delta       int
		reason      string
		wantErr     error
		wantBalance int
	}{
		{name: "credit", delta: 50, reason: "goodwill", wantBalance: 150},
		{name: "debit", delta: -40, reason: "correction", wantBalance: 60},
		{name: "debit whole balance", delta: -100, reason: "reset", wantBalance: 0},
		{name: "debit beyond balance", delta: -101, reason: "oops", wantErr: fault.ErrInsufficientBalance, wantBalance: 100},
		{name: "zero delta", delta: 0, reason: "noop", wantErr: fault.ErrValidation, wantBalance: 100},
		{name: "missing reason", delta: 10, reason: "  ", wantErr: fault.ErrValidation, wantBalance: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t, 100)

			entry, err := svc.Adjust(context.Background(), "s1", "u1", "c1", tt.delta, tt.reason)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.wantBalance, m.Balance("c1"))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, loyalty.KindAdjusted, entry.Kind)
			assert.Equal(t, tt.delta, entry.Points)
			assert.Equal(t, tt.wantBalance, entry.BalanceAfter)
			assert.Equal(t, "u1", entry.CreatedBy)
			assert.Equal(t, tt.wantBalance, m.Balance("c1"))
		})
	}
}

func TestServiceAdjustUnknownCustomer(t *testing.T) {
	svc, _ := newService(t, 100)

	_, err := svc.Adjust(context.Background(), "other", "u1", "c1", 5, "x")
	assert.ErrorIs(t, err, fault.ErrNotFound)
}

func TestServiceRedeemToVoucher(t *testing.T) {
	svc, m := newService(t, 2500)
	ctx := context.Background()

	r, err := svc.RedeemToVoucher(ctx, "s1", "u1", "c1", 1200)
	require.NoError(t, err)

	assert.Equal(t, 1300, m.Balance("c1"))
	assert.Equal(t, -1200, r.Entry.Points)
	assert.Equal(t, loyalty.KindRedeemed, r.Entry.Kind)

	v := r.Voucher
	assert.True(t, strings.HasPrefix(v.Code, "PTS"))
	assert.Len(t, v.Code, 9)
	assert.True(t, v.Value.Equal(decimal.NewFromInt(12000)), "value %s", v.Value)
	require.NotNil(t, v.UsageLimit)
	assert.Equal(t, 1, *v.UsageLimit)
	assert.Equal(t, 30, int(v.EndDate.Sub(v.StartDate).Hours()/24))

	stored, ok := m.Voucher(v.ID)
	require.True(t, ok)
	assert.Equal(t, v.Code, stored.Code)
}

func TestServiceRedeemToVoucherRejects(t *testing.T) {
	tests := []struct {
		name    string
		balance int
		points  int
		wantErr error
	}{
		{name: "below minimum", balance: 5000, points: 999, wantErr: fault.ErrValidation},
		{name: "above balance", balance: 1500, points: 2000, wantErr: fault.ErrInsufficientBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t, tt.balance)

			_, err := svc.RedeemToVoucher(context.Background(), "s1", "u1", "c1", tt.points)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.balance, m.Balance("c1"))
		})
	}
}

func TestServiceHistory(t *testing.T) {
	svc, _ := newService(t, 0)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		_, err := svc.Adjust(ctx, "s1", "u1", "c1", i, "bonus")
		require.NoError(t, err)
	}

	entries, err := svc.History(ctx, "s1", "c1", 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 3, entries[0].Points)
	assert.Equal(t, 6, entries[0].BalanceAfter)

	_, err = svc.History(ctx, "s2", "c1", 0)
	assert.ErrorIs(t, err, fault.ErrNotFound)
}
