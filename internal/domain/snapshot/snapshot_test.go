package snapshot_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/pos-engine/internal/domain/auth"
	"github.com/xenking/pos-engine/internal/domain/fault"
	"github.com/xenking/pos-engine/internal/domain/loyalty"
	"github.com/xenking/pos-engine/internal/domain/order"
	"github.com/xenking/pos-engine/internal/domain/snapshot"
	"github.com/xenking/pos-engine/internal/domain/store"
	"github.com/xenking/pos-engine/internal/storage/memory"
)

type mapStorage struct {
	mu     sync.Mutex
	data   map[string][]byte
	putErr error
	puts   int
}

func newMapStorage() *mapStorage { return &mapStorage{data: make(map[string][]byte)} }

func (s *mapStorage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.data[key]
	if !ok {
		return nil, snapshot.ErrNotFound
	}
	return b, nil
}

func (s *mapStorage) Put(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puts++
	if s.putErr != nil {
		return s.putErr
	}
	s.data[key] = data
	return nil
}

func setup(t *testing.T, status order.Status) (*snapshot.Generator, *mapStorage, *order.Order) {
	t.Helper()
	ctx := context.Background()

	m := memory.New()
	m.AddStore(store.Store{ID: "s1", Name: "Kopi Senja", Logo: "logo.png"},
		store.Settings{"receipt_footer": "Thanks", store.SettingPointsRate: "1000"})
	m.AddCustomer(loyalty.Customer{ID: "c1", StoreID: "s1", Name: "Ann", Points: 42})
	m.AddUser(auth.User{ID: "u1", StoreID: "s1", Name: "Budi"})

	created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	o := &order.Order{
		StoreID:     "s1",
		UserID:      "u1",
		CustomerID:  "c1",
		Number:      "TRX-s1-20240501-0001",
		Status:      status,
		Type:        order.TypeDineIn,
		Subtotal:    decimal.NewFromInt(25000),
		TotalAmount: decimal.NewFromInt(24500),
		CreatedAt:   created,
		Items: []order.Item{{
			ProductID: "A", ProductName: "Latte", ProductPrice: decimal.NewFromInt(12500),
			Quantity: 2, Subtotal: decimal.NewFromInt(25000),
		}},
	}
	if status == order.StatusPaid {
		o.PaidAt = &created
	}
	require.NoError(t, m.Orders().Create(ctx, o))

	storage := newMapStorage()
	g := snapshot.NewGenerator(m.Orders(), m.Stores(), m.Points(), m.Auth(), storage)
	return g, storage, o
}

func decode(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestGenerate(t *testing.T) {
	g, storage, o := setup(t, order.StatusPending)

	require.NoError(t, g.Generate(context.Background(), o, order.SnapshotPending))

	data, ok := storage.data["TRX-s1-20240501-0001_pending.json"]
	require.True(t, ok)
	assert.Equal(t, snapshot.Version, snapshot.DocumentVersion(data))

	doc := decode(t, data)
	assert.Equal(t, "pending", doc["type"])

	txn := doc["transaction"].(map[string]any)
	assert.Equal(t, "TRX-s1-20240501-0001", txn["transaction_number"])
	assert.Equal(t, "24500.00", txn["total_amount"])
	assert.Nil(t, txn["paid_at"])
	items := txn["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Latte", items[0].(map[string]any)["product_name"])
	assert.Equal(t, "Ann", txn["customer"].(map[string]any)["name"])
	assert.Equal(t, "Budi", txn["user"].(map[string]any)["name"])

	st := doc["store"].(map[string]any)
	assert.Equal(t, "logo.png", st["logo"])
	assert.Equal(t, "Thanks", doc["store_settings"].(map[string]any)["receipt_footer"])
}

func TestGenerateOptionalFields(t *testing.T) {
	cancelledAt := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	tests := []struct {
		name    string
		edit    func(o *order.Order)
		want    map[string]any
		missing []string
	}{
		{
			name:    "plain pending order",
			edit:    func(*order.Order) {},
			missing: []string{"voucher_id", "cancelled_by", "cancelled_at", "cancellation_reason"},
		},
		{
			name:    "voucher applied",
			edit:    func(o *order.Order) { o.VoucherID = "v1" },
			want:    map[string]any{"voucher_id": "v1"},
			missing: []string{"cancelled_by"},
		},
		{
			name: "cancelled",
			edit: func(o *order.Order) {
				o.Status = order.StatusCancelled
				o.CancelledBy = "u1"
				o.CancelledAt = &cancelledAt
				o.CancellationReason = "customer left"
			},
			want: map[string]any{
				"cancelled_by":        "u1",
				"cancelled_at":        "2024-05-01T10:30:00Z",
				"cancellation_reason": "customer left",
			},
			missing: []string{"voucher_id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, storage, o := setup(t, order.StatusPending)
			tt.edit(o)

			require.NoError(t, g.Generate(context.Background(), o, order.SnapshotPending))

			txn := decode(t, storage.data[snapshot.Key(o.Number, order.SnapshotPending)])["transaction"].(map[string]any)
			for k, v := range tt.want {
				assert.Equal(t, v, txn[k], k)
			}
			for _, k := range tt.missing {
				assert.NotContains(t, txn, k)
			}
		})
	}
}

func TestGetPaidServesCurrentCache(t *testing.T) {
	g, storage, o := setup(t, order.StatusPaid)
	cached := []byte(fmt.Sprintf(`{"version":%d,"type":"paid","cached":true}`, snapshot.Version))
	storage.data[snapshot.Key(o.Number, order.SnapshotPaid)] = cached

	data, err := g.Get(context.Background(), "s1", o.Number, order.SnapshotPaid)
	require.NoError(t, err)
	assert.Equal(t, cached, data)
	assert.Zero(t, storage.puts)
}

func TestGetPaidRegeneratesStale(t *testing.T) {
	tests := []struct {
		name   string
		cached []byte
	}{
		{name: "missing"},
		{name: "old version", cached: []byte(`{"version":2,"type":"paid"}`)},
		{name: "no version", cached: []byte(`{"type":"paid"}`)},
		{name: "garbage", cached: []byte(`not json`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, storage, o := setup(t, order.StatusPaid)
			key := snapshot.Key(o.Number, order.SnapshotPaid)
			if tt.cached != nil {
				storage.data[key] = tt.cached
			}

			data, err := g.Get(context.Background(), "s1", o.Number, order.SnapshotPaid)
			require.NoError(t, err)
			assert.Equal(t, snapshot.Version, snapshot.DocumentVersion(data))
			assert.Equal(t, data, storage.data[key])
			assert.NotNil(t, decode(t, data)["transaction"].(map[string]any)["paid_at"])
		})
	}
}

func TestGetPendingAlwaysRenders(t *testing.T) {
	g, storage, o := setup(t, order.StatusPending)
	key := snapshot.Key(o.Number, order.SnapshotPending)
	storage.data[key] = []byte(fmt.Sprintf(`{"version":%d,"type":"pending","stale":true}`, snapshot.Version))

	data, err := g.Get(context.Background(), "s1", o.Number, order.SnapshotPending)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
	assert.Equal(t, 1, storage.puts)
}

func TestGetErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  order.Status
		storeID string
		number  string
		typ     order.SnapshotType
		wantErr error
	}{
		{name: "paid of pending order", status: order.StatusPending, storeID: "s1", number: "TRX-s1-20240501-0001", typ: order.SnapshotPaid, wantErr: fault.ErrStateConflict},
		{name: "unknown type", status: order.StatusPaid, storeID: "s1", number: "TRX-s1-20240501-0001", typ: "draft", wantErr: fault.ErrValidation},
		{name: "unknown number", status: order.StatusPaid, storeID: "s1", number: "TRX-nope", typ: order.SnapshotPaid, wantErr: fault.ErrNotFound},
		{name: "other store", status: order.StatusPaid, storeID: "s2", number: "TRX-s1-20240501-0001", typ: order.SnapshotPaid, wantErr: fault.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _, _ := setup(t, tt.status)

			_, err := g.Get(context.Background(), tt.storeID, tt.number, tt.typ)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetToleratesStorageFailure(t *testing.T) {
	g, storage, o := setup(t, order.StatusPending)
	storage.putErr = errors.New("read-only filesystem")

	data, err := g.Get(context.Background(), "s1", o.Number, order.SnapshotPending)
	require.NoError(t, err)
	assert.Equal(t, snapshot.Version, snapshot.DocumentVersion(data))

	assert.Error(t, g.Generate(context.Background(), o, order.SnapshotPending))
}
