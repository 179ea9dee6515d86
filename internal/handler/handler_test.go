package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/pos-engine/gen/oas"
	"github.com/xenking/pos-engine/internal/domain/auth"
	"github.com/xenking/pos-engine/internal/domain/loyalty"
	"github.com/xenking/pos-engine/internal/domain/order"
	"github.com/xenking/pos-engine/internal/domain/product"
	"github.com/xenking/pos-engine/internal/domain/snapshot"
	"github.com/xenking/pos-engine/internal/domain/store"
	"github.com/xenking/pos-engine/internal/domain/voucher"
	"github.com/xenking/pos-engine/internal/handler"
	"github.com/xenking/pos-engine/internal/storage/memory"
	"github.com/xenking/pos-engine/internal/storage/receipts"
)

var pepper = []byte("test-pepper")

const (
	cashierKey = "key-s1"
	otherKey   = "key-s2"
)

type server struct {
	t   *testing.T
	srv http.Handler
	mem *memory.Store
}

func newServer(t *testing.T) *server {
	t.Helper()

	m := memory.New()
	m.AddStore(store.Store{ID: "s1", Name: "Kopi Senja"}, store.Settings{store.SettingPointsRate: "1000"})
	m.AddStore(store.Store{ID: "s2", Name: "Roti Pagi"}, store.Settings{})
	m.AddUser(auth.User{ID: "u1", StoreID: "s1", Name: "Budi", Role: "cashier"})
	m.AddUser(auth.User{ID: "u2", StoreID: "s2", Name: "Sari", Role: "cashier"})
	m.AddAPIKey(auth.APIKeyInfo{ID: "k1", KeyHash: auth.HashKey(cashierKey, pepper), StoreID: "s1", UserID: "u1"})
	m.AddAPIKey(auth.APIKeyInfo{ID: "k2", KeyHash: auth.HashKey(otherKey, pepper), StoreID: "s2", UserID: "u2"})
	m.AddProduct(product.Product{ID: "A", StoreID: "s1", Name: "Latte", Price: decimal.NewFromInt(10000), Stock: 10, IsActive: true})
	m.AddProduct(product.Product{ID: "B", StoreID: "s1", Name: "Croissant", Price: decimal.NewFromInt(5000), Stock: 5, IsActive: true})
	m.AddCustomer(loyalty.Customer{ID: "c1", StoreID: "s1", Name: "Ann", Points: 3000})
	limit := 10
	m.AddVoucher(voucher.Voucher{
		ID: "v1", StoreID: "s1", Code: "HEMAT5", Barcode: "VCH-HEMAT5", Name: "Hemat",
		Type: voucher.TypeFixed, Value: decimal.NewFromInt(5000), MinPurchase: decimal.NewFromInt(20000),
		UsageLimit: &limit, IsActive: true,
		StartDate: time.Now().AddDate(-1, 0, 0), EndDate: time.Now().AddDate(1, 0, 0),
	})

	files, err := receipts.NewFileStore(t.TempDir())
	require.NoError(t, err)
	gen := snapshot.NewGenerator(m.Orders(), m.Stores(), m.Points(), m.Auth(), files)

	orders, err := order.NewService(order.Deps{
		Tx:        m,
		Orders:    m.Orders(),
		Products:  m.Products(),
		Stock:     m.Stock(),
		Points:    m.Points(),
		Vouchers:  m.Vouchers(),
		Stores:    m.Stores(),
		Snapshots: gen,
	})
	require.NoError(t, err)

	h := handler.New(orders,
		voucher.NewService(m.Vouchers()),
		loyalty.NewService(m, m.Points(), m.Vouchers(), m.Stores()),
		gen,
	)
	srv, err := oas.NewServer(h, handler.NewSecurityHandler(m.Auth(), pepper),
		oas.WithPathPrefix("/api"),
		oas.WithErrorHandler(handler.ErrorHandler),
	)
	require.NoError(t, err)
	return &server{t: t, srv: srv, mem: m}
}

func (s *server) do(key, method, path, body string) *httptest.ResponseRecorder {
	s.t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	if key != "" {
		r.Header.Set(handler.APIKeyHeader, key)
	}
	rec := httptest.NewRecorder()
	s.srv.ServeHTTP(rec, r)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(v), rec.Body.String())
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type apiOrder struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	TransactionNumber string    `json:"transaction_number"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	Subtotal          string    `json:"subtotal"`
	TotalAmount       string    `json:"total_amount"`
	PointsUsed        int       `json:"points_used"`
	PointsEarned      int       `json:"points_earned"`
	Items             []struct {
		ID        string `json:"id"`
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	} `json:"items"`
}

func (s *server) createOrder(body string) apiOrder {
	s.t.Helper()
	rec := s.do(cashierKey, http.MethodPost, "/api/orders", body)
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())
	var o apiOrder
	decodeInto(s.t, rec, &o)
	return o
}

func TestAuthentication(t *testing.T) {
	s := newServer(t)
	tests := []struct {
		name string
		key  string
		code int
	}{
		{name: "missing key", key: "", code: http.StatusUnauthorized},
		{name: "unknown key", key: "nope", code: http.StatusUnauthorized},
		{name: "valid key", key: cashierKey, code: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(tt.key, http.MethodGet, "/api/orders", "")
			assert.Equal(t, tt.code, rec.Code)
			if tt.code == http.StatusUnauthorized {
				var e apiError
				decodeInto(t, rec, &e)
				assert.Equal(t, apiError{Code: 401, Message: "unauthorized"}, e)
			}
		})
	}
}

func TestOrderLifecycle(t *testing.T) {
	s := newServer(t)

	o := s.createOrder(`{"customer_id":"c1","items":[{"product_id":"A","quantity":2},{"product_id":"B","quantity":1}]}`)
	assert.Equal(t, "pending", o.Status)
	assert.Equal(t, "25000.00", o.Subtotal)
	assert.True(t, strings.HasPrefix(o.TransactionNumber, "TRX-s1-"))
	assert.Equal(t, 8, s.mem.StockOf("A"))

	rec := s.do(cashierKey, http.MethodPost, "/api/orders/"+o.ID+"/items", `{"product_id":"B","quantity":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decodeInto(t, rec, &o)
	assert.Equal(t, "35000.00", o.Subtotal)
	assert.Equal(t, 2, s.mem.StockOf("B"))

	rec = s.do(cashierKey, http.MethodGet, "/api/snapshots/"+o.TransactionNumber+"/pending", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), o.TransactionNumber)

	rec = s.do(cashierKey, http.MethodPost, "/api/orders/"+o.ID+"/pay",
		`{"payment_method":"cash","payment_amount":"30000","points_to_use":1000,"voucher_code":"hemat5"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var paid struct {
		Order   apiOrder `json:"order"`
		Summary struct {
			VoucherDiscount string `json:"voucher_discount"`
			PointsDiscount  string `json:"points_discount"`
			Total           string `json:"total"`
			Change          string `json:"change"`
		} `json:"summary"`
	}
	decodeInto(t, rec, &paid)
	assert.Equal(t, "paid", paid.Order.Status)
	assert.Equal(t, "5000.00", paid.Summary.VoucherDiscount)
	assert.Equal(t, "1000.00", paid.Summary.PointsDiscount)
	assert.Equal(t, "29000.00", paid.Summary.Total)
	assert.Equal(t, "1000.00", paid.Summary.Change)
	assert.Equal(t, 35, paid.Order.PointsEarned)
	assert.Equal(t, 3000-1000+35, s.mem.Balance("c1"))

	rec = s.do(cashierKey, http.MethodGet, "/api/snapshots/"+o.TransactionNumber+"/paid", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(cashierKey, http.MethodPatch, "/api/orders/"+o.ID, `{"notes":"late edit"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(cashierKey, http.MethodPost, "/api/orders/"+o.ID+"/cancel", `{"reason":"customer changed mind"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decodeInto(t, rec, &o)
	assert.Equal(t, "cancelled", o.Status)
	assert.Equal(t, 10, s.mem.StockOf("A"))
	assert.Equal(t, 5, s.mem.StockOf("B"))
	assert.Equal(t, 3000, s.mem.Balance("c1"))

	v, ok := s.mem.Voucher("v1")
	require.True(t, ok)
	assert.Equal(t, 1, v.UsedCount, "cancelling keeps the voucher use")
}

func TestEditPendingOrder(t *testing.T) {
	s := newServer(t)
	o := s.createOrder(`{"items":[{"product_id":"A","quantity":1}]}`)

	rec := s.do(cashierKey, http.MethodPut, "/api/orders/"+o.ID+"/items", `{"items":[{"product_id":"B","quantity":3}]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decodeInto(t, rec, &o)
	require.Len(t, o.Items, 1)
	assert.Equal(t, "B", o.Items[0].ProductID)
	assert.Equal(t, 10, s.mem.StockOf("A"))
	assert.Equal(t, 2, s.mem.StockOf("B"))

	rec = s.do(cashierKey, http.MethodPatch, "/api/orders/"+o.ID, `{"tax_percentage":"10","type":"dine_in"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decodeInto(t, rec, &o)
	assert.Equal(t, "16500.00", o.TotalAmount)

	rec = s.do(cashierKey, http.MethodDelete, "/api/orders/"+o.ID+"/items/"+o.Items[0].ID, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decodeInto(t, rec, &o)
	assert.Empty(t, o.Items)
	assert.Equal(t, 5, s.mem.StockOf("B"))
}

func TestErrorMapping(t *testing.T) {
	s := newServer(t)
	pending := s.createOrder(`{"items":[{"product_id":"A","quantity":1}]}`)

	tests := []struct {
		name   string
		key    string
		method string
		path   string
		body   string
		code   int
		msg    string
	}{
		{
			name: "malformed json", method: http.MethodPost, path: "/api/orders",
			body: `{"items":`, code: http.StatusBadRequest, msg: "malformed JSON body",
		},
		{
			name: "empty items", method: http.MethodPost, path: "/api/orders",
			body: `{"items":[]}`, code: http.StatusUnprocessableEntity, msg: "items",
		},
		{
			name: "zero quantity", method: http.MethodPost, path: "/api/orders",
			body: `{"items":[{"product_id":"A","quantity":0}]}`, code: http.StatusUnprocessableEntity,
			msg: "items",
		},
		{
			name: "quantity over maximum", method: http.MethodPost, path: "/api/orders",
			body: `{"items":[{"product_id":"A","quantity":10001}]}`, code: http.StatusUnprocessableEntity,
			msg: "items",
		},
		{
			name: "unknown product", method: http.MethodPost, path: "/api/orders",
			body: `{"items":[{"product_id":"Z","quantity":1}]}`, code: http.StatusUnprocessableEntity,
			msg: "product Z not found",
		},
		{
			name: "insufficient stock", method: http.MethodPost, path: "/api/orders",
			body: `{"items":[{"product_id":"B","quantity":6}]}`, code: http.StatusUnprocessableEntity,
			msg: "insufficient stock for product B: requested 6",
		},
		{
			name: "unknown order", method: http.MethodGet, path: "/api/orders/missing",
			code: http.StatusNotFound, msg: "order not found",
		},
		{
			name: "other store order", key: otherKey, method: http.MethodGet, path: "/api/orders/" + pending.ID,
			code: http.StatusNotFound, msg: "order not found",
		},
		{
			name: "other store order number", key: otherKey, method: http.MethodGet,
			path: "/api/orders/number/" + pending.TransactionNumber, code: http.StatusNotFound,
		},
		{
			name: "bad payment method", method: http.MethodPost, path: "/api/orders/" + pending.ID + "/pay",
			body: `{"payment_method":"gold","payment_amount":"10000"}`, code: http.StatusUnprocessableEntity,
			msg: "payment_method",
		},
		{
			name: "missing payment amount", method: http.MethodPost, path: "/api/orders/" + pending.ID + "/pay",
			body: `{"payment_method":"cash"}`, code: http.StatusUnprocessableEntity, msg: "payment_amount",
		},
		{
			name: "negative payment amount", method: http.MethodPost, path: "/api/orders/" + pending.ID + "/pay",
			body: `{"payment_method":"cash","payment_amount":"-10000"}`, code: http.StatusUnprocessableEntity,
			msg: "payment_amount",
		},
		{
			name: "points without customer", method: http.MethodPost, path: "/api/orders/" + pending.ID + "/pay",
			body: `{"payment_method":"cash","payment_amount":"20000","points_to_use":10}`, code: http.StatusUnprocessableEntity,
			msg: "points can only be used on orders with a customer",
		},
		{
			name: "cancel without reason", method: http.MethodPost, path: "/api/orders/" + pending.ID + "/cancel",
			body: `{"reason":""}`, code: http.StatusUnprocessableEntity, msg: "reason",
		},
		{
			name: "paid snapshot of pending order", method: http.MethodGet,
			path: "/api/snapshots/" + pending.TransactionNumber + "/paid", code: http.StatusConflict,
		},
		{
			name: "unknown snapshot type", method: http.MethodGet,
			path: "/api/snapshots/" + pending.TransactionNumber + "/draft", code: http.StatusUnprocessableEntity,
		},
		{
			name: "bad list filter", method: http.MethodGet, path: "/api/orders?status=open",
			code: http.StatusUnprocessableEntity,
		},
		{
			name: "inverted list window", method: http.MethodGet,
			path: "/api/orders?from=2024-05-02T00:00:00Z&to=2024-05-01T00:00:00Z",
			code: http.StatusUnprocessableEntity, msg: "to must be after from",
		},
		{
			name: "zero points adjustment", method: http.MethodPost, path: "/api/customers/c1/points/adjust",
			body: `{"points":0,"reason":"typo"}`, code: http.StatusUnprocessableEntity,
			msg: "points adjustment must not be zero",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := tt.key
			if key == "" {
				key = cashierKey
			}
			rec := s.do(key, tt.method, tt.path, tt.body)
			require.Equal(t, tt.code, rec.Code, rec.Body.String())

			var e apiError
			decodeInto(t, rec, &e)
			assert.Equal(t, tt.code, e.Code)
			assert.Contains(t, e.Message, tt.msg)
		})
	}
}

func TestListOrders(t *testing.T) {
	s := newServer(t)
	first := s.createOrder(`{"items":[{"product_id":"A","quantity":1}]}`)
	second := s.createOrder(`{"customer_id":"c1","items":[{"product_id":"B","quantity":1}]}`)

	var list []apiOrder
	rec := s.do(cashierKey, http.MethodGet, "/api/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeInto(t, rec, &list)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	rec = s.do(cashierKey, http.MethodGet, "/api/orders?customer_id=c1&status=pending", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeInto(t, rec, &list)
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)

	rec = s.do(otherKey, http.MethodGet, "/api/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeInto(t, rec, &list)
	assert.Empty(t, list)

	day := first.CreatedAt.UTC().Format("2006-01-02")
	next := first.CreatedAt.UTC().AddDate(0, 0, 1).Format("2006-01-02")
	filters := []struct {
		query string
		want  []string
	}{
		{query: "user_id=u1", want: []string{second.ID, first.ID}},
		{query: "user_id=u2"},
		{query: "search=" + first.TransactionNumber[len(first.TransactionNumber)-4:], want: []string{first.ID}},
		{query: "date=" + day, want: []string{second.ID, first.ID}},
		{query: "date=" + next},
	}
	for _, f := range filters {
		t.Run(f.query, func(t *testing.T) {
			rec := s.do(cashierKey, http.MethodGet, "/api/orders?"+f.query, "")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			var got []apiOrder
			decodeInto(t, rec, &got)
			ids := make([]string, len(got))
			for i, o := range got {
				ids[i] = o.ID
			}
			assert.ElementsMatch(t, f.want, ids)
		})
	}
}

func TestGetOrderByNumber(t *testing.T) {
	s := newServer(t)
	created := s.createOrder(`{"items":[{"product_id":"A","quantity":1}]}`)

	rec := s.do(cashierKey, http.MethodGet, "/api/orders/number/"+created.TransactionNumber, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got apiOrder
	decodeInto(t, rec, &got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "u1", got.UserID)

	rec = s.do(cashierKey, http.MethodGet, "/api/orders/number/TRX-missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVoucherEndpoints(t *testing.T) {
	s := newServer(t)

	rec := s.do(cashierKey, http.MethodPost, "/api/vouchers/validate", `{"code":"hemat5","subtotal":"25000"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var applied struct {
		Voucher struct {
			Code string `json:"code"`
		} `json:"voucher"`
		Discount string `json:"discount"`
	}
	decodeInto(t, rec, &applied)
	assert.Equal(t, "HEMAT5", applied.Voucher.Code)
	assert.Equal(t, "5000.00", applied.Discount)

	rec = s.do(cashierKey, http.MethodPost, "/api/vouchers/validate", `{"code":"HEMAT5","subtotal":"1000"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = s.do(cashierKey, http.MethodGet, "/api/vouchers/barcode/VCH-HEMAT5", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(otherKey, http.MethodPost, "/api/vouchers/validate", `{"code":"HEMAT5","subtotal":"25000"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPointsEndpoints(t *testing.T) {
	s := newServer(t)

	rec := s.do(cashierKey, http.MethodPost, "/api/customers/c1/points/adjust", `{"points":-500,"reason":"correction"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var entry struct {
		Type         string `json:"type"`
		Points       int    `json:"points"`
		BalanceAfter int    `json:"balance_after"`
	}
	decodeInto(t, rec, &entry)
	assert.Equal(t, "adjusted", entry.Type)
	assert.Equal(t, -500, entry.Points)
	assert.Equal(t, 2500, entry.BalanceAfter)

	rec = s.do(cashierKey, http.MethodPost, "/api/customers/c1/points/redeem", `{"points":1000}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var red struct {
		Voucher struct {
			Code  string `json:"code"`
			Value string `json:"value"`
		} `json:"voucher"`
	}
	decodeInto(t, rec, &red)
	assert.True(t, strings.HasPrefix(red.Voucher.Code, "PTS"))
	assert.Equal(t, 1500, s.mem.Balance("c1"))

	rec = s.do(cashierKey, http.MethodPost, "/api/customers/c1/points/redeem", `{"points":5000}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = s.do(cashierKey, http.MethodGet, "/api/customers/c1/points/history?limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var history []struct {
		Type string `json:"type"`
	}
	decodeInto(t, rec, &history)
	require.Len(t, history, 1)
	assert.Equal(t, "redeemed", history[0].Type)

	rec = s.do(otherKey, http.MethodGet, "/api/customers/c1/points/history", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
