//go:build integration

package integration

import (
	"net/http"
	"regexp"
	"sync"
	"testing"
)

var numberPattern = regexp.MustCompile(`^TRX-store-1-\d{8}-\d{4}$`)

func TestOrderLifecycle(t *testing.T) {
	o := createOrder(t, "cust-1",
		itemRequest{ProductID: "prod-latte", Quantity: 2},
		itemRequest{ProductID: "prod-croissant", Quantity: 1},
	)
	if o.Status != "pending" {
		t.Fatalf("status: got %q", o.Status)
	}
	if !numberPattern.MatchString(o.TransactionNumber) {
		t.Errorf("transaction number %q", o.TransactionNumber)
	}
	if o.Subtotal != "74000.00" {
		t.Errorf("subtotal: got %s, want 74000.00", o.Subtotal)
	}

	resp := do(t, http.MethodPost, "/api/orders/"+o.ID+"/items", testAPIKey,
		itemRequest{ProductID: "prod-brownies", Quantity: 1})
	expectStatus(t, resp, http.StatusOK)
	o = decodeJSON[orderResponse](t, resp)
	resp.Body.Close()
	if o.Subtotal != "89000.00" {
		t.Errorf("subtotal after add: got %s", o.Subtotal)
	}

	resp = do(t, http.MethodGet, "/api/snapshots/"+o.TransactionNumber+"/pending", testAPIKey, nil)
	expectStatus(t, resp, http.StatusOK)
	resp.Body.Close()

	// HEMAT10: 10% of 89000 = 8900; 500 points; total 79600.
	resp = do(t, http.MethodPost, "/api/orders/"+o.ID+"/pay", testAPIKey, map[string]any{
		"payment_method": "cash",
		"payment_amount": "100000",
		"points_to_use":  500,
		"voucher_code":   "hemat10",
	})
	expectStatus(t, resp, http.StatusOK)
	paid := decodeJSON[payResponse](t, resp)
	resp.Body.Close()
	if paid.Order.Status != "paid" {
		t.Fatalf("status: got %q", paid.Order.Status)
	}
	if paid.Summary.VoucherDiscount != "8900.00" || paid.Summary.PointsDiscount != "500.00" {
		t.Errorf("discounts: voucher %s points %s", paid.Summary.VoucherDiscount, paid.Summary.PointsDiscount)
	}
	if paid.Summary.Total != "79600.00" || paid.Summary.Change != "20400.00" {
		t.Errorf("total %s change %s", paid.Summary.Total, paid.Summary.Change)
	}
	if paid.Summary.PointsEarned != 89 {
		t.Errorf("points earned: got %d, want 89", paid.Summary.PointsEarned)
	}

	resp = do(t, http.MethodGet, "/api/snapshots/"+o.TransactionNumber+"/paid", testAPIKey, nil)
	expectStatus(t, resp, http.StatusOK)
	resp.Body.Close()

	resp = do(t, http.MethodPost, "/api/orders/"+o.ID+"/pay", testAPIKey, map[string]any{
		"payment_method": "cash",
		"payment_amount": "100000",
	})
	expectStatus(t, resp, http.StatusConflict)
	resp.Body.Close()

	resp = do(t, http.MethodPost, "/api/orders/"+o.ID+"/cancel", testAPIKey, map[string]any{"reason": "wrong table"})
	expectStatus(t, resp, http.StatusOK)
	o = decodeJSON[orderResponse](t, resp)
	resp.Body.Close()
	if o.Status != "cancelled" {
		t.Fatalf("status: got %q", o.Status)
	}

	resp = do(t, http.MethodPost, "/api/orders/"+o.ID+"/cancel", testAPIKey, map[string]any{"reason": "again"})
	expectStatus(t, resp, http.StatusConflict)
	resp.Body.Close()
}

func TestOrderValidation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
		want int
	}{
		{name: "empty items", body: map[string]any{"items": []itemRequest{}}, want: http.StatusUnprocessableEntity},
		{
			name: "unknown product",
			body: map[string]any{"items": []itemRequest{{ProductID: "nope", Quantity: 1}}},
			want: http.StatusUnprocessableEntity,
		},
		{
			name: "oversell",
			body: map[string]any{"items": []itemRequest{{ProductID: "prod-brownies", Quantity: 1000}}},
			want: http.StatusUnprocessableEntity,
		},
		{
			name: "quantity over maximum",
			body: map[string]any{"items": []itemRequest{{ProductID: "prod-brownies", Quantity: 100000}}},
			want: http.StatusUnprocessableEntity,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, http.MethodPost, "/api/orders", testAPIKey, tt.body)
			defer resp.Body.Close()
			expectStatus(t, resp, tt.want)
			e := decodeJSON[errorResponse](t, resp)
			if e.Code != tt.want || e.Message == "" {
				t.Errorf("error body: %+v", e)
			}
		})
	}
}

// TestConcurrentPay checks that only one of several simultaneous payments of
// the same order succeeds.
func TestConcurrentPay(t *testing.T) {
	o := createOrder(t, "", itemRequest{ProductID: "prod-americano", Quantity: 1})

	const n = 5
	codes := make([]int, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := do(t, http.MethodPost, "/api/orders/"+o.ID+"/pay", testAPIKey, map[string]any{
				"payment_method": "card",
				"payment_amount": "22000",
			})
			codes[i] = resp.StatusCode
			resp.Body.Close()
		}()
	}
	wg.Wait()

	var ok, conflict int
	for _, c := range codes {
		switch c {
		case http.StatusOK:
			ok++
		case http.StatusConflict:
			conflict++
		}
	}
	if ok != 1 || conflict != n-1 {
		t.Fatalf("codes %v: want one 200 and %d 409", codes, n-1)
	}
}
