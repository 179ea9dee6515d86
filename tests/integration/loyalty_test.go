//go:build integration

package integration

import (
	"net/http"
	"strings"
	"testing"
)

type pointsEntry struct {
	Type         string `json:"type"`
	Points       int    `json:"points"`
	BalanceAfter int    `json:"balance_after"`
}

func TestPointsAdjustAndRedeem(t *testing.T) {
	resp := do(t, http.MethodPost, "/api/customers/cust-2/points/adjust", testAPIKey,
		map[string]any{"points": 1000, "reason": "welcome bonus"})
	expectStatus(t, resp, http.StatusOK)
	adj := decodeJSON[pointsEntry](t, resp)
	resp.Body.Close()
	if adj.Type != "adjusted" || adj.Points != 1000 {
		t.Fatalf("adjust entry: %+v", adj)
	}

	resp = do(t, http.MethodPost, "/api/customers/cust-2/points/redeem", testAPIKey, map[string]any{"points": 1000})
	expectStatus(t, resp, http.StatusCreated)
	red := decodeJSON[struct {
		Entry   pointsEntry `json:"entry"`
		Voucher struct {
			Code       string `json:"code"`
			Value      string `json:"value"`
			UsageLimit int    `json:"usage_limit"`
		} `json:"voucher"`
	}](t, resp)
	resp.Body.Close()
	if !strings.HasPrefix(red.Voucher.Code, "PTS") || red.Voucher.Value != "1000.00" || red.Voucher.UsageLimit != 1 {
		t.Errorf("redeemed voucher: %+v", red.Voucher)
	}
	if red.Entry.BalanceAfter != adj.BalanceAfter-1000 {
		t.Errorf("balance after redeem: got %d, want %d", red.Entry.BalanceAfter, adj.BalanceAfter-1000)
	}

	resp = do(t, http.MethodPost, "/api/vouchers/validate", testAPIKey,
		map[string]any{"code": red.Voucher.Code, "subtotal": "5000"})
	expectStatus(t, resp, http.StatusOK)
	resp.Body.Close()

	resp = do(t, http.MethodGet, "/api/customers/cust-2/points/history?limit=2", testAPIKey, nil)
	expectStatus(t, resp, http.StatusOK)
	history := decodeJSON[[]pointsEntry](t, resp)
	resp.Body.Close()
	if len(history) != 2 || history[0].Type != "redeemed" || history[1].Type != "adjusted" {
		t.Errorf("history: %+v", history)
	}

	resp = do(t, http.MethodPost, "/api/customers/cust-2/points/redeem", testAPIKey, map[string]any{"points": 500})
	expectStatus(t, resp, http.StatusUnprocessableEntity)
	resp.Body.Close()
}
