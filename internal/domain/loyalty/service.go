package loyalty

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/pos-engine/internal/domain/fault"
	"github.com/xenking/pos-engine/internal/domain/store"
	"github.com/xenking/pos-engine/internal/domain/txn"
	"github.com/xenking/pos-engine/internal/domain/voucher"
)

const (
	// MinRedeemPoints is the smallest balance that can be turned into a voucher.
	MinRedeemPoints = 1000
	// RedeemVoucherDays is how long a points voucher stays valid.
	RedeemVoucherDays = 30

	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// Service runs the points operations that are not part of an order.
type Service struct {
	tx       txn.Transactor
	ledger   Ledger
	vouchers voucher.Repository
	stores   store.Repository
	now      func() time.Time
}

// NewService creates a Service.
func NewService(tx txn.Transactor, ledger Ledger, vouchers voucher.Repository, stores store.Repository) *Service {
	return &Service{tx: tx, ledger: ledger, vouchers: vouchers, stores: stores, now: time.Now}
}

// Adjust applies a manual signed correction to a customer balance.
func (s *Service) Adjust(ctx context.Context, storeID, actorID, customerID string, delta int, reason string) (Entry, error) {
	reason = strings.TrimSpace(reason)
	switch {
	case delta == 0:
		return Entry{}, fault.Validation("points adjustment must not be zero")
	case reason == "":
		return Entry{}, fault.Validation("adjustment reason is required")
	}

	var entry Entry
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.ledger.Customer(ctx, storeID, customerID); err != nil {
			return err
		}
		c := Change{
			CustomerID: customerID,
			Kind:       KindAdjusted,
			Notes:      reason,
			ActorID:    actorID,
			At:         s.now(),
		}
		var err error
		if delta > 0 {
			c.Points = delta
			entry, err = s.ledger.Earn(ctx, c)
		} else {
			c.Points = -delta
			entry, err = s.ledger.Redeem(ctx, c)
		}
		return err
	})
	if err != nil {
		return Entry{}, errors.Wrap(err, "adjust points")
	}
	return entry, nil
}

// Redemption is the voucher issued in exchange for points.
type Redemption struct {
	Entry   Entry
	Voucher *voucher.Voucher
}

// RedeemToVoucher converts points into a single-use fixed voucher worth
// points times the store's points value rate.
func (s *Service) RedeemToVoucher(ctx context.Context, storeID, actorID, customerID string, points int) (*Redemption, error) {
	if points < MinRedeemPoints {
		return nil, fault.Validation("at least %d points are required to redeem", MinRedeemPoints)
	}

	var out Redemption
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		cust, err := s.ledger.Customer(ctx, storeID, customerID)
		if err != nil {
			return err
		}
		if cust.Points < points {
			return &InsufficientPointsError{CustomerID: customerID, Requested: points, Balance: cust.Points}
		}

		settings, err := s.stores.Settings(ctx, storeID)
		if err != nil {
			return errors.Wrap(err, "load settings")
		}

		now := s.now()
		limit := 1
		v := &voucher.Voucher{
			StoreID:     storeID,
			Code:        "PTS" + voucher.RandomCode(6),
			Name:        fmt.Sprintf("Points redemption %d", points),
			Description: fmt.Sprintf("Redeemed %d points by %s", points, cust.Name),
			Type:        voucher.TypeFixed,
			Value:       settings.PointsValueRate().Mul(decimalInt(points)),
			UsageLimit:  &limit,
			StartDate:   now,
			EndDate:     now.AddDate(0, 0, RedeemVoucherDays),
			IsActive:    true,
		}
		if err := voucher.Prepare(v); err != nil {
			return err
		}
		if err := s.vouchers.Create(ctx, v); err != nil {
			return errors.Wrap(err, "create voucher")
		}

		entry, err := s.ledger.Redeem(ctx, Change{
			CustomerID: customerID,
			Points:     points,
			Kind:       KindRedeemed,
			Notes:      "Redeemed for voucher " + v.Code,
			ActorID:    actorID,
			At:         now,
		})
		if err != nil {
			return err
		}
		out = Redemption{Entry: entry, Voucher: v}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "redeem points")
	}
	return &out, nil
}

// History lists the newest entries of a store customer.
func (s *Service) History(ctx context.Context, storeID, customerID string, limit int) ([]Entry, error) {
	if _, err := s.ledger.Customer(ctx, storeID, customerID); err != nil {
		return nil, err
	}
	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}
	return s.ledger.History(ctx, customerID, limit)
}

func decimalInt(n int) decimal.Decimal { return decimal.NewFromInt(int64(n)) }
