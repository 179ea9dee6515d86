package memory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/xenking/pos-engine/internal/domain/loyalty"
	"github.com/xenking/pos-engine/internal/domain/voucher"
)

var (
	_ loyalty.Ledger     = (*Points)(nil)
	_ voucher.Repository = (*Vouchers)(nil)
)

// Points implements loyalty.Ledger.
type Points struct{ s *Store }

func (l *Points) Customer(ctx context.Context, storeID, id string) (*loyalty.Customer, error) {
	defer l.s.lock(ctx)()

	c, ok := l.s.data.customers[id]
	if !ok || c.StoreID != storeID {
		return nil, loyalty.ErrCustomerNotFound
	}
	return &c, nil
}

func (l *Points) Earn(ctx context.Context, c loyalty.Change) (loyalty.Entry, error) {
	if err := c.Validate(); err != nil {
		return loyalty.Entry{}, err
	}
	defer l.s.lock(ctx)()

	return l.apply(c, c.Points)
}

func (l *Points) Redeem(ctx context.Context, c loyalty.Change) (loyalty.Entry, error) {
	if err := c.Validate(); err != nil {
		return loyalty.Entry{}, err
	}
	defer l.s.lock(ctx)()

	cust, ok := l.s.data.customers[c.CustomerID]
	if !ok {
		return loyalty.Entry{}, loyalty.ErrCustomerNotFound
	}
	if cust.Points < c.Points {
		return loyalty.Entry{}, &loyalty.InsufficientPointsError{
			CustomerID: c.CustomerID,
			Requested:  c.Points,
			Balance:    cust.Points,
		}
	}
	return l.apply(c, -c.Points)
}

// apply must be called with the store lock held.
func (l *Points) apply(c loyalty.Change, delta int) (loyalty.Entry, error) {
	cust, ok := l.s.data.customers[c.CustomerID]
	if !ok {
		return loyalty.Entry{}, loyalty.ErrCustomerNotFound
	}
	cust.Points += delta
	l.s.data.customers[c.CustomerID] = cust

	at := c.At
	if at.IsZero() {
		at = time.Now()
	}
	e := loyalty.Entry{
		ID:            uuid.NewString(),
		CustomerID:    c.CustomerID,
		Kind:          c.Kind,
		Points:        delta,
		BalanceAfter:  cust.Points,
		TransactionID: c.TransactionID,
		Notes:         c.Notes,
		CreatedBy:     c.ActorID,
		CreatedAt:     at,
	}
	l.s.data.history = append(l.s.data.history, e)
	return e, nil
}

func (l *Points) History(ctx context.Context, customerID string, limit int) ([]loyalty.Entry, error) {
	defer l.s.lock(ctx)()

	var out []loyalty.Entry
	for i := len(l.s.data.history) - 1; i >= 0; i-- {
		e := l.s.data.history[i]
		if e.CustomerID != customerID {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// Vouchers implements voucher.Repository.
type Vouchers struct{ s *Store }

func (r *Vouchers) FindByCode(ctx context.Context, storeID, code string) (*voucher.Voucher, error) {
	defer r.s.lock(ctx)()

	for _, v := range r.s.data.vouchers {
		if v.StoreID == storeID && strings.EqualFold(v.Code, code) {
			return &v, nil
		}
	}
	return nil, voucher.ErrNotFound
}

func (r *Vouchers) FindByBarcode(ctx context.Context, storeID, barcode string) (*voucher.Voucher, error) {
	defer r.s.lock(ctx)()

	for _, v := range r.s.data.vouchers {
		if v.StoreID == storeID && v.Barcode != "" && v.Barcode == barcode {
			return &v, nil
		}
	}
	return nil, voucher.ErrNotFound
}

func (r *Vouchers) Create(ctx context.Context, v *voucher.Voucher) error {
	defer r.s.lock(ctx)()

	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	for _, cur := range r.s.data.vouchers {
		if cur.StoreID == v.StoreID && strings.EqualFold(cur.Code, v.Code) {
			return voucher.ErrDuplicateCode
		}
	}
	r.s.data.vouchers[v.ID] = *v
	return nil
}

func (r *Vouchers) IncrementUsage(ctx context.Context, id string) error {
	defer r.s.lock(ctx)()

	v, ok := r.s.data.vouchers[id]
	if !ok {
		return voucher.ErrNotFound
	}
	if !v.IsUsable() {
		return voucher.ErrUsageLimitReached
	}
	v.UsedCount++
	r.s.data.vouchers[id] = v
	return nil
}
