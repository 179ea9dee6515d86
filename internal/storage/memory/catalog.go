package memory

import (
	"context"

	"github.com/xenking/pos-engine/internal/domain/auth"
	"github.com/xenking/pos-engine/internal/domain/product"
	"github.com/xenking/pos-engine/internal/domain/stock"
	"github.com/xenking/pos-engine/internal/domain/store"
)

var (
	_ product.Repository = (*Products)(nil)
	_ stock.Ledger       = (*Stock)(nil)
	_ store.Repository   = (*Stores)(nil)
	_ auth.Repository    = (*Auth)(nil)
)

// Products implements product.Repository.
type Products struct{ s *Store }

func (r *Products) GetByID(ctx context.Context, storeID, id string) (*product.Product, error) {
	defer r.s.lock(ctx)()

	p, ok := r.s.data.products[id]
	if !ok || p.StoreID != storeID {
		return nil, product.ErrNotFound
	}
	return &p, nil
}

// GetByIDs returns the known products among ids; unknown ids are skipped.
func (r *Products) GetByIDs(ctx context.Context, storeID string, ids []string) ([]product.Product, error) {
	defer r.s.lock(ctx)()

	out := make([]product.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.s.data.products[id]; ok && p.StoreID == storeID {
			out = append(out, p)
		}
	}
	return out, nil
}

// Stock implements stock.Ledger over the product stock column.
type Stock struct{ s *Store }

func (l *Stock) Decrease(ctx context.Context, productID string, qty int) error {
	defer l.s.lock(ctx)()

	p, ok := l.s.data.products[productID]
	if !ok {
		return product.ErrNotFound
	}
	if p.Stock < qty {
		return &stock.InsufficientStockError{ProductID: productID, Requested: qty}
	}
	p.Stock -= qty
	l.s.data.products[productID] = p
	return nil
}

func (l *Stock) Increase(ctx context.Context, productID string, qty int) error {
	defer l.s.lock(ctx)()

	p, ok := l.s.data.products[productID]
	if !ok {
		return product.ErrNotFound
	}
	p.Stock += qty
	l.s.data.products[productID] = p
	return nil
}

// Stores implements store.Repository.
type Stores struct{ s *Store }

func (r *Stores) GetByID(ctx context.Context, id string) (*store.Store, error) {
	defer r.s.lock(ctx)()

	st, ok := r.s.data.stores[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &st, nil
}

func (r *Stores) Settings(ctx context.Context, storeID string) (store.Settings, error) {
	defer r.s.lock(ctx)()

	out := make(store.Settings, len(r.s.data.settings[storeID]))
	for k, v := range r.s.data.settings[storeID] {
		out[k] = v
	}
	return out, nil
}

// Auth implements auth.Repository.
type Auth struct{ s *Store }

func (r *Auth) FindByHash(ctx context.Context, hash string) (*auth.APIKeyInfo, error) {
	defer r.s.lock(ctx)()

	k, ok := r.s.data.apiKeys[hash]
	if !ok {
		return nil, auth.ErrUnauthorized
	}
	return &k, nil
}

func (r *Auth) GetUser(ctx context.Context, id string) (*auth.User, error) {
	defer r.s.lock(ctx)()

	u, ok := r.s.data.users[id]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	return &u, nil
}
