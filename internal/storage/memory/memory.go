// Package memory is an in-process implementation of every repository and
// ledger. A unit of work holds the store lock for its whole duration and
// restores a copy of the data when it fails, so it behaves like a
// serialisable transaction.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/xenking/pos-engine/internal/domain/auth"
	"github.com/xenking/pos-engine/internal/domain/loyalty"
	"github.com/xenking/pos-engine/internal/domain/order"
	"github.com/xenking/pos-engine/internal/domain/product"
	"github.com/xenking/pos-engine/internal/domain/store"
	"github.com/xenking/pos-engine/internal/domain/txn"
	"github.com/xenking/pos-engine/internal/domain/voucher"
)

var _ txn.Transactor = (*Store)(nil)

type txKey struct{}

// Store holds all data in maps guarded by one mutex.
type Store struct {
	mu   sync.Mutex
	data *state
}

type state struct {
	stores    map[string]store.Store
	settings  map[string]store.Settings
	products  map[string]product.Product
	customers map[string]loyalty.Customer
	history   []loyalty.Entry
	vouchers  map[string]voucher.Voucher
	orders    map[string]order.Order
	users     map[string]auth.User
	apiKeys   map[string]auth.APIKeyInfo
}

// New returns an empty Store.
func New() *Store {
	return &Store{data: &state{
		stores:    make(map[string]store.Store),
		settings:  make(map[string]store.Settings),
		products:  make(map[string]product.Product),
		customers: make(map[string]loyalty.Customer),
		vouchers:  make(map[string]voucher.Voucher),
		orders:    make(map[string]order.Order),
		users:     make(map[string]auth.User),
		apiKeys:   make(map[string]auth.APIKeyInfo),
	}}
}

func (s *state) clone() *state {
	c := &state{
		stores:    maps.Clone(s.stores),
		settings:  make(map[string]store.Settings, len(s.settings)),
		products:  maps.Clone(s.products),
		customers: maps.Clone(s.customers),
		history:   slices.Clone(s.history),
		vouchers:  maps.Clone(s.vouchers),
		orders:    make(map[string]order.Order, len(s.orders)),
		users:     maps.Clone(s.users),
		apiKeys:   maps.Clone(s.apiKeys),
	}
	for k, v := range s.settings {
		c.settings[k] = maps.Clone(v)
	}
	for k, v := range s.orders {
		c.orders[k] = copyOrder(v)
	}
	return c
}

// WithinTx runs fn while holding the store lock. Nested calls join the
// outer unit of work.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) == s {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	backup := s.data.clone()
	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.data = backup
		return err
	}
	return nil
}

// lock acquires the store lock unless ctx already runs inside a unit of
// work of this store.
func (s *Store) lock(ctx context.Context) func() {
	if ctx.Value(txKey{}) == s {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// Orders returns the order repository.
func (s *Store) Orders() *Orders { return &Orders{s: s} }

// Products returns the product repository.
func (s *Store) Products() *Products { return &Products{s: s} }

// Stock returns the stock ledger.
func (s *Store) Stock() *Stock { return &Stock{s: s} }

// Points returns the loyalty points ledger.
func (s *Store) Points() *Points { return &Points{s: s} }

// Vouchers returns the voucher repository.
func (s *Store) Vouchers() *Vouchers { return &Vouchers{s: s} }

// Stores returns the store repository.
func (s *Store) Stores() *Stores { return &Stores{s: s} }

// Auth returns the API key and user repository.
func (s *Store) Auth() *Auth { return &Auth{s: s} }

func copyOrder(o order.Order) order.Order {
	o.Items = slices.Clone(o.Items)
	return o
}
