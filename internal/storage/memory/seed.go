package memory

import (
	"maps"

	"github.com/xenking/pos-engine/internal/domain/auth"
	"github.com/xenking/pos-engine/internal/domain/loyalty"
	"github.com/xenking/pos-engine/internal/domain/product"
	"github.com/xenking/pos-engine/internal/domain/store"
	"github.com/xenking/pos-engine/internal/domain/voucher"
)

// AddStore registers a store with its settings.
func (s *Store) AddStore(st store.Store, settings store.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.stores[st.ID] = st
	s.data.settings[st.ID] = maps.Clone(settings)
}

// AddProduct registers or replaces a product.
func (s *Store) AddProduct(p product.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.products[p.ID] = p
}

// AddCustomer registers or replaces a customer.
func (s *Store) AddCustomer(c loyalty.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.customers[c.ID] = c
}

// AddVoucher registers or replaces a voucher.
func (s *Store) AddVoucher(v voucher.Voucher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.vouchers[v.ID] = v
}

// AddUser registers or replaces a user.
func (s *Store) AddUser(u auth.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.users[u.ID] = u
}

// AddAPIKey registers a key under its hash.
func (s *Store) AddAPIKey(k auth.APIKeyInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.apiKeys[k.KeyHash] = k
}

// StockOf returns the current stock of a product, or -1 when unknown.
func (s *Store) StockOf(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.data.products[productID]
	if !ok {
		return -1
	}
	return p.Stock
}

// Balance returns the points balance of a customer, or -1 when unknown.
func (s *Store) Balance(customerID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.data.customers[customerID]
	if !ok {
		return -1
	}
	return c.Points
}

// Voucher returns a copy of the stored voucher.
func (s *Store) Voucher(id string) (voucher.Voucher, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data.vouchers[id]
	return v, ok
}
