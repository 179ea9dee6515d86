package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/xenking/pos-engine/internal/domain/order"
)

var _ order.Repository = (*Orders)(nil)

// Orders implements order.Repository.
type Orders struct{ s *Store }

func (r *Orders) Create(ctx context.Context, o *order.Order) error {
	defer r.s.lock(ctx)()

	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	for i := range o.Items {
		if o.Items[i].ID == "" {
			o.Items[i].ID = uuid.NewString()
		}
		o.Items[i].OrderID = o.ID
	}
	r.s.data.orders[o.ID] = copyOrder(*o)
	return nil
}

func (r *Orders) Get(ctx context.Context, storeID, id string) (*order.Order, error) {
	defer r.s.lock(ctx)()

	o, ok := r.s.data.orders[id]
	if !ok || o.StoreID != storeID {
		return nil, order.ErrNotFound
	}
	c := copyOrder(o)
	return &c, nil
}

// GetForUpdate is Get: a unit of work already holds the store lock.
func (r *Orders) GetForUpdate(ctx context.Context, storeID, id string) (*order.Order, error) {
	return r.Get(ctx, storeID, id)
}

func (r *Orders) GetByNumber(ctx context.Context, storeID, number string) (*order.Order, error) {
	defer r.s.lock(ctx)()

	for _, o := range r.s.data.orders {
		if o.StoreID == storeID && o.Number == number {
			c := copyOrder(o)
			return &c, nil
		}
	}
	return nil, order.ErrNotFound
}

func (r *Orders) List(ctx context.Context, storeID string, f order.Filter) ([]order.Order, error) {
	defer r.s.lock(ctx)()

	var out []order.Order
	for _, o := range r.s.data.orders {
		if o.StoreID != storeID {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if f.CustomerID != "" && o.CustomerID != f.CustomerID {
			continue
		}
		if f.UserID != "" && o.UserID != f.UserID {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(o.Number), strings.ToLower(f.Search)) {
			continue
		}
		if f.From != nil && o.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && !o.CreatedAt.Before(*f.To) {
			continue
		}
		out = append(out, copyOrder(o))
	}
	slices.SortFunc(out, func(a, b order.Order) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.Number, a.Number)
	})

	if f.Offset >= len(out) {
		return nil, nil
	}
	out = out[f.Offset:]
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *Orders) Update(ctx context.Context, o *order.Order) error {
	defer r.s.lock(ctx)()

	cur, ok := r.s.data.orders[o.ID]
	if !ok || cur.StoreID != o.StoreID {
		return order.ErrNotFound
	}
	for i := range o.Items {
		if o.Items[i].ID == "" {
			o.Items[i].ID = uuid.NewString()
		}
		o.Items[i].OrderID = o.ID
	}
	r.s.data.orders[o.ID] = copyOrder(*o)
	return nil
}

func (r *Orders) NextNumber(ctx context.Context, storeID, prefix string) (int, error) {
	defer r.s.lock(ctx)()

	n := 0
	for _, o := range r.s.data.orders {
		if o.StoreID == storeID && strings.HasPrefix(o.Number, prefix) {
			n++
		}
	}
	return n + 1, nil
}
