package postgres

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"github.com/xenking/pos-engine/internal/domain/auth"
	"github.com/xenking/pos-engine/internal/domain/product"
	"github.com/xenking/pos-engine/internal/domain/stock"
	"github.com/xenking/pos-engine/internal/domain/store"
)

const (
	productColumns = `id, store_id, name, barcode, price, stock, is_active`

	getProductByIDSQL = `SELECT ` + productColumns + ` FROM products WHERE store_id = $1 AND id = $2`

	getProductsByIDsSQL = `SELECT ` + productColumns + ` FROM products WHERE store_id = $1 AND id = ANY($2)`

	decreaseStockSQL = `UPDATE products SET stock = stock - $2 WHERE id = $1 AND stock >= $2`

	increaseStockSQL = `UPDATE products SET stock = stock + $2 WHERE id = $1`

	getStoreSQL = `SELECT id, name, slug, type, address, phone, logo FROM stores WHERE id = $1`

	listStoreSettingsSQL = `SELECT key, value FROM store_settings WHERE store_id = $1`

	getAPIKeyByHashSQL = `SELECT id, key_hash, name, store_id, user_id
		FROM api_keys WHERE key_hash = $1 AND active = TRUE`

	getUserSQL = `SELECT id, store_id, name, email, role FROM users WHERE id = $1`
)

var (
	_ product.Repository = (*ProductRepository)(nil)
	_ stock.Ledger       = (*StockLedger)(nil)
	_ store.Repository   = (*StoreRepository)(nil)
	_ auth.Repository    = (*APIKeyRepository)(nil)
)

// ProductRepository implements product.Repository backed by PostgreSQL.
type ProductRepository struct {
	db *DB
}

// GetByID returns a single product of the store.
func (r *ProductRepository) GetByID(ctx context.Context, storeID, id string) (*product.Product, error) {
	rows, err := r.db.conn(ctx).Query(ctx, getProductByIDSQL, storeID, id)
	if err != nil {
		return nil, fmt.Errorf("getting product %q: %w", id, err)
	}

	p, err := pgx.CollectExactlyOneRow(rows, scanProduct)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrNotFound
		}
		return nil, fmt.Errorf("getting product %q: %w", id, err)
	}
	return &p, nil
}

// GetByIDs returns the store's products matching any of the given IDs.
func (r *ProductRepository) GetByIDs(ctx context.Context, storeID string, ids []string) ([]product.Product, error) {
	rows, err := r.db.conn(ctx).Query(ctx, getProductsByIDsSQL, storeID, ids)
	if err != nil {
		return nil, fmt.Errorf("getting products by ids: %w", err)
	}
	return pgx.CollectRows(rows, scanProduct)
}

func scanProduct(row pgx.CollectableRow) (product.Product, error) {
	var p product.Product
	err := row.Scan(&p.ID, &p.StoreID, &p.Name, &p.Barcode, &p.Price, &p.Stock, &p.IsActive)
	return p, err
}

// StockLedger implements stock.Ledger with conditional counter updates.
type StockLedger struct {
	db *DB
}

// Decrease only succeeds when enough stock is left; the guard lives in the
// UPDATE so concurrent sales cannot oversell.
func (l *StockLedger) Decrease(ctx context.Context, productID string, qty int) error {
	tag, err := l.db.conn(ctx).Exec(ctx, decreaseStockSQL, productID, qty)
	if err != nil {
		return fmt.Errorf("decreasing stock of %q: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return &stock.InsufficientStockError{ProductID: productID, Requested: qty}
	}
	return nil
}

func (l *StockLedger) Increase(ctx context.Context, productID string, qty int) error {
	tag, err := l.db.conn(ctx).Exec(ctx, increaseStockSQL, productID, qty)
	if err != nil {
		return fmt.Errorf("increasing stock of %q: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrNotFound
	}
	return nil
}

// StoreRepository implements store.Repository backed by PostgreSQL.
type StoreRepository struct {
	db *DB
}

func (r *StoreRepository) GetByID(ctx context.Context, id string) (*store.Store, error) {
	var s store.Store
	err := r.db.conn(ctx).QueryRow(ctx, getStoreSQL, id).Scan(
		&s.ID, &s.Name, &s.Slug, &s.Type, &s.Address, &s.Phone, &s.Logo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("getting store %q: %w", id, err)
	}
	return &s, nil
}

func (r *StoreRepository) Settings(ctx context.Context, storeID string) (store.Settings, error) {
	rows, err := r.db.conn(ctx).Query(ctx, listStoreSettingsSQL, storeID)
	if err != nil {
		return nil, fmt.Errorf("listing settings of store %q: %w", storeID, err)
	}
	defer rows.Close()

	settings := make(store.Settings)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scanning store setting: %w", err)
		}
		settings[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing settings of store %q: %w", storeID, err)
	}
	return settings, nil
}

// APIKeyRepository provides API key and user lookups backed by PostgreSQL.
type APIKeyRepository struct {
	db *DB
}

// FindByHash looks up an active API key by its HMAC-SHA256 hash.
func (r *APIKeyRepository) FindByHash(ctx context.Context, hash string) (*auth.APIKeyInfo, error) {
	var info auth.APIKeyInfo
	err := r.db.conn(ctx).QueryRow(ctx, getAPIKeyByHashSQL, hash).Scan(
		&info.ID, &info.KeyHash, &info.Name, &info.StoreID, &info.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUnauthorized
		}
		return nil, fmt.Errorf("finding api key by hash: %w", err)
	}
	return &info, nil
}

func (r *APIKeyRepository) GetUser(ctx context.Context, id string) (*auth.User, error) {
	var u auth.User
	err := r.db.conn(ctx).QueryRow(ctx, getUserSQL, id).Scan(&u.ID, &u.StoreID, &u.Name, &u.Email, &u.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user %q: %w", id, err)
	}
	return &u, nil
}
