// Package postgres implements the repositories and ledgers on PostgreSQL.
//
// Every repository runs its statements on the transaction carried by the
// context when one is open, and on the pool otherwise. Ledger mutations are
// single conditional statements so they stay correct even outside a unit of
// work.
package postgres

import (
	"context"
	"fmt"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/pos-engine/db"
	"github.com/xenking/pos-engine/internal/domain/txn"
)

// NewPool creates a pgxpool.Pool configured with shopspring/decimal support
// for NUMERIC columns.
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}

	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	return pool, nil
}

// RunMigrations executes the embedded DDL schema against the pool.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, db.Schema); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txKey struct{}

var _ txn.Transactor = (*DB)(nil)

// DB hands out the repositories sharing one pool.
type DB struct {
	pool *pgxpool.Pool
}

// New returns a DB over pool.
func New(pool *pgxpool.Pool) *DB {
	return &DB{pool: pool}
}

// WithinTx runs fn in a database transaction. Nested calls join the outer
// transaction.
func (d *DB) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}
	return pgx.BeginTxFunc(ctx, d.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func (d *DB) conn(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return d.pool
}

// Orders returns the order repository.
func (d *DB) Orders() *OrderRepository { return &OrderRepository{db: d} }

// Products returns the product repository.
func (d *DB) Products() *ProductRepository { return &ProductRepository{db: d} }

// Stock returns the stock ledger.
func (d *DB) Stock() *StockLedger { return &StockLedger{db: d} }

// Points returns the loyalty points ledger.
func (d *DB) Points() *PointsLedger { return &PointsLedger{db: d} }

// Vouchers returns the voucher repository.
func (d *DB) Vouchers() *VoucherRepository { return &VoucherRepository{db: d} }

// Stores returns the store repository.
func (d *DB) Stores() *StoreRepository { return &StoreRepository{db: d} }

// APIKeys returns the API key and user repository.
func (d *DB) APIKeys() *APIKeyRepository { return &APIKeyRepository{db: d} }

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
