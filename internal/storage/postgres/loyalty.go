package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/xenking/pos-engine/internal/domain/loyalty"
	"github.com/xenking/pos-engine/internal/domain/voucher"
)

const (
	getCustomerSQL = `SELECT id, store_id, name, phone, email, points FROM customers
		WHERE store_id = $1 AND id = $2`

	getCustomerForUpdateSQL = getCustomerSQL + ` FOR UPDATE`

	getBalanceSQL = `SELECT points FROM customers WHERE id = $1`

	// applyPointsSQL moves the balance by a signed delta and records the
	// history row in one statement. The guard keeps the balance non-negative.
	applyPointsSQL = `WITH upd AS (
		UPDATE customers SET points = points + $2
		WHERE id = $1 AND points + $2 >= 0
		RETURNING points
	)
	INSERT INTO points_history
		(id, customer_id, kind, points, balance_after, transaction_id, notes, created_by, created_at)
	SELECT $3, $1, $4, $2, upd.points, $5, $6, $7, $8 FROM upd
	RETURNING balance_after`

	listPointsHistorySQL = `SELECT id, customer_id, kind, points, balance_after,
		COALESCE(transaction_id, ''), notes, created_by, created_at
		FROM points_history WHERE customer_id = $1
		ORDER BY created_at DESC, id DESC LIMIT $2`

	voucherColumns = `id, store_id, code, barcode, name, description, type, value, min_purchase,
		max_discount, usage_limit, used_count, start_date, end_date, is_active`

	getVoucherByCodeSQL = `SELECT ` + voucherColumns + ` FROM vouchers
		WHERE store_id = $1 AND UPPER(code) = UPPER($2)`

	getVoucherByCodeForUpdateSQL = getVoucherByCodeSQL + ` FOR UPDATE`

	getVoucherByBarcodeSQL = `SELECT ` + voucherColumns + ` FROM vouchers
		WHERE store_id = $1 AND barcode = $2`

	insertVoucherSQL = `INSERT INTO vouchers (` + voucherColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	incrementVoucherUsageSQL = `UPDATE vouchers SET used_count = used_count + 1
		WHERE id = $1 AND (usage_limit IS NULL OR used_count < usage_limit)`

	voucherExistsSQL = `SELECT EXISTS (SELECT 1 FROM vouchers WHERE id = $1)`
)

const uniqueViolation = "23505"

var (
	_ loyalty.Ledger     = (*PointsLedger)(nil)
	_ voucher.Repository = (*VoucherRepository)(nil)
)

// PointsLedger implements loyalty.Ledger backed by PostgreSQL.
type PointsLedger struct {
	db *DB
}

// Customer locks the customer row when called inside a unit of work.
func (l *PointsLedger) Customer(ctx context.Context, storeID, id string) (*loyalty.Customer, error) {
	sql := getCustomerSQL
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		sql = getCustomerForUpdateSQL
	}

	var c loyalty.Customer
	err := l.db.conn(ctx).QueryRow(ctx, sql, storeID, id).Scan(
		&c.ID, &c.StoreID, &c.Name, &c.Phone, &c.Email, &c.Points,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, loyalty.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("getting customer %q: %w", id, err)
	}
	return &c, nil
}

func (l *PointsLedger) Earn(ctx context.Context, c loyalty.Change) (loyalty.Entry, error) {
	if err := c.Validate(); err != nil {
		return loyalty.Entry{}, err
	}
	return l.apply(ctx, c, c.Points)
}

func (l *PointsLedger) Redeem(ctx context.Context, c loyalty.Change) (loyalty.Entry, error) {
	if err := c.Validate(); err != nil {
		return loyalty.Entry{}, err
	}
	return l.apply(ctx, c, -c.Points)
}

func (l *PointsLedger) apply(ctx context.Context, c loyalty.Change, delta int) (loyalty.Entry, error) {
	at := c.At
	if at.IsZero() {
		at = time.Now()
	}
	e := loyalty.Entry{
		ID:            uuid.NewString(),
		CustomerID:    c.CustomerID,
		Kind:          c.Kind,
		Points:        delta,
		TransactionID: c.TransactionID,
		Notes:         c.Notes,
		CreatedBy:     c.ActorID,
		CreatedAt:     at,
	}

	q := l.db.conn(ctx)
	err := q.QueryRow(ctx, applyPointsSQL,
		c.CustomerID, delta, e.ID, c.Kind, nullable(c.TransactionID), c.Notes, c.ActorID, at,
	).Scan(&e.BalanceAfter)
	if err == nil {
		return e, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return loyalty.Entry{}, fmt.Errorf("applying %d points to customer %q: %w", delta, c.CustomerID, err)
	}

	var balance int
	if err := q.QueryRow(ctx, getBalanceSQL, c.CustomerID).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return loyalty.Entry{}, loyalty.ErrCustomerNotFound
		}
		return loyalty.Entry{}, fmt.Errorf("getting balance of customer %q: %w", c.CustomerID, err)
	}
	return loyalty.Entry{}, &loyalty.InsufficientPointsError{
		CustomerID: c.CustomerID,
		Requested:  -delta,
		Balance:    balance,
	}
}

// History lists entries newest first. A non-positive limit returns all.
func (l *PointsLedger) History(ctx context.Context, customerID string, limit int) ([]loyalty.Entry, error) {
	var lim any
	if limit > 0 {
		lim = limit
	}
	rows, err := l.db.conn(ctx).Query(ctx, listPointsHistorySQL, customerID, lim)
	if err != nil {
		return nil, fmt.Errorf("listing points history of %q: %w", customerID, err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (loyalty.Entry, error) {
		var e loyalty.Entry
		err := row.Scan(&e.ID, &e.CustomerID, &e.Kind, &e.Points, &e.BalanceAfter,
			&e.TransactionID, &e.Notes, &e.CreatedBy, &e.CreatedAt)
		return e, err
	})
}

// VoucherRepository implements voucher.Repository backed by PostgreSQL.
type VoucherRepository struct {
	db *DB
}

// FindByCode matches UPPER(code) and locks the row inside a unit of work.
func (r *VoucherRepository) FindByCode(ctx context.Context, storeID, code string) (*voucher.Voucher, error) {
	sql := getVoucherByCodeSQL
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		sql = getVoucherByCodeForUpdateSQL
	}
	return r.findOne(ctx, sql, storeID, code)
}

func (r *VoucherRepository) FindByBarcode(ctx context.Context, storeID, barcode string) (*voucher.Voucher, error) {
	return r.findOne(ctx, getVoucherByBarcodeSQL, storeID, barcode)
}

func (r *VoucherRepository) findOne(ctx context.Context, sql, storeID, key string) (*voucher.Voucher, error) {
	rows, err := r.db.conn(ctx).Query(ctx, sql, storeID, key)
	if err != nil {
		return nil, fmt.Errorf("finding voucher %q: %w", key, err)
	}
	v, err := pgx.CollectExactlyOneRow(rows, scanVoucher)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, voucher.ErrNotFound
		}
		return nil, fmt.Errorf("finding voucher %q: %w", key, err)
	}
	return &v, nil
}

func (r *VoucherRepository) Create(ctx context.Context, v *voucher.Voucher) error {
	var (
		maxDiscount decimal.NullDecimal
		usageLimit  pgtype.Int4
	)
	if v.MaxDiscount != nil {
		maxDiscount = decimal.NewNullDecimal(*v.MaxDiscount)
	}
	if v.UsageLimit != nil {
		usageLimit = pgtype.Int4{Int32: int32(*v.UsageLimit), Valid: true}
	}

	_, err := r.db.conn(ctx).Exec(ctx, insertVoucherSQL,
		v.ID, v.StoreID, v.Code, v.Barcode, v.Name, v.Description, v.Type, v.Value, v.MinPurchase,
		maxDiscount, usageLimit, v.UsedCount, v.StartDate, v.EndDate, v.IsActive,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return voucher.ErrDuplicateCode
		}
		return fmt.Errorf("creating voucher %q: %w", v.Code, err)
	}
	return nil
}

// IncrementUsage bumps used_count only while the limit allows it.
func (r *VoucherRepository) IncrementUsage(ctx context.Context, id string) error {
	q := r.db.conn(ctx)
	tag, err := q.Exec(ctx, incrementVoucherUsageSQL, id)
	if err != nil {
		return fmt.Errorf("incrementing usage of voucher %q: %w", id, err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := q.QueryRow(ctx, voucherExistsSQL, id).Scan(&exists); err != nil {
		return fmt.Errorf("checking voucher %q: %w", id, err)
	}
	if !exists {
		return voucher.ErrNotFound
	}
	return voucher.ErrUsageLimitReached
}

func scanVoucher(row pgx.CollectableRow) (voucher.Voucher, error) {
	var (
		v           voucher.Voucher
		maxDiscount decimal.NullDecimal
		usageLimit  pgtype.Int4
	)
	err := row.Scan(
		&v.ID, &v.StoreID, &v.Code, &v.Barcode, &v.Name, &v.Description, &v.Type, &v.Value, &v.MinPurchase,
		&maxDiscount, &usageLimit, &v.UsedCount, &v.StartDate, &v.EndDate, &v.IsActive,
	)
	if maxDiscount.Valid {
		d := maxDiscount.Decimal
		v.MaxDiscount = &d
	}
	if usageLimit.Valid {
		n := int(usageLimit.Int32)
		v.UsageLimit = &n
	}
	return v, err
}
