package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"github.com/xenking/pos-engine/internal/domain/order"
)

const orderColumns = `id, store_id, user_id, COALESCE(customer_id, ''), COALESCE(voucher_id, ''),
	transaction_number, status, order_type, notes,
	subtotal, tax_percentage, tax_amount, delivery_fee, discount_amount, total_amount,
	payment_method, payment_amount, change_amount, points_used, points_earned,
	paid_at, cancelled_by, cancelled_at, cancellation_reason, created_at, updated_at`

const (
	getOrderSQL = `SELECT ` + orderColumns + ` FROM transactions WHERE store_id = $1 AND id = $2`

	getOrderForUpdateSQL = getOrderSQL + ` FOR UPDATE`

	getOrderByNumberSQL = `SELECT ` + orderColumns + ` FROM transactions
		WHERE store_id = $1 AND transaction_number = $2`

	listOrderItemsSQL = `SELECT id, transaction_id, product_id, product_name, product_price, quantity, subtotal
		FROM transaction_items WHERE transaction_id = $1 ORDER BY position`

	listItemsForOrdersSQL = `SELECT id, transaction_id, product_id, product_name, product_price, quantity, subtotal
		FROM transaction_items WHERE transaction_id = ANY($1) ORDER BY transaction_id, position`

	insertOrderSQL = `INSERT INTO transactions (
		id, store_id, user_id, customer_id, voucher_id, transaction_number, status, order_type, notes,
		subtotal, tax_percentage, tax_amount, delivery_fee, discount_amount, total_amount,
		payment_method, payment_amount, change_amount, points_used, points_earned,
		paid_at, cancelled_by, cancelled_at, cancellation_reason, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)`

	updateOrderSQL = `UPDATE transactions SET
		customer_id = $3, voucher_id = $4, status = $5, order_type = $6, notes = $7,
		subtotal = $8, tax_percentage = $9, tax_amount = $10, delivery_fee = $11,
		discount_amount = $12, total_amount = $13, payment_method = $14, payment_amount = $15,
		change_amount = $16, points_used = $17, points_earned = $18, paid_at = $19,
		cancelled_by = $20, cancelled_at = $21, cancellation_reason = $22, updated_at = $23
		WHERE store_id = $1 AND id = $2`

	deleteOrderItemsSQL = `DELETE FROM transaction_items WHERE transaction_id = $1`

	insertOrderItemSQL = `INSERT INTO transaction_items
		(id, transaction_id, position, product_id, product_name, product_price, quantity, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	lockOrderNumberSQL = `SELECT pg_advisory_xact_lock(hashtext($1))`

	countOrderNumbersSQL = `SELECT COUNT(*) FROM transactions
		WHERE store_id = $1 AND transaction_number LIKE $2 || '%'`
)

var _ order.Repository = (*OrderRepository)(nil)

// OrderRepository implements order.Repository backed by PostgreSQL.
type OrderRepository struct {
	db *DB
}

// Create inserts the order row and its items.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	q := r.db.conn(ctx)
	_, err := q.Exec(ctx, insertOrderSQL,
		o.ID, o.StoreID, o.UserID, nullable(o.CustomerID), nullable(o.VoucherID),
		o.Number, o.Status, o.Type, o.Notes,
		o.Subtotal, o.TaxPercentage, o.TaxAmount, o.DeliveryFee, o.DiscountAmount, o.TotalAmount,
		o.PaymentMethod, o.PaymentAmount, o.ChangeAmount, o.PointsUsed, o.PointsEarned,
		o.PaidAt, o.CancelledBy, o.CancelledAt, o.CancellationReason, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating order %q: %w", o.ID, err)
	}
	return r.insertItems(ctx, q, o)
}

func (r *OrderRepository) Get(ctx context.Context, storeID, id string) (*order.Order, error) {
	return r.getOne(ctx, getOrderSQL, storeID, id)
}

// GetForUpdate locks the order row with SELECT ... FOR UPDATE.
func (r *OrderRepository) GetForUpdate(ctx context.Context, storeID, id string) (*order.Order, error) {
	return r.getOne(ctx, getOrderForUpdateSQL, storeID, id)
}

func (r *OrderRepository) GetByNumber(ctx context.Context, storeID, number string) (*order.Order, error) {
	return r.getOne(ctx, getOrderByNumberSQL, storeID, number)
}

func (r *OrderRepository) getOne(ctx context.Context, sql, storeID, key string) (*order.Order, error) {
	q := r.db.conn(ctx)
	rows, err := q.Query(ctx, sql, storeID, key)
	if err != nil {
		return nil, fmt.Errorf("getting order %q: %w", key, err)
	}
	o, err := pgx.CollectExactlyOneRow(rows, scanOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrNotFound
		}
		return nil, fmt.Errorf("getting order %q: %w", key, err)
	}

	rows, err = q.Query(ctx, listOrderItemsSQL, o.ID)
	if err != nil {
		return nil, fmt.Errorf("listing items of order %q: %w", o.ID, err)
	}
	if o.Items, err = pgx.CollectRows(rows, scanOrderItem); err != nil {
		return nil, fmt.Errorf("listing items of order %q: %w", o.ID, err)
	}
	return &o, nil
}

// List returns the store's orders newest first, with their items.
func (r *OrderRepository) List(ctx context.Context, storeID string, f order.Filter) ([]order.Order, error) {
	var (
		where = []string{"store_id = $1"}
		args  = []any{storeID}
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.CustomerID != "" {
		add("customer_id = $%d", f.CustomerID)
	}
	if f.UserID != "" {
		add("user_id = $%d", f.UserID)
	}
	if f.Search != "" {
		add("transaction_number ILIKE '%%' || $%d || '%%'", f.Search)
	}
	if f.From != nil {
		add("created_at >= $%d", *f.From)
	}
	if f.To != nil {
		add("created_at < $%d", *f.To)
	}
	args = append(args, f.Limit, f.Offset)
	sql := fmt.Sprintf(`SELECT %s FROM transactions WHERE %s
		ORDER BY created_at DESC, transaction_number DESC LIMIT $%d OFFSET $%d`,
		orderColumns, strings.Join(where, " AND "), len(args)-1, len(args))

	q := r.db.conn(ctx)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	orders, err := pgx.CollectRows(rows, scanOrder)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]string, len(orders))
	idx := make(map[string]int, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		idx[o.ID] = i
	}
	rows, err = q.Query(ctx, listItemsForOrdersSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("listing order items: %w", err)
	}
	items, err := pgx.CollectRows(rows, scanOrderItem)
	if err != nil {
		return nil, fmt.Errorf("listing order items: %w", err)
	}
	for _, it := range items {
		i := idx[it.OrderID]
		orders[i].Items = append(orders[i].Items, it)
	}
	return orders, nil
}

// Update writes the order fields and rewrites its items.
func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	q := r.db.conn(ctx)
	tag, err := q.Exec(ctx, updateOrderSQL,
		o.StoreID, o.ID, nullable(o.CustomerID), nullable(o.VoucherID), o.Status, o.Type, o.Notes,
		o.Subtotal, o.TaxPercentage, o.TaxAmount, o.DeliveryFee,
		o.DiscountAmount, o.TotalAmount, o.PaymentMethod, o.PaymentAmount,
		o.ChangeAmount, o.PointsUsed, o.PointsEarned, o.PaidAt,
		o.CancelledBy, o.CancelledAt, o.CancellationReason, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating order %q: %w", o.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrNotFound
	}

	if _, err := q.Exec(ctx, deleteOrderItemsSQL, o.ID); err != nil {
		return fmt.Errorf("deleting items of order %q: %w", o.ID, err)
	}
	return r.insertItems(ctx, q, o)
}

func (r *OrderRepository) insertItems(ctx context.Context, q querier, o *order.Order) error {
	for i, it := range o.Items {
		_, err := q.Exec(ctx, insertOrderItemSQL,
			it.ID, o.ID, i, it.ProductID, it.ProductName, it.ProductPrice, it.Quantity, it.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("inserting item %q of order %q: %w", it.ProductID, o.ID, err)
		}
	}
	return nil
}

// NextNumber takes a transaction-scoped advisory lock on the prefix so two
// concurrent creations cannot pick the same sequence.
func (r *OrderRepository) NextNumber(ctx context.Context, storeID, prefix string) (int, error) {
	q := r.db.conn(ctx)
	if _, err := q.Exec(ctx, lockOrderNumberSQL, prefix); err != nil {
		return 0, fmt.Errorf("locking order number %q: %w", prefix, err)
	}
	var n int
	if err := q.QueryRow(ctx, countOrderNumbersSQL, storeID, prefix).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting order numbers %q: %w", prefix, err)
	}
	return n + 1, nil
}

func scanOrder(row pgx.CollectableRow) (order.Order, error) {
	var o order.Order
	err := row.Scan(
		&o.ID, &o.StoreID, &o.UserID, &o.CustomerID, &o.VoucherID,
		&o.Number, &o.Status, &o.Type, &o.Notes,
		&o.Subtotal, &o.TaxPercentage, &o.TaxAmount, &o.DeliveryFee, &o.DiscountAmount, &o.TotalAmount,
		&o.PaymentMethod, &o.PaymentAmount, &o.ChangeAmount, &o.PointsUsed, &o.PointsEarned,
		&o.PaidAt, &o.CancelledBy, &o.CancelledAt, &o.CancellationReason, &o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}

func scanOrderItem(row pgx.CollectableRow) (order.Item, error) {
	var it order.Item
	err := row.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.ProductPrice, &it.Quantity, &it.Subtotal)
	return it, err
}
