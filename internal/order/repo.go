package order

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, o *Order, items []Item) error
	GetByID(ctx context.Context, id int64) (*Order, error)
	List(ctx context.Context, q ListQuery) ([]Order, int, error)
	ListByUser(ctx context.Context, userID int64) ([]Order, error)
	SetStatus(ctx context.Context, id int64, s Status, restock bool) error
	UpdateDetails(ctx context.Context, id int64, paymentStatus, trackingNumber, notes string) error
	Delete(ctx context.Context, id int64) (bool, error)
	Stats(ctx context.Context) (*Stats, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// Create persists the order, its line items and the per-line stock decrements
// in a single transaction. The decrement is conditional on sufficient stock;
// a zero-row update rolls the whole order back, so concurrent checkouts can
// never oversell and no partially-decremented state is ever visible.
func (r *PGRepo) Create(ctx context.Context, o *Order, items []Item) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, `
    INSERT INTO orders (
      order_number, user_id, status, payment_method, payment_status,
      subtotal, tax_amount, shipping_cost, total_amount,
      shipping_address, shipping_city, shipping_postal_code, shipping_country,
      billing_address, billing_city, billing_postal_code, billing_country,
      tracking_number, notes, created_at, updated_at
    )
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,NOW(),NOW())
    RETURNING id, created_at, updated_at
  `, o.OrderNumber, o.UserID, o.Status, o.PaymentMethod, o.PaymentStatus,
		o.Subtotal, o.TaxAmount, o.ShippingCost, o.TotalAmount,
		o.ShippingAddress, o.ShippingCity, o.ShippingPostalCode, o.ShippingCountry,
		o.BillingAddress, o.BillingCity, o.BillingPostalCode, o.BillingCountry,
		o.TrackingNumber, o.Notes).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateNumber
		}
		return err
	}

	for i := range items {
		items[i].OrderID = o.ID
		if err := tx.QueryRow(ctx, `
      INSERT INTO order_items (order_id, product_id, quantity, unit_price, total_price)
      VALUES ($1,$2,$3,$4,$5)
      RETURNING id
    `, o.ID, items[i].ProductID, items[i].Quantity, items[i].UnitPrice, items[i].TotalPrice).
			Scan(&items[i].ID); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `
      UPDATE products
      SET stock_quantity = stock_quantity - $2, updated_at = NOW()
      WHERE id = $1 AND stock_quantity >= $2
    `, items[i].ProductID, items[i].Quantity)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return r.stockConflict(ctx, tx, items[i].ProductID)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	o.Items = items
	return nil
}

// stockConflict decides which error to report when the conditional decrement
// matched nothing: the product vanished, or there is not enough stock left.
func (r *PGRepo) stockConflict(ctx context.Context, tx pgx.Tx, productID int64) error {
	var name string
	var stock int
	err := tx.QueryRow(ctx, `SELECT name, stock_quantity FROM products WHERE id=$1`, productID).
		Scan(&name, &stock)
	if err != nil {
		return &ProductNotFoundError{ProductID: productID}
	}
	return &InsufficientStockError{ProductName: name, Available: stock}
}

const orderColumns = `
    id, order_number, user_id, status, payment_method, payment_status,
    subtotal::text, tax_amount::text, shipping_cost::text, total_amount::text,
    shipping_address, shipping_city, shipping_postal_code, shipping_country,
    billing_address, billing_city, billing_postal_code, billing_country,
    tracking_number, notes, created_at, updated_at`

func scanOrder(row pgx.Row, o *Order) error {
	return row.Scan(
		&o.ID, &o.OrderNumber, &o.UserID, &o.Status, &o.PaymentMethod, &o.PaymentStatus,
		&o.Subtotal, &o.TaxAmount, &o.ShippingCost, &o.TotalAmount,
		&o.ShippingAddress, &o.ShippingCity, &o.ShippingPostalCode, &o.ShippingCountry,
		&o.BillingAddress, &o.BillingCity, &o.BillingPostalCode, &o.BillingCountry,
		&o.TrackingNumber, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var o Order
	if err := scanOrder(r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id=$1`, id), &o); err != nil {
		return nil, ErrNotFound
	}

	rows, err := r.db.Query(ctx, `
    SELECT oi.id, oi.order_id, oi.product_id, COALESCE(p.name, ''), oi.quantity,
           oi.unit_price::text, oi.total_price::text
    FROM order_items oi
    LEFT JOIN products p ON p.id = oi.product_id
    WHERE oi.order_id = $1
    ORDER BY oi.id
  `, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName,
			&it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, it)
	}
	return &o, rows.Err()
}

func (r *PGRepo) List(ctx context.Context, q ListQuery) ([]Order, int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	var total int
	if err := r.db.QueryRow(ctx, `
    SELECT COUNT(*) FROM orders
    WHERE ($1 = 0 OR user_id = $1) AND ($2 = '' OR status = $2)
  `, q.UserID, string(q.Status)).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `
    SELECT `+orderColumns+`
    FROM orders
    WHERE ($1 = 0 OR user_id = $1) AND ($2 = '' OR status = $2)
    ORDER BY created_at DESC
    LIMIT $3 OFFSET $4
  `, q.UserID, string(q.Status), limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, 0, err
		}
		out = append(out, o)
	}
	return out, total, rows.Err()
}

func (r *PGRepo) ListByUser(ctx context.Context, userID int64) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
    SELECT `+orderColumns+`
    FROM orders WHERE user_id = $1
    ORDER BY created_at DESC
  `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// SetStatus updates the workflow state. With restock it also returns every
// line item's quantity to product stock, in the same transaction, which is
// the cancel path.
func (r *PGRepo) SetStatus(ctx context.Context, id int64, s Status, restock bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
    UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1
  `, id, s)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	if restock {
		if _, err := tx.Exec(ctx, `
      UPDATE products p
      SET stock_quantity = p.stock_quantity + oi.quantity, updated_at = NOW()
      FROM order_items oi
      WHERE oi.order_id = $1 AND p.id = oi.product_id
    `, id); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) UpdateDetails(ctx context.Context, id int64, paymentStatus, trackingNumber, notes string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
    UPDATE orders
    SET payment_status  = COALESCE(NULLIF($2,''), payment_status),
        tracking_number = COALESCE(NULLIF($3,''), tracking_number),
        notes           = COALESCE(NULLIF($4,''), notes),
        updated_at = NOW()
    WHERE id = $1
  `, id, paymentStatus, trackingNumber, notes)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// order_items cascade via FK
	cmd, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *PGRepo) Stats(ctx context.Context) (*Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s Stats
	err := r.db.QueryRow(ctx, `
    SELECT COUNT(*),
           COALESCE(SUM(total_amount) FILTER (WHERE status <> 'cancelled'), 0)::text,
           COUNT(*) FILTER (WHERE status = 'pending'),
           COUNT(*) FILTER (WHERE status = 'delivered')
    FROM orders
  `).Scan(&s.TotalOrders, &s.TotalRevenue, &s.PendingOrders, &s.CompletedOrders)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
