// Package wishlist implements the uniqueness-constrained user-product
// membership and its reporting query.
package wishlist

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound     = errors.New("wishlist entry not found")
	ErrAlreadyExist = errors.New("product already wishlisted")
)

type Repository interface {
	Add(ctx context.Context, userID, productID int64) (*Entry, error)
	Remove(ctx context.Context, userID, productID int64) error
	Contains(ctx context.Context, userID, productID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]Entry, error)
	Stats(ctx context.Context) ([]CategoryStat, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Add(ctx context.Context, userID, productID int64) (*Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	e := Entry{UserID: userID, ProductID: productID}
	err := r.db.QueryRow(ctx, `
		INSERT INTO wishlist_items (user_id, product_id, created_at)
		VALUES ($1,$2,NOW())
		RETURNING id, created_at
	`, userID, productID).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrAlreadyExist
		}
		return nil, err
	}
	return &e, nil
}

func (r *PGRepo) Remove(ctx context.Context, userID, productID int64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		DELETE FROM wishlist_items WHERE user_id=$1 AND product_id=$2
	`, userID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Contains(ctx context.Context, userID, productID int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM wishlist_items WHERE user_id=$1 AND product_id=$2)
	`, userID, productID).Scan(&exists)
	return exists, err
}

func (r *PGRepo) ListByUser(ctx context.Context, userID int64) ([]Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT w.id, w.user_id, w.product_id, w.created_at, p.name, p.price::text
		FROM wishlist_items w
		JOIN products p ON p.id = w.product_id
		WHERE w.user_id = $1
		ORDER BY w.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.ProductID, &e.CreatedAt, &e.ProductName, &e.ProductPrice); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PGRepo) Stats(ctx context.Context) ([]CategoryStat, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT c.name, COUNT(*), COALESCE(SUM(p.price), 0)::text
		FROM wishlist_items w
		JOIN products p ON p.id = w.product_id
		JOIN categories c ON c.id = p.category_id
		GROUP BY c.name
		ORDER BY c.name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CategoryStat
	for rows.Next() {
		var s CategoryStat
		if err := rows.Scan(&s.Category, &s.Count, &s.TotalValue); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
