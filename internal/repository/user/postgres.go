package user

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"foodapp/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	const q = `
INSERT INTO users (name, email, password_hash)
VALUES ($1, lower($2), $3)
RETURNING id::text, name, email, password_hash, created_at
`
	var out domain.User
	err := r.pool.QueryRow(ctx, q, u.Name, u.Email, u.PasswordHash).Scan(
		&out.ID, &out.Name, &out.Email, &out.PasswordHash, &out.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const q = `
SELECT id::text, name, email, password_hash, created_at
FROM users
WHERE id = $1
LIMIT 1
`
	return r.scanUser(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `
SELECT id::text, name, email, password_hash, created_at
FROM users
WHERE lower(email) = lower($1)
LIMIT 1
`
	return r.scanUser(r.pool.QueryRow(ctx, q, strings.TrimSpace(email)))
}

func (r *postgresRepo) Cart(ctx context.Context, userID string) (domain.Cart, error) {
	const q = `
SELECT food_id::text, quantity
FROM cart_items
WHERE user_id = $1 AND quantity > 0
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cart := domain.Cart{}
	for rows.Next() {
		var foodID string
		var qty int
		if err := rows.Scan(&foodID, &qty); err != nil {
			return nil, err
		}
		cart[foodID] = qty
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cart, nil
}

// AddCartItem increments the quantity by one, creating the row at quantity 1
// when absent. The upsert is a single statement, so concurrent adds for the
// same user and item serialize on the row without lost updates.
func (r *postgresRepo) AddCartItem(ctx context.Context, userID, foodID string) error {
	const q = `
INSERT INTO cart_items (user_id, food_id, quantity)
VALUES ($1, $2, 1)
ON CONFLICT (user_id, food_id)
DO UPDATE SET quantity = cart_items.quantity + 1
`
	_, err := r.pool.Exec(ctx, q, userID, foodID)
	if err != nil {
		r.logger.Printf("user repo: add cart item user=%s food=%s error=%v", userID, foodID, err)
	}
	return err
}

// RemoveCartItem decrements the quantity by one, never below zero, and
// deletes the row once it reaches zero. Removing an absent item is a no-op.
func (r *postgresRepo) RemoveCartItem(ctx context.Context, userID, foodID string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
UPDATE cart_items
SET quantity = quantity - 1
WHERE user_id = $1 AND food_id = $2 AND quantity > 0
`, userID, foodID); err != nil {
		r.logger.Printf("user repo: remove cart item user=%s food=%s error=%v", userID, foodID, err)
		return err
	}

	if _, err := tx.Exec(ctx, `
DELETE FROM cart_items
WHERE user_id = $1 AND food_id = $2 AND quantity = 0
`, userID, foodID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) ClearCart(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		r.logger.Printf("user repo: clear cart user=%s error=%v", userID, err)
	}
	return err
}

func (r *postgresRepo) scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
