package order

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"

	"foodapp/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	addrJSON, err := json.Marshal(o.Address)
	if err != nil {
		return nil, err
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const q = `
INSERT INTO orders (user_id, address, amount_cents, status)
VALUES ($1, $2, $3, $4)
RETURNING id::text, created_at
`
	out := o
	if out.Status == "" {
		out.Status = domain.OrderPending
	}
	if err := tx.QueryRow(ctx, q, o.UserID, addrJSON, o.AmountCents, out.Status).Scan(&out.ID, &out.CreatedAt); err != nil {
		return nil, err
	}

	for i, item := range o.Items {
		if _, err := tx.Exec(ctx, `
INSERT INTO order_items (order_id, food_id, name, price_cents, quantity, position)
VALUES ($1, $2, $3, $4, $5, $6)
`, out.ID, item.FoodID, item.Name, item.PriceCents, item.Quantity, i); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("order repo: created id=%s user=%s amount=%d items=%d", out.ID, out.UserID, out.AmountCents, len(out.Items))
	return &out, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT id::text, user_id::text, address, amount_cents, status, session_id, created_at
FROM orders
WHERE id = $1
LIMIT 1
`
	o, err := r.scanOrder(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		return nil, err
	}
	items, err := r.itemsFor(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const q = `
SELECT id::text, user_id::text, address, amount_cents, status, session_id, created_at
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		items, err := r.itemsFor(ctx, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Items = items
	}
	return result, nil
}

func (r *postgresRepo) SetSession(ctx context.Context, id, sessionID string) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE orders
SET session_id = $2
WHERE id = $1
`, id, sessionID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// TransitionStatus is a conditional write: the status moves only when the
// stored status still matches `from`, so concurrent verifications settle
// first-writer-wins with no read-then-write window.
func (r *postgresRepo) TransitionStatus(ctx context.Context, id string, from, to domain.OrderStatus) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `
UPDATE orders
SET status = $3
WHERE id = $1 AND status = $2
`, id, from, to)
	if err != nil {
		r.logger.Printf("order repo: transition id=%s %s->%s error=%v", id, from, to, err)
		return false, err
	}
	moved := cmd.RowsAffected() > 0
	if moved {
		r.logger.Printf("order repo: transition id=%s %s->%s", id, from, to)
	}
	return moved, nil
}

func (r *postgresRepo) itemsFor(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	const q = `
SELECT food_id::text, name, price_cents, quantity
FROM order_items
WHERE order_id = $1
ORDER BY position ASC
`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.FoodID, &it.Name, &it.PriceCents, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *postgresRepo) scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	var addrJSON []byte
	if err := row.Scan(&o.ID, &o.UserID, &addrJSON, &o.AmountCents, &o.Status, &o.SessionID, &o.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(addrJSON, &o.Address); err != nil {
		return nil, err
	}
	return &o, nil
}
