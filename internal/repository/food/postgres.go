package food

import (
	"context"
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

func (r *postgresRepo) Create(ctx context.Context, f domain.FoodItem) (*domain.FoodItem, error) {
	const q = `
INSERT INTO foods (name, description, price_cents, category, image)
VALUES ($1, NULLIF($2, ''), $3, $4, NULLIF($5, ''))
RETURNING id::text, name, COALESCE(description, ''), price_cents, category, COALESCE(image, ''), created_at
`
	out, err := r.scanFood(r.pool.QueryRow(ctx, q, f.Name, f.Description, f.PriceCents, f.Category, f.Image))
	if err != nil {
		r.logger.Printf("food repo: create name=%q error=%v", f.Name, err)
		return nil, err
	}
	r.logger.Printf("food repo: created id=%s name=%q", out.ID, out.Name)
	return out, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.FoodItem, error) {
	const q = `
SELECT id::text, name, COALESCE(description, ''), price_cents, category, COALESCE(image, ''), created_at
FROM foods
WHERE id = $1
LIMIT 1
`
	return r.scanFood(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.FoodItem, error) {
	const q = `
SELECT id::text, name, COALESCE(description, ''), price_cents, category, COALESCE(image, ''), created_at
FROM foods
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.FoodItem
	for rows.Next() {
		var f domain.FoodItem
		if err := rows.Scan(&f.ID, &f.Name, &f.Description, &f.PriceCents, &f.Category, &f.Image, &f.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes the item and returns it so callers can release attached
// resources such as the stored image.
func (r *postgresRepo) Delete(ctx context.Context, id string) (*domain.FoodItem, error) {
	const q = `
DELETE FROM foods
WHERE id = $1
RETURNING id::text, name, COALESCE(description, ''), price_cents, category, COALESCE(image, ''), created_at
`
	return r.scanFood(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) scanFood(row pgx.Row) (*domain.FoodItem, error) {
	var f domain.FoodItem
	if err := row.Scan(&f.ID, &f.Name, &f.Description, &f.PriceCents, &f.Category, &f.Image, &f.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}
