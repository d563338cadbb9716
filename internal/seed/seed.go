package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type foodSeed struct {
	Name        string
	Description string
	PriceCents  int64
	Category    string
}

// Apply inserts basic menu data for manual testing. It is idempotent via a
// name-based upsert.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	items := []foodSeed{
		{
			Name:        "Greek Salad",
			Description: "Crisp greens with feta and olives",
			PriceCents:  1200,
			Category:    "Salad",
		},
		{
			Name:        "Chicken Rolls",
			Description: "Spiced chicken wrapped in soft flatbread",
			PriceCents:  2000,
			Category:    "Rolls",
		},
		{
			Name:        "Cheese Pasta",
			Description: "Penne in a three-cheese sauce",
			PriceCents:  1800,
			Category:    "Pasta",
		},
		{
			Name:        "Peri Peri Sandwich",
			Description: "Grilled peri peri chicken sandwich",
			PriceCents:  1500,
			Category:    "Sandwich",
		},
	}

	for _, item := range items {
		if err := upsertFood(ctx, pool, item); err != nil {
			return fmt.Errorf("upsert food %s: %w", item.Name, err)
		}
	}
	return nil
}

func upsertFood(ctx context.Context, pool *pgxpool.Pool, item foodSeed) error {
	const q = `
INSERT INTO foods (name, description, price_cents, category)
SELECT $1, $2, $3, $4
WHERE NOT EXISTS (SELECT 1 FROM foods WHERE name = $1)
`
	_, err := pool.Exec(ctx, q, item.Name, item.Description, item.PriceCents, item.Category)
	return err
}
