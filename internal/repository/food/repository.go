package food

import (
	"context"

	"foodapp/internal/domain"
)

// Repository provides catalog access. Reads are the source of truth for
// current prices; order snapshots never re-read them.
type Repository interface {
	Create(ctx context.Context, f domain.FoodItem) (*domain.FoodItem, error)
	GetByID(ctx context.Context, id string) (*domain.FoodItem, error)
	List(ctx context.Context) ([]domain.FoodItem, error)
	Delete(ctx context.Context, id string) (*domain.FoodItem, error)
}
