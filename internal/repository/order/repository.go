package order

import (
	"context"

	"foodapp/internal/domain"
)

// Repository persists orders and their item snapshots.
type Repository interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	SetSession(ctx context.Context, id, sessionID string) error

	// TransitionStatus sets the status to `to` only if the current status is
	// `from`, reporting whether the write happened. Payment-verification
	// idempotence is built on this primitive.
	TransitionStatus(ctx context.Context, id string, from, to domain.OrderStatus) (bool, error)
}
