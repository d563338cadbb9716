package user

import (
	"context"

	"foodapp/internal/domain"
)

// Repository persists users and their carts. Cart mutations are atomic at
// the storage layer so concurrent increments never lose updates.
type Repository interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	Cart(ctx context.Context, userID string) (domain.Cart, error)
	AddCartItem(ctx context.Context, userID, foodID string) error
	RemoveCartItem(ctx context.Context, userID, foodID string) error
	ClearCart(ctx context.Context, userID string) error
}
