package cart

import (
	"context"
	"errors"
	"strings"

	"foodapp/internal/domain"
)

// Service aggregates per-user cart quantities. All operations are scoped to
// the authenticated user id resolved at request entry.
type Service struct {
	carts   cartStore
	catalog catalog
}

type cartStore interface {
	Cart(ctx context.Context, userID string) (domain.Cart, error)
	AddCartItem(ctx context.Context, userID, foodID string) error
	RemoveCartItem(ctx context.Context, userID, foodID string) error
}

type catalog interface {
	GetByID(ctx context.Context, id string) (*domain.FoodItem, error)
}

func New(carts cartStore, catalog catalog) *Service {
	return &Service{carts: carts, catalog: catalog}
}

// Add increments the quantity for the item by one, creating the entry at 1.
func (s *Service) Add(ctx context.Context, userID, foodID string) error {
	if strings.TrimSpace(foodID) == "" {
		return errors.New("food item id required")
	}
	return s.carts.AddCartItem(ctx, userID, foodID)
}

// Remove decrements the quantity by one. Removing an absent or zero-quantity
// item is a no-op, not an error.
func (s *Service) Remove(ctx context.Context, userID, foodID string) error {
	if strings.TrimSpace(foodID) == "" {
		return errors.New("food item id required")
	}
	return s.carts.RemoveCartItem(ctx, userID, foodID)
}

// Get returns the current item-to-quantity mapping.
func (s *Service) Get(ctx context.Context, userID string) (domain.Cart, error) {
	return s.carts.Cart(ctx, userID)
}

// Subtotal sums current catalog price times quantity over the cart. Items
// that no longer resolve in the catalog are skipped rather than failing the
// whole computation; the result is advisory for display, not the frozen
// order amount.
func (s *Service) Subtotal(ctx context.Context, userID string) (int64, error) {
	cart, err := s.carts.Cart(ctx, userID)
	if err != nil {
		return 0, err
	}

	var total int64
	for foodID, qty := range cart {
		if qty <= 0 {
			continue
		}
		item, err := s.catalog.GetByID(ctx, foodID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return 0, err
		}
		total += item.PriceCents * int64(qty)
	}
	return total, nil
}
