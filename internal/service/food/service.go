package food

import (
	"context"
	"errors"
	"strings"

	"foodapp/internal/domain"
	foodrepo "foodapp/internal/repository/food"
)

// Service manages the food catalog.
type Service struct {
	repo   foodrepo.Repository
	images imageRemover
}

type imageRemover interface {
	Remove(name string)
}

func New(repo foodrepo.Repository, images imageRemover) *Service {
	return &Service{repo: repo, images: images}
}

// AddInput captures fields for a new catalog entry.
type AddInput struct {
	Name        string
	Description string
	PriceCents  int64
	Category    string
	Image       string
}

func (s *Service) Add(ctx context.Context, in AddInput) (*domain.FoodItem, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("name required")
	}
	if in.PriceCents < 0 {
		return nil, errors.New("price must not be negative")
	}
	if strings.TrimSpace(in.Category) == "" {
		return nil, errors.New("category required")
	}
	return s.repo.Create(ctx, domain.FoodItem{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		PriceCents:  in.PriceCents,
		Category:    strings.TrimSpace(in.Category),
		Image:       in.Image,
	})
}

func (s *Service) List(ctx context.Context) ([]domain.FoodItem, error) {
	return s.repo.List(ctx)
}

// Remove deletes the catalog entry and releases its stored image. Image
// cleanup is fire-and-forget; it never fails the removal.
func (s *Service) Remove(ctx context.Context, id string) error {
	item, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if s.images != nil && item.Image != "" {
		s.images.Remove(item.Image)
	}
	return nil
}
