package food

import (
	"context"
	"errors"
	"testing"

	"foodapp/internal/domain"
)

type stubRepo struct {
	created    *domain.FoodItem
	createErr  error
	deleted    *domain.FoodItem
	deleteErr  error
	lastCreate domain.FoodItem
	lastDelete string
}

func (s *stubRepo) Create(_ context.Context, f domain.FoodItem) (*domain.FoodItem, error) {
	s.lastCreate = f
	return s.created, s.createErr
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.FoodItem, error) {
	return nil, domain.ErrNotFound
}

func (s *stubRepo) List(_ context.Context) ([]domain.FoodItem, error) {
	return nil, nil
}

func (s *stubRepo) Delete(_ context.Context, id string) (*domain.FoodItem, error) {
	s.lastDelete = id
	return s.deleted, s.deleteErr
}

type recordingRemover struct {
	removed []string
}

func (r *recordingRemover) Remove(name string) {
	r.removed = append(r.removed, name)
}

func TestAddValidation(t *testing.T) {
	svc := New(&stubRepo{}, nil)
	cases := []struct {
		name string
		in   AddInput
	}{
		{"blank name", AddInput{Name: " ", Category: "Salad", PriceCents: 100}},
		{"negative price", AddInput{Name: "A", Category: "Salad", PriceCents: -1}},
		{"blank category", AddInput{Name: "A", Category: "", PriceCents: 100}},
	}
	for _, tc := range cases {
		if _, err := svc.Add(context.Background(), tc.in); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestAddTrimsFields(t *testing.T) {
	repo := &stubRepo{created: &domain.FoodItem{ID: "f1"}}
	svc := New(repo, nil)

	_, err := svc.Add(context.Background(), AddInput{
		Name: "  Greek Salad ", Category: " Salad ", PriceCents: 1200,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if repo.lastCreate.Name != "Greek Salad" || repo.lastCreate.Category != "Salad" {
		t.Fatalf("fields not trimmed: %+v", repo.lastCreate)
	}
}

func TestRemoveReleasesImage(t *testing.T) {
	repo := &stubRepo{deleted: &domain.FoodItem{ID: "f1", Image: "123_salad.png"}}
	remover := &recordingRemover{}
	svc := New(repo, remover)

	if err := svc.Remove(context.Background(), "f1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(remover.removed) != 1 || remover.removed[0] != "123_salad.png" {
		t.Fatalf("expected image cleanup, got %v", remover.removed)
	}
}

func TestRemoveNotFoundSkipsImageCleanup(t *testing.T) {
	repo := &stubRepo{deleteErr: domain.ErrNotFound}
	remover := &recordingRemover{}
	svc := New(repo, remover)

	err := svc.Remove(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(remover.removed) != 0 {
		t.Fatalf("no image should be removed, got %v", remover.removed)
	}
}
