package application

import (
	"context"

	"github.com/sneakpeak/storefront/internal/domains/catalog/domain"
	"github.com/sneakpeak/storefront/internal/domains/catalog/ports"
)

// Service orchestrates catalog read use cases.
type Service struct {
	repo ports.Repository
}

// NewService wires the catalog service with its provider.
func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// GetByID loads a single product record.
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns every product in the catalog.
func (s *Service) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

// FindByCategory filters the catalog by a closed category value.
func (s *Service) FindByCategory(ctx context.Context, category domain.Category) ([]*domain.Product, error) {
	return s.repo.FindByCategory(ctx, category)
}

var _ ports.Service = (*Service)(nil)
