package ports

import (
	"context"

	"github.com/sneakpeak/storefront/internal/domains/catalog/domain"
)

// Service exposes catalog read use cases to adapters.
type Service interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	FindByCategory(ctx context.Context, category domain.Category) ([]*domain.Product, error)
}
