package ports

import (
	"context"
	"errors"

	"github.com/sneakpeak/storefront/internal/domains/catalog/domain"
)

var ErrNotFound = errors.New("product not found")

// Repository is the read-only catalog provider consumed by the cart and
// checkout contexts.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	FindByCategory(ctx context.Context, category domain.Category) ([]*domain.Product, error)
}
