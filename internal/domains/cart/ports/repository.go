package ports

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sneakpeak/storefront/internal/domains/cart/domain"
)

var ErrNotFound = errors.New("cart item not found")

// Repository holds the session's cart lines.
type Repository interface {
	Save(ctx context.Context, item *domain.Item) (*domain.Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	GetByProduct(ctx context.Context, productID string) (*domain.Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*domain.Item, error)
	Clear(ctx context.Context) error
}
