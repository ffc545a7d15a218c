package ports

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sneakpeak/storefront/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("order not found")

// Repository persists confirmed orders.
type Repository interface {
	// SaveAll inserts every order or none: a validation failure on any
	// element must leave the store untouched.
	SaveAll(ctx context.Context, orders []*domain.Order) ([]*domain.Order, error)
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
}
