package ports

import (
	"context"
	"errors"

	"github.com/sneakpeak/storefront/internal/domains/addresses/domain"
)

var ErrNotFound = errors.New("address not found")

// Repository keeps the ordered list of saved shipping addresses.
type Repository interface {
	Append(ctx context.Context, address *domain.ShippingAddress) (int, error)
	Get(ctx context.Context, index int) (*domain.ShippingAddress, error)
	List(ctx context.Context) ([]*domain.ShippingAddress, error)
}
