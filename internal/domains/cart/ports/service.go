package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sneakpeak/storefront/internal/domains/cart/domain"
)

// AddItemInput carries the product snapshot taken when a line enters
// the cart.
type AddItemInput struct {
	ProductID  string
	Name       string
	Price      decimal.Decimal
	Quantity   int
	Image      string
	SupplierID string
}

// Service exposes the cart store and stock reconciliation use cases.
type Service interface {
	AddItem(ctx context.Context, input AddItemInput) (*domain.Item, error)
	RemoveItem(ctx context.Context, id uuid.UUID) error
	SetQuantity(ctx context.Context, id uuid.UUID, quantity int) (*domain.Item, error)
	Clear(ctx context.Context) error
	Items(ctx context.Context) ([]*domain.Item, error)
	Total(ctx context.Context) (decimal.Decimal, error)
	AvailableStock(ctx context.Context, productID string) (int, error)
}
