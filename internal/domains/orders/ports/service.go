package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sneakpeak/storefront/internal/domains/orders/domain"
)

// OrderLineInput is the snapshot of one selected cart item at
// confirmation time.
type OrderLineInput struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Quantity  int
	Image     string
}

// PlaceOrderInput carries everything needed to convert a checkout
// confirmation into order records.
type PlaceOrderInput struct {
	Lines          []OrderLineInput
	DeliveryOption domain.DeliveryOption
	PlacedBy       string
}

// Service exposes the order store use cases.
type Service interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) (*domain.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
}
