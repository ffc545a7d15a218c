package ports

import (
	"context"

	"github.com/sneakpeak/storefront/internal/domains/addresses/domain"
)

// SaveAddressInput carries the raw address form fields.
type SaveAddressInput struct {
	RecipientName string
	PhoneNumber   string
	Region        string
	City          string
	District      string
	Street        string
	Unit          string
	Category      string
}

// Service exposes the address book: saving validated addresses and
// selecting the active one that feeds checkout.
type Service interface {
	Save(ctx context.Context, input SaveAddressInput) (*domain.ShippingAddress, error)
	Select(ctx context.Context, index int) (*domain.ShippingAddress, error)
	Active(ctx context.Context) *domain.ShippingAddress
	List(ctx context.Context) ([]*domain.ShippingAddress, error)
}
