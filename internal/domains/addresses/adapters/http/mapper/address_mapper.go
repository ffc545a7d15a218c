package mapper

import (
	"github.com/sneakpeak/storefront/internal/domains/addresses/domain"
	"github.com/sneakpeak/storefront/internal/domains/addresses/ports"
)

// SaveAddressRequest captures the inbound address form.
type SaveAddressRequest struct {
	RecipientName string `json:"recipientName" binding:"required"`
	PhoneNumber   string `json:"phoneNumber" binding:"required"`
	Region        string `json:"region,omitempty"`
	City          string `json:"city" binding:"required"`
	District      string `json:"district,omitempty"`
	Street        string `json:"street" binding:"required"`
	Unit          string `json:"unit,omitempty"`
	Category      string `json:"category,omitempty"`
}

// ToSaveInput maps the request to the application input.
func ToSaveInput(req SaveAddressRequest) ports.SaveAddressInput {
	return ports.SaveAddressInput{
		RecipientName: req.RecipientName,
		PhoneNumber:   req.PhoneNumber,
		Region:        req.Region,
		City:          req.City,
		District:      req.District,
		Street:        req.Street,
		Unit:          req.Unit,
		Category:      req.Category,
	}
}

// Address is the HTTP representation of a saved shipping address.
type Address struct {
	ID            string `json:"id"`
	RecipientName string `json:"recipientName"`
	PhoneNumber   string `json:"phoneNumber"`
	Region        string `json:"region,omitempty"`
	City          string `json:"city"`
	District      string `json:"district,omitempty"`
	Street        string `json:"street"`
	Unit          string `json:"unit,omitempty"`
	Category      string `json:"category"`
	Line          string `json:"line"`
}

// FromDomain maps a shipping address to its HTTP shape.
func FromDomain(address *domain.ShippingAddress) Address {
	return Address{
		ID:            address.ID.String(),
		RecipientName: address.RecipientName,
		PhoneNumber:   address.PhoneNumber,
		Region:        address.Region,
		City:          address.City,
		District:      address.District,
		Street:        address.Street,
		Unit:          address.Unit,
		Category:      string(address.Category),
		Line:          address.Line(),
	}
}

// FromDomainList maps the address book listing.
func FromDomainList(addresses []*domain.ShippingAddress) []Address {
	out := make([]Address, 0, len(addresses))
	for _, address := range addresses {
		out = append(out, FromDomain(address))
	}
	return out
}
