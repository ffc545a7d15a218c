package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Category tags a saved address as the recipient's home or office.
type Category string

const (
	CategoryHome   Category = "home"
	CategoryOffice Category = "office"
)

// ParseCategory normalizes a raw category string; anything unknown
// defaults to home.
func ParseCategory(raw string) Category {
	if Category(strings.ToLower(strings.TrimSpace(raw))) == CategoryOffice {
		return CategoryOffice
	}
	return CategoryHome
}

var (
	ErrEmptyRecipient = errors.New("recipient name is required")
	ErrEmptyPhone     = errors.New("phone number is required")
	ErrEmptyCity      = errors.New("city is required")
	ErrEmptyStreet    = errors.New("street is required")
)

// ShippingAddress is a validated delivery destination. Unit and the
// wider region fields are optional.
type ShippingAddress struct {
	ID            uuid.UUID
	RecipientName string
	PhoneNumber   string
	Region        string
	City          string
	District      string
	Street        string
	Unit          string
	Category      Category
}

// NewShippingAddress trims, validates, and assigns an identifier.
func NewShippingAddress(recipient, phone, region, city, district, street, unit string, category Category) (*ShippingAddress, error) {
	addr := &ShippingAddress{
		ID:            uuid.New(),
		RecipientName: strings.TrimSpace(recipient),
		PhoneNumber:   strings.TrimSpace(phone),
		Region:        strings.TrimSpace(region),
		City:          strings.TrimSpace(city),
		District:      strings.TrimSpace(district),
		Street:        strings.TrimSpace(street),
		Unit:          strings.TrimSpace(unit),
		Category:      category,
	}
	if addr.Category == "" {
		addr.Category = CategoryHome
	}
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return addr, nil
}

// Validate enforces the required fields.
func (a *ShippingAddress) Validate() error {
	if a.RecipientName == "" {
		return ErrEmptyRecipient
	}
	if a.PhoneNumber == "" {
		return ErrEmptyPhone
	}
	if a.City == "" {
		return ErrEmptyCity
	}
	if a.Street == "" {
		return ErrEmptyStreet
	}
	return nil
}

// Line renders the single-line form used by the checkout contact fields.
func (a *ShippingAddress) Line() string {
	parts := make([]string, 0, 4)
	if a.Unit != "" {
		parts = append(parts, a.Unit)
	}
	parts = append(parts, a.Street)
	if a.District != "" {
		parts = append(parts, a.District)
	}
	if a.Region != "" {
		parts = append(parts, a.Region)
	}
	return strings.Join(parts, ", ")
}
