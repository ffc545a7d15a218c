package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyProductID  = errors.New("cart item product id is required")
	ErrEmptyName       = errors.New("cart item name is required")
	ErrNegativePrice   = errors.New("cart item price must not be negative")
	ErrInvalidQuantity = errors.New("cart item quantity must be greater than zero")
)

// Item is a single cart line. The cart holds at most one Item per
// product; a repeat add merges quantities instead of duplicating.
type Item struct {
	ID         uuid.UUID
	ProductID  string
	Name       string
	Price      decimal.Decimal
	Quantity   int
	Image      string
	SupplierID string
}

// NewItem validates and constructs a cart line with a fresh identifier.
// Price is copied at insert time and never re-read from the catalog.
func NewItem(productID, name string, price decimal.Decimal, quantity int, image, supplierID string) (*Item, error) {
	item := &Item{
		ID:         uuid.New(),
		ProductID:  strings.TrimSpace(productID),
		Name:       strings.TrimSpace(name),
		Price:      price,
		Quantity:   quantity,
		Image:      image,
		SupplierID: supplierID,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}

// Validate enforces the cart line invariants.
func (i *Item) Validate() error {
	if strings.TrimSpace(i.ProductID) == "" {
		return ErrEmptyProductID
	}
	if strings.TrimSpace(i.Name) == "" {
		return ErrEmptyName
	}
	if i.Price.IsNegative() {
		return ErrNegativePrice
	}
	if i.Quantity < 1 {
		return ErrInvalidQuantity
	}
	return nil
}

// Merge folds an additional quantity into the line.
func (i *Item) Merge(quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	i.Quantity += quantity
	return nil
}

// SetQuantity overwrites the line quantity.
func (i *Item) SetQuantity(quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	i.Quantity = quantity
	return nil
}

// Subtotal is price times quantity.
func (i *Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
