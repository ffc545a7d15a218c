package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Category groups products in the catalog. Unknown values collapse to
// CategoryOther so variant handling stays exhaustive.
type Category string

const (
	CategorySneakers    Category = "sneakers"
	CategoryApparel     Category = "apparel"
	CategoryAccessories Category = "accessories"
	CategoryOther       Category = "other"
)

// ParseCategory normalizes a raw category string to a closed value.
func ParseCategory(raw string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(raw))) {
	case CategorySneakers:
		return CategorySneakers
	case CategoryApparel:
		return CategoryApparel
	case CategoryAccessories:
		return CategoryAccessories
	default:
		return CategoryOther
	}
}

var (
	ErrEmptyProductID = errors.New("product id is required")
	ErrEmptyName      = errors.New("product name is required")
	ErrNegativePrice  = errors.New("product price must not be negative")
	ErrNegativeStock  = errors.New("product stock must not be negative")
)

// Product is the read-only catalog record the storefront sells from.
// The cart and checkout contexts never mutate it.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Category    Category
	Image       string
	SupplierID  string
}

// Validate enforces the catalog invariants.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrEmptyProductID
	}
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.Price.IsNegative() {
		return ErrNegativePrice
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}
