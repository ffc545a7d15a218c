package mapper

import (
	"github.com/shopspring/decimal"

	"github.com/sneakpeak/storefront/internal/domains/catalog/domain"
)

// Product is the HTTP representation of a catalog product.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	Image       string          `json:"image,omitempty"`
	SupplierID  string          `json:"supplierId,omitempty"`
}

// FromDomain maps a catalog product to its HTTP shape.
func FromDomain(product *domain.Product) Product {
	return Product{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		Category:    string(product.Category),
		Image:       product.Image,
		SupplierID:  product.SupplierID,
	}
}

// FromDomainList maps a catalog listing.
func FromDomainList(products []*domain.Product) []Product {
	out := make([]Product, 0, len(products))
	for _, product := range products {
		out = append(out, FromDomain(product))
	}
	return out
}
