package mapper

import (
	"github.com/shopspring/decimal"

	"github.com/sneakpeak/storefront/internal/domains/cart/domain"
	"github.com/sneakpeak/storefront/internal/domains/cart/ports"
)

// AddItemRequest captures the inbound payload for adding a cart line.
type AddItemRequest struct {
	ProductID  string          `json:"productId" binding:"required"`
	Name       string          `json:"name" binding:"required"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	Quantity   int             `json:"quantity" binding:"required"`
	Image      string          `json:"image,omitempty"`
	SupplierID string          `json:"supplierId,omitempty"`
}

// ToAddItemInput maps the request to the application input.
func ToAddItemInput(req AddItemRequest) ports.AddItemInput {
	return ports.AddItemInput{
		ProductID:  req.ProductID,
		Name:       req.Name,
		Price:      req.Price,
		Quantity:   req.Quantity,
		Image:      req.Image,
		SupplierID: req.SupplierID,
	}
}

// SetQuantityRequest captures the inbound payload for a quantity update.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// Item is the HTTP representation of a cart line.
type Item struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"productId"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Image      string          `json:"image,omitempty"`
	SupplierID string          `json:"supplierId,omitempty"`
}

// Cart is the HTTP representation of the full cart.
type Cart struct {
	Items []Item          `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// FromDomain maps a cart line to its HTTP shape.
func FromDomain(item *domain.Item) Item {
	return Item{
		ID:         item.ID.String(),
		ProductID:  item.ProductID,
		Name:       item.Name,
		Price:      item.Price,
		Quantity:   item.Quantity,
		Subtotal:   item.Subtotal(),
		Image:      item.Image,
		SupplierID: item.SupplierID,
	}
}

// FromDomainList maps a cart listing.
func FromDomainList(items []*domain.Item) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		out = append(out, FromDomain(item))
	}
	return out
}
