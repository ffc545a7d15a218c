package mapper

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sneakpeak/storefront/internal/domains/orders/domain"
)

// Order is the HTTP representation of a placed order.
type Order struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"productId"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity"`
	Total          decimal.Decimal `json:"total"`
	Image          string          `json:"image,omitempty"`
	PlacedAt       time.Time       `json:"placedAt"`
	Status         string          `json:"status"`
	DeliveryOption string          `json:"deliveryOption"`
	PlacedBy       string          `json:"placedBy,omitempty"`
}

// UpdateStatusRequest captures the inbound status transition.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// FromDomain maps an order to its HTTP shape.
func FromDomain(order *domain.Order) Order {
	return Order{
		ID:             order.ID.String(),
		ProductID:      order.ProductID,
		Name:           order.Name,
		Price:          order.Price,
		Quantity:       order.Quantity,
		Total:          order.Total(),
		Image:          order.Image,
		PlacedAt:       order.PlacedAt,
		Status:         string(order.Status),
		DeliveryOption: string(order.DeliveryOption),
		PlacedBy:       order.PlacedBy,
	}
}

// FromDomainList maps an order listing.
func FromDomainList(orders []*domain.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, order := range orders {
		out = append(out, FromDomain(order))
	}
	return out
}
