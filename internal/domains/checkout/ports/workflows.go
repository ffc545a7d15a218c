package ports

import (
	"context"

	ordersdomain "github.com/sneakpeak/storefront/internal/domains/orders/domain"
	ordersports "github.com/sneakpeak/storefront/internal/domains/orders/ports"
)

// OrderPlacer executes the order placement step of a confirmed
// checkout. Implementations may run the placement inline or hand it to
// a durable workflow engine.
type OrderPlacer interface {
	PlaceOrders(ctx context.Context, input ordersports.PlaceOrderInput) ([]*ordersdomain.Order, error)
}
