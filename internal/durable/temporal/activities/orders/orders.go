package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	ordersdomain "github.com/sneakpeak/storefront/internal/domains/orders/domain"
	ordersports "github.com/sneakpeak/storefront/internal/domains/orders/ports"
)

// PlaceOrdersActivityName persists the orders of a confirmed checkout.
const PlaceOrdersActivityName = "orders.activities.PlaceOrders"

// Activities groups activities that operate on the orders bounded
// context.
type Activities struct {
	service ordersports.Service
}

// NewActivities wires the orders service into the Temporal activities
// bundle.
func NewActivities(service ordersports.Service) *Activities {
	return &Activities{service: service}
}

// PlaceOrders stores one pending order per checkout line.
func (a *Activities) PlaceOrders(ctx context.Context, input ordersports.PlaceOrderInput) ([]*ordersdomain.Order, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("place orders activity not initialized")
		return nil, errors.New("place orders activity not initialized")
	}
	logger.Info("PlaceOrders activity started", "lines", len(input.Lines))
	orders, err := a.service.PlaceOrder(ctx, input)
	if err != nil {
		logger.Error("PlaceOrders activity failed", "lines", len(input.Lines), "error", err)
		return nil, err
	}
	logger.Info("PlaceOrders activity completed", "orders", len(orders))
	return orders, nil
}
