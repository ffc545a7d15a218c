package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	ordersdomain "github.com/sneakpeak/storefront/internal/domains/orders/domain"
	ordersports "github.com/sneakpeak/storefront/internal/domains/orders/ports"
	orderactivities "github.com/sneakpeak/storefront/internal/durable/temporal/activities/orders"
)

// RunOrderPlacementSequence executes the ordered set of activities that
// convert a confirmed checkout into stored orders.
func RunOrderPlacementSequence(ctx workflow.Context, input ordersports.PlaceOrderInput) ([]*ordersdomain.Order, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("order placement sequence started", "lines", len(input.Lines))
	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	var orders []*ordersdomain.Order
	err := workflow.ExecuteActivity(ctx, orderactivities.PlaceOrdersActivityName, input).Get(ctx, &orders)
	if err != nil {
		logger.Error("order placement sequence failed", "lines", len(input.Lines), "error", err)
		return nil, err
	}
	logger.Info("order placement sequence completed", "orders", len(orders))
	return orders, nil
}
