package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/sneakpeak/storefront/internal/domains/checkout/ports"
	ordersdomain "github.com/sneakpeak/storefront/internal/domains/orders/domain"
	ordersports "github.com/sneakpeak/storefront/internal/domains/orders/ports"
	orderworkflows "github.com/sneakpeak/storefront/internal/durable/temporal/workflows/orders"
)

var (
	_ ports.OrderPlacer = (*TemporalOrderPlacer)(nil)
	_ ports.OrderPlacer = (*InlineOrderPlacer)(nil)
)

// TemporalOrderPlacer starts order placement workflows on a Temporal
// cluster.
type TemporalOrderPlacer struct {
	client    client.Client
	taskQueue string
}

// NewTemporalOrderPlacer wires a Temporal client into the orchestrator.
func NewTemporalOrderPlacer(c client.Client) *TemporalOrderPlacer {
	return &TemporalOrderPlacer{client: c, taskQueue: orderworkflows.OrderPlacementTaskQueue}
}

// PlaceOrders starts the Temporal workflow that persists the orders of
// a confirmed checkout and waits for its result.
func (o *TemporalOrderPlacer) PlaceOrders(ctx context.Context, input ordersports.PlaceOrderInput) ([]*ordersdomain.Order, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal order placer not configured")
	}
	traceComponent := workflowTraceComponent(ctx)
	workflowID := fmt.Sprintf("order-placement-%s", traceComponent)
	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: o.taskQueue,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		orderworkflows.OrderPlacementWorkflow,
		orderworkflows.OrderPlacementWorkflowInput{Command: input, TraceID: traceComponent},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			existingRun := o.client.GetWorkflow(ctx, workflowID, alreadyStarted.RunId)
			var orders []*ordersdomain.Order
			if err := existingRun.Get(ctx, &orders); err != nil {
				return nil, err
			}
			return orders, nil
		}
		return nil, err
	}
	var orders []*ordersdomain.Order
	if err := run.Get(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// InlineOrderPlacer executes the orders service directly without
// Temporal, useful for tests or dev fallbacks.
type InlineOrderPlacer struct {
	service ordersports.Service
}

// NewInlineOrderPlacer wraps the orders service for synchronous
// execution.
func NewInlineOrderPlacer(service ordersports.Service) *InlineOrderPlacer {
	return &InlineOrderPlacer{service: service}
}

// PlaceOrders delegates to the application service without durable
// orchestration.
func (o *InlineOrderPlacer) PlaceOrders(ctx context.Context, input ordersports.PlaceOrderInput) ([]*ordersdomain.Order, error) {
	if o == nil || o.service == nil {
		return nil, errors.New("inline order placer not configured")
	}
	return o.service.PlaceOrder(ctx, input)
}

func workflowTraceComponent(ctx context.Context) string {
	if traceID := workflowTraceID(ctx); traceID != "" {
		return traceID
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}

func workflowTraceID(ctx context.Context) string {
	span := oteltrace.SpanFromContext(ctx)
	if span == nil {
		return ""
	}
	spanCtx := span.SpanContext()
	if !spanCtx.IsValid() {
		return ""
	}
	traceID := spanCtx.TraceID()
	if !traceID.IsValid() {
		return ""
	}
	return traceID.String()
}
