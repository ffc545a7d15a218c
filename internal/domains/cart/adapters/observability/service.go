package observability

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	cartdomain "github.com/sneakpeak/storefront/internal/domains/cart/domain"
	cartports "github.com/sneakpeak/storefront/internal/domains/cart/ports"
)

const tracerName = "github.com/sneakpeak/storefront/internal/domains/cart/adapters/observability/service"

// Service decorates the cart service with tracing, logging, and metrics.
type Service struct {
	inner   cartports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core cart service.
func New(inner cartports.Service, opts ...Option) cartports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) AddItem(ctx context.Context, input cartports.AddItemInput) (*cartdomain.Item, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.AddItem",
		trace.WithAttributes(attribute.String("product.id", input.ProductID), attribute.Int("quantity", input.Quantity)))
	defer span.End()

	s.logInfo(ctx, "adding cart item", slog.String("product.id", input.ProductID), slog.Int("quantity", input.Quantity))
	result, err := s.inner.AddItem(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to add cart item", slog.String("product.id", input.ProductID))
	}
	s.metrics.recordAdded(ctx, result.ProductID)
	s.logInfo(ctx, "cart item stored", slog.String("item.id", result.ID.String()), slog.Int("quantity", result.Quantity))
	return result, nil
}

func (s *Service) RemoveItem(ctx context.Context, id uuid.UUID) error {
	ctx, span := s.tracer.Start(ctx, "CartService.RemoveItem", trace.WithAttributes(attribute.String("item.id", id.String())))
	defer span.End()

	if err := s.inner.RemoveItem(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to remove cart item", slog.String("item.id", id.String()))
	}
	s.logInfo(ctx, "cart item removed", slog.String("item.id", id.String()))
	return nil
}

func (s *Service) SetQuantity(ctx context.Context, id uuid.UUID, quantity int) (*cartdomain.Item, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.SetQuantity",
		trace.WithAttributes(attribute.String("item.id", id.String()), attribute.Int("quantity", quantity)))
	defer span.End()

	result, err := s.inner.SetQuantity(ctx, id, quantity)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to set cart quantity", slog.String("item.id", id.String()))
	}
	s.logInfo(ctx, "cart quantity updated", slog.String("item.id", id.String()), slog.Int("quantity", quantity))
	return result, nil
}

func (s *Service) Clear(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "CartService.Clear")
	defer span.End()

	if err := s.inner.Clear(ctx); err != nil {
		return s.handleError(ctx, span, err, "failed to clear cart")
	}
	s.logInfo(ctx, "cart cleared")
	return nil
}

func (s *Service) Items(ctx context.Context) ([]*cartdomain.Item, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.Items")
	defer span.End()

	result, err := s.inner.Items(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list cart items")
	}
	span.SetAttributes(attribute.Int("cart.size", len(result)))
	return result, nil
}

func (s *Service) Total(ctx context.Context) (decimal.Decimal, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.Total")
	defer span.End()

	result, err := s.inner.Total(ctx)
	if err != nil {
		return decimal.Zero, s.handleError(ctx, span, err, "failed to compute cart total")
	}
	span.SetAttributes(attribute.String("cart.total", result.String()))
	return result, nil
}

func (s *Service) AvailableStock(ctx context.Context, productID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.AvailableStock", trace.WithAttributes(attribute.String("product.id", productID)))
	defer span.End()

	result, err := s.inner.AvailableStock(ctx, productID)
	if err != nil {
		return 0, s.handleError(ctx, span, err, "failed to reconcile stock", slog.String("product.id", productID))
	}
	span.SetAttributes(attribute.Int("stock.available", result))
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	itemsAdded metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	itemsAdded, _ := m.Int64Counter("cart.service.items_added", metric.WithDescription("Number of cart add operations"))
	return serviceMetrics{itemsAdded: itemsAdded}
}

func (m serviceMetrics) recordAdded(ctx context.Context, productID string) {
	if m.itemsAdded != nil {
		m.itemsAdded.Add(ctx, 1, metric.WithAttributes(attribute.String("product.id", productID)))
	}
}

var _ cartports.Service = (*Service)(nil)
