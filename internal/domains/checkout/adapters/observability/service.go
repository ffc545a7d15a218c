package observability

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	checkoutdomain "github.com/sneakpeak/storefront/internal/domains/checkout/domain"
	checkoutports "github.com/sneakpeak/storefront/internal/domains/checkout/ports"
	ordersdomain "github.com/sneakpeak/storefront/internal/domains/orders/domain"
	vouchersdomain "github.com/sneakpeak/storefront/internal/domains/vouchers/domain"
)

const tracerName = "github.com/sneakpeak/storefront/internal/domains/checkout/adapters/observability/service"

// Service decorates the checkout workflow with tracing, logging, and
// metrics.
type Service struct {
	inner   checkoutports.Service
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

// New wraps the core checkout service.
func New(inner checkoutports.Service, opts ...Option) checkoutports.Service {
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

func (s *Service) Stage(ctx context.Context) checkoutdomain.Stage {
	return s.inner.Stage(ctx)
}

func (s *Service) Selection(ctx context.Context) []uuid.UUID {
	return s.inner.Selection(ctx)
}

func (s *Service) Select(ctx context.Context, itemIDs []uuid.UUID) error {
	ctx, span := s.tracer.Start(ctx, "CheckoutService.Select", trace.WithAttributes(attribute.Int("selection.size", len(itemIDs))))
	defer span.End()

	if err := s.inner.Select(ctx, itemIDs); err != nil {
		return s.handleError(ctx, span, err, "failed to select cart items")
	}
	return nil
}

func (s *Service) SelectAll(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "CheckoutService.SelectAll")
	defer span.End()

	if err := s.inner.SelectAll(ctx); err != nil {
		return s.handleError(ctx, span, err, "failed to select all cart items")
	}
	return nil
}

func (s *Service) BeginDetails(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "CheckoutService.BeginDetails")
	defer span.End()

	if err := s.inner.BeginDetails(ctx); err != nil {
		return s.handleError(ctx, span, err, "failed to begin checkout details")
	}
	s.logInfo(ctx, "checkout details started")
	return nil
}

func (s *Service) SetContact(ctx context.Context, contact checkoutdomain.Contact) error {
	ctx, span := s.tracer.Start(ctx, "CheckoutService.SetContact")
	defer span.End()

	if err := s.inner.SetContact(ctx, contact); err != nil {
		return s.handleError(ctx, span, err, "failed to set checkout contact")
	}
	return nil
}

func (s *Service) UseActiveAddress(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "CheckoutService.UseActiveAddress")
	defer span.End()

	if err := s.inner.UseActiveAddress(ctx); err != nil {
		return s.handleError(ctx, span, err, "failed to copy active address")
	}
	return nil
}

func (s *Service) ApplyVoucher(ctx context.Context, code string) (*vouchersdomain.Voucher, error) {
	ctx, span := s.tracer.Start(ctx, "CheckoutService.ApplyVoucher")
	defer span.End()

	voucher, err := s.inner.ApplyVoucher(ctx, code)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to apply voucher")
	}
	span.SetAttributes(attribute.String("voucher.code", voucher.Code))
	s.logInfo(ctx, "voucher applied", slog.String("voucher.code", voucher.Code))
	return voucher, nil
}

func (s *Service) RemoveVoucher(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "CheckoutService.RemoveVoucher")
	defer span.End()

	if err := s.inner.RemoveVoucher(ctx); err != nil {
		return s.handleError(ctx, span, err, "failed to remove voucher")
	}
	return nil
}

func (s *Service) ChooseDelivery(ctx context.Context, option ordersdomain.DeliveryOption) error {
	ctx, span := s.tracer.Start(ctx, "CheckoutService.ChooseDelivery", trace.WithAttributes(attribute.String("delivery.option", string(option))))
	defer span.End()

	if err := s.inner.ChooseDelivery(ctx, option); err != nil {
		return s.handleError(ctx, span, err, "failed to choose delivery option")
	}
	return nil
}

func (s *Service) ChoosePayment(ctx context.Context, method checkoutdomain.PaymentMethod) error {
	ctx, span := s.tracer.Start(ctx, "CheckoutService.ChoosePayment", trace.WithAttributes(attribute.String("payment.method", string(method))))
	defer span.End()

	if err := s.inner.ChoosePayment(ctx, method); err != nil {
		return s.handleError(ctx, span, err, "failed to choose payment method")
	}
	return nil
}

func (s *Service) ReviewSummary(ctx context.Context) (*checkoutdomain.Summary, error) {
	ctx, span := s.tracer.Start(ctx, "CheckoutService.ReviewSummary")
	defer span.End()

	summary, err := s.inner.ReviewSummary(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to review checkout summary")
	}
	span.SetAttributes(attribute.String("checkout.total", summary.Total.String()))
	s.logInfo(ctx, "checkout summary computed",
		slog.String("subtotal", summary.Subtotal.String()),
		slog.String("total", summary.Total.String()))
	return summary, nil
}

func (s *Service) Confirm(ctx context.Context) ([]*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "CheckoutService.Confirm")
	defer span.End()

	orders, err := s.inner.Confirm(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to confirm checkout")
	}
	s.metrics.recordConfirmed(ctx, len(orders))
	span.SetAttributes(attribute.Int("orders.count", len(orders)))
	s.logInfo(ctx, "checkout confirmed", slog.Int("orders.count", len(orders)))
	return orders, nil
}

func (s *Service) Cancel(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "CheckoutService.Cancel")
	defer span.End()

	if err := s.inner.Cancel(ctx); err != nil {
		return s.handleError(ctx, span, err, "failed to cancel checkout")
	}
	s.logInfo(ctx, "checkout cancelled")
	return nil
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
	checkoutsConfirmed metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	confirmed, _ := m.Int64Counter("checkout.service.checkouts_confirmed", metric.WithDescription("Number of confirmed checkouts"))
	return serviceMetrics{checkoutsConfirmed: confirmed}
}

func (m serviceMetrics) recordConfirmed(ctx context.Context, orders int) {
	if m.checkoutsConfirmed != nil {
		m.checkoutsConfirmed.Add(ctx, 1, metric.WithAttributes(attribute.Int("orders.count", orders)))
	}
}

var _ checkoutports.Service = (*Service)(nil)
