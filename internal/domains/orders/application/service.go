package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sneakpeak/storefront/internal/domains/orders/domain"
	"github.com/sneakpeak/storefront/internal/domains/orders/ports"
)

// Service orchestrates the order store use cases.
type Service struct {
	repo ports.Repository
	now  func() time.Time
}

// Option customizes the orders service.
type Option func(*Service)

// WithClock overrides the time source for deterministic testing.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService wires the orders service with its dependencies.
func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// PlaceOrder converts every selected line into a pending order. The
// insert is all-or-nothing: a failure on any line creates no orders.
func (s *Service) PlaceOrder(ctx context.Context, input ports.PlaceOrderInput) ([]*domain.Order, error) {
	if len(input.Lines) == 0 {
		return nil, mapError(domain.ErrInvalidQuantity)
	}
	placedAt := s.now()
	orders := make([]*domain.Order, 0, len(input.Lines))
	for _, line := range input.Lines {
		order, err := domain.NewOrder(
			line.ProductID,
			line.Name,
			line.Price,
			line.Quantity,
			line.Image,
			input.DeliveryOption,
			input.PlacedBy,
			placedAt,
		)
		if err != nil {
			return nil, mapError(err)
		}
		orders = append(orders, order)
	}
	saved, err := s.repo.SaveAll(ctx, orders)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// UpdateStatus advances the lifecycle on behalf of the supplier-side
// fulfillment actor. Terminal orders reject the transition.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := order.Transition(status); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, order)
}

// GetByID loads a single order.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns every order, newest first.
func (s *Service) List(ctx context.Context) ([]*domain.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// IsNotFound reports whether err denotes a missing order.
func IsNotFound(err error) bool {
	return errors.Is(err, ports.ErrNotFound)
}

var _ ports.Service = (*Service)(nil)
