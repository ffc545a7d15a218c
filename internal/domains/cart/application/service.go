package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sneakpeak/storefront/internal/domains/cart/domain"
	"github.com/sneakpeak/storefront/internal/domains/cart/ports"
	catalogports "github.com/sneakpeak/storefront/internal/domains/catalog/ports"
)

// TopicCartChanged is published after every successful cart mutation so
// observers (the checkout selection, the UI layer) can refresh.
const TopicCartChanged = "cart.changed"

// Service orchestrates the cart store use cases. Stock reconciliation
// happens here: every quantity request is checked against the catalog
// stock minus the current cart reservations before the store mutates.
type Service struct {
	repo    ports.Repository
	catalog catalogports.Repository
	bus     EventBus.Bus
}

// Option customizes the cart service.
type Option func(*Service)

// WithEventBus publishes TopicCartChanged after successful mutations.
func WithEventBus(bus EventBus.Bus) Option {
	return func(s *Service) { s.bus = bus }
}

// NewService wires the cart service with its dependencies.
func NewService(repo ports.Repository, catalog catalogports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo, catalog: catalog}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// AddItem merges into an existing line for the same product or inserts
// a new one, subject to stock reconciliation.
func (s *Service) AddItem(ctx context.Context, input ports.AddItemInput) (*domain.Item, error) {
	if input.Quantity < 1 {
		return nil, mapError(domain.ErrInvalidQuantity)
	}
	product, err := s.catalog.GetByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, catalogports.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, input.ProductID)
		}
		return nil, err
	}

	existing, err := s.repo.GetByProduct(ctx, input.ProductID)
	if err != nil && !errors.Is(err, ports.ErrNotFound) {
		return nil, err
	}

	reserved := 0
	if existing != nil {
		reserved = existing.Quantity
	}
	if reserved+input.Quantity > product.Stock {
		return nil, stockError(input.ProductID, reserved+input.Quantity, product.Stock)
	}

	var item *domain.Item
	if existing != nil {
		if err := existing.Merge(input.Quantity); err != nil {
			return nil, mapError(err)
		}
		item = existing
	} else {
		item, err = domain.NewItem(input.ProductID, input.Name, input.Price, input.Quantity, input.Image, input.SupplierID)
		if err != nil {
			return nil, mapError(err)
		}
	}
	saved, err := s.repo.Save(ctx, item)
	if err != nil {
		return nil, err
	}
	s.publishChanged()
	return saved, nil
}

// RemoveItem deletes a line; removing an absent line is a no-op.
func (s *Service) RemoveItem(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil
		}
		return err
	}
	s.publishChanged()
	return nil
}

// SetQuantity overwrites a line quantity. A non-positive quantity is
// equivalent to RemoveItem; the result is nil in that case.
func (s *Service) SetQuantity(ctx context.Context, id uuid.UUID, quantity int) (*domain.Item, error) {
	if quantity <= 0 {
		return nil, s.RemoveItem(ctx, id)
	}
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product, err := s.catalog.GetByID(ctx, item.ProductID)
	if err != nil {
		if errors.Is(err, catalogports.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, item.ProductID)
		}
		return nil, err
	}
	otherReserved, err := s.reservedExcept(ctx, item.ProductID, item.ID)
	if err != nil {
		return nil, err
	}
	if quantity+otherReserved > product.Stock {
		return nil, stockError(item.ProductID, quantity+otherReserved, product.Stock)
	}
	if err := item.SetQuantity(quantity); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Save(ctx, item)
	if err != nil {
		return nil, err
	}
	s.publishChanged()
	return saved, nil
}

// Clear empties the store; invoked after a successful checkout.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return err
	}
	s.publishChanged()
	return nil
}

// Items lists the current cart lines.
func (s *Service) Items(ctx context.Context) ([]*domain.Item, error) {
	return s.repo.List(ctx)
}

// Total recomputes the cart total on every read; nothing is cached.
func (s *Service) Total(ctx context.Context) (decimal.Decimal, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total, nil
}

// AvailableStock derives the purchasable quantity for a product:
// catalog stock minus the cart reservations. Never negative.
func (s *Service) AvailableStock(ctx context.Context, productID string) (int, error) {
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, catalogports.ErrNotFound) {
			return 0, fmt.Errorf("%w: %s", ErrUnknownProduct, productID)
		}
		return 0, err
	}
	reserved, err := s.reservedExcept(ctx, productID, uuid.Nil)
	if err != nil {
		return 0, err
	}
	available := product.Stock - reserved
	if available < 0 {
		available = 0
	}
	return available, nil
}

func (s *Service) reservedExcept(ctx context.Context, productID string, exclude uuid.UUID) (int, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	reserved := 0
	for _, item := range items {
		if item.ProductID != productID || item.ID == exclude {
			continue
		}
		reserved += item.Quantity
	}
	return reserved, nil
}

func (s *Service) publishChanged() {
	if s.bus != nil {
		s.bus.Publish(TopicCartChanged)
	}
}

var _ ports.Service = (*Service)(nil)
