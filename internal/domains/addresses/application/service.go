package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sneakpeak/storefront/internal/domains/addresses/domain"
	"github.com/sneakpeak/storefront/internal/domains/addresses/ports"
)

// ErrInvalidAddress signals a missing required field or selection of a
// non-existent entry; nothing is stored on failure.
var ErrInvalidAddress = errors.New("invalid address")

// Service is the session's address book. Saving a valid address marks
// it active; Select switches the active entry.
type Service struct {
	repo ports.Repository

	mu     sync.RWMutex
	active *domain.ShippingAddress
}

// NewService wires the address book with its store.
func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// Save validates, appends, and activates a new address. Validation
// failures leave the book untouched.
func (s *Service) Save(ctx context.Context, input ports.SaveAddressInput) (*domain.ShippingAddress, error) {
	address, err := domain.NewShippingAddress(
		input.RecipientName,
		input.PhoneNumber,
		input.Region,
		input.City,
		input.District,
		input.Street,
		input.Unit,
		domain.ParseCategory(input.Category),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if _, err := s.repo.Append(ctx, address); err != nil {
		return nil, err
	}
	s.setActive(address)
	clone := *address
	return &clone, nil
}

// Select activates an existing saved address by position.
func (s *Service) Select(ctx context.Context, index int) (*domain.ShippingAddress, error) {
	address, err := s.repo.Get(ctx, index)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, fmt.Errorf("%w: no saved address at position %d", ErrInvalidAddress, index)
		}
		return nil, err
	}
	s.setActive(address)
	clone := *address
	return &clone, nil
}

// Active returns the address feeding checkout, or nil.
func (s *Service) Active(_ context.Context) *domain.ShippingAddress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == nil {
		return nil
	}
	clone := *s.active
	return &clone
}

// List returns every saved address in insertion order.
func (s *Service) List(ctx context.Context) ([]*domain.ShippingAddress, error) {
	return s.repo.List(ctx)
}

func (s *Service) setActive(address *domain.ShippingAddress) {
	clone := *address
	s.mu.Lock()
	s.active = &clone
	s.mu.Unlock()
}

var _ ports.Service = (*Service)(nil)
