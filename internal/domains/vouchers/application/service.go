package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sneakpeak/storefront/internal/domains/vouchers/domain"
	"github.com/sneakpeak/storefront/internal/domains/vouchers/ports"
)

var (
	// ErrUnknownVoucher signals the code is not in the registry.
	ErrUnknownVoucher = errors.New("unknown voucher code")
	// ErrInvalidCode signals an empty or malformed code.
	ErrInvalidCode = errors.New("invalid voucher code")
)

// Service matches codes against the registry and holds the session's
// applied voucher. Re-applying replaces; discounts never stack.
type Service struct {
	registry ports.Registry

	mu     sync.RWMutex
	active *domain.Voucher
}

// NewService wires the voucher validator with its registry.
func NewService(registry ports.Registry) *Service {
	return &Service{registry: registry}
}

// Apply normalizes the code and looks it up. A hit replaces the active
// voucher; a miss leaves the state unchanged.
func (s *Service) Apply(ctx context.Context, code string) (*domain.Voucher, error) {
	normalized, err := domain.NormalizeCode(code)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCode, err)
	}
	voucher, err := s.registry.Lookup(ctx, normalized)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownVoucher, normalized)
		}
		return nil, err
	}
	s.mu.Lock()
	clone := *voucher
	s.active = &clone
	s.mu.Unlock()
	out := *voucher
	return &out, nil
}

// Remove clears the active voucher; the discount reverts to zero.
func (s *Service) Remove(_ context.Context) {
	s.mu.Lock()
	s.active = nil
	s.mu.Unlock()
}

// Active returns the applied voucher, or nil.
func (s *Service) Active(_ context.Context) *domain.Voucher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == nil {
		return nil
	}
	clone := *s.active
	return &clone
}

var _ ports.Service = (*Service)(nil)
