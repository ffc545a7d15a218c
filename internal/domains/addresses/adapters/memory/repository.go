package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/sneakpeak/storefront/internal/domains/addresses/domain"
	"github.com/sneakpeak/storefront/internal/domains/addresses/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository stores saved addresses in insertion order.
type Repository struct {
	mu        sync.RWMutex
	addresses []*domain.ShippingAddress
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) Append(_ context.Context, address *domain.ShippingAddress) (int, error) {
	if address == nil {
		return 0, errors.New("address is nil")
	}
	clone := *address
	if err := clone.Validate(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addresses = append(r.addresses, &clone)
	return len(r.addresses) - 1, nil
}

func (r *Repository) Get(_ context.Context, index int) (*domain.ShippingAddress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if index < 0 || index >= len(r.addresses) {
		return nil, ports.ErrNotFound
	}
	clone := *r.addresses[index]
	return &clone, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.ShippingAddress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.ShippingAddress, 0, len(r.addresses))
	for _, address := range r.addresses {
		clone := *address
		list = append(list, &clone)
	}
	return list, nil
}
