package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/sneakpeak/storefront/internal/domains/orders/domain"
	"github.com/sneakpeak/storefront/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order persistence adapter.
type Repository struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*domain.Order
}

func NewRepository() *Repository {
	return &Repository{orders: map[uuid.UUID]*domain.Order{}}
}

// SaveAll validates every order before inserting any, keeping the
// batch all-or-nothing.
func (r *Repository) SaveAll(_ context.Context, orders []*domain.Order) ([]*domain.Order, error) {
	clones := make([]*domain.Order, 0, len(orders))
	for _, order := range orders {
		if order == nil {
			return nil, errors.New("order is nil")
		}
		clone := *order
		if clone.ID == uuid.Nil {
			clone.ID = uuid.New()
		}
		if err := clone.Validate(); err != nil {
			return nil, err
		}
		clones = append(clones, &clone)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, clone := range clones {
		r.orders[clone.ID] = clone
	}
	out := make([]*domain.Order, 0, len(clones))
	for _, clone := range clones {
		copy := *clone
		out = append(out, &copy)
	}
	return out, nil
}

func (r *Repository) Save(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	clone := *order
	if clone.ID == uuid.Nil {
		clone.ID = uuid.New()
	}
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *Repository) GetByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *order
	return &clone, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		clone := *order
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].PlacedAt.Equal(list[j].PlacedAt) {
			return list[i].PlacedAt.After(list[j].PlacedAt)
		}
		return list[i].ID.String() < list[j].ID.String()
	})
	return list, nil
}
