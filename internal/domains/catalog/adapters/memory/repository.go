package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/sneakpeak/storefront/internal/domains/catalog/domain"
	"github.com/sneakpeak/storefront/internal/domains/catalog/ports"
	"github.com/sneakpeak/storefront/internal/shared/random"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory catalog provider. The storefront treats
// the catalog as an external read-only collaborator.
type Repository struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
}

// NewRepository builds an empty catalog.
func NewRepository() *Repository {
	return &Repository{products: map[string]*domain.Product{}}
}

// NewSeededRepository builds a catalog populated with generated display
// data. Equal random sources yield identical fixtures.
func NewSeededRepository(src random.Source) *Repository {
	repo := NewRepository()
	repo.seed(src)
	return repo
}

// Load replaces or inserts a product record; used by fixtures and tests.
func (r *Repository) Load(products ...*domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range products {
		if p == nil {
			continue
		}
		clone := *p
		if err := clone.Validate(); err != nil {
			return err
		}
		r.products[clone.ID] = &clone
	}
	return nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *product
	return &clone, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Product, 0, len(r.products))
	for _, product := range r.products {
		clone := *product
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *Repository) FindByCategory(_ context.Context, category domain.Category) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*domain.Product
	for _, product := range r.products {
		if product.Category != category {
			continue
		}
		clone := *product
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

var seedNames = map[domain.Category][]string{
	domain.CategorySneakers:    {"Court Classic", "Trail Runner", "Street Low", "Metro High"},
	domain.CategoryApparel:     {"Crew Tee", "Track Jacket", "Cargo Shorts"},
	domain.CategoryAccessories: {"Canvas Cap", "Sling Bag", "Ankle Socks"},
}

var seedSuppliers = []string{"sup-manila", "sup-cebu", "sup-davao"}

func (r *Repository) seed(src random.Source) {
	if src == nil {
		src = random.NewSeeded(1)
	}
	n := 0
	// Fixed category order keeps fixtures deterministic for a given seed.
	for _, category := range []domain.Category{domain.CategorySneakers, domain.CategoryApparel, domain.CategoryAccessories} {
		for _, name := range seedNames[category] {
			n++
			id := fmt.Sprintf("prod-%03d", n)
			price := decimal.NewFromInt(int64(100 + src.Intn(40)*25))
			product := &domain.Product{
				ID:          id,
				Name:        name,
				Description: fmt.Sprintf("%s (%s)", name, category),
				Price:       price,
				Stock:       5 + src.Intn(20),
				Category:    category,
				Image:       fmt.Sprintf("/images/%s.png", id),
				SupplierID:  src.Pick(seedSuppliers),
			}
			_ = r.Load(product)
		}
	}
}
