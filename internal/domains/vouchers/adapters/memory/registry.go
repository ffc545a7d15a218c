package memory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sneakpeak/storefront/internal/domains/vouchers/domain"
	"github.com/sneakpeak/storefront/internal/domains/vouchers/ports"
)

var _ ports.Registry = (*Registry)(nil)

// Registry is the static code-to-discount table.
type Registry struct {
	vouchers map[string]decimal.Decimal
}

// NewRegistry builds the default voucher table.
func NewRegistry() *Registry {
	return &Registry{vouchers: map[string]decimal.Decimal{
		"SAVE50":    decimal.NewFromInt(50),
		"SAVE100":   decimal.NewFromInt(100),
		"WELCOME20": decimal.NewFromInt(20),
	}}
}

// NewRegistryWith builds a registry from an explicit table; used in tests.
func NewRegistryWith(table map[string]decimal.Decimal) *Registry {
	vouchers := make(map[string]decimal.Decimal, len(table))
	for code, discount := range table {
		vouchers[code] = discount
	}
	return &Registry{vouchers: vouchers}
}

func (r *Registry) Lookup(_ context.Context, code string) (*domain.Voucher, error) {
	discount, ok := r.vouchers[code]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &domain.Voucher{Code: code, Discount: discount}, nil
}
