package ports

import (
	"context"

	"github.com/sneakpeak/storefront/internal/domains/vouchers/domain"
)

// Service validates voucher codes and tracks the single applied voucher
// for the session.
type Service interface {
	Apply(ctx context.Context, code string) (*domain.Voucher, error)
	Remove(ctx context.Context)
	Active(ctx context.Context) *domain.Voucher
}
