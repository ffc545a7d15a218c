package ports

import (
	"context"
	"errors"

	"github.com/sneakpeak/storefront/internal/domains/vouchers/domain"
)

var ErrNotFound = errors.New("voucher code not found")

// Registry is the fixed code-to-discount table.
type Registry interface {
	// Lookup expects a normalized code.
	Lookup(ctx context.Context, code string) (*domain.Voucher, error)
}
