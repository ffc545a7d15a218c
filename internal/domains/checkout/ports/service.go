package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/sneakpeak/storefront/internal/domains/checkout/domain"
	ordersdomain "github.com/sneakpeak/storefront/internal/domains/orders/domain"
	vouchersdomain "github.com/sneakpeak/storefront/internal/domains/vouchers/domain"
)

// Service drives the checkout workflow: cart review, details capture,
// summary, and order confirmation, in that order.
type Service interface {
	Stage(ctx context.Context) domain.Stage
	Selection(ctx context.Context) []uuid.UUID
	Select(ctx context.Context, itemIDs []uuid.UUID) error
	SelectAll(ctx context.Context) error
	BeginDetails(ctx context.Context) error
	SetContact(ctx context.Context, contact domain.Contact) error
	UseActiveAddress(ctx context.Context) error
	ApplyVoucher(ctx context.Context, code string) (*vouchersdomain.Voucher, error)
	RemoveVoucher(ctx context.Context) error
	ChooseDelivery(ctx context.Context, option ordersdomain.DeliveryOption) error
	ChoosePayment(ctx context.Context, method domain.PaymentMethod) error
	ReviewSummary(ctx context.Context) (*domain.Summary, error)
	Confirm(ctx context.Context) ([]*ordersdomain.Order, error)
	Cancel(ctx context.Context) error
}
