package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	addressesports "github.com/sneakpeak/storefront/internal/domains/addresses/ports"
	cartapp "github.com/sneakpeak/storefront/internal/domains/cart/application"
	cartdomain "github.com/sneakpeak/storefront/internal/domains/cart/domain"
	cartports "github.com/sneakpeak/storefront/internal/domains/cart/ports"
	"github.com/sneakpeak/storefront/internal/domains/checkout/domain"
	"github.com/sneakpeak/storefront/internal/domains/checkout/ports"
	ordersdomain "github.com/sneakpeak/storefront/internal/domains/orders/domain"
	ordersports "github.com/sneakpeak/storefront/internal/domains/orders/ports"
	vouchersdomain "github.com/sneakpeak/storefront/internal/domains/vouchers/domain"
	vouchersports "github.com/sneakpeak/storefront/internal/domains/vouchers/ports"
	"github.com/sneakpeak/storefront/internal/platform/async"
)

// Service implements the checkout workflow over the cart, voucher, and
// address services. A single workflow instance serves the session.
type Service struct {
	cart      cartports.Service
	vouchers  vouchersports.Service
	addresses addressesports.Service
	placer    ports.OrderPlacer
	notifier  ports.Notifier
	identity  ports.IdentityProvider
	runner    *async.Runner
	delay     time.Duration

	mu            sync.Mutex
	stage         domain.Stage
	selected      []uuid.UUID
	selectAllNext bool
	reviewed      []uuid.UUID
	contact       domain.Contact
	delivery      ordersdomain.DeliveryOption
	payment       domain.PaymentMethod
}

var _ ports.Service = (*Service)(nil)

// Option configures optional service collaborators.
type Option func(*Service)

// WithNotifier routes workflow status messages to the given notifier.
func WithNotifier(notifier ports.Notifier) Option {
	return func(s *Service) { s.notifier = notifier }
}

// WithIdentity resolves the shopper recorded on placed orders.
func WithIdentity(provider ports.IdentityProvider) Option {
	return func(s *Service) { s.identity = provider }
}

// WithEventBus resets the selection to the full cart whenever the cart
// contents change.
func WithEventBus(bus EventBus.Bus) Option {
	return func(s *Service) {
		_ = bus.Subscribe(cartapp.TopicCartChanged, s.onCartChanged)
	}
}

// WithAsyncRunner defers the confirmation notification by delay instead
// of emitting it inline.
func WithAsyncRunner(runner *async.Runner, delay time.Duration) Option {
	return func(s *Service) {
		s.runner = runner
		s.delay = delay
	}
}

// NewService builds a checkout workflow at the cart review stage with
// standard delivery and cash on delivery preselected.
func NewService(
	cart cartports.Service,
	vouchers vouchersports.Service,
	addresses addressesports.Service,
	placer ports.OrderPlacer,
	opts ...Option,
) *Service {
	s := &Service{
		cart:          cart,
		vouchers:      vouchers,
		addresses:     addresses,
		placer:        placer,
		notifier:      noopNotifier{},
		identity:      staticIdentity{},
		stage:         domain.StageCartReview,
		selectAllNext: true,
		delivery:      ordersdomain.DeliveryStandard,
		payment:       domain.PaymentCashOnDelivery,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stage returns the current workflow stage.
func (s *Service) Stage(ctx context.Context) domain.Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// Selection returns the cart item ids marked for checkout, defaulting
// to every item after a cart change.
func (s *Service) Selection(ctx context.Context) []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids, err := s.currentSelection(ctx)
	if err != nil {
		return nil
	}
	out := make([]uuid.UUID, len(ids))
	copy(out, ids)
	return out
}

// Select marks the given cart items for checkout. Every id must be an
// existing cart line.
func (s *Service) Select(ctx context.Context, itemIDs []uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != domain.StageCartReview {
		return s.fail(ctx, stageError(s.stage, domain.StageCartReview))
	}
	items, err := s.cart.Items(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	inCart := make(map[uuid.UUID]struct{}, len(items))
	for _, item := range items {
		inCart[item.ID] = struct{}{}
	}
	selected := make([]uuid.UUID, 0, len(itemIDs))
	seen := make(map[uuid.UUID]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		if _, ok := inCart[id]; !ok {
			return s.fail(ctx, fmt.Errorf("%w: %s", ErrUnknownItem, id))
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		selected = append(selected, id)
	}
	s.selected = selected
	s.selectAllNext = false
	return nil
}

// SelectAll marks every cart item for checkout.
func (s *Service) SelectAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != domain.StageCartReview {
		return s.fail(ctx, stageError(s.stage, domain.StageCartReview))
	}
	s.selectAllNext = true
	if _, err := s.currentSelection(ctx); err != nil {
		return s.fail(ctx, err)
	}
	return nil
}

// BeginDetails advances from cart review to the details stage. At
// least one item must be selected.
func (s *Service) BeginDetails(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != domain.StageCartReview {
		return s.fail(ctx, stageError(s.stage, domain.StageCartReview))
	}
	ids, err := s.currentSelection(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	if len(ids) == 0 {
		return s.fail(ctx, ErrEmptyCart)
	}
	s.stage = domain.StageDetails
	s.notifier.Success(ctx, "Checkout started. Fill in your delivery details.")
	return nil
}

// SetContact records the contact fields during the details stage.
// Fields are trimmed; completeness is enforced at summary time.
func (s *Service) SetContact(ctx context.Context, contact domain.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != domain.StageDetails {
		return s.fail(ctx, stageError(s.stage, domain.StageDetails))
	}
	s.contact = contact.Normalize()
	return nil
}

// UseActiveAddress copies the address book's active entry into the
// checkout contact.
func (s *Service) UseActiveAddress(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != domain.StageDetails {
		return s.fail(ctx, stageError(s.stage, domain.StageDetails))
	}
	address := s.addresses.Active(ctx)
	if address == nil {
		return s.fail(ctx, ErrNoActiveAddress)
	}
	s.contact = domain.Contact{
		FullName:    address.RecipientName,
		Phone:       address.PhoneNumber,
		AddressLine: address.Line(),
		City:        address.City,
	}
	return nil
}

// ApplyVoucher validates and applies a voucher code. A new voucher
// replaces the previous one.
func (s *Service) ApplyVoucher(ctx context.Context, code string) (*vouchersdomain.Voucher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != domain.StageDetails {
		return nil, s.fail(ctx, stageError(s.stage, domain.StageDetails))
	}
	voucher, err := s.vouchers.Apply(ctx, code)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	s.notifier.Success(ctx, fmt.Sprintf("Voucher %s applied: PHP %s off.", voucher.Code, voucher.Discount.StringFixed(2)))
	return voucher, nil
}

// RemoveVoucher clears the applied voucher.
func (s *Service) RemoveVoucher(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != domain.StageDetails {
		return s.fail(ctx, stageError(s.stage, domain.StageDetails))
	}
	s.vouchers.Remove(ctx)
	return nil
}

// ChooseDelivery sets the delivery option for the order.
func (s *Service) ChooseDelivery(ctx context.Context, option ordersdomain.DeliveryOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != domain.StageDetails {
		return s.fail(ctx, stageError(s.stage, domain.StageDetails))
	}
	if _, err := ordersdomain.ParseDeliveryOption(string(option)); err != nil {
		return s.fail(ctx, mapError(fmt.Errorf("%w: %w", ErrInvalidInput, err)))
	}
	s.delivery = option
	return nil
}

// ChoosePayment sets the payment method for the order.
func (s *Service) ChoosePayment(ctx context.Context, method domain.PaymentMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != domain.StageDetails {
		return s.fail(ctx, stageError(s.stage, domain.StageDetails))
	}
	parsed, err := domain.ParsePaymentMethod(string(method))
	if err != nil {
		return s.fail(ctx, mapError(err))
	}
	s.payment = parsed
	return nil
}

// ReviewSummary validates the contact details and computes the order
// preview, advancing to the summary stage. Calling it again at the
// summary stage recomputes without a transition.
func (s *Service) ReviewSummary(ctx context.Context) (*domain.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != domain.StageDetails && s.stage != domain.StageSummary {
		return nil, s.fail(ctx, stageError(s.stage, domain.StageDetails))
	}
	if err := s.contact.Validate(); err != nil {
		return nil, s.fail(ctx, fmt.Errorf("%w: %w", ErrMissingContact, err))
	}
	summary, err := s.computeSummary(ctx)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	s.stage = domain.StageSummary
	s.reviewed = append([]uuid.UUID(nil), summary.SelectedItems...)
	return summary, nil
}

// Confirm places one order per cart line of the reviewed summary,
// removes the converted lines from the cart, and resets the voucher.
// A cart change since the summary was reviewed rejects the call; the
// shopper reviews again before confirming. The confirmation message is
// deferred when an async runner is configured.
func (s *Service) Confirm(ctx context.Context) ([]*ordersdomain.Order, error) {
	s.mu.Lock()
	if s.stage != domain.StageSummary {
		err := s.fail(ctx, stageError(s.stage, domain.StageSummary))
		s.mu.Unlock()
		return nil, err
	}
	if s.reviewed == nil {
		err := s.fail(ctx, ErrStaleSummary)
		s.mu.Unlock()
		return nil, err
	}
	selected := make([]uuid.UUID, len(s.reviewed))
	copy(selected, s.reviewed)
	delivery := s.delivery
	shopper := s.identity.Current(ctx)
	s.mu.Unlock()

	items, err := s.cart.Items(ctx)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	byID := make(map[uuid.UUID]*cartdomain.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	lines := make([]ordersports.OrderLineInput, 0, len(selected))
	for _, id := range selected {
		item, ok := byID[id]
		if !ok {
			return nil, s.fail(ctx, fmt.Errorf("%w: %s", ErrUnknownItem, id))
		}
		lines = append(lines, ordersports.OrderLineInput{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
		})
	}

	orders, err := s.placer.PlaceOrders(ctx, ordersports.PlaceOrderInput{
		Lines:          lines,
		DeliveryOption: delivery,
		PlacedBy:       shopper.ID,
	})
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	// Converted lines leave the cart; unselected lines survive.
	for _, id := range selected {
		if err := s.cart.RemoveItem(ctx, id); err != nil {
			return nil, s.fail(ctx, err)
		}
	}
	s.vouchers.Remove(ctx)

	s.mu.Lock()
	s.stage = domain.StageConfirmed
	s.selectAllNext = true
	s.selected = nil
	s.reviewed = nil
	s.mu.Unlock()

	message := fmt.Sprintf("Order placed: %d item(s). Thank you for shopping!", len(orders))
	if s.runner != nil {
		s.runner.Schedule(s.delay, func() {
			s.notifier.Success(context.Background(), message)
		})
	} else {
		s.notifier.Success(ctx, message)
	}
	return orders, nil
}

// Cancel returns the workflow to cart review from any stage. The cart,
// address book, and applied voucher are untouched.
func (s *Service) Cancel(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stage = domain.StageCartReview
	s.reviewed = nil
	s.notifier.Success(ctx, "Checkout cancelled.")
	return nil
}

// onCartChanged marks the selection stale so the next read defaults to
// the full cart, and invalidates any reviewed summary so Confirm only
// ever commits what the shopper saw. No cart calls happen here; the
// handler may run from a cart mutation.
func (s *Service) onCartChanged() {
	s.mu.Lock()
	s.selectAllNext = true
	s.reviewed = nil
	s.mu.Unlock()
}

// currentSelection resolves the selected ids, reloading the full cart
// after a change. Callers hold s.mu.
func (s *Service) currentSelection(ctx context.Context) ([]uuid.UUID, error) {
	if !s.selectAllNext {
		return s.selected, nil
	}
	items, err := s.cart.Items(ctx)
	if err != nil {
		return nil, err
	}
	s.selected = make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		s.selected = append(s.selected, item.ID)
	}
	s.selectAllNext = false
	return s.selected, nil
}

// computeSummary prices the selected lines. Callers hold s.mu.
func (s *Service) computeSummary(ctx context.Context) (*domain.Summary, error) {
	ids, err := s.currentSelection(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, ErrEmptyCart
	}
	items, err := s.cart.Items(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*cartdomain.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	subtotal := decimal.Zero
	selected := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		item, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownItem, id)
		}
		subtotal = subtotal.Add(item.Subtotal())
		selected = append(selected, id)
	}

	discount := decimal.Zero
	voucherCode := ""
	if voucher := s.vouchers.Active(ctx); voucher != nil {
		discount = voucher.Discount
		voucherCode = voucher.Code
	}
	fee := s.delivery.Fee()
	total, discount := domain.ComputeTotal(subtotal, discount, fee)

	return &domain.Summary{
		SelectedItems:  selected,
		Subtotal:       subtotal,
		Discount:       discount,
		VoucherCode:    voucherCode,
		DeliveryOption: s.delivery,
		DeliveryFee:    fee,
		PaymentMethod:  s.payment,
		Total:          total,
	}, nil
}

// fail reports the error once through the notifier and maps it to the
// application taxonomy.
func (s *Service) fail(ctx context.Context, err error) error {
	mapped := mapError(err)
	s.notifier.Failure(ctx, mapped.Error())
	return mapped
}

type noopNotifier struct{}

func (noopNotifier) Success(context.Context, string) {}
func (noopNotifier) Failure(context.Context, string) {}

type staticIdentity struct{}

func (staticIdentity) Current(context.Context) ports.Identity {
	return ports.Identity{ID: "guest", Role: "shopper"}
}
