package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	addressesmemory "github.com/sneakpeak/storefront/internal/domains/addresses/adapters/memory"
	addressesapp "github.com/sneakpeak/storefront/internal/domains/addresses/application"
	addressesports "github.com/sneakpeak/storefront/internal/domains/addresses/ports"
	cartmemory "github.com/sneakpeak/storefront/internal/domains/cart/adapters/memory"
	cartapp "github.com/sneakpeak/storefront/internal/domains/cart/application"
	cartports "github.com/sneakpeak/storefront/internal/domains/cart/ports"
	catalogmemory "github.com/sneakpeak/storefront/internal/domains/catalog/adapters/memory"
	catalogdomain "github.com/sneakpeak/storefront/internal/domains/catalog/domain"
	"github.com/sneakpeak/storefront/internal/domains/checkout/adapters/workflows"
	"github.com/sneakpeak/storefront/internal/domains/checkout/domain"
	ordersmemory "github.com/sneakpeak/storefront/internal/domains/orders/adapters/memory"
	ordersapp "github.com/sneakpeak/storefront/internal/domains/orders/application"
	ordersdomain "github.com/sneakpeak/storefront/internal/domains/orders/domain"
	ordersports "github.com/sneakpeak/storefront/internal/domains/orders/ports"
	vouchersmemory "github.com/sneakpeak/storefront/internal/domains/vouchers/adapters/memory"
	vouchersapp "github.com/sneakpeak/storefront/internal/domains/vouchers/application"
	"github.com/sneakpeak/storefront/internal/platform/async"
)

type fixture struct {
	cart      cartports.Service
	addresses addressesports.Service
	checkout  *Service
	orders    *ordersmemory.Repository
	notifier  *recordingNotifier
	bus       EventBus.Bus
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()

	catalog := catalogmemory.NewRepository()
	require.NoError(t, catalog.Load(
		&catalogdomain.Product{ID: "prod-001", Name: "Court Classic", Price: decimal.NewFromInt(250), Stock: 10, Category: catalogdomain.CategorySneakers},
		&catalogdomain.Product{ID: "prod-002", Name: "Trail Runner", Price: decimal.NewFromInt(100), Stock: 10, Category: catalogdomain.CategorySneakers},
	))

	bus := EventBus.New()
	cartSvc := cartapp.NewService(cartmemory.NewRepository(), catalog, cartapp.WithEventBus(bus))
	voucherSvc := vouchersapp.NewService(vouchersmemory.NewRegistry())
	addressSvc := addressesapp.NewService(addressesmemory.NewRepository())

	ordersRepo := ordersmemory.NewRepository()
	placer := workflows.NewInlineOrderPlacer(ordersapp.NewService(ordersRepo))

	notifier := &recordingNotifier{}
	base := []Option{WithNotifier(notifier), WithEventBus(bus)}
	checkout := NewService(cartSvc, voucherSvc, addressSvc, placer, append(base, opts...)...)

	return &fixture{
		cart:      cartSvc,
		addresses: addressSvc,
		checkout:  checkout,
		orders:    ordersRepo,
		notifier:  notifier,
		bus:       bus,
	}
}

func (f *fixture) addItem(t *testing.T, productID string, price int64, quantity int) {
	t.Helper()
	_, err := f.cart.AddItem(context.Background(), cartports.AddItemInput{
		ProductID: productID,
		Name:      productID,
		Price:     decimal.NewFromInt(price),
		Quantity:  quantity,
	})
	require.NoError(t, err)
}

func (f *fixture) reachDetails(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.checkout.BeginDetails(ctx))
	require.NoError(t, f.checkout.SetContact(ctx, domain.Contact{
		FullName:    "Dana Cruz",
		Phone:       "0917-555-0101",
		AddressLine: "12 Mango St",
		City:        "Quezon City",
	}))
}

func TestSummary_VoucherAndStandardFee(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addItem(t, "prod-001", 250, 2)
	f.reachDetails(t)

	_, err := f.checkout.ApplyVoucher(ctx, "save50")
	require.NoError(t, err)

	summary, err := f.checkout.ReviewSummary(ctx)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(500).Equal(summary.Subtotal))
	require.True(t, decimal.NewFromInt(50).Equal(summary.Discount))
	require.True(t, decimal.NewFromInt(50).Equal(summary.DeliveryFee))
	require.True(t, decimal.NewFromInt(500).Equal(summary.Total))
	require.Equal(t, domain.StageSummary, f.checkout.Stage(ctx))
}

func TestSummary_DiscountClampedAtSubtotal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addItem(t, "prod-002", 100, 1)

	f.reachDetails(t)
	_, err := f.checkout.ApplyVoucher(ctx, "SAVE100")
	require.NoError(t, err)
	require.NoError(t, f.checkout.ChooseDelivery(ctx, ordersdomain.DeliveryExpress))

	summary, err := f.checkout.ReviewSummary(ctx)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(100).Equal(summary.Discount))
	// Item total floors at zero, only the express fee remains.
	require.True(t, decimal.NewFromInt(100).Equal(summary.Total))
}

func TestBeginDetails_EmptyCartRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.checkout.BeginDetails(ctx)
	require.ErrorIs(t, err, ErrEmptyCart)
	require.Equal(t, domain.StageCartReview, f.checkout.Stage(ctx))
	require.NotEmpty(t, f.notifier.failures())
}

func TestBeginDetails_EmptySelectionRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addItem(t, "prod-001", 250, 1)
	require.NoError(t, f.checkout.Select(ctx, nil))

	err := f.checkout.BeginDetails(ctx)
	require.ErrorIs(t, err, ErrEmptyCart)
	require.Equal(t, domain.StageCartReview, f.checkout.Stage(ctx))
}

func TestSelection_ResetsWhenCartChanges(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addItem(t, "prod-001", 250, 1)
	require.NoError(t, f.checkout.Select(ctx, nil))
	require.Empty(t, f.checkout.Selection(ctx))

	// Any cart change brings every item back into the selection.
	f.addItem(t, "prod-002", 100, 1)
	items, err := f.cart.Items(ctx)
	require.NoError(t, err)
	require.Len(t, f.checkout.Selection(ctx), len(items))
}

func TestReviewSummary_MissingContactRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addItem(t, "prod-001", 250, 1)
	require.NoError(t, f.checkout.BeginDetails(ctx))
	require.NoError(t, f.checkout.SetContact(ctx, domain.Contact{FullName: "Dana Cruz", City: "Quezon City"}))

	_, err := f.checkout.ReviewSummary(ctx)
	require.ErrorIs(t, err, ErrMissingContact)
	require.Equal(t, domain.StageDetails, f.checkout.Stage(ctx))
}

func TestUseActiveAddress_CopiesContact(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.addresses.Save(ctx, addressesports.SaveAddressInput{
		RecipientName: "Dana Cruz",
		PhoneNumber:   "0917-555-0101",
		City:          "Quezon City",
		Street:        "12 Mango St",
	})
	require.NoError(t, err)

	f.addItem(t, "prod-001", 250, 1)
	require.NoError(t, f.checkout.BeginDetails(ctx))
	require.NoError(t, f.checkout.UseActiveAddress(ctx))

	summary, err := f.checkout.ReviewSummary(ctx)
	require.NoError(t, err)
	require.NotNil(t, summary)
}

func TestConfirm_PlacesOrdersAndEmptiesSelection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addItem(t, "prod-001", 250, 2)
	f.addItem(t, "prod-002", 100, 1)
	f.reachDetails(t)

	_, err := f.checkout.ReviewSummary(ctx)
	require.NoError(t, err)

	orders, err := f.checkout.Confirm(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, order := range orders {
		require.Equal(t, ordersdomain.StatusPending, order.Status)
	}

	stored, err := f.orders.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 2)

	items, err := f.cart.Items(ctx)
	require.NoError(t, err)
	require.Empty(t, items)
	require.Equal(t, domain.StageConfirmed, f.checkout.Stage(ctx))
}

func TestConfirm_OutOfStageRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addItem(t, "prod-001", 250, 1)

	_, err := f.checkout.Confirm(ctx)
	require.ErrorIs(t, err, ErrInvalidStage)

	stored, err := f.orders.List(ctx)
	require.NoError(t, err)
	require.Empty(t, stored)
}

func TestConfirm_PlacerFailureKeepsCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addItem(t, "prod-001", 250, 1)
	f.reachDetails(t)
	_, err := f.checkout.ReviewSummary(ctx)
	require.NoError(t, err)

	f.checkout.placer = failingPlacer{}
	_, err = f.checkout.Confirm(ctx)
	require.Error(t, err)

	items, err := f.cart.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, domain.StageSummary, f.checkout.Stage(ctx))
}

func TestConfirm_RejectedWhenCartChangedAfterSummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addItem(t, "prod-002", 100, 1)
	f.reachDetails(t)
	_, err := f.checkout.ReviewSummary(ctx)
	require.NoError(t, err)

	// The cart grows behind the reviewed summary.
	f.addItem(t, "prod-001", 250, 1)

	_, err = f.checkout.Confirm(ctx)
	require.ErrorIs(t, err, ErrStaleSummary)
	require.Equal(t, domain.StageSummary, f.checkout.Stage(ctx))

	stored, err := f.orders.List(ctx)
	require.NoError(t, err)
	require.Empty(t, stored)

	// A fresh review covers the new line and confirms cleanly.
	summary, err := f.checkout.ReviewSummary(ctx)
	require.NoError(t, err)
	require.Len(t, summary.SelectedItems, 2)

	orders, err := f.checkout.Confirm(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
}

func TestConfirm_DeferredNotification(t *testing.T) {
	runner := async.NewRunner()
	defer runner.Shutdown()

	f := newFixture(t, WithAsyncRunner(runner, 10*time.Millisecond))
	ctx := context.Background()

	f.addItem(t, "prod-001", 250, 1)
	f.reachDetails(t)
	_, err := f.checkout.ReviewSummary(ctx)
	require.NoError(t, err)

	_, err = f.checkout.Confirm(ctx)
	require.NoError(t, err)
	require.NotContains(t, f.notifier.successes(), confirmMessage(1))

	require.Eventually(t, func() bool {
		for _, msg := range f.notifier.successes() {
			if msg == confirmMessage(1) {
				return true
			}
		}
		return false
	}, time.Second, 5*time.Millisecond)
}

func TestCancel_ReturnsToCartReviewKeepingVoucher(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addItem(t, "prod-001", 250, 2)
	f.reachDetails(t)
	_, err := f.checkout.ApplyVoucher(ctx, "SAVE50")
	require.NoError(t, err)

	require.NoError(t, f.checkout.Cancel(ctx))
	require.Equal(t, domain.StageCartReview, f.checkout.Stage(ctx))

	// Voucher survives cancellation and applies to the next attempt.
	f.reachDetails(t)
	summary, err := f.checkout.ReviewSummary(ctx)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(50).Equal(summary.Discount))
}

func TestDetailsOps_RequireDetailsStage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addItem(t, "prod-001", 250, 1)

	require.ErrorIs(t, f.checkout.SetContact(ctx, domain.Contact{}), ErrInvalidStage)
	_, err := f.checkout.ApplyVoucher(ctx, "SAVE50")
	require.ErrorIs(t, err, ErrInvalidStage)
	require.ErrorIs(t, f.checkout.ChooseDelivery(ctx, ordersdomain.DeliveryExpress), ErrInvalidStage)
	require.ErrorIs(t, f.checkout.ChoosePayment(ctx, domain.PaymentCard), ErrInvalidStage)
}

func confirmMessage(orders int) string {
	return fmt.Sprintf("Order placed: %d item(s). Thank you for shopping!", orders)
}

type recordingNotifier struct {
	mu      sync.Mutex
	success []string
	failure []string
}

func (n *recordingNotifier) Success(_ context.Context, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.success = append(n.success, message)
}

func (n *recordingNotifier) Failure(_ context.Context, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failure = append(n.failure, message)
}

func (n *recordingNotifier) successes() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.success))
	copy(out, n.success)
	return out
}

func (n *recordingNotifier) failures() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.failure))
	copy(out, n.failure)
	return out
}

type failingPlacer struct{}

func (failingPlacer) PlaceOrders(context.Context, ordersports.PlaceOrderInput) ([]*ordersdomain.Order, error) {
	return nil, errors.New("placement backend unavailable")
}
