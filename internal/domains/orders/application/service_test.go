package application

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/sneakpeak/storefront/internal/domains/orders/domain"
	"github.com/sneakpeak/storefront/internal/domains/orders/ports"
)

type fakeOrderRepo struct {
	orders map[uuid.UUID]*domain.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[uuid.UUID]*domain.Order{}}
}

func (f *fakeOrderRepo) SaveAll(_ context.Context, orders []*domain.Order) ([]*domain.Order, error) {
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
	}
	var saved []*domain.Order
	for _, o := range orders {
		copy := *o
		f.orders[copy.ID] = &copy
		out := copy
		saved = append(saved, &out)
	}
	return saved, nil
}

func (f *fakeOrderRepo) Save(_ context.Context, order *domain.Order) (*domain.Order, error) {
	copy := *order
	f.orders[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	if o, ok := f.orders[id]; ok {
		copy := *o
		return &copy, nil
	}
	return nil, ports.ErrNotFound
}

func (f *fakeOrderRepo) List(_ context.Context) ([]*domain.Order, error) {
	var list []*domain.Order
	for _, o := range f.orders {
		copy := *o
		list = append(list, &copy)
	}
	return list, nil
}

func placeInput(lines ...ports.OrderLineInput) ports.PlaceOrderInput {
	return ports.PlaceOrderInput{
		Lines:          lines,
		DeliveryOption: domain.DeliveryStandard,
		PlacedBy:       "user-1",
	}
}

func line(productID string, qty int) ports.OrderLineInput {
	return ports.OrderLineInput{
		ProductID: productID,
		Name:      "Court Classic",
		Price:     decimal.NewFromInt(250),
		Quantity:  qty,
	}
}

func TestPlaceOrder_CreatesPendingOrders(t *testing.T) {
	placedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeOrderRepo()
	svc := NewService(repo, WithClock(func() time.Time { return placedAt }))

	orders, err := svc.PlaceOrder(context.Background(), placeInput(line("p1", 2), line("p2", 1)))
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.NotEqual(t, orders[0].ID, orders[1].ID)
	for _, order := range orders {
		require.Equal(t, domain.StatusPending, order.Status)
		require.Equal(t, placedAt, order.PlacedAt)
		require.Equal(t, "user-1", order.PlacedBy)
	}
}

func TestPlaceOrder_AtomicOnInvalidLine(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewService(repo)

	_, err := svc.PlaceOrder(context.Background(), placeInput(line("p1", 2), line("p2", 0)))
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Empty(t, repo.orders)
}

func TestPlaceOrder_NoLines(t *testing.T) {
	svc := NewService(newFakeOrderRepo())

	_, err := svc.PlaceOrder(context.Background(), placeInput())
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_PendingToDelivered(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewService(repo)

	orders, err := svc.PlaceOrder(context.Background(), placeInput(line("p1", 1)))
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), orders[0].ID, domain.StatusDelivered)
	require.NoError(t, err)
	require.Equal(t, domain.StatusDelivered, updated.Status)
}

func TestUpdateStatus_TerminalRejected(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewService(repo)
	ctx := context.Background()

	orders, err := svc.PlaceOrder(ctx, placeInput(line("p1", 1)))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, orders[0].ID, domain.StatusCancelled)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, orders[0].ID, domain.StatusDelivered)
	require.ErrorIs(t, err, ErrTerminalStatus)

	current, err := svc.GetByID(ctx, orders[0].ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCancelled, current.Status)
}

func TestUpdateStatus_PendingTargetRejected(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewService(repo)
	ctx := context.Background()

	orders, err := svc.PlaceOrder(ctx, placeInput(line("p1", 1)))
	require.NoError(t, err)

	// Pending -> Pending is not a transition the lifecycle admits.
	_, err = svc.UpdateStatus(ctx, orders[0].ID, domain.StatusPending)
	require.ErrorIs(t, err, ErrInvalidInput)
}
