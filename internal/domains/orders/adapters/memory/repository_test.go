package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/sneakpeak/storefront/internal/domains/orders/domain"
)

func pendingOrder(t *testing.T, productID string, qty int) *domain.Order {
	t.Helper()
	order, err := domain.NewOrder(productID, "Court Classic", decimal.NewFromInt(250), qty, "", domain.DeliveryStandard, "user-1", time.Now())
	require.NoError(t, err)
	return order
}

func TestSaveAll_AllOrNothing(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	good := pendingOrder(t, "p1", 1)
	bad := pendingOrder(t, "p2", 1)
	bad.Quantity = 0

	_, err := repo.SaveAll(ctx, []*domain.Order{good, bad})
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestSaveAll_InsertsEveryOrder(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	saved, err := repo.SaveAll(ctx, []*domain.Order{pendingOrder(t, "p1", 1), pendingOrder(t, "p2", 3)})
	require.NoError(t, err)
	require.Len(t, saved, 2)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
}
