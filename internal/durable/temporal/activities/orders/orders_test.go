package orders

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/testsuite"

	ordersmemory "github.com/sneakpeak/storefront/internal/domains/orders/adapters/memory"
	ordersapp "github.com/sneakpeak/storefront/internal/domains/orders/application"
	ordersdomain "github.com/sneakpeak/storefront/internal/domains/orders/domain"
	ordersports "github.com/sneakpeak/storefront/internal/domains/orders/ports"
)

// The activity must persist through the injected service so the orders
// it places land in the store the hosting process serves reads from.
func TestPlaceOrders_WritesThroughInjectedService(t *testing.T) {
	repo := ordersmemory.NewRepository()
	activities := NewActivities(ordersapp.NewService(repo))

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestActivityEnvironment()
	env.RegisterActivity(activities.PlaceOrders)

	input := ordersports.PlaceOrderInput{
		Lines: []ordersports.OrderLineInput{
			{ProductID: "prod-001", Name: "Court Classic", Price: decimal.NewFromInt(250), Quantity: 1},
		},
		DeliveryOption: ordersdomain.DeliveryStandard,
		PlacedBy:       "guest",
	}
	val, err := env.ExecuteActivity(activities.PlaceOrders, input)
	require.NoError(t, err)

	var placed []*ordersdomain.Order
	require.NoError(t, val.Get(&placed))
	require.Len(t, placed, 1)

	stored, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, ordersdomain.StatusPending, stored[0].Status)
	require.Equal(t, placed[0].ID, stored[0].ID)
}

func TestPlaceOrders_UninitializedBundleRejected(t *testing.T) {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestActivityEnvironment()
	activities := &Activities{}
	env.RegisterActivity(activities.PlaceOrders)

	_, err := env.ExecuteActivity(activities.PlaceOrders, ordersports.PlaceOrderInput{})
	require.Error(t, err)
}
