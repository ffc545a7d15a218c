package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sneakpeak/storefront/internal/domains/addresses/domain"
	"github.com/sneakpeak/storefront/internal/domains/addresses/ports"
)

type fakeAddressRepo struct {
	addresses []*domain.ShippingAddress
}

func (f *fakeAddressRepo) Append(_ context.Context, address *domain.ShippingAddress) (int, error) {
	copy := *address
	f.addresses = append(f.addresses, &copy)
	return len(f.addresses) - 1, nil
}

func (f *fakeAddressRepo) Get(_ context.Context, index int) (*domain.ShippingAddress, error) {
	if index < 0 || index >= len(f.addresses) {
		return nil, ports.ErrNotFound
	}
	copy := *f.addresses[index]
	return &copy, nil
}

func (f *fakeAddressRepo) List(_ context.Context) ([]*domain.ShippingAddress, error) {
	var list []*domain.ShippingAddress
	for _, a := range f.addresses {
		copy := *a
		list = append(list, &copy)
	}
	return list, nil
}

func validInput() ports.SaveAddressInput {
	return ports.SaveAddressInput{
		RecipientName: "Ana Reyes",
		PhoneNumber:   "09171234567",
		Region:        "NCR",
		City:          "Quezon City",
		District:      "Diliman",
		Street:        "12 Maginhawa St",
		Category:      "home",
	}
}

func TestSave_ActivatesAddress(t *testing.T) {
	svc := NewService(&fakeAddressRepo{})
	ctx := context.Background()

	saved, err := svc.Save(ctx, validInput())
	require.NoError(t, err)
	require.Equal(t, domain.CategoryHome, saved.Category)

	active := svc.Active(ctx)
	require.NotNil(t, active)
	require.Equal(t, saved.ID, active.ID)
}

func TestSave_MissingRequiredField(t *testing.T) {
	svc := NewService(&fakeAddressRepo{})
	ctx := context.Background()

	input := validInput()
	input.PhoneNumber = "  "
	_, err := svc.Save(ctx, input)
	require.ErrorIs(t, err, ErrInvalidAddress)
	require.ErrorIs(t, err, domain.ErrEmptyPhone)

	// Nothing stored, nothing activated.
	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
	require.Nil(t, svc.Active(ctx))
}

func TestSelect_SwitchesActive(t *testing.T) {
	svc := NewService(&fakeAddressRepo{})
	ctx := context.Background()

	first, err := svc.Save(ctx, validInput())
	require.NoError(t, err)

	second := validInput()
	second.RecipientName = "Ben Reyes"
	second.Category = "office"
	saved, err := svc.Save(ctx, second)
	require.NoError(t, err)
	require.Equal(t, saved.ID, svc.Active(ctx).ID)

	selected, err := svc.Select(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, first.ID, selected.ID)
	require.Equal(t, first.ID, svc.Active(ctx).ID)
}

func TestSelect_OutOfRange(t *testing.T) {
	svc := NewService(&fakeAddressRepo{})

	_, err := svc.Select(context.Background(), 3)
	require.ErrorIs(t, err, ErrInvalidAddress)
}
