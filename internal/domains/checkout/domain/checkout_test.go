package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestComputeTotal_ClampsDiscount(t *testing.T) {
	total, discount := ComputeTotal(decimal.NewFromInt(100), decimal.NewFromInt(150), decimal.NewFromInt(50))
	require.True(t, decimal.NewFromInt(100).Equal(discount))
	require.True(t, decimal.NewFromInt(50).Equal(total))
}

func TestComputeTotal_SubtractsDiscountAddsFee(t *testing.T) {
	total, discount := ComputeTotal(decimal.NewFromInt(500), decimal.NewFromInt(50), decimal.NewFromInt(50))
	require.True(t, decimal.NewFromInt(50).Equal(discount))
	require.True(t, decimal.NewFromInt(500).Equal(total))
}

func TestParsePaymentMethod(t *testing.T) {
	method, err := ParsePaymentMethod("  Card ")
	require.NoError(t, err)
	require.Equal(t, PaymentCard, method)

	_, err = ParsePaymentMethod("check")
	require.ErrorIs(t, err, ErrInvalidPayment)
}

func TestContactValidate(t *testing.T) {
	contact := Contact{FullName: "Dana Cruz", Phone: "0917", AddressLine: "12 Mango St", City: "QC"}
	require.NoError(t, contact.Validate())

	contact.Phone = ""
	require.ErrorIs(t, contact.Validate(), ErrEmptyPhone)
}

func TestStageNext(t *testing.T) {
	require.Equal(t, StageDetails, StageCartReview.Next())
	require.Equal(t, StageSummary, StageDetails.Next())
	require.Equal(t, StageConfirmed, StageSummary.Next())
	require.Equal(t, StageConfirmed, StageConfirmed.Next())
	require.True(t, StageConfirmed.IsTerminal())
}
