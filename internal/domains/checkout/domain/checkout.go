package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	ordersdomain "github.com/sneakpeak/storefront/internal/domains/orders/domain"
)

// Stage enumerates the checkout workflow states in strict order. The
// workflow never skips a stage going forward.
type Stage string

const (
	StageCartReview Stage = "cart_review"
	StageDetails    Stage = "details"
	StageSummary    Stage = "summary"
	StageConfirmed  Stage = "confirmed"
)

// Next returns the stage that follows s, or s itself when terminal.
func (s Stage) Next() Stage {
	switch s {
	case StageCartReview:
		return StageDetails
	case StageDetails:
		return StageSummary
	case StageSummary:
		return StageConfirmed
	default:
		return s
	}
}

// IsTerminal reports whether the workflow has committed.
func (s Stage) IsTerminal() bool {
	return s == StageConfirmed
}

// PaymentMethod is the closed set of accepted payment choices.
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentCard           PaymentMethod = "card"
	PaymentWallet         PaymentMethod = "wallet"
)

var ErrInvalidPayment = errors.New("payment method is invalid")

// ParsePaymentMethod validates a raw payment method string.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	method := PaymentMethod(strings.ToLower(strings.TrimSpace(raw)))
	switch method {
	case PaymentCashOnDelivery, PaymentCard, PaymentWallet:
		return method, nil
	default:
		return "", ErrInvalidPayment
	}
}

var (
	ErrEmptyFullName = errors.New("full name is required")
	ErrEmptyPhone    = errors.New("phone is required")
	ErrEmptyAddress  = errors.New("address is required")
	ErrEmptyCity     = errors.New("city is required")
)

// Contact holds the checkout contact fields captured during the
// details stage.
type Contact struct {
	FullName    string
	Phone       string
	AddressLine string
	City        string
}

// Normalize trims every field.
func (c Contact) Normalize() Contact {
	return Contact{
		FullName:    strings.TrimSpace(c.FullName),
		Phone:       strings.TrimSpace(c.Phone),
		AddressLine: strings.TrimSpace(c.AddressLine),
		City:        strings.TrimSpace(c.City),
	}
}

// Validate requires every contact field before the summary stage.
func (c Contact) Validate() error {
	if c.FullName == "" {
		return ErrEmptyFullName
	}
	if c.Phone == "" {
		return ErrEmptyPhone
	}
	if c.AddressLine == "" {
		return ErrEmptyAddress
	}
	if c.City == "" {
		return ErrEmptyCity
	}
	return nil
}

// Summary is the computed order preview shown at confirmation:
// subtotal over the selected items, minus the flat voucher discount,
// plus the delivery fee.
type Summary struct {
	SelectedItems  []uuid.UUID
	Subtotal       decimal.Decimal
	Discount       decimal.Decimal
	VoucherCode    string
	DeliveryOption ordersdomain.DeliveryOption
	DeliveryFee    decimal.Decimal
	PaymentMethod  PaymentMethod
	Total          decimal.Decimal
}

// ComputeTotal derives the payable amount. The discount never exceeds
// the subtotal, so a voucher cannot push the item total negative.
func ComputeTotal(subtotal, discount, fee decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}
	return subtotal.Sub(discount).Add(fee), discount
}
