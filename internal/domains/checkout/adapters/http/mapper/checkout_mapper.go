package mapper

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sneakpeak/storefront/internal/domains/checkout/domain"
)

// SelectionRequest captures the cart item ids marked for checkout.
type SelectionRequest struct {
	ItemIDs []string `json:"itemIds"`
	All     bool     `json:"all,omitempty"`
}

// ParseItemIDs validates the raw selection ids.
func (r SelectionRequest) ParseItemIDs() ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(r.ItemIDs))
	for _, raw := range r.ItemIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ContactRequest captures the checkout contact form.
type ContactRequest struct {
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	UseActive   bool   `json:"useActiveAddress,omitempty"`
}

// ToContact maps the request to the domain contact.
func ToContact(req ContactRequest) domain.Contact {
	return domain.Contact{
		FullName:    req.FullName,
		Phone:       req.Phone,
		AddressLine: req.AddressLine,
		City:        req.City,
	}
}

// VoucherRequest captures a voucher code submission.
type VoucherRequest struct {
	Code string `json:"code" binding:"required"`
}

// DeliveryRequest captures the delivery option choice.
type DeliveryRequest struct {
	Option string `json:"option" binding:"required"`
}

// PaymentRequest captures the payment method choice.
type PaymentRequest struct {
	Method string `json:"method" binding:"required"`
}

// State is the HTTP representation of the workflow position.
type State struct {
	Stage     string   `json:"stage"`
	Selection []string `json:"selection"`
}

// Summary is the HTTP representation of the order preview.
type Summary struct {
	SelectedItems  []string        `json:"selectedItems"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Discount       decimal.Decimal `json:"discount"`
	VoucherCode    string          `json:"voucherCode,omitempty"`
	DeliveryOption string          `json:"deliveryOption"`
	DeliveryFee    decimal.Decimal `json:"deliveryFee"`
	PaymentMethod  string          `json:"paymentMethod"`
	Total          decimal.Decimal `json:"total"`
}

// FromSummary maps the computed summary to its HTTP shape.
func FromSummary(summary *domain.Summary) Summary {
	selected := make([]string, 0, len(summary.SelectedItems))
	for _, id := range summary.SelectedItems {
		selected = append(selected, id.String())
	}
	return Summary{
		SelectedItems:  selected,
		Subtotal:       summary.Subtotal,
		Discount:       summary.Discount,
		VoucherCode:    summary.VoucherCode,
		DeliveryOption: string(summary.DeliveryOption),
		DeliveryFee:    summary.DeliveryFee,
		PaymentMethod:  string(summary.PaymentMethod),
		Total:          summary.Total,
	}
}

// FromState maps the stage and selection to the HTTP state shape.
func FromState(stage domain.Stage, selection []uuid.UUID) State {
	ids := make([]string, 0, len(selection))
	for _, id := range selection {
		ids = append(ids, id.String())
	}
	return State{Stage: string(stage), Selection: ids}
}
