package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status enumerates the order lifecycle. Pending is the only
// non-terminal state; the supplier-side fulfillment actor advances it.
type Status string

const (
	StatusPending   Status = "pending"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// ParseStatus validates a raw status string.
func ParseStatus(raw string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(raw)))
	switch status {
	case StatusPending, StatusDelivered, StatusCancelled:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

// IsTerminal reports whether the status admits no further transition.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// DeliveryOption selects the shipping tier and its flat fee.
type DeliveryOption string

const (
	DeliveryStandard DeliveryOption = "standard"
	DeliveryExpress  DeliveryOption = "express"
)

// ParseDeliveryOption validates a raw delivery option string.
func ParseDeliveryOption(raw string) (DeliveryOption, error) {
	option := DeliveryOption(strings.ToLower(strings.TrimSpace(raw)))
	switch option {
	case DeliveryStandard, DeliveryExpress:
		return option, nil
	default:
		return "", ErrInvalidDelivery
	}
}

// Fee returns the flat delivery charge for the option.
func (d DeliveryOption) Fee() decimal.Decimal {
	if d == DeliveryExpress {
		return decimal.NewFromInt(100)
	}
	return decimal.NewFromInt(50)
}

var (
	ErrEmptyProductID   = errors.New("order product id is required")
	ErrEmptyName        = errors.New("order product name is required")
	ErrInvalidQuantity  = errors.New("order quantity must be greater than zero")
	ErrNegativePrice    = errors.New("order price must not be negative")
	ErrInvalidStatus    = errors.New("order status is invalid")
	ErrInvalidDelivery  = errors.New("delivery option is invalid")
	ErrTerminalStatus   = errors.New("order status is terminal")
	ErrSameStatus       = errors.New("order already has the requested status")
)

// Order is one confirmed purchase line. Orders are created atomically
// from selected cart items at checkout confirmation.
type Order struct {
	ID             uuid.UUID
	ProductID      string
	Name           string
	Price          decimal.Decimal
	Quantity       int
	Image          string
	PlacedAt       time.Time
	Status         Status
	DeliveryOption DeliveryOption
	PlacedBy       string
}

// NewOrder validates and constructs a pending order.
func NewOrder(productID, name string, price decimal.Decimal, quantity int, image string, delivery DeliveryOption, placedBy string, placedAt time.Time) (*Order, error) {
	order := &Order{
		ID:             uuid.New(),
		ProductID:      strings.TrimSpace(productID),
		Name:           strings.TrimSpace(name),
		Price:          price,
		Quantity:       quantity,
		Image:          image,
		PlacedAt:       placedAt,
		Status:         StatusPending,
		DeliveryOption: delivery,
		PlacedBy:       placedBy,
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// Validate enforces invariants on the aggregate.
func (o *Order) Validate() error {
	if o.ProductID == "" {
		return ErrEmptyProductID
	}
	if o.Name == "" {
		return ErrEmptyName
	}
	if o.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if o.Price.IsNegative() {
		return ErrNegativePrice
	}
	if _, err := ParseStatus(string(o.Status)); err != nil {
		return err
	}
	if _, err := ParseDeliveryOption(string(o.DeliveryOption)); err != nil {
		return err
	}
	return nil
}

// Transition advances the lifecycle. Only Pending orders move, and only
// to a terminal status.
func (o *Order) Transition(next Status) error {
	if _, err := ParseStatus(string(next)); err != nil {
		return err
	}
	if next == o.Status {
		return ErrSameStatus
	}
	if o.Status.IsTerminal() {
		return ErrTerminalStatus
	}
	if !next.IsTerminal() {
		return ErrInvalidStatus
	}
	o.Status = next
	return nil
}

// Total is price times quantity for the line.
func (o *Order) Total() decimal.Decimal {
	return o.Price.Mul(decimal.NewFromInt(int64(o.Quantity)))
}
