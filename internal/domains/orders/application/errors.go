package application

import (
	"errors"
	"fmt"

	"github.com/sneakpeak/storefront/internal/domains/orders/domain"
)

var (
	// ErrInvalidInput signals the request violated an order invariant.
	ErrInvalidInput = errors.New("invalid order input")
	// ErrTerminalStatus signals a transition attempted from Delivered
	// or Cancelled.
	ErrTerminalStatus = errors.New("order is in a terminal status")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrTerminalStatus):
		return fmt.Errorf("%w: %w", ErrTerminalStatus, err)
	case errors.Is(err, domain.ErrEmptyProductID),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrNegativePrice),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidDelivery),
		errors.Is(err, domain.ErrSameStatus):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
