package application

import (
	"errors"
	"fmt"

	"github.com/sneakpeak/storefront/internal/domains/checkout/domain"
	vouchersapp "github.com/sneakpeak/storefront/internal/domains/vouchers/application"
)

var (
	// ErrEmptyCart rejects advancing past cart review with nothing
	// selected.
	ErrEmptyCart = errors.New("no cart items selected for checkout")
	// ErrInvalidStage rejects an operation issued outside the stage
	// that allows it.
	ErrInvalidStage = errors.New("operation not allowed in current checkout stage")
	// ErrMissingContact rejects reviewing a summary before the contact
	// details are complete.
	ErrMissingContact = errors.New("checkout contact details are incomplete")
	// ErrUnknownItem rejects selecting a cart item id that is not in
	// the cart.
	ErrUnknownItem = errors.New("selected item is not in the cart")
	// ErrNoActiveAddress rejects copying an address when the address
	// book has none selected.
	ErrNoActiveAddress = errors.New("no active shipping address")
	// ErrStaleSummary rejects confirming a summary computed before the
	// cart changed. The shopper commits exactly what was reviewed.
	ErrStaleSummary = errors.New("cart changed since the summary was reviewed")
	// ErrInvalidInput wraps field-level validation failures.
	ErrInvalidInput = errors.New("invalid checkout input")
)

func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrEmptyCart),
		errors.Is(err, ErrInvalidStage),
		errors.Is(err, ErrMissingContact),
		errors.Is(err, ErrUnknownItem),
		errors.Is(err, ErrNoActiveAddress),
		errors.Is(err, ErrStaleSummary),
		errors.Is(err, ErrInvalidInput),
		errors.Is(err, vouchersapp.ErrUnknownVoucher),
		errors.Is(err, vouchersapp.ErrInvalidCode):
		return err
	case errors.Is(err, domain.ErrInvalidPayment),
		errors.Is(err, domain.ErrEmptyFullName),
		errors.Is(err, domain.ErrEmptyPhone),
		errors.Is(err, domain.ErrEmptyAddress),
		errors.Is(err, domain.ErrEmptyCity):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	default:
		return err
	}
}

func stageError(current, required domain.Stage) error {
	return fmt.Errorf("%w: at %q, requires %q", ErrInvalidStage, current, required)
}
