package application

import (
	"errors"
	"fmt"

	"github.com/sneakpeak/storefront/internal/domains/cart/domain"
)

var (
	// ErrInvalidInput signals the request violated a cart invariant.
	ErrInvalidInput = errors.New("invalid cart input")
	// ErrInsufficientStock signals a quantity request that would drive
	// the reconciled stock below zero.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrUnknownProduct signals the referenced product is not in the
	// catalog.
	ErrUnknownProduct = errors.New("unknown product")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyProductID) ||
		errors.Is(err, domain.ErrEmptyName) ||
		errors.Is(err, domain.ErrNegativePrice) ||
		errors.Is(err, domain.ErrInvalidQuantity) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}

func stockError(productID string, requested, available int) error {
	return fmt.Errorf("%w: product %s has %d available, requested %d",
		ErrInsufficientStock, productID, available, requested)
}
