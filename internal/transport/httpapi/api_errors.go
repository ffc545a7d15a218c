package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	addressesapp "github.com/sneakpeak/storefront/internal/domains/addresses/application"
	addressesports "github.com/sneakpeak/storefront/internal/domains/addresses/ports"
	cartapp "github.com/sneakpeak/storefront/internal/domains/cart/application"
	cartports "github.com/sneakpeak/storefront/internal/domains/cart/ports"
	catalogports "github.com/sneakpeak/storefront/internal/domains/catalog/ports"
	checkoutapp "github.com/sneakpeak/storefront/internal/domains/checkout/application"
	ordersapp "github.com/sneakpeak/storefront/internal/domains/orders/application"
	ordersdomain "github.com/sneakpeak/storefront/internal/domains/orders/domain"
	ordersports "github.com/sneakpeak/storefront/internal/domains/orders/ports"
	vouchersapp "github.com/sneakpeak/storefront/internal/domains/vouchers/application"
	apierrors "github.com/sneakpeak/storefront/internal/shared/errors"
)

// responder translates the application error taxonomy into RFC 7807
// responses.
var responder = apierrors.NewChainedResponder("", mapStorefrontError)

func mapStorefrontError(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, cartapp.ErrInsufficientStock):
		return apierrors.ErrInsufficientStock.WithDetail(err.Error()), true
	case errors.Is(err, vouchersapp.ErrUnknownVoucher):
		return apierrors.ErrUnknownVoucher.WithDetail(err.Error()), true
	case errors.Is(err, checkoutapp.ErrEmptyCart):
		return apierrors.ErrEmptyCart.WithDetail(err.Error()), true
	case errors.Is(err, ordersapp.ErrTerminalStatus),
		errors.Is(err, ordersdomain.ErrSameStatus),
		errors.Is(err, checkoutapp.ErrInvalidStage),
		errors.Is(err, checkoutapp.ErrStaleSummary):
		return apierrors.ErrConflict.WithDetail(err.Error()), true
	case errors.Is(err, cartapp.ErrInvalidInput),
		errors.Is(err, ordersapp.ErrInvalidInput),
		errors.Is(err, checkoutapp.ErrInvalidInput),
		errors.Is(err, checkoutapp.ErrMissingContact),
		errors.Is(err, checkoutapp.ErrNoActiveAddress),
		errors.Is(err, addressesapp.ErrInvalidAddress),
		errors.Is(err, vouchersapp.ErrInvalidCode):
		return apierrors.ErrValidation.WithDetail(err.Error()), true
	case errors.Is(err, cartapp.ErrUnknownProduct),
		errors.Is(err, checkoutapp.ErrUnknownItem),
		errors.Is(err, catalogports.ErrNotFound),
		errors.Is(err, cartports.ErrNotFound),
		errors.Is(err, ordersports.ErrNotFound),
		errors.Is(err, addressesports.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	default:
		return apierrors.ProblemDetail{}, false
	}
}

func respondServiceError(c *gin.Context, err error) {
	responder.RespondError(c, err)
}

func respondBadRequest(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusBadRequest)
		return
	}
	apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
}
