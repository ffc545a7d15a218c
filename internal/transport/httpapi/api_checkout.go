package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	checkouthttpmapper "github.com/sneakpeak/storefront/internal/domains/checkout/adapters/http/mapper"
	checkoutdomain "github.com/sneakpeak/storefront/internal/domains/checkout/domain"
	checkoutports "github.com/sneakpeak/storefront/internal/domains/checkout/ports"
	orderhttpmapper "github.com/sneakpeak/storefront/internal/domains/orders/adapters/http/mapper"
	ordersdomain "github.com/sneakpeak/storefront/internal/domains/orders/domain"
)

// CheckoutAPI wires HTTP transport with the checkout workflow.
type CheckoutAPI struct {
	service checkoutports.Service
}

// NewCheckoutAPI creates a CheckoutAPI backed by the provided service.
func NewCheckoutAPI(service checkoutports.Service) CheckoutAPI {
	return CheckoutAPI{service: service}
}

// Get /v1/checkout
// Current workflow stage and item selection
func (api *CheckoutAPI) GetState(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, checkouthttpmapper.FromState(api.service.Stage(ctx), api.service.Selection(ctx)))
}

// Post /v1/checkout/selection
// Mark cart items for checkout; {"all": true} selects everything
func (api *CheckoutAPI) SetSelection(c *gin.Context) {
	var payload checkouthttpmapper.SelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	ctx := c.Request.Context()
	if payload.All {
		if err := api.service.SelectAll(ctx); err != nil {
			respondServiceError(c, err)
			return
		}
	} else {
		ids, err := payload.ParseItemIDs()
		if err != nil {
			respondBadRequest(c, err)
			return
		}
		if err := api.service.Select(ctx, ids); err != nil {
			respondServiceError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, checkouthttpmapper.FromState(api.service.Stage(ctx), api.service.Selection(ctx)))
}

// Post /v1/checkout/details
// Advance from cart review into the details stage
func (api *CheckoutAPI) BeginDetails(c *gin.Context) {
	if err := api.service.BeginDetails(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Post /v1/checkout/contact
// Record the contact details; {"useActiveAddress": true} copies the
// address book's active entry
func (api *CheckoutAPI) SetContact(c *gin.Context) {
	var payload checkouthttpmapper.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	ctx := c.Request.Context()
	if payload.UseActive {
		if err := api.service.UseActiveAddress(ctx); err != nil {
			respondServiceError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
		return
	}
	if err := api.service.SetContact(ctx, checkouthttpmapper.ToContact(payload)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Post /v1/checkout/voucher
// Apply a voucher code
func (api *CheckoutAPI) ApplyVoucher(c *gin.Context) {
	var payload checkouthttpmapper.VoucherRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	voucher, err := api.service.ApplyVoucher(c.Request.Context(), payload.Code)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": voucher.Code, "discount": voucher.Discount})
}

// Delete /v1/checkout/voucher
// Remove the applied voucher
func (api *CheckoutAPI) RemoveVoucher(c *gin.Context) {
	if err := api.service.RemoveVoucher(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Post /v1/checkout/delivery
// Choose the delivery option
func (api *CheckoutAPI) ChooseDelivery(c *gin.Context) {
	var payload checkouthttpmapper.DeliveryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	option, err := ordersdomain.ParseDeliveryOption(payload.Option)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := api.service.ChooseDelivery(c.Request.Context(), option); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Post /v1/checkout/payment
// Choose the payment method
func (api *CheckoutAPI) ChoosePayment(c *gin.Context) {
	var payload checkouthttpmapper.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	method, err := checkoutdomain.ParsePaymentMethod(payload.Method)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := api.service.ChoosePayment(c.Request.Context(), method); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Get /v1/checkout/summary
// Validate details and compute the order preview
func (api *CheckoutAPI) GetSummary(c *gin.Context) {
	summary, err := api.service.ReviewSummary(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkouthttpmapper.FromSummary(summary))
}

// Post /v1/checkout/confirm
// Place one order per selected cart line
func (api *CheckoutAPI) Confirm(c *gin.Context) {
	orders, err := api.service.Confirm(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, orderhttpmapper.FromDomainList(orders))
}

// Post /v1/checkout/cancel
// Abandon the workflow, returning to cart review
func (api *CheckoutAPI) Cancel(c *gin.Context) {
	if err := api.service.Cancel(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
