package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	carthttpmapper "github.com/sneakpeak/storefront/internal/domains/cart/adapters/http/mapper"
	cartports "github.com/sneakpeak/storefront/internal/domains/cart/ports"
)

// CartAPI wires HTTP transport with the cart bounded context.
type CartAPI struct {
	service cartports.Service
}

// NewCartAPI creates a CartAPI backed by the provided service.
func NewCartAPI(service cartports.Service) CartAPI {
	return CartAPI{service: service}
}

// Get /v1/cart
// List cart lines with the running total
func (api *CartAPI) GetCart(c *gin.Context) {
	ctx := c.Request.Context()
	items, err := api.service.Items(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	total, err := api.service.Total(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, carthttpmapper.Cart{Items: carthttpmapper.FromDomainList(items), Total: total})
}

// Post /v1/cart/items
// Add a product to the cart, merging with an existing line
func (api *CartAPI) AddItem(c *gin.Context) {
	var payload carthttpmapper.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	item, err := api.service.AddItem(c.Request.Context(), carthttpmapper.ToAddItemInput(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, carthttpmapper.FromDomain(item))
}

// Patch /v1/cart/items/:itemId
// Set the quantity of a cart line; zero removes it
func (api *CartAPI) SetQuantity(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		return
	}
	var payload carthttpmapper.SetQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	item, err := api.service.SetQuantity(c.Request.Context(), id, payload.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if item == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, carthttpmapper.FromDomain(item))
}

// Delete /v1/cart/items/:itemId
// Remove a cart line
func (api *CartAPI) RemoveItem(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		return
	}
	if err := api.service.RemoveItem(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete /v1/cart
// Clear the cart
func (api *CartAPI) ClearCart(c *gin.Context) {
	if err := api.service.Clear(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseItemID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		respondBadRequest(c, err)
		return uuid.Nil, false
	}
	return id, true
}
