package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cartports "github.com/sneakpeak/storefront/internal/domains/cart/ports"
	cataloghttpmapper "github.com/sneakpeak/storefront/internal/domains/catalog/adapters/http/mapper"
	catalogdomain "github.com/sneakpeak/storefront/internal/domains/catalog/domain"
	catalogports "github.com/sneakpeak/storefront/internal/domains/catalog/ports"
)

// CatalogAPI wires HTTP transport with the catalog bounded context.
type CatalogAPI struct {
	service catalogports.Service
	cart    cartports.Service
}

// NewCatalogAPI creates a CatalogAPI backed by the provided services.
// The cart service reconciles purchasable stock against reservations.
func NewCatalogAPI(service catalogports.Service, cart cartports.Service) CatalogAPI {
	return CatalogAPI{service: service, cart: cart}
}

// Get /v1/products
// List the catalog, optionally filtered by category
func (api *CatalogAPI) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()
	if raw := c.Query("category"); raw != "" {
		category := catalogdomain.ParseCategory(raw)
		products, err := api.service.FindByCategory(ctx, category)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, cataloghttpmapper.FromDomainList(products))
		return
	}
	products, err := api.service.List(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromDomainList(products))
}

// Get /v1/products/:productId
// Find a product by ID
func (api *CatalogAPI) GetProductByID(c *gin.Context) {
	product, err := api.service.GetByID(c.Request.Context(), c.Param("productId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromDomain(product))
}

// Get /v1/cart/stock/:productId
// Purchasable stock net of cart reservations
func (api *CatalogAPI) GetAvailableStock(c *gin.Context) {
	productID := c.Param("productId")
	available, err := api.cart.AvailableStock(c.Request.Context(), productID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"productId": productID, "available": available})
}
