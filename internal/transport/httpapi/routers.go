// Package httpapi exposes the storefront bounded contexts over gin.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIHandlers groups the per-context HTTP adapters mounted on the
// router.
type APIHandlers struct {
	CatalogAPI  CatalogAPI
	CartAPI     CartAPI
	CheckoutAPI CheckoutAPI
	AddressAPI  AddressAPI
	OrderAPI    OrderAPI
}

// NewRouter returns a gin engine with all storefront routes mounted
// under /v1.
func NewRouter(handlers APIHandlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")

	v1.GET("/products", handlers.CatalogAPI.ListProducts)
	v1.GET("/products/:productId", handlers.CatalogAPI.GetProductByID)

	v1.GET("/cart", handlers.CartAPI.GetCart)
	v1.DELETE("/cart", handlers.CartAPI.ClearCart)
	v1.POST("/cart/items", handlers.CartAPI.AddItem)
	v1.PATCH("/cart/items/:itemId", handlers.CartAPI.SetQuantity)
	v1.DELETE("/cart/items/:itemId", handlers.CartAPI.RemoveItem)
	v1.GET("/cart/stock/:productId", handlers.CatalogAPI.GetAvailableStock)

	v1.GET("/checkout", handlers.CheckoutAPI.GetState)
	v1.POST("/checkout/selection", handlers.CheckoutAPI.SetSelection)
	v1.POST("/checkout/details", handlers.CheckoutAPI.BeginDetails)
	v1.POST("/checkout/contact", handlers.CheckoutAPI.SetContact)
	v1.POST("/checkout/voucher", handlers.CheckoutAPI.ApplyVoucher)
	v1.DELETE("/checkout/voucher", handlers.CheckoutAPI.RemoveVoucher)
	v1.POST("/checkout/delivery", handlers.CheckoutAPI.ChooseDelivery)
	v1.POST("/checkout/payment", handlers.CheckoutAPI.ChoosePayment)
	v1.GET("/checkout/summary", handlers.CheckoutAPI.GetSummary)
	v1.POST("/checkout/confirm", handlers.CheckoutAPI.Confirm)
	v1.POST("/checkout/cancel", handlers.CheckoutAPI.Cancel)

	v1.GET("/addresses", handlers.AddressAPI.ListAddresses)
	v1.POST("/addresses", handlers.AddressAPI.SaveAddress)
	v1.POST("/addresses/:index/select", handlers.AddressAPI.SelectAddress)

	v1.GET("/orders", handlers.OrderAPI.ListOrders)
	v1.GET("/orders/:orderId", handlers.OrderAPI.GetOrderByID)
	v1.POST("/orders/:orderId/status", handlers.OrderAPI.UpdateOrderStatus)

	return router
}
