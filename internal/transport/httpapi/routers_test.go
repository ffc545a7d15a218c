package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	addressesmemory "github.com/sneakpeak/storefront/internal/domains/addresses/adapters/memory"
	addressesapp "github.com/sneakpeak/storefront/internal/domains/addresses/application"
	cartmemory "github.com/sneakpeak/storefront/internal/domains/cart/adapters/memory"
	cartapp "github.com/sneakpeak/storefront/internal/domains/cart/application"
	catalogmemory "github.com/sneakpeak/storefront/internal/domains/catalog/adapters/memory"
	catalogapp "github.com/sneakpeak/storefront/internal/domains/catalog/application"
	catalogdomain "github.com/sneakpeak/storefront/internal/domains/catalog/domain"
	checkoutworkflows "github.com/sneakpeak/storefront/internal/domains/checkout/adapters/workflows"
	checkoutapp "github.com/sneakpeak/storefront/internal/domains/checkout/application"
	ordersmemory "github.com/sneakpeak/storefront/internal/domains/orders/adapters/memory"
	ordersapp "github.com/sneakpeak/storefront/internal/domains/orders/application"
	vouchersmemory "github.com/sneakpeak/storefront/internal/domains/vouchers/adapters/memory"
	vouchersapp "github.com/sneakpeak/storefront/internal/domains/vouchers/application"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := catalogmemory.NewRepository()
	require.NoError(t, catalog.Load(
		&catalogdomain.Product{ID: "prod-001", Name: "Court Classic", Price: decimal.NewFromInt(250), Stock: 5, Category: catalogdomain.CategorySneakers},
	))

	bus := EventBus.New()
	cartService := cartapp.NewService(cartmemory.NewRepository(), catalog, cartapp.WithEventBus(bus))
	voucherService := vouchersapp.NewService(vouchersmemory.NewRegistry())
	addressService := addressesapp.NewService(addressesmemory.NewRepository())
	orderService := ordersapp.NewService(ordersmemory.NewRepository())
	checkoutService := checkoutapp.NewService(
		cartService,
		voucherService,
		addressService,
		checkoutworkflows.NewInlineOrderPlacer(orderService),
		checkoutapp.WithEventBus(bus),
	)

	return NewRouter(APIHandlers{
		CatalogAPI:  NewCatalogAPI(catalogapp.NewService(catalog), cartService),
		CartAPI:     NewCartAPI(cartService),
		CheckoutAPI: NewCheckoutAPI(checkoutService),
		AddressAPI:  NewAddressAPI(addressService),
		OrderAPI:    NewOrderAPI(orderService),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCheckoutFlowOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/cart/items", gin.H{
		"productId": "prod-001", "name": "Court Classic", "price": "250", "quantity": 2,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/v1/checkout/details", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/v1/checkout/contact", gin.H{
		"fullName": "Dana Cruz", "phone": "0917-555-0101", "addressLine": "12 Mango St", "city": "Quezon City",
	})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/v1/checkout/voucher", gin.H{"code": "save50"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/v1/checkout/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var summary struct {
		Subtotal decimal.Decimal `json:"subtotal"`
		Discount decimal.Decimal `json:"discount"`
		Total    decimal.Decimal `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	require.True(t, decimal.NewFromInt(500).Equal(summary.Subtotal))
	require.True(t, decimal.NewFromInt(50).Equal(summary.Discount))
	require.True(t, decimal.NewFromInt(500).Equal(summary.Total))

	rec = doJSON(t, router, http.MethodPost, "/v1/checkout/confirm", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/v1/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	require.Equal(t, "pending", orders[0]["status"])

	rec = doJSON(t, router, http.MethodGet, "/v1/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cart struct {
		Items []any `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	require.Empty(t, cart.Items)
}

func TestAddItemOverReservationReturnsProblem(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/cart/items", gin.H{
		"productId": "prod-001", "name": "Court Classic", "price": "250", "quantity": 6,
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")

	var problem struct {
		Type string `json:"type"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	require.Equal(t, "/problems/insufficient-stock", problem.Type)
}

func TestEmptyCartBlocksDetails(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/checkout/details", nil)
	require.Equal(t, http.StatusConflict, rec.Code)

	var problem struct {
		Type string `json:"type"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	require.Equal(t, "/problems/empty-cart", problem.Type)
}

func TestUnknownVoucherReturns404(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/cart/items", gin.H{
		"productId": "prod-001", "name": "Court Classic", "price": "250", "quantity": 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/v1/checkout/details", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/v1/checkout/voucher", gin.H{"code": "NOPE"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAvailableStockEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/cart/items", gin.H{
		"productId": "prod-001", "name": "Court Classic", "price": "250", "quantity": 2,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/v1/cart/stock/prod-001", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var payload struct {
		Available int `json:"available"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, 3, payload.Available)
}
