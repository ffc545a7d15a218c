package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	addresshttpmapper "github.com/sneakpeak/storefront/internal/domains/addresses/adapters/http/mapper"
	addressesports "github.com/sneakpeak/storefront/internal/domains/addresses/ports"
)

// AddressAPI wires HTTP transport with the address book.
type AddressAPI struct {
	service addressesports.Service
}

// NewAddressAPI creates an AddressAPI backed by the provided service.
func NewAddressAPI(service addressesports.Service) AddressAPI {
	return AddressAPI{service: service}
}

// Get /v1/addresses
// List saved addresses, flagging the active one
func (api *AddressAPI) ListAddresses(c *gin.Context) {
	ctx := c.Request.Context()
	addresses, err := api.service.List(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	activeID := ""
	if active := api.service.Active(ctx); active != nil {
		activeID = active.ID.String()
	}
	c.JSON(http.StatusOK, gin.H{
		"addresses": addresshttpmapper.FromDomainList(addresses),
		"activeId":  activeID,
	})
}

// Post /v1/addresses
// Save a new address; it becomes the active one
func (api *AddressAPI) SaveAddress(c *gin.Context) {
	var payload addresshttpmapper.SaveAddressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	address, err := api.service.Save(c.Request.Context(), addresshttpmapper.ToSaveInput(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, addresshttpmapper.FromDomain(address))
}

// Post /v1/addresses/:index/select
// Switch the active address
func (api *AddressAPI) SelectAddress(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	address, err := api.service.Select(c.Request.Context(), index)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, addresshttpmapper.FromDomain(address))
}
