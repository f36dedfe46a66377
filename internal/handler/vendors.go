package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caffeinepub/supply-chain-management-app/internal/dto"
	"github.com/caffeinepub/supply-chain-management-app/internal/service"
)

type VendorsHandler struct{ svc service.VendorService }

func NewVendorsHandler(svc service.VendorService) *VendorsHandler {
	return &VendorsHandler{svc: svc}
}

// Create godoc
// @Summary Register a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Param vendor body dto.CreateVendorRequest true "Vendor profile"
// @Success 201 {object} dto.VendorResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/vendors [post]
func (h *VendorsHandler) Create(c *gin.Context) {
	var req dto.CreateVendorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary List all vendors
// @Tags vendors
// @Produce json
// @Success 200 {array} dto.VendorResponse
// @Router /v1/vendors [get]
func (h *VendorsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID godoc
// @Summary Fetch a vendor
// @Tags vendors
// @Produce json
// @Param id path string true "Vendor id"
// @Success 200 {object} dto.VendorResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/vendors/{id} [get]
func (h *VendorsHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Replace a vendor profile
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path string true "Vendor id"
// @Param vendor body dto.UpdateVendorRequest true "Full vendor profile"
// @Success 200 {object} dto.VendorResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/vendors/{id} [put]
func (h *VendorsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateVendorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Remove a vendor
// @Tags vendors
// @Param id path string true "Vendor id"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /v1/vendors/{id} [delete]
func (h *VendorsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
