package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caffeinepub/supply-chain-management-app/internal/dto"
	"github.com/caffeinepub/supply-chain-management-app/internal/service"
)

type QuotationsHandler struct{ svc service.QuotationService }

func NewQuotationsHandler(svc service.QuotationService) *QuotationsHandler {
	return &QuotationsHandler{svc: svc}
}

// Submit godoc
// @Summary      Submit a vendor quotation against a request
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        quotation body dto.SubmitQuotationRequest true "Vendor offer"
// @Success      201 {object} dto.QuotationResponse
// @Failure      422 {object} apierror.ValidationError
// @Router       /v1/quotations [post]
func (h *QuotationsHandler) Submit(c *gin.Context) {
	var req dto.SubmitQuotationRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.SubmitQuotation(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateStatus godoc
// @Summary      Move a quotation through shortlisting
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        id path string true "Quotation id"
// @Param        status body dto.UpdateQuotationStatusRequest true "New status"
// @Success      200 {object} dto.QuotationResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/quotations/{id}/status [patch]
func (h *QuotationsHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateQuotationStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateQuotationStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
