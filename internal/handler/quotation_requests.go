package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caffeinepub/supply-chain-management-app/internal/apierror"
	"github.com/caffeinepub/supply-chain-management-app/internal/dto"
	"github.com/caffeinepub/supply-chain-management-app/internal/service"
)

type QuotationRequestsHandler struct{ svc service.QuotationService }

func NewQuotationRequestsHandler(svc service.QuotationService) *QuotationRequestsHandler {
	return &QuotationRequestsHandler{svc: svc}
}

// Create godoc
// @Summary      Publish a quotation request
// @Tags         quotation-requests
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateQuotationRequestRequest true "Requested item and delivery date"
// @Success      201 {object} dto.QuotationRequestResponse
// @Failure      422 {object} apierror.ValidationError
// @Router       /v1/quotation-requests [post]
func (h *QuotationRequestsHandler) Create(c *gin.Context) {
	var req dto.CreateQuotationRequestRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateRequest(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      List quotation requests, optionally filtered by status
// @Tags         quotation-requests
// @Produce      json
// @Param        status query string false "pending | received | closed"
// @Success      200 {array} dto.QuotationRequestResponse
// @Failure      422 {object} apierror.APIError
// @Router       /v1/quotation-requests [get]
func (h *QuotationRequestsHandler) List(c *gin.Context) {
	var filter dto.RequestFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListRequests(c.Request.Context(), filter.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID godoc
// @Summary      Fetch a quotation request
// @Tags         quotation-requests
// @Produce      json
// @Param        id path string true "Request id"
// @Success      200 {object} dto.QuotationRequestResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/quotation-requests/{id} [get]
func (h *QuotationRequestsHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetRequest(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus godoc
// @Summary      Set a quotation request's status
// @Tags         quotation-requests
// @Accept       json
// @Produce      json
// @Param        id path string true "Request id"
// @Param        status body dto.UpdateRequestStatusRequest true "New status"
// @Success      200 {object} dto.QuotationRequestResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/quotation-requests/{id}/status [patch]
func (h *QuotationRequestsHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateRequestStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateRequestStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListQuotations godoc
// @Summary      List quotations submitted against a request
// @Tags         quotation-requests
// @Produce      json
// @Param        id path string true "Request id"
// @Success      200 {array} dto.QuotationResponse
// @Router       /v1/quotation-requests/{id}/quotations [get]
func (h *QuotationRequestsHandler) ListQuotations(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListQuotationsForRequest(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
