package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caffeinepub/supply-chain-management-app/internal/apierror"
	"github.com/caffeinepub/supply-chain-management-app/internal/dto"
	"github.com/caffeinepub/supply-chain-management-app/internal/service"
)

type RequisitionsHandler struct{ svc service.RequisitionService }

func NewRequisitionsHandler(svc service.RequisitionService) *RequisitionsHandler {
	return &RequisitionsHandler{svc: svc}
}

// Create godoc
// @Summary      Create a purchase requisition (draft)
// @Tags         requisitions
// @Accept       json
// @Produce      json
// @Param        requisition body dto.CreateRequisitionRequest true "Requisition"
// @Success      201 {object} dto.RequisitionResponse
// @Failure      422 {object} apierror.APIError
// @Router       /v1/requisitions [post]
func (h *RequisitionsHandler) Create(c *gin.Context) {
	var req dto.CreateRequisitionRequest
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
// @Summary      List requisitions, optionally filtered by status
// @Tags         requisitions
// @Produce      json
// @Param        status query string false "draft | pendingApproval | approved | rejected"
// @Success      200 {array} dto.RequisitionResponse
// @Failure      422 {object} apierror.APIError
// @Router       /v1/requisitions [get]
func (h *RequisitionsHandler) List(c *gin.Context) {
	var filter dto.RequisitionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListPending godoc
// @Summary      List requisitions awaiting a decision
// @Tags         requisitions
// @Produce      json
// @Success      200 {array} dto.RequisitionResponse
// @Router       /v1/requisitions/pending [get]
func (h *RequisitionsHandler) ListPending(c *gin.Context) {
	resp, err := h.svc.ListPending(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID godoc
// @Summary      Fetch a requisition with items and approval history
// @Tags         requisitions
// @Produce      json
// @Param        id path string true "Requisition id"
// @Success      200 {object} dto.RequisitionResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/requisitions/{id} [get]
func (h *RequisitionsHandler) GetByID(c *gin.Context) {
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
// @Summary      Replace a draft requisition's items and cost
// @Tags         requisitions
// @Accept       json
// @Produce      json
// @Param        id path string true "Requisition id"
// @Param        requisition body dto.UpdateRequisitionRequest true "New content"
// @Success      200 {object} dto.RequisitionResponse
// @Failure      409 {object} apierror.APIError
// @Router       /v1/requisitions/{id} [put]
func (h *RequisitionsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateRequisitionRequest
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
// @Summary      Delete a draft requisition
// @Tags         requisitions
// @Param        id path string true "Requisition id"
// @Success      204
// @Failure      409 {object} apierror.APIError
// @Router       /v1/requisitions/{id} [delete]
func (h *RequisitionsHandler) Delete(c *gin.Context) {
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

// Submit godoc
// @Summary      Submit a draft for approval
// @Tags         requisitions
// @Produce      json
// @Param        id path string true "Requisition id"
// @Success      200 {object} dto.RequisitionResponse
// @Failure      409 {object} apierror.APIError
// @Router       /v1/requisitions/{id}/submit [post]
func (h *RequisitionsHandler) Submit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.SubmitForApproval(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Approve godoc
// @Summary      Approve a pending requisition
// @Tags         requisitions
// @Accept       json
// @Produce      json
// @Param        id path string true "Requisition id"
// @Param        decision body dto.DecisionRequest true "Approver and optional comments"
// @Success      200 {object} dto.RequisitionResponse
// @Failure      409 {object} apierror.APIError
// @Router       /v1/requisitions/{id}/approve [post]
func (h *RequisitionsHandler) Approve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.DecisionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Approve(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Reject godoc
// @Summary      Reject a pending requisition (comments required)
// @Tags         requisitions
// @Accept       json
// @Produce      json
// @Param        id path string true "Requisition id"
// @Param        decision body dto.DecisionRequest true "Approver and comments"
// @Success      200 {object} dto.RequisitionResponse
// @Failure      409 {object} apierror.APIError
// @Router       /v1/requisitions/{id}/reject [post]
func (h *RequisitionsHandler) Reject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.DecisionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Reject(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
