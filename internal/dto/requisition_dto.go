package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RequisitionItemInput struct {
	Description   string          `json:"description"    validate:"required"`
	Quantity      int             `json:"quantity"       validate:"required,gt=0"`
	EstimatedCost decimal.Decimal `json:"estimated_cost" validate:"min=0"`
}

type CreateRequisitionRequest struct {
	RequestedBy        string                 `json:"requested_by"         validate:"required"`
	Department         string                 `json:"department"           validate:"required"`
	Items              []RequisitionItemInput `json:"items"                validate:"required,min=1,dive"`
	TotalEstimatedCost decimal.Decimal        `json:"total_estimated_cost" validate:"min=0"`
	Justification      string                 `json:"justification"`
}

// UpdateRequisitionRequest replaces items, cost and justification wholesale.
// Only legal while the requisition is still a draft.
type UpdateRequisitionRequest struct {
	Items              []RequisitionItemInput `json:"items"                validate:"required,min=1,dive"`
	TotalEstimatedCost decimal.Decimal        `json:"total_estimated_cost" validate:"min=0"`
	Justification      string                 `json:"justification"`
}

// DecisionRequest carries an approve/reject decision. Comments are optional
// for approval; rejection requires them (enforced by the engine, not here,
// so the error surfaces as a domain ValidationError either way).
type DecisionRequest struct {
	ApproverName string `json:"approver_name"`
	Comments     string `json:"comments"`
}

// RequisitionFilter narrows listings to one status; empty = unfiltered.
type RequisitionFilter struct {
	Status string `form:"status"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RequisitionItemResponse struct {
	Description   string          `json:"description"`
	Quantity      int             `json:"quantity"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
}

type ApprovalRecordResponse struct {
	Action       string    `json:"action"`
	ApproverName string    `json:"approver_name"`
	Comments     string    `json:"comments"`
	Timestamp    time.Time `json:"timestamp"`
}

type RequisitionResponse struct {
	ID                 string                    `json:"id"`
	RequestedBy        string                    `json:"requested_by"`
	Department         string                    `json:"department"`
	Items              []RequisitionItemResponse `json:"items"`
	TotalEstimatedCost decimal.Decimal           `json:"total_estimated_cost"`
	Justification      string                    `json:"justification"`
	Status             string                    `json:"status"`
	ApprovalHistory    []ApprovalRecordResponse  `json:"approval_history"`
	CreatedAt          time.Time                 `json:"created_at"`
	UpdatedAt          time.Time                 `json:"updated_at"`
}
