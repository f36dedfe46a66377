package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RequisitionStatus is the closed set of purchase-requisition states.
// Lifecycle: draft → pendingApproval → approved | rejected.
// The two terminal states have no outgoing transitions.
type RequisitionStatus string

const (
	RequisitionDraft           RequisitionStatus = "draft"
	RequisitionPendingApproval RequisitionStatus = "pendingApproval"
	RequisitionApproved        RequisitionStatus = "approved"
	RequisitionRejected        RequisitionStatus = "rejected"
)

func (s RequisitionStatus) Valid() bool {
	switch s {
	case RequisitionDraft, RequisitionPendingApproval, RequisitionApproved, RequisitionRejected:
		return true
	}
	return false
}

// Terminal reports whether no transition leaves s.
func (s RequisitionStatus) Terminal() bool {
	return s == RequisitionApproved || s == RequisitionRejected
}

// ApprovalAction tags one entry in a requisition's approval history.
type ApprovalAction string

const (
	ActionSubmitted ApprovalAction = "submitted"
	ActionApproved  ApprovalAction = "approved"
	ActionRejected  ApprovalAction = "rejected"
)

// PurchaseRequisition is the core workflow entity. Items and approval
// records are owned exclusively by their requisition (value semantics:
// replaced wholesale, never shared).
//
// TotalEstimatedCost is caller-supplied; the engine logs a warning when it
// disagrees with the item sum but accepts it as-is for compatibility with
// existing clients.
type PurchaseRequisition struct {
	ID                 uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RequestedBy        string            `gorm:"not null"`
	Department         string            `gorm:"index;not null"`
	TotalEstimatedCost decimal.Decimal   `gorm:"type:decimal(12,2);not null"`
	Justification      string            `gorm:"type:text"`
	Status             RequisitionStatus `gorm:"type:varchar(24);index;not null;default:'draft'"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Items           []RequisitionItem `gorm:"foreignKey:RequisitionID;constraint:OnDelete:CASCADE"`
	ApprovalHistory []ApprovalRecord  `gorm:"foreignKey:RequisitionID;constraint:OnDelete:CASCADE"`
}

func (PurchaseRequisition) TableName() string { return "purchase_requisitions" }

// ItemSum returns Σ quantity × estimatedCost over the items.
func (r *PurchaseRequisition) ItemSum() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range r.Items {
		sum = sum.Add(it.EstimatedCost.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}

// RequisitionItem is one line of a requisition.
type RequisitionItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RequisitionID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Description   string          `gorm:"not null"`
	Quantity      int             `gorm:"not null"`
	EstimatedCost decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SortOrder     int             `gorm:"not null"`
}

func (RequisitionItem) TableName() string { return "requisition_items" }

// ApprovalRecord is one immutable entry in a requisition's audit trail.
// Rows are only ever inserted; SortOrder preserves append order so the
// history reads back chronologically even when timestamps collide.
type ApprovalRecord struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RequisitionID uuid.UUID      `gorm:"type:uuid;index;not null"`
	Action        ApprovalAction `gorm:"type:varchar(16);not null"`
	ApproverName  string         `gorm:"not null"`
	Comments      string         `gorm:"type:text"`
	Timestamp     time.Time      `gorm:"not null"`
	SortOrder     int            `gorm:"not null"`
}

func (ApprovalRecord) TableName() string { return "approval_records" }
