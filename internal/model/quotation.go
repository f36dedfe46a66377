package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuotationStatus is the closed set of quotation states.
type QuotationStatus string

const (
	QuotationSubmitted   QuotationStatus = "submitted"
	QuotationShortlisted QuotationStatus = "shortlisted"
	QuotationRejected    QuotationStatus = "rejected"
	QuotationAccepted    QuotationStatus = "accepted"
)

func (s QuotationStatus) Valid() bool {
	switch s {
	case QuotationSubmitted, QuotationShortlisted, QuotationRejected, QuotationAccepted:
		return true
	}
	return false
}

// Quotation is a vendor's response to a quotation request.
// RequestID and VendorID are weak references: any id is accepted and
// accepting a quotation does not transition its request.
// TotalPrice is caller-supplied and not recomputed server-side.
type Quotation struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RequestID          uuid.UUID       `gorm:"type:uuid;index;not null"`
	VendorID           uuid.UUID       `gorm:"type:uuid;index;not null"`
	UnitPrice          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalPrice         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DeliveryTimeline   string
	TermsAndConditions string
	ValidityPeriod     time.Time       `gorm:"not null"`
	SubmissionDate     time.Time       `gorm:"not null"`
	Status             QuotationStatus `gorm:"type:varchar(16);index;not null;default:'submitted'"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Quotation) TableName() string { return "quotations" }
