package model

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the closed set of quotation-request states.
// Transitions are caller-driven; the engine validates membership only.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestReceived RequestStatus = "received"
	RequestClosed   RequestStatus = "closed"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestReceived, RequestClosed:
		return true
	}
	return false
}

// QuotationRequest is a published need for a quantity of an item by a
// delivery date, against which vendors submit quotations.
type QuotationRequest struct {
	ID                   uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Description          string        `gorm:"not null"`
	Quantity             int           `gorm:"not null"`
	UnitOfMeasurement    string        `gorm:"not null"`
	RequiredDeliveryDate time.Time     `gorm:"not null"`
	RequestDate          time.Time     `gorm:"not null"`
	Status               RequestStatus `gorm:"type:varchar(16);index;not null;default:'pending'"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (QuotationRequest) TableName() string { return "quotation_requests" }
