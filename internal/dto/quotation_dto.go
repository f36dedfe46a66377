package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Quotation requests ──────────────────────────────────────────────────────

type CreateQuotationRequestRequest struct {
	Description          string    `json:"description"            validate:"required"`
	Quantity             int       `json:"quantity"               validate:"required,gt=0"`
	UnitOfMeasurement    string    `json:"unit_of_measurement"    validate:"required"`
	RequiredDeliveryDate time.Time `json:"required_delivery_date" validate:"required"`
}

type UpdateRequestStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending received closed"`
}

type QuotationRequestResponse struct {
	ID                   string    `json:"id"`
	Description          string    `json:"description"`
	Quantity             int       `json:"quantity"`
	UnitOfMeasurement    string    `json:"unit_of_measurement"`
	RequiredDeliveryDate time.Time `json:"required_delivery_date"`
	RequestDate          time.Time `json:"request_date"`
	Status               string    `json:"status"`
}

// RequestFilter narrows request listings to one status; empty = unfiltered.
type RequestFilter struct {
	Status string `form:"status"`
}

// ─── Quotations ──────────────────────────────────────────────────────────────

// SubmitQuotationRequest carries a vendor's response to a request.
// TotalPrice is accepted as supplied — the engine does not recompute it.
type SubmitQuotationRequest struct {
	VendorID           string          `json:"vendor_id"            validate:"required,uuid"`
	RequestID          string          `json:"request_id"           validate:"required,uuid"`
	UnitPrice          decimal.Decimal `json:"unit_price"           validate:"required,gt=0"`
	TotalPrice         decimal.Decimal `json:"total_price"          validate:"required,gt=0"`
	DeliveryTimeline   string          `json:"delivery_timeline"`
	TermsAndConditions string          `json:"terms_and_conditions"`
	ValidityPeriod     time.Time       `json:"validity_period"      validate:"required"`
}

type UpdateQuotationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=submitted shortlisted rejected accepted"`
}

type QuotationResponse struct {
	ID                 string          `json:"id"`
	RequestID          string          `json:"request_id"`
	VendorID           string          `json:"vendor_id"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	TotalPrice         decimal.Decimal `json:"total_price"`
	DeliveryTimeline   string          `json:"delivery_timeline"`
	TermsAndConditions string          `json:"terms_and_conditions"`
	ValidityPeriod     time.Time       `json:"validity_period"`
	SubmissionDate     time.Time       `json:"submission_date"`
	Status             string          `json:"status"`
}
