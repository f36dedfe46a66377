package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateVendorRequest struct {
	CompanyName   string `json:"company_name"   validate:"required,min=2"`
	ContactPerson string `json:"contact_person" validate:"required"`
	Email         string `json:"email"          validate:"required,email"`
	PhoneNumber   string `json:"phone_number"   validate:"required"`
	Address       string `json:"address"        validate:"required"`
	Category      string `json:"category"       validate:"required"`
}

// UpdateVendorRequest replaces every field including status (full-field
// update semantics — there is no partial patch for vendors).
type UpdateVendorRequest struct {
	CompanyName   string `json:"company_name"   validate:"required,min=2"`
	ContactPerson string `json:"contact_person" validate:"required"`
	Email         string `json:"email"          validate:"required,email"`
	PhoneNumber   string `json:"phone_number"   validate:"required"`
	Address       string `json:"address"        validate:"required"`
	Category      string `json:"category"       validate:"required"`
	Status        string `json:"status"         validate:"required,oneof=active inactive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VendorResponse struct {
	ID            string    `json:"id"`
	CompanyName   string    `json:"company_name"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email"`
	PhoneNumber   string    `json:"phone_number"`
	Address       string    `json:"address"`
	Category      string    `json:"category"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
