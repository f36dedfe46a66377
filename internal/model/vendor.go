package model

import (
	"time"

	"github.com/google/uuid"
)

// VendorStatus is the closed set of vendor states.
type VendorStatus string

const (
	VendorActive   VendorStatus = "active"
	VendorInactive VendorStatus = "inactive"
)

// Valid reports whether s is a member of the closed status set.
func (s VendorStatus) Valid() bool {
	switch s {
	case VendorActive, VendorInactive:
		return true
	}
	return false
}

// Vendor is a registered supplier company profile.
// Quotations reference vendors by id only — no cascading delete, so a
// deleted vendor may leave dangling references behind.
type Vendor struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyName   string       `gorm:"not null"`
	ContactPerson string       `gorm:"not null"`
	Email         string       `gorm:"not null"`
	PhoneNumber   string       `gorm:"not null"`
	Address       string       `gorm:"not null"`
	Category      string       `gorm:"index;not null"`
	Status        VendorStatus `gorm:"type:varchar(16);not null;default:'active'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Vendor) TableName() string { return "vendors" }
