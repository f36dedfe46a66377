package repository

import (
	"context"
	"errors"

	"github.com/caffeinepub/supply-chain-management-app/internal/apperr"
	"github.com/caffeinepub/supply-chain-management-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VendorRepository interface {
	Create(ctx context.Context, v *model.Vendor) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Vendor, error)
	List(ctx context.Context) ([]model.Vendor, error)
	Update(ctx context.Context, v *model.Vendor) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type vendorRepo struct{ db *gorm.DB }

func NewVendorRepository(db *gorm.DB) VendorRepository { return &vendorRepo{db: db} }

func (r *vendorRepo) Create(ctx context.Context, v *model.Vendor) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vendorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Vendor, error) {
	var v model.Vendor
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperr.NotFoundError{Entity: "vendor", ID: id.String()}
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vendorRepo) List(ctx context.Context) ([]model.Vendor, error) {
	var vendors []model.Vendor
	err := r.db.WithContext(ctx).Order("company_name").Find(&vendors).Error
	return vendors, err
}

func (r *vendorRepo) Update(ctx context.Context, v *model.Vendor) error {
	return r.db.WithContext(ctx).Save(v).Error
}

// Delete removes the vendor row outright. Quotations keep their vendor_id —
// references are weak and dangling ids are the caller's concern.
func (r *vendorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Vendor{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &apperr.NotFoundError{Entity: "vendor", ID: id.String()}
	}
	return nil
}
