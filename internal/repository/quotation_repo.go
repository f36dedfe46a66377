package repository

import (
	"context"
	"errors"

	"github.com/caffeinepub/supply-chain-management-app/internal/apperr"
	"github.com/caffeinepub/supply-chain-management-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuotationRepository interface {
	Create(ctx context.Context, q *model.Quotation) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Quotation, error)
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]model.Quotation, error)
	Update(ctx context.Context, q *model.Quotation) error
}

type quotationRepo struct{ db *gorm.DB }

func NewQuotationRepository(db *gorm.DB) QuotationRepository { return &quotationRepo{db: db} }

func (r *quotationRepo) Create(ctx context.Context, q *model.Quotation) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *quotationRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Quotation, error) {
	var q model.Quotation
	err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperr.NotFoundError{Entity: "quotation", ID: id.String()}
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *quotationRepo) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]model.Quotation, error) {
	var quotations []model.Quotation
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("submission_date").
		Find(&quotations).Error
	return quotations, err
}

func (r *quotationRepo) Update(ctx context.Context, q *model.Quotation) error {
	return r.db.WithContext(ctx).Save(q).Error
}
