package repository

import (
	"context"
	"errors"

	"github.com/caffeinepub/supply-chain-management-app/internal/apperr"
	"github.com/caffeinepub/supply-chain-management-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuotationRequestRepository interface {
	Create(ctx context.Context, q *model.QuotationRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.QuotationRequest, error)
	List(ctx context.Context, status *model.RequestStatus) ([]model.QuotationRequest, error)
	Update(ctx context.Context, q *model.QuotationRequest) error
}

type quotationRequestRepo struct{ db *gorm.DB }

func NewQuotationRequestRepository(db *gorm.DB) QuotationRequestRepository {
	return &quotationRequestRepo{db: db}
}

func (r *quotationRequestRepo) Create(ctx context.Context, q *model.QuotationRequest) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *quotationRequestRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.QuotationRequest, error) {
	var q model.QuotationRequest
	err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperr.NotFoundError{Entity: "quotation request", ID: id.String()}
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *quotationRequestRepo) List(ctx context.Context, status *model.RequestStatus) ([]model.QuotationRequest, error) {
	var requests []model.QuotationRequest
	q := r.db.WithContext(ctx).Order("request_date DESC")
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	err := q.Find(&requests).Error
	return requests, err
}

func (r *quotationRequestRepo) Update(ctx context.Context, q *model.QuotationRequest) error {
	return r.db.WithContext(ctx).Save(q).Error
}
