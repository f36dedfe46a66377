package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/caffeinepub/supply-chain-management-app/internal/apperr"
	"github.com/caffeinepub/supply-chain-management-app/internal/dto"
	"github.com/caffeinepub/supply-chain-management-app/internal/model"
	"github.com/caffeinepub/supply-chain-management-app/internal/repository"
)

// QuotationService covers both sides of the sourcing exchange: buyer-issued
// quotation requests and vendor-submitted quotations.
type QuotationService interface {
	CreateRequest(ctx context.Context, req dto.CreateQuotationRequestRequest) (*dto.QuotationRequestResponse, error)
	GetRequest(ctx context.Context, id uuid.UUID) (*dto.QuotationRequestResponse, error)
	ListRequests(ctx context.Context, statusFilter string) ([]dto.QuotationRequestResponse, error)
	UpdateRequestStatus(ctx context.Context, id uuid.UUID, status string) (*dto.QuotationRequestResponse, error)

	SubmitQuotation(ctx context.Context, req dto.SubmitQuotationRequest) (*dto.QuotationResponse, error)
	ListQuotationsForRequest(ctx context.Context, requestID uuid.UUID) ([]dto.QuotationResponse, error)
	UpdateQuotationStatus(ctx context.Context, id uuid.UUID, status string) (*dto.QuotationResponse, error)
}

type quotationService struct {
	requests   repository.QuotationRequestRepository
	quotations repository.QuotationRepository
}

func NewQuotationService(requests repository.QuotationRequestRepository, quotations repository.QuotationRepository) QuotationService {
	return &quotationService{requests: requests, quotations: quotations}
}

func (s *quotationService) CreateRequest(ctx context.Context, req dto.CreateQuotationRequestRequest) (*dto.QuotationRequestResponse, error) {
	if req.Quantity <= 0 {
		return nil, apperr.Validationf("quantity must be positive")
	}

	request := &model.QuotationRequest{
		Description:          req.Description,
		Quantity:             req.Quantity,
		UnitOfMeasurement:    req.UnitOfMeasurement,
		RequiredDeliveryDate: req.RequiredDeliveryDate,
		RequestDate:          time.Now().UTC(),
		Status:               model.RequestPending,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}
	return toRequestResponse(request), nil
}

func (s *quotationService) GetRequest(ctx context.Context, id uuid.UUID) (*dto.QuotationRequestResponse, error) {
	request, err := s.requests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toRequestResponse(request), nil
}

func (s *quotationService) ListRequests(ctx context.Context, statusFilter string) ([]dto.QuotationRequestResponse, error) {
	var status *model.RequestStatus
	if statusFilter != "" {
		st := model.RequestStatus(statusFilter)
		if !st.Valid() {
			return nil, apperr.Validationf("unknown request status %q", statusFilter)
		}
		status = &st
	}

	requests, err := s.requests.List(ctx, status)
	if err != nil {
		return nil, err
	}
	out := make([]dto.QuotationRequestResponse, len(requests))
	for i := range requests {
		out[i] = *toRequestResponse(&requests[i])
	}
	return out, nil
}

// UpdateRequestStatus sets the request status directly. Unlike requisitions
// there is no transition matrix here: any member of the closed set is legal.
func (s *quotationService) UpdateRequestStatus(ctx context.Context, id uuid.UUID, status string) (*dto.QuotationRequestResponse, error) {
	st := model.RequestStatus(status)
	if !st.Valid() {
		return nil, apperr.Validationf("unknown request status %q", status)
	}

	request, err := s.requests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	request.Status = st
	if err := s.requests.Update(ctx, request); err != nil {
		return nil, err
	}
	return toRequestResponse(request), nil
}

// SubmitQuotation records a vendor's offer. Vendor and request ids are
// accepted as given; quotations hold weak references and a vendor deleted
// later simply leaves a dangling id behind.
func (s *quotationService) SubmitQuotation(ctx context.Context, req dto.SubmitQuotationRequest) (*dto.QuotationResponse, error) {
	vendorID, err := uuid.Parse(req.VendorID)
	if err != nil {
		return nil, apperr.Validationf("vendor_id is not a valid uuid")
	}
	requestID, err := uuid.Parse(req.RequestID)
	if err != nil {
		return nil, apperr.Validationf("request_id is not a valid uuid")
	}
	if !req.UnitPrice.IsPositive() {
		return nil, apperr.Validationf("unit_price must be positive")
	}
	if !req.TotalPrice.IsPositive() {
		return nil, apperr.Validationf("total_price must be positive")
	}

	quotation := &model.Quotation{
		RequestID:          requestID,
		VendorID:           vendorID,
		UnitPrice:          req.UnitPrice,
		TotalPrice:         req.TotalPrice,
		DeliveryTimeline:   req.DeliveryTimeline,
		TermsAndConditions: req.TermsAndConditions,
		ValidityPeriod:     req.ValidityPeriod,
		SubmissionDate:     time.Now().UTC(),
		Status:             model.QuotationSubmitted,
	}
	if err := s.quotations.Create(ctx, quotation); err != nil {
		return nil, err
	}
	return toQuotationResponse(quotation), nil
}

func (s *quotationService) ListQuotationsForRequest(ctx context.Context, requestID uuid.UUID) ([]dto.QuotationResponse, error) {
	quotations, err := s.quotations.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.QuotationResponse, len(quotations))
	for i := range quotations {
		out[i] = *toQuotationResponse(&quotations[i])
	}
	return out, nil
}

// UpdateQuotationStatus moves a quotation through shortlisting. Accepting a
// quotation does not touch the originating request; closing it stays an
// explicit buyer action.
func (s *quotationService) UpdateQuotationStatus(ctx context.Context, id uuid.UUID, status string) (*dto.QuotationResponse, error) {
	st := model.QuotationStatus(status)
	if !st.Valid() {
		return nil, apperr.Validationf("unknown quotation status %q", status)
	}

	quotation, err := s.quotations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	quotation.Status = st
	if err := s.quotations.Update(ctx, quotation); err != nil {
		return nil, err
	}
	return toQuotationResponse(quotation), nil
}

func toRequestResponse(r *model.QuotationRequest) *dto.QuotationRequestResponse {
	return &dto.QuotationRequestResponse{
		ID:                   r.ID.String(),
		Description:          r.Description,
		Quantity:             r.Quantity,
		UnitOfMeasurement:    r.UnitOfMeasurement,
		RequiredDeliveryDate: r.RequiredDeliveryDate,
		RequestDate:          r.RequestDate,
		Status:               string(r.Status),
	}
}

func toQuotationResponse(q *model.Quotation) *dto.QuotationResponse {
	return &dto.QuotationResponse{
		ID:                 q.ID.String(),
		RequestID:          q.RequestID.String(),
		VendorID:           q.VendorID.String(),
		UnitPrice:          q.UnitPrice,
		TotalPrice:         q.TotalPrice,
		DeliveryTimeline:   q.DeliveryTimeline,
		TermsAndConditions: q.TermsAndConditions,
		ValidityPeriod:     q.ValidityPeriod,
		SubmissionDate:     q.SubmissionDate,
		Status:             string(q.Status),
	}
}
