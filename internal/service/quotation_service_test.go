package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caffeinepub/supply-chain-management-app/internal/apperr"
	"github.com/caffeinepub/supply-chain-management-app/internal/dto"
	"github.com/caffeinepub/supply-chain-management-app/internal/model"
	"github.com/caffeinepub/supply-chain-management-app/internal/repository"
	"github.com/caffeinepub/supply-chain-management-app/internal/service"
)

// ── In-memory stubs ──────────────────────────────────────────────────────────

type stubRequestRepo struct {
	requests map[uuid.UUID]*model.QuotationRequest
}

func newStubRequestRepo() *stubRequestRepo {
	return &stubRequestRepo{requests: make(map[uuid.UUID]*model.QuotationRequest)}
}

func (s *stubRequestRepo) Create(_ context.Context, q *model.QuotationRequest) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	cloned := *q
	s.requests[q.ID] = &cloned
	return nil
}

func (s *stubRequestRepo) FindByID(_ context.Context, id uuid.UUID) (*model.QuotationRequest, error) {
	q, ok := s.requests[id]
	if !ok {
		return nil, &apperr.NotFoundError{Entity: "quotation request", ID: id.String()}
	}
	cloned := *q
	return &cloned, nil
}

func (s *stubRequestRepo) List(_ context.Context, status *model.RequestStatus) ([]model.QuotationRequest, error) {
	var out []model.QuotationRequest
	for _, q := range s.requests {
		if status == nil || q.Status == *status {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (s *stubRequestRepo) Update(_ context.Context, q *model.QuotationRequest) error {
	if _, ok := s.requests[q.ID]; !ok {
		return &apperr.NotFoundError{Entity: "quotation request", ID: q.ID.String()}
	}
	cloned := *q
	s.requests[q.ID] = &cloned
	return nil
}

var _ repository.QuotationRequestRepository = (*stubRequestRepo)(nil)

type stubQuotationRepo struct {
	quotations map[uuid.UUID]*model.Quotation
}

func newStubQuotationRepo() *stubQuotationRepo {
	return &stubQuotationRepo{quotations: make(map[uuid.UUID]*model.Quotation)}
}

func (s *stubQuotationRepo) Create(_ context.Context, q *model.Quotation) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	cloned := *q
	s.quotations[q.ID] = &cloned
	return nil
}

func (s *stubQuotationRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Quotation, error) {
	q, ok := s.quotations[id]
	if !ok {
		return nil, &apperr.NotFoundError{Entity: "quotation", ID: id.String()}
	}
	cloned := *q
	return &cloned, nil
}

func (s *stubQuotationRepo) ListByRequest(_ context.Context, requestID uuid.UUID) ([]model.Quotation, error) {
	var out []model.Quotation
	for _, q := range s.quotations {
		if q.RequestID == requestID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (s *stubQuotationRepo) Update(_ context.Context, q *model.Quotation) error {
	if _, ok := s.quotations[q.ID]; !ok {
		return &apperr.NotFoundError{Entity: "quotation", ID: q.ID.String()}
	}
	cloned := *q
	s.quotations[q.ID] = &cloned
	return nil
}

var _ repository.QuotationRepository = (*stubQuotationRepo)(nil)

// ── Tests ────────────────────────────────────────────────────────────────────

func newQuotationService() service.QuotationService {
	return service.NewQuotationService(newStubRequestRepo(), newStubQuotationRepo())
}

func validRequestInput() dto.CreateQuotationRequestRequest {
	return dto.CreateQuotationRequestRequest{
		Description:          "Nitrile gloves, size M",
		Quantity:             5000,
		UnitOfMeasurement:    "box",
		RequiredDeliveryDate: time.Now().AddDate(0, 1, 0),
	}
}

func validQuotationInput(requestID string) dto.SubmitQuotationRequest {
	return dto.SubmitQuotationRequest{
		VendorID:         uuid.NewString(),
		RequestID:        requestID,
		UnitPrice:        decimal.NewFromFloat(8.40),
		TotalPrice:       decimal.NewFromInt(42000),
		DeliveryTimeline: "3 weeks",
		ValidityPeriod:   time.Now().AddDate(0, 3, 0),
	}
}

func TestCreateRequestStartsPending(t *testing.T) {
	svc := newQuotationService()

	resp, err := svc.CreateRequest(context.Background(), validRequestInput())

	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.False(t, resp.RequestDate.IsZero())
}

func TestCreateRequestRejectsZeroQuantity(t *testing.T) {
	svc := newQuotationService()

	input := validRequestInput()
	input.Quantity = 0
	_, err := svc.CreateRequest(context.Background(), input)

	assert.True(t, apperr.IsValidation(err))
}

func TestUpdateRequestStatus(t *testing.T) {
	svc := newQuotationService()
	created, err := svc.CreateRequest(context.Background(), validRequestInput())
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	resp, err := svc.UpdateRequestStatus(context.Background(), id, "received")
	require.NoError(t, err)
	assert.Equal(t, "received", resp.Status)

	_, err = svc.UpdateRequestStatus(context.Background(), id, "cancelled")
	assert.True(t, apperr.IsValidation(err))
}

func TestListRequestsFiltered(t *testing.T) {
	svc := newQuotationService()
	first, err := svc.CreateRequest(context.Background(), validRequestInput())
	require.NoError(t, err)
	_, err = svc.CreateRequest(context.Background(), validRequestInput())
	require.NoError(t, err)
	_, err = svc.UpdateRequestStatus(context.Background(), uuid.MustParse(first.ID), "closed")
	require.NoError(t, err)

	closed, err := svc.ListRequests(context.Background(), "closed")
	require.NoError(t, err)
	assert.Len(t, closed, 1)

	all, err := svc.ListRequests(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.ListRequests(context.Background(), "bogus")
	assert.True(t, apperr.IsValidation(err))
}

func TestSubmitQuotation(t *testing.T) {
	svc := newQuotationService()
	request, err := svc.CreateRequest(context.Background(), validRequestInput())
	require.NoError(t, err)

	resp, err := svc.SubmitQuotation(context.Background(), validQuotationInput(request.ID))

	require.NoError(t, err)
	assert.Equal(t, "submitted", resp.Status)
	assert.Equal(t, request.ID, resp.RequestID)
	assert.False(t, resp.SubmissionDate.IsZero())
}

func TestSubmitQuotationRejectsBadIDs(t *testing.T) {
	svc := newQuotationService()

	input := validQuotationInput(uuid.NewString())
	input.VendorID = "not-a-uuid"
	_, err := svc.SubmitQuotation(context.Background(), input)
	assert.True(t, apperr.IsValidation(err))

	input = validQuotationInput("not-a-uuid")
	_, err = svc.SubmitQuotation(context.Background(), input)
	assert.True(t, apperr.IsValidation(err))
}

func TestSubmitQuotationRejectsNonPositivePrices(t *testing.T) {
	svc := newQuotationService()

	input := validQuotationInput(uuid.NewString())
	input.UnitPrice = decimal.Zero
	_, err := svc.SubmitQuotation(context.Background(), input)
	assert.True(t, apperr.IsValidation(err))

	input = validQuotationInput(uuid.NewString())
	input.TotalPrice = decimal.NewFromInt(-5)
	_, err = svc.SubmitQuotation(context.Background(), input)
	assert.True(t, apperr.IsValidation(err))
}

func TestListQuotationsForRequest(t *testing.T) {
	svc := newQuotationService()
	request, err := svc.CreateRequest(context.Background(), validRequestInput())
	require.NoError(t, err)
	_, err = svc.SubmitQuotation(context.Background(), validQuotationInput(request.ID))
	require.NoError(t, err)
	_, err = svc.SubmitQuotation(context.Background(), validQuotationInput(request.ID))
	require.NoError(t, err)
	_, err = svc.SubmitQuotation(context.Background(), validQuotationInput(uuid.NewString()))
	require.NoError(t, err)

	got, err := svc.ListQuotationsForRequest(context.Background(), uuid.MustParse(request.ID))

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestAcceptQuotationLeavesRequestOpen(t *testing.T) {
	svc := newQuotationService()
	request, err := svc.CreateRequest(context.Background(), validRequestInput())
	require.NoError(t, err)
	quotation, err := svc.SubmitQuotation(context.Background(), validQuotationInput(request.ID))
	require.NoError(t, err)

	updated, err := svc.UpdateQuotationStatus(context.Background(), uuid.MustParse(quotation.ID), "accepted")
	require.NoError(t, err)
	assert.Equal(t, "accepted", updated.Status)

	// Closing the request stays an explicit buyer action.
	reloaded, err := svc.GetRequest(context.Background(), uuid.MustParse(request.ID))
	require.NoError(t, err)
	assert.Equal(t, "pending", reloaded.Status)
}

func TestUpdateQuotationStatusRejectsUnknown(t *testing.T) {
	svc := newQuotationService()
	request, err := svc.CreateRequest(context.Background(), validRequestInput())
	require.NoError(t, err)
	quotation, err := svc.SubmitQuotation(context.Background(), validQuotationInput(request.ID))
	require.NoError(t, err)

	_, err = svc.UpdateQuotationStatus(context.Background(), uuid.MustParse(quotation.ID), "withdrawn")

	assert.True(t, apperr.IsValidation(err))
}
