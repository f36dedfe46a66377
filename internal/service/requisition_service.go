package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/caffeinepub/supply-chain-management-app/internal/apperr"
	"github.com/caffeinepub/supply-chain-management-app/internal/dto"
	"github.com/caffeinepub/supply-chain-management-app/internal/model"
	"github.com/caffeinepub/supply-chain-management-app/internal/repository"
	"github.com/caffeinepub/supply-chain-management-app/internal/worker"
)

// RequisitionService drives the purchase-requisition lifecycle:
// draft → pendingApproval → approved | rejected.
type RequisitionService interface {
	Create(ctx context.Context, req dto.CreateRequisitionRequest) (*dto.RequisitionResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.RequisitionResponse, error)
	List(ctx context.Context, statusFilter string) ([]dto.RequisitionResponse, error)
	ListPending(ctx context.Context) ([]dto.RequisitionResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateRequisitionRequest) (*dto.RequisitionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SubmitForApproval(ctx context.Context, id uuid.UUID) (*dto.RequisitionResponse, error)
	Approve(ctx context.Context, id uuid.UUID, req dto.DecisionRequest) (*dto.RequisitionResponse, error)
	Reject(ctx context.Context, id uuid.UUID, req dto.DecisionRequest) (*dto.RequisitionResponse, error)
}

type requisitionService struct {
	repo       repository.RequisitionRepository
	rdb        *redis.Client
	dispatcher *worker.Dispatcher
}

func NewRequisitionService(repo repository.RequisitionRepository, rdb *redis.Client, dispatcher *worker.Dispatcher) RequisitionService {
	return &requisitionService{repo: repo, rdb: rdb, dispatcher: dispatcher}
}

func requisitionCacheKey(id uuid.UUID) string { return "requisition:" + id.String() }

// validateItems re-checks the domain rules independently of HTTP binding,
// so callers that reach the service directly get the same guarantees.
func validateItems(items []dto.RequisitionItemInput) error {
	if len(items) == 0 {
		return apperr.Validationf("a requisition needs at least one item")
	}
	for i, it := range items {
		if it.Description == "" {
			return apperr.Validationf("item %d: description is required", i+1)
		}
		if it.Quantity <= 0 {
			return apperr.Validationf("item %d: quantity must be positive", i+1)
		}
		if it.EstimatedCost.IsNegative() {
			return apperr.Validationf("item %d: estimated cost cannot be negative", i+1)
		}
	}
	return nil
}

func buildItems(inputs []dto.RequisitionItemInput) []model.RequisitionItem {
	items := make([]model.RequisitionItem, len(inputs))
	for i, in := range inputs {
		items[i] = model.RequisitionItem{
			Description:   in.Description,
			Quantity:      in.Quantity,
			EstimatedCost: in.EstimatedCost,
			SortOrder:     i + 1,
		}
	}
	return items
}

// warnOnTotalMismatch compares the caller-supplied total against the item
// sum. The stated total wins; the discrepancy is only logged.
func warnOnTotalMismatch(r *model.PurchaseRequisition) {
	sum := r.ItemSum()
	if !r.TotalEstimatedCost.Equal(sum) {
		log.Warn().
			Str("requisition_id", r.ID.String()).
			Str("stated_total", r.TotalEstimatedCost.String()).
			Str("item_sum", sum.String()).
			Msg("requisition total does not match item sum")
	}
}

func (s *requisitionService) Create(ctx context.Context, req dto.CreateRequisitionRequest) (*dto.RequisitionResponse, error) {
	if req.RequestedBy == "" {
		return nil, apperr.Validationf("requested_by is required")
	}
	if req.Department == "" {
		return nil, apperr.Validationf("department is required")
	}
	if err := validateItems(req.Items); err != nil {
		return nil, err
	}
	if req.TotalEstimatedCost.IsNegative() {
		return nil, apperr.Validationf("total_estimated_cost cannot be negative")
	}

	requisition := &model.PurchaseRequisition{
		RequestedBy:        req.RequestedBy,
		Department:         req.Department,
		TotalEstimatedCost: req.TotalEstimatedCost,
		Justification:      req.Justification,
		Status:             model.RequisitionDraft,
		Items:              buildItems(req.Items),
	}
	if err := s.repo.Create(ctx, requisition); err != nil {
		return nil, err
	}
	warnOnTotalMismatch(requisition)

	return toRequisitionResponse(requisition), nil
}

func (s *requisitionService) GetByID(ctx context.Context, id uuid.UUID) (*dto.RequisitionResponse, error) {
	key := requisitionCacheKey(id)
	var cached dto.RequisitionResponse
	if cacheGet(ctx, s.rdb, key, &cached) {
		return &cached, nil
	}

	requisition, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toRequisitionResponse(requisition)
	cacheSet(ctx, s.rdb, key, resp)
	return resp, nil
}

func (s *requisitionService) List(ctx context.Context, statusFilter string) ([]dto.RequisitionResponse, error) {
	var status *model.RequisitionStatus
	if statusFilter != "" {
		st := model.RequisitionStatus(statusFilter)
		if !st.Valid() {
			return nil, apperr.Validationf("unknown requisition status %q", statusFilter)
		}
		status = &st
	}

	requisitions, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RequisitionResponse, len(requisitions))
	for i := range requisitions {
		out[i] = *toRequisitionResponse(&requisitions[i])
	}
	return out, nil
}

func (s *requisitionService) ListPending(ctx context.Context) ([]dto.RequisitionResponse, error) {
	return s.List(ctx, string(model.RequisitionPendingApproval))
}

func (s *requisitionService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateRequisitionRequest) (*dto.RequisitionResponse, error) {
	if err := validateItems(req.Items); err != nil {
		return nil, err
	}
	if req.TotalEstimatedCost.IsNegative() {
		return nil, apperr.Validationf("total_estimated_cost cannot be negative")
	}

	requisition, err := s.repo.ReplaceDraft(ctx, id, buildItems(req.Items), req.TotalEstimatedCost, req.Justification)
	if err != nil {
		return nil, err
	}
	warnOnTotalMismatch(requisition)
	cacheDel(ctx, s.rdb, requisitionCacheKey(id))

	return toRequisitionResponse(requisition), nil
}

func (s *requisitionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteDraft(ctx, id); err != nil {
		return err
	}
	cacheDel(ctx, s.rdb, requisitionCacheKey(id))
	return nil
}

func (s *requisitionService) SubmitForApproval(ctx context.Context, id uuid.UUID) (*dto.RequisitionResponse, error) {
	// The requester signs the submission entry in the history.
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rec := model.ApprovalRecord{
		Action:       model.ActionSubmitted,
		ApproverName: current.RequestedBy,
		Timestamp:    time.Now().UTC(),
	}
	requisition, err := s.repo.Transition(ctx, id, model.RequisitionDraft, model.RequisitionPendingApproval, rec)
	if err != nil {
		return nil, err
	}
	cacheDel(ctx, s.rdb, requisitionCacheKey(id))
	s.notify(ctx, requisition, rec)

	return toRequisitionResponse(requisition), nil
}

func (s *requisitionService) Approve(ctx context.Context, id uuid.UUID, req dto.DecisionRequest) (*dto.RequisitionResponse, error) {
	if req.ApproverName == "" {
		return nil, apperr.Validationf("approver_name is required")
	}

	rec := model.ApprovalRecord{
		Action:       model.ActionApproved,
		ApproverName: req.ApproverName,
		Comments:     req.Comments,
		Timestamp:    time.Now().UTC(),
	}
	requisition, err := s.repo.Transition(ctx, id, model.RequisitionPendingApproval, model.RequisitionApproved, rec)
	if err != nil {
		return nil, err
	}
	cacheDel(ctx, s.rdb, requisitionCacheKey(id))
	s.notify(ctx, requisition, rec)

	return toRequisitionResponse(requisition), nil
}

func (s *requisitionService) Reject(ctx context.Context, id uuid.UUID, req dto.DecisionRequest) (*dto.RequisitionResponse, error) {
	if req.ApproverName == "" {
		return nil, apperr.Validationf("approver_name is required")
	}
	if req.Comments == "" {
		return nil, apperr.Validationf("rejection requires comments")
	}

	rec := model.ApprovalRecord{
		Action:       model.ActionRejected,
		ApproverName: req.ApproverName,
		Comments:     req.Comments,
		Timestamp:    time.Now().UTC(),
	}
	requisition, err := s.repo.Transition(ctx, id, model.RequisitionPendingApproval, model.RequisitionRejected, rec)
	if err != nil {
		return nil, err
	}
	cacheDel(ctx, s.rdb, requisitionCacheKey(id))
	s.notify(ctx, requisition, rec)

	return toRequisitionResponse(requisition), nil
}

// notify enqueues the lifecycle email. Best effort: the transition already
// committed, so a queueing failure is logged and swallowed.
func (s *requisitionService) notify(ctx context.Context, r *model.PurchaseRequisition, rec model.ApprovalRecord) {
	if s.dispatcher == nil {
		return
	}
	payload := worker.ApprovalNotificationPayload{
		RequisitionID: r.ID.String(),
		Action:        string(rec.Action),
		ActorName:     rec.ApproverName,
		Comments:      rec.Comments,
		Total:         r.TotalEstimatedCost.String(),
	}
	if err := s.dispatcher.EnqueueApprovalNotification(ctx, payload); err != nil {
		log.Error().
			Str("requisition_id", r.ID.String()).
			Err(err).
			Msg("failed to enqueue approval notification")
	}
}

func toRequisitionResponse(r *model.PurchaseRequisition) *dto.RequisitionResponse {
	items := make([]dto.RequisitionItemResponse, len(r.Items))
	for i, it := range r.Items {
		items[i] = dto.RequisitionItemResponse{
			Description:   it.Description,
			Quantity:      it.Quantity,
			EstimatedCost: it.EstimatedCost,
		}
	}
	history := make([]dto.ApprovalRecordResponse, len(r.ApprovalHistory))
	for i, rec := range r.ApprovalHistory {
		history[i] = dto.ApprovalRecordResponse{
			Action:       string(rec.Action),
			ApproverName: rec.ApproverName,
			Comments:     rec.Comments,
			Timestamp:    rec.Timestamp,
		}
	}
	return &dto.RequisitionResponse{
		ID:                 r.ID.String(),
		RequestedBy:        r.RequestedBy,
		Department:         r.Department,
		Items:              items,
		TotalEstimatedCost: r.TotalEstimatedCost,
		Justification:      r.Justification,
		Status:             string(r.Status),
		ApprovalHistory:    history,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}
