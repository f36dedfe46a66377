package repository

import (
	"context"
	"errors"

	"github.com/caffeinepub/supply-chain-management-app/internal/apperr"
	"github.com/caffeinepub/supply-chain-management-app/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RequisitionRepository persists purchase requisitions together with their
// owned items and approval history. Every mutating method is a single
// transaction that re-reads the row FOR UPDATE, so concurrent transitions on
// one id serialize at the store and the loser sees InvalidStateError — the
// state machine never degrades to last-writer-wins.
type RequisitionRepository interface {
	Create(ctx context.Context, r *model.PurchaseRequisition) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PurchaseRequisition, error)
	List(ctx context.Context, status *model.RequisitionStatus) ([]model.PurchaseRequisition, error)
	// ReplaceDraft swaps items/cost/justification of a draft requisition.
	ReplaceDraft(ctx context.Context, id uuid.UUID, items []model.RequisitionItem, total decimal.Decimal, justification string) (*model.PurchaseRequisition, error)
	// DeleteDraft removes a requisition and its children, draft-only.
	DeleteDraft(ctx context.Context, id uuid.UUID) error
	// Transition is the compare-and-swap status change: it fails with
	// InvalidStateError unless the row still has status `from`, then writes
	// the new status and appends rec atomically.
	Transition(ctx context.Context, id uuid.UUID, from, to model.RequisitionStatus, rec model.ApprovalRecord) (*model.PurchaseRequisition, error)
}

type requisitionRepo struct{ db *gorm.DB }

func NewRequisitionRepository(db *gorm.DB) RequisitionRepository {
	return &requisitionRepo{db: db}
}

func (r *requisitionRepo) Create(ctx context.Context, req *model.PurchaseRequisition) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *requisitionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.PurchaseRequisition, error) {
	return findRequisition(r.db.WithContext(ctx), id)
}

func (r *requisitionRepo) List(ctx context.Context, status *model.RequisitionStatus) ([]model.PurchaseRequisition, error) {
	var reqs []model.PurchaseRequisition
	q := r.db.WithContext(ctx).
		Preload("Items", itemOrder).
		Preload("ApprovalHistory", historyOrder).
		Order("created_at DESC")
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	err := q.Find(&reqs).Error
	return reqs, err
}

func (r *requisitionRepo) ReplaceDraft(ctx context.Context, id uuid.UUID, items []model.RequisitionItem, total decimal.Decimal, justification string) (*model.PurchaseRequisition, error) {
	var out *model.PurchaseRequisition
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		req, err := lockRequisition(tx, id)
		if err != nil {
			return err
		}
		if req.Status != model.RequisitionDraft {
			return &apperr.InvalidStateError{Entity: "requisition", ID: id.String(), Current: string(req.Status), Op: "update"}
		}

		// Items are owned values: replace the whole set.
		if err := tx.Where("requisition_id = ?", id).Delete(&model.RequisitionItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].RequisitionID = id
			items[i].SortOrder = i + 1
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.PurchaseRequisition{}).Where("id = ?", id).Updates(map[string]any{
			"total_estimated_cost": total,
			"justification":        justification,
		}).Error; err != nil {
			return err
		}

		out, err = findRequisition(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *requisitionRepo) DeleteDraft(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		req, err := lockRequisition(tx, id)
		if err != nil {
			return err
		}
		if req.Status != model.RequisitionDraft {
			return &apperr.InvalidStateError{Entity: "requisition", ID: id.String(), Current: string(req.Status), Op: "delete"}
		}
		if err := tx.Where("requisition_id = ?", id).Delete(&model.RequisitionItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("requisition_id = ?", id).Delete(&model.ApprovalRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.PurchaseRequisition{}, "id = ?", id).Error
	})
}

func (r *requisitionRepo) Transition(ctx context.Context, id uuid.UUID, from, to model.RequisitionStatus, rec model.ApprovalRecord) (*model.PurchaseRequisition, error) {
	var out *model.PurchaseRequisition
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		req, err := lockRequisition(tx, id)
		if err != nil {
			return err
		}
		if req.Status != from {
			return &apperr.InvalidStateError{Entity: "requisition", ID: id.String(), Current: string(req.Status), Op: transitionOp(rec.Action)}
		}

		if err := tx.Model(&model.PurchaseRequisition{}).Where("id = ?", id).
			Update("status", to).Error; err != nil {
			return err
		}

		// Append-only history: sort_order continues the sequence so insertion
		// order stays recoverable even with equal timestamps.
		var count int64
		if err := tx.Model(&model.ApprovalRecord{}).Where("requisition_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		rec.RequisitionID = id
		rec.SortOrder = int(count) + 1
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}

		out, err = findRequisition(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func itemOrder(db *gorm.DB) *gorm.DB    { return db.Order("sort_order") }
func historyOrder(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }

func findRequisition(db *gorm.DB, id uuid.UUID) (*model.PurchaseRequisition, error) {
	var req model.PurchaseRequisition
	err := db.
		Preload("Items", itemOrder).
		Preload("ApprovalHistory", historyOrder).
		First(&req, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperr.NotFoundError{Entity: "requisition", ID: id.String()}
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// lockRequisition reads the bare row FOR UPDATE inside tx.
func lockRequisition(tx *gorm.DB, id uuid.UUID) (*model.PurchaseRequisition, error) {
	var req model.PurchaseRequisition
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&req, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperr.NotFoundError{Entity: "requisition", ID: id.String()}
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func transitionOp(action model.ApprovalAction) string {
	switch action {
	case model.ActionSubmitted:
		return "submit for approval"
	case model.ActionApproved:
		return "approve"
	case model.ActionRejected:
		return "reject"
	default:
		return string(action)
	}
}
