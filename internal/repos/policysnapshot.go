package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

type PolicySnapshotRepo interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, rows []*types.PlanPolicySnapshot) ([]*types.PlanPolicySnapshot, error)
	GetByRunPair(ctx context.Context, tx *gorm.DB, runID uuid.UUID, sku, warehouseCode string) (*types.PlanPolicySnapshot, error)
	ListByRun(ctx context.Context, tx *gorm.DB, runID uuid.UUID) ([]*types.PlanPolicySnapshot, error)
}

type policySnapshotRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPolicySnapshotRepo(db *gorm.DB, baseLog *logger.Logger) PolicySnapshotRepo {
	return &policySnapshotRepo{
		db:  db,
		log: baseLog.With("repo", "PolicySnapshotRepo"),
	}
}

func (r *policySnapshotRepo) CreateBatch(ctx context.Context, tx *gorm.DB, rows []*types.PlanPolicySnapshot) ([]*types.PlanPolicySnapshot, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return []*types.PlanPolicySnapshot{}, nil
	}
	if err := transaction.WithContext(ctx).CreateInBatches(&rows, 200).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *policySnapshotRepo) GetByRunPair(ctx context.Context, tx *gorm.DB, runID uuid.UUID, sku, warehouseCode string) (*types.PlanPolicySnapshot, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var snap types.PlanPolicySnapshot
	if err := transaction.WithContext(ctx).
		Where("plan_run_id = ? AND sku = ? AND warehouse_code = ?", runID, sku, warehouseCode).
		First(&snap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &snap, nil
}

func (r *policySnapshotRepo) ListByRun(ctx context.Context, tx *gorm.DB, runID uuid.UUID) ([]*types.PlanPolicySnapshot, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var rows []*types.PlanPolicySnapshot
	if err := transaction.WithContext(ctx).
		Where("plan_run_id = ?", runID).
		Order("sku ASC, warehouse_code ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
