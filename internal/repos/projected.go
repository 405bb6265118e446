package repos

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

type ProjectedRepo interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, rows []*types.ProjectedInventory) ([]*types.ProjectedInventory, error)
	ListByRun(ctx context.Context, tx *gorm.DB, runID uuid.UUID, sku, warehouseCode string) ([]*types.ProjectedInventory, error)
	GetByRunPairWeek(ctx context.Context, tx *gorm.DB, runID uuid.UUID, sku, warehouseCode string, weekStart time.Time) (*types.ProjectedInventory, error)
}

type projectedRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProjectedRepo(db *gorm.DB, baseLog *logger.Logger) ProjectedRepo {
	return &projectedRepo{
		db:  db,
		log: baseLog.With("repo", "ProjectedRepo"),
	}
}

func (r *projectedRepo) CreateBatch(ctx context.Context, tx *gorm.DB, rows []*types.ProjectedInventory) ([]*types.ProjectedInventory, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return []*types.ProjectedInventory{}, nil
	}
	if err := transaction.WithContext(ctx).CreateInBatches(&rows, 500).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *projectedRepo) ListByRun(ctx context.Context, tx *gorm.DB, runID uuid.UUID, sku, warehouseCode string) ([]*types.ProjectedInventory, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&types.ProjectedInventory{}).Where("plan_run_id = ?", runID)
	if sku != "" {
		q = q.Where("sku = ?", sku)
	}
	if warehouseCode != "" {
		q = q.Where("warehouse_code = ?", warehouseCode)
	}
	var rows []*types.ProjectedInventory
	if err := q.Order("sku ASC, warehouse_code ASC, week_start ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *projectedRepo) GetByRunPairWeek(ctx context.Context, tx *gorm.DB, runID uuid.UUID, sku, warehouseCode string, weekStart time.Time) (*types.ProjectedInventory, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.ProjectedInventory
	if err := transaction.WithContext(ctx).
		Where("plan_run_id = ? AND sku = ? AND warehouse_code = ? AND week_start = ?", runID, sku, warehouseCode, weekStart).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
