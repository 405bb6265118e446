package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

type PlannedOrderRepo interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, rows []*types.PlannedOrder) ([]*types.PlannedOrder, error)
	ListByRun(ctx context.Context, tx *gorm.DB, runID uuid.UUID, sku, warehouseCode string) ([]*types.PlannedOrder, error)
}

type plannedOrderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPlannedOrderRepo(db *gorm.DB, baseLog *logger.Logger) PlannedOrderRepo {
	return &plannedOrderRepo{
		db:  db,
		log: baseLog.With("repo", "PlannedOrderRepo"),
	}
}

func (r *plannedOrderRepo) CreateBatch(ctx context.Context, tx *gorm.DB, rows []*types.PlannedOrder) ([]*types.PlannedOrder, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return []*types.PlannedOrder{}, nil
	}
	if err := transaction.WithContext(ctx).CreateInBatches(&rows, 500).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *plannedOrderRepo) ListByRun(ctx context.Context, tx *gorm.DB, runID uuid.UUID, sku, warehouseCode string) ([]*types.PlannedOrder, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&types.PlannedOrder{}).Where("plan_run_id = ?", runID)
	if sku != "" {
		q = q.Where("sku = ?", sku)
	}
	if warehouseCode != "" {
		q = q.Where("warehouse_code = ?", warehouseCode)
	}
	var rows []*types.PlannedOrder
	if err := q.Order("sku ASC, warehouse_code ASC, week_start ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
