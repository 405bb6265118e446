package repos

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

type DemandRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.DemandActual) ([]*types.DemandActual, error)
	Upsert(ctx context.Context, tx *gorm.DB, rows []*types.DemandActual) error
	List(ctx context.Context, tx *gorm.DB, sku, warehouseCode string) ([]*types.DemandActual, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.DemandActual, error)
}

type demandRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDemandRepo(db *gorm.DB, baseLog *logger.Logger) DemandRepo {
	return &demandRepo{
		db:  db,
		log: baseLog.With("repo", "DemandRepo"),
	}
}

func (r *demandRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.DemandActual) ([]*types.DemandActual, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return []*types.DemandActual{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *demandRepo) Upsert(ctx context.Context, tx *gorm.DB, rows []*types.DemandActual) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "week_start"}, {Name: "sku"}, {Name: "warehouse_code"}, {Name: "demand_type"}},
			DoUpdates: clause.AssignmentColumns([]string{"qty"}),
		}).
		Create(&rows).Error
}

func (r *demandRepo) List(ctx context.Context, tx *gorm.DB, sku, warehouseCode string) ([]*types.DemandActual, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&types.DemandActual{})
	if sku != "" {
		q = q.Where("sku = ?", sku)
	}
	if warehouseCode != "" {
		q = q.Where("warehouse_code = ?", warehouseCode)
	}
	var rows []*types.DemandActual
	if err := q.Order("week_start ASC, sku ASC, demand_type ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *demandRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.DemandActual, error) {
	return r.List(ctx, tx, "", "")
}
