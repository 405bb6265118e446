package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/repos"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

type DemandService interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.DemandActual) ([]*types.DemandActual, error)
	List(ctx context.Context, tx *gorm.DB, sku, warehouseCode string) ([]*types.DemandActual, error)
}

type demandService struct {
	db         *gorm.DB
	log        *logger.Logger
	demandRepo repos.DemandRepo
}

func NewDemandService(db *gorm.DB, baseLog *logger.Logger, demandRepo repos.DemandRepo) DemandService {
	return &demandService{
		db:         db,
		log:        baseLog.With("service", "DemandService"),
		demandRepo: demandRepo,
	}
}

func (s *demandService) Create(ctx context.Context, tx *gorm.DB, rows []*types.DemandActual) ([]*types.DemandActual, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}
	for i, row := range rows {
		if row.SKU == "" || row.WarehouseCode == "" {
			return nil, fmt.Errorf("row %d: sku and warehouse_code are required", i)
		}
		if !isMondayDate(row.WeekStart) {
			return nil, fmt.Errorf("row %d: week_start %s is not a Monday", i, row.WeekStart.Format("2006-01-02"))
		}
		if !row.DemandType.Valid() {
			return nil, fmt.Errorf("row %d: unknown demand_type %q", i, row.DemandType)
		}
		// Only adjustments may go negative; sales and samples are volumes.
		if row.Qty.IsNegative() && row.DemandType != types.DemandTypeAdjustment {
			return nil, fmt.Errorf("row %d: qty must be non-negative for demand_type %s", i, row.DemandType)
		}
	}
	created, err := s.demandRepo.Create(ctx, transaction, rows)
	if err != nil {
		s.log.Error("Create demand actuals failed", "count", len(rows), "error", err)
		return nil, fmt.Errorf("create demand actuals: %w", err)
	}
	return created, nil
}

func (s *demandService) List(ctx context.Context, tx *gorm.DB, sku, warehouseCode string) ([]*types.DemandActual, error) {
	return s.demandRepo.List(ctx, tx, sku, warehouseCode)
}
