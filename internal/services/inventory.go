package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/repos"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

type SnapshotService interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.InventorySnapshot) ([]*types.InventorySnapshot, error)
	List(ctx context.Context, tx *gorm.DB, sku, warehouseCode string) ([]*types.InventorySnapshot, error)
}

type snapshotService struct {
	db           *gorm.DB
	log          *logger.Logger
	snapshotRepo repos.SnapshotRepo
}

func NewSnapshotService(db *gorm.DB, baseLog *logger.Logger, snapshotRepo repos.SnapshotRepo) SnapshotService {
	return &snapshotService{
		db:           db,
		log:          baseLog.With("service", "SnapshotService"),
		snapshotRepo: snapshotRepo,
	}
}

func (s *snapshotService) Create(ctx context.Context, tx *gorm.DB, rows []*types.InventorySnapshot) ([]*types.InventorySnapshot, error) {
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
		if row.OnHandQty.IsNegative() {
			return nil, fmt.Errorf("row %d: on_hand_qty must be non-negative", i)
		}
	}
	created, err := s.snapshotRepo.Create(ctx, transaction, rows)
	if err != nil {
		s.log.Error("Create snapshots failed", "count", len(rows), "error", err)
		return nil, fmt.Errorf("create snapshots: %w", err)
	}
	return created, nil
}

func (s *snapshotService) List(ctx context.Context, tx *gorm.DB, sku, warehouseCode string) ([]*types.InventorySnapshot, error) {
	return s.snapshotRepo.List(ctx, tx, sku, warehouseCode)
}
