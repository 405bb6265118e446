package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/repos"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

type ReceiptService interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Receipt) ([]*types.Receipt, error)
	List(ctx context.Context, tx *gorm.DB, sku, warehouseCode string) ([]*types.Receipt, error)
}

type receiptService struct {
	db          *gorm.DB
	log         *logger.Logger
	receiptRepo repos.ReceiptRepo
}

func NewReceiptService(db *gorm.DB, baseLog *logger.Logger, receiptRepo repos.ReceiptRepo) ReceiptService {
	return &receiptService{
		db:          db,
		log:         baseLog.With("service", "ReceiptService"),
		receiptRepo: receiptRepo,
	}
}

func (s *receiptService) Create(ctx context.Context, tx *gorm.DB, rows []*types.Receipt) ([]*types.Receipt, error) {
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
		if !row.Qty.IsPositive() {
			return nil, fmt.Errorf("row %d: qty must be positive", i)
		}
	}
	created, err := s.receiptRepo.Create(ctx, transaction, rows)
	if err != nil {
		s.log.Error("Create receipts failed", "count", len(rows), "error", err)
		return nil, fmt.Errorf("create receipts: %w", err)
	}
	return created, nil
}

func (s *receiptService) List(ctx context.Context, tx *gorm.DB, sku, warehouseCode string) ([]*types.Receipt, error) {
	return s.receiptRepo.List(ctx, tx, sku, warehouseCode)
}
