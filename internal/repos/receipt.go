package repos

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

type ReceiptRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Receipt) ([]*types.Receipt, error)
	Upsert(ctx context.Context, tx *gorm.DB, rows []*types.Receipt) error
	List(ctx context.Context, tx *gorm.DB, sku, warehouseCode string) ([]*types.Receipt, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Receipt, error)
}

type receiptRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReceiptRepo(db *gorm.DB, baseLog *logger.Logger) ReceiptRepo {
	return &receiptRepo{
		db:  db,
		log: baseLog.With("repo", "ReceiptRepo"),
	}
}

func (r *receiptRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Receipt) ([]*types.Receipt, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return []*types.Receipt{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *receiptRepo) Upsert(ctx context.Context, tx *gorm.DB, rows []*types.Receipt) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "week_start"}, {Name: "sku"}, {Name: "warehouse_code"}, {Name: "source_type"}},
			DoUpdates: clause.AssignmentColumns([]string{"qty"}),
		}).
		Create(&rows).Error
}

func (r *receiptRepo) List(ctx context.Context, tx *gorm.DB, sku, warehouseCode string) ([]*types.Receipt, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&types.Receipt{})
	if sku != "" {
		q = q.Where("sku = ?", sku)
	}
	if warehouseCode != "" {
		q = q.Where("warehouse_code = ?", warehouseCode)
	}
	var rows []*types.Receipt
	if err := q.Order("week_start ASC, sku ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *receiptRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Receipt, error) {
	return r.List(ctx, tx, "", "")
}
