package repos

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

type SnapshotRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.InventorySnapshot) ([]*types.InventorySnapshot, error)
	// Upsert writes rows keyed on (week_start, sku, warehouse_code),
	// replacing on_hand_qty when the key already exists.
	Upsert(ctx context.Context, tx *gorm.DB, rows []*types.InventorySnapshot) error
	List(ctx context.Context, tx *gorm.DB, sku, warehouseCode string) ([]*types.InventorySnapshot, error)
	// ListAtOrBefore returns every snapshot with week_start <= cutoff, the
	// run loader's raw material for picking each pair's seeding row.
	ListAtOrBefore(ctx context.Context, tx *gorm.DB, cutoff time.Time) ([]*types.InventorySnapshot, error)
}

type snapshotRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSnapshotRepo(db *gorm.DB, baseLog *logger.Logger) SnapshotRepo {
	return &snapshotRepo{
		db:  db,
		log: baseLog.With("repo", "SnapshotRepo"),
	}
}

func (r *snapshotRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.InventorySnapshot) ([]*types.InventorySnapshot, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return []*types.InventorySnapshot{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *snapshotRepo) Upsert(ctx context.Context, tx *gorm.DB, rows []*types.InventorySnapshot) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "week_start"}, {Name: "sku"}, {Name: "warehouse_code"}},
			DoUpdates: clause.AssignmentColumns([]string{"on_hand_qty"}),
		}).
		Create(&rows).Error
}

func (r *snapshotRepo) List(ctx context.Context, tx *gorm.DB, sku, warehouseCode string) ([]*types.InventorySnapshot, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&types.InventorySnapshot{})
	if sku != "" {
		q = q.Where("sku = ?", sku)
	}
	if warehouseCode != "" {
		q = q.Where("warehouse_code = ?", warehouseCode)
	}
	var rows []*types.InventorySnapshot
	if err := q.Order("week_start ASC, sku ASC, warehouse_code ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *snapshotRepo) ListAtOrBefore(ctx context.Context, tx *gorm.DB, cutoff time.Time) ([]*types.InventorySnapshot, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var rows []*types.InventorySnapshot
	err := transaction.WithContext(ctx).
		Where("week_start <= ?", cutoff).
		Order("week_start ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
