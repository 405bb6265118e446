package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

type WarehouseRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Warehouse) ([]*types.Warehouse, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Warehouse, error)
	GetByCode(ctx context.Context, tx *gorm.DB, code string) (*types.Warehouse, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Warehouse, error)
	Update(ctx context.Context, tx *gorm.DB, row *types.Warehouse) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type warehouseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWarehouseRepo(db *gorm.DB, baseLog *logger.Logger) WarehouseRepo {
	return &warehouseRepo{
		db:  db,
		log: baseLog.With("repo", "WarehouseRepo"),
	}
}

func (r *warehouseRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Warehouse) ([]*types.Warehouse, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return []*types.Warehouse{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *warehouseRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Warehouse, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.Warehouse
	err := transaction.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *warehouseRepo) GetByCode(ctx context.Context, tx *gorm.DB, code string) (*types.Warehouse, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.Warehouse
	err := transaction.WithContext(ctx).Where("code = ?", code).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *warehouseRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Warehouse, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var rows []*types.Warehouse
	if err := transaction.WithContext(ctx).Order("code ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *warehouseRepo) Update(ctx context.Context, tx *gorm.DB, row *types.Warehouse) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Save(row).Error
}

func (r *warehouseRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Warehouse{}).Error
}
