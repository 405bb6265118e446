package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

type SupplierRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Supplier) ([]*types.Supplier, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Supplier, error)
	GetByCode(ctx context.Context, tx *gorm.DB, code string) (*types.Supplier, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Supplier, error)
	Update(ctx context.Context, tx *gorm.DB, row *types.Supplier) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type supplierRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSupplierRepo(db *gorm.DB, baseLog *logger.Logger) SupplierRepo {
	return &supplierRepo{
		db:  db,
		log: baseLog.With("repo", "SupplierRepo"),
	}
}

func (r *supplierRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Supplier) ([]*types.Supplier, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return []*types.Supplier{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *supplierRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Supplier, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.Supplier
	err := transaction.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *supplierRepo) GetByCode(ctx context.Context, tx *gorm.DB, code string) (*types.Supplier, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.Supplier
	err := transaction.WithContext(ctx).Where("code = ?", code).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *supplierRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Supplier, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var rows []*types.Supplier
	if err := transaction.WithContext(ctx).Order("code ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *supplierRepo) Update(ctx context.Context, tx *gorm.DB, row *types.Supplier) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Save(row).Error
}

func (r *supplierRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Supplier{}).Error
}
