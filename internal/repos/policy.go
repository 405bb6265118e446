package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

type PolicyRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.PlanningPolicy) ([]*types.PlanningPolicy, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.PlanningPolicy, error)
	// GetByPair is the resolver lookup: nil when no explicit policy row
	// exists for the pair.
	GetByPair(ctx context.Context, tx *gorm.DB, sku, warehouseCode string) (*types.PlanningPolicy, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.PlanningPolicy, error)
	Update(ctx context.Context, tx *gorm.DB, row *types.PlanningPolicy) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type policyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPolicyRepo(db *gorm.DB, baseLog *logger.Logger) PolicyRepo {
	return &policyRepo{
		db:  db,
		log: baseLog.With("repo", "PolicyRepo"),
	}
}

func (r *policyRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.PlanningPolicy) ([]*types.PlanningPolicy, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return []*types.PlanningPolicy{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *policyRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.PlanningPolicy, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.PlanningPolicy
	err := transaction.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *policyRepo) GetByPair(ctx context.Context, tx *gorm.DB, sku, warehouseCode string) (*types.PlanningPolicy, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.PlanningPolicy
	err := transaction.WithContext(ctx).
		Where("sku = ? AND warehouse_code = ?", sku, warehouseCode).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *policyRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.PlanningPolicy, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var rows []*types.PlanningPolicy
	err := transaction.WithContext(ctx).
		Order("sku ASC, warehouse_code ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *policyRepo) Update(ctx context.Context, tx *gorm.DB, row *types.PlanningPolicy) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Save(row).Error
}

func (r *policyRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.PlanningPolicy{}).Error
}
