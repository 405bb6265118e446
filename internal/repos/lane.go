package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

type LaneRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Lane) ([]*types.Lane, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Lane, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Lane, error)
	Update(ctx context.Context, tx *gorm.DB, row *types.Lane) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type laneRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLaneRepo(db *gorm.DB, baseLog *logger.Logger) LaneRepo {
	return &laneRepo{
		db:  db,
		log: baseLog.With("repo", "LaneRepo"),
	}
}

func (r *laneRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Lane) ([]*types.Lane, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return []*types.Lane{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *laneRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Lane, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.Lane
	err := transaction.WithContext(ctx).
		Preload("Supplier").
		Preload("Warehouse").
		Where("id = ?", id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *laneRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Lane, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var rows []*types.Lane
	err := transaction.WithContext(ctx).
		Preload("Supplier").
		Preload("Warehouse").
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *laneRepo) Update(ctx context.Context, tx *gorm.DB, row *types.Lane) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Save(row).Error
}

func (r *laneRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Lane{}).Error
}
