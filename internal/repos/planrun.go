package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

type PlanRunRepo interface {
	Create(ctx context.Context, tx *gorm.DB, run *types.PlanRun) (*types.PlanRun, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, runID uuid.UUID, fields map[string]interface{}) error
	GetByID(ctx context.Context, tx *gorm.DB, runID uuid.UUID) (*types.PlanRun, error)
	ListByRecency(ctx context.Context, tx *gorm.DB, limit int) ([]*types.PlanRun, error)
}

type planRunRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPlanRunRepo(db *gorm.DB, baseLog *logger.Logger) PlanRunRepo {
	return &planRunRepo{
		db:  db,
		log: baseLog.With("repo", "PlanRunRepo"),
	}
}

func (r *planRunRepo) Create(ctx context.Context, tx *gorm.DB, run *types.PlanRun) (*types.PlanRun, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(run).Error; err != nil {
		return nil, err
	}
	return run, nil
}

func (r *planRunRepo) UpdateFields(ctx context.Context, tx *gorm.DB, runID uuid.UUID, fields map[string]interface{}) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.PlanRun{}).
		Where("id = ?", runID).
		Updates(fields).Error
}

func (r *planRunRepo) GetByID(ctx context.Context, tx *gorm.DB, runID uuid.UUID) (*types.PlanRun, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var run types.PlanRun
	if err := transaction.WithContext(ctx).
		Where("id = ?", runID).
		First(&run).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

func (r *planRunRepo) ListByRecency(ctx context.Context, tx *gorm.DB, limit int) ([]*types.PlanRun, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&types.PlanRun{}).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var runs []*types.PlanRun
	if err := q.Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}
