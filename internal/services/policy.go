package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/planning"
	"github.com/yungbote/supplyplan-backend/internal/repos"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

type PolicyService interface {
	Create(ctx context.Context, tx *gorm.DB, policy *types.PlanningPolicy) (*types.PlanningPolicy, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.PlanningPolicy, error)
	GetByPair(ctx context.Context, tx *gorm.DB, sku, warehouseCode string) (*types.PlanningPolicy, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.PlanningPolicy, error)
	Update(ctx context.Context, tx *gorm.DB, policy *types.PlanningPolicy) (*types.PlanningPolicy, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type policyService struct {
	db         *gorm.DB
	log        *logger.Logger
	policyRepo repos.PolicyRepo
}

func NewPolicyService(db *gorm.DB, baseLog *logger.Logger, policyRepo repos.PolicyRepo) PolicyService {
	return &policyService{
		db:         db,
		log:        baseLog.With("service", "PolicyService"),
		policyRepo: policyRepo,
	}
}

func (s *policyService) Create(ctx context.Context, tx *gorm.DB, policy *types.PlanningPolicy) (*types.PlanningPolicy, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}
	policy.SKU = strings.TrimSpace(policy.SKU)
	policy.WarehouseCode = strings.TrimSpace(policy.WarehouseCode)
	if policy.SKU == "" || policy.WarehouseCode == "" {
		return nil, fmt.Errorf("sku and warehouse_code are required")
	}
	if err := planning.ValidatePolicy(*policy); err != nil {
		return nil, err
	}
	existing, err := s.policyRepo.GetByPair(ctx, transaction, policy.SKU, policy.WarehouseCode)
	if err != nil {
		return nil, fmt.Errorf("lookup policy: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("policy for %s@%s already exists", policy.SKU, policy.WarehouseCode)
	}
	if _, err := s.policyRepo.Create(ctx, transaction, []*types.PlanningPolicy{policy}); err != nil {
		s.log.Error("Create policy failed", "sku", policy.SKU, "warehouse", policy.WarehouseCode, "error", err)
		return nil, fmt.Errorf("create policy: %w", err)
	}
	return policy, nil
}

func (s *policyService) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.PlanningPolicy, error) {
	return s.policyRepo.GetByID(ctx, tx, id)
}

func (s *policyService) GetByPair(ctx context.Context, tx *gorm.DB, sku, warehouseCode string) (*types.PlanningPolicy, error) {
	return s.policyRepo.GetByPair(ctx, tx, sku, warehouseCode)
}

func (s *policyService) List(ctx context.Context, tx *gorm.DB) ([]*types.PlanningPolicy, error) {
	return s.policyRepo.List(ctx, tx)
}

func (s *policyService) Update(ctx context.Context, tx *gorm.DB, policy *types.PlanningPolicy) (*types.PlanningPolicy, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}
	if err := planning.ValidatePolicy(*policy); err != nil {
		return nil, err
	}
	if err := s.policyRepo.Update(ctx, transaction, policy); err != nil {
		s.log.Error("Update policy failed", "id", policy.ID, "error", err)
		return nil, fmt.Errorf("update policy: %w", err)
	}
	return policy, nil
}

func (s *policyService) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return s.policyRepo.Delete(ctx, tx, id)
}
