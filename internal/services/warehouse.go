package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/repos"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

type WarehouseService interface {
	Create(ctx context.Context, tx *gorm.DB, warehouse *types.Warehouse) (*types.Warehouse, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Warehouse, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Warehouse, error)
	Update(ctx context.Context, tx *gorm.DB, warehouse *types.Warehouse) (*types.Warehouse, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type warehouseService struct {
	db            *gorm.DB
	log           *logger.Logger
	warehouseRepo repos.WarehouseRepo
}

func NewWarehouseService(db *gorm.DB, baseLog *logger.Logger, warehouseRepo repos.WarehouseRepo) WarehouseService {
	return &warehouseService{
		db:            db,
		log:           baseLog.With("service", "WarehouseService"),
		warehouseRepo: warehouseRepo,
	}
}

func (s *warehouseService) Create(ctx context.Context, tx *gorm.DB, warehouse *types.Warehouse) (*types.Warehouse, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}
	warehouse.Code = strings.TrimSpace(warehouse.Code)
	if warehouse.Code == "" {
		return nil, fmt.Errorf("code is required")
	}
	existing, err := s.warehouseRepo.GetByCode(ctx, transaction, warehouse.Code)
	if err != nil {
		return nil, fmt.Errorf("lookup warehouse: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("warehouse %q already exists", warehouse.Code)
	}
	if _, err := s.warehouseRepo.Create(ctx, transaction, []*types.Warehouse{warehouse}); err != nil {
		s.log.Error("Create warehouse failed", "code", warehouse.Code, "error", err)
		return nil, fmt.Errorf("create warehouse: %w", err)
	}
	return warehouse, nil
}

func (s *warehouseService) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Warehouse, error) {
	return s.warehouseRepo.GetByID(ctx, tx, id)
}

func (s *warehouseService) List(ctx context.Context, tx *gorm.DB) ([]*types.Warehouse, error) {
	return s.warehouseRepo.List(ctx, tx)
}

func (s *warehouseService) Update(ctx context.Context, tx *gorm.DB, warehouse *types.Warehouse) (*types.Warehouse, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}
	if err := s.warehouseRepo.Update(ctx, transaction, warehouse); err != nil {
		s.log.Error("Update warehouse failed", "id", warehouse.ID, "error", err)
		return nil, fmt.Errorf("update warehouse: %w", err)
	}
	return warehouse, nil
}

func (s *warehouseService) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return s.warehouseRepo.Delete(ctx, tx, id)
}
