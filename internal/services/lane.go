package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/repos"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

type LaneService interface {
	Create(ctx context.Context, tx *gorm.DB, lane *types.Lane) (*types.Lane, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Lane, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Lane, error)
	Update(ctx context.Context, tx *gorm.DB, lane *types.Lane) (*types.Lane, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type laneService struct {
	db            *gorm.DB
	log           *logger.Logger
	laneRepo      repos.LaneRepo
	supplierRepo  repos.SupplierRepo
	warehouseRepo repos.WarehouseRepo
}

func NewLaneService(
	db *gorm.DB,
	baseLog *logger.Logger,
	laneRepo repos.LaneRepo,
	supplierRepo repos.SupplierRepo,
	warehouseRepo repos.WarehouseRepo,
) LaneService {
	return &laneService{
		db:            db,
		log:           baseLog.With("service", "LaneService"),
		laneRepo:      laneRepo,
		supplierRepo:  supplierRepo,
		warehouseRepo: warehouseRepo,
	}
}

func (s *laneService) Create(ctx context.Context, tx *gorm.DB, lane *types.Lane) (*types.Lane, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}
	supplier, err := s.supplierRepo.GetByID(ctx, transaction, lane.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("lookup supplier: %w", err)
	}
	if supplier == nil {
		return nil, fmt.Errorf("supplier %s not found", lane.SupplierID)
	}
	warehouse, err := s.warehouseRepo.GetByID(ctx, transaction, lane.WarehouseID)
	if err != nil {
		return nil, fmt.Errorf("lookup warehouse: %w", err)
	}
	if warehouse == nil {
		return nil, fmt.Errorf("warehouse %s not found", lane.WarehouseID)
	}
	if _, err := s.laneRepo.Create(ctx, transaction, []*types.Lane{lane}); err != nil {
		s.log.Error("Create lane failed", "error", err)
		return nil, fmt.Errorf("create lane: %w", err)
	}
	return lane, nil
}

func (s *laneService) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Lane, error) {
	return s.laneRepo.GetByID(ctx, tx, id)
}

func (s *laneService) List(ctx context.Context, tx *gorm.DB) ([]*types.Lane, error) {
	return s.laneRepo.List(ctx, tx)
}

func (s *laneService) Update(ctx context.Context, tx *gorm.DB, lane *types.Lane) (*types.Lane, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}
	if err := s.laneRepo.Update(ctx, transaction, lane); err != nil {
		s.log.Error("Update lane failed", "id", lane.ID, "error", err)
		return nil, fmt.Errorf("update lane: %w", err)
	}
	return lane, nil
}

func (s *laneService) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return s.laneRepo.Delete(ctx, tx, id)
}
