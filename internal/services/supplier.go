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

type SupplierService interface {
	Create(ctx context.Context, tx *gorm.DB, supplier *types.Supplier) (*types.Supplier, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Supplier, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Supplier, error)
	Update(ctx context.Context, tx *gorm.DB, supplier *types.Supplier) (*types.Supplier, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type supplierService struct {
	db           *gorm.DB
	log          *logger.Logger
	supplierRepo repos.SupplierRepo
}

func NewSupplierService(db *gorm.DB, baseLog *logger.Logger, supplierRepo repos.SupplierRepo) SupplierService {
	return &supplierService{
		db:           db,
		log:          baseLog.With("service", "SupplierService"),
		supplierRepo: supplierRepo,
	}
}

func (s *supplierService) Create(ctx context.Context, tx *gorm.DB, supplier *types.Supplier) (*types.Supplier, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}
	supplier.Code = strings.TrimSpace(supplier.Code)
	if supplier.Code == "" {
		return nil, fmt.Errorf("code is required")
	}
	existing, err := s.supplierRepo.GetByCode(ctx, transaction, supplier.Code)
	if err != nil {
		return nil, fmt.Errorf("lookup supplier: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("supplier %q already exists", supplier.Code)
	}
	if _, err := s.supplierRepo.Create(ctx, transaction, []*types.Supplier{supplier}); err != nil {
		s.log.Error("Create supplier failed", "code", supplier.Code, "error", err)
		return nil, fmt.Errorf("create supplier: %w", err)
	}
	return supplier, nil
}

func (s *supplierService) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Supplier, error) {
	return s.supplierRepo.GetByID(ctx, tx, id)
}

func (s *supplierService) List(ctx context.Context, tx *gorm.DB) ([]*types.Supplier, error) {
	return s.supplierRepo.List(ctx, tx)
}

func (s *supplierService) Update(ctx context.Context, tx *gorm.DB, supplier *types.Supplier) (*types.Supplier, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}
	if err := s.supplierRepo.Update(ctx, transaction, supplier); err != nil {
		s.log.Error("Update supplier failed", "id", supplier.ID, "error", err)
		return nil, fmt.Errorf("update supplier: %w", err)
	}
	return supplier, nil
}

func (s *supplierService) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return s.supplierRepo.Delete(ctx, tx, id)
}
