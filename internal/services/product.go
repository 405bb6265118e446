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

type ProductService interface {
	Create(ctx context.Context, tx *gorm.DB, product *types.Product) (*types.Product, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Product, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Product, error)
	Update(ctx context.Context, tx *gorm.DB, product *types.Product) (*types.Product, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type productService struct {
	db          *gorm.DB
	log         *logger.Logger
	productRepo repos.ProductRepo
}

func NewProductService(db *gorm.DB, baseLog *logger.Logger, productRepo repos.ProductRepo) ProductService {
	return &productService{
		db:          db,
		log:         baseLog.With("service", "ProductService"),
		productRepo: productRepo,
	}
}

func (s *productService) Create(ctx context.Context, tx *gorm.DB, product *types.Product) (*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}
	product.SKU = strings.TrimSpace(product.SKU)
	if product.SKU == "" {
		return nil, fmt.Errorf("sku is required")
	}
	existing, err := s.productRepo.GetBySKU(ctx, transaction, product.SKU)
	if err != nil {
		return nil, fmt.Errorf("lookup product: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("product %q already exists", product.SKU)
	}
	if _, err := s.productRepo.Create(ctx, transaction, []*types.Product{product}); err != nil {
		s.log.Error("Create product failed", "sku", product.SKU, "error", err)
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

func (s *productService) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Product, error) {
	return s.productRepo.GetByID(ctx, tx, id)
}

func (s *productService) List(ctx context.Context, tx *gorm.DB) ([]*types.Product, error) {
	return s.productRepo.List(ctx, tx)
}

func (s *productService) Update(ctx context.Context, tx *gorm.DB, product *types.Product) (*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}
	if err := s.productRepo.Update(ctx, transaction, product); err != nil {
		s.log.Error("Update product failed", "id", product.ID, "error", err)
		return nil, fmt.Errorf("update product: %w", err)
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return s.productRepo.Delete(ctx, tx, id)
}
