package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/planning"
	"github.com/yungbote/supplyplan-backend/internal/repos"
)

// ExportService writes planning tables as CSV, matching the import
// templates column for column so exports can round-trip.
type ExportService interface {
	ProjectedInventory(ctx context.Context, tx *gorm.DB, runID uuid.UUID, w io.Writer) (string, error)
	PlannedOrders(ctx context.Context, tx *gorm.DB, runID uuid.UUID, w io.Writer) (string, error)
	InventorySnapshots(ctx context.Context, tx *gorm.DB, w io.Writer) error
	Receipts(ctx context.Context, tx *gorm.DB, w io.Writer) error
	DemandActuals(ctx context.Context, tx *gorm.DB, w io.Writer) error
}

type exportService struct {
	db           *gorm.DB
	log          *logger.Logger
	runRepo      repos.PlanRunRepo
	projRepo     repos.ProjectedRepo
	orderRepo    repos.PlannedOrderRepo
	snapshotRepo repos.SnapshotRepo
	receiptRepo  repos.ReceiptRepo
	demandRepo   repos.DemandRepo
}

func NewExportService(
	db *gorm.DB,
	baseLog *logger.Logger,
	runRepo repos.PlanRunRepo,
	projRepo repos.ProjectedRepo,
	orderRepo repos.PlannedOrderRepo,
	snapshotRepo repos.SnapshotRepo,
	receiptRepo repos.ReceiptRepo,
	demandRepo repos.DemandRepo,
) ExportService {
	return &exportService{
		db:           db,
		log:          baseLog.With("service", "ExportService"),
		runRepo:      runRepo,
		projRepo:     projRepo,
		orderRepo:    orderRepo,
		snapshotRepo: snapshotRepo,
		receiptRepo:  receiptRepo,
		demandRepo:   demandRepo,
	}
}

const exportDateLayout = "2006-01-02"

// ProjectedInventory writes one run's projection rows and returns the
// scenario name for the download filename.
func (s *exportService) ProjectedInventory(ctx context.Context, tx *gorm.DB, runID uuid.UUID, w io.Writer) (string, error) {
	run, err := s.runRepo.GetByID(ctx, tx, runID)
	if err != nil {
		return "", err
	}
	if run == nil {
		return "", planning.ErrRunNotFound
	}
	rows, err := s.projRepo.ListByRun(ctx, tx, runID, "", "")
	if err != nil {
		return "", err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"scenario_name", "week_start", "sku", "warehouse_code", "projected_qty", "weeks_of_cover", "stockout"}); err != nil {
		return "", fmt.Errorf("write csv: %w", err)
	}
	for _, r := range rows {
		woc := ""
		if r.WeeksOfCover.Valid {
			woc = r.WeeksOfCover.Decimal.String()
		}
		rec := []string{
			run.ScenarioName,
			r.WeekStart.Format(exportDateLayout),
			r.SKU,
			r.WarehouseCode,
			r.ProjectedQty.String(),
			woc,
			strconv.FormatBool(r.Stockout),
		}
		if err := cw.Write(rec); err != nil {
			return "", fmt.Errorf("write csv: %w", err)
		}
	}
	cw.Flush()
	return run.ScenarioName, cw.Error()
}

func (s *exportService) PlannedOrders(ctx context.Context, tx *gorm.DB, runID uuid.UUID, w io.Writer) (string, error) {
	run, err := s.runRepo.GetByID(ctx, tx, runID)
	if err != nil {
		return "", err
	}
	if run == nil {
		return "", planning.ErrRunNotFound
	}
	rows, err := s.orderRepo.ListByRun(ctx, tx, runID, "", "")
	if err != nil {
		return "", err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"scenario_name", "week_start", "sku", "warehouse_code", "order_qty", "arrival_week"}); err != nil {
		return "", fmt.Errorf("write csv: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			run.ScenarioName,
			r.WeekStart.Format(exportDateLayout),
			r.SKU,
			r.WarehouseCode,
			r.OrderQty.String(),
			r.ArrivalWeek.Format(exportDateLayout),
		}
		if err := cw.Write(rec); err != nil {
			return "", fmt.Errorf("write csv: %w", err)
		}
	}
	cw.Flush()
	return run.ScenarioName, cw.Error()
}

func (s *exportService) InventorySnapshots(ctx context.Context, tx *gorm.DB, w io.Writer) error {
	rows, err := s.snapshotRepo.List(ctx, tx, "", "")
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"week_start", "sku", "warehouse_code", "on_hand_qty"}); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	for _, r := range rows {
		rec := []string{r.WeekStart.Format(exportDateLayout), r.SKU, r.WarehouseCode, r.OnHandQty.String()}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *exportService) Receipts(ctx context.Context, tx *gorm.DB, w io.Writer) error {
	rows, err := s.receiptRepo.List(ctx, tx, "", "")
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"week_start", "sku", "warehouse_code", "qty", "source_type"}); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	for _, r := range rows {
		rec := []string{r.WeekStart.Format(exportDateLayout), r.SKU, r.WarehouseCode, r.Qty.String(), r.SourceType}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *exportService) DemandActuals(ctx context.Context, tx *gorm.DB, w io.Writer) error {
	rows, err := s.demandRepo.List(ctx, tx, "", "")
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"week_start", "sku", "warehouse_code", "demand_type", "qty"}); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	for _, r := range rows {
		rec := []string{r.WeekStart.Format(exportDateLayout), r.SKU, r.WarehouseCode, string(r.DemandType), r.Qty.String()}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
