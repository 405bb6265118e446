package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/planning"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

type fakePlanRunRepo struct {
	run *types.PlanRun
}

func (f *fakePlanRunRepo) Create(ctx context.Context, tx *gorm.DB, run *types.PlanRun) (*types.PlanRun, error) {
	return run, nil
}
func (f *fakePlanRunRepo) UpdateFields(ctx context.Context, tx *gorm.DB, runID uuid.UUID, fields map[string]interface{}) error {
	return nil
}
func (f *fakePlanRunRepo) GetByID(ctx context.Context, tx *gorm.DB, runID uuid.UUID) (*types.PlanRun, error) {
	if f.run != nil && f.run.ID == runID {
		return f.run, nil
	}
	return nil, nil
}
func (f *fakePlanRunRepo) ListByRecency(ctx context.Context, tx *gorm.DB, limit int) ([]*types.PlanRun, error) {
	return []*types.PlanRun{f.run}, nil
}

type fakeProjectedRepo struct {
	rows []*types.ProjectedInventory
}

func (f *fakeProjectedRepo) CreateBatch(ctx context.Context, tx *gorm.DB, rows []*types.ProjectedInventory) ([]*types.ProjectedInventory, error) {
	return rows, nil
}
func (f *fakeProjectedRepo) ListByRun(ctx context.Context, tx *gorm.DB, runID uuid.UUID, sku, warehouseCode string) ([]*types.ProjectedInventory, error) {
	return f.rows, nil
}
func (f *fakeProjectedRepo) GetByRunPairWeek(ctx context.Context, tx *gorm.DB, runID uuid.UUID, sku, warehouseCode string, weekStart time.Time) (*types.ProjectedInventory, error) {
	return nil, nil
}

func TestExportProjectedInventoryCSV(t *testing.T) {
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	runID := uuid.New()
	week := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	runRepo := &fakePlanRunRepo{run: &types.PlanRun{ID: runID, ScenarioName: "baseline"}}
	projRepo := &fakeProjectedRepo{rows: []*types.ProjectedInventory{
		{
			WeekStart:     week,
			SKU:           "SKU001",
			WarehouseCode: "WH1",
			ProjectedQty:  decimal.RequireFromString("128"),
			WeeksOfCover:  decimal.NullDecimal{Decimal: decimal.RequireFromString("5.82"), Valid: true},
		},
		{
			WeekStart:     week.AddDate(0, 0, 7),
			SKU:           "SKU001",
			WarehouseCode: "WH1",
			ProjectedQty:  decimal.RequireFromString("-4"),
			Stockout:      true,
		},
	}}
	svc := NewExportService(nil, log, runRepo, projRepo, nil, nil, nil, nil)

	var buf bytes.Buffer
	scenario, err := svc.ProjectedInventory(context.Background(), nil, runID, &buf)
	if err != nil {
		t.Fatalf("ProjectedInventory() error = %v", err)
	}
	if scenario != "baseline" {
		t.Fatalf("scenario = %q, want baseline", scenario)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3:\n%s", len(lines), buf.String())
	}
	if lines[0] != "scenario_name,week_start,sku,warehouse_code,projected_qty,weeks_of_cover,stockout" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[1] != "baseline,2026-08-24,SKU001,WH1,128,5.82,false" {
		t.Fatalf("unexpected row %q", lines[1])
	}
	// NULL weeks of cover exports as an empty cell.
	if lines[2] != "baseline,2026-08-31,SKU001,WH1,-4,,true" {
		t.Fatalf("unexpected row %q", lines[2])
	}
}

func TestExportProjectedInventoryUnknownRun(t *testing.T) {
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	svc := NewExportService(nil, log, &fakePlanRunRepo{}, &fakeProjectedRepo{}, nil, nil, nil, nil)

	var buf bytes.Buffer
	if _, err := svc.ProjectedInventory(context.Background(), nil, uuid.New(), &buf); !errors.Is(err, planning.ErrRunNotFound) {
		t.Fatalf("error = %v, want ErrRunNotFound", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("nothing should be written for an unknown run, got %q", buf.String())
	}
}
