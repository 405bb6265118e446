package services

import (
	"context"
	"strings"
	"testing"

	"github.com/yungbote/supplyplan-backend/internal/logger"
)

func newTestImportService(t *testing.T) ImportService {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return NewImportService(nil, log, nil, nil, nil, nil)
}

func TestImportInventorySnapshotsDryRun(t *testing.T) {
	svc := newTestImportService(t)
	csv := strings.Join([]string{
		"week_start,sku,warehouse_code,on_hand_qty",
		"2026-08-24,SKU001,WH1,100",
		"2026-08-25,SKU001,WH1,100",
		"2026-08-24,SKU002,WH1,abc",
		"2026-08-24,,WH1,50",
	}, "\n")

	res, err := svc.ImportInventorySnapshots(context.Background(), nil, strings.NewReader(csv), true)
	if err != nil {
		t.Fatalf("ImportInventorySnapshots() error = %v", err)
	}
	if res.Valid {
		t.Fatal("result should be invalid")
	}
	if res.TotalRows != 4 || res.ValidRows != 1 {
		t.Fatalf("rows = %d/%d, want 1/4", res.ValidRows, res.TotalRows)
	}
	if len(res.Errors) != 3 {
		t.Fatalf("errors = %d, want 3", len(res.Errors))
	}
	// First data row is row 2; the Tuesday date is row 3.
	if res.Errors[0].Row != 3 {
		t.Fatalf("first error row = %d, want 3", res.Errors[0].Row)
	}
	if res.Errors[0].Errors[0] != "week_start must be a Monday" {
		t.Fatalf("unexpected error message %q", res.Errors[0].Errors[0])
	}
	if res.Errors[1].Errors[0] != "Invalid number" {
		t.Fatalf("unexpected error message %q", res.Errors[1].Errors[0])
	}
	if res.Errors[2].Errors[0] != "sku required" {
		t.Fatalf("unexpected error message %q", res.Errors[2].Errors[0])
	}
}

func TestImportDemandActualsTypeWhitelist(t *testing.T) {
	svc := newTestImportService(t)
	csv := strings.Join([]string{
		"week_start,sku,warehouse_code,demand_type,qty",
		"2026-08-24,SKU001,WH1,customer,20",
		"2026-08-24,SKU001,WH1,RETURNS,5",
	}, "\n")

	res, err := svc.ImportDemandActuals(context.Background(), nil, strings.NewReader(csv), true)
	if err != nil {
		t.Fatalf("ImportDemandActuals() error = %v", err)
	}
	// Lowercase type is accepted; unknown type is not.
	if res.ValidRows != 1 {
		t.Fatalf("valid rows = %d, want 1", res.ValidRows)
	}
	if len(res.Errors) != 1 || res.Errors[0].Row != 3 {
		t.Fatalf("errors = %+v, want one error on row 3", res.Errors)
	}
	if !strings.Contains(res.Errors[0].Errors[0], "demand_type") {
		t.Fatalf("unexpected error message %q", res.Errors[0].Errors[0])
	}
}

func TestImportSamplesWithdrawalsIgnoresTypeColumn(t *testing.T) {
	svc := newTestImportService(t)
	csv := strings.Join([]string{
		"week_start,sku,warehouse_code,qty",
		"2026-08-24,SKU001,WH1,3",
	}, "\n")

	res, err := svc.ImportSamplesWithdrawals(context.Background(), nil, strings.NewReader(csv), true)
	if err != nil {
		t.Fatalf("ImportSamplesWithdrawals() error = %v", err)
	}
	if !res.Valid || res.ValidRows != 1 {
		t.Fatalf("result = %+v, want one valid row", res)
	}
}

func TestImportPreviewCappedAtFiveRows(t *testing.T) {
	svc := newTestImportService(t)
	lines := []string{"week_start,sku,warehouse_code,on_hand_qty"}
	for i := 0; i < 8; i++ {
		lines = append(lines, "2026-08-24,SKU001,WH1,10")
	}

	res, err := svc.ImportInventorySnapshots(context.Background(), nil, strings.NewReader(strings.Join(lines, "\n")), true)
	if err != nil {
		t.Fatalf("ImportInventorySnapshots() error = %v", err)
	}
	if !res.Valid || res.ValidRows != 8 {
		t.Fatalf("valid rows = %d, want 8", res.ValidRows)
	}
	if len(res.Preview) != importPreviewRows {
		t.Fatalf("preview rows = %d, want %d", len(res.Preview), importPreviewRows)
	}
}

func TestImportEmptyFile(t *testing.T) {
	svc := newTestImportService(t)
	res, err := svc.ImportReceipts(context.Background(), nil, strings.NewReader(""), true)
	if err != nil {
		t.Fatalf("ImportReceipts() error = %v", err)
	}
	if res.Valid {
		t.Fatal("empty file should not be valid")
	}
	if len(res.Errors) != 1 || res.Errors[0].Errors[0] != "No data rows" {
		t.Fatalf("errors = %+v, want a single 'No data rows' error", res.Errors)
	}
}

func TestImportStripsBOMAndWhitespace(t *testing.T) {
	svc := newTestImportService(t)
	csv := "\xEF\xBB\xBFweek_start,sku,warehouse_code,qty\n 2026-08-24 , SKU001 ,WH1, 50 \n"

	res, err := svc.ImportReceipts(context.Background(), nil, strings.NewReader(csv), true)
	if err != nil {
		t.Fatalf("ImportReceipts() error = %v", err)
	}
	if !res.Valid || res.ValidRows != 1 {
		t.Fatalf("result = %+v, want one valid row", res)
	}
}
