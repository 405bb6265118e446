package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/repos"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

// ImportRowError is one invalid CSV data row. Row numbers are 1-based file
// positions, so the first data row is row 2.
type ImportRowError struct {
	Row    int      `json:"row"`
	Errors []string `json:"errors"`
}

// ImportResult reports a validation pass over one uploaded file. On a
// dry run nothing is written; on a real import only the valid rows are.
type ImportResult struct {
	Valid     bool                `json:"valid"`
	TotalRows int                 `json:"total_rows"`
	ValidRows int                 `json:"valid_rows"`
	Errors    []ImportRowError    `json:"errors"`
	Preview   []map[string]string `json:"preview,omitempty"`
}

type ImportService interface {
	ImportInventorySnapshots(ctx context.Context, tx *gorm.DB, file io.Reader, dryRun bool) (*ImportResult, error)
	ImportReceipts(ctx context.Context, tx *gorm.DB, file io.Reader, dryRun bool) (*ImportResult, error)
	ImportDemandActuals(ctx context.Context, tx *gorm.DB, file io.Reader, dryRun bool) (*ImportResult, error)
	ImportSamplesWithdrawals(ctx context.Context, tx *gorm.DB, file io.Reader, dryRun bool) (*ImportResult, error)
	ImportProducts(ctx context.Context, tx *gorm.DB, file io.Reader, dryRun bool) (*ImportResult, error)
}

type importService struct {
	db           *gorm.DB
	log          *logger.Logger
	snapshotRepo repos.SnapshotRepo
	receiptRepo  repos.ReceiptRepo
	demandRepo   repos.DemandRepo
	productRepo  repos.ProductRepo
}

func NewImportService(
	db *gorm.DB,
	baseLog *logger.Logger,
	snapshotRepo repos.SnapshotRepo,
	receiptRepo repos.ReceiptRepo,
	demandRepo repos.DemandRepo,
	productRepo repos.ProductRepo,
) ImportService {
	return &importService{
		db:           db,
		log:          baseLog.With("service", "ImportService"),
		snapshotRepo: snapshotRepo,
		receiptRepo:  receiptRepo,
		demandRepo:   demandRepo,
		productRepo:  productRepo,
	}
}

const importPreviewRows = 5

// csvRecord is one parsed data row keyed by header name, with its file
// position for error reporting.
type csvRecord struct {
	row    int
	fields map[string]string
}

func readCSV(file io.Reader) ([]csvRecord, error) {
	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	// Spreadsheet exports often lead with a UTF-8 BOM.
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("parse csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.ToLower(header[i]))
	}

	var records []csvRecord
	row := 1
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv: %w", err)
		}
		row++
		fields := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(rec) {
				fields[name] = strings.TrimSpace(rec[i])
			}
		}
		records = append(records, csvRecord{row: row, fields: fields})
	}
	return records, nil
}

func parseWeekField(s string) (time.Time, string) {
	if s == "" {
		return time.Time{}, "Empty date"
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, "Invalid date (use YYYY-MM-DD, Monday)"
	}
	if t.Weekday() != time.Monday {
		return time.Time{}, "week_start must be a Monday"
	}
	return t, ""
}

func parseQtyField(s string) (decimal.Decimal, string) {
	if s == "" {
		s = "0"
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, "Invalid number"
	}
	return d, ""
}

func emptyFileResult() *ImportResult {
	return &ImportResult{
		Valid:  false,
		Errors: []ImportRowError{{Row: 1, Errors: []string{"No data rows"}}},
	}
}

func (s *importService) ImportInventorySnapshots(ctx context.Context, tx *gorm.DB, file io.Reader, dryRun bool) (*ImportResult, error) {
	records, err := readCSV(file)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return emptyFileResult(), nil
	}

	result := &ImportResult{TotalRows: len(records)}
	var valid []*types.InventorySnapshot
	for _, rec := range records {
		var errs []string
		week, werr := parseWeekField(rec.fields["week_start"])
		if werr != "" {
			errs = append(errs, werr)
		}
		qty, qerr := parseQtyField(rec.fields["on_hand_qty"])
		if qerr != "" {
			errs = append(errs, qerr)
		}
		sku := rec.fields["sku"]
		wh := rec.fields["warehouse_code"]
		if sku == "" {
			errs = append(errs, "sku required")
		}
		if wh == "" {
			errs = append(errs, "warehouse_code required")
		}
		if len(errs) > 0 {
			result.Errors = append(result.Errors, ImportRowError{Row: rec.row, Errors: errs})
			continue
		}
		valid = append(valid, &types.InventorySnapshot{
			WeekStart:     week,
			SKU:           sku,
			WarehouseCode: wh,
			OnHandQty:     qty,
		})
		if len(result.Preview) < importPreviewRows {
			result.Preview = append(result.Preview, rec.fields)
		}
	}
	s.finish(result)

	if !dryRun && len(valid) > 0 {
		if err := s.snapshotRepo.Upsert(ctx, tx, valid); err != nil {
			s.log.Error("Import inventory snapshots failed", "rows", len(valid), "error", err)
			return nil, fmt.Errorf("import snapshots: %w", err)
		}
	}
	return result, nil
}

func (s *importService) ImportReceipts(ctx context.Context, tx *gorm.DB, file io.Reader, dryRun bool) (*ImportResult, error) {
	records, err := readCSV(file)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return emptyFileResult(), nil
	}

	result := &ImportResult{TotalRows: len(records)}
	var valid []*types.Receipt
	for _, rec := range records {
		var errs []string
		week, werr := parseWeekField(rec.fields["week_start"])
		if werr != "" {
			errs = append(errs, werr)
		}
		qty, qerr := parseQtyField(rec.fields["qty"])
		if qerr != "" {
			errs = append(errs, qerr)
		}
		sku := rec.fields["sku"]
		wh := rec.fields["warehouse_code"]
		if sku == "" {
			errs = append(errs, "sku required")
		}
		if wh == "" {
			errs = append(errs, "warehouse_code required")
		}
		if len(errs) > 0 {
			result.Errors = append(result.Errors, ImportRowError{Row: rec.row, Errors: errs})
			continue
		}
		valid = append(valid, &types.Receipt{
			WeekStart:     week,
			SKU:           sku,
			WarehouseCode: wh,
			Qty:           qty,
			SourceType:    rec.fields["source_type"],
		})
		if len(result.Preview) < importPreviewRows {
			result.Preview = append(result.Preview, rec.fields)
		}
	}
	s.finish(result)

	if !dryRun && len(valid) > 0 {
		if err := s.receiptRepo.Upsert(ctx, tx, valid); err != nil {
			s.log.Error("Import receipts failed", "rows", len(valid), "error", err)
			return nil, fmt.Errorf("import receipts: %w", err)
		}
	}
	return result, nil
}

func (s *importService) ImportDemandActuals(ctx context.Context, tx *gorm.DB, file io.Reader, dryRun bool) (*ImportResult, error) {
	return s.importDemand(ctx, tx, file, dryRun, "")
}

// ImportSamplesWithdrawals is the demand import with demand_type pinned to
// SAMPLES, for files exported from sample-tracking systems that carry no
// type column.
func (s *importService) ImportSamplesWithdrawals(ctx context.Context, tx *gorm.DB, file io.Reader, dryRun bool) (*ImportResult, error) {
	return s.importDemand(ctx, tx, file, dryRun, types.DemandTypeSamples)
}

func (s *importService) importDemand(ctx context.Context, tx *gorm.DB, file io.Reader, dryRun bool, override types.DemandType) (*ImportResult, error) {
	records, err := readCSV(file)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return emptyFileResult(), nil
	}

	result := &ImportResult{TotalRows: len(records)}
	var valid []*types.DemandActual
	for _, rec := range records {
		var errs []string
		week, werr := parseWeekField(rec.fields["week_start"])
		if werr != "" {
			errs = append(errs, werr)
		}
		qty, qerr := parseQtyField(rec.fields["qty"])
		if qerr != "" {
			errs = append(errs, qerr)
		}
		sku := rec.fields["sku"]
		wh := rec.fields["warehouse_code"]
		if sku == "" {
			errs = append(errs, "sku required")
		}
		if wh == "" {
			errs = append(errs, "warehouse_code required")
		}
		demandType := override
		if demandType == "" {
			demandType = types.DemandType(strings.ToUpper(rec.fields["demand_type"]))
			if !demandType.Valid() {
				errs = append(errs, "demand_type must be CUSTOMER, SAMPLES, or ADJUSTMENT")
			}
		}
		if len(errs) > 0 {
			result.Errors = append(result.Errors, ImportRowError{Row: rec.row, Errors: errs})
			continue
		}
		valid = append(valid, &types.DemandActual{
			WeekStart:     week,
			SKU:           sku,
			WarehouseCode: wh,
			DemandType:    demandType,
			Qty:           qty,
		})
		if len(result.Preview) < importPreviewRows {
			result.Preview = append(result.Preview, rec.fields)
		}
	}
	s.finish(result)

	if !dryRun && len(valid) > 0 {
		if err := s.demandRepo.Upsert(ctx, tx, valid); err != nil {
			s.log.Error("Import demand actuals failed", "rows", len(valid), "error", err)
			return nil, fmt.Errorf("import demand actuals: %w", err)
		}
	}
	return result, nil
}

func (s *importService) ImportProducts(ctx context.Context, tx *gorm.DB, file io.Reader, dryRun bool) (*ImportResult, error) {
	records, err := readCSV(file)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return emptyFileResult(), nil
	}

	result := &ImportResult{TotalRows: len(records)}
	var valid []*types.Product
	for _, rec := range records {
		sku := rec.fields["sku"]
		if sku == "" {
			result.Errors = append(result.Errors, ImportRowError{Row: rec.row, Errors: []string{"sku required"}})
			continue
		}
		valid = append(valid, &types.Product{
			SKU:         sku,
			Name:        rec.fields["name"],
			Description: rec.fields["description"],
		})
		if len(result.Preview) < importPreviewRows {
			result.Preview = append(result.Preview, rec.fields)
		}
	}
	s.finish(result)

	if !dryRun && len(valid) > 0 {
		if err := s.productRepo.Upsert(ctx, tx, valid); err != nil {
			s.log.Error("Import products failed", "rows", len(valid), "error", err)
			return nil, fmt.Errorf("import products: %w", err)
		}
	}
	return result, nil
}

func (s *importService) finish(result *ImportResult) {
	result.ValidRows = result.TotalRows - len(result.Errors)
	result.Valid = len(result.Errors) == 0
}
