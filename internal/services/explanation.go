package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/planning"
	"github.com/yungbote/supplyplan-backend/internal/repos"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

// Explanation reconstructs why one projected week looks the way it does,
// entirely from the run's own policy snapshot. The live policy table is
// never consulted, so the answer stays stable even after policies change.
type Explanation struct {
	RunID         uuid.UUID                 `json:"run_id"`
	SKU           string                    `json:"sku"`
	WarehouseCode string                    `json:"warehouse_code"`
	WeekStart     string                    `json:"week_start"`
	Projection    *ExplanationProjection    `json:"projection"`
	Policy        *types.PlanPolicySnapshot `json:"policy"`
	Orders        []*types.PlannedOrder     `json:"orders"`
	Notes         []string                  `json:"notes"`
}

// ExplanationProjection is the projection row as the explanation reports
// it. The intermediate quantities are present only when the caller asked
// for them with includeSamples.
type ExplanationProjection struct {
	WeekStart    string              `json:"week_start"`
	StartQty     *decimal.Decimal    `json:"start_qty,omitempty"`
	ReceiptsQty  *decimal.Decimal    `json:"receipts_qty,omitempty"`
	DemandQty    *decimal.Decimal    `json:"demand_qty,omitempty"`
	ProjectedQty decimal.Decimal     `json:"projected_qty"`
	WeeksOfCover decimal.NullDecimal `json:"weeks_of_cover"`
	Stockout     bool                `json:"stockout"`
}

type ExplanationService interface {
	Explain(ctx context.Context, tx *gorm.DB, runID uuid.UUID, sku, warehouseCode string, week planning.Week, includeSamples bool) (*Explanation, error)
}

type explanationService struct {
	db        *gorm.DB
	log       *logger.Logger
	runRepo   repos.PlanRunRepo
	snapRepo  repos.PolicySnapshotRepo
	projRepo  repos.ProjectedRepo
	orderRepo repos.PlannedOrderRepo
}

func NewExplanationService(
	db *gorm.DB,
	baseLog *logger.Logger,
	runRepo repos.PlanRunRepo,
	snapRepo repos.PolicySnapshotRepo,
	projRepo repos.ProjectedRepo,
	orderRepo repos.PlannedOrderRepo,
) ExplanationService {
	return &explanationService{
		db:        db,
		log:       baseLog.With("service", "ExplanationService"),
		runRepo:   runRepo,
		snapRepo:  snapRepo,
		projRepo:  projRepo,
		orderRepo: orderRepo,
	}
}

func (s *explanationService) Explain(ctx context.Context, tx *gorm.DB, runID uuid.UUID, sku, warehouseCode string, week planning.Week, includeSamples bool) (*Explanation, error) {
	run, err := s.runRepo.GetByID(ctx, tx, runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, planning.ErrRunNotFound
	}

	projection, err := s.projRepo.GetByRunPairWeek(ctx, tx, runID, sku, warehouseCode, week.Time())
	if err != nil {
		return nil, err
	}
	if projection == nil {
		return nil, planning.ErrProjectionNotFound
	}

	snap, err := s.snapRepo.GetByRunPair(ctx, tx, runID, sku, warehouseCode)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListByRun(ctx, tx, runID, sku, warehouseCode)
	if err != nil {
		return nil, err
	}
	var weekOrders []*types.PlannedOrder
	for _, o := range orders {
		if o.WeekStart.Equal(week.Time()) || o.ArrivalWeek.Equal(week.Time()) {
			weekOrders = append(weekOrders, o)
		}
	}

	view := &ExplanationProjection{
		WeekStart:    week.String(),
		ProjectedQty: projection.ProjectedQty,
		WeeksOfCover: projection.WeeksOfCover,
		Stockout:     projection.Stockout,
	}
	if includeSamples {
		start, receipts, demand := projection.StartQty, projection.ReceiptsQty, projection.DemandQty
		view.StartQty = &start
		view.ReceiptsQty = &receipts
		view.DemandQty = &demand
	}

	return &Explanation{
		RunID:         runID,
		SKU:           sku,
		WarehouseCode: warehouseCode,
		WeekStart:     week.String(),
		Projection:    view,
		Policy:        snap,
		Orders:        weekOrders,
		Notes:         explanationNotes(projection, snap, weekOrders, week, includeSamples),
	}, nil
}

func explanationNotes(projection *types.ProjectedInventory, snap *types.PlanPolicySnapshot, orders []*types.PlannedOrder, week planning.Week, includeSamples bool) []string {
	var notes []string
	if includeSamples {
		notes = append(notes, fmt.Sprintf(
			"Projected %s = start %s + receipts %s - demand %s.",
			projection.ProjectedQty, projection.StartQty, projection.ReceiptsQty, projection.DemandQty))
	}

	if snap != nil {
		if snap.ForecastMethod == planning.ForecastMethodFallbackConstant {
			notes = append(notes, fmt.Sprintf(
				"No demand history; forecast fell back to the constant rate %s per week.",
				snap.AvgWeeklyDemand))
		} else {
			notes = append(notes, fmt.Sprintf(
				"Forecast is the trailing %d-week mean: customer %s + samples %s per week (samples %s).",
				snap.ForecastWindowWeeks, snap.ForecastCustomerQty, snap.ForecastSamplesQty,
				includedWord(snap.IncludeSamples)))
		}
		notes = append(notes, fmt.Sprintf(
			"Safety stock %s via %s; total lead time %s weeks.",
			snap.SafetyStockQty, snap.SafetyStockMethod, snap.TotalLeadTimeWeeks))
		if snap.Degraded {
			notes = append(notes,
				"Service-level safety stock was degraded to the configured minimum: not enough demand history to estimate variability.")
		}
		switch snap.Mode {
		case types.PlanningModeROP:
			// The planner works in whole-week buckets, so the threshold uses
			// the rounded-up lead time.
			rop := snap.AvgWeeklyDemand.Mul(snap.TotalLeadTimeWeeks.Ceil()).Add(snap.SafetyStockQty)
			notes = append(notes, fmt.Sprintf(
				"ROP mode: reorder when projected stock falls below %s (avg demand x %s lead-time weeks + safety stock).",
				rop.Round(4), snap.TotalLeadTimeWeeks.Ceil()))
		default:
			target := snap.TargetWeeks.Mul(snap.AvgWeeklyDemand).Add(snap.SafetyStockQty)
			notes = append(notes, fmt.Sprintf(
				"WOS_TARGET mode: orders top the arrival week up to %s (%s weeks of demand + safety stock).",
				target.Round(4), snap.TargetWeeks))
		}
	}

	if projection.Stockout {
		notes = append(notes, "Projected quantity is negative: demand in this week exceeds available stock.")
	}
	if projection.WeeksOfCover.Valid {
		notes = append(notes, fmt.Sprintf("Weeks of cover: %s.", projection.WeeksOfCover.Decimal))
	} else {
		notes = append(notes, "Weeks of cover is undefined: no forward demand in the coverage window.")
	}

	for _, o := range orders {
		if o.WeekStart.Equal(week.Time()) {
			notes = append(notes, fmt.Sprintf(
				"Planned order of %s placed this week, arriving %s.",
				o.OrderQty, planning.WeekOf(o.ArrivalWeek)))
		}
		if o.ArrivalWeek.Equal(week.Time()) && !o.WeekStart.Equal(week.Time()) {
			notes = append(notes, fmt.Sprintf(
				"Receipts include a planned order of %s placed %s.",
				o.OrderQty, planning.WeekOf(o.WeekStart)))
		}
	}
	return notes
}

func includedWord(included bool) string {
	if included {
		return "included"
	}
	return "excluded"
}
