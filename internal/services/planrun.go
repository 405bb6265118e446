package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/planning"
	"github.com/yungbote/supplyplan-backend/internal/repos"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

// RunRequest describes one engine invocation. RunAt is truncated to its
// Monday; a zero RunAt means the current week. HorizonWeeks of zero falls
// back to the configured default.
type RunRequest struct {
	ScenarioName string
	RunAt        time.Time
	HorizonWeeks int
}

type PlanRunService interface {
	Run(ctx context.Context, req RunRequest) (*types.PlanRun, error)
	GetByID(ctx context.Context, tx *gorm.DB, runID uuid.UUID) (*types.PlanRun, error)
	List(ctx context.Context, tx *gorm.DB, limit int) ([]*types.PlanRun, error)
	ProjectedInventory(ctx context.Context, tx *gorm.DB, runID uuid.UUID, sku, warehouseCode string) ([]*types.ProjectedInventory, error)
	PlannedOrders(ctx context.Context, tx *gorm.DB, runID uuid.UUID, sku, warehouseCode string) ([]*types.PlannedOrder, error)
}

type planRunService struct {
	db           *gorm.DB
	log          *logger.Logger
	cfg          planning.Config
	runRepo      repos.PlanRunRepo
	policyRepo   repos.PolicyRepo
	snapshotRepo repos.SnapshotRepo
	receiptRepo  repos.ReceiptRepo
	demandRepo   repos.DemandRepo
	snapRepo     repos.PolicySnapshotRepo
	projRepo     repos.ProjectedRepo
	orderRepo    repos.PlannedOrderRepo
	notifier     RunNotifier
}

func NewPlanRunService(
	db *gorm.DB,
	baseLog *logger.Logger,
	cfg planning.Config,
	runRepo repos.PlanRunRepo,
	policyRepo repos.PolicyRepo,
	snapshotRepo repos.SnapshotRepo,
	receiptRepo repos.ReceiptRepo,
	demandRepo repos.DemandRepo,
	snapRepo repos.PolicySnapshotRepo,
	projRepo repos.ProjectedRepo,
	orderRepo repos.PlannedOrderRepo,
	notifier RunNotifier,
) PlanRunService {
	return &planRunService{
		db:           db,
		log:          baseLog.With("service", "PlanRunService"),
		cfg:          cfg,
		runRepo:      runRepo,
		policyRepo:   policyRepo,
		snapshotRepo: snapshotRepo,
		receiptRepo:  receiptRepo,
		demandRepo:   demandRepo,
		snapRepo:     snapRepo,
		projRepo:     projRepo,
		orderRepo:    orderRepo,
		notifier:     notifier,
	}
}

func (s *planRunService) Run(ctx context.Context, req RunRequest) (*types.PlanRun, error) {
	runAt := req.RunAt
	if runAt.IsZero() {
		runAt = time.Now().UTC()
	}
	runWeek := planning.WeekOf(runAt)

	horizon := req.HorizonWeeks
	if horizon <= 0 {
		horizon = s.cfg.HorizonWeeks
	}
	cfg := s.cfg
	cfg.HorizonWeeks = horizon

	run := &types.PlanRun{
		ScenarioName: req.ScenarioName,
		RunAt:        runWeek.Time(),
		HorizonWeeks: horizon,
		Status:       types.PlanRunStatusCompleted,
	}
	if _, err := s.runRepo.Create(ctx, nil, run); err != nil {
		return nil, fmt.Errorf("create plan run: %w", err)
	}
	log := s.log.With("runID", run.ID, "runWeek", runWeek.String())

	in, err := s.loadInputs(ctx, runWeek)
	if err != nil {
		s.markFailed(ctx, run, err)
		return run, fmt.Errorf("load run inputs: %w", err)
	}
	s.notifier.RunStarted(run, len(in.Pairs))
	log.Info("Plan run started",
		"pairs", len(in.Pairs),
		"missingPolicy", len(in.MissingPolicy),
		"missingSnapshot", len(in.MissingSnapshot),
		"horizonWeeks", horizon)

	engine := planning.NewEngine(s.log, cfg)
	result, err := engine.Execute(ctx, runWeek, in, func(pair planning.PairKey, pairErr error) {
		s.notifier.PairDone(run.ID, pair.SKU, pair.WarehouseCode, pairErr)
	})
	if err != nil {
		s.markFailed(ctx, run, err)
		return run, fmt.Errorf("execute plan run: %w", err)
	}

	if err := s.persist(ctx, run, runWeek, in, result); err != nil {
		s.markFailed(ctx, run, err)
		return run, fmt.Errorf("persist plan run: %w", err)
	}

	log.Info("Plan run finished", "status", run.Status, "pairsOK", len(result.Outcomes), "pairsFailed", len(result.Failures))
	s.notifier.RunFinished(run)
	return run, nil
}

// loadInputs snapshots the planning tables into memory for one run. The
// pair universe is the union of policy rows and latest snapshots; pairs
// with only one side land in the matching missing list.
func (s *planRunService) loadInputs(ctx context.Context, runWeek planning.Week) (planning.Inputs, error) {
	in := planning.Inputs{Pairs: make(map[planning.PairKey]planning.PairInputs)}

	policies, err := s.policyRepo.List(ctx, nil)
	if err != nil {
		return in, fmt.Errorf("list policies: %w", err)
	}
	snapshots, err := s.snapshotRepo.ListAtOrBefore(ctx, nil, runWeek.Time())
	if err != nil {
		return in, fmt.Errorf("list snapshots: %w", err)
	}
	receipts, err := s.receiptRepo.ListAll(ctx, nil)
	if err != nil {
		return in, fmt.Errorf("list receipts: %w", err)
	}
	demand, err := s.demandRepo.ListAll(ctx, nil)
	if err != nil {
		return in, fmt.Errorf("list demand actuals: %w", err)
	}

	policyByPair := make(map[planning.PairKey]*types.PlanningPolicy, len(policies))
	for _, p := range policies {
		policyByPair[planning.PairKey{SKU: p.SKU, WarehouseCode: p.WarehouseCode}] = p
	}

	// Latest snapshot at or before the run week seeds each pair.
	latest := make(map[planning.PairKey]*types.InventorySnapshot)
	for _, snap := range snapshots {
		key := planning.PairKey{SKU: snap.SKU, WarehouseCode: snap.WarehouseCode}
		if cur, ok := latest[key]; !ok || snap.WeekStart.After(cur.WeekStart) {
			latest[key] = snap
		}
	}

	for key, policy := range policyByPair {
		snap, ok := latest[key]
		if !ok {
			in.MissingSnapshot = append(in.MissingSnapshot, key)
			continue
		}
		in.Pairs[key] = planning.PairInputs{
			Policy:       *policy,
			SnapshotWeek: planning.WeekOf(snap.WeekStart),
			OnHandQty:    snap.OnHandQty,
			Receipts:     make(map[planning.Week]decimal.Decimal),
			Customer:     make(map[planning.Week]decimal.Decimal),
			Samples:      make(map[planning.Week]decimal.Decimal),
			Adjustment:   make(map[planning.Week]decimal.Decimal),
		}
	}
	for key := range latest {
		if _, ok := policyByPair[key]; !ok {
			in.MissingPolicy = append(in.MissingPolicy, key)
		}
	}

	for _, r := range receipts {
		key := planning.PairKey{SKU: r.SKU, WarehouseCode: r.WarehouseCode}
		pair, ok := in.Pairs[key]
		if !ok {
			continue
		}
		w := planning.WeekOf(r.WeekStart)
		pair.Receipts[w] = pair.Receipts[w].Add(r.Qty)
		in.Pairs[key] = pair
	}
	for _, d := range demand {
		key := planning.PairKey{SKU: d.SKU, WarehouseCode: d.WarehouseCode}
		pair, ok := in.Pairs[key]
		if !ok {
			continue
		}
		w := planning.WeekOf(d.WeekStart)
		switch d.DemandType {
		case types.DemandTypeCustomer:
			pair.Customer[w] = pair.Customer[w].Add(d.Qty)
		case types.DemandTypeSamples:
			pair.Samples[w] = pair.Samples[w].Add(d.Qty)
		case types.DemandTypeAdjustment:
			pair.Adjustment[w] = pair.Adjustment[w].Add(d.Qty)
		}
		in.Pairs[key] = pair
	}
	return in, nil
}

// runStatus picks the terminal status for a finished run. A run is failed
// only when pairs were attempted and every one of them failed; an empty
// dataset simply completes with no rows.
func runStatus(result *planning.RunResult) types.PlanRunStatus {
	switch {
	case len(result.Failures) == 0:
		return types.PlanRunStatusCompleted
	case len(result.Outcomes) == 0:
		return types.PlanRunStatusFailed
	default:
		return types.PlanRunStatusCompletedWithErrors
	}
}

// persist writes every surviving pair's rows and the run's final status in
// one transaction, so a half-written run can never be observed.
func (s *planRunService) persist(ctx context.Context, run *types.PlanRun, runWeek planning.Week, in planning.Inputs, result *planning.RunResult) error {
	status := runStatus(result)

	var pairErrsJSON datatypes.JSON
	if len(result.Failures) > 0 {
		pairErrs := make([]types.PairError, 0, len(result.Failures))
		for _, f := range result.Failures {
			pairErrs = append(pairErrs, types.PairError{
				SKU:           f.Pair.SKU,
				WarehouseCode: f.Pair.WarehouseCode,
				Code:          failureCode(f.Err),
				Reason:        f.Err.Error(),
			})
		}
		raw, err := json.Marshal(pairErrs)
		if err != nil {
			return fmt.Errorf("marshal pair errors: %w", err)
		}
		pairErrsJSON = datatypes.JSON(raw)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var (
			policySnaps []*types.PlanPolicySnapshot
			projections []*types.ProjectedInventory
			orders      []*types.PlannedOrder
		)
		for key, outcome := range result.Outcomes {
			pairIn := in.Pairs[key]
			policySnaps = append(policySnaps, buildPolicySnapshot(run.ID, key, pairIn.Policy, outcome))
			for _, row := range outcome.Projections {
				projections = append(projections, &types.ProjectedInventory{
					PlanRunID:     run.ID,
					WeekStart:     row.Week.Time(),
					SKU:           key.SKU,
					WarehouseCode: key.WarehouseCode,
					StartQty:      row.StartQty,
					ReceiptsQty:   row.ReceiptsQty,
					DemandQty:     row.DemandQty,
					ProjectedQty:  row.ProjectedQty,
					WeeksOfCover:  row.WeeksOfCover,
					Stockout:      row.Stockout,
				})
			}
			for _, o := range outcome.Orders {
				orders = append(orders, &types.PlannedOrder{
					PlanRunID:     run.ID,
					WeekStart:     o.Week.Time(),
					SKU:           key.SKU,
					WarehouseCode: key.WarehouseCode,
					OrderQty:      o.Qty,
					ArrivalWeek:   o.ArrivalWeek.Time(),
				})
			}
		}
		if _, err := s.snapRepo.CreateBatch(ctx, tx, policySnaps); err != nil {
			return fmt.Errorf("create policy snapshots: %w", err)
		}
		if _, err := s.projRepo.CreateBatch(ctx, tx, projections); err != nil {
			return fmt.Errorf("create projections: %w", err)
		}
		if _, err := s.orderRepo.CreateBatch(ctx, tx, orders); err != nil {
			return fmt.Errorf("create planned orders: %w", err)
		}
		fields := map[string]interface{}{"status": status}
		if pairErrsJSON != nil {
			fields["pair_errors"] = pairErrsJSON
		}
		return s.runRepo.UpdateFields(ctx, tx, run.ID, fields)
	})
	if err != nil {
		return err
	}
	run.Status = status
	run.PairErrors = pairErrsJSON
	return nil
}

func (s *planRunService) markFailed(ctx context.Context, run *types.PlanRun, cause error) {
	run.Status = types.PlanRunStatusFailed
	fields := map[string]interface{}{"status": types.PlanRunStatusFailed}
	if updateErr := s.runRepo.UpdateFields(context.WithoutCancel(ctx), nil, run.ID, fields); updateErr != nil {
		s.log.Error("Failed to mark run as failed", "runID", run.ID, "cause", cause, "error", updateErr)
	}
	s.notifier.RunFinished(run)
}

func (s *planRunService) GetByID(ctx context.Context, tx *gorm.DB, runID uuid.UUID) (*types.PlanRun, error) {
	return s.runRepo.GetByID(ctx, tx, runID)
}

func (s *planRunService) List(ctx context.Context, tx *gorm.DB, limit int) ([]*types.PlanRun, error) {
	return s.runRepo.ListByRecency(ctx, tx, limit)
}

func (s *planRunService) ProjectedInventory(ctx context.Context, tx *gorm.DB, runID uuid.UUID, sku, warehouseCode string) ([]*types.ProjectedInventory, error) {
	run, err := s.runRepo.GetByID(ctx, tx, runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, planning.ErrRunNotFound
	}
	return s.projRepo.ListByRun(ctx, tx, runID, sku, warehouseCode)
}

func (s *planRunService) PlannedOrders(ctx context.Context, tx *gorm.DB, runID uuid.UUID, sku, warehouseCode string) ([]*types.PlannedOrder, error) {
	run, err := s.runRepo.GetByID(ctx, tx, runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, planning.ErrRunNotFound
	}
	return s.orderRepo.ListByRun(ctx, tx, runID, sku, warehouseCode)
}

func buildPolicySnapshot(runID uuid.UUID, key planning.PairKey, policy types.PlanningPolicy, outcome *planning.PairOutcome) *types.PlanPolicySnapshot {
	return &types.PlanPolicySnapshot{
		PlanRunID:               runID,
		SKU:                     key.SKU,
		WarehouseCode:           key.WarehouseCode,
		Mode:                    policy.Mode,
		TargetWeeks:             policy.TargetWeeks,
		SafetyStockMethod:       policy.SafetyStockMethod,
		SafetyStockWeeks:        policy.SafetyStockWeeks,
		ServiceLevel:            policy.ServiceLevel,
		ForecastWindowWeeks:     policy.ForecastWindowWeeks,
		LeadTimeProductionWeeks: policy.LeadTimeProductionWeeks,
		LeadTimeSlotWaitWeeks:   policy.LeadTimeSlotWaitWeeks,
		LeadTimeHaulageWeeks:    policy.LeadTimeHaulageWeeks,
		LeadTimePutawayWeeks:    policy.LeadTimePutawayWeeks,
		LeadTimePaddingWeeks:    policy.LeadTimePaddingWeeks,
		OrderUpToQty:            policy.OrderUpToQty,
		IncludeSamples:          policy.IncludeSamples,
		ForecastMethod:          outcome.Forecast.Method,
		ForecastCustomerQty:     outcome.Forecast.CustomerRate,
		ForecastSamplesQty:      outcome.Forecast.SamplesRate,
		AvgWeeklyDemand:         outcome.AvgWeeklyDemand,
		SafetyStockQty:          outcome.SafetyStock.Qty,
		TotalLeadTimeWeeks:      outcome.TotalLeadTime,
		Degraded:                outcome.SafetyStock.Degraded,
	}
}

// failureCode maps a pair's error onto the stable machine-readable codes
// stored in plan_runs.pair_errors.
func failureCode(err error) string {
	switch {
	case errors.Is(err, planning.ErrPolicyNotFound):
		return "POLICY_NOT_FOUND"
	case errors.Is(err, planning.ErrMissingStartingSnapshot):
		return "MISSING_STARTING_SNAPSHOT"
	case errors.Is(err, planning.ErrInvalidPolicy):
		return "INVALID_POLICY"
	case errors.Is(err, planning.ErrInsufficientHistory):
		return "INSUFFICIENT_HISTORY"
	default:
		return "INTERNAL"
	}
}
