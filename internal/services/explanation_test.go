package services

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/yungbote/supplyplan-backend/internal/planning"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testSnapshot() *types.PlanPolicySnapshot {
	return &types.PlanPolicySnapshot{
		SKU:                 "SKU001",
		WarehouseCode:       "WH1",
		Mode:                types.PlanningModeWOSTarget,
		TargetWeeks:         dec("4"),
		SafetyStockMethod:   types.SafetyStockMethodWeeks,
		ForecastWindowWeeks: 8,
		IncludeSamples:      true,
		ForecastMethod:      planning.ForecastMethodTrailingMean,
		ForecastCustomerQty: dec("20"),
		ForecastSamplesQty:  dec("2"),
		AvgWeeklyDemand:     dec("22"),
		SafetyStockQty:      dec("22"),
		TotalLeadTimeWeeks:  dec("3"),
	}
}

func noteContaining(t *testing.T, notes []string, substr string) string {
	t.Helper()
	for _, n := range notes {
		if strings.Contains(n, substr) {
			return n
		}
	}
	t.Fatalf("no note containing %q in %v", substr, notes)
	return ""
}

func TestExplanationNotesWOSTarget(t *testing.T) {
	week, err := planning.ParseWeek("2026-08-24")
	if err != nil {
		t.Fatalf("ParseWeek: %v", err)
	}
	projection := &types.ProjectedInventory{
		WeekStart:    week.Time(),
		StartQty:     dec("100"),
		ReceiptsQty:  dec("50"),
		DemandQty:    dec("22"),
		ProjectedQty: dec("128"),
		WeeksOfCover: decimal.NullDecimal{Decimal: dec("5.82"), Valid: true},
	}

	notes := explanationNotes(projection, testSnapshot(), nil, week, true)

	noteContaining(t, notes, "Projected 128 = start 100 + receipts 50 - demand 22.")
	noteContaining(t, notes, "trailing 8-week mean: customer 20 + samples 2 per week (samples included).")
	// Target = 4*22 + 22 = 110.
	noteContaining(t, notes, "WOS_TARGET mode: orders top the arrival week up to 110")
	noteContaining(t, notes, "Weeks of cover: 5.82.")
	for _, n := range notes {
		if strings.Contains(n, "stockout") || strings.Contains(n, "negative") {
			t.Fatalf("unexpected stockout note: %q", n)
		}
	}
}

func TestExplanationNotesROPThreshold(t *testing.T) {
	week, err := planning.ParseWeek("2026-08-24")
	if err != nil {
		t.Fatalf("ParseWeek: %v", err)
	}
	snap := testSnapshot()
	snap.Mode = types.PlanningModeROP
	// Fractional lead time rounds up to 3 whole weeks, same as the planner.
	snap.TotalLeadTimeWeeks = dec("2.5")
	projection := &types.ProjectedInventory{
		WeekStart:    week.Time(),
		StartQty:     dec("10"),
		DemandQty:    dec("22"),
		ProjectedQty: dec("-12"),
		Stockout:     true,
	}

	notes := explanationNotes(projection, snap, nil, week, true)

	// ROP = 22*ceil(2.5) + 22 = 88.
	noteContaining(t, notes, "reorder when projected stock falls below 88")
	noteContaining(t, notes, "avg demand x 3 lead-time weeks")
	noteContaining(t, notes, "Projected quantity is negative")
	noteContaining(t, notes, "Weeks of cover is undefined")
}

func TestExplanationNotesFallbackAndDegraded(t *testing.T) {
	week, err := planning.ParseWeek("2026-08-24")
	if err != nil {
		t.Fatalf("ParseWeek: %v", err)
	}
	snap := testSnapshot()
	snap.ForecastMethod = planning.ForecastMethodFallbackConstant
	snap.Degraded = true
	projection := &types.ProjectedInventory{WeekStart: week.Time(), ProjectedQty: dec("100")}

	notes := explanationNotes(projection, snap, nil, week, true)

	noteContaining(t, notes, "forecast fell back to the constant rate")
	noteContaining(t, notes, "degraded to the configured minimum")
}

func TestExplanationNotesWithoutSamples(t *testing.T) {
	week, err := planning.ParseWeek("2026-08-24")
	if err != nil {
		t.Fatalf("ParseWeek: %v", err)
	}
	projection := &types.ProjectedInventory{
		WeekStart:    week.Time(),
		StartQty:     dec("100"),
		ReceiptsQty:  dec("50"),
		DemandQty:    dec("22"),
		ProjectedQty: dec("128"),
	}

	notes := explanationNotes(projection, testSnapshot(), nil, week, false)

	for _, n := range notes {
		if strings.Contains(n, "start 100") {
			t.Fatalf("intermediate quantities should be omitted, got %q", n)
		}
	}
	noteContaining(t, notes, "WOS_TARGET mode")
}

func TestExplanationNotesOrders(t *testing.T) {
	week, err := planning.ParseWeek("2026-08-24")
	if err != nil {
		t.Fatalf("ParseWeek: %v", err)
	}
	orders := []*types.PlannedOrder{
		{WeekStart: week.Time(), ArrivalWeek: week.Add(3).Time(), OrderQty: dec("60")},
		{WeekStart: week.Add(-3).Time(), ArrivalWeek: week.Time(), OrderQty: dec("45")},
	}
	projection := &types.ProjectedInventory{WeekStart: week.Time(), ProjectedQty: dec("100")}

	notes := explanationNotes(projection, testSnapshot(), orders, week, true)

	noteContaining(t, notes, "Planned order of 60 placed this week, arriving 2026-09-14.")
	noteContaining(t, notes, "Receipts include a planned order of 45 placed 2026-08-03.")
}
