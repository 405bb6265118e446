package planning

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/yungbote/supplyplan-backend/internal/types"
)

func testConfig() Config {
	return Config{
		HorizonWeeks:      5,
		Workers:           1,
		MinHistoryWeeks:   4,
		FallbackDemandQty: decimal.Zero,
		MinSafetyStockQty: decimal.Zero,
	}
}

// The canonical reorder-point scenario: 100 on hand, steady 20/week demand,
// no receipts, reorder point 50 (2 lead-time weeks of demand + 10 safety
// stock), order-up-to 100. The order triggers when on-hand crosses 50 and
// its synthetic receipt lands exactly one lead time later.
func TestSimulatePairROPScenario(t *testing.T) {
	runWeek := mustWeek(t, "2025-03-03")
	p := basePolicy()
	p.Mode = types.PlanningModeROP
	p.SafetyStockWeeks = dec("0.5") // 0.5 * 20 = 10
	p.OrderUpToQty = dec("100")
	// Total lead time = 2 -> ROP = 20*2 + 10 = 50.
	p.LeadTimeProductionWeeks = dec("2")
	p.LeadTimeHaulageWeeks = dec("0")

	in := PairInputs{
		Policy:       p,
		SnapshotWeek: runWeek,
		OnHandQty:    dec("100"),
		Customer:     steadyHistory(t, runWeek, 8, "20"),
	}

	out, err := SimulatePair(context.Background(), in, runWeek, testConfig())
	if err != nil {
		t.Fatalf("SimulatePair: %v", err)
	}

	wantQty := []string{"80", "60", "40", "20", "60", "40"}
	if len(out.Projections) != len(wantQty) {
		t.Fatalf("projection count: want=%d got=%d", len(wantQty), len(out.Projections))
	}
	for i, want := range wantQty {
		if got := out.Projections[i].ProjectedQty; !got.Equal(dec(want)) {
			t.Fatalf("week %d projected qty: want=%s got=%s", i, want, got)
		}
	}

	if len(out.Orders) != 2 {
		t.Fatalf("order count: want=2 got=%d", len(out.Orders))
	}
	first := out.Orders[0]
	if !first.Week.Equal(runWeek.Add(2)) {
		t.Fatalf("first order week: want=%s got=%s", runWeek.Add(2), first.Week)
	}
	if !first.Qty.Equal(dec("60")) {
		t.Fatalf("first order qty: want=60 got=%s", first.Qty)
	}
	if !first.ArrivalWeek.Equal(runWeek.Add(4)) {
		t.Fatalf("first order arrival: want=%s got=%s", runWeek.Add(4), first.ArrivalWeek)
	}
	// The synthetic receipt shows up in the arrival week's row.
	if got := out.Projections[4].ReceiptsQty; !got.Equal(dec("60")) {
		t.Fatalf("arrival week receipts: want=60 got=%s", got)
	}
}

// While a synthetic order is still in flight, a re-trigger is suppressed:
// week 3 sits at 20 (below the reorder point) but the week-2 order has not
// arrived yet, so no second order is placed.
func TestSimulatePairROPSuppressesInFlightOrders(t *testing.T) {
	runWeek := mustWeek(t, "2025-03-03")
	p := basePolicy()
	p.Mode = types.PlanningModeROP
	p.SafetyStockWeeks = dec("0.5")
	p.OrderUpToQty = dec("100")

	in := PairInputs{
		Policy:       p,
		SnapshotWeek: runWeek,
		OnHandQty:    dec("100"),
		Customer:     steadyHistory(t, runWeek, 8, "20"),
	}

	out, err := SimulatePair(context.Background(), in, runWeek, testConfig())
	if err != nil {
		t.Fatalf("SimulatePair: %v", err)
	}
	for _, o := range out.Orders {
		if o.Week.Equal(runWeek.Add(3)) {
			t.Fatalf("order placed while another was in flight")
		}
	}
}

// target_weeks must not leak into ROP decisions.
func TestSimulatePairROPIgnoresTargetWeeks(t *testing.T) {
	runWeek := mustWeek(t, "2025-03-03")
	p := basePolicy()
	p.Mode = types.PlanningModeROP
	p.SafetyStockWeeks = dec("0.5")
	p.OrderUpToQty = dec("100")

	in := PairInputs{
		Policy:       p,
		SnapshotWeek: runWeek,
		OnHandQty:    dec("100"),
		Customer:     steadyHistory(t, runWeek, 8, "20"),
	}
	base, err := SimulatePair(context.Background(), in, runWeek, testConfig())
	if err != nil {
		t.Fatalf("SimulatePair: %v", err)
	}

	in.Policy.TargetWeeks = dec("40")
	changed, err := SimulatePair(context.Background(), in, runWeek, testConfig())
	if err != nil {
		t.Fatalf("SimulatePair: %v", err)
	}

	if len(base.Orders) != len(changed.Orders) {
		t.Fatalf("target_weeks changed ROP order count: %d vs %d", len(base.Orders), len(changed.Orders))
	}
	for i := range base.Orders {
		if !base.Orders[i].Qty.Equal(changed.Orders[i].Qty) {
			t.Fatalf("target_weeks changed ROP order qty at %d: %s vs %s", i, base.Orders[i].Qty, changed.Orders[i].Qty)
		}
	}
}

func TestSimulatePairWOSTargetOrdersShortfallAtArrival(t *testing.T) {
	runWeek := mustWeek(t, "2025-03-03")
	p := basePolicy()
	p.TargetWeeks = dec("4")
	p.SafetyStockWeeks = dec("0") // target at arrival = 4 * 20 = 80
	// Lead time 2 weeks.
	in := PairInputs{
		Policy:       p,
		SnapshotWeek: runWeek,
		OnHandQty:    dec("100"),
		Customer:     steadyHistory(t, runWeek, 8, "20"),
	}

	out, err := SimulatePair(context.Background(), in, runWeek, testConfig())
	if err != nil {
		t.Fatalf("SimulatePair: %v", err)
	}
	if len(out.Orders) == 0 {
		t.Fatalf("expected at least one WOS_TARGET order")
	}
	// Week 0 ends at 80; projecting two more weeks of 20 demand lands at
	// 40, a 40-unit shortfall against the 80 target at arrival.
	first := out.Orders[0]
	if !first.Week.Equal(runWeek) {
		t.Fatalf("first order week: want=%s got=%s", runWeek, first.Week)
	}
	if !first.Qty.Equal(dec("40")) {
		t.Fatalf("first order qty: want=40 got=%s", first.Qty)
	}
	if !first.ArrivalWeek.Equal(runWeek.Add(2)) {
		t.Fatalf("first order arrival: want=%s got=%s", runWeek.Add(2), first.ArrivalWeek)
	}
}

// projected_qty(w) = projected_qty(w-1) + receipts(w) - demand(w), with the
// seeding snapshot as projected_qty(start-1).
func TestSimulatePairConservation(t *testing.T) {
	runWeek := mustWeek(t, "2025-03-03")
	p := basePolicy()
	in := PairInputs{
		Policy:       p,
		SnapshotWeek: runWeek.Add(-2),
		OnHandQty:    dec("55.5"),
		Customer:     steadyHistory(t, runWeek, 6, "12.25"),
		Receipts: map[Week]decimal.Decimal{
			runWeek.Add(1): dec("30"),
			runWeek.Add(3): dec("14.5"),
		},
	}

	out, err := SimulatePair(context.Background(), in, runWeek, testConfig())
	if err != nil {
		t.Fatalf("SimulatePair: %v", err)
	}
	prev := in.OnHandQty
	for i, row := range out.Projections {
		want := prev.Add(row.ReceiptsQty).Sub(row.DemandQty)
		if !row.ProjectedQty.Equal(want) {
			t.Fatalf("week %d conservation: want=%s got=%s", i, want, row.ProjectedQty)
		}
		if !row.StartQty.Equal(prev) {
			t.Fatalf("week %d start qty: want=%s got=%s", i, prev, row.StartQty)
		}
		prev = row.ProjectedQty
	}
}

func TestSimulatePairWeeksOfCoverNullOnZeroDemand(t *testing.T) {
	runWeek := mustWeek(t, "2025-03-03")
	p := basePolicy()
	p.TargetWeeks = dec("0")
	in := PairInputs{
		Policy:       p,
		SnapshotWeek: runWeek,
		OnHandQty:    dec("50"),
		// No demand history at all; fallback constant is zero.
	}

	out, err := SimulatePair(context.Background(), in, runWeek, testConfig())
	if err != nil {
		t.Fatalf("SimulatePair: %v", err)
	}
	if out.Forecast.Method != ForecastMethodFallbackConstant {
		t.Fatalf("forecast method: want=%s got=%s", ForecastMethodFallbackConstant, out.Forecast.Method)
	}
	for i, row := range out.Projections {
		if row.WeeksOfCover.Valid {
			t.Fatalf("week %d weeks_of_cover: want NULL got=%s", i, row.WeeksOfCover.Decimal)
		}
	}
}

func TestSimulatePairStockoutBoundary(t *testing.T) {
	runWeek := mustWeek(t, "2025-03-03")
	p := basePolicy()
	p.TargetWeeks = dec("0")
	p.SafetyStockWeeks = dec("0")
	// Long lead time keeps planner arrivals outside the asserted window.
	p.LeadTimeProductionWeeks = dec("10")
	in := PairInputs{
		Policy:       p,
		SnapshotWeek: runWeek,
		OnHandQty:    dec("40"),
		Customer:     steadyHistory(t, runWeek, 8, "20"),
	}

	cfg := testConfig()
	cfg.HorizonWeeks = 3
	out, err := SimulatePair(context.Background(), in, runWeek, cfg)
	if err != nil {
		t.Fatalf("SimulatePair: %v", err)
	}
	// 40 -> 20 -> 0 -> -20: zero is not a stockout, negative is.
	if out.Projections[1].Stockout {
		t.Fatalf("projected 0 flagged as stockout")
	}
	if !out.Projections[1].ProjectedQty.IsZero() {
		t.Fatalf("week 1 projected qty: want=0 got=%s", out.Projections[1].ProjectedQty)
	}
	if !out.Projections[2].Stockout {
		t.Fatalf("negative projection not flagged as stockout")
	}
}

func TestSimulatePairZeroLeadTimeFoldsReceiptIntoSameWeek(t *testing.T) {
	runWeek := mustWeek(t, "2025-03-03")
	p := basePolicy()
	p.Mode = types.PlanningModeROP
	p.SafetyStockWeeks = dec("0.5")
	p.OrderUpToQty = dec("100")
	p.LeadTimeProductionWeeks = dec("0")
	p.LeadTimeHaulageWeeks = dec("0")

	in := PairInputs{
		Policy:       p,
		SnapshotWeek: runWeek,
		OnHandQty:    dec("25"),
		Customer:     steadyHistory(t, runWeek, 8, "20"),
	}

	cfg := testConfig()
	cfg.HorizonWeeks = 2
	out, err := SimulatePair(context.Background(), in, runWeek, cfg)
	if err != nil {
		t.Fatalf("SimulatePair: %v", err)
	}
	// Week 0: 25 - 20 = 5 <= ROP 10, order 95 arrives immediately -> 100.
	if len(out.Orders) == 0 {
		t.Fatalf("expected an immediate order")
	}
	if !out.Orders[0].ArrivalWeek.Equal(runWeek) {
		t.Fatalf("zero lead time arrival: want=%s got=%s", runWeek, out.Orders[0].ArrivalWeek)
	}
	row := out.Projections[0]
	if !row.ProjectedQty.Equal(dec("100")) {
		t.Fatalf("week 0 projected qty after fold-in: want=100 got=%s", row.ProjectedQty)
	}
	if row.Stockout {
		t.Fatalf("week 0 incorrectly flagged as stockout")
	}
}

func TestSimulatePairFractionalLeadTimeRoundsUp(t *testing.T) {
	p := basePolicy()
	p.LeadTimeProductionWeeks = dec("1.25")
	p.LeadTimeHaulageWeeks = dec("0.25") // total 1.5 -> 2 week buckets

	if got := ArrivalOffsetWeeks(p); got != 2 {
		t.Fatalf("arrival offset: want=2 got=%d", got)
	}
}

func TestSimulatePairRejectsInvalidPolicy(t *testing.T) {
	runWeek := mustWeek(t, "2025-03-03")
	p := basePolicy()
	p.LeadTimeHaulageWeeks = dec("-1")
	in := PairInputs{Policy: p, SnapshotWeek: runWeek, OnHandQty: dec("10")}

	_, err := SimulatePair(context.Background(), in, runWeek, testConfig())
	if err == nil {
		t.Fatalf("expected invalid policy error")
	}
}

func TestSimulatePairHonorsCancellation(t *testing.T) {
	runWeek := mustWeek(t, "2025-03-03")
	in := PairInputs{Policy: basePolicy(), SnapshotWeek: runWeek, OnHandQty: dec("10")}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, err := SimulatePair(ctx, in, runWeek, testConfig())
	if err == nil {
		t.Fatalf("expected context error")
	}
	if out != nil {
		t.Fatalf("cancelled simulation must not return partial rows")
	}
}
