package planning

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/yungbote/supplyplan-backend/internal/types"
)

// Config is the engine's tunable environment, loaded once at startup.
type Config struct {
	HorizonWeeks      int
	Workers           int
	MinHistoryWeeks   int
	FallbackDemandQty decimal.Decimal
	MinSafetyStockQty decimal.Decimal
}

// WeekProjection is one simulated week of a pair, prior to persistence.
type WeekProjection struct {
	Week         Week
	StartQty     decimal.Decimal
	ReceiptsQty  decimal.Decimal
	DemandQty    decimal.Decimal
	ProjectedQty decimal.Decimal
	WeeksOfCover decimal.NullDecimal
	Stockout     bool
}

// OrderDecision is one planned order plus where its synthetic receipt lands.
type OrderDecision struct {
	Week        Week
	ArrivalWeek Week
	Qty         decimal.Decimal
}

// PairOutcome is the full result of one pair's simulation: the projection
// rows, the orders, and the resolved values that go into the run's policy
// snapshot.
type PairOutcome struct {
	Projections     []WeekProjection
	Orders          []OrderDecision
	Forecast        Forecast
	AvgWeeklyDemand decimal.Decimal
	SafetyStock     SafetyStockResult
	TotalLeadTime   decimal.Decimal
}

// SimulatePair runs the week-by-week state machine for one pair: projection
// from the seeding snapshot through runWeek + horizon, with the
// replenishment planner interleaved so synthetic receipts are visible to
// later weeks. Strictly sequential within the pair; the context is checked
// between week iterations so a cancelled run abandons cleanly with no rows.
func SimulatePair(ctx context.Context, in PairInputs, runWeek Week, cfg Config) (*PairOutcome, error) {
	if err := ValidatePolicy(in.Policy); err != nil {
		return nil, err
	}

	forecast := BuildForecast(in, runWeek, cfg.FallbackDemandQty)
	avgWeekly := forecast.RatePerWeek(in.Policy.IncludeSamples)
	ss := SafetyStock(in.Policy, avgWeekly, weeklyDemandHistory(in, runWeek), cfg.MinHistoryWeeks, cfg.MinSafetyStockQty)
	totalLT := TotalLeadTimeWeeks(in.Policy)
	arrivalOffset := ArrivalOffsetWeeks(in.Policy)

	endWeek := runWeek.Add(cfg.HorizonWeeks)
	weekCount := in.SnapshotWeek.WeeksBetween(endWeek) + 1

	out := &PairOutcome{
		Forecast:        forecast,
		AvgWeeklyDemand: avgWeekly,
		SafetyStock:     ss,
		TotalLeadTime:   totalLT,
	}
	synthetic := make(map[Week]decimal.Decimal)
	receiptsAt := func(w Week) decimal.Decimal {
		return in.Receipts[w].Add(synthetic[w])
	}

	onHand := in.OnHandQty
	openArrival := Week{}
	w := in.SnapshotWeek
	for i := 0; i < weekCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		receipts := receiptsAt(w)
		demand := DemandAt(in, forecast, w)
		startQty := onHand
		onHand = onHand.Add(receipts).Sub(demand)

		row := WeekProjection{
			Week:         w,
			StartQty:     startQty.Round(4),
			ReceiptsQty:  receipts.Round(4),
			DemandQty:    demand.Round(4),
			ProjectedQty: onHand.Round(4),
			WeeksOfCover: weeksOfCover(in, forecast, w, onHand),
			Stockout:     onHand.IsNegative(),
		}
		out.Projections = append(out.Projections, row)

		orderQty := decimal.Zero
		switch in.Policy.Mode {
		case types.PlanningModeROP:
			// One open synthetic order at a time: a trigger while another
			// is still in flight is suppressed, not doubled.
			inFlight := !openArrival.IsZero() && openArrival.After(w)
			rop := avgWeekly.Mul(decimal.NewFromInt(int64(arrivalOffset))).Add(ss.Qty)
			if !inFlight && onHand.LessThanOrEqual(rop) {
				if in.Policy.OrderUpToQty.IsPositive() {
					orderQty = in.Policy.OrderUpToQty.Sub(onHand)
				} else {
					orderQty = rop.Sub(onHand)
				}
			}
		default: // WOS_TARGET
			target := in.Policy.TargetWeeks.Mul(avgWeekly).Add(ss.Qty)
			atArrival := onHand
			for j := 1; j <= arrivalOffset; j++ {
				wk := w.Add(j)
				atArrival = atArrival.Add(receiptsAt(wk)).Sub(DemandAt(in, forecast, wk))
			}
			if atArrival.LessThan(target) {
				orderQty = target.Sub(atArrival)
			}
		}

		orderQty = orderQty.Round(4)
		if orderQty.IsPositive() {
			arrival := w.Add(arrivalOffset)
			synthetic[arrival] = synthetic[arrival].Add(orderQty)
			openArrival = arrival
			out.Orders = append(out.Orders, OrderDecision{Week: w, ArrivalWeek: arrival, Qty: orderQty})

			if arrivalOffset == 0 {
				// Zero lead time: the receipt lands in the week that
				// triggered it, before the row is final.
				onHand = onHand.Add(orderQty)
				last := &out.Projections[len(out.Projections)-1]
				last.ReceiptsQty = last.ReceiptsQty.Add(orderQty)
				last.ProjectedQty = onHand.Round(4)
				last.WeeksOfCover = weeksOfCover(in, forecast, w, onHand)
				last.Stockout = onHand.IsNegative()
			}
		}

		w = w.Next()
	}
	return out, nil
}

// weeksOfCover divides projected on-hand by the average demand over the
// policy's forecast window starting at the evaluated week. Null when that
// average is zero; a defined edge case, not an error.
func weeksOfCover(in PairInputs, f Forecast, w Week, onHand decimal.Decimal) decimal.NullDecimal {
	avg := AvgForwardDemand(in, f, w, in.Policy.ForecastWindowWeeks)
	if avg.IsZero() {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Valid: true, Decimal: onHand.DivRound(avg, 2)}
}

// weeklyDemandHistory sums the pair's observed demand per historical week,
// the sample feeding the SERVICE_LEVEL variance estimate.
func weeklyDemandHistory(in PairInputs, runWeek Week) []decimal.Decimal {
	byWeek := make(map[Week]decimal.Decimal)
	for w, q := range in.Customer {
		if !w.After(runWeek) {
			byWeek[w] = byWeek[w].Add(q)
		}
	}
	if in.Policy.IncludeSamples {
		for w, q := range in.Samples {
			if !w.After(runWeek) {
				byWeek[w] = byWeek[w].Add(q)
			}
		}
	}
	weeks := make([]Week, 0, len(byWeek))
	for w := range byWeek {
		weeks = append(weeks, w)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })
	out := make([]decimal.Decimal, 0, len(weeks))
	for _, w := range weeks {
		out = append(out, byWeek[w])
	}
	return out
}
