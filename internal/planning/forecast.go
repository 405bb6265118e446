package planning

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/yungbote/supplyplan-backend/internal/types"
)

const (
	// ForecastMethodTrailingMean averages the most recent
	// forecast_window_weeks of weekly history per demand type.
	ForecastMethodTrailingMean = "trailing_mean"
	// ForecastMethodFallbackConstant is the sentinel recorded when a pair
	// has no demand history at all and the configured fallback rate is
	// used instead. Missing data is never silently treated as zero.
	ForecastMethodFallbackConstant = "fallback_constant"
)

// PairInputs is everything one (sku, warehouse) simulation consumes,
// pre-grouped by week. Quantities for the same week are already summed.
type PairInputs struct {
	Policy       types.PlanningPolicy
	SnapshotWeek Week
	OnHandQty    decimal.Decimal
	Receipts     map[Week]decimal.Decimal
	Customer     map[Week]decimal.Decimal
	Samples      map[Week]decimal.Decimal
	Adjustment   map[Week]decimal.Decimal
}

// Forecast is a pair's frozen per-week demand rate, computed once per run.
type Forecast struct {
	Method       string
	CustomerRate decimal.Decimal
	SamplesRate  decimal.Decimal
}

// WeekQty is one element of a forecast demand series.
type WeekQty struct {
	Week Week
	Qty  decimal.Decimal
}

// trailingMean averages the last n observed weekly values at or before
// cutoff. Returns (0, 0 observations) with no history.
func trailingMean(history map[Week]decimal.Decimal, cutoff Week, n int) (decimal.Decimal, int) {
	weeks := make([]Week, 0, len(history))
	for w := range history {
		if w.After(cutoff) {
			continue
		}
		weeks = append(weeks, w)
	}
	if len(weeks) == 0 {
		return decimal.Zero, 0
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })
	if len(weeks) > n {
		weeks = weeks[len(weeks)-n:]
	}
	sum := decimal.Zero
	for _, w := range weeks {
		sum = sum.Add(history[w])
	}
	return sum.DivRound(decimal.NewFromInt(int64(len(weeks))), 4), len(weeks)
}

// BuildForecast derives the pair's demand rates from history at or before
// the run week. With zero history weeks across both forecastable demand
// types it degrades to the fallback constant and flags itself via Method.
func BuildForecast(in PairInputs, runWeek Week, fallbackQty decimal.Decimal) Forecast {
	window := in.Policy.ForecastWindowWeeks
	customer, nc := trailingMean(in.Customer, runWeek, window)
	samples, ns := trailingMean(in.Samples, runWeek, window)
	if nc == 0 && ns == 0 {
		return Forecast{
			Method:       ForecastMethodFallbackConstant,
			CustomerRate: fallbackQty,
			SamplesRate:  decimal.Zero,
		}
	}
	return Forecast{
		Method:       ForecastMethodTrailingMean,
		CustomerRate: customer,
		SamplesRate:  samples,
	}
}

// RatePerWeek is the combined forecast demand rate the planner works with.
func (f Forecast) RatePerWeek(includeSamples bool) decimal.Decimal {
	if includeSamples {
		return f.CustomerRate.Add(f.SamplesRate)
	}
	return f.CustomerRate
}

// DemandAt resolves one week of the demand series: the actual where a row
// exists for that demand type, the forecast rate otherwise. Adjustments
// are only ever actuals.
func DemandAt(in PairInputs, f Forecast, w Week) decimal.Decimal {
	customer, ok := in.Customer[w]
	if !ok {
		customer = f.CustomerRate
	}
	total := customer
	if in.Policy.IncludeSamples {
		samples, ok := in.Samples[w]
		if !ok {
			samples = f.SamplesRate
		}
		total = total.Add(samples)
	}
	if adj, ok := in.Adjustment[w]; ok {
		total = total.Add(adj)
	}
	return total
}

// ForecastSeries materializes the demand series for windowWeeks weeks
// starting at startWeek. Pure function of the inputs; restartable.
func ForecastSeries(in PairInputs, f Forecast, startWeek Week, windowWeeks int) []WeekQty {
	out := make([]WeekQty, 0, windowWeeks)
	w := startWeek
	for i := 0; i < windowWeeks; i++ {
		out = append(out, WeekQty{Week: w, Qty: DemandAt(in, f, w)})
		w = w.Next()
	}
	return out
}

// AvgForwardDemand averages the demand series over windowWeeks weeks
// starting at startWeek. Feeds weeks-of-cover.
func AvgForwardDemand(in PairInputs, f Forecast, startWeek Week, windowWeeks int) decimal.Decimal {
	if windowWeeks < 1 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, wq := range ForecastSeries(in, f, startWeek, windowWeeks) {
		sum = sum.Add(wq.Qty)
	}
	return sum.DivRound(decimal.NewFromInt(int64(windowWeeks)), 4)
}
