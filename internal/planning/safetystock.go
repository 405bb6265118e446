package planning

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/yungbote/supplyplan-backend/internal/types"
)

// SafetyStockResult carries the buffer quantity plus whether the pair fell
// back to the configured minimum because history was too thin.
type SafetyStockResult struct {
	Qty      decimal.Decimal
	Degraded bool
}

// SafetyStock selects the branch by the policy's safety_stock_method.
//
// WEEKS multiplies the configured weeks by the average weekly demand.
// SERVICE_LEVEL uses z(service_level) * stddev(weekly demand) * sqrt(lead
// time); with fewer than minHistoryWeeks observed weeks it recovers to
// minSafetyQty and reports Degraded.
func SafetyStock(
	p types.PlanningPolicy,
	avgWeeklyDemand decimal.Decimal,
	weeklyHistory []decimal.Decimal,
	minHistoryWeeks int,
	minSafetyQty decimal.Decimal,
) SafetyStockResult {
	if p.SafetyStockMethod == types.SafetyStockMethodWeeks {
		return SafetyStockResult{Qty: p.SafetyStockWeeks.Mul(avgWeeklyDemand).Round(4)}
	}

	if len(weeklyHistory) < minHistoryWeeks {
		return SafetyStockResult{Qty: minSafetyQty, Degraded: true}
	}
	sd := sampleStdDev(weeklyHistory)
	z := normalQuantile(p.ServiceLevel.InexactFloat64())
	lt, _ := TotalLeadTimeWeeks(p).Float64()
	qty := z * sd * math.Sqrt(lt)
	if qty < 0 || math.IsNaN(qty) || math.IsInf(qty, 0) {
		qty = 0
	}
	return SafetyStockResult{Qty: decimal.NewFromFloat(qty).Round(4)}
}

func sampleStdDev(values []decimal.Decimal) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	var sum float64
	fs := make([]float64, n)
	for i, v := range values {
		fs[i] = v.InexactFloat64()
		sum += fs[i]
	}
	mean := sum / float64(n)
	var ss float64
	for _, f := range fs {
		d := f - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}

// normalQuantile maps a probability in (0,1) to the standard normal
// quantile using Acklam's rational approximation (relative error below
// 1.15e-9 over the whole range).
func normalQuantile(p float64) float64 {
	if p <= 0 || p >= 1 {
		return 0
	}

	a := [6]float64{-3.969683028665376e+01, 2.209460984245205e+02, -2.759285104469687e+02,
		1.383577518672690e+02, -3.066479806614716e+01, 2.506628277459239e+00}
	b := [5]float64{-5.447609879822406e+01, 1.615858368580409e+02, -1.556989798598866e+02,
		6.680131188771972e+01, -1.328068155288572e+01}
	c := [6]float64{-7.784894002430293e-03, -3.223964580411365e-01, -2.400758277161838e+00,
		-2.549732539343734e+00, 4.374664141464968e+00, 2.938163982698783e+00}
	d := [4]float64{7.784695709041462e-03, 3.224671290700398e-01, 2.445134137142996e+00,
		3.754408661907416e+00}

	const pLow = 0.02425
	const pHigh = 1 - pLow

	switch {
	case p < pLow:
		q := math.Sqrt(-2 * math.Log(p))
		return (((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
			((((d[0]*q+d[1])*q+d[2])*q+d[3])*q + 1)
	case p <= pHigh:
		q := p - 0.5
		r := q * q
		return (((((a[0]*r+a[1])*r+a[2])*r+a[3])*r+a[4])*r + a[5]) * q /
			(((((b[0]*r+b[1])*r+b[2])*r+b[3])*r+b[4])*r + 1)
	default:
		q := math.Sqrt(-2 * math.Log(1-p))
		return -(((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
			((((d[0]*q+d[1])*q+d[2])*q+d[3])*q + 1)
	}
}
