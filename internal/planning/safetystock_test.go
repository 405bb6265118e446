package planning

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/yungbote/supplyplan-backend/internal/types"
)

func TestSafetyStockWeeksBranch(t *testing.T) {
	p := basePolicy()
	p.SafetyStockWeeks = dec("1.5")

	got := SafetyStock(p, dec("20"), nil, 4, decimal.Zero)
	if got.Degraded {
		t.Fatalf("WEEKS branch must never degrade")
	}
	if !got.Qty.Equal(dec("30")) {
		t.Fatalf("safety stock: want=30 got=%s", got.Qty)
	}
}

func TestSafetyStockServiceLevel(t *testing.T) {
	p := basePolicy()
	p.SafetyStockMethod = types.SafetyStockMethodServiceLevel
	p.ServiceLevel = dec("0.95")
	// Total lead time 4 weeks -> sqrt = 2.
	p.LeadTimeProductionWeeks = dec("3")
	p.LeadTimeHaulageWeeks = dec("1")

	history := []decimal.Decimal{dec("10"), dec("20"), dec("30")} // sample stddev 10

	got := SafetyStock(p, dec("20"), history, 3, decimal.Zero)
	if got.Degraded {
		t.Fatalf("unexpected degraded result")
	}
	// z(0.95) * 10 * 2 ~= 32.8971
	want := 32.8971
	f, _ := got.Qty.Float64()
	if math.Abs(f-want) > 0.001 {
		t.Fatalf("safety stock: want~=%v got=%v", want, f)
	}
}

func TestSafetyStockInsufficientHistoryFallsBack(t *testing.T) {
	p := basePolicy()
	p.SafetyStockMethod = types.SafetyStockMethodServiceLevel

	history := []decimal.Decimal{dec("10"), dec("20")}

	got := SafetyStock(p, dec("20"), history, 4, dec("12"))
	if !got.Degraded {
		t.Fatalf("expected degraded result with %d weeks of history", len(history))
	}
	if !got.Qty.Equal(dec("12")) {
		t.Fatalf("fallback safety stock: want=12 got=%s", got.Qty)
	}
}

func TestNormalQuantileKnownValues(t *testing.T) {
	cases := []struct {
		p    float64
		want float64
	}{
		{0.5, 0},
		{0.95, 1.6449},
		{0.975, 1.9600},
		{0.99, 2.3263},
		{0.01, -2.3263},
	}
	for _, tc := range cases {
		got := normalQuantile(tc.p)
		if math.Abs(got-tc.want) > 0.0005 {
			t.Fatalf("normalQuantile(%v): want~=%v got=%v", tc.p, tc.want, got)
		}
	}
}

func TestSampleStdDev(t *testing.T) {
	got := sampleStdDev([]decimal.Decimal{dec("10"), dec("20"), dec("30")})
	if math.Abs(got-10) > 1e-9 {
		t.Fatalf("sample stddev: want=10 got=%v", got)
	}
	if got := sampleStdDev([]decimal.Decimal{dec("5")}); got != 0 {
		t.Fatalf("single observation stddev: want=0 got=%v", got)
	}
}
