package planning

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBuildForecastTrailingMean(t *testing.T) {
	runWeek := mustWeek(t, "2025-03-03")
	in := PairInputs{Policy: basePolicy()}
	in.Policy.ForecastWindowWeeks = 4
	in.Customer = map[Week]decimal.Decimal{
		runWeek.Add(-6): dec("100"), // outside the window, ignored
		runWeek.Add(-5): dec("100"),
		runWeek.Add(-4): dec("10"),
		runWeek.Add(-3): dec("20"),
		runWeek.Add(-2): dec("30"),
		runWeek.Add(-1): dec("20"),
	}

	f := BuildForecast(in, runWeek, decimal.Zero)
	if f.Method != ForecastMethodTrailingMean {
		t.Fatalf("method: want=%s got=%s", ForecastMethodTrailingMean, f.Method)
	}
	if !f.CustomerRate.Equal(dec("20")) {
		t.Fatalf("customer rate: want=20 got=%s", f.CustomerRate)
	}
	if !f.SamplesRate.IsZero() {
		t.Fatalf("samples rate: want=0 got=%s", f.SamplesRate)
	}
}

func TestBuildForecastIgnoresFutureActuals(t *testing.T) {
	runWeek := mustWeek(t, "2025-03-03")
	in := PairInputs{Policy: basePolicy()}
	in.Customer = map[Week]decimal.Decimal{
		runWeek.Add(-1): dec("10"),
		runWeek.Add(2):  dec("900"), // future, not history
	}
	f := BuildForecast(in, runWeek, decimal.Zero)
	if !f.CustomerRate.Equal(dec("10")) {
		t.Fatalf("customer rate: want=10 got=%s", f.CustomerRate)
	}
}

func TestBuildForecastFallbackConstant(t *testing.T) {
	runWeek := mustWeek(t, "2025-03-03")
	in := PairInputs{Policy: basePolicy()}

	f := BuildForecast(in, runWeek, dec("7.5"))
	if f.Method != ForecastMethodFallbackConstant {
		t.Fatalf("method: want=%s got=%s", ForecastMethodFallbackConstant, f.Method)
	}
	if !f.CustomerRate.Equal(dec("7.5")) {
		t.Fatalf("fallback rate: want=7.5 got=%s", f.CustomerRate)
	}
}

func TestDemandAtPrefersActuals(t *testing.T) {
	runWeek := mustWeek(t, "2025-03-03")
	in := PairInputs{Policy: basePolicy()}
	in.Customer = map[Week]decimal.Decimal{runWeek: dec("42")}
	in.Samples = map[Week]decimal.Decimal{runWeek: dec("3")}
	in.Adjustment = map[Week]decimal.Decimal{runWeek: dec("-5")}
	f := Forecast{Method: ForecastMethodTrailingMean, CustomerRate: dec("10"), SamplesRate: dec("2")}

	if got := DemandAt(in, f, runWeek); !got.Equal(dec("40")) {
		t.Fatalf("actual week demand: want=40 got=%s", got)
	}
	// No actuals for the next week: both rates apply, no adjustment.
	if got := DemandAt(in, f, runWeek.Next()); !got.Equal(dec("12")) {
		t.Fatalf("forecast week demand: want=12 got=%s", got)
	}
}

func TestDemandAtExcludesSamplesWhenPolicySaysSo(t *testing.T) {
	runWeek := mustWeek(t, "2025-03-03")
	in := PairInputs{Policy: basePolicy()}
	in.Policy.IncludeSamples = false
	in.Samples = map[Week]decimal.Decimal{runWeek: dec("99")}
	f := Forecast{CustomerRate: dec("10"), SamplesRate: dec("5")}

	if got := DemandAt(in, f, runWeek); !got.Equal(dec("10")) {
		t.Fatalf("demand without samples: want=10 got=%s", got)
	}
}

func TestForecastSeriesLengthAndOrder(t *testing.T) {
	start := mustWeek(t, "2025-03-03")
	in := PairInputs{Policy: basePolicy()}
	f := Forecast{CustomerRate: dec("5")}

	series := ForecastSeries(in, f, start, 6)
	if len(series) != 6 {
		t.Fatalf("series length: want=6 got=%d", len(series))
	}
	for i, wq := range series {
		if !wq.Week.Equal(start.Add(i)) {
			t.Fatalf("series[%d] week: want=%s got=%s", i, start.Add(i), wq.Week)
		}
		if !wq.Qty.Equal(dec("5")) {
			t.Fatalf("series[%d] qty: want=5 got=%s", i, wq.Qty)
		}
	}
}

func TestAvgForwardDemandMixesActualsAndForecast(t *testing.T) {
	start := mustWeek(t, "2025-03-03")
	in := PairInputs{Policy: basePolicy()}
	in.Policy.IncludeSamples = false
	in.Customer = map[Week]decimal.Decimal{start: dec("30")}
	f := Forecast{CustomerRate: dec("10")}

	// Window of 4: 30 + 10 + 10 + 10 = 60 over 4 weeks.
	if got := AvgForwardDemand(in, f, start, 4); !got.Equal(dec("15")) {
		t.Fatalf("avg forward demand: want=15 got=%s", got)
	}
}
