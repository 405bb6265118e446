package planning

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/yungbote/supplyplan-backend/internal/types"
)

func mustWeek(t *testing.T, s string) Week {
	t.Helper()
	w, err := ParseWeek(s)
	if err != nil {
		t.Fatalf("ParseWeek(%s): %v", s, err)
	}
	return w
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// basePolicy is a valid WOS_TARGET/WEEKS policy tests mutate per case.
func basePolicy() types.PlanningPolicy {
	return types.PlanningPolicy{
		SKU:                     "SKU-1",
		WarehouseCode:           "WH-1",
		Mode:                    types.PlanningModeWOSTarget,
		TargetWeeks:             dec("4"),
		SafetyStockMethod:       types.SafetyStockMethodWeeks,
		SafetyStockWeeks:        dec("1"),
		ServiceLevel:            dec("0.95"),
		ForecastWindowWeeks:     8,
		LeadTimeProductionWeeks: dec("2"),
		LeadTimeHaulageWeeks:    dec("0"),
		IncludeSamples:          true,
	}
}

// steadyHistory writes qty per week for n weeks ending the week before end.
func steadyHistory(t *testing.T, end Week, n int, qty string) map[Week]decimal.Decimal {
	t.Helper()
	out := make(map[Week]decimal.Decimal, n)
	for i := 1; i <= n; i++ {
		out[end.Add(-i)] = dec(qty)
	}
	return out
}
