package planning

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/yungbote/supplyplan-backend/internal/types"
)

// PairKey identifies one independent simulation unit.
type PairKey struct {
	SKU           string
	WarehouseCode string
}

func (k PairKey) String() string {
	return k.SKU + "@" + k.WarehouseCode
}

// ValidatePolicy enforces the policy-write invariants. It also runs again
// at run time so a row written before a rule tightened cannot poison a run.
func ValidatePolicy(p types.PlanningPolicy) error {
	if !p.Mode.Valid() {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidPolicy, p.Mode)
	}
	if !p.SafetyStockMethod.Valid() {
		return fmt.Errorf("%w: unknown safety_stock_method %q", ErrInvalidPolicy, p.SafetyStockMethod)
	}
	if p.ForecastWindowWeeks < 1 {
		return fmt.Errorf("%w: forecast_window_weeks must be >= 1, got %d", ErrInvalidPolicy, p.ForecastWindowWeeks)
	}
	for _, lt := range []struct {
		name string
		val  decimal.Decimal
	}{
		{"lead_time_production_weeks", p.LeadTimeProductionWeeks},
		{"lead_time_slot_wait_weeks", p.LeadTimeSlotWaitWeeks},
		{"lead_time_haulage_weeks", p.LeadTimeHaulageWeeks},
		{"lead_time_putaway_weeks", p.LeadTimePutawayWeeks},
		{"lead_time_padding_weeks", p.LeadTimePaddingWeeks},
	} {
		if lt.val.IsNegative() {
			return fmt.Errorf("%w: %s must not be negative, got %s", ErrInvalidPolicy, lt.name, lt.val)
		}
	}
	if p.SafetyStockMethod == types.SafetyStockMethodServiceLevel {
		one := decimal.NewFromInt(1)
		if !p.ServiceLevel.IsPositive() || p.ServiceLevel.GreaterThanOrEqual(one) {
			return fmt.Errorf("%w: service_level must be in (0,1), got %s", ErrInvalidPolicy, p.ServiceLevel)
		}
	}
	if p.SafetyStockWeeks.IsNegative() {
		return fmt.Errorf("%w: safety_stock_weeks must not be negative, got %s", ErrInvalidPolicy, p.SafetyStockWeeks)
	}
	if p.TargetWeeks.IsNegative() {
		return fmt.Errorf("%w: target_weeks must not be negative, got %s", ErrInvalidPolicy, p.TargetWeeks)
	}
	if p.OrderUpToQty.IsNegative() {
		return fmt.Errorf("%w: order_up_to_qty must not be negative, got %s", ErrInvalidPolicy, p.OrderUpToQty)
	}
	return nil
}
