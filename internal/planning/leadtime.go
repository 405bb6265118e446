package planning

import (
	"github.com/shopspring/decimal"

	"github.com/yungbote/supplyplan-backend/internal/types"
)

// TotalLeadTimeWeeks sums the five lead-time components: weeks between
// placing a planned order and its receipt becoming available.
func TotalLeadTimeWeeks(p types.PlanningPolicy) decimal.Decimal {
	return p.LeadTimeProductionWeeks.
		Add(p.LeadTimeSlotWaitWeeks).
		Add(p.LeadTimeHaulageWeeks).
		Add(p.LeadTimePutawayWeeks).
		Add(p.LeadTimePaddingWeeks)
}

// ArrivalOffsetWeeks converts the total lead time to whole week buckets.
// Fractional weeks round up to the next simulated week boundary.
func ArrivalOffsetWeeks(p types.PlanningPolicy) int {
	n := int(TotalLeadTimeWeeks(p).Ceil().IntPart())
	if n < 0 {
		return 0
	}
	return n
}
