package services

import (
	"time"

	"github.com/yungbote/supplyplan-backend/internal/planning"
)

// isMondayDate reports whether t is a Monday at midnight UTC, the only
// week_start value the weekly tables accept.
func isMondayDate(t time.Time) bool {
	return planning.WeekOf(t).Time().Equal(t.UTC())
}
