package services

import (
	"errors"
	"testing"

	"github.com/yungbote/supplyplan-backend/internal/planning"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

func TestRunStatus(t *testing.T) {
	pair := planning.PairKey{SKU: "SKU001", WarehouseCode: "WH1"}
	fail := planning.PairFailure{Pair: pair, Err: errors.New("policy not found")}

	cases := []struct {
		name   string
		result *planning.RunResult
		want   types.PlanRunStatus
	}{
		{
			name: "all pairs succeeded",
			result: &planning.RunResult{
				Outcomes: map[planning.PairKey]*planning.PairOutcome{pair: {}},
			},
			want: types.PlanRunStatusCompleted,
		},
		{
			name:   "empty dataset completes with no rows",
			result: &planning.RunResult{},
			want:   types.PlanRunStatusCompleted,
		},
		{
			name: "some pairs failed",
			result: &planning.RunResult{
				Outcomes: map[planning.PairKey]*planning.PairOutcome{pair: {}},
				Failures: []planning.PairFailure{fail},
			},
			want: types.PlanRunStatusCompletedWithErrors,
		},
		{
			name: "every pair failed",
			result: &planning.RunResult{
				Failures: []planning.PairFailure{fail},
			},
			want: types.PlanRunStatusFailed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := runStatus(tc.result); got != tc.want {
				t.Fatalf("runStatus: got %q, want %q", got, tc.want)
			}
		})
	}
}
