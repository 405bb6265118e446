package planning

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/yungbote/supplyplan-backend/internal/logger"
)

func testEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return NewEngine(log, cfg)
}

func TestEngineIsolatesPairFailures(t *testing.T) {
	runWeek := mustWeek(t, "2025-03-03")

	good := PairInputs{
		Policy:       basePolicy(),
		SnapshotWeek: runWeek,
		OnHandQty:    dec("100"),
		Customer:     steadyHistory(t, runWeek, 8, "20"),
	}
	badPolicy := basePolicy()
	badPolicy.SKU = "SKU-BAD"
	badPolicy.LeadTimeHaulageWeeks = dec("-1")
	bad := PairInputs{Policy: badPolicy, SnapshotWeek: runWeek, OnHandQty: dec("10")}

	in := Inputs{Pairs: map[PairKey]PairInputs{
		{SKU: "SKU-1", WarehouseCode: "WH-1"}:   good,
		{SKU: "SKU-BAD", WarehouseCode: "WH-1"}: bad,
	}}

	cfg := testConfig()
	cfg.Workers = 4
	res, err := testEngine(t, cfg).Execute(context.Background(), runWeek, in, nil)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(res.Outcomes) != 1 {
		t.Fatalf("outcome count: want=1 got=%d", len(res.Outcomes))
	}
	if _, ok := res.Outcomes[PairKey{SKU: "SKU-1", WarehouseCode: "WH-1"}]; !ok {
		t.Fatalf("healthy pair missing from outcomes")
	}
	if len(res.Failures) != 1 {
		t.Fatalf("failure count: want=1 got=%d", len(res.Failures))
	}
	if !errors.Is(res.Failures[0].Err, ErrInvalidPolicy) {
		t.Fatalf("failure error: want ErrInvalidPolicy got %v", res.Failures[0].Err)
	}
}

func TestEngineReportsMissingPolicyAndSnapshot(t *testing.T) {
	runWeek := mustWeek(t, "2025-03-03")
	in := Inputs{
		Pairs:           map[PairKey]PairInputs{},
		MissingPolicy:   []PairKey{{SKU: "SKU-NP", WarehouseCode: "WH-1"}},
		MissingSnapshot: []PairKey{{SKU: "SKU-NS", WarehouseCode: "WH-1"}},
	}

	res, err := testEngine(t, testConfig()).Execute(context.Background(), runWeek, in, nil)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Succeeded() {
		t.Fatalf("run with no outcomes reported as succeeded")
	}
	if len(res.Failures) != 2 {
		t.Fatalf("failure count: want=2 got=%d", len(res.Failures))
	}
	found := map[string]error{}
	for _, f := range res.Failures {
		found[f.Pair.SKU] = f.Err
	}
	if !errors.Is(found["SKU-NP"], ErrPolicyNotFound) {
		t.Fatalf("SKU-NP error: want ErrPolicyNotFound got %v", found["SKU-NP"])
	}
	if !errors.Is(found["SKU-NS"], ErrMissingStartingSnapshot) {
		t.Fatalf("SKU-NS error: want ErrMissingStartingSnapshot got %v", found["SKU-NS"])
	}
}

func TestEngineCancellationAbortsRun(t *testing.T) {
	runWeek := mustWeek(t, "2025-03-03")
	in := Inputs{Pairs: map[PairKey]PairInputs{
		{SKU: "SKU-1", WarehouseCode: "WH-1"}: {
			Policy:       basePolicy(),
			SnapshotWeek: runWeek,
			OnHandQty:    dec("100"),
		},
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := testEngine(t, testConfig()).Execute(ctx, runWeek, in, nil)
	if err == nil {
		t.Fatalf("expected cancellation error")
	}
}

func TestEngineNotifiesPerPair(t *testing.T) {
	runWeek := mustWeek(t, "2025-03-03")
	in := Inputs{Pairs: map[PairKey]PairInputs{
		{SKU: "SKU-1", WarehouseCode: "WH-1"}: {
			Policy:       basePolicy(),
			SnapshotWeek: runWeek,
			OnHandQty:    dec("100"),
			Customer:     steadyHistory(t, runWeek, 8, "20"),
		},
		{SKU: "SKU-2", WarehouseCode: "WH-2"}: {
			Policy:       basePolicy(),
			SnapshotWeek: runWeek,
			OnHandQty:    dec("50"),
			Customer:     steadyHistory(t, runWeek, 8, "5"),
		},
	}}

	var mu sync.Mutex
	var done []PairKey
	_, err := testEngine(t, testConfig()).Execute(context.Background(), runWeek, in, func(pair PairKey, err error) {
		mu.Lock()
		done = append(done, pair)
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(done) != 2 {
		t.Fatalf("notification count: want=2 got=%d", len(done))
	}
}
