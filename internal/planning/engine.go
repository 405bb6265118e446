package planning

import (
	"context"
	"errors"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/supplyplan-backend/internal/logger"
)

// Inputs is everything a run consumes, loaded up front so the simulation
// itself never touches I/O. Policies and snapshots together define the pair
// set; a pair missing either side fails with the matching taxonomy error.
type Inputs struct {
	Pairs map[PairKey]PairInputs
	// MissingPolicy lists pairs that have a snapshot but no policy row;
	// MissingSnapshot lists pairs that have a policy but no usable
	// starting snapshot.
	MissingPolicy   []PairKey
	MissingSnapshot []PairKey
}

// PairFailure is one isolated per-pair error inside a run.
type PairFailure struct {
	Pair PairKey
	Err  error
}

// RunResult holds every pair's outcome plus the isolated failures. A run
// with failures is "completed with errors"; only a run where every pair
// failed (or that was cancelled) counts as failed.
type RunResult struct {
	Outcomes map[PairKey]*PairOutcome
	Failures []PairFailure
}

// Succeeded reports whether at least one pair produced rows.
func (r *RunResult) Succeeded() bool { return len(r.Outcomes) > 0 }

// Engine fans a run out over per-pair workers. Pairs are independent, so
// the only shared state is the result collection behind one mutex.
type Engine struct {
	log *logger.Logger
	cfg Config
}

func NewEngine(baseLog *logger.Logger, cfg Config) *Engine {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.HorizonWeeks < 1 {
		cfg.HorizonWeeks = 1
	}
	return &Engine{log: baseLog.With("component", "PlanningEngine"), cfg: cfg}
}

// Execute simulates every pair in the input set. Per-pair errors are
// collected, never fatal to the run; only context cancellation aborts the
// whole batch.
func (e *Engine) Execute(ctx context.Context, runWeek Week, in Inputs, onPairDone func(pair PairKey, err error)) (*RunResult, error) {
	result := &RunResult{Outcomes: make(map[PairKey]*PairOutcome, len(in.Pairs))}
	var mu sync.Mutex

	for _, pair := range in.MissingPolicy {
		result.Failures = append(result.Failures, PairFailure{Pair: pair, Err: ErrPolicyNotFound})
	}
	for _, pair := range in.MissingSnapshot {
		result.Failures = append(result.Failures, PairFailure{Pair: pair, Err: ErrMissingStartingSnapshot})
	}

	pairs := make([]PairKey, 0, len(in.Pairs))
	for pair := range in.Pairs {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].SKU != pairs[j].SKU {
			return pairs[i].SKU < pairs[j].SKU
		}
		return pairs[i].WarehouseCode < pairs[j].WarehouseCode
	})

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)
	for _, pair := range pairs {
		pair := pair
		pairIn := in.Pairs[pair]
		g.Go(func() error {
			outcome, err := SimulatePair(gctx, pairIn, runWeek, e.cfg)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				e.log.Warn("Pair simulation failed", "pair", pair.String(), "error", err)
				mu.Lock()
				result.Failures = append(result.Failures, PairFailure{Pair: pair, Err: err})
				mu.Unlock()
				if onPairDone != nil {
					onPairDone(pair, err)
				}
				return nil
			}
			mu.Lock()
			result.Outcomes[pair] = outcome
			mu.Unlock()
			if onPairDone != nil {
				onPairDone(pair, nil)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(result.Failures, func(i, j int) bool {
		if result.Failures[i].Pair.SKU != result.Failures[j].Pair.SKU {
			return result.Failures[i].Pair.SKU < result.Failures[j].Pair.SKU
		}
		return result.Failures[i].Pair.WarehouseCode < result.Failures[j].Pair.WarehouseCode
	})
	return result, nil
}
