package services

import (
	"github.com/google/uuid"

	"github.com/yungbote/supplyplan-backend/internal/sse"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

// RunNotifier pushes plan-run progress over SSE. Every method tolerates a
// nil hub so the engine can run headless (seed tool, tests).
type RunNotifier interface {
	RunStarted(run *types.PlanRun, pairCount int)
	PairDone(runID uuid.UUID, sku, warehouseCode string, pairErr error)
	RunFinished(run *types.PlanRun)
}

type runNotifier struct {
	hub *sse.SSEHub
}

func NewRunNotifier(hub *sse.SSEHub) RunNotifier {
	return &runNotifier{hub: hub}
}

func (n *runNotifier) RunStarted(run *types.PlanRun, pairCount int) {
	if n == nil || n.hub == nil || run == nil {
		return
	}
	data := map[string]any{
		"run_id":        run.ID,
		"scenario_name": run.ScenarioName,
		"run_at":        run.RunAt,
		"horizon_weeks": run.HorizonWeeks,
		"pair_count":    pairCount,
	}
	n.hub.Broadcast(sse.SSEMessage{Channel: sse.RunsChannel, Event: sse.SSEEventRunStarted, Data: data})
	n.hub.Broadcast(sse.SSEMessage{Channel: sse.RunChannel(run.ID), Event: sse.SSEEventRunStarted, Data: data})
}

func (n *runNotifier) PairDone(runID uuid.UUID, sku, warehouseCode string, pairErr error) {
	if n == nil || n.hub == nil || runID == uuid.Nil {
		return
	}
	data := map[string]any{
		"run_id":         runID,
		"sku":            sku,
		"warehouse_code": warehouseCode,
		"ok":             pairErr == nil,
	}
	if pairErr != nil {
		data["error"] = pairErr.Error()
	}
	n.hub.Broadcast(sse.SSEMessage{Channel: sse.RunChannel(runID), Event: sse.SSEEventPairDone, Data: data})
}

func (n *runNotifier) RunFinished(run *types.PlanRun) {
	if n == nil || n.hub == nil || run == nil {
		return
	}
	data := map[string]any{
		"run_id": run.ID,
		"status": run.Status,
	}
	n.hub.Broadcast(sse.SSEMessage{Channel: sse.RunsChannel, Event: sse.SSEEventRunFinished, Data: data})
	n.hub.Broadcast(sse.SSEMessage{Channel: sse.RunChannel(run.ID), Event: sse.SSEEventRunFinished, Data: data})
}
