package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/planning"
	"github.com/yungbote/supplyplan-backend/internal/services"
)

type PlanRunHandler struct {
	log                *logger.Logger
	planRunService     services.PlanRunService
	explanationService services.ExplanationService
}

func NewPlanRunHandler(
	log *logger.Logger,
	planRunService services.PlanRunService,
	explanationService services.ExplanationService,
) *PlanRunHandler {
	return &PlanRunHandler{
		log:                log.With("handler", "PlanRunHandler"),
		planRunService:     planRunService,
		explanationService: explanationService,
	}
}

// Run triggers a planning run. run_at accepts any date; it is truncated to
// its Monday before the simulation starts.
func (h *PlanRunHandler) Run(c *gin.Context) {
	scenario := c.Query("scenario_name")
	if scenario == "" {
		RespondError(c, http.StatusBadRequest, "missing_scenario_name", nil)
		return
	}
	req := services.RunRequest{ScenarioName: scenario}
	if raw := c.Query("run_at"); raw != "" {
		runAt, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_run_at", err)
			return
		}
		req.RunAt = runAt
	}
	if raw := c.Query("horizon_weeks"); raw != "" {
		horizon, err := strconv.Atoi(raw)
		if err != nil || horizon < 1 {
			RespondError(c, http.StatusBadRequest, "invalid_horizon_weeks", err)
			return
		}
		req.HorizonWeeks = horizon
	}

	run, err := h.planRunService.Run(c.Request.Context(), req)
	if err != nil {
		h.log.Error("Plan run failed", "scenario", scenario, "error", err)
		RespondError(c, http.StatusInternalServerError, "plan_run_failed", err)
		return
	}
	RespondOK(c, gin.H{"run": run})
}

func (h *PlanRunHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			RespondError(c, http.StatusBadRequest, "invalid_limit", err)
			return
		}
		limit = n
	}
	runs, err := h.planRunService.List(c.Request.Context(), nil, limit)
	if err != nil {
		h.log.Error("List plan runs failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "list_runs_failed", err)
		return
	}
	RespondOK(c, gin.H{"runs": runs})
}

func (h *PlanRunHandler) Get(c *gin.Context) {
	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	run, err := h.planRunService.GetByID(c.Request.Context(), nil, runID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "get_run_failed", err)
		return
	}
	if run == nil {
		RespondError(c, http.StatusNotFound, "run_not_found", nil)
		return
	}
	RespondOK(c, gin.H{"run": run})
}

func (h *PlanRunHandler) ProjectedInventory(c *gin.Context) {
	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	rows, err := h.planRunService.ProjectedInventory(c.Request.Context(), nil, runID, c.Query("sku"), c.Query("warehouse_code"))
	if err != nil {
		if errors.Is(err, planning.ErrRunNotFound) {
			RespondError(c, http.StatusNotFound, "run_not_found", err)
			return
		}
		h.log.Error("Projected inventory lookup failed", "runID", runID, "error", err)
		RespondError(c, http.StatusInternalServerError, "projected_inventory_failed", err)
		return
	}
	RespondOK(c, gin.H{"projected_inventory": rows})
}

func (h *PlanRunHandler) PlannedOrders(c *gin.Context) {
	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	rows, err := h.planRunService.PlannedOrders(c.Request.Context(), nil, runID, c.Query("sku"), c.Query("warehouse_code"))
	if err != nil {
		if errors.Is(err, planning.ErrRunNotFound) {
			RespondError(c, http.StatusNotFound, "run_not_found", err)
			return
		}
		h.log.Error("Planned orders lookup failed", "runID", runID, "error", err)
		RespondError(c, http.StatusInternalServerError, "planned_orders_failed", err)
		return
	}
	RespondOK(c, gin.H{"planned_orders": rows})
}

// Explanation answers "why does this week look like this" for one
// (sku, warehouse, week) cell of a finished run.
func (h *PlanRunHandler) Explanation(c *gin.Context) {
	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	sku := c.Query("sku")
	warehouseCode := c.Query("warehouse_code")
	if sku == "" || warehouseCode == "" {
		RespondError(c, http.StatusBadRequest, "missing_pair", nil)
		return
	}
	week, err := planning.ParseWeek(c.Query("week_start"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_week_start", err)
		return
	}
	includeSamples := c.DefaultQuery("include_samples", "true") != "false"

	explanation, err := h.explanationService.Explain(c.Request.Context(), nil, runID, sku, warehouseCode, week, includeSamples)
	if err != nil {
		switch {
		case errors.Is(err, planning.ErrRunNotFound):
			RespondError(c, http.StatusNotFound, "run_not_found", err)
		case errors.Is(err, planning.ErrProjectionNotFound):
			RespondError(c, http.StatusNotFound, "projection_not_found", err)
		default:
			h.log.Error("Explanation failed", "runID", runID, "error", err)
			RespondError(c, http.StatusInternalServerError, "explanation_failed", err)
		}
		return
	}
	RespondOK(c, gin.H{"explanation": explanation})
}
