package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/planning"
	"github.com/yungbote/supplyplan-backend/internal/services"
)

type ExportHandler struct {
	log           *logger.Logger
	exportService services.ExportService
}

func NewExportHandler(log *logger.Logger, exportService services.ExportService) *ExportHandler {
	return &ExportHandler{
		log:           log.With("handler", "ExportHandler"),
		exportService: exportService,
	}
}

func respondCSV(c *gin.Context, filename string, buf *bytes.Buffer) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

func (h *ExportHandler) ProjectedInventory(c *gin.Context) {
	runID, err := uuid.Parse(c.Query("plan_run_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_plan_run_id", err)
		return
	}
	var buf bytes.Buffer
	scenario, err := h.exportService.ProjectedInventory(c.Request.Context(), nil, runID, &buf)
	if err != nil {
		if errors.Is(err, planning.ErrRunNotFound) {
			RespondError(c, http.StatusNotFound, "run_not_found", err)
			return
		}
		h.log.Error("Export projected inventory failed", "runID", runID, "error", err)
		RespondError(c, http.StatusInternalServerError, "export_failed", err)
		return
	}
	respondCSV(c, fmt.Sprintf("projected_inventory_%s.csv", scenario), &buf)
}

func (h *ExportHandler) PlannedOrders(c *gin.Context) {
	runID, err := uuid.Parse(c.Query("plan_run_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_plan_run_id", err)
		return
	}
	var buf bytes.Buffer
	scenario, err := h.exportService.PlannedOrders(c.Request.Context(), nil, runID, &buf)
	if err != nil {
		if errors.Is(err, planning.ErrRunNotFound) {
			RespondError(c, http.StatusNotFound, "run_not_found", err)
			return
		}
		h.log.Error("Export planned orders failed", "runID", runID, "error", err)
		RespondError(c, http.StatusInternalServerError, "export_failed", err)
		return
	}
	respondCSV(c, fmt.Sprintf("planned_orders_%s.csv", scenario), &buf)
}

func (h *ExportHandler) InventorySnapshots(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.exportService.InventorySnapshots(c.Request.Context(), nil, &buf); err != nil {
		h.log.Error("Export inventory snapshots failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "export_failed", err)
		return
	}
	respondCSV(c, "inventory_snapshots.csv", &buf)
}

func (h *ExportHandler) Receipts(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.exportService.Receipts(c.Request.Context(), nil, &buf); err != nil {
		h.log.Error("Export receipts failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "export_failed", err)
		return
	}
	respondCSV(c, "receipts.csv", &buf)
}

func (h *ExportHandler) DemandActuals(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.exportService.DemandActuals(c.Request.Context(), nil, &buf); err != nil {
		h.log.Error("Export demand actuals failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "export_failed", err)
		return
	}
	respondCSV(c, "demand_actuals.csv", &buf)
}
