package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/planning"
	"github.com/yungbote/supplyplan-backend/internal/services"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

type InventoryHandler struct {
	log             *logger.Logger
	snapshotService services.SnapshotService
}

func NewInventoryHandler(log *logger.Logger, snapshotService services.SnapshotService) *InventoryHandler {
	return &InventoryHandler{
		log:             log.With("handler", "InventoryHandler"),
		snapshotService: snapshotService,
	}
}

type snapshotRow struct {
	WeekStart     string          `json:"week_start" binding:"required"`
	SKU           string          `json:"sku" binding:"required"`
	WarehouseCode string          `json:"warehouse_code" binding:"required"`
	OnHandQty     decimal.Decimal `json:"on_hand_qty"`
}

type snapshotCreateRequest struct {
	Snapshots []snapshotRow `json:"snapshots" binding:"required,min=1"`
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req snapshotCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	rows := make([]*types.InventorySnapshot, 0, len(req.Snapshots))
	for _, r := range req.Snapshots {
		week, err := planning.ParseWeek(r.WeekStart)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_week_start", err)
			return
		}
		rows = append(rows, &types.InventorySnapshot{
			WeekStart:     week.Time(),
			SKU:           r.SKU,
			WarehouseCode: r.WarehouseCode,
			OnHandQty:     r.OnHandQty,
		})
	}
	created, err := h.snapshotService.Create(c.Request.Context(), nil, rows)
	if err != nil {
		h.log.Error("Create snapshots failed", "error", err)
		RespondError(c, http.StatusBadRequest, "create_snapshots_failed", err)
		return
	}
	RespondCreated(c, gin.H{"snapshots": created})
}

func (h *InventoryHandler) List(c *gin.Context) {
	snapshots, err := h.snapshotService.List(c.Request.Context(), nil, c.Query("sku"), c.Query("warehouse_code"))
	if err != nil {
		h.log.Error("List snapshots failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "list_snapshots_failed", err)
		return
	}
	RespondOK(c, gin.H{"snapshots": snapshots})
}
