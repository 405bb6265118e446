package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/services"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

type LaneHandler struct {
	log         *logger.Logger
	laneService services.LaneService
}

func NewLaneHandler(log *logger.Logger, laneService services.LaneService) *LaneHandler {
	return &LaneHandler{
		log:         log.With("handler", "LaneHandler"),
		laneService: laneService,
	}
}

type laneRequest struct {
	SupplierID  uuid.UUID `json:"supplier_id" binding:"required"`
	WarehouseID uuid.UUID `json:"warehouse_id" binding:"required"`
	Code        string    `json:"code"`
}

func (h *LaneHandler) Create(c *gin.Context) {
	var req laneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	lane := &types.Lane{SupplierID: req.SupplierID, WarehouseID: req.WarehouseID, Code: req.Code}
	created, err := h.laneService.Create(c.Request.Context(), nil, lane)
	if err != nil {
		h.log.Error("Create lane failed", "error", err)
		RespondError(c, http.StatusBadRequest, "create_lane_failed", err)
		return
	}
	RespondCreated(c, gin.H{"lane": created})
}

func (h *LaneHandler) List(c *gin.Context) {
	lanes, err := h.laneService.List(c.Request.Context(), nil)
	if err != nil {
		h.log.Error("List lanes failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "list_lanes_failed", err)
		return
	}
	RespondOK(c, gin.H{"lanes": lanes})
}

func (h *LaneHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	lane, err := h.laneService.GetByID(c.Request.Context(), nil, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "get_lane_failed", err)
		return
	}
	if lane == nil {
		RespondError(c, http.StatusNotFound, "lane_not_found", nil)
		return
	}
	RespondOK(c, gin.H{"lane": lane})
}

func (h *LaneHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	existing, err := h.laneService.GetByID(c.Request.Context(), nil, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "get_lane_failed", err)
		return
	}
	if existing == nil {
		RespondError(c, http.StatusNotFound, "lane_not_found", nil)
		return
	}
	var req laneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	existing.SupplierID = req.SupplierID
	existing.WarehouseID = req.WarehouseID
	existing.Code = req.Code
	updated, err := h.laneService.Update(c.Request.Context(), nil, existing)
	if err != nil {
		h.log.Error("Update lane failed", "id", id, "error", err)
		RespondError(c, http.StatusBadRequest, "update_lane_failed", err)
		return
	}
	RespondOK(c, gin.H{"lane": updated})
}

func (h *LaneHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := h.laneService.Delete(c.Request.Context(), nil, id); err != nil {
		h.log.Error("Delete lane failed", "id", id, "error", err)
		RespondError(c, http.StatusInternalServerError, "delete_lane_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}
