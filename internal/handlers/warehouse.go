package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/services"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

type WarehouseHandler struct {
	log              *logger.Logger
	warehouseService services.WarehouseService
}

func NewWarehouseHandler(log *logger.Logger, warehouseService services.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{
		log:              log.With("handler", "WarehouseHandler"),
		warehouseService: warehouseService,
	}
}

type warehouseRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name"`
}

func (h *WarehouseHandler) Create(c *gin.Context) {
	var req warehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	warehouse := &types.Warehouse{Code: req.Code, Name: req.Name}
	created, err := h.warehouseService.Create(c.Request.Context(), nil, warehouse)
	if err != nil {
		h.log.Error("Create warehouse failed", "error", err)
		RespondError(c, http.StatusBadRequest, "create_warehouse_failed", err)
		return
	}
	RespondCreated(c, gin.H{"warehouse": created})
}

func (h *WarehouseHandler) List(c *gin.Context) {
	warehouses, err := h.warehouseService.List(c.Request.Context(), nil)
	if err != nil {
		h.log.Error("List warehouses failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "list_warehouses_failed", err)
		return
	}
	RespondOK(c, gin.H{"warehouses": warehouses})
}

func (h *WarehouseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	warehouse, err := h.warehouseService.GetByID(c.Request.Context(), nil, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "get_warehouse_failed", err)
		return
	}
	if warehouse == nil {
		RespondError(c, http.StatusNotFound, "warehouse_not_found", nil)
		return
	}
	RespondOK(c, gin.H{"warehouse": warehouse})
}

func (h *WarehouseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	existing, err := h.warehouseService.GetByID(c.Request.Context(), nil, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "get_warehouse_failed", err)
		return
	}
	if existing == nil {
		RespondError(c, http.StatusNotFound, "warehouse_not_found", nil)
		return
	}
	var req warehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	existing.Code = req.Code
	existing.Name = req.Name
	updated, err := h.warehouseService.Update(c.Request.Context(), nil, existing)
	if err != nil {
		h.log.Error("Update warehouse failed", "id", id, "error", err)
		RespondError(c, http.StatusBadRequest, "update_warehouse_failed", err)
		return
	}
	RespondOK(c, gin.H{"warehouse": updated})
}

func (h *WarehouseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := h.warehouseService.Delete(c.Request.Context(), nil, id); err != nil {
		h.log.Error("Delete warehouse failed", "id", id, "error", err)
		RespondError(c, http.StatusInternalServerError, "delete_warehouse_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}
