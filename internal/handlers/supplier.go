package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/services"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

type SupplierHandler struct {
	log             *logger.Logger
	supplierService services.SupplierService
}

func NewSupplierHandler(log *logger.Logger, supplierService services.SupplierService) *SupplierHandler {
	return &SupplierHandler{
		log:             log.With("handler", "SupplierHandler"),
		supplierService: supplierService,
	}
}

type supplierRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name"`
}

func (h *SupplierHandler) Create(c *gin.Context) {
	var req supplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	supplier := &types.Supplier{Code: req.Code, Name: req.Name}
	created, err := h.supplierService.Create(c.Request.Context(), nil, supplier)
	if err != nil {
		h.log.Error("Create supplier failed", "error", err)
		RespondError(c, http.StatusBadRequest, "create_supplier_failed", err)
		return
	}
	RespondCreated(c, gin.H{"supplier": created})
}

func (h *SupplierHandler) List(c *gin.Context) {
	suppliers, err := h.supplierService.List(c.Request.Context(), nil)
	if err != nil {
		h.log.Error("List suppliers failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "list_suppliers_failed", err)
		return
	}
	RespondOK(c, gin.H{"suppliers": suppliers})
}

func (h *SupplierHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	supplier, err := h.supplierService.GetByID(c.Request.Context(), nil, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "get_supplier_failed", err)
		return
	}
	if supplier == nil {
		RespondError(c, http.StatusNotFound, "supplier_not_found", nil)
		return
	}
	RespondOK(c, gin.H{"supplier": supplier})
}

func (h *SupplierHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	existing, err := h.supplierService.GetByID(c.Request.Context(), nil, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "get_supplier_failed", err)
		return
	}
	if existing == nil {
		RespondError(c, http.StatusNotFound, "supplier_not_found", nil)
		return
	}
	var req supplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	existing.Code = req.Code
	existing.Name = req.Name
	updated, err := h.supplierService.Update(c.Request.Context(), nil, existing)
	if err != nil {
		h.log.Error("Update supplier failed", "id", id, "error", err)
		RespondError(c, http.StatusBadRequest, "update_supplier_failed", err)
		return
	}
	RespondOK(c, gin.H{"supplier": updated})
}

func (h *SupplierHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := h.supplierService.Delete(c.Request.Context(), nil, id); err != nil {
		h.log.Error("Delete supplier failed", "id", id, "error", err)
		RespondError(c, http.StatusInternalServerError, "delete_supplier_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}
