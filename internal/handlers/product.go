package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/services"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

type ProductHandler struct {
	log            *logger.Logger
	productService services.ProductService
}

func NewProductHandler(log *logger.Logger, productService services.ProductService) *ProductHandler {
	return &ProductHandler{
		log:            log.With("handler", "ProductHandler"),
		productService: productService,
	}
}

type productRequest struct {
	SKU         string `json:"sku" binding:"required"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	product := &types.Product{SKU: req.SKU, Name: req.Name, Description: req.Description}
	created, err := h.productService.Create(c.Request.Context(), nil, product)
	if err != nil {
		h.log.Error("Create product failed", "error", err)
		RespondError(c, http.StatusBadRequest, "create_product_failed", err)
		return
	}
	RespondCreated(c, gin.H{"product": created})
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context(), nil)
	if err != nil {
		h.log.Error("List products failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "list_products_failed", err)
		return
	}
	RespondOK(c, gin.H{"products": products})
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	product, err := h.productService.GetByID(c.Request.Context(), nil, id)
	if err != nil {
		h.log.Error("Get product failed", "id", id, "error", err)
		RespondError(c, http.StatusInternalServerError, "get_product_failed", err)
		return
	}
	if product == nil {
		RespondError(c, http.StatusNotFound, "product_not_found", nil)
		return
	}
	RespondOK(c, gin.H{"product": product})
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	existing, err := h.productService.GetByID(c.Request.Context(), nil, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "get_product_failed", err)
		return
	}
	if existing == nil {
		RespondError(c, http.StatusNotFound, "product_not_found", nil)
		return
	}
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	existing.SKU = req.SKU
	existing.Name = req.Name
	existing.Description = req.Description
	updated, err := h.productService.Update(c.Request.Context(), nil, existing)
	if err != nil {
		h.log.Error("Update product failed", "id", id, "error", err)
		RespondError(c, http.StatusBadRequest, "update_product_failed", err)
		return
	}
	RespondOK(c, gin.H{"product": updated})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := h.productService.Delete(c.Request.Context(), nil, id); err != nil {
		h.log.Error("Delete product failed", "id", id, "error", err)
		RespondError(c, http.StatusInternalServerError, "delete_product_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}
