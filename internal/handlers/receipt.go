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

type ReceiptHandler struct {
	log            *logger.Logger
	receiptService services.ReceiptService
}

func NewReceiptHandler(log *logger.Logger, receiptService services.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{
		log:            log.With("handler", "ReceiptHandler"),
		receiptService: receiptService,
	}
}

type receiptRow struct {
	WeekStart     string          `json:"week_start" binding:"required"`
	SKU           string          `json:"sku" binding:"required"`
	WarehouseCode string          `json:"warehouse_code" binding:"required"`
	Qty           decimal.Decimal `json:"qty"`
	SourceType    string          `json:"source_type"`
}

type receiptCreateRequest struct {
	Receipts []receiptRow `json:"receipts" binding:"required,min=1"`
}

func (h *ReceiptHandler) Create(c *gin.Context) {
	var req receiptCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	rows := make([]*types.Receipt, 0, len(req.Receipts))
	for _, r := range req.Receipts {
		week, err := planning.ParseWeek(r.WeekStart)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_week_start", err)
			return
		}
		rows = append(rows, &types.Receipt{
			WeekStart:     week.Time(),
			SKU:           r.SKU,
			WarehouseCode: r.WarehouseCode,
			Qty:           r.Qty,
			SourceType:    r.SourceType,
		})
	}
	created, err := h.receiptService.Create(c.Request.Context(), nil, rows)
	if err != nil {
		h.log.Error("Create receipts failed", "error", err)
		RespondError(c, http.StatusBadRequest, "create_receipts_failed", err)
		return
	}
	RespondCreated(c, gin.H{"receipts": created})
}

func (h *ReceiptHandler) List(c *gin.Context) {
	receipts, err := h.receiptService.List(c.Request.Context(), nil, c.Query("sku"), c.Query("warehouse_code"))
	if err != nil {
		h.log.Error("List receipts failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "list_receipts_failed", err)
		return
	}
	RespondOK(c, gin.H{"receipts": receipts})
}
