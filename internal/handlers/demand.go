package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/planning"
	"github.com/yungbote/supplyplan-backend/internal/services"
	"github.com/yungbote/supplyplan-backend/internal/types"
)

type DemandHandler struct {
	log           *logger.Logger
	demandService services.DemandService
}

func NewDemandHandler(log *logger.Logger, demandService services.DemandService) *DemandHandler {
	return &DemandHandler{
		log:           log.With("handler", "DemandHandler"),
		demandService: demandService,
	}
}

type demandRow struct {
	WeekStart     string          `json:"week_start" binding:"required"`
	SKU           string          `json:"sku" binding:"required"`
	WarehouseCode string          `json:"warehouse_code" binding:"required"`
	DemandType    string          `json:"demand_type" binding:"required"`
	Qty           decimal.Decimal `json:"qty"`
}

type demandCreateRequest struct {
	Actuals []demandRow `json:"actuals" binding:"required,min=1"`
}

func (h *DemandHandler) Create(c *gin.Context) {
	var req demandCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	rows := make([]*types.DemandActual, 0, len(req.Actuals))
	for _, r := range req.Actuals {
		week, err := planning.ParseWeek(r.WeekStart)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_week_start", err)
			return
		}
		rows = append(rows, &types.DemandActual{
			WeekStart:     week.Time(),
			SKU:           r.SKU,
			WarehouseCode: r.WarehouseCode,
			DemandType:    types.DemandType(strings.ToUpper(r.DemandType)),
			Qty:           r.Qty,
		})
	}
	created, err := h.demandService.Create(c.Request.Context(), nil, rows)
	if err != nil {
		h.log.Error("Create demand actuals failed", "error", err)
		RespondError(c, http.StatusBadRequest, "create_demand_failed", err)
		return
	}
	RespondCreated(c, gin.H{"actuals": created})
}

func (h *DemandHandler) List(c *gin.Context) {
	actuals, err := h.demandService.List(c.Request.Context(), nil, c.Query("sku"), c.Query("warehouse_code"))
	if err != nil {
		h.log.Error("List demand actuals failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "list_demand_failed", err)
		return
	}
	RespondOK(c, gin.H{"actuals": actuals})
}
