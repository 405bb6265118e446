package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/supplyplan-backend/internal/server"
)

func wireRouter(h Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		HealthcheckHandler: h.Healthcheck,
		ProductHandler:     h.Product,
		WarehouseHandler:   h.Warehouse,
		SupplierHandler:    h.Supplier,
		LaneHandler:        h.Lane,
		PolicyHandler:      h.Policy,
		InventoryHandler:   h.Inventory,
		ReceiptHandler:     h.Receipt,
		DemandHandler:      h.Demand,
		PlanRunHandler:     h.PlanRun,
		ImportHandler:      h.Import,
		ExportHandler:      h.Export,
		TemplateHandler:    h.Template,
		EventsHandler:      h.Events,
	})
}
