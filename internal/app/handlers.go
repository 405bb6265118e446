package app

import (
	"github.com/yungbote/supplyplan-backend/internal/handlers"
	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/sse"
)

type Handlers struct {
	Healthcheck *handlers.HealthcheckHandler
	Product     *handlers.ProductHandler
	Warehouse   *handlers.WarehouseHandler
	Supplier    *handlers.SupplierHandler
	Lane        *handlers.LaneHandler
	Policy      *handlers.PolicyHandler
	Inventory   *handlers.InventoryHandler
	Receipt     *handlers.ReceiptHandler
	Demand      *handlers.DemandHandler
	PlanRun     *handlers.PlanRunHandler
	Import      *handlers.ImportHandler
	Export      *handlers.ExportHandler
	Template    *handlers.TemplateHandler
	Events      *handlers.EventsHandler
}

func wireHandlers(log *logger.Logger, s Services, hub *sse.SSEHub) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Healthcheck: handlers.NewHealthcheckHandler(),
		Product:     handlers.NewProductHandler(log, s.Product),
		Warehouse:   handlers.NewWarehouseHandler(log, s.Warehouse),
		Supplier:    handlers.NewSupplierHandler(log, s.Supplier),
		Lane:        handlers.NewLaneHandler(log, s.Lane),
		Policy:      handlers.NewPolicyHandler(log, s.Policy),
		Inventory:   handlers.NewInventoryHandler(log, s.Snapshot),
		Receipt:     handlers.NewReceiptHandler(log, s.Receipt),
		Demand:      handlers.NewDemandHandler(log, s.Demand),
		PlanRun:     handlers.NewPlanRunHandler(log, s.PlanRun, s.Explanation),
		Import:      handlers.NewImportHandler(log, s.Import),
		Export:      handlers.NewExportHandler(log, s.Export),
		Template:    handlers.NewTemplateHandler(log),
		Events:      handlers.NewEventsHandler(log, hub),
	}
}
