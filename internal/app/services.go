package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/services"
	"github.com/yungbote/supplyplan-backend/internal/sse"
)

type Services struct {
	Product     services.ProductService
	Warehouse   services.WarehouseService
	Supplier    services.SupplierService
	Lane        services.LaneService
	Policy      services.PolicyService
	Snapshot    services.SnapshotService
	Receipt     services.ReceiptService
	Demand      services.DemandService
	PlanRun     services.PlanRunService
	Explanation services.ExplanationService
	Import      services.ImportService
	Export      services.ExportService
	Notifier    services.RunNotifier
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos, hub *sse.SSEHub) Services {
	log.Info("Wiring services...")
	notifier := services.NewRunNotifier(hub)
	return Services{
		Product:   services.NewProductService(db, log, r.Product),
		Warehouse: services.NewWarehouseService(db, log, r.Warehouse),
		Supplier:  services.NewSupplierService(db, log, r.Supplier),
		Lane:      services.NewLaneService(db, log, r.Lane, r.Supplier, r.Warehouse),
		Policy:    services.NewPolicyService(db, log, r.Policy),
		Snapshot:  services.NewSnapshotService(db, log, r.Snapshot),
		Receipt:   services.NewReceiptService(db, log, r.Receipt),
		Demand:    services.NewDemandService(db, log, r.Demand),
		PlanRun: services.NewPlanRunService(
			db, log, cfg.Planning,
			r.PlanRun, r.Policy, r.Snapshot, r.Receipt, r.Demand,
			r.PolicySnapshot, r.Projected, r.PlannedOrder,
			notifier,
		),
		Explanation: services.NewExplanationService(db, log, r.PlanRun, r.PolicySnapshot, r.Projected, r.PlannedOrder),
		Import:      services.NewImportService(db, log, r.Snapshot, r.Receipt, r.Demand, r.Product),
		Export:      services.NewExportService(db, log, r.PlanRun, r.Projected, r.PlannedOrder, r.Snapshot, r.Receipt, r.Demand),
		Notifier:    notifier,
	}
}
