package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/repos"
)

type Repos struct {
	Product        repos.ProductRepo
	Warehouse      repos.WarehouseRepo
	Supplier       repos.SupplierRepo
	Lane           repos.LaneRepo
	Policy         repos.PolicyRepo
	Snapshot       repos.SnapshotRepo
	Receipt        repos.ReceiptRepo
	Demand         repos.DemandRepo
	PlanRun        repos.PlanRunRepo
	PolicySnapshot repos.PolicySnapshotRepo
	Projected      repos.ProjectedRepo
	PlannedOrder   repos.PlannedOrderRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Product:        repos.NewProductRepo(db, log),
		Warehouse:      repos.NewWarehouseRepo(db, log),
		Supplier:       repos.NewSupplierRepo(db, log),
		Lane:           repos.NewLaneRepo(db, log),
		Policy:         repos.NewPolicyRepo(db, log),
		Snapshot:       repos.NewSnapshotRepo(db, log),
		Receipt:        repos.NewReceiptRepo(db, log),
		Demand:         repos.NewDemandRepo(db, log),
		PlanRun:        repos.NewPlanRunRepo(db, log),
		PolicySnapshot: repos.NewPolicySnapshotRepo(db, log),
		Projected:      repos.NewProjectedRepo(db, log),
		PlannedOrder:   repos.NewPlannedOrderRepo(db, log),
	}
}
