package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/supplyplan-backend/internal/handlers"
)

type RouterConfig struct {
	HealthcheckHandler *handlers.HealthcheckHandler
	ProductHandler     *handlers.ProductHandler
	WarehouseHandler   *handlers.WarehouseHandler
	SupplierHandler    *handlers.SupplierHandler
	LaneHandler        *handlers.LaneHandler
	PolicyHandler      *handlers.PolicyHandler
	InventoryHandler   *handlers.InventoryHandler
	ReceiptHandler     *handlers.ReceiptHandler
	DemandHandler      *handlers.DemandHandler
	PlanRunHandler     *handlers.PlanRunHandler
	ImportHandler      *handlers.ImportHandler
	ExportHandler      *handlers.ExportHandler
	TemplateHandler    *handlers.TemplateHandler
	EventsHandler      *handlers.EventsHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", cfg.HealthcheckHandler.Healthcheck)

	api := router.Group("/api")
	{
		// Reference data
		api.POST("/products", cfg.ProductHandler.Create)
		api.GET("/products", cfg.ProductHandler.List)
		api.GET("/products/:id", cfg.ProductHandler.Get)
		api.PUT("/products/:id", cfg.ProductHandler.Update)
		api.DELETE("/products/:id", cfg.ProductHandler.Delete)

		api.POST("/warehouses", cfg.WarehouseHandler.Create)
		api.GET("/warehouses", cfg.WarehouseHandler.List)
		api.GET("/warehouses/:id", cfg.WarehouseHandler.Get)
		api.PUT("/warehouses/:id", cfg.WarehouseHandler.Update)
		api.DELETE("/warehouses/:id", cfg.WarehouseHandler.Delete)

		api.POST("/suppliers", cfg.SupplierHandler.Create)
		api.GET("/suppliers", cfg.SupplierHandler.List)
		api.GET("/suppliers/:id", cfg.SupplierHandler.Get)
		api.PUT("/suppliers/:id", cfg.SupplierHandler.Update)
		api.DELETE("/suppliers/:id", cfg.SupplierHandler.Delete)

		api.POST("/lanes", cfg.LaneHandler.Create)
		api.GET("/lanes", cfg.LaneHandler.List)
		api.GET("/lanes/:id", cfg.LaneHandler.Get)
		api.PUT("/lanes/:id", cfg.LaneHandler.Update)
		api.DELETE("/lanes/:id", cfg.LaneHandler.Delete)

		// Policies
		api.POST("/planning-policies", cfg.PolicyHandler.Create)
		api.GET("/planning-policies", cfg.PolicyHandler.List)
		api.GET("/planning-policies/effective", cfg.PolicyHandler.GetByPair)
		api.GET("/planning-policies/:id", cfg.PolicyHandler.Get)
		api.PUT("/planning-policies/:id", cfg.PolicyHandler.Update)
		api.DELETE("/planning-policies/:id", cfg.PolicyHandler.Delete)

		// Weekly facts
		api.POST("/inventory-snapshots", cfg.InventoryHandler.Create)
		api.GET("/inventory-snapshots", cfg.InventoryHandler.List)
		api.POST("/receipts", cfg.ReceiptHandler.Create)
		api.GET("/receipts", cfg.ReceiptHandler.List)
		api.POST("/demand-actuals", cfg.DemandHandler.Create)
		api.GET("/demand-actuals", cfg.DemandHandler.List)

		// Planning
		api.POST("/plan/run", cfg.PlanRunHandler.Run)
		api.GET("/plan/runs", cfg.PlanRunHandler.List)
		api.GET("/plan/runs/:id", cfg.PlanRunHandler.Get)
		api.GET("/plan/runs/:id/projected-inventory", cfg.PlanRunHandler.ProjectedInventory)
		api.GET("/plan/runs/:id/planned-orders", cfg.PlanRunHandler.PlannedOrders)
		api.GET("/plan/runs/:id/explanation", cfg.PlanRunHandler.Explanation)

		// CSV import/export
		api.POST("/import/inventory-snapshots", cfg.ImportHandler.InventorySnapshots)
		api.POST("/import/receipts", cfg.ImportHandler.Receipts)
		api.POST("/import/demand-actuals", cfg.ImportHandler.DemandActuals)
		api.POST("/import/samples-withdrawals", cfg.ImportHandler.SamplesWithdrawals)
		api.POST("/import/products", cfg.ImportHandler.Products)

		api.GET("/exports/projected-inventory", cfg.ExportHandler.ProjectedInventory)
		api.GET("/exports/planned-orders", cfg.ExportHandler.PlannedOrders)
		api.GET("/exports/inventory-snapshots", cfg.ExportHandler.InventorySnapshots)
		api.GET("/exports/receipts", cfg.ExportHandler.Receipts)
		api.GET("/exports/demand-actuals", cfg.ExportHandler.DemandActuals)

		api.GET("/templates/:name", cfg.TemplateHandler.Get)

		// SSE
		api.GET("/events", cfg.EventsHandler.Stream)
	}

	return router
}
