package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectedInventory is one simulated week for one (run, sku, warehouse).
// Rows are write-once; WeeksOfCover is NULL when the forward-window average
// demand is zero.
type ProjectedInventory struct {
	ID            uuid.UUID           `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PlanRunID     uuid.UUID           `gorm:"type:uuid;not null;index:idx_projected_run_sku_wh_week,unique" json:"plan_run_id"`
	PlanRun       *PlanRun            `gorm:"constraint:OnDelete:CASCADE;foreignKey:PlanRunID;references:ID" json:"plan_run,omitempty"`
	WeekStart     time.Time           `gorm:"column:week_start;type:date;not null;index:idx_projected_run_sku_wh_week,unique" json:"week_start"`
	SKU           string              `gorm:"column:sku;size:64;not null;index:idx_projected_run_sku_wh_week,unique" json:"sku"`
	WarehouseCode string              `gorm:"column:warehouse_code;size:32;not null;index:idx_projected_run_sku_wh_week,unique" json:"warehouse_code"`
	StartQty      decimal.Decimal     `gorm:"column:start_qty;type:numeric(18,4);not null;default:0" json:"start_qty"`
	ReceiptsQty   decimal.Decimal     `gorm:"column:receipts_qty;type:numeric(18,4);not null;default:0" json:"receipts_qty"`
	DemandQty     decimal.Decimal     `gorm:"column:demand_qty;type:numeric(18,4);not null;default:0" json:"demand_qty"`
	ProjectedQty  decimal.Decimal     `gorm:"column:projected_qty;type:numeric(18,4);not null" json:"projected_qty"`
	WeeksOfCover  decimal.NullDecimal `gorm:"column:weeks_of_cover;type:numeric(10,2)" json:"weeks_of_cover"`
	Stockout      bool                `gorm:"column:stockout;not null;default:false" json:"stockout"`
	CreatedAt     time.Time           `gorm:"not null;default:now()" json:"created_at"`
}

func (ProjectedInventory) TableName() string { return "projected_inventory" }
