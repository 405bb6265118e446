package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventorySnapshot is the observed on-hand quantity for one
// (sku, warehouse) at one week. The latest one at or before the run week
// seeds that pair's simulation.
type InventorySnapshot struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	WeekStart     time.Time       `gorm:"column:week_start;type:date;not null;index:idx_snapshot_week_sku_wh,unique" json:"week_start"`
	SKU           string          `gorm:"column:sku;size:64;not null;index:idx_snapshot_week_sku_wh,unique" json:"sku"`
	WarehouseCode string          `gorm:"column:warehouse_code;size:32;not null;index:idx_snapshot_week_sku_wh,unique" json:"warehouse_code"`
	OnHandQty     decimal.Decimal `gorm:"column:on_hand_qty;type:numeric(18,4);not null;default:0" json:"on_hand_qty"`
	CreatedAt     time.Time       `gorm:"not null;default:now()" json:"created_at"`
}

func (InventorySnapshot) TableName() string { return "inventory_snapshots_weekly" }
