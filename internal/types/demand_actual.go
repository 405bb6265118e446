package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DemandActual struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	WeekStart     time.Time       `gorm:"column:week_start;type:date;not null;index:idx_demand_week_sku_wh_type,unique" json:"week_start"`
	SKU           string          `gorm:"column:sku;size:64;not null;index:idx_demand_week_sku_wh_type,unique" json:"sku"`
	WarehouseCode string          `gorm:"column:warehouse_code;size:32;not null;index:idx_demand_week_sku_wh_type,unique" json:"warehouse_code"`
	DemandType    DemandType      `gorm:"column:demand_type;size:32;not null;index:idx_demand_week_sku_wh_type,unique" json:"demand_type"`
	Qty           decimal.Decimal `gorm:"column:qty;type:numeric(18,4);not null" json:"qty"`
	CreatedAt     time.Time       `gorm:"not null;default:now()" json:"created_at"`
}

func (DemandActual) TableName() string { return "demand_actuals" }
