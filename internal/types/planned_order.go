package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlannedOrder is a replenishment order the planner decided to place in one
// simulated week. ArrivalWeek is where its synthetic receipt lands.
type PlannedOrder struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PlanRunID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"plan_run_id"`
	PlanRun       *PlanRun        `gorm:"constraint:OnDelete:CASCADE;foreignKey:PlanRunID;references:ID" json:"plan_run,omitempty"`
	WeekStart     time.Time       `gorm:"column:week_start;type:date;not null;index" json:"week_start"`
	SKU           string          `gorm:"column:sku;size:64;not null;index" json:"sku"`
	WarehouseCode string          `gorm:"column:warehouse_code;size:32;not null;index" json:"warehouse_code"`
	OrderQty      decimal.Decimal `gorm:"column:order_qty;type:numeric(18,4);not null" json:"order_qty"`
	ArrivalWeek   time.Time       `gorm:"column:arrival_week;type:date;not null" json:"arrival_week"`
	CreatedAt     time.Time       `gorm:"not null;default:now()" json:"created_at"`
}

func (PlannedOrder) TableName() string { return "planned_orders" }
