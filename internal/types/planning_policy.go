package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlanningPolicy is the effective replenishment configuration for one
// (sku, warehouse) pair. All branch fields are always present; mode and
// safety_stock_method select which ones drive a run.
type PlanningPolicy struct {
	ID                      uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SKU                     string            `gorm:"column:sku;size:64;not null;index:idx_policy_sku_wh,unique" json:"sku"`
	WarehouseCode           string            `gorm:"column:warehouse_code;size:32;not null;index:idx_policy_sku_wh,unique" json:"warehouse_code"`
	Mode                    PlanningMode      `gorm:"column:mode;size:32;not null;default:WOS_TARGET" json:"mode"`
	TargetWeeks             decimal.Decimal   `gorm:"column:target_weeks;type:numeric(10,2);not null;default:4" json:"target_weeks"`
	SafetyStockMethod       SafetyStockMethod `gorm:"column:safety_stock_method;size:32;not null;default:WEEKS" json:"safety_stock_method"`
	SafetyStockWeeks        decimal.Decimal   `gorm:"column:safety_stock_weeks;type:numeric(10,2);not null;default:1" json:"safety_stock_weeks"`
	ServiceLevel            decimal.Decimal   `gorm:"column:service_level;type:numeric(5,4);not null;default:0.95" json:"service_level"`
	ForecastWindowWeeks     int               `gorm:"column:forecast_window_weeks;not null;default:8" json:"forecast_window_weeks"`
	LeadTimeProductionWeeks decimal.Decimal   `gorm:"column:lead_time_production_weeks;type:numeric(10,2);not null;default:2" json:"lead_time_production_weeks"`
	LeadTimeSlotWaitWeeks   decimal.Decimal   `gorm:"column:lead_time_slot_wait_weeks;type:numeric(10,2);not null;default:0" json:"lead_time_slot_wait_weeks"`
	LeadTimeHaulageWeeks    decimal.Decimal   `gorm:"column:lead_time_haulage_weeks;type:numeric(10,2);not null;default:1" json:"lead_time_haulage_weeks"`
	LeadTimePutawayWeeks    decimal.Decimal   `gorm:"column:lead_time_putaway_weeks;type:numeric(10,2);not null;default:0" json:"lead_time_putaway_weeks"`
	LeadTimePaddingWeeks    decimal.Decimal   `gorm:"column:lead_time_padding_weeks;type:numeric(10,2);not null;default:0" json:"lead_time_padding_weeks"`
	OrderUpToQty            decimal.Decimal   `gorm:"column:order_up_to_qty;type:numeric(18,4);not null;default:0" json:"order_up_to_qty"`
	IncludeSamples          bool              `gorm:"column:include_samples;not null;default:true" json:"include_samples"`
	CreatedAt               time.Time         `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt               time.Time         `gorm:"not null;default:now()" json:"updated_at"`
}

func (PlanningPolicy) TableName() string { return "planning_policies" }
