package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlanPolicySnapshot copies the policy values a run actually used for one
// (sku, warehouse) pair, plus the derived rates the planner worked with.
// Explanations read this row, never the live policy table, so editing a
// policy after a run cannot change what the run reports about itself.
type PlanPolicySnapshot struct {
	ID                      uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PlanRunID               uuid.UUID         `gorm:"type:uuid;not null;index:idx_policy_snap_run_sku_wh,unique" json:"plan_run_id"`
	PlanRun                 *PlanRun          `gorm:"constraint:OnDelete:CASCADE;foreignKey:PlanRunID;references:ID" json:"plan_run,omitempty"`
	SKU                     string            `gorm:"column:sku;size:64;not null;index:idx_policy_snap_run_sku_wh,unique" json:"sku"`
	WarehouseCode           string            `gorm:"column:warehouse_code;size:32;not null;index:idx_policy_snap_run_sku_wh,unique" json:"warehouse_code"`
	Mode                    PlanningMode      `gorm:"column:mode;size:32;not null" json:"mode"`
	TargetWeeks             decimal.Decimal   `gorm:"column:target_weeks;type:numeric(10,2);not null" json:"target_weeks"`
	SafetyStockMethod       SafetyStockMethod `gorm:"column:safety_stock_method;size:32;not null" json:"safety_stock_method"`
	SafetyStockWeeks        decimal.Decimal   `gorm:"column:safety_stock_weeks;type:numeric(10,2);not null" json:"safety_stock_weeks"`
	ServiceLevel            decimal.Decimal   `gorm:"column:service_level;type:numeric(5,4);not null" json:"service_level"`
	ForecastWindowWeeks     int               `gorm:"column:forecast_window_weeks;not null" json:"forecast_window_weeks"`
	LeadTimeProductionWeeks decimal.Decimal   `gorm:"column:lead_time_production_weeks;type:numeric(10,2);not null" json:"lead_time_production_weeks"`
	LeadTimeSlotWaitWeeks   decimal.Decimal   `gorm:"column:lead_time_slot_wait_weeks;type:numeric(10,2);not null" json:"lead_time_slot_wait_weeks"`
	LeadTimeHaulageWeeks    decimal.Decimal   `gorm:"column:lead_time_haulage_weeks;type:numeric(10,2);not null" json:"lead_time_haulage_weeks"`
	LeadTimePutawayWeeks    decimal.Decimal   `gorm:"column:lead_time_putaway_weeks;type:numeric(10,2);not null" json:"lead_time_putaway_weeks"`
	LeadTimePaddingWeeks    decimal.Decimal   `gorm:"column:lead_time_padding_weeks;type:numeric(10,2);not null" json:"lead_time_padding_weeks"`
	OrderUpToQty            decimal.Decimal   `gorm:"column:order_up_to_qty;type:numeric(18,4);not null" json:"order_up_to_qty"`
	IncludeSamples          bool              `gorm:"column:include_samples;not null" json:"include_samples"`
	ForecastMethod          string            `gorm:"column:forecast_method;size:64;not null" json:"forecast_method"`
	ForecastCustomerQty     decimal.Decimal   `gorm:"column:forecast_customer_qty;type:numeric(18,4);not null" json:"forecast_customer_qty"`
	ForecastSamplesQty      decimal.Decimal   `gorm:"column:forecast_samples_qty;type:numeric(18,4);not null" json:"forecast_samples_qty"`
	AvgWeeklyDemand         decimal.Decimal   `gorm:"column:avg_weekly_demand;type:numeric(18,4);not null" json:"avg_weekly_demand"`
	SafetyStockQty          decimal.Decimal   `gorm:"column:safety_stock_qty;type:numeric(18,4);not null" json:"safety_stock_qty"`
	TotalLeadTimeWeeks      decimal.Decimal   `gorm:"column:total_lead_time_weeks;type:numeric(10,2);not null" json:"total_lead_time_weeks"`
	Degraded                bool              `gorm:"column:degraded;not null;default:false" json:"degraded"`
	CreatedAt               time.Time         `gorm:"not null;default:now()" json:"created_at"`
}

func (PlanPolicySnapshot) TableName() string { return "plan_policy_snapshots" }
