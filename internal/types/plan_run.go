package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PlanRun is one engine invocation. It owns every projected_inventory and
// planned_orders row it produced and is never mutated after the final
// status write.
type PlanRun struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ScenarioName string         `gorm:"column:scenario_name;size:128;not null;index" json:"scenario_name"`
	RunAt        time.Time      `gorm:"column:run_at;type:date;not null" json:"run_at"`
	HorizonWeeks int            `gorm:"column:horizon_weeks;not null;default:52" json:"horizon_weeks"`
	Status       PlanRunStatus  `gorm:"column:status;size:32;not null;default:completed" json:"status"`
	PairErrors   datatypes.JSON `gorm:"column:pair_errors;type:jsonb" json:"pair_errors,omitempty"`
	CreatedAt    time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (PlanRun) TableName() string { return "plan_runs" }

// PairError is one failed (sku, warehouse) pair within a run; the slice is
// stored on the run as jsonb.
type PairError struct {
	SKU           string `json:"sku"`
	WarehouseCode string `json:"warehouse_code"`
	Code          string `json:"code"`
	Reason        string `json:"reason"`
}
