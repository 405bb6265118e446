package types

import (
	"time"

	"github.com/google/uuid"
)

// Lane links a supplier to the warehouse it ships into.
type Lane struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SupplierID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"supplier_id"`
	Supplier    *Supplier  `gorm:"constraint:OnDelete:CASCADE;foreignKey:SupplierID;references:ID" json:"supplier,omitempty"`
	WarehouseID uuid.UUID  `gorm:"type:uuid;not null;index" json:"warehouse_id"`
	Warehouse   *Warehouse `gorm:"constraint:OnDelete:CASCADE;foreignKey:WarehouseID;references:ID" json:"warehouse,omitempty"`
	Code        string     `gorm:"column:code;size:64" json:"code"`
	CreatedAt   time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (Lane) TableName() string { return "lanes" }
