package types

import (
	"time"

	"github.com/google/uuid"
)

type Warehouse struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Code      string    `gorm:"column:code;size:32;not null;uniqueIndex" json:"code"`
	Name      string    `gorm:"column:name;size:256" json:"name"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Warehouse) TableName() string { return "warehouses" }
