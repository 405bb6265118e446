package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Receipt struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	WeekStart     time.Time       `gorm:"column:week_start;type:date;not null;index:idx_receipt_week_sku_wh_src,unique" json:"week_start"`
	SKU           string          `gorm:"column:sku;size:64;not null;index:idx_receipt_week_sku_wh_src,unique" json:"sku"`
	WarehouseCode string          `gorm:"column:warehouse_code;size:32;not null;index:idx_receipt_week_sku_wh_src,unique" json:"warehouse_code"`
	Qty           decimal.Decimal `gorm:"column:qty;type:numeric(18,4);not null" json:"qty"`
	SourceType    string          `gorm:"column:source_type;size:64;not null;default:'';index:idx_receipt_week_sku_wh_src,unique" json:"source_type"`
	CreatedAt     time.Time       `gorm:"not null;default:now()" json:"created_at"`
}

func (Receipt) TableName() string { return "receipts" }
