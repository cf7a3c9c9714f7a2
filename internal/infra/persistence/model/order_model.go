package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LineItemRecordVersion is the schema version written into new line item records.
const LineItemRecordVersion = 1

// LineItemRecord is the JSON shape of one line item inside order_items and
// return_items. The SKU fields are a snapshot taken at order time.
type LineItemRecord struct {
	Version     int     `json:"v"`
	SKUID       string  `json:"sku_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	BoxPrice    float64 `json:"box_price"`
	CostPerUnit float64 `json:"cost_per_unit"`
	Quantity    int     `json:"quantity"`
}

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID             uuid.UUID                           `gorm:"type:uuid;primaryKey"`
	ShopID         uuid.UUID                           `gorm:"type:uuid;not null;index"`
	Items          datatypes.JSONSlice[LineItemRecord] `gorm:"column:order_items;not null"`
	TotalAmount    float64                             `gorm:"type:decimal(12,2);not null"`
	DiscountCode   string                              `gorm:"type:varchar(64)"`
	DiscountAmount float64                             `gorm:"type:decimal(12,2);not null"`
	FinalAmount    float64                             `gorm:"type:decimal(12,2);not null"`
	CreatedAt      time.Time                           `gorm:"index"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// ReturnOrderModel mirrors the 'return_orders' table. LinkedOrderID is a weak
// reference and is not constrained.
type ReturnOrderModel struct {
	ID            uuid.UUID                           `gorm:"type:uuid;primaryKey"`
	ShopID        uuid.UUID                           `gorm:"type:uuid;not null;index"`
	LinkedOrderID *uuid.UUID                          `gorm:"type:uuid"`
	Items         datatypes.JSONSlice[LineItemRecord] `gorm:"column:return_items;not null"`
	TotalAmount   float64                             `gorm:"type:decimal(12,2);not null"`
	ReasonCode    string                              `gorm:"type:varchar(64)"`
	Notes         string                              `gorm:"type:text"`
	CreatedAt     time.Time                           `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ReturnOrderModel) TableName() string {
	return "return_orders"
}
