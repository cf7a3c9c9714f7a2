package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StatusUpdateRecordVersion is the schema version written into new history records.
const StatusUpdateRecordVersion = 1

// StatusUpdateRecord is the JSON shape of one status_history entry.
type StatusUpdateRecord struct {
	Version   int       `json:"v"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Notes     string    `json:"notes,omitempty"`
	Location  string    `json:"location,omitempty"`
	UpdatedBy string    `json:"updated_by,omitempty"`
}

// DeliveryModel mirrors the 'deliveries' table. order_id is unique so a
// second delivery for the same order fails at insert.
type DeliveryModel struct {
	ID                    uuid.UUID                               `gorm:"type:uuid;primaryKey"`
	OrderID               uuid.UUID                               `gorm:"type:uuid;not null;uniqueIndex"`
	ShopID                uuid.UUID                               `gorm:"type:uuid;not null;index"`
	Status                string                                  `gorm:"type:varchar(32);not null;index"`
	CurrentLocation       string                                  `gorm:"type:text"`
	EstimatedDeliveryDate *time.Time
	ActualDeliveryDate    *time.Time
	TrackingNumber        string                                  `gorm:"type:varchar(32);not null;index"`
	DeliveryNotes         string                                  `gorm:"type:text"`
	StatusHistory         datatypes.JSONSlice[StatusUpdateRecord] `gorm:"not null"`
	CreatedAt             time.Time                               `gorm:"index"`
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryModel) TableName() string {
	return "deliveries"
}
