package model

import (
	"time"

	"github.com/google/uuid"
)

// ShopModel mirrors the 'shops' table. Coordinates are nullable; a shop
// without both is excluded from proximity queries.
type ShopModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Location    string    `gorm:"type:text;not null"`
	PhoneNumber string    `gorm:"type:varchar(50);not null"`
	Category    string    `gorm:"type:varchar(20);not null"`
	IsNew       bool      `gorm:"not null;index"`
	Latitude    *float64  `gorm:"type:decimal(10,8);index:idx_shops_lat_lon"`
	Longitude   *float64  `gorm:"type:decimal(11,8);index:idx_shops_lat_lon"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}
