package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SurveyModel mirrors the 'surveys' table. Ratings are flattened into columns.
type SurveyModel struct {
	ID                  uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	ShopID              *uuid.UUID                  `gorm:"type:uuid;index"`
	RespondentName      string                      `gorm:"type:varchar(255);not null"`
	RespondentPhone     string                      `gorm:"type:varchar(50)"`
	ProductQuality      int                         `gorm:"type:smallint;not null"`
	DeliveryExperience  int                         `gorm:"type:smallint;not null"`
	Pricing             int                         `gorm:"type:smallint;not null"`
	CustomerService     int                         `gorm:"type:smallint;not null"`
	OverallSatisfaction int                         `gorm:"type:smallint;not null"`
	Feedback            string                      `gorm:"type:text"`
	Concerns            datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedAt           time.Time                   `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SurveyModel) TableName() string {
	return "surveys"
}
