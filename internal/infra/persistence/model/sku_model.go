package model

// SKUModel mirrors the 'skus' table. The id is the human product code.
type SKUModel struct {
	ID          string  `gorm:"type:varchar(32);primaryKey"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"type:decimal(12,2);not null"`
	BoxPrice    float64 `gorm:"type:decimal(12,2);not null"`
	CostPerUnit float64 `gorm:"type:decimal(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (SKUModel) TableName() string {
	return "skus"
}
