package model

import "gorm.io/gorm"

// Asset is a piece of equipment the studio owns.
type Asset struct {
	ID            string  `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	PurchaseDate  string  `json:"purchaseDate" gorm:"column:purchase_date"`
	PurchasePrice float64 `json:"purchasePrice" gorm:"column:purchase_price"`
	SerialNumber  string  `json:"serialNumber" gorm:"column:serial_number"`
	Status        string  `json:"status"`
	Notes         string  `json:"notes"`
}

func (a *Asset) BeforeCreate(tx *gorm.DB) error {
	ensureID(&a.ID)
	return nil
}
