package model

import "gorm.io/gorm"

// Lead is a prospect captured from the public lead form or entered manually.
type Lead struct {
	ID             string `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string `json:"name"`
	ContactChannel string `json:"contactChannel" gorm:"column:contact_channel"`
	Location       string `json:"location"`
	Status         string `json:"status"`
	Date           string `json:"date"`
	Notes          string `json:"notes"`
	Whatsapp       string `json:"whatsapp"`
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	ensureID(&l.ID)
	return nil
}
