package model

import "gorm.io/gorm"

// SOP is a standard operating procedure document. Content is stored as
// sanitized rich text.
type SOP struct {
	ID          string `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Content     string `json:"content"`
	LastUpdated string `json:"lastUpdated" gorm:"column:last_updated"`
}

// TableName avoids the default pluralization of the initialism.
func (SOP) TableName() string {
	return "sops"
}

func (s *SOP) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID)
	return nil
}
