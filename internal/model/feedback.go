package model

import "gorm.io/gorm"

// ClientFeedback is a satisfaction entry from the public feedback form.
type ClientFeedback struct {
	ID           string `json:"id" gorm:"type:uuid;primaryKey"`
	ClientName   string `json:"clientName" gorm:"column:client_name"`
	Satisfaction string `json:"satisfaction"`
	Rating       int    `json:"rating"`
	Feedback     string `json:"feedback"`
	Date         string `json:"date"`
}

// TableName keeps the storage name singular, matching the schema.
func (ClientFeedback) TableName() string {
	return "client_feedback"
}

func (c *ClientFeedback) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}
