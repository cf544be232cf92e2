package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Notification is an in-app alert. LinkView/LinkAction optionally deep-link
// it to a screen and an action payload.
type Notification struct {
	ID         string         `json:"id" gorm:"type:uuid;primaryKey"`
	Title      string         `json:"title"`
	Message    string         `json:"message"`
	Timestamp  string         `json:"timestamp"`
	IsRead     bool           `json:"isRead" gorm:"column:is_read;index"`
	Icon       string         `json:"icon"`
	LinkView   string         `json:"linkView,omitempty" gorm:"column:link_view"`
	LinkAction datatypes.JSON `json:"linkAction,omitempty" gorm:"column:link_action"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	ensureID(&n.ID)
	return nil
}
