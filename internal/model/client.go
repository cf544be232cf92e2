package model

import "gorm.io/gorm"

// Client is a customer record. PortalAccessID keys the public client portal.
type Client struct {
	ID             string `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string `json:"name" gorm:"index"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Whatsapp       string `json:"whatsapp"`
	Since          string `json:"since"`
	Instagram      string `json:"instagram"`
	Status         string `json:"status"`
	ClientType     string `json:"clientType" gorm:"column:client_type"`
	LastContact    string `json:"lastContact" gorm:"column:last_contact"`
	PortalAccessID string `json:"portalAccessId" gorm:"column:portal_access_id;uniqueIndex"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}
