package model

import "gorm.io/gorm"

// SocialMediaPost is a planned post tied to a project.
type SocialMediaPost struct {
	ID            string `json:"id" gorm:"type:uuid;primaryKey"`
	ProjectID     string `json:"projectId" gorm:"column:project_id;type:uuid;index"`
	ClientName    string `json:"clientName" gorm:"column:client_name"`
	PostType      string `json:"postType" gorm:"column:post_type"`
	Platform      string `json:"platform"`
	ScheduledDate string `json:"scheduledDate" gorm:"column:scheduled_date"`
	Caption       string `json:"caption"`
	MediaURL      string `json:"mediaUrl" gorm:"column:media_url"`
	Status        string `json:"status"`
	Notes         string `json:"notes"`
}

func (s *SocialMediaPost) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID)
	return nil
}
