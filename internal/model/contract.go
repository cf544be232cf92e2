package model

import (
	"time"

	"gorm.io/gorm"
)

// Contract is the signed agreement for a project.
type Contract struct {
	ID                 string    `json:"id" gorm:"type:uuid;primaryKey"`
	ContractNumber     string    `json:"contractNumber" gorm:"column:contract_number"`
	ClientID           string    `json:"clientId" gorm:"column:client_id;type:uuid;index"`
	ProjectID          string    `json:"projectId" gorm:"column:project_id;type:uuid;index"`
	SigningDate        string    `json:"signingDate" gorm:"column:signing_date"`
	SigningLocation    string    `json:"signingLocation" gorm:"column:signing_location"`
	ClientName1        string    `json:"clientName1" gorm:"column:client_name1"`
	ClientAddress1     string    `json:"clientAddress1" gorm:"column:client_address1"`
	ClientPhone1       string    `json:"clientPhone1" gorm:"column:client_phone1"`
	ClientName2        string    `json:"clientName2" gorm:"column:client_name2"`
	ClientAddress2     string    `json:"clientAddress2" gorm:"column:client_address2"`
	ClientPhone2       string    `json:"clientPhone2" gorm:"column:client_phone2"`
	ShootingDuration   string    `json:"shootingDuration" gorm:"column:shooting_duration"`
	GuaranteedPhotos   string    `json:"guaranteedPhotos" gorm:"column:guaranteed_photos"`
	AlbumDetails       string    `json:"albumDetails" gorm:"column:album_details"`
	DigitalFilesFormat string    `json:"digitalFilesFormat" gorm:"column:digital_files_format"`
	OtherItems         string    `json:"otherItems" gorm:"column:other_items"`
	PersonnelCount     string    `json:"personnelCount" gorm:"column:personnel_count"`
	DeliveryTimeframe  string    `json:"deliveryTimeframe" gorm:"column:delivery_timeframe"`
	DpDate             string    `json:"dpDate" gorm:"column:dp_date"`
	FinalPaymentDate   string    `json:"finalPaymentDate" gorm:"column:final_payment_date"`
	CancellationPolicy string    `json:"cancellationPolicy" gorm:"column:cancellation_policy"`
	Jurisdiction       string    `json:"jurisdiction"`
	VendorSignature    string    `json:"vendorSignature" gorm:"column:vendor_signature"`
	ClientSignature    string    `json:"clientSignature" gorm:"column:client_signature"`
	CreatedAt          time.Time `json:"createdAt"`
}

func (c *Contract) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}
