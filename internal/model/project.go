package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project is a booked job for a client: schedule, package, team assignment,
// costs and the delivery/confirmation state the client portal reports on.
type Project struct {
	ID                          string         `json:"id" gorm:"type:uuid;primaryKey"`
	ProjectName                 string         `json:"projectName" gorm:"column:project_name"`
	ClientName                  string         `json:"clientName" gorm:"column:client_name"`
	ClientID                    string         `json:"clientId" gorm:"column:client_id;type:uuid;index"`
	ProjectType                 string         `json:"projectType" gorm:"column:project_type"`
	PackageName                 string         `json:"packageName" gorm:"column:package_name"`
	PackageID                   string         `json:"packageId" gorm:"column:package_id;type:uuid"`
	AddOns                      datatypes.JSON `json:"addOns" gorm:"column:add_ons"`
	Date                        string         `json:"date"`
	DeadlineDate                string         `json:"deadlineDate" gorm:"column:deadline_date"`
	Location                    string         `json:"location"`
	Progress                    int            `json:"progress"`
	Status                      string         `json:"status"`
	ActiveSubStatuses           StringList     `json:"activeSubStatuses" gorm:"column:active_sub_statuses"`
	TotalCost                   float64        `json:"totalCost" gorm:"column:total_cost"`
	AmountPaid                  float64        `json:"amountPaid" gorm:"column:amount_paid"`
	PaymentStatus               string         `json:"paymentStatus" gorm:"column:payment_status"`
	Team                        datatypes.JSON `json:"team"`
	Notes                       string         `json:"notes"`
	Accommodation               string         `json:"accommodation"`
	DriveLink                   string         `json:"driveLink" gorm:"column:drive_link"`
	ClientDriveLink             string         `json:"clientDriveLink" gorm:"column:client_drive_link"`
	FinalDriveLink              string         `json:"finalDriveLink" gorm:"column:final_drive_link"`
	StartTime                   string         `json:"startTime" gorm:"column:start_time"`
	EndTime                     string         `json:"endTime" gorm:"column:end_time"`
	Image                       string         `json:"image"`
	Revisions                   datatypes.JSON `json:"revisions"`
	PromoCodeID                 *string        `json:"promoCodeId,omitempty" gorm:"column:promo_code_id;type:uuid"`
	DiscountAmount              *float64       `json:"discountAmount,omitempty" gorm:"column:discount_amount"`
	ShippingDetails             string         `json:"shippingDetails" gorm:"column:shipping_details"`
	DpProofURL                  string         `json:"dpProofUrl" gorm:"column:dp_proof_url"`
	PrintingDetails             datatypes.JSON `json:"printingDetails" gorm:"column:printing_details"`
	PrintingCost                *float64       `json:"printingCost,omitempty" gorm:"column:printing_cost"`
	TransportCost               *float64       `json:"transportCost,omitempty" gorm:"column:transport_cost"`
	IsEditingConfirmedByClient  bool           `json:"isEditingConfirmedByClient" gorm:"column:is_editing_confirmed_by_client"`
	IsPrintingConfirmedByClient bool           `json:"isPrintingConfirmedByClient" gorm:"column:is_printing_confirmed_by_client"`
	IsDeliveryConfirmedByClient bool           `json:"isDeliveryConfirmedByClient" gorm:"column:is_delivery_confirmed_by_client"`
	ConfirmedSubStatuses        StringList     `json:"confirmedSubStatuses" gorm:"column:confirmed_sub_statuses"`
	ClientSubStatusNotes        datatypes.JSON `json:"clientSubStatusNotes" gorm:"column:client_sub_status_notes"`
	SubStatusConfirmationSentAt string         `json:"subStatusConfirmationSentAt" gorm:"column:sub_status_confirmation_sent_at"`
	CompletedDigitalItems       StringList     `json:"completedDigitalItems" gorm:"column:completed_digital_items"`
	InvoiceSignature            string         `json:"invoiceSignature" gorm:"column:invoice_signature"`
	CustomSubStatuses           datatypes.JSON `json:"customSubStatuses" gorm:"column:custom_sub_statuses"`
	BookingStatus               string         `json:"bookingStatus" gorm:"column:booking_status"`
	RejectionReason             string         `json:"rejectionReason" gorm:"column:rejection_reason"`
	ChatHistory                 datatypes.JSON `json:"chatHistory" gorm:"column:chat_history"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID)
	return nil
}
