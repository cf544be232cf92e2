package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TeamMember is a freelancer. PortalAccessID keys the freelancer portal.
type TeamMember struct {
	ID               string         `json:"id" gorm:"type:uuid;primaryKey"`
	Name             string         `json:"name" gorm:"index"`
	Role             string         `json:"role"`
	Email            string         `json:"email"`
	Phone            string         `json:"phone"`
	StandardFee      float64        `json:"standardFee" gorm:"column:standard_fee"`
	NoRek            string         `json:"noRek" gorm:"column:no_rek"`
	RewardBalance    float64        `json:"rewardBalance" gorm:"column:reward_balance"`
	Rating           float64        `json:"rating"`
	PerformanceNotes datatypes.JSON `json:"performanceNotes" gorm:"column:performance_notes"`
	PortalAccessID   string         `json:"portalAccessId" gorm:"column:portal_access_id;uniqueIndex"`
}

func (t *TeamMember) BeforeCreate(tx *gorm.DB) error {
	ensureID(&t.ID)
	return nil
}

// TeamProjectPayment is a freelancer's fee entry for one project.
type TeamProjectPayment struct {
	ID             string   `json:"id" gorm:"type:uuid;primaryKey"`
	ProjectID      string   `json:"projectId" gorm:"column:project_id;type:uuid;index"`
	TeamMemberName string   `json:"teamMemberName" gorm:"column:team_member_name"`
	TeamMemberID   string   `json:"teamMemberId" gorm:"column:team_member_id;type:uuid;index"`
	Date           string   `json:"date"`
	Status         string   `json:"status"`
	Fee            float64  `json:"fee"`
	Reward         *float64 `json:"reward,omitempty"`
}

func (t *TeamProjectPayment) BeforeCreate(tx *gorm.DB) error {
	ensureID(&t.ID)
	return nil
}

// TeamPaymentRecord is a payout slip bundling several project payments.
type TeamPaymentRecord struct {
	ID                string     `json:"id" gorm:"type:uuid;primaryKey"`
	RecordNumber      string     `json:"recordNumber" gorm:"column:record_number"`
	TeamMemberID      string     `json:"teamMemberId" gorm:"column:team_member_id;type:uuid;index"`
	Date              string     `json:"date"`
	ProjectPaymentIDs StringList `json:"projectPaymentIds" gorm:"column:project_payment_ids"`
	TotalAmount       float64    `json:"totalAmount" gorm:"column:total_amount"`
	VendorSignature   string     `json:"vendorSignature" gorm:"column:vendor_signature"`
}

func (t *TeamPaymentRecord) BeforeCreate(tx *gorm.DB) error {
	ensureID(&t.ID)
	return nil
}

// RewardLedgerEntry is a credit or debit against a freelancer's reward
// balance.
type RewardLedgerEntry struct {
	ID           string  `json:"id" gorm:"type:uuid;primaryKey"`
	TeamMemberID string  `json:"teamMemberId" gorm:"column:team_member_id;type:uuid;index"`
	Date         string  `json:"date"`
	Description  string  `json:"description"`
	Amount       float64 `json:"amount"`
	ProjectID    *string `json:"projectId,omitempty" gorm:"column:project_id;type:uuid"`
}

func (r *RewardLedgerEntry) BeforeCreate(tx *gorm.DB) error {
	ensureID(&r.ID)
	return nil
}
