package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Transaction is a single income or expense entry.
type Transaction struct {
	ID              string  `json:"id" gorm:"type:uuid;primaryKey"`
	Date            string  `json:"date"`
	Description     string  `json:"description"`
	Amount          float64 `json:"amount"`
	Type            string  `json:"type"`
	ProjectID       *string `json:"projectId,omitempty" gorm:"column:project_id;type:uuid;index"`
	Category        string  `json:"category"`
	Method          string  `json:"method"`
	PocketID        *string `json:"pocketId,omitempty" gorm:"column:pocket_id;type:uuid"`
	CardID          *string `json:"cardId,omitempty" gorm:"column:card_id;type:uuid"`
	PrintingItemID  string  `json:"printingItemId" gorm:"column:printing_item_id"`
	VendorSignature string  `json:"vendorSignature" gorm:"column:vendor_signature"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	ensureID(&t.ID)
	return nil
}

// Card is a payment card or account balances are tracked against.
type Card struct {
	ID             string  `json:"id" gorm:"type:uuid;primaryKey"`
	CardHolderName string  `json:"cardHolderName" gorm:"column:card_holder_name"`
	BankName       string  `json:"bankName" gorm:"column:bank_name"`
	CardType       string  `json:"cardType" gorm:"column:card_type"`
	LastFourDigits string  `json:"lastFourDigits" gorm:"column:last_four_digits"`
	ExpiryDate     string  `json:"expiryDate" gorm:"column:expiry_date"`
	Balance        float64 `json:"balance"`
	ColorGradient  string  `json:"colorGradient" gorm:"column:color_gradient"`
}

func (c *Card) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}

// FinancialPocket is an earmarked pot of money (savings, locked funds,
// shared expense pools).
type FinancialPocket struct {
	ID           string         `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Icon         string         `json:"icon"`
	Type         string         `json:"type"`
	Amount       float64        `json:"amount"`
	GoalAmount   *float64       `json:"goalAmount,omitempty" gorm:"column:goal_amount"`
	LockEndDate  *string        `json:"lockEndDate,omitempty" gorm:"column:lock_end_date"`
	Members      datatypes.JSON `json:"members"`
	SourceCardID *string        `json:"sourceCardId,omitempty" gorm:"column:source_card_id;type:uuid"`
}

func (f *FinancialPocket) BeforeCreate(tx *gorm.DB) error {
	ensureID(&f.ID)
	return nil
}
