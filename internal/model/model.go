// Package model defines the persisted business records. Column names follow
// the storage schema (snake_case), JSON tags follow the application shape
// (camelCase); the struct tags are the single mapping table per entity.
package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StringList is a JSON-backed list column, portable across postgres and the
// sqlite test database.
type StringList = datatypes.JSONSlice[string]

// ensureID assigns a generated identifier when the caller did not provide
// one. Sign-up passes the auth account id through so the mirrored user row
// shares it.
func ensureID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// All returns every persisted model, in migration order.
func All() []interface{} {
	return []interface{}{
		&AuthAccount{},
		&User{},
		&Session{},
		&Profile{},
		&Client{},
		&Package{},
		&AddOn{},
		&Project{},
		&TeamMember{},
		&Transaction{},
		&Card{},
		&FinancialPocket{},
		&Lead{},
		&Asset{},
		&Contract{},
		&ClientFeedback{},
		&Notification{},
		&SocialMediaPost{},
		&PromoCode{},
		&SOP{},
		&TeamProjectPayment{},
		&TeamPaymentRecord{},
		&RewardLedgerEntry{},
	}
}
