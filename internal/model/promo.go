package model

import (
	"time"

	"gorm.io/gorm"
)

// PromoCode is a discount code redeemable on public bookings.
type PromoCode struct {
	ID            string    `json:"id" gorm:"type:uuid;primaryKey"`
	Code          string    `json:"code" gorm:"uniqueIndex"`
	DiscountType  string    `json:"discountType" gorm:"column:discount_type"`
	DiscountValue float64   `json:"discountValue" gorm:"column:discount_value"`
	IsActive      bool      `json:"isActive" gorm:"column:is_active"`
	UsageCount    int       `json:"usageCount" gorm:"column:usage_count"`
	MaxUsage      *int      `json:"maxUsage,omitempty" gorm:"column:max_usage"`
	ExpiryDate    *string   `json:"expiryDate,omitempty" gorm:"column:expiry_date"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (p *PromoCode) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID)
	return nil
}
