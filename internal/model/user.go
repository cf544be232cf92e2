package model

import (
	"time"

	"gorm.io/gorm"
)

// AuthAccount is the authentication provider's own record: credentials only.
type AuthAccount struct {
	ID           string `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string `json:"email" gorm:"type:varchar(254);uniqueIndex"`
	PasswordHash string `json:"-" gorm:"column:password_hash;type:varchar(255)"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (a *AuthAccount) BeforeCreate(tx *gorm.DB) error {
	ensureID(&a.ID)
	return nil
}

// User is the mirrored application-level user row. It duplicates identity
// data next to the auth account and carries role, the per-view permission
// list and the approval flag that gates sign-in.
type User struct {
	ID          string     `json:"id" gorm:"type:uuid;primaryKey"`
	Email       string     `json:"email" gorm:"type:varchar(254);uniqueIndex"`
	FullName    string     `json:"fullName" gorm:"column:full_name"`
	CompanyName string     `json:"companyName" gorm:"column:company_name"`
	Role        string     `json:"role" gorm:"type:varchar(20)"`
	Permissions StringList `json:"permissions"`
	IsApproved  bool       `json:"isApproved" gorm:"column:is_approved"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	ensureID(&u.ID)
	return nil
}

// Session is an explicit sign-in session with a defined lifecycle: created
// on login, revoked on logout or when an unapproved account is bounced.
type Session struct {
	ID        string     `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    string     `json:"userId" gorm:"column:user_id;type:uuid;index"`
	CreatedAt time.Time  `json:"createdAt"`
	RevokedAt *time.Time `json:"revokedAt,omitempty" gorm:"column:revoked_at"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID)
	return nil
}
