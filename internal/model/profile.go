package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Profile holds the vendor's own company settings: identity, category
// vocabularies and the document templates used by contracts and public pages.
type Profile struct {
	ID                   string         `json:"id" gorm:"type:uuid;primaryKey"`
	AdminUserID          string         `json:"adminUserId" gorm:"column:admin_user_id;type:uuid"`
	FullName             string         `json:"fullName" gorm:"column:full_name"`
	Email                string         `json:"email"`
	Phone                string         `json:"phone"`
	CompanyName          string         `json:"companyName" gorm:"column:company_name"`
	Website              string         `json:"website"`
	Address              string         `json:"address"`
	BankAccount          string         `json:"bankAccount" gorm:"column:bank_account"`
	AuthorizedSigner     string         `json:"authorizedSigner" gorm:"column:authorized_signer"`
	IDNumber             string         `json:"idNumber" gorm:"column:id_number"`
	Bio                  string         `json:"bio"`
	IncomeCategories     StringList     `json:"incomeCategories" gorm:"column:income_categories"`
	ExpenseCategories    StringList     `json:"expenseCategories" gorm:"column:expense_categories"`
	ProjectTypes         StringList     `json:"projectTypes" gorm:"column:project_types"`
	EventTypes           StringList     `json:"eventTypes" gorm:"column:event_types"`
	AssetCategories      StringList     `json:"assetCategories" gorm:"column:asset_categories"`
	SOPCategories        StringList     `json:"sopCategories" gorm:"column:sop_categories"`
	PackageCategories    StringList     `json:"packageCategories" gorm:"column:package_categories"`
	ProjectStatusConfig  datatypes.JSON `json:"projectStatusConfig" gorm:"column:project_status_config"`
	NotificationSettings datatypes.JSON `json:"notificationSettings" gorm:"column:notification_settings"`
	SecuritySettings     datatypes.JSON `json:"securitySettings" gorm:"column:security_settings"`
	BriefingTemplate     string         `json:"briefingTemplate" gorm:"column:briefing_template"`
	TermsAndConditions   string         `json:"termsAndConditions" gorm:"column:terms_and_conditions"`
	ContractTemplate     string         `json:"contractTemplate" gorm:"column:contract_template"`
	LogoBase64           string         `json:"logoBase64" gorm:"column:logo_base64"`
	BrandColor           string         `json:"brandColor" gorm:"column:brand_color"`
	PublicPageConfig     datatypes.JSON `json:"publicPageConfig" gorm:"column:public_page_config"`
	PackageShareTemplate string         `json:"packageShareTemplate" gorm:"column:package_share_template"`
	BookingFormTemplate  string         `json:"bookingFormTemplate" gorm:"column:booking_form_template"`
	ChatTemplates        datatypes.JSON `json:"chatTemplates" gorm:"column:chat_templates"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID)
	return nil
}
