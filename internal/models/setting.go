package models

import "time"

// Setting keys stored in the settings collection.
const (
	SettingPlatformFeePercent = "fees.platform_percent"
	SettingTransactionFee     = "fees.transaction_fee"
	SettingTermsContent       = "terms.content"
	SettingTermsVersion       = "terms.version"
)

// Setting is a keyed platform configuration value editable by operators.
type Setting struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
