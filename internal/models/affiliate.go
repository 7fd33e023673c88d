package models

import "time"

// AffiliateStatus toggles whether an affiliate earns commission.
type AffiliateStatus string

const (
	AffiliateActive      AffiliateStatus = "active"
	AffiliateDeactivated AffiliateStatus = "deactivated"
)

// AffiliateStatuses lists every affiliate status.
var AffiliateStatuses = []AffiliateStatus{AffiliateActive, AffiliateDeactivated}

// Affiliate is a referral partner earning commission on referred sales.
type Affiliate struct {
	BaseModel

	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	Email           string          `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	ReferralCode    string          `gorm:"type:varchar(32);uniqueIndex;not null" json:"referral_code"`
	CommissionRate  float64         `gorm:"not null" json:"commission_rate"`
	Status          AffiliateStatus `gorm:"type:varchar(16);not null;default:'active';index" json:"status"`
	TotalReferrals  int             `json:"total_referrals"`
	TotalSales      float64         `json:"total_sales"`
	TotalEarnings   float64         `json:"total_earnings"`
	PendingEarnings float64         `json:"pending_earnings"`
	PaidEarnings    float64         `json:"paid_earnings"`
	LastActivity    *time.Time      `json:"last_activity,omitempty"`
}
