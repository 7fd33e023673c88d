package models

import "time"

// PayoutStatus tracks where a payout request is in review.
type PayoutStatus string

const (
	PayoutPending  PayoutStatus = "pending"
	PayoutApproved PayoutStatus = "approved"
	PayoutRejected PayoutStatus = "rejected"
)

// PayoutStatuses lists every payout status.
var PayoutStatuses = []PayoutStatus{PayoutPending, PayoutApproved, PayoutRejected}

// Terminal reports whether no further review decision is possible.
func (s PayoutStatus) Terminal() bool {
	return s == PayoutApproved || s == PayoutRejected
}

// PayeeKind distinguishes affiliate commission payouts from seller cashouts.
type PayeeKind string

const (
	PayeeAffiliate PayeeKind = "affiliate"
	PayeeSeller    PayeeKind = "seller"
)

// PayeeKinds lists every payee kind.
var PayeeKinds = []PayeeKind{PayeeAffiliate, PayeeSeller}

// PayoutRequest is a request to pay out earnings to an affiliate or seller.
// RejectionReason is non-empty exactly when Status is rejected; ApprovedAt is set exactly
// when Status is approved.
type PayoutRequest struct {
	BaseModel

	PayeeKind       PayeeKind    `gorm:"type:varchar(16);not null;index" json:"payee_kind"`
	PayeeID         uint         `gorm:"index" json:"payee_id"`
	PayeeName       string       `gorm:"type:varchar(255);not null" json:"payee_name"`
	Amount          float64      `gorm:"not null" json:"amount"`
	RequestedAt     time.Time    `gorm:"not null" json:"requested_at"`
	PaymentMethod   string       `gorm:"type:varchar(64)" json:"payment_method"`
	AccountDetails  string       `gorm:"type:varchar(255)" json:"account_details"`
	Status          PayoutStatus `gorm:"type:varchar(16);not null;default:'pending';index" json:"status"`
	ApprovedAt      *time.Time   `json:"approved_at,omitempty"`
	RejectionReason string       `gorm:"type:text" json:"rejection_reason,omitempty"`
}
