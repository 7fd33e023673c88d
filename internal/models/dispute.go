package models

import "time"

// DisputeStatus tracks a dispute through review.
type DisputeStatus string

const (
	DisputeOpen     DisputeStatus = "open"
	DisputeResolved DisputeStatus = "resolved"
	DisputeClosed   DisputeStatus = "closed"
)

// DisputeStatuses lists every dispute status.
var DisputeStatuses = []DisputeStatus{DisputeOpen, DisputeResolved, DisputeClosed}

// DisputeType categorises the buyer's complaint.
type DisputeType string

const (
	DisputeProductQuality DisputeType = "product_quality"
	DisputeDeliveryIssue  DisputeType = "delivery_issue"
	DisputePayment        DisputeType = "payment_dispute"
)

// DisputeTypes lists every dispute type.
var DisputeTypes = []DisputeType{DisputeProductQuality, DisputeDeliveryIssue, DisputePayment}

// Dispute is a buyer/seller case under admin review.
type Dispute struct {
	BaseModel

	CaseNumber  string        `gorm:"type:varchar(32);uniqueIndex;not null" json:"case_number"`
	Type        DisputeType   `gorm:"type:varchar(32);not null" json:"type"`
	Buyer       string        `gorm:"type:varchar(255);not null" json:"buyer"`
	Seller      string        `gorm:"type:varchar(255);not null" json:"seller"`
	Item        string        `gorm:"type:varchar(255);not null" json:"item"`
	Description string        `gorm:"type:text" json:"description"`
	Status      DisputeStatus `gorm:"type:varchar(16);not null;default:'open';index" json:"status"`
	AdminNotes  string        `gorm:"type:text" json:"admin_notes"`
	Resolution  string        `gorm:"type:text" json:"resolution"`
	ResolvedAt  *time.Time    `json:"resolved_at,omitempty"`
	ClosedAt    *time.Time    `json:"closed_at,omitempty"`
}
