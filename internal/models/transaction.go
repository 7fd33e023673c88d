package models

import "time"

// TransactionType is the kind of marketplace exchange.
type TransactionType string

const (
	TransactionOffer         TransactionType = "offer"
	TransactionAcceptedOffer TransactionType = "accepted_offer"
	TransactionPurchase      TransactionType = "purchase"
)

// TransactionTypes lists every transaction type.
var TransactionTypes = []TransactionType{TransactionOffer, TransactionAcceptedOffer, TransactionPurchase}

// TransactionStatus is the settlement state of a transaction.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionRejected  TransactionStatus = "rejected"
)

// Transaction records an offer or purchase and the platform fee it earned.
type Transaction struct {
	BaseModel

	Type          TransactionType   `gorm:"type:varchar(32);not null;index" json:"type"`
	Buyer         string            `gorm:"type:varchar(255)" json:"buyer"`
	Seller        string            `gorm:"type:varchar(255)" json:"seller"`
	Item          string            `gorm:"type:varchar(255)" json:"item"`
	Amount        float64           `json:"amount"`
	OriginalPrice float64           `json:"original_price,omitempty"`
	Status        TransactionStatus `gorm:"type:varchar(16);not null;index" json:"status"`
	OccurredAt    time.Time         `json:"date"`
	PlatformFee   float64           `json:"platform_fee"`
}

// TableName avoids the TRANSACTION keyword.
func (Transaction) TableName() string {
	return "marketplace_transactions"
}
