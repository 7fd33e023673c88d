package models

import "time"

// UserType distinguishes buying and selling members.
type UserType string

const (
	UserBuyer  UserType = "buyer"
	UserSeller UserType = "seller"
)

// UserStatus is the moderation state of a member account.
type UserStatus string

const (
	UserActive      UserStatus = "active"
	UserSuspended   UserStatus = "suspended"
	UserDeactivated UserStatus = "deactivated"
)

// UserStatuses lists every member status.
var UserStatuses = []UserStatus{UserActive, UserSuspended, UserDeactivated}

// User is a marketplace member.
type User struct {
	BaseModel

	Name           string     `gorm:"type:varchar(255);not null" json:"name"`
	Email          string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Type           UserType   `gorm:"type:varchar(16);not null" json:"type"`
	Status         UserStatus `gorm:"type:varchar(16);not null;default:'active';index" json:"status"`
	JoinedAt       time.Time  `json:"joined_at"`
	TotalPurchases int        `json:"total_purchases"`
	TotalSpent     float64    `json:"total_spent"`
	TotalListings  int        `json:"total_listings"`
	TotalSales     float64    `json:"total_sales"`

	History []AccountActivity `gorm:"constraint:OnDelete:CASCADE" json:"account_history,omitempty"`
}

// AccountActivity is one entry of a member's account history.
type AccountActivity struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	UserID     uint      `gorm:"index;not null" json:"-"`
	OccurredAt time.Time `json:"date"`
	Action     string    `gorm:"type:varchar(64)" json:"action"`
	Item       string    `gorm:"type:varchar(255)" json:"item"`
	Amount     float64   `json:"amount"`
}
