package models

import "gorm.io/datatypes"

// NotificationType classifies who a notification is written for.
type NotificationType string

const (
	NotificationSystemAlert   NotificationType = "system_alert"
	NotificationSellerMessage NotificationType = "seller_message"
	NotificationBuyerMessage  NotificationType = "buyer_message"
)

// NotificationTypes lists every accepted notification type.
var NotificationTypes = []NotificationType{
	NotificationSystemAlert,
	NotificationSellerMessage,
	NotificationBuyerMessage,
}

// Audience is the member segment a notification targets.
type Audience string

const (
	AudienceAll     Audience = "all"
	AudienceSellers Audience = "sellers"
	AudienceBuyers  Audience = "buyers"
)

// Audiences lists every accepted target audience.
var Audiences = []Audience{AudienceAll, AudienceSellers, AudienceBuyers}

// Notification is an operator-authored broadcast message. Message always holds the fully bound
// text; Variables records the values used when it was rendered from a template.
type Notification struct {
	BaseModel

	Type        NotificationType `gorm:"type:varchar(32);not null;index" json:"type"`
	Title       string           `gorm:"type:varchar(255);not null" json:"title"`
	Message     string           `gorm:"type:text;not null" json:"message"`
	Audience    Audience         `gorm:"type:varchar(16);not null;index" json:"target_audience"`
	Active      bool             `gorm:"not null" json:"active"`
	TemplateKey string           `gorm:"type:varchar(64)" json:"template_key,omitempty"`
	Variables   datatypes.JSON   `json:"variables,omitempty"`
}
