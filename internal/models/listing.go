package models

// ListingStatus is the lifecycle state of a listing.
type ListingStatus string

const (
	ListingActive  ListingStatus = "active"
	ListingSold    ListingStatus = "sold"
	ListingHidden  ListingStatus = "hidden"
	ListingRemoved ListingStatus = "removed"
)

// ListingStatuses lists every listing status.
var ListingStatuses = []ListingStatus{ListingActive, ListingSold, ListingHidden, ListingRemoved}

// Listing is an item offered for sale.
type Listing struct {
	BaseModel

	Title           string        `gorm:"type:varchar(255);not null" json:"title"`
	Seller          string        `gorm:"type:varchar(255)" json:"seller"`
	Category        string        `gorm:"type:varchar(64)" json:"category"`
	Price           float64       `json:"price"`
	Status          ListingStatus `gorm:"type:varchar(16);not null;default:'active';index" json:"status"`
	Views           int           `json:"views"`
	Featured        bool          `json:"featured"`
	Reviewed        bool          `json:"reviewed"`
	Approved        bool          `json:"approved"`
	ViolationReason string        `gorm:"type:text" json:"violation_reason,omitempty"`
}
