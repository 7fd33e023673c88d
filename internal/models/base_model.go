package models

import "time"

// BaseModel provides shared fields for all collection records. Identifiers are assigned by the
// store on insert and never reused.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
