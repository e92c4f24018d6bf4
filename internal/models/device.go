package models

import "time"

// UserDevice is a registered push endpoint for one of the user's devices.
type UserDevice struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"index" json:"user_id"`
	Platform    string    `json:"platform"` // "android" | "ios"
	TokenHash   string    `gorm:"index" json:"-"`
	EndpointARN string    `json:"-"`
	Enabled     bool      `gorm:"default:true" json:"enabled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
