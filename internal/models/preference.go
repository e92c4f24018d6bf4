package models

import "time"

// UserMealPreference is the user's choice for one meal slot. At most one
// active row exists per (user_id, meal_type); the repository upsert enforces
// this by deactivating older rows.
type UserMealPreference struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	UserID          string    `gorm:"index:idx_pref_user_slot" json:"user_id"`
	MealType        MealType  `gorm:"index:idx_pref_user_slot" json:"meal_type"`
	SelectedMealID  string    `json:"selected_meal_id"`
	TimeSlot        string    `json:"time_slot"` // "HH:MM"
	IsActive        bool      `json:"is_active"`
	ReminderEnabled bool      `json:"reminder_enabled"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
