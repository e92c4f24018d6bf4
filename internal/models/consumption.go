package models

import "time"

// MealConsumption is an append-only log row. Nutrient values are snapshotted
// from the meal at logging time so later meal edits never rewrite history.
type MealConsumption struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"index:idx_cons_user_date" json:"user_id"`
	MealID      string    `json:"meal_id"`
	MealType    MealType  `json:"meal_type"`
	ConsumedAt  time.Time `json:"consumed_at"`
	Date        string    `gorm:"index:idx_cons_user_date" json:"date"` // "YYYY-MM-DD"
	IronContent float64   `json:"iron_content"`
	Calories    float64   `json:"calories"`
	VitaminC    float64   `json:"vitamin_c"`
	Folate      float64   `json:"folate"`
}

// DailySummary aggregates one user's consumption for a calendar day.
type DailySummary struct {
	Date           string  `json:"date"`
	TotalIron      float64 `json:"total_iron"`
	TotalCalories  float64 `json:"total_calories"`
	TotalVitaminC  float64 `json:"total_vitamin_c"`
	TotalFolate    float64 `json:"total_folate"`
	TotalMealCount int     `json:"total_meal_count"`
}
