package models

import "time"

type Diet struct {
	ID              string     `gorm:"primaryKey" json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	AnemiaRiskLevel AnemiaRisk `gorm:"index" json:"anemia_risk_level"`
	IronContent     float64    `json:"iron_content"` // aggregate mg/day
	Calories        float64    `json:"calories"`     // aggregate kcal/day
	IsPreloaded     bool       `gorm:"index" json:"is_preloaded"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// DietMealCrossRef links diets and meals many-to-many. A diet's meal list is
// always derived through this join, never stored on the diet row.
type DietMealCrossRef struct {
	DietID string `gorm:"primaryKey" json:"diet_id"`
	MealID string `gorm:"primaryKey" json:"meal_id"`
}
