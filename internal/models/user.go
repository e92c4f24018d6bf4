package models

import "time"

type User struct {
	ID            string        `gorm:"primaryKey" json:"id"`
	Email         string        `gorm:"unique" json:"email"`
	Password      string        `json:"-"`
	Name          string        `json:"name"`
	Age           int           `json:"age"`
	Weight        float64       `json:"weight"` // kilograms
	Height        float64       `json:"height"` // centimeters
	ActivityLevel ActivityLevel `json:"activity_level"`
	AnemiaRisk    AnemiaRisk    `json:"anemia_risk"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
