package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type Meal struct {
	ID              string         `gorm:"primaryKey" json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Ingredients     datatypes.JSON `json:"ingredients" swaggertype:"array,string"`
	MealType        MealType       `gorm:"index" json:"meal_type"`
	IronContent     float64        `json:"iron_content"` // mg per serving
	Calories        float64        `json:"calories"`
	PreparationTime int            `json:"preparation_time"` // minutes
	ImageURL        string         `json:"image_url"`
	VitaminC        float64        `json:"vitamin_c"` // mg per serving
	Folate          float64        `json:"folate"`    // mcg per serving
	IsPreloaded     bool           `gorm:"index" json:"is_preloaded"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (m *Meal) SetIngredients(items []string) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	m.Ingredients = datatypes.JSON(raw)
	return nil
}

func (m *Meal) IngredientList() []string {
	var items []string
	if len(m.Ingredients) == 0 {
		return items
	}
	_ = json.Unmarshal(m.Ingredients, &items)
	return items
}
