package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Alarm is the scheduling-facing projection of a meal preference. It is
// rewritten whenever the preference is reconciled, never edited in place.
type Alarm struct {
	ID              string         `gorm:"primaryKey" json:"id"`
	UserID          string         `gorm:"index:idx_alarm_user_slot" json:"user_id"`
	MealType        MealType       `gorm:"index:idx_alarm_user_slot" json:"meal_type"`
	Time            string         `json:"time"` // "HH:MM"
	IsEnabled       bool           `json:"is_enabled"`
	Days            datatypes.JSON `json:"days" swaggertype:"array,string"` // empty set means fire once
	ReminderMessage string         `json:"reminder_message"`
	CreatedAt       time.Time      `json:"created_at"`
}

func (a *Alarm) SetDays(days []Weekday) error {
	raw, err := json.Marshal(days)
	if err != nil {
		return err
	}
	a.Days = datatypes.JSON(raw)
	return nil
}

func (a *Alarm) DayList() []Weekday {
	var days []Weekday
	if len(a.Days) == 0 {
		return days
	}
	_ = json.Unmarshal(a.Days, &days)
	return days
}
