package repository

import (
	"nutrialarm/internal/models"

	"gorm.io/gorm"
)

type AlarmRepository interface {
	Replace(alarm *models.Alarm) error
	FindByUserAndType(userID string, mealType models.MealType) (*models.Alarm, error)
	FindAllByUserID(userID string) ([]models.Alarm, error)
	FindEnabled() ([]models.Alarm, error)
	DeleteByUserAndType(userID string, mealType models.MealType) error
}

type alarmRepository struct {
	db *gorm.DB
}

func NewAlarmRepository(db *gorm.DB) AlarmRepository {
	return &alarmRepository{db}
}

// Replace swaps the slot's alarm row wholesale. Reconciliation always
// cancels-then-reschedules, so an in-place update is never wanted.
func (r *alarmRepository) Replace(alarm *models.Alarm) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("user_id = ? AND meal_type = ?", alarm.UserID, alarm.MealType).
			Delete(&models.Alarm{}).Error
		if err != nil {
			return err
		}
		return tx.Create(alarm).Error
	})
}

func (r *alarmRepository) FindByUserAndType(userID string, mealType models.MealType) (*models.Alarm, error) {
	var alarm models.Alarm
	err := r.db.
		Where("user_id = ? AND meal_type = ?", userID, mealType).
		First(&alarm).Error
	if err != nil {
		return nil, err
	}
	return &alarm, nil
}

func (r *alarmRepository) FindAllByUserID(userID string) ([]models.Alarm, error) {
	var alarms []models.Alarm
	err := r.db.Where("user_id = ?", userID).Order("time").Find(&alarms).Error
	return alarms, err
}

func (r *alarmRepository) FindEnabled() ([]models.Alarm, error) {
	var alarms []models.Alarm
	err := r.db.Where("is_enabled = ?", true).Find(&alarms).Error
	return alarms, err
}

func (r *alarmRepository) DeleteByUserAndType(userID string, mealType models.MealType) error {
	return r.db.
		Where("user_id = ? AND meal_type = ?", userID, mealType).
		Delete(&models.Alarm{}).Error
}
