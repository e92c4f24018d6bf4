package repository

import (
	"time"

	"nutrialarm/internal/models"

	"gorm.io/gorm"
)

type PreferenceRepository interface {
	Upsert(pref *models.UserMealPreference) error
	FindActive(userID string, mealType models.MealType) (*models.UserMealPreference, error)
	FindAllActive(userID string) ([]models.UserMealPreference, error)
	Deactivate(userID string, mealType models.MealType) error
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db}
}

// Upsert keeps the at-most-one-active-per-(user,slot) invariant: any other
// active row for the slot is deactivated before this one is saved.
func (r *preferenceRepository) Upsert(pref *models.UserMealPreference) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.UserMealPreference{}).
			Where("user_id = ? AND meal_type = ? AND is_active = ? AND id <> ?",
				pref.UserID, pref.MealType, true, pref.ID).
			Updates(map[string]interface{}{"is_active": false, "updated_at": time.Now()}).Error
		if err != nil {
			return err
		}
		return tx.Save(pref).Error
	})
}

func (r *preferenceRepository) FindActive(userID string, mealType models.MealType) (*models.UserMealPreference, error) {
	var pref models.UserMealPreference
	err := r.db.
		Where("user_id = ? AND meal_type = ? AND is_active = ?", userID, mealType, true).
		First(&pref).Error
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

func (r *preferenceRepository) FindAllActive(userID string) ([]models.UserMealPreference, error) {
	var prefs []models.UserMealPreference
	err := r.db.
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("time_slot").
		Find(&prefs).Error
	return prefs, err
}

func (r *preferenceRepository) Deactivate(userID string, mealType models.MealType) error {
	return r.db.Model(&models.UserMealPreference{}).
		Where("user_id = ? AND meal_type = ? AND is_active = ?", userID, mealType, true).
		Updates(map[string]interface{}{"is_active": false, "updated_at": time.Now()}).Error
}
