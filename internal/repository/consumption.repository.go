package repository

import (
	"nutrialarm/internal/models"

	"gorm.io/gorm"
)

type ConsumptionRepository interface {
	Create(c *models.MealConsumption) error
	FindByID(id string) (*models.MealConsumption, error)
	FindByUserAndDate(userID, date string) ([]models.MealConsumption, error)
	HasConsumedOn(userID string, mealType models.MealType, date string) (bool, error)
	FindAllByUserID(userID string, limit int) ([]models.MealConsumption, error)
	Delete(id string) error
}

type consumptionRepository struct {
	db *gorm.DB
}

func NewConsumptionRepository(db *gorm.DB) ConsumptionRepository {
	return &consumptionRepository{db}
}

func (r *consumptionRepository) Create(c *models.MealConsumption) error {
	return r.db.Create(c).Error
}

func (r *consumptionRepository) FindByID(id string) (*models.MealConsumption, error) {
	var row models.MealConsumption
	err := r.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *consumptionRepository) FindByUserAndDate(userID, date string) ([]models.MealConsumption, error) {
	var rows []models.MealConsumption
	err := r.db.
		Where("user_id = ? AND date = ?", userID, date).
		Order("consumed_at").
		Find(&rows).Error
	return rows, err
}

func (r *consumptionRepository) HasConsumedOn(userID string, mealType models.MealType, date string) (bool, error) {
	var count int64
	err := r.db.Model(&models.MealConsumption{}).
		Where("user_id = ? AND meal_type = ? AND date = ?", userID, mealType, date).
		Count(&count).Error
	return count > 0, err
}

func (r *consumptionRepository) FindAllByUserID(userID string, limit int) ([]models.MealConsumption, error) {
	var rows []models.MealConsumption
	q := r.db.Where("user_id = ?", userID).Order("consumed_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&rows).Error
	return rows, err
}

func (r *consumptionRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.MealConsumption{}).Error
}
