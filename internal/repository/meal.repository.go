package repository

import (
	"nutrialarm/internal/models"

	"gorm.io/gorm"
)

type MealRepository interface {
	Create(meal *models.Meal) error
	CreateInBatches(meals []models.Meal) error
	FindByID(id string) (*models.Meal, error)
	FindByType(mealType models.MealType) ([]models.Meal, error)
	FindAll() ([]models.Meal, error)
	Update(meal *models.Meal) error
	Delete(id string) error
	CountPreloadedByType(mealType models.MealType) (int64, error)
	DeletePreloaded() error
}

type mealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db}
}

func (r *mealRepository) Create(meal *models.Meal) error {
	return r.db.Create(meal).Error
}

func (r *mealRepository) CreateInBatches(meals []models.Meal) error {
	return r.db.CreateInBatches(&meals, 100).Error
}

func (r *mealRepository) FindByID(id string) (*models.Meal, error) {
	var meal models.Meal
	err := r.db.Where("id = ?", id).First(&meal).Error
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) FindByType(mealType models.MealType) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.Where("meal_type = ?", mealType).Order("name").Find(&meals).Error
	return meals, err
}

func (r *mealRepository) FindAll() ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.Order("meal_type, name").Find(&meals).Error
	return meals, err
}

func (r *mealRepository) Update(meal *models.Meal) error {
	return r.db.Save(meal).Error
}

func (r *mealRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Meal{}).Error
}

func (r *mealRepository) CountPreloadedByType(mealType models.MealType) (int64, error) {
	var count int64
	err := r.db.Model(&models.Meal{}).
		Where("meal_type = ? AND is_preloaded = ?", mealType, true).
		Count(&count).Error
	return count, err
}

// DeletePreloaded removes catalog-tagged meals only; user-authored rows are
// never touched.
func (r *mealRepository) DeletePreloaded() error {
	return r.db.Where("is_preloaded = ?", true).Delete(&models.Meal{}).Error
}
