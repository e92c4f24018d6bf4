package repository

import (
	"nutrialarm/internal/models"

	"gorm.io/gorm"
)

type DietRepository interface {
	Create(diet *models.Diet) error
	CreateInBatches(diets []models.Diet) error
	FindByID(id string) (*models.Diet, error)
	FindByRisk(risk models.AnemiaRisk) ([]models.Diet, error)
	FindAll() ([]models.Diet, error)
	MealsOf(dietID string) ([]models.Meal, error)
	AddMeal(dietID, mealID string) error
	CreateCrossRefs(refs []models.DietMealCrossRef) error
	CountPreloaded() (int64, error)
	DeletePreloaded() error
}

type dietRepository struct {
	db *gorm.DB
}

func NewDietRepository(db *gorm.DB) DietRepository {
	return &dietRepository{db}
}

func (r *dietRepository) Create(diet *models.Diet) error {
	return r.db.Create(diet).Error
}

func (r *dietRepository) CreateInBatches(diets []models.Diet) error {
	return r.db.CreateInBatches(&diets, 100).Error
}

func (r *dietRepository) FindByID(id string) (*models.Diet, error) {
	var diet models.Diet
	err := r.db.Where("id = ?", id).First(&diet).Error
	if err != nil {
		return nil, err
	}
	return &diet, nil
}

func (r *dietRepository) FindByRisk(risk models.AnemiaRisk) ([]models.Diet, error) {
	var diets []models.Diet
	err := r.db.Where("anemia_risk_level = ?", risk).Order("name").Find(&diets).Error
	return diets, err
}

func (r *dietRepository) FindAll() ([]models.Diet, error) {
	var diets []models.Diet
	err := r.db.Order("name").Find(&diets).Error
	return diets, err
}

func (r *dietRepository) MealsOf(dietID string) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.
		Joins("JOIN diet_meal_cross_refs ON diet_meal_cross_refs.meal_id = meals.id").
		Where("diet_meal_cross_refs.diet_id = ?", dietID).
		Order("meals.meal_type").
		Find(&meals).Error
	return meals, err
}

func (r *dietRepository) AddMeal(dietID, mealID string) error {
	return r.db.Create(&models.DietMealCrossRef{DietID: dietID, MealID: mealID}).Error
}

func (r *dietRepository) CreateCrossRefs(refs []models.DietMealCrossRef) error {
	return r.db.CreateInBatches(&refs, 100).Error
}

func (r *dietRepository) CountPreloaded() (int64, error) {
	var count int64
	err := r.db.Model(&models.Diet{}).Where("is_preloaded = ?", true).Count(&count).Error
	return count, err
}

// DeletePreloaded clears catalog diets and their cross-refs, leaving
// user-authored diets and links alone.
func (r *dietRepository) DeletePreloaded() error {
	err := r.db.
		Where("diet_id IN (?)", r.db.Model(&models.Diet{}).Select("id").Where("is_preloaded = ?", true)).
		Delete(&models.DietMealCrossRef{}).Error
	if err != nil {
		return err
	}
	return r.db.Where("is_preloaded = ?", true).Delete(&models.Diet{}).Error
}
