package mocks

import (
	"nutrialarm/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Patch(id string, data map[string]interface{}) error {
	args := m.Called(id, data)
	return args.Error(0)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockMealRepository
type MockMealRepository struct {
	mock.Mock
}

func (m *MockMealRepository) Create(meal *models.Meal) error {
	args := m.Called(meal)
	return args.Error(0)
}

func (m *MockMealRepository) CreateInBatches(meals []models.Meal) error {
	args := m.Called(meals)
	return args.Error(0)
}

func (m *MockMealRepository) FindByID(id string) (*models.Meal, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockMealRepository) FindByType(mealType models.MealType) ([]models.Meal, error) {
	args := m.Called(mealType)
	return args.Get(0).([]models.Meal), args.Error(1)
}

func (m *MockMealRepository) FindAll() ([]models.Meal, error) {
	args := m.Called()
	return args.Get(0).([]models.Meal), args.Error(1)
}

func (m *MockMealRepository) Update(meal *models.Meal) error {
	args := m.Called(meal)
	return args.Error(0)
}

func (m *MockMealRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMealRepository) CountPreloadedByType(mealType models.MealType) (int64, error) {
	args := m.Called(mealType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMealRepository) DeletePreloaded() error {
	args := m.Called()
	return args.Error(0)
}

// Shared MockDietRepository
type MockDietRepository struct {
	mock.Mock
}

func (m *MockDietRepository) Create(diet *models.Diet) error {
	args := m.Called(diet)
	return args.Error(0)
}

func (m *MockDietRepository) CreateInBatches(diets []models.Diet) error {
	args := m.Called(diets)
	return args.Error(0)
}

func (m *MockDietRepository) FindByID(id string) (*models.Diet, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Diet), args.Error(1)
}

func (m *MockDietRepository) FindByRisk(risk models.AnemiaRisk) ([]models.Diet, error) {
	args := m.Called(risk)
	return args.Get(0).([]models.Diet), args.Error(1)
}

func (m *MockDietRepository) FindAll() ([]models.Diet, error) {
	args := m.Called()
	return args.Get(0).([]models.Diet), args.Error(1)
}

func (m *MockDietRepository) MealsOf(dietID string) ([]models.Meal, error) {
	args := m.Called(dietID)
	return args.Get(0).([]models.Meal), args.Error(1)
}

func (m *MockDietRepository) AddMeal(dietID, mealID string) error {
	args := m.Called(dietID, mealID)
	return args.Error(0)
}

func (m *MockDietRepository) CreateCrossRefs(refs []models.DietMealCrossRef) error {
	args := m.Called(refs)
	return args.Error(0)
}

func (m *MockDietRepository) CountPreloaded() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDietRepository) DeletePreloaded() error {
	args := m.Called()
	return args.Error(0)
}

// Shared MockPreferenceRepository
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) Upsert(pref *models.UserMealPreference) error {
	args := m.Called(pref)
	return args.Error(0)
}

func (m *MockPreferenceRepository) FindActive(userID string, mealType models.MealType) (*models.UserMealPreference, error) {
	args := m.Called(userID, mealType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserMealPreference), args.Error(1)
}

func (m *MockPreferenceRepository) FindAllActive(userID string) ([]models.UserMealPreference, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.UserMealPreference), args.Error(1)
}

func (m *MockPreferenceRepository) Deactivate(userID string, mealType models.MealType) error {
	args := m.Called(userID, mealType)
	return args.Error(0)
}

// Shared MockAlarmRepository
type MockAlarmRepository struct {
	mock.Mock
}

func (m *MockAlarmRepository) Replace(alarm *models.Alarm) error {
	args := m.Called(alarm)
	return args.Error(0)
}

func (m *MockAlarmRepository) FindByUserAndType(userID string, mealType models.MealType) (*models.Alarm, error) {
	args := m.Called(userID, mealType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Alarm), args.Error(1)
}

func (m *MockAlarmRepository) FindAllByUserID(userID string) ([]models.Alarm, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Alarm), args.Error(1)
}

func (m *MockAlarmRepository) FindEnabled() ([]models.Alarm, error) {
	args := m.Called()
	return args.Get(0).([]models.Alarm), args.Error(1)
}

func (m *MockAlarmRepository) DeleteByUserAndType(userID string, mealType models.MealType) error {
	args := m.Called(userID, mealType)
	return args.Error(0)
}

// Shared MockConsumptionRepository
type MockConsumptionRepository struct {
	mock.Mock
}

func (m *MockConsumptionRepository) Create(c *models.MealConsumption) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockConsumptionRepository) FindByID(id string) (*models.MealConsumption, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MealConsumption), args.Error(1)
}

func (m *MockConsumptionRepository) FindByUserAndDate(userID, date string) ([]models.MealConsumption, error) {
	args := m.Called(userID, date)
	return args.Get(0).([]models.MealConsumption), args.Error(1)
}

func (m *MockConsumptionRepository) HasConsumedOn(userID string, mealType models.MealType, date string) (bool, error) {
	args := m.Called(userID, mealType, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockConsumptionRepository) FindAllByUserID(userID string, limit int) ([]models.MealConsumption, error) {
	args := m.Called(userID, limit)
	return args.Get(0).([]models.MealConsumption), args.Error(1)
}

func (m *MockConsumptionRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockDeviceRepository
type MockDeviceRepository struct {
	mock.Mock
}

func (m *MockDeviceRepository) Upsert(dev *models.UserDevice) error {
	args := m.Called(dev)
	return args.Error(0)
}

func (m *MockDeviceRepository) FindEnabledByUserID(userID string) ([]models.UserDevice, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.UserDevice), args.Error(1)
}
