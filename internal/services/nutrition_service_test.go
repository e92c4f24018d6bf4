package services

import (
	"testing"
	"time"

	"nutrialarm/internal/mocks"
	"nutrialarm/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newTestNutrition(t *testing.T, now time.Time) (*NutritionService, *mocks.MockMealRepository, *mocks.MockConsumptionRepository, *mocks.FakeSettingsStore) {
	t.Helper()
	mealRepo := new(mocks.MockMealRepository)
	consRepo := new(mocks.MockConsumptionRepository)
	store := mocks.NewFakeSettingsStore()
	svc := NewNutritionService(mealRepo, consRepo, store)
	svc.now = func() time.Time { return now }
	return svc, mealRepo, consRepo, store
}

func TestMarkConsumedSnapshotsNutrients(t *testing.T) {
	now := time.Date(2025, 6, 2, 13, 45, 0, 0, time.Local)
	svc, mealRepo, consRepo, store := newTestNutrition(t, now)

	meal := &models.Meal{
		ID:          "lunch_1",
		Name:        "Lentejas con arroz",
		MealType:    models.MealLunch,
		IronContent: 6.5,
		Calories:    520,
		VitaminC:    12,
		Folate:      180,
	}
	mealRepo.On("FindByID", "lunch_1").Return(meal, nil)
	consRepo.On("Create", mock.AnythingOfType("*models.MealConsumption")).Return(nil)

	row, err := svc.MarkConsumed("user-1", "lunch_1")
	assert.NoError(t, err)
	assert.Equal(t, "user-1", row.UserID)
	assert.Equal(t, models.MealLunch, row.MealType)
	assert.Equal(t, "2025-06-02", row.Date)
	assert.Equal(t, 6.5, row.IronContent)
	assert.Equal(t, 520.0, row.Calories)

	// One bonus point landed on the log date.
	bonus, err := store.DailyBonus("user-1", "2025-06-02")
	assert.NoError(t, err)
	assert.Equal(t, 1.0, bonus)

	consRepo.AssertExpectations(t)
}

func TestMarkConsumedUnknownMealNoInsert(t *testing.T) {
	now := time.Date(2025, 6, 2, 13, 45, 0, 0, time.Local)
	svc, mealRepo, consRepo, store := newTestNutrition(t, now)

	mealRepo.On("FindByID", "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.MarkConsumed("user-1", "ghost")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "meal not found")
	consRepo.AssertNotCalled(t, "Create", mock.Anything)

	bonus, _ := store.DailyBonus("user-1", "2025-06-02")
	assert.Equal(t, 0.0, bonus)
}

func TestDailySummaryEmptyDayIsAllZeros(t *testing.T) {
	now := time.Date(2025, 6, 2, 13, 45, 0, 0, time.Local)
	svc, _, consRepo, _ := newTestNutrition(t, now)

	consRepo.On("FindByUserAndDate", "user-1", "2025-06-01").Return([]models.MealConsumption{}, nil)

	summary, err := svc.DailySummary("user-1", "2025-06-01")
	assert.NoError(t, err)
	assert.Equal(t, "2025-06-01", summary.Date)
	assert.Zero(t, summary.TotalIron)
	assert.Zero(t, summary.TotalCalories)
	assert.Zero(t, summary.TotalMealCount)
}

func TestDailySummarySumsSnapshots(t *testing.T) {
	now := time.Date(2025, 6, 2, 13, 45, 0, 0, time.Local)
	svc, _, consRepo, _ := newTestNutrition(t, now)

	rows := []models.MealConsumption{
		{IronContent: 4.2, Calories: 380, VitaminC: 30, Folate: 90},
		{IronContent: 6.5, Calories: 520, VitaminC: 12, Folate: 180},
	}
	consRepo.On("FindByUserAndDate", "user-1", "2025-06-02").Return(rows, nil)

	summary, err := svc.DailySummary("user-1", "2025-06-02")
	assert.NoError(t, err)
	assert.InDelta(t, 10.7, summary.TotalIron, 1e-9)
	assert.InDelta(t, 900, summary.TotalCalories, 1e-9)
	assert.InDelta(t, 42, summary.TotalVitaminC, 1e-9)
	assert.InDelta(t, 270, summary.TotalFolate, 1e-9)
	assert.Equal(t, 2, summary.TotalMealCount)
}

func TestWeeklyBonusTotal(t *testing.T) {
	now := time.Date(2025, 6, 8, 10, 0, 0, 0, time.Local)
	svc, _, _, store := newTestNutrition(t, now)

	// Only one day in the window carries a bonus.
	assert.NoError(t, store.SetDailyBonus("user-1", "2025-06-05", 5.0))
	// Outside the seven-day window, ignored.
	assert.NoError(t, store.SetDailyBonus("user-1", "2025-05-31", 3.0))

	total, err := svc.WeeklyBonusTotal("user-1")
	assert.NoError(t, err)
	assert.Equal(t, 5.0, total)
}

func TestDeleteConsumptionOwnership(t *testing.T) {
	now := time.Date(2025, 6, 2, 13, 45, 0, 0, time.Local)
	svc, _, consRepo, _ := newTestNutrition(t, now)

	consRepo.On("FindByID", "row-1").Return(&models.MealConsumption{ID: "row-1", UserID: "someone-else"}, nil)

	err := svc.DeleteConsumption("user-1", "row-1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	consRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestProgressClamps(t *testing.T) {
	assert.Equal(t, 0.0, Progress(5, 0))
	assert.Equal(t, 0.0, Progress(5, -10))
	assert.Equal(t, 0.0, Progress(-3, 10))
	assert.Equal(t, 0.5, Progress(5, 10))
	assert.Equal(t, 1.0, Progress(15, 10))
	assert.Equal(t, 1.0, Progress(10, 10))
}
