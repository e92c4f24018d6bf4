package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"nutrialarm/internal/models"
	"nutrialarm/internal/repository"
	"nutrialarm/internal/settings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// One bonus point is awarded per logged meal; the weekly total feeds the
// client's streak display.
const bonusPerConsumption = 1.0

type NutritionService struct {
	meals        repository.MealRepository
	consumptions repository.ConsumptionRepository
	settings     settings.Store
	now          func() time.Time
}

func NewNutritionService(
	meals repository.MealRepository,
	consumptions repository.ConsumptionRepository,
	st settings.Store,
) *NutritionService {
	return &NutritionService{
		meals:        meals,
		consumptions: consumptions,
		settings:     st,
		now:          time.Now,
	}
}

// MarkConsumed appends one consumption row, snapshotting the meal's nutrient
// fields so later meal edits never rewrite history. An unresolvable meal id
// fails with no insert.
func (s *NutritionService) MarkConsumed(userID, mealID string) (*models.MealConsumption, error) {
	meal, err := s.meals.FindByID(mealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("meal not found: %s", mealID)
		}
		return nil, err
	}

	now := s.now()
	row := &models.MealConsumption{
		ID:          uuid.NewString(),
		UserID:      userID,
		MealID:      meal.ID,
		MealType:    meal.MealType,
		ConsumedAt:  now,
		Date:        now.Format("2006-01-02"),
		IronContent: meal.IronContent,
		Calories:    meal.Calories,
		VitaminC:    meal.VitaminC,
		Folate:      meal.Folate,
	}
	if err := s.consumptions.Create(row); err != nil {
		return nil, err
	}

	// Bonus bookkeeping is best effort; the log row is already committed.
	if _, err := s.settings.AddDailyBonus(userID, row.Date, bonusPerConsumption); err != nil {
		log.Printf("Failed to update daily bonus for user %s: %v", userID, err)
	}
	return row, nil
}

// DailySummary sums the snapshot nutrients of one user-day. A day with no
// rows is a valid all-zero summary, not an error.
func (s *NutritionService) DailySummary(userID, date string) (*models.DailySummary, error) {
	rows, err := s.consumptions.FindByUserAndDate(userID, date)
	if err != nil {
		return nil, err
	}

	summary := &models.DailySummary{Date: date}
	for _, row := range rows {
		summary.TotalIron += row.IronContent
		summary.TotalCalories += row.Calories
		summary.TotalVitaminC += row.VitaminC
		summary.TotalFolate += row.Folate
	}
	summary.TotalMealCount = len(rows)
	return summary, nil
}

// WeeklyBonusTotal sums the daily bonus over the seven calendar days ending
// today, inclusive. Each day is looked up independently and defaults to 0.
func (s *NutritionService) WeeklyBonusTotal(userID string) (float64, error) {
	var total float64
	day := s.now()
	for i := 0; i < 7; i++ {
		v, err := s.settings.DailyBonus(userID, day.Format("2006-01-02"))
		if err != nil {
			return 0, err
		}
		total += v
		day = day.AddDate(0, 0, -1)
	}
	return total, nil
}

func (s *NutritionService) History(userID string, limit int) ([]models.MealConsumption, error) {
	return s.consumptions.FindAllByUserID(userID, limit)
}

// DeleteConsumption removes a single log row on user request. The row must
// belong to the calling user.
func (s *NutritionService) DeleteConsumption(userID, id string) error {
	row, err := s.consumptions.FindByID(id)
	if err != nil {
		return err
	}
	if row.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	return s.consumptions.Delete(id)
}

// Progress is the clamped [0,1] ratio for progress bars. A zero or negative
// target deterministically reads as no progress rather than dividing by zero.
func Progress(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := current / target
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
