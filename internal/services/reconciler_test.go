package services

import (
	"fmt"
	"testing"
	"time"

	"nutrialarm/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// fakeScheduler records live registrations by token, the way the cron-backed
// scheduler does, so tests can assert exactly what survives a reconcile.
type fakeScheduler struct {
	weekly      map[int]weeklyReg
	once        map[int]time.Time
	scheduleOps int
	cancelOps   int
}

type weeklyReg struct {
	weekday time.Weekday
	hhmm    string
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{weekly: make(map[int]weeklyReg), once: make(map[int]time.Time)}
}

func (f *fakeScheduler) ScheduleOnce(token int, at time.Time, payload ReminderPayload) error {
	f.scheduleOps++
	f.once[token] = at
	return nil
}

func (f *fakeScheduler) ScheduleWeekly(token int, weekday time.Weekday, hhmm string, payload ReminderPayload) error {
	f.scheduleOps++
	f.weekly[token] = weeklyReg{weekday: weekday, hhmm: hhmm}
	return nil
}

func (f *fakeScheduler) Cancel(token int) {
	f.cancelOps++
	delete(f.weekly, token)
	delete(f.once, token)
}

func (f *fakeScheduler) CanScheduleExact() bool { return true }

func (f *fakeScheduler) registrations() int {
	return len(f.weekly) + len(f.once)
}

// In-memory stores backing the reconciler under test.

type memPrefs struct {
	rows map[string]*models.UserMealPreference
}

func prefKey(userID string, mealType models.MealType) string {
	return fmt.Sprintf("%s|%s", userID, mealType)
}

func newMemPrefs() *memPrefs {
	return &memPrefs{rows: make(map[string]*models.UserMealPreference)}
}

func (m *memPrefs) Upsert(pref *models.UserMealPreference) error {
	cp := *pref
	m.rows[prefKey(pref.UserID, pref.MealType)] = &cp
	return nil
}

func (m *memPrefs) FindActive(userID string, mealType models.MealType) (*models.UserMealPreference, error) {
	row, ok := m.rows[prefKey(userID, mealType)]
	if !ok || !row.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *row
	return &cp, nil
}

func (m *memPrefs) FindAllActive(userID string) ([]models.UserMealPreference, error) {
	var out []models.UserMealPreference
	for _, row := range m.rows {
		if row.UserID == userID && row.IsActive {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (m *memPrefs) Deactivate(userID string, mealType models.MealType) error {
	if row, ok := m.rows[prefKey(userID, mealType)]; ok {
		row.IsActive = false
	}
	return nil
}

type memAlarms struct {
	rows map[string]*models.Alarm
}

func newMemAlarms() *memAlarms {
	return &memAlarms{rows: make(map[string]*models.Alarm)}
}

func (m *memAlarms) Replace(alarm *models.Alarm) error {
	cp := *alarm
	m.rows[prefKey(alarm.UserID, alarm.MealType)] = &cp
	return nil
}

func (m *memAlarms) FindByUserAndType(userID string, mealType models.MealType) (*models.Alarm, error) {
	row, ok := m.rows[prefKey(userID, mealType)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *row
	return &cp, nil
}

func (m *memAlarms) FindAllByUserID(userID string) ([]models.Alarm, error) {
	var out []models.Alarm
	for _, row := range m.rows {
		if row.UserID == userID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (m *memAlarms) FindEnabled() ([]models.Alarm, error) {
	var out []models.Alarm
	for _, row := range m.rows {
		if row.IsEnabled {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (m *memAlarms) DeleteByUserAndType(userID string, mealType models.MealType) error {
	delete(m.rows, prefKey(userID, mealType))
	return nil
}

type memMeals struct {
	rows map[string]*models.Meal
}

func newMemMeals(meals ...models.Meal) *memMeals {
	m := &memMeals{rows: make(map[string]*models.Meal)}
	for i := range meals {
		m.rows[meals[i].ID] = &meals[i]
	}
	return m
}

func (m *memMeals) Create(meal *models.Meal) error            { m.rows[meal.ID] = meal; return nil }
func (m *memMeals) CreateInBatches(meals []models.Meal) error { return nil }
func (m *memMeals) FindByID(id string) (*models.Meal, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return row, nil
}
func (m *memMeals) FindByType(mealType models.MealType) ([]models.Meal, error) { return nil, nil }
func (m *memMeals) FindAll() ([]models.Meal, error)                            { return nil, nil }
func (m *memMeals) Update(meal *models.Meal) error                             { return nil }
func (m *memMeals) Delete(id string) error                                     { return nil }
func (m *memMeals) CountPreloadedByType(mealType models.MealType) (int64, error) {
	return 0, nil
}
func (m *memMeals) DeletePreloaded() error { return nil }

type memConsumptions struct {
	consumed map[string]bool
}

func newMemConsumptions() *memConsumptions {
	return &memConsumptions{consumed: make(map[string]bool)}
}

func (m *memConsumptions) markConsumed(userID string, mealType models.MealType, date string) {
	m.consumed[fmt.Sprintf("%s|%s|%s", userID, mealType, date)] = true
}

func (m *memConsumptions) Create(c *models.MealConsumption) error { return nil }
func (m *memConsumptions) FindByID(id string) (*models.MealConsumption, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *memConsumptions) FindByUserAndDate(userID, date string) ([]models.MealConsumption, error) {
	return nil, nil
}
func (m *memConsumptions) HasConsumedOn(userID string, mealType models.MealType, date string) (bool, error) {
	return m.consumed[fmt.Sprintf("%s|%s|%s", userID, mealType, date)], nil
}
func (m *memConsumptions) FindAllByUserID(userID string, limit int) ([]models.MealConsumption, error) {
	return nil, nil
}
func (m *memConsumptions) Delete(id string) error { return nil }

func newTestReconciler(t *testing.T, now time.Time) (*Reconciler, *fakeScheduler, *memPrefs, *memAlarms, *memConsumptions) {
	t.Helper()
	sched := newFakeScheduler()
	prefs := newMemPrefs()
	alarms := newMemAlarms()
	cons := newMemConsumptions()
	meals := newMemMeals(
		models.Meal{ID: "breakfast_2", Name: "Avena con sangrecita", MealType: models.MealBreakfast},
		models.Meal{ID: "lunch_1", Name: "Lentejas con arroz", MealType: models.MealLunch},
	)
	r := NewReconciler(prefs, meals, alarms, cons, sched)
	r.now = func() time.Time { return now }
	return r, sched, prefs, alarms, cons
}

func TestSelectMealDefaults(t *testing.T) {
	now := time.Date(2025, 6, 2, 5, 0, 0, 0, time.Local) // Monday 05:00
	r, sched, _, alarms, _ := newTestReconciler(t, now)

	pref, err := r.SelectMeal("user-1", models.MealBreakfast, "breakfast_2")
	assert.NoError(t, err)
	assert.Equal(t, "06:30", pref.TimeSlot)
	assert.True(t, pref.ReminderEnabled)
	assert.True(t, pref.IsActive)

	// New slot schedules every weekday by default.
	assert.Equal(t, 7, sched.registrations())

	alarm, err := alarms.FindByUserAndType("user-1", models.MealBreakfast)
	assert.NoError(t, err)
	assert.True(t, alarm.IsEnabled)
	assert.Len(t, alarm.DayList(), 7)
	assert.Equal(t, "Es hora de tu Desayuno", alarm.ReminderMessage)
}

func TestSelectMealUnknownMeal(t *testing.T) {
	now := time.Date(2025, 6, 2, 5, 0, 0, 0, time.Local)
	r, sched, _, _, _ := newTestReconciler(t, now)

	_, err := r.SelectMeal("user-1", models.MealBreakfast, "no-such-meal")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "meal not found")
	assert.Equal(t, 0, sched.registrations())
}

func TestReconcileLifecycleLeavesSingleRegistrationPerDay(t *testing.T) {
	now := time.Date(2025, 6, 2, 5, 0, 0, 0, time.Local)
	r, sched, _, _, _ := newTestReconciler(t, now)

	_, err := r.SelectMeal("user-1", models.MealBreakfast, "breakfast_2")
	assert.NoError(t, err)

	_, err = r.UpdateTime("user-1", models.MealBreakfast, "07:15")
	assert.NoError(t, err)
	assert.Equal(t, 7, sched.registrations())
	for _, reg := range sched.weekly {
		assert.Equal(t, "07:15", reg.hhmm)
	}

	_, err = r.ToggleReminder("user-1", models.MealBreakfast, false)
	assert.NoError(t, err)
	assert.Equal(t, 0, sched.registrations())

	_, err = r.ToggleReminder("user-1", models.MealBreakfast, true)
	assert.NoError(t, err)
	assert.Equal(t, 7, sched.registrations())

	// Each weekday holds exactly its own token.
	for _, day := range models.AllWeekdays {
		token := AlarmToken("user-1", models.MealBreakfast, day)
		reg, ok := sched.weekly[token]
		assert.True(t, ok, "missing registration for %s", day)
		assert.Equal(t, day.Time(), reg.weekday)
		assert.Equal(t, "07:15", reg.hhmm)
	}
}

func TestSetAlarmDays(t *testing.T) {
	now := time.Date(2025, 6, 2, 5, 0, 0, 0, time.Local)
	r, sched, _, alarms, _ := newTestReconciler(t, now)

	_, err := r.SelectMeal("user-1", models.MealBreakfast, "breakfast_2")
	assert.NoError(t, err)
	_, err = r.UpdateTime("user-1", models.MealBreakfast, "07:00")
	assert.NoError(t, err)

	err = r.SetAlarmDays("user-1", models.MealBreakfast, []models.Weekday{models.Monday, models.Wednesday, models.Friday})
	assert.NoError(t, err)
	assert.Equal(t, 3, sched.registrations())

	for _, day := range []models.Weekday{models.Monday, models.Wednesday, models.Friday} {
		reg, ok := sched.weekly[AlarmToken("user-1", models.MealBreakfast, day)]
		assert.True(t, ok)
		assert.Equal(t, "07:00", reg.hhmm)
	}

	// The reduced day set survives a toggle cycle.
	_, err = r.ToggleReminder("user-1", models.MealBreakfast, false)
	assert.NoError(t, err)
	_, err = r.ToggleReminder("user-1", models.MealBreakfast, true)
	assert.NoError(t, err)
	assert.Equal(t, 3, sched.registrations())

	alarm, err := alarms.FindByUserAndType("user-1", models.MealBreakfast)
	assert.NoError(t, err)
	assert.Len(t, alarm.DayList(), 3)
}

func TestSetAlarmDaysEmptySetSchedulesOnce(t *testing.T) {
	now := time.Date(2025, 6, 2, 5, 0, 0, 0, time.Local) // Monday 05:00
	r, sched, _, _, _ := newTestReconciler(t, now)

	_, err := r.SelectMeal("user-1", models.MealBreakfast, "breakfast_2")
	assert.NoError(t, err)

	err = r.SetAlarmDays("user-1", models.MealBreakfast, nil)
	assert.NoError(t, err)

	assert.Len(t, sched.weekly, 0)
	at, ok := sched.once[AlarmToken("user-1", models.MealBreakfast, "")]
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 2, 6, 30, 0, 0, time.Local), at)
}

func TestSetAlarmDaysErrors(t *testing.T) {
	now := time.Date(2025, 6, 2, 5, 0, 0, 0, time.Local)
	r, _, _, _, _ := newTestReconciler(t, now)

	err := r.SetAlarmDays("user-1", models.MealBreakfast, []models.Weekday{"FUNDAY"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown weekday")

	err = r.SetAlarmDays("user-1", models.MealBreakfast, []models.Weekday{models.Monday})
	assert.ErrorIs(t, err, ErrNoPreference)
}

func TestUpdateTimeErrors(t *testing.T) {
	now := time.Date(2025, 6, 2, 5, 0, 0, 0, time.Local)
	r, _, _, _, _ := newTestReconciler(t, now)

	_, err := r.UpdateTime("user-1", models.MealBreakfast, "7 en punto")
	assert.Error(t, err)

	_, err = r.UpdateTime("user-1", models.MealBreakfast, "07:00")
	assert.ErrorIs(t, err, ErrNoPreference)
}

func TestNextMealInfo(t *testing.T) {
	now := time.Date(2025, 6, 2, 6, 0, 0, 0, time.Local) // Monday 06:00
	r, _, _, _, cons := newTestReconciler(t, now)

	info, err := r.NextMealInfo("user-1", now)
	assert.NoError(t, err)
	assert.Nil(t, info, "no preferences means no next meal")

	_, err = r.SelectMeal("user-1", models.MealBreakfast, "breakfast_2")
	assert.NoError(t, err)
	_, err = r.SelectMeal("user-1", models.MealLunch, "lunch_1")
	assert.NoError(t, err)

	// Before breakfast time: breakfast is upcoming.
	info, err = r.NextMealInfo("user-1", now)
	assert.NoError(t, err)
	assert.Equal(t, models.MealBreakfast, info.MealType)
	assert.Equal(t, "Avena con sangrecita", info.MealName)
	assert.False(t, info.Overdue)
	assert.False(t, info.Tomorrow)

	// After breakfast time, unconsumed: breakfast stays current and overdue.
	later := time.Date(2025, 6, 2, 7, 0, 0, 0, time.Local)
	info, err = r.NextMealInfo("user-1", later)
	assert.NoError(t, err)
	assert.Equal(t, models.MealBreakfast, info.MealType)
	assert.True(t, info.Overdue)

	// Once logged, the window moves to lunch.
	cons.markConsumed("user-1", models.MealBreakfast, "2025-06-02")
	info, err = r.NextMealInfo("user-1", later)
	assert.NoError(t, err)
	assert.Equal(t, models.MealLunch, info.MealType)
	assert.False(t, info.Overdue)

	// Every slot past and consumed: earliest slot rolls to tomorrow.
	cons.markConsumed("user-1", models.MealLunch, "2025-06-02")
	night := time.Date(2025, 6, 2, 22, 0, 0, 0, time.Local)
	info, err = r.NextMealInfo("user-1", night)
	assert.NoError(t, err)
	assert.Equal(t, models.MealBreakfast, info.MealType)
	assert.True(t, info.Tomorrow)
}

func TestRestoreAlarms(t *testing.T) {
	now := time.Date(2025, 6, 2, 5, 0, 0, 0, time.Local)
	r, sched, _, alarms, _ := newTestReconciler(t, now)

	enabled := &models.Alarm{ID: "a1", UserID: "user-1", MealType: models.MealBreakfast, Time: "06:30", IsEnabled: true}
	assert.NoError(t, enabled.SetDays(models.AllWeekdays))
	assert.NoError(t, alarms.Replace(enabled))

	disabled := &models.Alarm{ID: "a2", UserID: "user-1", MealType: models.MealLunch, Time: "13:30", IsEnabled: false}
	assert.NoError(t, disabled.SetDays(models.AllWeekdays))
	assert.NoError(t, alarms.Replace(disabled))

	assert.NoError(t, r.RestoreAlarms())
	assert.Equal(t, 7, sched.registrations(), "only the enabled alarm is restored")
}
