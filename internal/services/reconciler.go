package services

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"nutrialarm/internal/models"
	"nutrialarm/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNoPreference = errors.New("no preference configured for this meal slot")

// Reconciler drives each (user, meal slot) through its preference states:
// unset, configured with reminders off, configured with a live alarm. Every
// change cancels the old trigger tokens and registers fresh ones; triggers
// are never overwritten in place.
type Reconciler struct {
	prefs        repository.PreferenceRepository
	meals        repository.MealRepository
	alarms       repository.AlarmRepository
	consumptions repository.ConsumptionRepository
	scheduler    AlarmScheduler
	now          func() time.Time
}

func NewReconciler(
	prefs repository.PreferenceRepository,
	meals repository.MealRepository,
	alarms repository.AlarmRepository,
	consumptions repository.ConsumptionRepository,
	scheduler AlarmScheduler,
) *Reconciler {
	return &Reconciler{
		prefs:        prefs,
		meals:        meals,
		alarms:       alarms,
		consumptions: consumptions,
		scheduler:    scheduler,
		now:          time.Now,
	}
}

// SelectMeal upserts the slot preference. An existing preference keeps its
// time slot and reminder flag; a new one defaults to the slot's canonical time
// with reminders on. When reminders are on, the alarm is re-reconciled.
func (r *Reconciler) SelectMeal(userID string, mealType models.MealType, mealID string) (*models.UserMealPreference, error) {
	if !mealType.Valid() {
		return nil, fmt.Errorf("unknown meal type %q", mealType)
	}
	if _, err := r.meals.FindByID(mealID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("meal not found: %s", mealID)
		}
		return nil, err
	}

	now := r.now()
	pref, err := r.prefs.FindActive(userID, mealType)
	switch {
	case err == nil:
		pref.SelectedMealID = mealID
		pref.UpdatedAt = now
	case errors.Is(err, gorm.ErrRecordNotFound):
		pref = &models.UserMealPreference{
			ID:              uuid.NewString(),
			UserID:          userID,
			MealType:        mealType,
			SelectedMealID:  mealID,
			TimeSlot:        mealType.DefaultTimeSlot(),
			IsActive:        true,
			ReminderEnabled: true,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
	default:
		return nil, err
	}

	if err := r.prefs.Upsert(pref); err != nil {
		return nil, err
	}
	if pref.ReminderEnabled {
		if err := r.reconcile(pref, r.currentDays(userID, mealType)); err != nil {
			return nil, err
		}
	}
	return pref, nil
}

// UpdateTime changes the slot's time. The old trigger instances are cancelled
// and fresh ones scheduled; the underlying trigger service keys by
// (slot, day), so a plain overwrite would leak the old registrations.
func (r *Reconciler) UpdateTime(userID string, mealType models.MealType, hhmm string) (*models.UserMealPreference, error) {
	if _, _, err := ParseTimeSlot(hhmm); err != nil {
		return nil, err
	}

	pref, err := r.prefs.FindActive(userID, mealType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoPreference
		}
		return nil, err
	}

	pref.TimeSlot = hhmm
	pref.UpdatedAt = r.now()
	if err := r.prefs.Upsert(pref); err != nil {
		return nil, err
	}
	if pref.ReminderEnabled {
		if err := r.reconcile(pref, r.currentDays(userID, mealType)); err != nil {
			return nil, err
		}
	}
	return pref, nil
}

// ToggleReminder flips the reminder flag. Enabling schedules the slot's
// triggers; disabling cancels every currently-registered instance.
func (r *Reconciler) ToggleReminder(userID string, mealType models.MealType, enabled bool) (*models.UserMealPreference, error) {
	pref, err := r.prefs.FindActive(userID, mealType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoPreference
		}
		return nil, err
	}

	pref.ReminderEnabled = enabled
	pref.UpdatedAt = r.now()
	if err := r.prefs.Upsert(pref); err != nil {
		return nil, err
	}
	if err := r.reconcile(pref, r.currentDays(userID, mealType)); err != nil {
		return nil, err
	}
	return pref, nil
}

// SetAlarmDays replaces the slot's repeat weekdays. An empty set means a
// single non-repeating reminder at the next occurrence of the slot's time.
func (r *Reconciler) SetAlarmDays(userID string, mealType models.MealType, days []models.Weekday) error {
	for _, d := range days {
		if !d.Valid() {
			return fmt.Errorf("unknown weekday %q", d)
		}
	}

	pref, err := r.prefs.FindActive(userID, mealType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoPreference
		}
		return err
	}
	return r.reconcile(pref, days)
}

// currentDays returns the weekday set stored on the slot's alarm row,
// defaulting to every day for a slot that has never been scheduled.
func (r *Reconciler) currentDays(userID string, mealType models.MealType) []models.Weekday {
	alarm, err := r.alarms.FindByUserAndType(userID, mealType)
	if err != nil {
		return models.AllWeekdays
	}
	return alarm.DayList()
}

// reconcile is cancel-then-reschedule: drop every live token for the slot,
// rewrite the alarm row, and register fresh triggers when reminders are on.
func (r *Reconciler) reconcile(pref *models.UserMealPreference, days []models.Weekday) error {
	r.cancelSlot(pref.UserID, pref.MealType)

	alarm := &models.Alarm{
		ID:              uuid.NewString(),
		UserID:          pref.UserID,
		MealType:        pref.MealType,
		Time:            pref.TimeSlot,
		IsEnabled:       pref.ReminderEnabled,
		ReminderMessage: reminderMessage(pref.MealType),
		CreatedAt:       r.now(),
	}
	if err := alarm.SetDays(days); err != nil {
		return err
	}
	if err := r.alarms.Replace(alarm); err != nil {
		return err
	}

	if !pref.ReminderEnabled {
		return nil
	}
	return r.schedule(alarm)
}

func (r *Reconciler) schedule(alarm *models.Alarm) error {
	payload := ReminderPayload{
		UserID:   alarm.UserID,
		MealType: alarm.MealType,
		Time:     alarm.Time,
		Message:  alarm.ReminderMessage,
	}

	days := alarm.DayList()
	if len(days) == 0 {
		at, err := NextOccurrence(r.now(), alarm.Time, nil)
		if err != nil {
			return err
		}
		return r.scheduler.ScheduleOnce(AlarmToken(alarm.UserID, alarm.MealType, ""), at, payload)
	}

	for _, day := range days {
		token := AlarmToken(alarm.UserID, alarm.MealType, day)
		if err := r.scheduler.ScheduleWeekly(token, day.Time(), alarm.Time, payload); err != nil {
			return err
		}
	}
	return nil
}

// cancelSlot mirrors scheduling: one token for a one-shot, one per weekday
// otherwise. Sibling slots are untouched.
func (r *Reconciler) cancelSlot(userID string, mealType models.MealType) {
	alarm, err := r.alarms.FindByUserAndType(userID, mealType)
	if err != nil {
		return
	}
	days := alarm.DayList()
	if len(days) == 0 {
		r.scheduler.Cancel(AlarmToken(userID, mealType, ""))
		return
	}
	for _, day := range days {
		r.scheduler.Cancel(AlarmToken(userID, mealType, day))
	}
}

// RestoreAlarms re-registers every enabled alarm from the store. Called once
// at startup so triggers survive process restarts.
func (r *Reconciler) RestoreAlarms() error {
	alarms, err := r.alarms.FindEnabled()
	if err != nil {
		return err
	}
	for i := range alarms {
		if err := r.schedule(&alarms[i]); err != nil {
			log.Printf("Failed to restore alarm for user %s slot %s: %v",
				alarms[i].UserID, alarms[i].MealType, err)
		}
	}
	log.Printf("Restored %d alarm(s)", len(alarms))
	return nil
}

func reminderMessage(mealType models.MealType) string {
	return "Es hora de tu " + mealType.Label()
}

// NextMealInfo is what the client shows as the user's current or upcoming meal.
type NextMealInfo struct {
	MealType      models.MealType `json:"meal_type"`
	MealID        string          `json:"meal_id"`
	MealName      string          `json:"meal_name"`
	Time          string          `json:"time"`
	ConsumedToday bool            `json:"consumed_today"`
	Overdue       bool            `json:"overdue"`
	Tomorrow      bool            `json:"tomorrow"`
}

// NextMealInfo picks the chronologically nearest slot. A slot whose time has
// passed today stays current while unconsumed, until the next slot's time
// arrives or it is logged. With every slot past and consumed, the earliest
// slot rolls over to tomorrow.
func (r *Reconciler) NextMealInfo(userID string, now time.Time) (*NextMealInfo, error) {
	prefs, err := r.prefs.FindAllActive(userID)
	if err != nil {
		return nil, err
	}
	if len(prefs) == 0 {
		return nil, nil
	}

	sort.Slice(prefs, func(i, j int) bool { return prefs[i].TimeSlot < prefs[j].TimeSlot })

	today := now.Format("2006-01-02")
	clock := now.Format("15:04")

	// Most recently passed slot still unconsumed stays current/overdue; the
	// arrival of the next slot's time ends that window.
	for i := len(prefs) - 1; i >= 0; i-- {
		if prefs[i].TimeSlot > clock {
			continue
		}
		consumed, err := r.consumptions.HasConsumedOn(userID, prefs[i].MealType, today)
		if err != nil {
			return nil, err
		}
		if !consumed {
			return r.buildInfo(&prefs[i], false, true, false)
		}
		break
	}

	for i := range prefs {
		if prefs[i].TimeSlot > clock {
			consumed, err := r.consumptions.HasConsumedOn(userID, prefs[i].MealType, today)
			if err != nil {
				return nil, err
			}
			return r.buildInfo(&prefs[i], consumed, false, false)
		}
	}

	// Everything for today has passed; show tomorrow's earliest slot.
	return r.buildInfo(&prefs[0], false, false, true)
}

func (r *Reconciler) buildInfo(pref *models.UserMealPreference, consumed, overdue, tomorrow bool) (*NextMealInfo, error) {
	info := &NextMealInfo{
		MealType:      pref.MealType,
		MealID:        pref.SelectedMealID,
		Time:          pref.TimeSlot,
		ConsumedToday: consumed,
		Overdue:       overdue,
		Tomorrow:      tomorrow,
	}
	if meal, err := r.meals.FindByID(pref.SelectedMealID); err == nil {
		info.MealName = meal.Name
	}
	return info, nil
}
