package services

import (
	"fmt"
	"hash/fnv"
	"log"
	"sync"
	"time"

	"nutrialarm/internal/models"

	"github.com/robfig/cron/v3"
)

// ReminderPayload travels with the trigger itself: everything needed to render
// the reminder is here, nothing is looked up from in-memory state at fire time.
type ReminderPayload struct {
	UserID   string          `json:"user_id"`
	MealType models.MealType `json:"meal_type"`
	Time     string          `json:"time"`
	Message  string          `json:"message"`
}

// AlarmScheduler is the wall-clock trigger service. Triggers are keyed by an
// integer token so each (slot, weekday) registration can be cancelled
// independently.
type AlarmScheduler interface {
	ScheduleOnce(token int, at time.Time, payload ReminderPayload) error
	ScheduleWeekly(token int, weekday time.Weekday, hhmm string, payload ReminderPayload) error
	Cancel(token int)
	CanScheduleExact() bool
}

// AlarmToken derives the deterministic trigger token for a (user, slot, day)
// triple. Cancellation recomputes the same token, so schedule and cancel
// always agree. day is empty for one-shot triggers.
func AlarmToken(userID string, mealType models.MealType, day models.Weekday) int {
	h := fnv.New32a()
	fmt.Fprintf(h, "%s|%s|%s", userID, mealType, day)
	return int(h.Sum32())
}

// ParseTimeSlot validates and splits an "HH:MM" time slot.
func ParseTimeSlot(hhmm string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time slot %q: expected HH:MM", hhmm)
	}
	return t.Hour(), t.Minute(), nil
}

// NextOccurrence computes the next wall-clock instant for a time slot. With a
// nil weekday it is today at HH:MM if that is still in the future, otherwise
// tomorrow. With a weekday it rolls forward to that weekday, then adds seven
// days if the resulting instant is already past.
func NextOccurrence(now time.Time, hhmm string, weekday *time.Weekday) (time.Time, error) {
	hour, minute, err := ParseTimeSlot(hhmm)
	if err != nil {
		return time.Time{}, err
	}

	candidate := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())

	if weekday == nil {
		if !candidate.After(now) {
			candidate = candidate.AddDate(0, 0, 1)
		}
		return candidate, nil
	}

	delta := (int(*weekday) - int(now.Weekday()) + 7) % 7
	candidate = candidate.AddDate(0, 0, delta)
	if !candidate.After(now) {
		candidate = candidate.AddDate(0, 0, 7)
	}
	return candidate, nil
}

// CronAlarmScheduler backs the trigger service with an in-process cron runner.
// Weekly triggers map to cron entries; one-shots use a timer. Firing invokes
// the notifier with the trigger's own payload.
type CronAlarmScheduler struct {
	cron     *cron.Cron
	notifier Notifier
	exact    bool

	mu      sync.Mutex
	entries map[int]cron.EntryID
	timers  map[int]*time.Timer
}

func NewCronAlarmScheduler(notifier Notifier, exact bool) *CronAlarmScheduler {
	s := &CronAlarmScheduler{
		cron:     cron.New(),
		notifier: notifier,
		exact:    exact,
		entries:  make(map[int]cron.EntryID),
		timers:   make(map[int]*time.Timer),
	}
	if !exact {
		log.Println("Exact alarm capability not granted; reminders fall back to minute-batched firing")
	}
	s.cron.Start()
	return s
}

func (s *CronAlarmScheduler) CanScheduleExact() bool {
	return s.exact
}

func (s *CronAlarmScheduler) ScheduleOnce(token int, at time.Time, payload ReminderPayload) error {
	delay := time.Until(at)
	if delay < 0 {
		return fmt.Errorf("cannot schedule trigger in the past: %v", at)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked(token)

	s.timers[token] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, token)
		s.mu.Unlock()
		s.notifier.SendMealReminder(payload)
	})
	return nil
}

func (s *CronAlarmScheduler) ScheduleWeekly(token int, weekday time.Weekday, hhmm string, payload ReminderPayload) error {
	hour, minute, err := ParseTimeSlot(hhmm)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked(token)

	spec := fmt.Sprintf("%d %d * * %d", minute, hour, int(weekday))
	id, err := s.cron.AddFunc(spec, func() {
		s.notifier.SendMealReminder(payload)
	})
	if err != nil {
		return fmt.Errorf("failed to register weekly trigger: %w", err)
	}
	s.entries[token] = id
	return nil
}

func (s *CronAlarmScheduler) Cancel(token int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked(token)
}

func (s *CronAlarmScheduler) cancelLocked(token int) {
	if id, ok := s.entries[token]; ok {
		s.cron.Remove(id)
		delete(s.entries, token)
	}
	if t, ok := s.timers[token]; ok {
		t.Stop()
		delete(s.timers, token)
	}
}

func (s *CronAlarmScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token := range s.entries {
		s.cron.Remove(s.entries[token])
		delete(s.entries, token)
	}
	for token, t := range s.timers {
		t.Stop()
		delete(s.timers, token)
	}
	s.cron.Stop()
}
