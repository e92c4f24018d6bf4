package services

import (
	"testing"

	"nutrialarm/internal/mocks"
	"nutrialarm/internal/models"
	"nutrialarm/internal/settings"

	"github.com/stretchr/testify/assert"
)

func newTestNotifier(store settings.Store) (*SNSNotifier, *mocks.MockDeviceRepository) {
	devices := new(mocks.MockDeviceRepository)
	return &SNSNotifier{devices: devices, settings: store}, devices
}

func TestSendMealReminderDefaultsToEnabled(t *testing.T) {
	// A store with no notifications_enabled key yet: reminders must still go
	// out until the user explicitly turns them off.
	store := mocks.NewFakeSettingsStore()
	notifier, devices := newTestNotifier(store)
	devices.On("FindEnabledByUserID", "user-1").Return([]models.UserDevice{}, nil)

	notifier.SendMealReminder(ReminderPayload{
		UserID:   "user-1",
		MealType: models.MealBreakfast,
		Time:     "06:30",
	})

	devices.AssertCalled(t, "FindEnabledByUserID", "user-1")
}

func TestSendMealReminderRespectsDisabledToggle(t *testing.T) {
	store := mocks.NewFakeSettingsStore()
	assert.NoError(t, store.SetBool(settings.KeyNotificationsEnabled, false))
	notifier, devices := newTestNotifier(store)

	notifier.SendMealReminder(ReminderPayload{
		UserID:   "user-1",
		MealType: models.MealBreakfast,
		Time:     "06:30",
	})

	devices.AssertNotCalled(t, "FindEnabledByUserID", "user-1")
}
