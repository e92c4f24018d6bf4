package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nutrialarm/internal/mocks"
	"nutrialarm/internal/settings"

	"github.com/stretchr/testify/assert"
)

func TestGetSettingsDefaults(t *testing.T) {
	store := mocks.NewFakeSettingsStore()
	controller := NewSettingsController(store)

	router := setupTestRouter()
	router.GET("/settings", addAuthMiddleware("user-1"), controller.GetSettings)

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, false, data["first_launch_done"])
	assert.Equal(t, true, data["notifications_enabled"], "notifications default on")
	assert.Equal(t, true, data["vibration_enabled"], "vibration defaults on")
	assert.Equal(t, "SYSTEM", data["theme_mode"])
}

func TestUpdateSettingsPatchesOnlyProvidedFields(t *testing.T) {
	store := mocks.NewFakeSettingsStore()
	assert.NoError(t, store.SetBool(settings.KeyVibrationEnabled, true))
	controller := NewSettingsController(store)

	router := setupTestRouter()
	router.PATCH("/settings", addAuthMiddleware("user-1"), controller.UpdateSettings)

	body, _ := json.Marshal(map[string]interface{}{
		"notifications_enabled": false,
		"theme_mode":            "DARK",
	})
	req := httptest.NewRequest(http.MethodPatch, "/settings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	notifications, _ := store.Bool(settings.KeyNotificationsEnabled)
	assert.False(t, notifications)
	theme, _ := store.String(settings.KeyThemeMode)
	assert.Equal(t, "DARK", theme)
	vibration, _ := store.Bool(settings.KeyVibrationEnabled)
	assert.True(t, vibration, "untouched field keeps its value")
}

func TestUpdateSettingsRejectsUnknownTheme(t *testing.T) {
	store := mocks.NewFakeSettingsStore()
	controller := NewSettingsController(store)

	router := setupTestRouter()
	router.PATCH("/settings", addAuthMiddleware("user-1"), controller.UpdateSettings)

	body, _ := json.Marshal(map[string]interface{}{"theme_mode": "NEON"})
	req := httptest.NewRequest(http.MethodPatch, "/settings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
