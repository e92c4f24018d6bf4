package controllers

import (
	"net/http"

	"nutrialarm/internal/models"
	"nutrialarm/internal/settings"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	store settings.Store
}

func NewSettingsController(store settings.Store) *SettingsController {
	return &SettingsController{store: store}
}

// GetSettings returns the app-level preference flags. Absent keys come back
// with their defaults rather than an error.
func (sc *SettingsController) GetSettings(c *gin.Context) {
	firstLaunch, _ := sc.store.Bool(settings.KeyFirstLaunchDone)
	onboarding, _ := sc.store.Bool(settings.KeyOnboardingDone)
	notifications, _ := sc.store.BoolDefault(settings.KeyNotificationsEnabled, true)
	vibration, _ := sc.store.BoolDefault(settings.KeyVibrationEnabled, true)
	theme, err := sc.store.String(settings.KeyThemeMode)
	if err != nil || theme == "" {
		theme = string(models.ThemeSystem)
	}
	lastSync, _ := sc.store.String(settings.KeyLastSyncAt)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Settings retrieved successfully",
		"data": gin.H{
			"first_launch_done":     firstLaunch,
			"onboarding_done":       onboarding,
			"notifications_enabled": notifications,
			"vibration_enabled":     vibration,
			"theme_mode":            theme,
			"last_sync_at":          lastSync,
		},
	})
}

type UpdateSettingsRequest struct {
	NotificationsEnabled *bool   `json:"notifications_enabled"`
	VibrationEnabled     *bool   `json:"vibration_enabled"`
	ThemeMode            *string `json:"theme_mode"`
	FirstLaunchDone      *bool   `json:"first_launch_done"`
	OnboardingDone       *bool   `json:"onboarding_done"`
}

// UpdateSettings patches the provided flags only; omitted fields are untouched.
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if req.ThemeMode != nil {
		switch models.ThemeMode(*req.ThemeMode) {
		case models.ThemeLight, models.ThemeDark, models.ThemeSystem:
		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid theme mode",
				"error":   "Theme mode must be LIGHT, DARK or SYSTEM",
			})
			return
		}
	}

	writes := map[string]*bool{
		settings.KeyNotificationsEnabled: req.NotificationsEnabled,
		settings.KeyVibrationEnabled:     req.VibrationEnabled,
		settings.KeyFirstLaunchDone:      req.FirstLaunchDone,
		settings.KeyOnboardingDone:       req.OnboardingDone,
	}
	for key, v := range writes {
		if v == nil {
			continue
		}
		if err := sc.store.SetBool(key, *v); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to update settings",
				"error":   err.Error(),
			})
			return
		}
	}
	if req.ThemeMode != nil {
		if err := sc.store.SetString(settings.KeyThemeMode, *req.ThemeMode); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to update settings",
				"error":   err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Settings updated successfully",
		"data":    nil,
	})
}
