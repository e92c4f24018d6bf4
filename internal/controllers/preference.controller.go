package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"nutrialarm/internal/models"
	"nutrialarm/internal/repository"
	"nutrialarm/internal/services"

	"github.com/gin-gonic/gin"
)

type PreferenceController struct {
	reconciler *services.Reconciler
	prefs      repository.PreferenceRepository
	alarms     repository.AlarmRepository
}

func NewPreferenceController(
	reconciler *services.Reconciler,
	prefs repository.PreferenceRepository,
	alarms repository.AlarmRepository,
) *PreferenceController {
	return &PreferenceController{reconciler: reconciler, prefs: prefs, alarms: alarms}
}

type SelectMealRequest struct {
	MealType models.MealType `json:"meal_type"`
	MealID   string          `json:"meal_id"`
}

// SelectMeal godoc
// @Summary Select a meal for a slot
// @Description Upsert the user's meal choice for a slot, keeping existing time and reminder settings
// @Tags preference
// @Accept json
// @Produce json
// @Param selection body SelectMealRequest true "Slot and meal"
// @Success 200 {object} map[string]interface{} "Preference saved"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Meal not found"
// @Router /preferences/select [post]
func (pc *PreferenceController) SelectMeal(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SelectMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	pref, err := pc.reconciler.SelectMeal(userID, req.MealType, req.MealID)
	if err != nil {
		status := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "unknown meal type") {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{
			"status":  "error",
			"message": "Failed to save preference",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Preference saved successfully",
		"data":    pref,
	})
}

type UpdateTimeRequest struct {
	MealType models.MealType `json:"meal_type"`
	Time     string          `json:"time"` // "HH:MM"
}

// UpdateTime godoc
// @Summary Change a slot's time
// @Description Update the time slot; a live reminder is cancelled and rescheduled at the new time
// @Tags preference
// @Accept json
// @Produce json
// @Param update body UpdateTimeRequest true "Slot and new time"
// @Success 200 {object} map[string]interface{} "Time updated"
// @Failure 404 {object} map[string]interface{} "No preference configured"
// @Router /preferences/time [put]
func (pc *PreferenceController) UpdateTime(c *gin.Context) {
	userID := c.GetString("user_id")

	var req UpdateTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	pref, err := pc.reconciler.UpdateTime(userID, req.MealType, req.Time)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, services.ErrNoPreference):
			status = http.StatusNotFound
		case strings.Contains(err.Error(), "invalid time slot"):
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"status":  "error",
			"message": "Failed to update time",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Time updated successfully",
		"data":    pref,
	})
}

type ToggleReminderRequest struct {
	MealType models.MealType `json:"meal_type"`
	Enabled  bool            `json:"enabled"`
}

func (pc *PreferenceController) ToggleReminder(c *gin.Context) {
	userID := c.GetString("user_id")

	var req ToggleReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	pref, err := pc.reconciler.ToggleReminder(userID, req.MealType, req.Enabled)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrNoPreference) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{
			"status":  "error",
			"message": "Failed to toggle reminder",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Reminder toggled successfully",
		"data":    pref,
	})
}

type SetDaysRequest struct {
	MealType models.MealType  `json:"meal_type"`
	Days     []models.Weekday `json:"days"`
}

func (pc *PreferenceController) SetDays(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SetDaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := pc.reconciler.SetAlarmDays(userID, req.MealType, req.Days); err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, services.ErrNoPreference):
			status = http.StatusNotFound
		case strings.Contains(err.Error(), "unknown weekday"):
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"status":  "error",
			"message": "Failed to update reminder days",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Reminder days updated successfully",
		"data":    nil,
	})
}

func (pc *PreferenceController) GetPreferences(c *gin.Context) {
	userID := c.GetString("user_id")

	prefs, err := pc.prefs.FindAllActive(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve preferences",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Preferences retrieved successfully",
		"data":    prefs,
	})
}

func (pc *PreferenceController) GetAlarms(c *gin.Context) {
	userID := c.GetString("user_id")

	alarms, err := pc.alarms.FindAllByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve alarms",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Alarms retrieved successfully",
		"data":    alarms,
	})
}

// GetNextMeal reports the user's current or upcoming meal slot.
func (pc *PreferenceController) GetNextMeal(c *gin.Context) {
	userID := c.GetString("user_id")

	info, err := pc.reconciler.NextMealInfo(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to compute next meal",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Next meal retrieved successfully",
		"data":    info,
	})
}
