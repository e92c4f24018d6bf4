package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"nutrialarm/internal/services"

	"github.com/gin-gonic/gin"
)

type ConsumptionController struct {
	nutrition *services.NutritionService
}

func NewConsumptionController(nutrition *services.NutritionService) *ConsumptionController {
	return &ConsumptionController{nutrition: nutrition}
}

type MarkConsumedRequest struct {
	MealID string `json:"meal_id"`
}

// MarkConsumed godoc
// @Summary Log a consumed meal
// @Description Append a consumption row with a snapshot of the meal's nutrients
// @Tags consumption
// @Accept json
// @Produce json
// @Param consumption body MarkConsumedRequest true "Meal to log"
// @Success 201 {object} map[string]interface{} "Consumption logged"
// @Failure 404 {object} map[string]interface{} "Meal not found"
// @Failure 500 {object} map[string]interface{} "Failed to log consumption"
// @Router /consumption [post]
func (cc *ConsumptionController) MarkConsumed(c *gin.Context) {
	userID := c.GetString("user_id")

	var req MarkConsumedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	row, err := cc.nutrition.MarkConsumed(userID, req.MealID)
	if err != nil {
		status := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{
			"status":  "error",
			"message": "Failed to log consumption",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Consumption logged successfully",
		"data":    row,
	})
}

// GetDailySummary godoc
// @Summary Daily nutrient totals
// @Description Sum the day's logged nutrients; a day without logs returns all zeros
// @Tags consumption
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Summary retrieved"
// @Router /consumption/summary/{date} [get]
func (cc *ConsumptionController) GetDailySummary(c *gin.Context) {
	userID := c.GetString("user_id")
	date := c.Param("date")

	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date",
			"error":   "Date must be YYYY-MM-DD",
		})
		return
	}

	summary, err := cc.nutrition.DailySummary(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to compute summary",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Summary retrieved successfully",
		"data":    summary,
	})
}

func (cc *ConsumptionController) GetWeeklyBonus(c *gin.Context) {
	userID := c.GetString("user_id")

	total, err := cc.nutrition.WeeklyBonusTotal(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to compute weekly bonus",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Weekly bonus retrieved successfully",
		"data":    gin.H{"total": total},
	})
}

func (cc *ConsumptionController) GetHistory(c *gin.Context) {
	userID := c.GetString("user_id")

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid limit",
				"error":   "Limit must be a positive integer",
			})
			return
		}
		limit = parsed
	}

	rows, err := cc.nutrition.History(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve history",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "History retrieved successfully",
		"data":    rows,
	})
}

func (cc *ConsumptionController) DeleteConsumption(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := cc.nutrition.DeleteConsumption(userID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Consumption not found",
			"error":   "No consumption exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Consumption deleted successfully",
		"data":    nil,
	})
}
