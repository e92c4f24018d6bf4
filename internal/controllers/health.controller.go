package controllers

import (
	"net/http"

	"nutrialarm/internal/repository"
	"nutrialarm/internal/utils"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	users repository.UserRepository
}

func NewHealthController(users repository.UserRepository) *HealthController {
	return &HealthController{users: users}
}

// GetHealthProfile godoc
// @Summary BMI and daily recommendations
// @Description Compute BMI, its category and the user's recommended daily iron and calories
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Health profile retrieved"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 422 {object} map[string]interface{} "Measurements out of range"
// @Router /health/profile [get]
func (hc *HealthController) GetHealthProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := hc.users.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	bmi, err := utils.CalculateBMI(user.Weight, user.Height)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":  "error",
			"message": "Cannot compute BMI",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Health profile retrieved successfully",
		"data": gin.H{
			"bmi":                  bmi,
			"bmi_category":         utils.BMICategory(bmi),
			"recommended_iron":     utils.RecommendedIron(user.AnemiaRisk),
			"recommended_calories": utils.RecommendedCalories(user.ActivityLevel),
		},
	})
}
