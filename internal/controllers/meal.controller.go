package controllers

import (
	"net/http"

	"nutrialarm/internal/models"
	"nutrialarm/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MealController struct {
	repo repository.MealRepository
}

func NewMealController(repo repository.MealRepository) *MealController {
	return &MealController{repo: repo}
}

// GetMeals godoc
// @Summary List meals
// @Description Retrieve all meals, optionally filtered by meal type
// @Tags meal
// @Produce json
// @Param type query string false "Meal type filter"
// @Success 200 {object} map[string]interface{} "Meals retrieved successfully"
// @Router /meals [get]
func (mc *MealController) GetMeals(c *gin.Context) {
	var meals []models.Meal
	var err error

	if t := c.Query("type"); t != "" {
		mealType := models.MealType(t)
		if !mealType.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid meal type",
				"error":   "Unknown meal type: " + t,
			})
			return
		}
		meals, err = mc.repo.FindByType(mealType)
	} else {
		meals, err = mc.repo.FindAll()
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve meals",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meals retrieved successfully",
		"data":    meals,
	})
}

func (mc *MealController) GetMealByID(c *gin.Context) {
	meal, err := mc.repo.FindByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Meal not found",
			"error":   "No meal exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal retrieved successfully",
		"data":    meal,
	})
}

type CreateMealRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Ingredients     []string        `json:"ingredients"`
	MealType        models.MealType `json:"meal_type"`
	IronContent     float64         `json:"iron_content"`
	Calories        float64         `json:"calories"`
	PreparationTime int             `json:"preparation_time"`
	ImageURL        string          `json:"image_url"`
	VitaminC        float64         `json:"vitamin_c"`
	Folate          float64         `json:"folate"`
}

// CreateMeal creates a user-authored meal. Catalog rows are seeded separately
// and are never writable through this endpoint.
func (mc *MealController) CreateMeal(c *gin.Context) {
	var req CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	if req.Name == "" || !req.MealType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "Name and a valid meal type are required",
		})
		return
	}

	meal := &models.Meal{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Description:     req.Description,
		MealType:        req.MealType,
		IronContent:     req.IronContent,
		Calories:        req.Calories,
		PreparationTime: req.PreparationTime,
		ImageURL:        req.ImageURL,
		VitaminC:        req.VitaminC,
		Folate:          req.Folate,
		IsPreloaded:     false,
	}
	if err := meal.SetIngredients(req.Ingredients); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid ingredients",
			"error":   err.Error(),
		})
		return
	}

	if err := mc.repo.Create(meal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create meal",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Meal created successfully",
		"data":    meal,
	})
}

func (mc *MealController) DeleteMeal(c *gin.Context) {
	meal, err := mc.repo.FindByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Meal not found",
			"error":   "No meal exists with the provided ID",
		})
		return
	}
	if meal.IsPreloaded {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Cannot delete a catalog meal",
			"error":   "Preloaded meals are read-only",
		})
		return
	}

	if err := mc.repo.Delete(meal.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete meal",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal deleted successfully",
		"data":    nil,
	})
}
