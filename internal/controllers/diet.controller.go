package controllers

import (
	"net/http"

	"nutrialarm/internal/models"
	"nutrialarm/internal/repository"

	"github.com/gin-gonic/gin"
)

type DietController struct {
	repo repository.DietRepository
}

func NewDietController(repo repository.DietRepository) *DietController {
	return &DietController{repo: repo}
}

func (dc *DietController) GetDiets(c *gin.Context) {
	var diets []models.Diet
	var err error

	if risk := c.Query("risk"); risk != "" {
		riskLevel := models.AnemiaRisk(risk)
		if !riskLevel.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid risk level",
				"error":   "Unknown anemia risk: " + risk,
			})
			return
		}
		diets, err = dc.repo.FindByRisk(riskLevel)
	} else {
		diets, err = dc.repo.FindAll()
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve diets",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Diets retrieved successfully",
		"data":    diets,
	})
}

func (dc *DietController) GetDietByID(c *gin.Context) {
	diet, err := dc.repo.FindByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Diet not found",
			"error":   "No diet exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Diet retrieved successfully",
		"data":    diet,
	})
}

// GetDietMeals returns the meals linked to a diet through the cross-ref
// table. The list is derived, never stored on the diet row.
func (dc *DietController) GetDietMeals(c *gin.Context) {
	dietID := c.Param("id")

	if _, err := dc.repo.FindByID(dietID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Diet not found",
			"error":   "No diet exists with the provided ID",
		})
		return
	}

	meals, err := dc.repo.MealsOf(dietID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve diet meals",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Diet meals retrieved successfully",
		"data":    meals,
	})
}
