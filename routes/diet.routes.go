package routes

import (
	"nutrialarm/internal/controllers"
	"nutrialarm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterDietRoutes(router *gin.Engine, dietController *controllers.DietController) {
	dietRoutes := router.Group("/diets")
	dietRoutes.Use(middleware.AuthMiddleware())
	{
		dietRoutes.GET("/", dietController.GetDiets)
		dietRoutes.GET("/:id", dietController.GetDietByID)
		dietRoutes.GET("/:id/meals", dietController.GetDietMeals)
	}
}
