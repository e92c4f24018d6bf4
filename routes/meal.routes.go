package routes

import (
	"nutrialarm/internal/controllers"
	"nutrialarm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterMealRoutes(router *gin.Engine, mealController *controllers.MealController) {
	mealRoutes := router.Group("/meals")
	mealRoutes.Use(middleware.AuthMiddleware())
	{
		mealRoutes.GET("/", mealController.GetMeals)
		mealRoutes.GET("/:id", mealController.GetMealByID)
		mealRoutes.POST("/", mealController.CreateMeal)
		mealRoutes.DELETE("/:id", mealController.DeleteMeal)
	}
}
