package routes

import (
	"nutrialarm/internal/controllers"
	"nutrialarm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterPreferenceRoutes(router *gin.Engine, preferenceController *controllers.PreferenceController) {
	preferenceRoutes := router.Group("/preferences")
	preferenceRoutes.Use(middleware.AuthMiddleware())
	{
		preferenceRoutes.GET("/", preferenceController.GetPreferences)
		preferenceRoutes.POST("/select", preferenceController.SelectMeal)
		preferenceRoutes.PUT("/time", preferenceController.UpdateTime)
		preferenceRoutes.PUT("/reminder", preferenceController.ToggleReminder)
		preferenceRoutes.PUT("/days", preferenceController.SetDays)
		preferenceRoutes.GET("/alarms", preferenceController.GetAlarms)
		preferenceRoutes.GET("/next-meal", preferenceController.GetNextMeal)
	}
}
