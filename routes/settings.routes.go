package routes

import (
	"nutrialarm/internal/controllers"
	"nutrialarm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterSettingsRoutes(router *gin.Engine, settingsController *controllers.SettingsController) {
	settingsRoutes := router.Group("/settings")
	settingsRoutes.Use(middleware.AuthMiddleware())
	{
		settingsRoutes.GET("/", settingsController.GetSettings)
		settingsRoutes.PATCH("/", settingsController.UpdateSettings)
	}
}
