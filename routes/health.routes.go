package routes

import (
	"nutrialarm/internal/controllers"
	"nutrialarm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterHealthRoutes(router *gin.Engine, healthController *controllers.HealthController) {
	healthRoutes := router.Group("/health")
	healthRoutes.Use(middleware.AuthMiddleware())
	{
		healthRoutes.GET("/profile", healthController.GetHealthProfile)
	}
}
