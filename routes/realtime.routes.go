package routes

import (
	"nutrialarm/internal/controllers"
	"nutrialarm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRealtimeRoutes(router *gin.Engine, realtimeController *controllers.RealtimeController) {
	realtimeRoutes := router.Group("/ws")
	realtimeRoutes.Use(middleware.AuthMiddleware())
	{
		realtimeRoutes.GET("/", realtimeController.Subscribe)
	}
}
