package routes

import (
	"nutrialarm/internal/controllers"
	"nutrialarm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterDeviceRoutes(router *gin.Engine, deviceController *controllers.DeviceController) {
	deviceRoutes := router.Group("/devices")
	deviceRoutes.Use(middleware.AuthMiddleware())
	{
		deviceRoutes.POST("/", deviceController.RegisterDevice)
	}
}
