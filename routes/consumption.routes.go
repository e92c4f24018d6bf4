package routes

import (
	"nutrialarm/internal/controllers"
	"nutrialarm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterConsumptionRoutes(router *gin.Engine, consumptionController *controllers.ConsumptionController) {
	consumptionRoutes := router.Group("/consumption")
	consumptionRoutes.Use(middleware.AuthMiddleware())
	{
		consumptionRoutes.POST("/", consumptionController.MarkConsumed)
		consumptionRoutes.GET("/summary/:date", consumptionController.GetDailySummary)
		consumptionRoutes.GET("/weekly-bonus", consumptionController.GetWeeklyBonus)
		consumptionRoutes.GET("/history", consumptionController.GetHistory)
		consumptionRoutes.DELETE("/:id", consumptionController.DeleteConsumption)
	}
}
