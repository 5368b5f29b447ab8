package routes

import (
	"gap-quote-api/controllers"
	"gap-quote-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// Liveness probe, outside the attribution group
	router.GET("/health", controllers.HealthCheck)

	// GAP quickquote API v2
	gap := router.Group("/quickquote/generator/gap/v2")
	gap.Use(middleware.AttributionMiddleware())
	{
		quote := gap.Group("/quote")
		{
			quote.POST("/create", controllers.CreateQuote)
			quote.POST("/bind", controllers.BindQuote)
		}
	}
}
