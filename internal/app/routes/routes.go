package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/communiteer/welcomehub/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	submissionController *controllers.SubmissionController,
	healthController *controllers.HealthController,
) {
	router.GET("/health", healthController.Health)

	router.POST("/checkin", submissionController.Checkin)
	router.POST("/eoi", submissionController.Eoi)

	// Paths the hub page posts to
	api := router.Group("/api")
	{
		api.POST("/checkin", submissionController.Checkin)
		api.POST("/eoi", submissionController.Eoi)
	}
}
