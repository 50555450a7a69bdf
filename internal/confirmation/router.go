package confirmation

import (
	"festgate/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupConfirmationRoutes configures the confirmation flow routes
func SetupConfirmationRoutes(rg *gin.RouterGroup, controller *Controller, maxUploadSize int64) {
	confirm := rg.Group("/events/:slug")
	confirm.Use(middleware.MaxBodySize(maxUploadSize))
	{
		confirm.POST("/confirm", controller.Confirm) // POST /api/v1/events/:slug/confirm
	}
}
