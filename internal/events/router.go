package events

import (
	"github.com/gin-gonic/gin"
)

func SetupEventRoutes(router *gin.RouterGroup, controller *Controller) {
	// Public routes - the landing and event detail pages read from these
	publicEvents := router.Group("/events")
	{
		publicEvents.GET("", controller.GetAllEvents)   // GET /api/v1/events
		publicEvents.GET("/:slug", controller.GetEvent) // GET /api/v1/events/:slug
	}
}
