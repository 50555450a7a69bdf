package registration

import (
	"github.com/gin-gonic/gin"
)

// SetupRegistrationRoutes configures the registration flow routes
func SetupRegistrationRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.POST("/events/:slug/register", controller.Register) // POST /api/v1/events/:slug/register
}
