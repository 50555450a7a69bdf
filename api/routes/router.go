// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"festgate/internal/confirmation"
	"festgate/internal/events"
	"festgate/internal/registration"
	"festgate/internal/shared/config"
	"festgate/internal/tickets"
	"festgate/internal/upstream"
	"festgate/pkg/cache"
	"festgate/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config  *config.Config
	cache   cache.Service
	catalog *events.Catalog
	log     *logger.Logger
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, cacheService cache.Service, log *logger.Logger) *Router {
	return &Router{
		config:  cfg,
		cache:   cacheService,
		catalog: events.NewCatalog(cfg),
		log:     log,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupEventRoutes(api)
		r.setupRegistrationRoutes(api)
		r.setupConfirmationRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.cache.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "festgate-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "festgate-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupEventRoutes configures event catalog routes
func (r *Router) setupEventRoutes(rg *gin.RouterGroup) {
	eventController := events.NewController(r.catalog, r.config.GetAPIBasePath())

	events.SetupEventRoutes(rg, eventController)
}

// setupRegistrationRoutes configures the registration flow routes
func (r *Router) setupRegistrationRoutes(rg *gin.RouterGroup) {
	store := tickets.NewStore(r.cache, r.config.Session.TTL)
	upstreamClient := upstream.NewClient(r.config.Upstream.Timeout, r.log)

	regService := registration.NewService(store, upstreamClient, r.log, r.config.GetAPIBasePath())
	regController := registration.NewController(r.catalog, regService)

	registration.SetupRegistrationRoutes(rg, regController)
}

// setupConfirmationRoutes configures the payment confirmation flow routes
func (r *Router) setupConfirmationRoutes(rg *gin.RouterGroup) {
	store := tickets.NewStore(r.cache, r.config.Session.TTL)
	upstreamClient := upstream.NewClient(r.config.Upstream.Timeout, r.log)

	confService := confirmation.NewService(store, upstreamClient, r.log)
	confController := confirmation.NewController(r.catalog, confService, r.config.GetAPIBasePath())

	confirmation.SetupConfirmationRoutes(rg, confController, r.config.Upload.MaxScreenshotSize)
}
