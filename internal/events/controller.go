package events

import (
	"errors"
	"net/http"

	"festgate/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	catalog  *Catalog
	basePath string
}

func NewController(catalog *Catalog, basePath string) *Controller {
	return &Controller{catalog: catalog, basePath: basePath}
}

// GetAllEvents handles GET /api/v1/events
func (c *Controller) GetAllEvents(ctx *gin.Context) {
	events := c.catalog.All()

	responses := make([]EventResponse, 0, len(events))
	for _, ev := range events {
		responses = append(responses, ev.ToResponse(c.basePath))
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Events retrieved successfully", gin.H{
		"events": responses,
		"count":  len(responses),
	}, nil)
}

// GetEvent handles GET /api/v1/events/:slug
func (c *Controller) GetEvent(ctx *gin.Context) {
	slug := ctx.Param("slug")

	ev, err := c.catalog.BySlug(slug)
	if err != nil {
		if errors.Is(err, ErrUnknownEvent) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Event not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to load event", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Event retrieved successfully", ev.ToResponse(c.basePath), nil)
}
