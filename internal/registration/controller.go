package registration

import (
	"errors"
	"net/http"

	"festgate/internal/events"
	"festgate/internal/shared/middleware"
	"festgate/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	catalog *events.Catalog
	service Service
}

func NewController(catalog *events.Catalog, service Service) *Controller {
	return &Controller{catalog: catalog, service: service}
}

// Register handles POST /api/v1/events/:slug/register
func (c *Controller) Register(ctx *gin.Context) {
	event, err := c.catalog.BySlug(ctx.Param("slug"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Event not found", nil, nil)
		return
	}

	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil,
			response.FieldErrorsFromValidation(err))
		return
	}

	// Field-level validation against the team-size variant
	if fieldErrors := req.Validate(); fieldErrors != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, fieldErrors)
		return
	}

	sessionID := middleware.SessionID(ctx)
	if sessionID == "" {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Session not established", nil, nil)
		return
	}

	resp, err := c.service.Register(ctx.Request.Context(), sessionID, event, req)
	if err != nil {
		if errors.Is(err, ErrUpstream) {
			response.RespondJSON(ctx, "error", http.StatusBadGateway,
				"Failed to submit registration. Please try again.", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError,
			"Failed to submit registration. Please try again.", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Registration submitted successfully", resp, nil)
}
