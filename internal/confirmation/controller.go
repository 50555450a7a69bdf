package confirmation

import (
	"errors"
	"net/http"

	"festgate/internal/events"
	"festgate/internal/shared/middleware"
	"festgate/internal/shared/utils/response"
	"festgate/internal/tickets"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	catalog  *events.Catalog
	service  Service
	basePath string
}

func NewController(catalog *events.Catalog, service Service, basePath string) *Controller {
	return &Controller{catalog: catalog, service: service, basePath: basePath}
}

// Confirm handles POST /api/v1/events/:slug/confirm
func (c *Controller) Confirm(ctx *gin.Context) {
	event, err := c.catalog.BySlug(ctx.Param("slug"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Event not found", nil, nil)
		return
	}

	// Screenshot is a presence-only check; the file is never read.
	if _, err := ctx.FormFile(formFieldScreenshot); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest,
			"Please upload payment screenshot", nil,
			response.FieldErrors{formFieldScreenshot: "Payment screenshot is required"})
		return
	}

	tailDigits := ctx.PostForm(formFieldLastDigits)
	if len(tailDigits) < tailMinLen || len(tailDigits) > tailMaxLen {
		response.RespondJSON(ctx, "error", http.StatusBadRequest,
			"Please enter 4-8 digits/UTR tail", nil,
			response.FieldErrors{formFieldLastDigits: "Enter the last 4-8 characters of the transaction ID"})
		return
	}

	sessionID := middleware.SessionID(ctx)
	if sessionID == "" {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Session not established", nil, nil)
		return
	}

	doc, err := c.service.Confirm(ctx.Request.Context(), sessionID, event, tailDigits)
	if err != nil {
		switch {
		case errors.Is(err, tickets.ErrNotFound):
			// Recovery path for a lost or expired session
			response.RespondJSON(ctx, "error", http.StatusNotFound,
				"No registration found. Please register again.", gin.H{
					"register_url": c.basePath + "/events/" + event.Slug + "/register",
				}, nil)
		case errors.Is(err, ErrUpstream):
			response.RespondJSON(ctx, "error", http.StatusBadGateway,
				"Failed to confirm payment. Please try again.", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError,
				"Failed to generate ticket. Please try again.", nil, nil)
		}
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	ctx.Header("X-Checkin-Barcode", string(doc.Outcome))
	ctx.Data(http.StatusOK, "application/pdf", doc.PDF)
}
