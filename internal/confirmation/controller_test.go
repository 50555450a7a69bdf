package confirmation

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"festgate/internal/events"
	"festgate/internal/shared/config"
	"festgate/internal/shared/middleware"
	"festgate/internal/tickets"
	"festgate/pkg/ticketdoc"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubService returns a canned document or error, recording the tail it saw.
type stubService struct {
	doc      *ticketdoc.Document
	err      error
	gotTail  string
	gotEvent string
}

func (s *stubService) Confirm(ctx context.Context, sessionID string, event events.EventConfig, tailDigits string) (*ticketdoc.Document, error) {
	s.gotTail = tailDigits
	s.gotEvent = event.Slug
	if s.err != nil {
		return nil, s.err
	}
	return s.doc, nil
}

func setupTestRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Upstream.EndpointURL = "https://example.com/exec"
	cfg.Upstream.APIKey = "secret"

	catalog := events.NewCatalog(cfg)
	controller := NewController(catalog, svc, "/api/v1")

	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		c.Set(middleware.ContextSessionID, "session-a")
		c.Next()
	})

	api := engine.Group("/api/v1")
	SetupConfirmationRoutes(api, controller, 10*1024*1024)
	return engine
}

// confirmForm builds the multipart body the confirmation endpoint expects.
func confirmForm(t *testing.T, withScreenshot bool, lastDigits string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if withScreenshot {
		part, err := writer.CreateFormFile(formFieldScreenshot, "payment.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("not-a-real-png"))
		require.NoError(t, err)
	}
	if lastDigits != "" {
		require.NoError(t, writer.WriteField(formFieldLastDigits, lastDigits))
	}
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func postConfirm(t *testing.T, engine *gin.Engine, slug string, withScreenshot bool, lastDigits string) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := confirmForm(t, withScreenshot, lastDigits)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events/"+slug+"/confirm", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func completeDoc() *ticketdoc.Document {
	return &ticketdoc.Document{
		Outcome:  ticketdoc.OutcomeComplete,
		PDF:      []byte("%PDF-1.4 fake"),
		Filename: "ticket_TKT_1.pdf",
	}
}

func TestConfirmEndpoint(t *testing.T) {
	svc := &stubService{doc: completeDoc()}
	engine := setupTestRouter(svc)

	rec := postConfirm(t, engine, "pixel2portal", true, "1234")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="ticket_TKT_1.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "COMPLETE", rec.Header().Get("X-Checkin-Barcode"))
	assert.Equal(t, "%PDF-1.4 fake", rec.Body.String())
	assert.Equal(t, "1234", svc.gotTail)
	assert.Equal(t, "pixel2portal", svc.gotEvent)
}

func TestConfirmEndpoint_TailLengthBounds(t *testing.T) {
	tests := []struct {
		name       string
		lastDigits string
		wantStatus int
	}{
		{"three characters rejected", "123", http.StatusBadRequest},
		{"four characters accepted", "1234", http.StatusOK},
		{"eight characters accepted", "1234ABCD", http.StatusOK},
		{"nine characters rejected", "123456789", http.StatusBadRequest},
		{"empty rejected", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{doc: completeDoc()}
			engine := setupTestRouter(svc)

			rec := postConfirm(t, engine, "pixel2portal", true, tt.lastDigits)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusBadRequest {
				assert.Contains(t, rec.Body.String(), "Please enter 4-8 digits/UTR tail")
			}
		})
	}
}

func TestConfirmEndpoint_MissingScreenshot(t *testing.T) {
	svc := &stubService{doc: completeDoc()}
	engine := setupTestRouter(svc)

	rec := postConfirm(t, engine, "pixel2portal", false, "1234")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please upload payment screenshot")
}

func TestConfirmEndpoint_UnknownEvent(t *testing.T) {
	svc := &stubService{doc: completeDoc()}
	engine := setupTestRouter(svc)

	rec := postConfirm(t, engine, "nonexistent", true, "1234")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestConfirmEndpoint_NoPendingRegistration(t *testing.T) {
	svc := &stubService{err: tickets.ErrNotFound}
	engine := setupTestRouter(svc)

	rec := postConfirm(t, engine, "pixel2portal", true, "1234")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No registration found. Please register again.")
	assert.Contains(t, rec.Body.String(), "/api/v1/events/pixel2portal/register")
}

func TestConfirmEndpoint_UpstreamFailure(t *testing.T) {
	svc := &stubService{err: ErrUpstream}
	engine := setupTestRouter(svc)

	rec := postConfirm(t, engine, "pixel2portal", true, "1234")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to confirm payment. Please try again.")
}
