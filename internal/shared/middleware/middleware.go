package middleware

import (
	"net/http"

	"festgate/internal/shared/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextSessionID is the gin context key the session middleware sets.
const ContextSessionID = "session_id"

// Session ensures every request carries a session ID cookie. The session ID
// scopes the pending ticket handoff between the registration and
// confirmation flows; a browser keeps it for the lifetime configured in
// SessionConfig.TTL.
func Session(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cfg.Session.CookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(
				cfg.Session.CookieName,
				sessionID,
				int(cfg.Session.TTL.Seconds()),
				"/",
				"",
				cfg.IsProduction(), // secure cookies outside development
				true,
			)
		}

		c.Set(ContextSessionID, sessionID)
		c.Next()
	}
}

// SessionID returns the session ID set by the Session middleware, or an
// empty string when the middleware did not run.
func SessionID(c *gin.Context) string {
	value, exists := c.Get(ContextSessionID)
	if !exists {
		return ""
	}
	sessionID, _ := value.(string)
	return sessionID
}

// MaxBodySize caps the request body. Oversized confirmation uploads fail at
// the transport layer instead of buffering a screenshot nobody stores.
func MaxBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
