package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/toursproject/booking-backend/internal/sessions"
	"github.com/toursproject/booking-backend/pkg/logger"
	"github.com/toursproject/booking-backend/pkg/metrics"
)

// identityKey is where the gate leaves the resolved identity for handlers.
const identityKey = "session.identity"

// RequireSession is the access gate for page-serving routes. It resolves the
// session cookie through the session service; on Allow the identity is placed
// in the gin context, on Deny the request is aborted with a structured
// "session expired" response carrying the login redirect target. Absent,
// expired and destroyed sessions all produce the same Deny.
func RequireSession(svc *sessions.Service, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err == nil && id != "" {
			sess, lerr := svc.Lookup(c.Request.Context(), id)
			if lerr != nil {
				// store failure: treat as Deny, never as a crash
				logger.Errorf("session lookup failed: %v", lerr)
			}
			if sess != nil {
				c.Set(identityKey, sess.Identity)
				c.Next()
				return
			}
		}
		metrics.SessionDenials.Inc()
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"code":        "SESSION_EXPIRED",
			"message":     "Session expired. Please login again.",
			"redirectUrl": "/login.html",
		})
	}
}

// Identity returns the identity the gate resolved for this request.
func Identity(c *gin.Context) (sessions.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return sessions.Identity{}, false
	}
	id, ok := v.(sessions.Identity)
	return id, ok
}
