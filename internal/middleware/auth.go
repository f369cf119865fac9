package middleware

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hr-dashboard/internal/constants"
	apierrors "github.com/yukikurage/hr-dashboard/internal/errors"
	"github.com/yukikurage/hr-dashboard/internal/gateway"
)

// SessionKeyExpiresAt holds the token expiry as unix seconds.
const SessionKeyExpiresAt = "expires_at"

// RequireAuth checks that the session carries an unexpired upstream token and
// exposes it to the gateways through the request context
func RequireAuth(now func() time.Time) gin.HandlerFunc {
	if now == nil {
		now = time.Now
	}

	return func(c *gin.Context) {
		session := sessions.Default(c)
		token, _ := session.Get(constants.SessionKeyToken).(string)

		if token == "" {
			apierrors.Unauthorized(c, "", "", constants.LoginRedirectLocation)
			c.Abort()
			return
		}

		if exp, ok := session.Get(SessionKeyExpiresAt).(int64); ok && !now().Before(time.Unix(exp, 0)) {
			ClearSession(c)
			apierrors.Unauthorized(c, apierrors.ErrCodeSessionExpired, "Tu sesión expiró. Por favor vuelve a iniciar sesión", constants.LoginRedirectLocation)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyToken, token)
		c.Set(constants.ContextKeyUsername, session.Get(constants.SessionKeyUsername))
		c.Set(constants.ContextKeyRole, session.Get(constants.SessionKeyRole))
		c.Request = c.Request.WithContext(gateway.WithToken(c.Request.Context(), token))
		c.Next()
	}
}

// ClearSession drops every value stored in the session
func ClearSession(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	_ = session.Save()
}

// GetUsername retrieves the authenticated username from context
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(constants.ContextKeyUsername)
	if !exists {
		return "", false
	}
	v, ok := username.(string)
	return v, ok
}

// GetRole retrieves the authenticated role from context
func GetRole(c *gin.Context) string {
	role, _ := c.Get(constants.ContextKeyRole)
	v, _ := role.(string)
	return v
}
