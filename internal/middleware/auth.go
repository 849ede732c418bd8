package middleware

import (
	"github.com/gin-gonic/gin"

	"kas-dashboard-svc/internal/session"
	"kas-dashboard-svc/pkg/utils"
)

// RequireSession rejects requests while no admin session is active
func RequireSession(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sessions.Authenticated() {
			utils.UnauthorizedResponse(c, "Login required")
			c.Abort()
			return
		}
		c.Next()
	}
}
