package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"devfolio/session"
)

// BearerToken extracts the session token from the Authorization header.
func BearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}

	return parts[1], true
}

// AuthRequired guards the admin mutation surface. The request must carry
// the bearer token of a session whose gate is unlocked; a locked session
// can reach the admin view but not its mutations.
func AuthRequired(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		sess, ok := sessions.Get(token)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown session"})
			c.Abort()
			return
		}

		if !sess.Authenticated {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "admin access requires login"})
			c.Abort()
			return
		}

		// Store session in context for handlers to use
		c.Set("session_token", token)
		c.Set("session", sess)

		c.Next()
	}
}
