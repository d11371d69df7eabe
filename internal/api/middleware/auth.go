package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/lazybook/pkg/response"
	"github.com/d60-Lab/lazybook/pkg/token"
)

const (
	ctxUserID   = "auth_user_id"
	ctxUsername = "auth_username"
)

// Auth validates the bearer credential and stashes the resolved identity on
// the request context. The realtime endpoint cannot set headers from the
// browser websocket API, so an access_token query parameter is accepted too.
func Auth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			response.Unauthorized(c, "missing credentials")
			return
		}
		claims, err := tokens.Parse(raw)
		if err != nil {
			response.Unauthorized(c, "invalid or expired credentials")
			return
		}
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUsername, claims.Username)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Query("access_token")
}

// UserID returns the authenticated caller's id set by Auth.
func UserID(c *gin.Context) string { return c.GetString(ctxUserID) }

// Username returns the authenticated caller's display name set by Auth.
func Username(c *gin.Context) string { return c.GetString(ctxUsername) }
