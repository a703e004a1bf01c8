package middleware

import (
	"net/http"
	"strings"

	"vivah/config"
	"vivah/internal/auth"
	"vivah/internal/response"

	"github.com/gin-gonic/gin"
)

// AuthRequired validates the bearer token and injects UserID and Email into
// the request context. All downstream code reads the viewer through
// GetUserID; there is no ambient current-user accessor.
func AuthRequired(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing authorization header")
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.AbortError(c, http.StatusUnauthorized, "invalid authorization format")
			return
		}
		claims, err := auth.ParseAccessToken(cfg, parts[1])
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// GetUserID returns the authenticated user ID (must be used after AuthRequired).
func GetUserID(c *gin.Context) uint {
	v, _ := c.Get("user_id")
	if v == nil {
		return 0
	}
	return v.(uint)
}
