package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adrianhuber/accounts-api/pkg/helpers"
	"github.com/adrianhuber/accounts-api/pkg/response"
)

const bearerPrefix = "Bearer "

// Auth validates the Authorization bearer token and sets userID in the
// Gin context on success. Tokens are self-contained; no server-side
// session lookup happens here.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			response.AbortError(c, http.StatusUnauthorized, "missing access token")
			return
		}
		claims, err := jwt.Parse(strings.TrimPrefix(header, bearerPrefix))
		if err != nil || claims.Subject == "" {
			response.AbortError(c, http.StatusUnauthorized, "invalid access token")
			return
		}
		c.Set("userID", claims.Subject)
		c.Next()
	}
}
