package middleware

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"quwastudio/internal/pkg/response"
)

// AdminTokenAuth protects operator endpoints using a static bearer token.
// An empty token disables the endpoints.
func AdminTokenAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			logAuthFailure(c, http.StatusForbidden, "token_not_configured")
			response.Abort(c, http.StatusForbidden, "AUTH_DISABLED", "Admin API is disabled")
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logAuthFailure(c, http.StatusUnauthorized, "missing_auth")
			response.Abort(c, http.StatusUnauthorized, "AUTH_MISSING", "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logAuthFailure(c, http.StatusUnauthorized, "invalid_auth_format")
			response.Abort(c, http.StatusUnauthorized, "AUTH_INVALID", "Authorization header must be 'Bearer <token>'")
			return
		}

		if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(token)) != 1 {
			logAuthFailure(c, http.StatusForbidden, "invalid_token")
			response.Abort(c, http.StatusForbidden, "AUTH_INVALID", "Invalid admin token")
			return
		}

		c.Next()
	}
}

func logAuthFailure(c *gin.Context, status int, reason string) {
	log.Printf("admin_auth status=%d client_ip=%s request_id=%s reason=%s", status, c.ClientIP(), RequestIDFrom(c), reason)
}
