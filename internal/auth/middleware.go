package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenMiddleware guards the frontend-only proxy endpoints with a shared bearer token
type TokenMiddleware struct {
	token string
}

// NewTokenMiddleware creates a new token middleware
func NewTokenMiddleware(token string) *TokenMiddleware {
	return &TokenMiddleware{token: token}
}

// RequireToken rejects requests without "Authorization: Bearer <token>"
func (m *TokenMiddleware) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.valid(c.GetHeader("Authorization")) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

func (m *TokenMiddleware) valid(header string) bool {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" || m.token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(m.token)) == 1
}
