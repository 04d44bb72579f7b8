package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/blogforge/backend/internal/auth"
)

const identityKey = "auth_identity"

// AuthMiddleware authenticates the Authorization header once per request and
// stores the resulting identity in the gin context. Every rejection is a
// plain 401 with no detail about which check failed.
func AuthMiddleware(codec *auth.TokenCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		identity, err := codec.Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// GetIdentity returns the identity stored by AuthMiddleware, or false when
// the request was not authenticated.
func GetIdentity(c *gin.Context) (auth.Identity, bool) {
	if value, ok := c.Get(identityKey); ok {
		if identity, ok := value.(auth.Identity); ok {
			return identity, true
		}
	}
	return auth.Identity{}, false
}

func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	originMap := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			continue
		}
		originMap[trimmed] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if _, ok := originMap[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
				c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
