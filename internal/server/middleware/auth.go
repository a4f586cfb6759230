// Package middleware holds the HTTP middleware for protected routes.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"orgconnect/backend/internal/security"
)

// SessionCookieName is the cookie that carries the session token.
const SessionCookieName = "token"

const bearerPrefix = "bearer "

// identityKey is the gin context key the auth gate stores the resolved
// identity under. Handlers read it via IdentityFrom only.
const identityKey = "auth.identity"

// Identity is the resolved session identity the auth gate attaches to the
// request context on successful token validation.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

// RequireAuth returns a middleware that validates the session token from the
// "token" cookie or the Authorization Bearer header. On success it attaches
// the resolved Identity to the request; on any failure it short-circuits with
// 401 before the handler runs.
func RequireAuth(tokens *security.TokenProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortUnauthenticated(c)
			return
		}
		claims, err := tokens.Validate(token)
		if err != nil {
			abortUnauthenticated(c)
			return
		}
		c.Set(identityKey, Identity{
			UserID: claims.Subject,
			Email:  claims.Email,
			Role:   claims.Role,
		})
		c.Next()
	}
}

// IdentityFrom returns the identity attached by RequireAuth, if any.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// extractToken returns the session token from the cookie, falling back to the
// Authorization Bearer header, or "" when absent.
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	v := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(v) < len(bearerPrefix) {
		return ""
	}
	if !strings.EqualFold(v[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(v[len(bearerPrefix):])
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"message": "Usuário não autenticado.",
	})
}
