package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ovenlight/bakeshop/internal/domain/model"
	pkgAuth "github.com/ovenlight/bakeshop/internal/pkg/auth"
)

const (
	// UserIDContextKey is a gin context key for authenticated user identifier.
	UserIDContextKey = "userID"
	// UserRoleContextKey is a gin context key for the authenticated role.
	UserRoleContextKey = "userRole"
	authCookieName     = "bakeshop_token"
)

// SessionParser validates session tokens for the auth middleware.
type SessionParser interface {
	ParseToken(token string) (pkgAuth.Identity, error)
}

// UserLoader resolves accounts for the admin gate.
type UserLoader interface {
	UserByID(ctx context.Context, id int64) (*model.User, error)
}

// AuthRequired ensures the request carries a valid session before accessing handler.
func AuthRequired(parser SessionParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		identity, err := parser.ParseToken(token)
		if err != nil {
			if err == pkgAuth.ErrInvalidToken {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(UserIDContextKey, identity.UserID)
		c.Set(UserRoleContextKey, identity.Role)
		c.Next()
	}
}

// AuthOptional resolves the session when a valid token is present and lets
// the request through either way. Used by the session probe endpoint.
func AuthOptional(parser SessionParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if identity, err := parser.ParseToken(token); err == nil {
				c.Set(UserIDContextKey, identity.UserID)
				c.Set(UserRoleContextKey, identity.Role)
			}
		}
		c.Next()
	}
}

// AdminRequired verifies the authenticated account is an active admin.
// It re-reads the account so a revoked or deactivated admin is cut off
// immediately, not at token expiry.
func AdminRequired(loader UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(UserRoleContextKey)
		if role != string(model.RoleAdmin) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		id, _ := c.Get(UserIDContextKey)
		userID, _ := id.(int64)
		user, err := loader.UserByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		if user.Role != model.RoleAdmin || !user.IsActive {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

// ClearAuthCookie expires the auth token cookie.
func ClearAuthCookie(c *gin.Context) {
	c.SetCookie(authCookieName, "", -1, "/", "", false, true)
}
