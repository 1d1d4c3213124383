// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements bearer-token authentication. Authenticate() is
// installed globally: it parses and validates an Authorization header when
// one is present, resolves the token subject to a stored user, and stashes
// both in the Gin context. It never rejects a request by itself, so public
// endpoints stay public; RequireUser() and RequireAdmin() are the gates
// placed on protected route groups.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/codelamp/go-forum-backend/internal/domain"
)

// Context keys for the authenticated identity.
const (
	ctxKeyUserID = "userID"
	ctxKeyUser   = "authUser"
)

// TokenValidator verifies an access token and returns its subject (the user
// ID). Implemented by auth.TokenService.
type TokenValidator interface {
	Validate(token string) (string, error)
}

// UserLoader resolves a user ID to the stored account. Implemented by the
// user service; returning an error means the account no longer exists.
type UserLoader func(ctx context.Context, userID string) (*domain.User, error)

// CurrentUser returns the authenticated user stashed by Authenticate, or nil
// for anonymous requests.
func CurrentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(ctxKeyUser); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}

// CurrentUserID returns the authenticated user ID, or "" for anonymous
// requests.
func CurrentUserID(c *gin.Context) string {
	if v, ok := c.Get(ctxKeyUserID); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Authenticate validates a "Bearer <token>" Authorization header when one is
// present and loads the account it names into the request context.
//
// Invalid tokens and tokens whose account has been deleted are treated the
// same as no token at all: the request continues anonymously and the
// downstream gate (RequireUser / RequireAdmin) decides whether that is
// acceptable. This keeps token handling in one place without forcing every
// route to be private.
func Authenticate(tokens TokenValidator, loadUser UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			c.Next()
			return
		}

		uid, err := tokens.Validate(strings.TrimSpace(header[len(prefix):]))
		if err != nil {
			c.Next()
			return
		}
		u, err := loadUser(c.Request.Context(), uid)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ctxKeyUserID, u.ID)
		c.Set(ctxKeyUser, u)
		c.Next()
	}
}

// RequireUser aborts with 401 when the request carries no valid
// authenticated user. Mount it on route groups that need a caller identity.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"request_id": c.Writer.Header().Get(requestIDHeader),
				"code":       "unauthorized",
				"message":    "authentication required",
			})
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts with 401 for anonymous callers and 403 for
// authenticated non-admins. The service layer re-checks the role, so this
// gate is defense at the transport edge, not the only check.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"request_id": c.Writer.Header().Get(requestIDHeader),
				"code":       "unauthorized",
				"message":    "authentication required",
			})
			return
		}
		if !u.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"request_id": c.Writer.Header().Get(requestIDHeader),
				"code":       "forbidden",
				"message":    "admin access required",
			})
			return
		}
		c.Next()
	}
}
