// Package jwtmw issues and verifies session tokens and builds the request identity from them.
package jwtmw

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/shared/identity"
)

// HeaderAuthorization is the inbound header carrying the session token.
const HeaderAuthorization = "Authorization"

const bearerPrefix = "bearer "

// Verifier decodes a session token into its claims.
type Verifier interface {
	Verify(token string) (*Claims, error)
}

// BuildIdentity turns a raw Authorization header value into the caller identity.
// Both "<token>" and "Bearer <token>" are accepted.
// It returns nil for an absent header or a token that fails verification.
func BuildIdentity(v Verifier, header string) *identity.Identity {
	token := strings.TrimSpace(header)
	if len(token) >= len(bearerPrefix) && strings.EqualFold(token[:len(bearerPrefix)], bearerPrefix) {
		token = strings.TrimSpace(token[len(bearerPrefix):])
	}
	if token == "" {
		return nil
	}

	claims, err := v.Verify(token)
	if err != nil {
		slog.Debug("token rejected, continuing as anonymous", "reason", err)
		return nil
	}
	if claims.UserID == 0 {
		return nil
	}
	return &identity.Identity{UserID: claims.UserID}
}

// Authenticate returns a Gin middleware that attaches the caller identity to the request context.
// Requests without a valid token continue as anonymous; the middleware never aborts.
func Authenticate(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := BuildIdentity(v, c.GetHeader(HeaderAuthorization))
		if id != nil {
			c.Request = c.Request.WithContext(identity.WithIdentity(c.Request.Context(), id))
		}
		c.Next()
	}
}
