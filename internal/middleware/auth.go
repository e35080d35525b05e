// Package middleware provides gin middleware for the job portal API
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/justsurfingit/job-portal-api/internal/apperrors"
	"github.com/justsurfingit/job-portal-api/internal/auth"
)

const identityKey = "identity"

// TokenVerifier verifies a session token.
type TokenVerifier interface {
	Verify(token string) (*auth.Identity, error)
}

// RequireSession rejects requests without a valid session cookie with 401
// and stores the verified identity on the context for handlers.
func RequireSession(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := v.Verify(auth.SessionToken(c))
		if err != nil {
			zerolog.Ctx(c.Request.Context()).Warn().Err(err).
				Str("path", c.Request.URL.Path).
				Msg("authentication failed")
			se := apperrors.GetServiceError(err)
			if se == nil {
				se = apperrors.Unauthorized(err)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": se.Message})
			return
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

// Identity returns the identity RequireSession stored, or nil.
func Identity(c *gin.Context) *auth.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	id, _ := v.(*auth.Identity)
	return id
}
