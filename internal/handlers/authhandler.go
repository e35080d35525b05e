package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/job-portal-api/internal/auth"
)

type AuthHandler struct {
	Sessions *auth.SessionService
	Policy   auth.CookiePolicy
}

func NewAuthHandler(sessions *auth.SessionService, policy auth.CookiePolicy) *AuthHandler {
	return &AuthHandler{Sessions: sessions, Policy: policy}
}

// IssueToken is POST /jwt. The body is the identity claim and is trusted as
// sent: there is no user registry to check it against.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	claims, ok := bindDocument(c)
	if !ok {
		return
	}
	token, err := h.Sessions.Issue(claims)
	if err != nil {
		respondError(c, err)
		return
	}
	auth.SetSessionCookie(c, token, h.Sessions.TTL(), h.Policy)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
