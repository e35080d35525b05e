package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CookiePolicy decides the Secure and SameSite attributes of the session
// cookie. Production is served cross-site from the frontend host, so it needs
// SameSite=None, which browsers only accept together with Secure.
type CookiePolicy struct {
	Production bool
}

func (p CookiePolicy) SameSite() http.SameSite {
	if p.Production {
		return http.SameSiteNoneMode
	}
	return http.SameSiteStrictMode
}

// SetSessionCookie writes the HttpOnly session cookie holding token.
func SetSessionCookie(c *gin.Context, token string, ttl time.Duration, policy CookiePolicy) {
	c.SetSameSite(policy.SameSite())
	c.SetCookie(CookieName, token, int(ttl.Seconds()), "/", "", policy.Production, true)
}

// SessionToken returns the session cookie value, or "" when absent.
func SessionToken(c *gin.Context) string {
	token, err := c.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return token
}
