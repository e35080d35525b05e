package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/job-portal-api/internal/apperrors"
)

const testSecret = "test-secret"

func TestIssueVerify_RoundTrip(t *testing.T) {
	svc := NewSessionService(testSecret)

	emails := []string{"hr@co.com", "a@x.com", "weird+tag@sub.example.org"}
	for _, email := range emails {
		t.Run(email, func(t *testing.T) {
			token, err := svc.Issue(map[string]any{"email": email, "name": "Someone"})
			require.NoError(t, err)

			id, err := svc.Verify(token)
			require.NoError(t, err)
			assert.Equal(t, email, id.Email)
			assert.Equal(t, "Someone", id.Claims["name"])
		})
	}
}

func TestIssue_RequiresEmail(t *testing.T) {
	svc := NewSessionService(testSecret)

	for _, claims := range []map[string]any{{}, {"email": ""}, {"email": 42}} {
		_, err := svc.Issue(claims)
		assert.True(t, errors.Is(err, apperrors.ErrBadRequest), "claims %v", claims)
	}
}

func TestIssue_OverridesCallerExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := NewSessionService(testSecret, WithClock(func() time.Time { return now }))

	token, err := svc.Issue(map[string]any{"email": "a@x.com", "exp": now.Add(100 * time.Hour).Unix()})
	require.NoError(t, err)

	id, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, float64(now.Add(time.Hour).Unix()), id.Claims["exp"])
}

func TestVerify_Expired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := now
	svc := NewSessionService(testSecret, WithClock(func() time.Time { return clock }))

	token, err := svc.Issue(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)

	clock = now.Add(59 * time.Minute)
	_, err = svc.Verify(token)
	require.NoError(t, err)

	clock = now.Add(61 * time.Minute)
	_, err = svc.Verify(token)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := NewSessionService("other-secret").Issue(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)

	_, err = NewSessionService(testSecret).Verify(token)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestVerify_Rejects(t *testing.T) {
	svc := NewSessionService(testSecret)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "a@x.com"}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noEmail, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"malformed", "not.a.jwt"},
		{"no expiry", noExp},
		{"no email", noEmail},
		{"alg none", unsigned},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(tt.token)
			assert.True(t, errors.Is(err, apperrors.ErrUnauthorized), "got %v", err)
		})
	}
}

func TestSetSessionCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		policy     CookiePolicy
		wantSecure bool
		wantSame   http.SameSite
	}{
		{"development", CookiePolicy{}, false, http.SameSiteStrictMode},
		{"production", CookiePolicy{Production: true}, true, http.SameSiteNoneMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodPost, "/jwt", nil)

			SetSessionCookie(c, "abc", time.Hour, tt.policy)

			cookies := rec.Result().Cookies()
			require.Len(t, cookies, 1)
			ck := cookies[0]
			assert.Equal(t, CookieName, ck.Name)
			assert.Equal(t, "abc", ck.Value)
			assert.True(t, ck.HttpOnly)
			assert.Equal(t, tt.wantSecure, ck.Secure)
			assert.Equal(t, tt.wantSame, ck.SameSite)
			assert.Equal(t, 3600, ck.MaxAge)
			assert.Equal(t, "/", ck.Path)
		})
	}
}
