// Package auth issues and verifies the signed session credential and packages
// it into the session cookie.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/justsurfingit/job-portal-api/internal/apperrors"
)

const (
	CookieName = "token"
	DefaultTTL = time.Hour
)

// Identity is a verified identity claim.
type Identity struct {
	Email  string
	Claims map[string]any
}

// SessionService signs session tokens with an HMAC secret.
//
// Issue trusts the caller-supplied identity: there is no user registry to
// check it against, so anyone may mint a session for any email.
type SessionService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*SessionService)

func WithTTL(ttl time.Duration) Option {
	return func(s *SessionService) { s.ttl = ttl }
}

// WithClock overrides time.Now for issuing and verifying.
func WithClock(now func() time.Time) Option {
	return func(s *SessionService) { s.now = now }
}

func NewSessionService(secret string, opts ...Option) *SessionService {
	s := &SessionService{
		secret: []byte(secret),
		ttl:    DefaultTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SessionService) TTL() time.Duration { return s.ttl }

// Issue signs claims with an expiry of TTL from now. claims must contain a
// non-empty string "email"; any caller-supplied iat/exp are replaced.
func (s *SessionService) Issue(claims map[string]any) (string, error) {
	email, _ := claims["email"].(string)
	if email == "" {
		return "", apperrors.BadRequest("identity claim must contain an email", nil)
	}

	now := s.now()
	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	mc["iat"] = jwt.NewNumericDate(now)
	mc["exp"] = jwt.NewNumericDate(now.Add(s.ttl))

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString(s.secret)
	if err != nil {
		return "", apperrors.Internal("failed to sign session token", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry and returns the identity the
// token carries. Every failure is Unauthorized.
func (s *SessionService) Verify(token string) (*Identity, error) {
	if token == "" {
		return nil, apperrors.Unauthorized(errors.New("missing session token"))
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, apperrors.Unauthorized(err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, apperrors.Unauthorized(errors.New("invalid claims"))
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return nil, apperrors.Unauthorized(errors.New("token carries no email"))
	}

	return &Identity{Email: email, Claims: claims}, nil
}
