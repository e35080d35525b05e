package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/justsurfingit/job-portal-api/internal/apperrors"
)

func TestAuthorizeSelf(t *testing.T) {
	a := &Identity{Email: "a@x.com"}

	assert.NoError(t, AuthorizeSelf(a, "a@x.com"))
	assert.True(t, errors.Is(AuthorizeSelf(a, "b@x.com"), apperrors.ErrForbidden))
	assert.True(t, errors.Is(AuthorizeSelf(a, ""), apperrors.ErrForbidden))
	assert.True(t, errors.Is(AuthorizeSelf(nil, "a@x.com"), apperrors.ErrUnauthorized))
}
