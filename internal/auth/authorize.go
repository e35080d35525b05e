package auth

import "github.com/justsurfingit/job-portal-api/internal/apperrors"

// AuthorizeSelf allows a request scoped to requested only when the
// authenticated identity is that same identity. A nil identity means the
// caller skipped authentication.
func AuthorizeSelf(id *Identity, requested string) error {
	if id == nil {
		return apperrors.Unauthorized(nil)
	}
	if id.Email != requested {
		return apperrors.Forbidden()
	}
	return nil
}
