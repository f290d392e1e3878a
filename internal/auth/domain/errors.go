package domain

import (
	"fmt"

	apperrors "github.com/fiscalhub/fiscalhub/internal/errors"
)

// Domain-specific errors for authentication operations.
var (
	// ErrInvalidCredentials indicates the CPF or password did not match.
	// The message is deliberately vague so callers cannot tell whether
	// the account exists.
	ErrInvalidCredentials = apperrors.Wrap(apperrors.ErrUnauthorized, "invalid credentials")

	// ErrMalformedCPF indicates the sign-in identifier is empty or not
	// eleven digits after stripping punctuation. This is a validation
	// error, not a credential error: the input could never name an
	// account.
	ErrMalformedCPF = apperrors.Wrap(apperrors.ErrInvalidInput, "invalid CPF")

	// ErrAccessDenied indicates the credentials are valid but the user
	// has no active organization link and is not an administrator.
	ErrAccessDenied = apperrors.Wrap(apperrors.ErrForbidden, "access denied")

	// ErrTokenInvalid indicates the token is malformed, has a bad
	// signature, or was not issued by this service.
	ErrTokenInvalid = apperrors.Wrap(apperrors.ErrUnauthorized, "invalid token")

	// ErrTokenExpired indicates the token's signature expiry or the
	// maximum token age has passed.
	ErrTokenExpired = apperrors.Wrap(apperrors.ErrUnauthorized, "token expired")

	// ErrTokenRevoked indicates the token was explicitly signed out.
	ErrTokenRevoked = apperrors.Wrap(apperrors.ErrUnauthorized, "token revoked")
)

// RateLimitedError indicates the identifier is locked out after repeated
// sign-in failures. It carries the remaining lockout time so handlers can
// emit a Retry-After header.
type RateLimitedError struct {
	Minutes int
}

// Error implements the error interface.
func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("too many failed sign-in attempts, retry in %d minutes", e.Minutes)
}

// RetryAfterMinutes returns the remaining lockout time in whole minutes,
// rounded up.
func (e *RateLimitedError) RetryAfterMinutes() int {
	return e.Minutes
}

// Unwrap makes the error match apperrors.ErrLocked.
func (e *RateLimitedError) Unwrap() error {
	return apperrors.ErrLocked
}
