// Package common defines shared constants and sentinel errors used across
// the moneytrack client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// ErrNotSignedIn is returned by services that need a stored session
	// token when none is present.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrPasswordMismatch is reported when the sign-up confirmation field
	// does not match the password. The text is shown to the user verbatim.
	ErrPasswordMismatch = errors.New("Passwords do not match.")

	// ErrSessionExpired is reported when the stored token carries an exp
	// claim that is already in the past.
	ErrSessionExpired = errors.New("session expired, sign in again")
)
