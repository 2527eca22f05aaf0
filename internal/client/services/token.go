package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpiry extracts the exp claim from a backend token without verifying
// its signature. The token stays opaque to the client otherwise; the claim is
// read only to warn about an already-expired session before a round-trip.
// Returns the zero time for tokens that are not JWTs or carry no exp claim.
func tokenExpiry(token string) time.Time {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
