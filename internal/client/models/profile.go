package models

// Profile is the authenticated user as reported by GET /api/auth/me.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
