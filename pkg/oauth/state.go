package oauth

import "github.com/google/uuid"

// StateParam is the query parameter carrying the anti-CSRF state value.
const StateParam = "state"

// NewState returns a random value for the state parameter of an authorization URL.
// Callers keep it (session, cookie) and compare it with the value echoed back on
// the redirect.
func NewState() string {
	return uuid.NewString()
}
