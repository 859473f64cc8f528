package oauth

import (
	"maps"
	"time"

	"golang.org/x/oauth2"
)

// Wire names of the standard token response fields.
const (
	FieldAccessToken  = "access_token"
	FieldTokenType    = "token_type"
	FieldRefreshToken = "refresh_token"
	FieldExpiresIn    = "expires_in"
	FieldExpires      = "expires"
	FieldScope        = "scope"
)

// Token is an access token issued by a provider.
//
// Extra carries every field of the token response under its wire name, except the
// lifetime field that was converted into ExpiresAt.
// A zero ExpiresAt means the provider did not report an expiry.
type Token struct {
	AccessToken  string
	TokenType    string
	RefreshToken string
	ExpiresAt    time.Time
	Extra        map[string]string
}

// IsZero reports whether the token is empty.
func (t Token) IsZero() bool {
	return t.AccessToken == "" && t.RefreshToken == "" && t.TokenType == "" &&
		t.ExpiresAt.IsZero() && len(t.Extra) == 0
}

// HasExpiry reports whether the provider reported a lifetime for the token.
func (t Token) HasExpiry() bool {
	return !t.ExpiresAt.IsZero()
}

// Expired reports whether the token has an expiry at or before now.
func (t Token) Expired(now time.Time) bool {
	return t.HasExpiry() && !now.Before(t.ExpiresAt)
}

// Valid reports whether the token carries an access token that has not expired at now.
func (t Token) Valid(now time.Time) bool {
	return t.AccessToken != "" && !t.Expired(now)
}

// Get returns a response field by its wire name.
func (t Token) Get(key string) string {
	return t.Extra[key]
}

// Clone returns a deep copy of the token.
func (t Token) Clone() Token {
	t.Extra = maps.Clone(t.Extra)
	return t
}

// OAuth2 converts the token into a golang.org/x/oauth2 token.
// Extra fields are reachable through (*oauth2.Token).Extra.
func (t Token) OAuth2() *oauth2.Token {
	ot := &oauth2.Token{
		AccessToken:  t.AccessToken,
		TokenType:    t.TokenType,
		RefreshToken: t.RefreshToken,
		Expiry:       t.ExpiresAt,
	}
	if len(t.Extra) == 0 {
		return ot
	}
	extra := make(map[string]any, len(t.Extra))
	for k, v := range t.Extra {
		extra[k] = v
	}
	return ot.WithExtra(extra)
}

// TokenFromOAuth2 converts a golang.org/x/oauth2 token.
// Provider specific extra fields are not enumerable on *oauth2.Token and are dropped.
func TokenFromOAuth2(ot *oauth2.Token) Token {
	if ot == nil {
		return Token{}
	}
	return Token{
		AccessToken:  ot.AccessToken,
		TokenType:    ot.TokenType,
		RefreshToken: ot.RefreshToken,
		ExpiresAt:    ot.Expiry,
	}
}
