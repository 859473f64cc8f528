package oauth

import (
	"time"

	googleOAuth "golang.org/x/oauth2/google"
)

const (
	// GoogleProviderName is the identifier for Google OAuth provider.
	GoogleProviderName = "google"
	googleAPIBaseURL   = "https://www.googleapis.com/"
)

// GoogleDefaultScopes returns the default scopes for Google OAuth.
func GoogleDefaultScopes() []string {
	return []string{
		"https://www.googleapis.com/auth/userinfo.email",
		"https://www.googleapis.com/auth/userinfo.profile",
	}
}

// GoogleProvider implements Provider for Google OAuth.
type GoogleProvider struct{}

// NewGoogleProvider creates the Google provider.
func NewGoogleProvider() *GoogleProvider {
	return &GoogleProvider{}
}

// NewGoogle creates a Service for Google from cfg.
// Returns an error if ClientID or ClientSecret is empty.
func NewGoogle(cfg GoogleConfig, opts ...Option) (*Service, error) {
	return newConfiguredService(NewGoogleProvider(), cfg.Config(), opts)
}

// Config returns the Google endpoints.
func (p *GoogleProvider) Config() ProviderConfig {
	return ProviderConfig{
		Name:       GoogleProviderName,
		AuthURL:    googleOAuth.Endpoint.AuthURL,
		TokenURL:   googleOAuth.Endpoint.TokenURL,
		APIBaseURL: googleAPIBaseURL,
	}
}

// DefaultScopes returns GoogleDefaultScopes.
func (p *GoogleProvider) DefaultScopes() []string {
	return GoogleDefaultScopes()
}

// AuthorizationURL builds the consent URL. Google specific parameters such as
// access_type=offline or prompt=consent are passed as options.
func (p *GoogleProvider) AuthorizationURL(req AuthorizationRequest) string {
	return BuildAuthorizationURL(p.Config(), req)
}

// ParseAccessToken parses the JSON token response.
func (p *GoogleProvider) ParseAccessToken(body []byte, now time.Time) (Token, error) {
	return ParseJSONToken(body, now)
}

// DecorateClient asks for JSON responses.
func (p *GoogleProvider) DecorateClient(c Client) {
	c.SetDefaultHeader("Accept", "application/json")
}

// Prepare sends the access token as a bearer token.
func (p *GoogleProvider) Prepare(c Client, token Token) Client {
	if token.AccessToken == "" {
		return c
	}
	return WithRequestOptions(c, BearerAuth(token))
}
