package oauth

import (
	"time"

	"github.com/dmitrymomot/oauthkit/pkg/httpclient"
)

const (
	// StackExchangeProviderName is the identifier for the Stack Exchange provider.
	StackExchangeProviderName = "stackexchange"
	stackExchangeAuthURL      = "https://stackexchange.com/oauth"
	stackExchangeTokenURL     = "https://stackexchange.com/oauth/access_token"
	stackExchangeAPIBaseURL   = "https://api.stackexchange.com/2.3/"
)

// StackExchangeProvider implements Provider for the Stack Exchange API.
//
// Scopes are comma separated, the token endpoint answers with form data carrying
// an "expires" lifetime, API responses are always gzip compressed, and API calls
// authenticate with access_token and key query parameters.
type StackExchangeProvider struct {
	key string
}

// NewStackExchangeProvider creates the provider. key is the application key
// registered on stackapps.com; it may be empty, at the cost of a lower quota.
func NewStackExchangeProvider(key string) *StackExchangeProvider {
	return &StackExchangeProvider{key: key}
}

// NewStackExchange creates a Service for Stack Exchange from cfg.
// Returns an error if ClientID or ClientSecret is empty.
func NewStackExchange(cfg StackExchangeConfig, opts ...Option) (*Service, error) {
	return newConfiguredService(NewStackExchangeProvider(cfg.Key), cfg.Config(), opts)
}

// Config returns the Stack Exchange endpoints.
func (p *StackExchangeProvider) Config() ProviderConfig {
	return ProviderConfig{
		Name:           StackExchangeProviderName,
		AuthURL:        stackExchangeAuthURL,
		TokenURL:       stackExchangeTokenURL,
		APIBaseURL:     stackExchangeAPIBaseURL,
		ScopeDelimiter: ",",
	}
}

// AuthorizationURL builds the consent URL.
func (p *StackExchangeProvider) AuthorizationURL(req AuthorizationRequest) string {
	return BuildAuthorizationURL(p.Config(), req)
}

// ParseAccessToken parses the form encoded token response.
func (p *StackExchangeProvider) ParseAccessToken(body []byte, now time.Time) (Token, error) {
	return ParseFormToken(body, now)
}

// DecorateClient asks for gzip encoded responses on every request.
func (p *StackExchangeProvider) DecorateClient(c Client) {
	c.SetDefaultHeader("Accept-Encoding", "gzip")
}

// Prepare attaches the access token and application key as query parameters.
func (p *StackExchangeProvider) Prepare(c Client, token Token) Client {
	var opts []httpclient.RequestOption
	if token.AccessToken != "" {
		opts = append(opts, httpclient.WithQuery(FieldAccessToken, token.AccessToken))
	}
	if p.key != "" {
		opts = append(opts, httpclient.WithQuery("key", p.key))
	}
	return WithRequestOptions(c, opts...)
}
