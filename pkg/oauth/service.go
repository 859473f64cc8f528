package oauth

import (
	"log/slog"
	"slices"
	"time"

	"github.com/dmitrymomot/oauthkit/pkg/httpclient"
	"github.com/dmitrymomot/oauthkit/pkg/logger"
)

// defaultTimeout bounds requests issued by the client a Service installs itself.
const defaultTimeout = 30 * time.Second

// Service drives the authorization code flow for one provider.
//
// A Service owns its credentials, scopes, redirect URI and token; the HTTP client
// is shared by reference and may be swapped at any time. A Service is meant to
// be configured and used by a single goroutine at a time.
type Service struct {
	provider    Provider
	client      Client
	logger      *slog.Logger
	now         func() time.Time
	credentials Credentials
	redirectURI string
	scopes      []string
	token       Token
}

// New creates a Service for the given provider.
// Unless WithClient or WithHTTPClient is passed, an *httpclient.Client rooted at the
// provider's API base URL is installed through SetClient, so provider decoration applies.
func New(p Provider, opts ...Option) *Service {
	s := &Service{
		provider: p,
		logger:   logger.NewNope(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.SetClient(httpclient.New(httpclient.Config{
			BaseURL: p.Config().APIBaseURL,
			Timeout: defaultTimeout,
		}))
	}
	return s
}

// Provider returns the provider the service was created for.
func (s *Service) Provider() Provider {
	return s.provider
}

// SetCredentials replaces the client credentials.
func (s *Service) SetCredentials(c Credentials) *Service {
	s.credentials = c
	return s
}

// Credentials returns the client credentials.
func (s *Service) Credentials() Credentials {
	return s.credentials
}

// SetScopes replaces the requested scopes. The slice is copied.
func (s *Service) SetScopes(scopes []string) *Service {
	s.scopes = slices.Clone(scopes)
	return s
}

// Scopes returns a copy of the requested scopes in the order they were set.
func (s *Service) Scopes() []string {
	return slices.Clone(s.scopes)
}

// SetRedirectURI replaces the redirect URI sent to the provider.
func (s *Service) SetRedirectURI(uri string) *Service {
	s.redirectURI = uri
	return s
}

// RedirectURI returns the redirect URI.
func (s *Service) RedirectURI() string {
	return s.redirectURI
}

// SetToken replaces the stored token. The token is copied.
func (s *Service) SetToken(t Token) *Service {
	s.token = t.Clone()
	return s
}

// Token returns a copy of the stored token.
func (s *Service) Token() Token {
	return s.token.Clone()
}

// SetClient installs the HTTP client and lets the provider decorate it.
func (s *Service) SetClient(c Client) *Service {
	s.client = c
	if c != nil {
		s.provider.DecorateClient(c)
	}
	return s
}

// Client returns the installed HTTP client.
func (s *Service) Client() Client {
	return s.client
}

// AuthorizationURL returns the URL the user must visit to grant access.
// options are merged into the query string (state, prompt, ...).
// Missing credentials or redirect URI yield empty parameters, not an error.
func (s *Service) AuthorizationURL(options map[string]string) string {
	return s.provider.AuthorizationURL(AuthorizationRequest{
		Credentials: s.credentials,
		RedirectURI: s.redirectURI,
		Scopes:      s.Scopes(),
		Options:     options,
	})
}

// Stage reports how far the service has progressed through the flow,
// judged by which fields are populated.
func (s *Service) Stage() Stage {
	switch {
	case s.token.Valid(s.now()):
		return StageAuthorized
	case s.credentials.Validate() == nil && s.redirectURI != "":
		return StageConfigured
	default:
		return StageUnconfigured
	}
}
