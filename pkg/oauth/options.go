package oauth

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/oauthkit/pkg/httpclient"
)

// Option configures a Service.
type Option func(*Service)

// WithCredentials sets the client credentials.
func WithCredentials(c Credentials) Option {
	return func(s *Service) {
		s.SetCredentials(c)
	}
}

// WithScopes sets the requested scopes.
func WithScopes(scopes ...string) Option {
	return func(s *Service) {
		s.SetScopes(scopes)
	}
}

// WithRedirectURI sets the redirect URI.
func WithRedirectURI(uri string) Option {
	return func(s *Service) {
		s.SetRedirectURI(uri)
	}
}

// WithToken sets a previously obtained token.
func WithToken(t Token) Option {
	return func(s *Service) {
		s.SetToken(t)
	}
}

// WithClient installs a custom HTTP client instead of the default one.
func WithClient(c Client) Option {
	return func(s *Service) {
		s.SetClient(c)
	}
}

// WithHTTPClient installs an *httpclient.Client rooted at the provider's API base
// URL that sends requests through hc.
// This is useful for testing with httptest servers or injecting custom transports.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *Service) {
		s.SetClient(httpclient.New(
			httpclient.Config{BaseURL: s.provider.Config().APIBaseURL},
			httpclient.WithHTTPClient(hc),
		))
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock sets the time source used to resolve token lifetimes. Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}
