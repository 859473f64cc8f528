package oauth

import (
	"context"
	"time"

	"github.com/dmitrymomot/oauthkit/pkg/httpclient"
)

// Client is the HTTP transport a Service forwards requests to.
// *httpclient.Client implements it.
type Client interface {
	Get(ctx context.Context, path string, opts ...httpclient.RequestOption) (*httpclient.Response, error)
	Post(ctx context.Context, path string, opts ...httpclient.RequestOption) (*httpclient.Response, error)
	Put(ctx context.Context, path string, opts ...httpclient.RequestOption) (*httpclient.Response, error)
	Patch(ctx context.Context, path string, opts ...httpclient.RequestOption) (*httpclient.Response, error)
	Delete(ctx context.Context, path string, opts ...httpclient.RequestOption) (*httpclient.Response, error)
	Head(ctx context.Context, path string, opts ...httpclient.RequestOption) (*httpclient.Response, error)

	// SetDefaultHeader sets a header sent with every subsequent request.
	SetDefaultHeader(key, value string)
}

var _ Client = (*httpclient.Client)(nil)

// AuthorizationRequest carries what a provider needs to build its authorization URL.
type AuthorizationRequest struct {
	Credentials Credentials
	RedirectURI string
	Scopes      []string
	// Options are extra query parameters supplied by the caller (state, prompt, ...).
	Options map[string]string
}

// Provider abstracts provider specific OAuth behavior.
// One generic Service drives any Provider.
type Provider interface {
	// Config returns the provider endpoints and scope delimiter.
	Config() ProviderConfig

	// AuthorizationURL assembles the URL the user is sent to for consent.
	AuthorizationURL(req AuthorizationRequest) string

	// ParseAccessToken decodes a token endpoint response body.
	// Lifetimes are resolved against now.
	ParseAccessToken(body []byte, now time.Time) (Token, error)

	// DecorateClient sets default request options on a client at the moment it is
	// installed on a Service. Decoration sticks for the lifetime of the client.
	DecorateClient(c Client)
}

// Preparer is implemented by providers that adjust the client per request,
// typically to attach the current access token.
type Preparer interface {
	Prepare(c Client, token Token) Client
}

// ScopeDefaulter is implemented by providers that request scopes when the caller
// configures none.
type ScopeDefaulter interface {
	DefaultScopes() []string
}
