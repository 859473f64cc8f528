package oauth

import (
	"context"

	"github.com/dmitrymomot/oauthkit/pkg/httpclient"
)

// Prepare returns the client that will issue the next API request.
// Without a Preparer provider this is the installed client, unmodified.
func (s *Service) Prepare() Client {
	if s.client == nil {
		return nil
	}
	if p, ok := s.provider.(Preparer); ok {
		return p.Prepare(s.client, s.Token())
	}
	return s.client
}

// WithRequestOptions wraps c so that opts are appended to the options of every
// verb call. The wrapped client is left untouched.
func WithRequestOptions(c Client, opts ...httpclient.RequestOption) Client {
	if len(opts) == 0 {
		return c
	}
	return &optionsClient{Client: c, opts: opts}
}

// BearerAuth returns a request option sending the token in the Authorization header.
// The scheme follows the token type, defaulting to Bearer.
func BearerAuth(t Token) httpclient.RequestOption {
	ot := t.OAuth2()
	return httpclient.WithHeader("Authorization", ot.Type()+" "+ot.AccessToken)
}

type optionsClient struct {
	Client
	opts []httpclient.RequestOption
}

func (c *optionsClient) with(opts []httpclient.RequestOption) []httpclient.RequestOption {
	out := make([]httpclient.RequestOption, 0, len(opts)+len(c.opts))
	out = append(out, opts...)
	return append(out, c.opts...)
}

func (c *optionsClient) Get(ctx context.Context, path string, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	return c.Client.Get(ctx, path, c.with(opts)...)
}

func (c *optionsClient) Post(ctx context.Context, path string, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	return c.Client.Post(ctx, path, c.with(opts)...)
}

func (c *optionsClient) Put(ctx context.Context, path string, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	return c.Client.Put(ctx, path, c.with(opts)...)
}

func (c *optionsClient) Patch(ctx context.Context, path string, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	return c.Client.Patch(ctx, path, c.with(opts)...)
}

func (c *optionsClient) Delete(ctx context.Context, path string, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	return c.Client.Delete(ctx, path, c.with(opts)...)
}

func (c *optionsClient) Head(ctx context.Context, path string, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	return c.Client.Head(ctx, path, c.with(opts)...)
}
