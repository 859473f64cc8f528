package oauth_test

import (
	"context"
	"net/http"
	"net/url"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/oauthkit/pkg/httpclient"
	"github.com/dmitrymomot/oauthkit/pkg/oauth"
)

var fixedNow = time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type recordedCall struct {
	verb string
	ctx  context.Context
	path string
	opts []httpclient.RequestOption
}

// fakeClient records verb calls and returns a canned response.
type fakeClient struct {
	calls   []recordedCall
	headers map[string]string
	resp    *httpclient.Response
	err     error
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		headers: make(map[string]string),
		resp:    &httpclient.Response{Response: &http.Response{StatusCode: http.StatusOK}},
	}
}

func (f *fakeClient) record(verb string, ctx context.Context, path string, opts []httpclient.RequestOption) (*httpclient.Response, error) {
	f.calls = append(f.calls, recordedCall{verb: verb, ctx: ctx, path: path, opts: opts})
	return f.resp, f.err
}

func (f *fakeClient) Get(ctx context.Context, path string, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	return f.record("get", ctx, path, opts)
}

func (f *fakeClient) Post(ctx context.Context, path string, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	return f.record("post", ctx, path, opts)
}

func (f *fakeClient) Put(ctx context.Context, path string, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	return f.record("put", ctx, path, opts)
}

func (f *fakeClient) Patch(ctx context.Context, path string, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	return f.record("patch", ctx, path, opts)
}

func (f *fakeClient) Delete(ctx context.Context, path string, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	return f.record("delete", ctx, path, opts)
}

func (f *fakeClient) Head(ctx context.Context, path string, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	return f.record("head", ctx, path, opts)
}

func (f *fakeClient) SetDefaultHeader(key, value string) {
	f.headers[key] = value
}

// plainProvider is a provider with no Preparer and a configurable delimiter.
type plainProvider struct {
	delimiter string
	decorated int
}

func (p *plainProvider) Config() oauth.ProviderConfig {
	return oauth.ProviderConfig{
		Name:           "plain",
		AuthURL:        "https://auth.example.com/authorize",
		TokenURL:       "https://auth.example.com/token",
		APIBaseURL:     "https://api.example.com/v1/",
		ScopeDelimiter: p.delimiter,
	}
}

func (p *plainProvider) AuthorizationURL(req oauth.AuthorizationRequest) string {
	return oauth.BuildAuthorizationURL(p.Config(), req)
}

func (p *plainProvider) ParseAccessToken(body []byte, now time.Time) (oauth.Token, error) {
	return oauth.ParseToken(body, now)
}

func (p *plainProvider) DecorateClient(c oauth.Client) {
	p.decorated++
	c.SetDefaultHeader("X-Plain", "1")
}

// rewriteTransport sends every request to target, keeping path and query.
type rewriteTransport struct {
	target *url.URL
}

func newRewriteTransport(rawURL string) *rewriteTransport {
	u, err := url.Parse(rawURL)
	if err != nil {
		panic(err)
	}
	return &rewriteTransport{target: u}
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("X-Original-Host", req.URL.Host)
	r.URL.Scheme = t.target.Scheme
	r.URL.Host = t.target.Host
	r.Host = t.target.Host
	return http.DefaultTransport.RoundTrip(r)
}

// requireSameOptions asserts got holds exactly the option funcs of want, in order.
func requireSameOptions(t *testing.T, want, got []httpclient.RequestOption) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Equal(t, reflect.ValueOf(want[i]).Pointer(), reflect.ValueOf(got[i]).Pointer(), "option %d", i)
	}
}
