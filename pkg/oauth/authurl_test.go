package oauth_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/oauthkit/pkg/oauth"
)

func parseURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestService_AuthorizationURL(t *testing.T) {
	t.Parallel()

	creds := oauth.Credentials{ClientID: "client-1", ClientSecret: "secret"}

	t.Run("default delimiter joins with space", func(t *testing.T) {
		t.Parallel()
		s := oauth.New(&plainProvider{}).
			SetCredentials(creds).
			SetScopes([]string{"read", "write"}).
			SetRedirectURI("https://app.example.com/callback")

		u := parseURL(t, s.AuthorizationURL(nil))
		require.Equal(t, "auth.example.com", u.Host)
		require.Equal(t, "/authorize", u.Path)

		q := u.Query()
		require.Equal(t, "read write", q.Get("scope"))
		require.Equal(t, "client-1", q.Get("client_id"))
		require.Equal(t, "https://app.example.com/callback", q.Get("redirect_uri"))
		require.Equal(t, "code", q.Get("response_type"))
		require.NotContains(t, q, "client_secret")
	})

	t.Run("provider delimiter", func(t *testing.T) {
		t.Parallel()
		s := oauth.New(&plainProvider{delimiter: ","}).
			SetCredentials(creds).
			SetScopes([]string{"read", "write"})

		q := parseURL(t, s.AuthorizationURL(nil)).Query()
		require.Equal(t, "read,write", q.Get("scope"))
	})

	t.Run("scope order is kept", func(t *testing.T) {
		t.Parallel()
		s := oauth.New(&plainProvider{}).SetScopes([]string{"write", "read", "admin"})

		q := parseURL(t, s.AuthorizationURL(nil)).Query()
		require.Equal(t, "write read admin", q.Get("scope"))
	})

	t.Run("no scopes omits parameter", func(t *testing.T) {
		t.Parallel()
		s := oauth.New(&plainProvider{}).SetCredentials(creds)

		q := parseURL(t, s.AuthorizationURL(nil)).Query()
		require.NotContains(t, q, "scope")
	})

	t.Run("caller options are merged and win", func(t *testing.T) {
		t.Parallel()
		s := oauth.New(&plainProvider{}).SetCredentials(creds)

		q := parseURL(t, s.AuthorizationURL(map[string]string{
			oauth.StateParam: "xyz",
			"response_type":  "token",
		})).Query()
		require.Equal(t, "xyz", q.Get("state"))
		require.Equal(t, "token", q.Get("response_type"))
	})

	t.Run("unconfigured service does not fail", func(t *testing.T) {
		t.Parallel()
		s := oauth.New(&plainProvider{})

		q := parseURL(t, s.AuthorizationURL(nil)).Query()
		require.Empty(t, q.Get("client_id"))
		require.Empty(t, q.Get("redirect_uri"))
	})
}

func TestBuildAuthorizationURL(t *testing.T) {
	t.Parallel()

	t.Run("keeps endpoint query", func(t *testing.T) {
		t.Parallel()
		cfg := oauth.ProviderConfig{AuthURL: "https://auth.example.com/authorize?tenant=acme"}

		q := parseURL(t, oauth.BuildAuthorizationURL(cfg, oauth.AuthorizationRequest{})).Query()
		require.Equal(t, "acme", q.Get("tenant"))
		require.Equal(t, "code", q.Get("response_type"))
	})

	t.Run("unparsable endpoint returned bare", func(t *testing.T) {
		t.Parallel()
		cfg := oauth.ProviderConfig{AuthURL: "://bad"}
		require.Equal(t, "://bad", oauth.BuildAuthorizationURL(cfg, oauth.AuthorizationRequest{Scopes: []string{"a"}}))
	})
}

func TestProviderConfig(t *testing.T) {
	t.Parallel()

	cfg := oauth.ProviderConfig{AuthURL: "https://a", TokenURL: "https://t"}
	require.Equal(t, " ", cfg.Delimiter())
	require.Equal(t, "a b", cfg.JoinScopes([]string{"a", "b"}))

	cfg.ScopeDelimiter = ","
	require.Equal(t, "a,b", cfg.JoinScopes([]string{"a", "b"}))

	ep := cfg.Endpoint()
	require.Equal(t, "https://a", ep.AuthURL)
	require.Equal(t, "https://t", ep.TokenURL)
}
