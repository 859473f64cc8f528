package oauth

import (
	"net/url"
)

// BuildAuthorizationURL appends client_id, redirect_uri, response_type=code and the
// delimiter joined scope to the provider authorization endpoint, then merges the
// caller options over them. Query parameters already present on the endpoint are kept.
// An endpoint that does not parse is returned unchanged.
func BuildAuthorizationURL(cfg ProviderConfig, req AuthorizationRequest) string {
	u, err := url.Parse(cfg.AuthURL)
	if err != nil {
		return cfg.AuthURL
	}

	q := u.Query()
	q.Set("client_id", req.Credentials.ClientID)
	q.Set("redirect_uri", req.RedirectURI)
	q.Set("response_type", "code")
	if len(req.Scopes) > 0 {
		q.Set("scope", cfg.JoinScopes(req.Scopes))
	}
	for k, v := range req.Options {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	return u.String()
}
