// Package oauth implements the client side of the OAuth2 authorization code grant
// behind one provider independent Service.
//
// A [Service] holds the client credentials, requested scopes, redirect URI and the
// current token, builds authorization URLs, exchanges codes for tokens and forwards
// authenticated API calls to an HTTP client. Everything provider specific lives
// behind the [Provider] interface: endpoints, scope delimiter, token response
// parsing, and default request decoration.
//
// # Features
//
//   - Generic Service driven by a Provider capability interface
//   - Stack Exchange, GitHub and Google providers
//   - Data defined providers loaded from a YAML catalogue
//   - Registry of providers by name
//   - Form and JSON token response parsers with lifetime to expiry conversion
//   - Closed verb dispatch (get, post, put, patch, delete, head)
//   - Sentinel errors with "oauth:" prefix for consistent error handling
//
// # Usage
//
//	svc, err := oauth.NewStackExchange(oauth.StackExchangeConfig{
//		ClientID:     os.Getenv("STACKEXCHANGE_OAUTH_CLIENT_ID"),
//		ClientSecret: os.Getenv("STACKEXCHANGE_OAUTH_CLIENT_SECRET"),
//		RedirectURL:  "https://example.com/auth/stackexchange/callback",
//		Scopes:       []string{"read_inbox", "no_expiry"},
//		Key:          os.Getenv("STACKEXCHANGE_KEY"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Send the user to the provider
//	state := oauth.NewState()
//	url := svc.AuthorizationURL(map[string]string{oauth.StateParam: state})
//
//	// In the callback handler, after checking state
//	token, err := svc.Exchange(ctx, code, nil)
//	if err != nil {
//		// handle error
//	}
//	svc.SetToken(token)
//
//	// Authenticated API calls
//	resp, err := svc.Get(ctx, "me", httpclient.WithQuery("site", "stackoverflow"))
//
// Setters return the Service, so configuration can be chained:
//
//	svc := oauth.New(oauth.NewGitHubProvider()).
//		SetCredentials(oauth.Credentials{ClientID: id, ClientSecret: secret}).
//		SetScopes([]string{"repo"}).
//		SetRedirectURI(callback)
//
// # Custom Providers
//
// Implement [Provider] (and optionally [Preparer] to attach credentials per request)
// or describe the provider as data with [ProviderDefinition]:
//
//	cat, err := oauth.LoadCatalogue(file)
//	if err != nil {
//		log.Fatal(err)
//	}
//	reg := oauth.DefaultRegistry()
//	if err := cat.Register(reg); err != nil {
//		log.Fatal(err)
//	}
//	svc, err := reg.NewService("gitlab", oauth.Config{ClientID: id, ClientSecret: secret})
//
// # Testing
//
// Use WithHTTPClient to route requests to a test server:
//
//	svc := oauth.New(provider, oauth.WithHTTPClient(ts.Client()))
//
// # Error Handling
//
//   - ErrUnsupportedOperation: Dispatch called with a name outside the verb set
//   - ErrDecodeFailed: token response could not be decoded
//   - ErrMissingAccessToken: token response decoded but carried no access token
//   - ErrTokenResponse: token endpoint reported an OAuth error in the body
//   - ErrMissingRefreshToken: Refresh called without a stored refresh token
//   - ErrMissingClientID, ErrMissingClientSecret: constructor called without credentials
//
// Errors from the HTTP client (transport failures, *httpclient.StatusError) are
// returned unchanged. Nothing is retried.
//
// # Concurrency
//
// A Service has no internal locking and must not be mutated while in use from
// another goroutine. Tokens are not refreshed automatically: call Refresh and
// SetToken when needed.
package oauth
