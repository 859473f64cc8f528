package oauth

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/dmitrymomot/oauthkit/pkg/httpclient"
	"github.com/dmitrymomot/oauthkit/pkg/logger"
)

// Exchange trades an authorization code for a token.
//
// The code is posted with the client credentials and redirect URI to the provider's
// token endpoint through the installed client; options are added to the form.
// The provider parses the response. Client errors are returned unchanged.
// The token is returned, not stored: call SetToken to keep it.
func (s *Service) Exchange(ctx context.Context, code string, options map[string]string) (Token, error) {
	form := url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"redirect_uri":  {s.redirectURI},
		"client_id":     {s.credentials.ClientID},
		"client_secret": {s.credentials.ClientSecret},
	}
	return s.requestToken(ctx, "exchange", form, options)
}

// Refresh obtains a new token with the refresh token of the stored token.
// If the provider does not rotate refresh tokens the current one is carried over.
// The token is returned, not stored: call SetToken to keep it.
func (s *Service) Refresh(ctx context.Context, options map[string]string) (Token, error) {
	current := s.token.RefreshToken
	if current == "" {
		return Token{}, ErrMissingRefreshToken
	}

	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {current},
		"client_id":     {s.credentials.ClientID},
		"client_secret": {s.credentials.ClientSecret},
	}
	tok, err := s.requestToken(ctx, "refresh", form, options)
	if err != nil {
		return tok, err
	}
	if tok.RefreshToken == "" {
		tok.RefreshToken = current
	}
	return tok, nil
}

func (s *Service) requestToken(ctx context.Context, grant string, form url.Values, options map[string]string) (Token, error) {
	if s.client == nil {
		return Token{}, ErrMissingClient
	}
	for k, v := range options {
		form.Set(k, v)
	}

	cfg := s.provider.Config()
	logCtx := logger.WithProvider(ctx, cfg.Name)

	resp, err := s.client.Post(ctx, cfg.TokenURL, httpclient.WithForm(form))
	if err != nil {
		s.logger.DebugContext(logCtx, "oauth: token request failed", slog.String("grant", grant))
		return Token{}, err
	}

	tok, err := s.provider.ParseAccessToken(resp.Bytes(), s.now())
	if err != nil {
		return tok, err
	}

	s.logger.DebugContext(logCtx, "oauth: token issued",
		slog.String("grant", grant),
		slog.Bool("expires", tok.HasExpiry()),
	)
	return tok, nil
}
