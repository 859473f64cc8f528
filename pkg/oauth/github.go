package oauth

import (
	"time"

	githubOAuth "golang.org/x/oauth2/github"
)

const (
	// GitHubProviderName is the identifier for GitHub OAuth provider.
	GitHubProviderName = "github"
	githubAPIBaseURL   = "https://api.github.com/"
	githubAPIVersion   = "2022-11-28"
)

// GitHubDefaultScopes returns the default scopes for GitHub OAuth.
func GitHubDefaultScopes() []string {
	return []string{"read:user", "user:email"}
}

// GitHubProvider implements Provider for GitHub OAuth.
type GitHubProvider struct{}

// NewGitHubProvider creates the GitHub provider.
func NewGitHubProvider() *GitHubProvider {
	return &GitHubProvider{}
}

// NewGitHub creates a Service for GitHub from cfg.
// Returns an error if ClientID or ClientSecret is empty.
func NewGitHub(cfg GitHubConfig, opts ...Option) (*Service, error) {
	return newConfiguredService(NewGitHubProvider(), cfg.Config(), opts)
}

// Config returns the GitHub endpoints.
func (p *GitHubProvider) Config() ProviderConfig {
	return ProviderConfig{
		Name:       GitHubProviderName,
		AuthURL:    githubOAuth.Endpoint.AuthURL,
		TokenURL:   githubOAuth.Endpoint.TokenURL,
		APIBaseURL: githubAPIBaseURL,
	}
}

// DefaultScopes returns GitHubDefaultScopes.
func (p *GitHubProvider) DefaultScopes() []string {
	return GitHubDefaultScopes()
}

// AuthorizationURL builds the consent URL.
func (p *GitHubProvider) AuthorizationURL(req AuthorizationRequest) string {
	return BuildAuthorizationURL(p.Config(), req)
}

// ParseAccessToken parses the token response. GitHub answers with form data
// unless JSON is requested, so both encodings are accepted.
func (p *GitHubProvider) ParseAccessToken(body []byte, now time.Time) (Token, error) {
	return ParseToken(body, now)
}

// DecorateClient pins the REST API media type and version.
func (p *GitHubProvider) DecorateClient(c Client) {
	c.SetDefaultHeader("Accept", "application/vnd.github+json")
	c.SetDefaultHeader("X-GitHub-Api-Version", githubAPIVersion)
}

// Prepare sends the access token as a bearer token.
func (p *GitHubProvider) Prepare(c Client, token Token) Client {
	if token.AccessToken == "" {
		return c
	}
	return WithRequestOptions(c, BearerAuth(token))
}
