package oauth

import (
	"strings"

	"golang.org/x/oauth2"
)

// DefaultScopeDelimiter joins scopes when a provider does not set its own.
const DefaultScopeDelimiter = " "

// ProviderConfig holds the fixed endpoints of a provider.
type ProviderConfig struct {
	Name           string `yaml:"name"`
	AuthURL        string `yaml:"auth_url"`
	TokenURL       string `yaml:"token_url"`
	APIBaseURL     string `yaml:"api_base_url"`
	ScopeDelimiter string `yaml:"scope_delimiter"`
}

// Delimiter returns the scope delimiter, falling back to DefaultScopeDelimiter.
func (c ProviderConfig) Delimiter() string {
	if c.ScopeDelimiter == "" {
		return DefaultScopeDelimiter
	}
	return c.ScopeDelimiter
}

// JoinScopes encodes scopes the way the provider expects them on the wire.
func (c ProviderConfig) JoinScopes(scopes []string) string {
	return strings.Join(scopes, c.Delimiter())
}

// Endpoint returns the provider endpoints as an oauth2.Endpoint.
func (c ProviderConfig) Endpoint() oauth2.Endpoint {
	return oauth2.Endpoint{
		AuthURL:   c.AuthURL,
		TokenURL:  c.TokenURL,
		AuthStyle: oauth2.AuthStyleInParams,
	}
}

// Config holds the caller side settings of a provider.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
	// Key is an application key some providers require on API calls (Stack Exchange).
	Key string
}

// Credentials returns the client credentials part of the config.
func (c Config) Credentials() Credentials {
	return Credentials{ClientID: c.ClientID, ClientSecret: c.ClientSecret}
}

// StackExchangeConfig holds Stack Exchange OAuth configuration.
type StackExchangeConfig struct {
	ClientID     string   `env:"STACKEXCHANGE_OAUTH_CLIENT_ID,required"`
	ClientSecret string   `env:"STACKEXCHANGE_OAUTH_CLIENT_SECRET,required"`
	RedirectURL  string   `env:"STACKEXCHANGE_OAUTH_REDIRECT_URL" envDefault:""`
	Scopes       []string `env:"STACKEXCHANGE_OAUTH_SCOPES" envSeparator:","`
	Key          string   `env:"STACKEXCHANGE_KEY" envDefault:""`
}

// Config converts to the provider independent Config.
func (c StackExchangeConfig) Config() Config {
	return Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RedirectURL:  c.RedirectURL,
		Scopes:       c.Scopes,
		Key:          c.Key,
	}
}

// GoogleConfig holds Google OAuth configuration.
type GoogleConfig struct {
	ClientID     string   `env:"GOOGLE_OAUTH_CLIENT_ID,required"`
	ClientSecret string   `env:"GOOGLE_OAUTH_CLIENT_SECRET,required"`
	RedirectURL  string   `env:"GOOGLE_OAUTH_REDIRECT_URL" envDefault:""`
	Scopes       []string `env:"GOOGLE_OAUTH_SCOPES" envSeparator:","`
}

// Config converts to the provider independent Config.
func (c GoogleConfig) Config() Config {
	return Config{ClientID: c.ClientID, ClientSecret: c.ClientSecret, RedirectURL: c.RedirectURL, Scopes: c.Scopes}
}

// GitHubConfig holds GitHub OAuth configuration.
type GitHubConfig struct {
	ClientID     string   `env:"GITHUB_OAUTH_CLIENT_ID,required"`
	ClientSecret string   `env:"GITHUB_OAUTH_CLIENT_SECRET,required"`
	RedirectURL  string   `env:"GITHUB_OAUTH_REDIRECT_URL" envDefault:""`
	Scopes       []string `env:"GITHUB_OAUTH_SCOPES" envSeparator:","`
}

// Config converts to the provider independent Config.
func (c GitHubConfig) Config() Config {
	return Config{ClientID: c.ClientID, ClientSecret: c.ClientSecret, RedirectURL: c.RedirectURL, Scopes: c.Scopes}
}
