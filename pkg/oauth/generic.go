package oauth

import (
	"maps"
	"slices"
	"time"

	"github.com/dmitrymomot/oauthkit/pkg/httpclient"
)

// Token response encodings understood by GenericProvider.
const (
	TokenFormatAuto = "auto"
	TokenFormatJSON = "json"
	TokenFormatForm = "form"
)

// API authentication styles understood by GenericProvider.
const (
	AuthStyleBearer = "bearer"
	AuthStyleQuery  = "query"
	AuthStyleNone   = "none"
)

// ProviderDefinition describes a provider entirely by data.
type ProviderDefinition struct {
	ProviderConfig `yaml:",inline"`

	// TokenFormat is one of TokenFormatAuto (default), TokenFormatJSON or TokenFormatForm.
	TokenFormat string `yaml:"token_format"`
	// AuthStyle is one of AuthStyleBearer (default), AuthStyleQuery or AuthStyleNone.
	AuthStyle string `yaml:"auth_style"`
	// QueryParam names the query parameter used by AuthStyleQuery. Default: access_token.
	QueryParam     string            `yaml:"query_param"`
	DefaultHeaders map[string]string `yaml:"default_headers"`
	DefaultScopes  []string          `yaml:"default_scopes"`
}

// GenericProvider implements Provider from a ProviderDefinition.
type GenericProvider struct {
	def ProviderDefinition
}

// NewGenericProvider creates a provider from def.
func NewGenericProvider(def ProviderDefinition) *GenericProvider {
	def.DefaultHeaders = maps.Clone(def.DefaultHeaders)
	def.DefaultScopes = slices.Clone(def.DefaultScopes)
	return &GenericProvider{def: def}
}

// Config returns the configured endpoints.
func (p *GenericProvider) Config() ProviderConfig {
	return p.def.ProviderConfig
}

// DefaultScopes returns the scopes requested when none are configured.
func (p *GenericProvider) DefaultScopes() []string {
	return slices.Clone(p.def.DefaultScopes)
}

// AuthorizationURL builds the consent URL.
func (p *GenericProvider) AuthorizationURL(req AuthorizationRequest) string {
	return BuildAuthorizationURL(p.def.ProviderConfig, req)
}

// ParseAccessToken parses the token response in the configured format.
func (p *GenericProvider) ParseAccessToken(body []byte, now time.Time) (Token, error) {
	switch p.def.TokenFormat {
	case TokenFormatJSON:
		return ParseJSONToken(body, now)
	case TokenFormatForm:
		return ParseFormToken(body, now)
	default:
		return ParseToken(body, now)
	}
}

// DecorateClient sets the configured default headers.
func (p *GenericProvider) DecorateClient(c Client) {
	for k, v := range p.def.DefaultHeaders {
		c.SetDefaultHeader(k, v)
	}
}

// Prepare attaches the access token in the configured style.
func (p *GenericProvider) Prepare(c Client, token Token) Client {
	if token.AccessToken == "" {
		return c
	}
	switch p.def.AuthStyle {
	case AuthStyleNone:
		return c
	case AuthStyleQuery:
		param := p.def.QueryParam
		if param == "" {
			param = FieldAccessToken
		}
		return WithRequestOptions(c, httpclient.WithQuery(param, token.AccessToken))
	default:
		return WithRequestOptions(c, BearerAuth(token))
	}
}
