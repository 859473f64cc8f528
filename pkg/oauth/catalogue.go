package oauth

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Catalogue is a set of data defined providers, usually loaded from YAML:
//
//	providers:
//	  - name: gitlab
//	    auth_url: https://gitlab.com/oauth/authorize
//	    token_url: https://gitlab.com/oauth/token
//	    api_base_url: https://gitlab.com/api/v4/
//	    token_format: json
//	    default_scopes: [read_user]
type Catalogue struct {
	Providers []ProviderDefinition `yaml:"providers"`
}

// LoadCatalogue decodes and validates a YAML catalogue.
func LoadCatalogue(r io.Reader) (*Catalogue, error) {
	var c Catalogue
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return &c, nil
		}
		return nil, errors.Join(ErrInvalidCatalogue, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks required fields, enumerations and name uniqueness.
func (c *Catalogue) Validate() error {
	seen := make(map[string]struct{}, len(c.Providers))
	for i, def := range c.Providers {
		if def.Name == "" {
			return fmt.Errorf("%w: provider #%d has no name", ErrInvalidCatalogue, i)
		}
		if def.AuthURL == "" || def.TokenURL == "" {
			return fmt.Errorf("%w: provider %q needs auth_url and token_url", ErrInvalidCatalogue, def.Name)
		}
		switch def.TokenFormat {
		case "", TokenFormatAuto, TokenFormatJSON, TokenFormatForm:
		default:
			return fmt.Errorf("%w: provider %q has unknown token_format %q", ErrInvalidCatalogue, def.Name, def.TokenFormat)
		}
		switch def.AuthStyle {
		case "", AuthStyleBearer, AuthStyleQuery, AuthStyleNone:
		default:
			return fmt.Errorf("%w: provider %q has unknown auth_style %q", ErrInvalidCatalogue, def.Name, def.AuthStyle)
		}
		if _, ok := seen[def.Name]; ok {
			return fmt.Errorf("%w: provider %q defined twice", ErrInvalidCatalogue, def.Name)
		}
		seen[def.Name] = struct{}{}
	}
	return nil
}

// Register adds every catalogue provider to r.
// Stops at the first name already present in r.
func (c *Catalogue) Register(r *Registry) error {
	for _, def := range c.Providers {
		p := NewGenericProvider(def)
		if err := r.Register(def.Name, func(Config) Provider { return p }); err != nil {
			return err
		}
	}
	return nil
}
