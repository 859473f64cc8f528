package oauth

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Factory creates a provider from caller settings.
type Factory func(cfg Config) Provider

// Registry maps provider names to factories.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry creates a registry holding the built-in providers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register(StackExchangeProviderName, func(cfg Config) Provider {
		return NewStackExchangeProvider(cfg.Key)
	})
	_ = r.Register(GitHubProviderName, func(Config) Provider {
		return NewGitHubProvider()
	})
	_ = r.Register(GoogleProviderName, func(Config) Provider {
		return NewGoogleProvider()
	})
	return r
}

// Register adds a factory under name.
// Returns ErrProviderExists if the name is taken.
func (r *Registry) Register(name string, f Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("%w: %s", ErrProviderExists, name)
	}
	r.factories[name] = f
	return nil
}

// Lookup returns the factory registered under name.
func (r *Registry) Lookup(name string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, name)
	}
	return f, nil
}

// Names returns the registered provider names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.factories))
}

// NewService creates a configured Service for the provider registered under name.
// Returns an error if the name is unknown or ClientID or ClientSecret is empty.
func (r *Registry) NewService(name string, cfg Config, opts ...Option) (*Service, error) {
	f, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return newConfiguredService(f(cfg), cfg, opts)
}

// newConfiguredService validates cfg and builds a Service from it.
// Provider default scopes apply when cfg has none. opts run after cfg is applied.
func newConfiguredService(p Provider, cfg Config, opts []Option) (*Service, error) {
	creds := cfg.Credentials()
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		if d, ok := p.(ScopeDefaulter); ok {
			scopes = d.DefaultScopes()
		}
	}

	base := []Option{
		WithCredentials(creds),
		WithRedirectURI(cfg.RedirectURL),
		WithScopes(scopes...),
	}
	return New(p, append(base, opts...)...), nil
}
