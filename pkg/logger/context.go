package logger

import (
	"context"
	"log/slog"
)

type providerKey struct{}

// WithProvider stores the OAuth provider name in ctx for ProviderExtractor.
func WithProvider(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, providerKey{}, name)
}

// ProviderFromContext returns the provider name stored by WithProvider.
func ProviderFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(providerKey{}).(string)
	return name, ok && name != ""
}

// ProviderExtractor adds a "provider" attribute when ctx carries a provider name.
func ProviderExtractor(ctx context.Context) (slog.Attr, bool) {
	name, ok := ProviderFromContext(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return slog.String("provider", name), true
}
