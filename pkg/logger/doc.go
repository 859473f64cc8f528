// Package logger builds the slog loggers used across oauthkit.
//
// Libraries in this module default to [NewNope] so they stay silent unless the
// caller passes a logger in. Programs create a JSON logger with [New], or with
// [NewWithSentry] when warnings and errors should also reach Sentry.
//
// # Context extractors
//
// A [ContextExtractor] pulls one attribute out of a context on every log call.
// [ProviderExtractor] reads the provider name stored by [WithProvider], so every
// record logged while serving a provider carries it:
//
//	log := logger.New(logger.ProviderExtractor)
//	ctx := logger.WithProvider(ctx, "stackexchange")
//	log.InfoContext(ctx, "token exchanged")
//	// {"level":"INFO","msg":"token exchanged","provider":"stackexchange"}
//
// Extractors wrap any handler through [NewContextHandler].
//
// # Sentry
//
// [NewWithSentry] fans records out to stdout and Sentry. With an empty DSN, or if
// the SDK fails to initialize, it falls back to stdout only.
package logger
