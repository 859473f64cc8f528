// Command stackexchange runs the authorization code flow against Stack Exchange
// and prints the authorized user's profile.
//
//	STACKEXCHANGE_OAUTH_CLIENT_ID=... \
//	STACKEXCHANGE_OAUTH_CLIENT_SECRET=... \
//	STACKEXCHANGE_OAUTH_REDIRECT_URL=http://localhost:8080/callback \
//	STACKEXCHANGE_KEY=... \
//	STATE_SECRET=$(openssl rand -hex 32) \
//	LOG_LEVEL=DEBUG \
//	go run ./example/stackexchange
//
// Then open http://localhost:8080/login.
package main

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/getsentry/sentry-go"

	"github.com/dmitrymomot/oauthkit/pkg/logger"
	"github.com/dmitrymomot/oauthkit/pkg/oauth"
)

type config struct {
	Address     string `env:"ADDRESS" envDefault:":8080"`
	StateSecret string `env:"STATE_SECRET,required"`
	Site        string `env:"STACKEXCHANGE_SITE" envDefault:"stackoverflow"`

	oauth.StackExchangeConfig
	logger.SentryConfig
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		slog.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.NewWithSentry(cfg.SentryConfig, logger.ProviderExtractor)

	states, err := newStateCookie(cfg.StateSecret, strings.HasPrefix(cfg.RedirectURL, "https://"))
	if err != nil {
		log.Error("invalid state secret", slog.Any("error", err))
		os.Exit(1)
	}

	// Fail fast on bad credentials; handlers build their own services.
	if _, err := oauth.NewStackExchange(cfg.StackExchangeConfig); err != nil {
		log.Error("invalid oauth configuration", slog.Any("error", err))
		os.Exit(1)
	}

	h := &handler{
		cfg:    cfg.StackExchangeConfig,
		site:   cfg.Site,
		states: states,
		log:    log,
	}

	err = run(runConfig{
		address:         cfg.Address,
		handler:         h.routes(),
		logger:          log,
		shutdownTimeout: 10 * time.Second,
		shutdownHooks: []shutdownHook{
			func() error {
				sentry.Flush(2 * time.Second)
				return nil
			},
		},
	})
	if err != nil {
		log.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
}
