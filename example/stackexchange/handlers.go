package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/oauthkit/pkg/httpclient"
	"github.com/dmitrymomot/oauthkit/pkg/logger"
	"github.com/dmitrymomot/oauthkit/pkg/oauth"
)

type handler struct {
	cfg    oauth.StackExchangeConfig
	site   string
	states *stateCookie
	log    *slog.Logger
	// opts are applied to every service the handler creates.
	opts []oauth.Option
}

func (h *handler) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/login", h.login)
	r.Get("/callback", h.callback)
	return r
}

// newService builds a service per request; a Service is not shared between goroutines.
func (h *handler) newService() (*oauth.Service, error) {
	opts := append([]oauth.Option{oauth.WithLogger(h.log)}, h.opts...)
	return oauth.NewStackExchange(h.cfg, opts...)
}

func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	svc, err := h.newService()
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "configure provider", err)
		return
	}

	state := h.states.issue(w)
	http.Redirect(w, r, svc.AuthorizationURL(map[string]string{oauth.StateParam: state}), http.StatusFound)
}

func (h *handler) callback(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithProvider(r.Context(), oauth.StackExchangeProviderName)
	r = r.WithContext(ctx)
	q := r.URL.Query()

	if code := q.Get("error"); code != "" {
		h.fail(w, r, http.StatusBadRequest, "authorization denied",
			&oauth.TokenError{Code: code, Description: q.Get("error_description")})
		return
	}
	if err := h.states.verify(w, r, q.Get(oauth.StateParam)); err != nil {
		h.fail(w, r, http.StatusBadRequest, "verify state", err)
		return
	}

	svc, err := h.newService()
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "configure provider", err)
		return
	}

	token, err := svc.Exchange(ctx, q.Get("code"), nil)
	if err != nil {
		h.fail(w, r, http.StatusBadGateway, "exchange code", err)
		return
	}
	svc.SetToken(token)
	h.log.InfoContext(ctx, "authorized", slog.Bool("expires", token.HasExpiry()))

	resp, err := svc.Get(ctx, "me", httpclient.WithQuery("site", h.site))
	if err != nil {
		status := http.StatusBadGateway
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusUnauthorized {
			status = http.StatusUnauthorized
		}
		h.fail(w, r, status, "fetch profile", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(resp.Bytes())
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, status int, msg string, err error) {
	h.log.ErrorContext(r.Context(), msg,
		slog.Any("error", err),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	http.Error(w, msg, status)
}
