package main

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrymomot/oauthkit/pkg/oauth"
)

const (
	stateCookieName   = "oauth_state"
	stateCookieMaxAge = 600
)

var (
	errShortSecret   = errors.New("state secret must be 32+ bytes")
	errStateMissing  = errors.New("state cookie missing")
	errStateBadSig   = errors.New("state cookie signature invalid")
	errStateMismatch = errors.New("state mismatch")
)

// stateCookie keeps the CSRF state of an in-flight authorization in a signed,
// short lived cookie.
type stateCookie struct {
	secret []byte
	secure bool
}

func newStateCookie(secret string, secure bool) (*stateCookie, error) {
	if len(secret) < 32 {
		return nil, errShortSecret
	}
	return &stateCookie{secret: []byte(secret), secure: secure}, nil
}

// issue generates a new state, stores it and returns it.
func (s *stateCookie) issue(w http.ResponseWriter) string {
	state := oauth.NewState()
	value := base64.RawURLEncoding.EncodeToString([]byte(state)) +
		"." + base64.RawURLEncoding.EncodeToString(s.sign(state))
	http.SetCookie(w, s.cookie(value, stateCookieMaxAge))
	return state
}

// verify checks got against the stored state and clears the cookie.
func (s *stateCookie) verify(w http.ResponseWriter, r *http.Request, got string) error {
	c, err := r.Cookie(stateCookieName)
	if err != nil {
		return errStateMissing
	}
	http.SetCookie(w, s.cookie("", -1))

	// Format: base64(state).base64(signature)
	encoded, encodedSig, ok := strings.Cut(c.Value, ".")
	if !ok {
		return errStateBadSig
	}
	state, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return errStateBadSig
	}
	sig, err := base64.RawURLEncoding.DecodeString(encodedSig)
	if err != nil {
		return errStateBadSig
	}
	if !hmac.Equal(sig, s.sign(string(state))) {
		return errStateBadSig
	}

	if got == "" || subtle.ConstantTimeCompare(state, []byte(got)) != 1 {
		return errStateMismatch
	}
	return nil
}

func (s *stateCookie) sign(value string) []byte {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(value))
	return mac.Sum(nil)
}

func (s *stateCookie) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     stateCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   s.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
