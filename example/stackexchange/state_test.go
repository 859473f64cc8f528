package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStateCookie(t *testing.T) {
	t.Parallel()

	_, err := newStateCookie("short", false)
	require.ErrorIs(t, err, errShortSecret)
}

func TestStateCookie(t *testing.T) {
	t.Parallel()

	s, err := newStateCookie(testSecret, true)
	require.NoError(t, err)

	issue := func() (*http.Cookie, string) {
		rec := httptest.NewRecorder()
		state := s.issue(rec)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		require.True(t, cookies[0].Secure)
		return cookies[0], state
	}
	verify := func(c *http.Cookie, got string) (*http.Cookie, error) {
		req := httptest.NewRequest(http.MethodGet, "/callback", nil)
		if c != nil {
			req.AddCookie(c)
		}
		rec := httptest.NewRecorder()
		err := s.verify(rec, req, got)
		var cleared *http.Cookie
		if cookies := rec.Result().Cookies(); len(cookies) > 0 {
			cleared = cookies[0]
		}
		return cleared, err
	}

	t.Run("round trip clears cookie", func(t *testing.T) {
		c, state := issue()
		cleared, err := verify(c, state)
		require.NoError(t, err)
		require.NotNil(t, cleared)
		require.Equal(t, -1, cleared.MaxAge)
	})

	t.Run("mismatch", func(t *testing.T) {
		c, _ := issue()
		_, err := verify(c, "other")
		require.ErrorIs(t, err, errStateMismatch)
	})

	t.Run("empty state", func(t *testing.T) {
		c, _ := issue()
		_, err := verify(c, "")
		require.ErrorIs(t, err, errStateMismatch)
	})

	t.Run("missing cookie", func(t *testing.T) {
		_, err := verify(nil, "x")
		require.ErrorIs(t, err, errStateMissing)
	})

	t.Run("tampered cookie", func(t *testing.T) {
		c, state := issue()
		c.Value = "dGFtcGVyZWQ" + c.Value[len(c.Value)-44:]
		_, err := verify(c, state)
		require.ErrorIs(t, err, errStateBadSig)
	})

	t.Run("other secret", func(t *testing.T) {
		c, state := issue()
		other, err := newStateCookie(testSecret+"x", false)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/callback", nil)
		req.AddCookie(c)
		require.ErrorIs(t, other.verify(httptest.NewRecorder(), req, state), errStateBadSig)
	})
}
