package oauth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/oauthkit/pkg/oauth"
)

func TestParseFormToken(t *testing.T) {
	t.Parallel()

	t.Run("expires becomes absolute expiry", func(t *testing.T) {
		t.Parallel()
		tok, err := oauth.ParseFormToken([]byte("access_token=abc123&expires=3600"), fixedNow)
		require.NoError(t, err)
		require.Equal(t, "abc123", tok.AccessToken)
		require.True(t, tok.HasExpiry())
		require.Equal(t, fixedNow.Add(3600*time.Second), tok.ExpiresAt)
		require.NotContains(t, tok.Extra, "expires")
		require.Equal(t, "abc123", tok.Get("access_token"))
	})

	t.Run("expiry resolved at parse time", func(t *testing.T) {
		t.Parallel()
		before := time.Now()
		tok, err := oauth.ParseFormToken([]byte("access_token=abc123&expires=3600"), time.Now())
		require.NoError(t, err)
		require.WithinDuration(t, before.Add(time.Hour), tok.ExpiresAt, 2*time.Second)
	})

	t.Run("no expires leaves no expiry", func(t *testing.T) {
		t.Parallel()
		tok, err := oauth.ParseFormToken([]byte("access_token=abc123&scope=read_inbox&site=so"), fixedNow)
		require.NoError(t, err)
		require.False(t, tok.HasExpiry())
		require.True(t, tok.ExpiresAt.IsZero())
		require.Equal(t, map[string]string{
			"access_token": "abc123",
			"scope":        "read_inbox",
			"site":         "so",
		}, tok.Extra)
	})

	t.Run("non numeric expires passes through", func(t *testing.T) {
		t.Parallel()
		tok, err := oauth.ParseFormToken([]byte("access_token=abc&expires=never"), fixedNow)
		require.NoError(t, err)
		require.False(t, tok.HasExpiry())
		require.Equal(t, "never", tok.Get("expires"))
	})

	t.Run("expires_in is understood", func(t *testing.T) {
		t.Parallel()
		tok, err := oauth.ParseFormToken([]byte("access_token=abc&expires_in=60&token_type=bearer&refresh_token=r"), fixedNow)
		require.NoError(t, err)
		require.Equal(t, fixedNow.Add(time.Minute), tok.ExpiresAt)
		require.Equal(t, "bearer", tok.TokenType)
		require.Equal(t, "r", tok.RefreshToken)
	})

	t.Run("missing access token", func(t *testing.T) {
		t.Parallel()
		_, err := oauth.ParseFormToken([]byte("expires=3600"), fixedNow)
		require.ErrorIs(t, err, oauth.ErrMissingAccessToken)
	})

	t.Run("oauth error in body", func(t *testing.T) {
		t.Parallel()
		_, err := oauth.ParseFormToken([]byte("error=bad_verification_code&error_description=expired"), fixedNow)
		require.ErrorIs(t, err, oauth.ErrTokenResponse)

		var tokErr *oauth.TokenError
		require.ErrorAs(t, err, &tokErr)
		require.Equal(t, "bad_verification_code", tokErr.Code)
		require.Equal(t, "expired", tokErr.Description)
	})

	t.Run("undecodable body", func(t *testing.T) {
		t.Parallel()
		_, err := oauth.ParseFormToken([]byte("access_token=%zz&%yy=1"), fixedNow)
		require.ErrorIs(t, err, oauth.ErrDecodeFailed)
	})

	t.Run("malformed pairs are skipped", func(t *testing.T) {
		t.Parallel()
		tok, err := oauth.ParseFormToken([]byte("access_token=abc123&expires=3600&note=50%"), fixedNow)
		require.NoError(t, err)
		require.Equal(t, "abc123", tok.AccessToken)
		require.Equal(t, fixedNow.Add(time.Hour), tok.ExpiresAt)
		require.NotContains(t, tok.Extra, "note")
	})

	t.Run("repeated key keeps last value", func(t *testing.T) {
		t.Parallel()
		tok, err := oauth.ParseFormToken([]byte("access_token=first&scope=a&access_token=second"), fixedNow)
		require.NoError(t, err)
		require.Equal(t, "second", tok.AccessToken)
		require.Equal(t, "second", tok.Get("access_token"))
	})
}

func TestParseJSONToken(t *testing.T) {
	t.Parallel()

	t.Run("standard response", func(t *testing.T) {
		t.Parallel()
		body := `{"access_token":"ya29","token_type":"Bearer","expires_in":3599,"refresh_token":"1//r","scope":"email","id_token":"jwt"}`
		tok, err := oauth.ParseJSONToken([]byte(body), fixedNow)
		require.NoError(t, err)
		require.Equal(t, "ya29", tok.AccessToken)
		require.Equal(t, "Bearer", tok.TokenType)
		require.Equal(t, "1//r", tok.RefreshToken)
		require.Equal(t, fixedNow.Add(3599*time.Second), tok.ExpiresAt)
		require.Equal(t, "jwt", tok.Get("id_token"))
		require.NotContains(t, tok.Extra, "expires_in")
	})

	t.Run("numeric string lifetime", func(t *testing.T) {
		t.Parallel()
		tok, err := oauth.ParseJSONToken([]byte(`{"access_token":"a","expires_in":"120"}`), fixedNow)
		require.NoError(t, err)
		require.Equal(t, fixedNow.Add(2*time.Minute), tok.ExpiresAt)
	})

	t.Run("non string values kept as json", func(t *testing.T) {
		t.Parallel()
		tok, err := oauth.ParseJSONToken([]byte(`{"access_token":"a","admin":true,"ids":[1,2],"none":null}`), fixedNow)
		require.NoError(t, err)
		require.Equal(t, "true", tok.Get("admin"))
		require.Equal(t, "[1,2]", tok.Get("ids"))
		require.NotContains(t, tok.Extra, "none")
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()
		_, err := oauth.ParseJSONToken([]byte(`{"error":"invalid_grant"}`), fixedNow)
		require.ErrorIs(t, err, oauth.ErrTokenResponse)
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()
		_, err := oauth.ParseJSONToken([]byte(`{"access_token":`), fixedNow)
		require.ErrorIs(t, err, oauth.ErrDecodeFailed)
	})
}

func TestParseToken(t *testing.T) {
	t.Parallel()

	tok, err := oauth.ParseToken([]byte("  {\"access_token\":\"json\"}"), fixedNow)
	require.NoError(t, err)
	require.Equal(t, "json", tok.AccessToken)

	tok, err = oauth.ParseToken([]byte("access_token=form&token_type=bearer"), fixedNow)
	require.NoError(t, err)
	require.Equal(t, "form", tok.AccessToken)
}
