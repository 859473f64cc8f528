package oauth

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingClientID is returned when the OAuth client ID is not provided.
	ErrMissingClientID = errors.New("oauth: missing client ID")

	// ErrMissingClientSecret is returned when the OAuth client secret is not provided.
	ErrMissingClientSecret = errors.New("oauth: missing client secret")

	// ErrUnsupportedOperation is matched by every *UnsupportedOperationError.
	ErrUnsupportedOperation = errors.New("oauth: unsupported operation")

	// ErrMissingClient is returned when a request is attempted without an HTTP client installed.
	ErrMissingClient = errors.New("oauth: missing http client")

	// ErrDecodeFailed is returned when a token response cannot be decoded.
	ErrDecodeFailed = errors.New("oauth: failed to decode response")

	// ErrMissingAccessToken is returned when a decoded token response has no access token.
	ErrMissingAccessToken = errors.New("oauth: response has no access token")

	// ErrTokenResponse is matched by every *TokenError.
	ErrTokenResponse = errors.New("oauth: token endpoint returned an error")

	// ErrMissingRefreshToken is returned by Refresh when the stored token has no refresh token.
	ErrMissingRefreshToken = errors.New("oauth: missing refresh token")

	// ErrUnknownProvider is returned when a provider name is not registered.
	ErrUnknownProvider = errors.New("oauth: unknown provider")

	// ErrProviderExists is returned when registering a provider name twice.
	ErrProviderExists = errors.New("oauth: provider already registered")

	// ErrInvalidCatalogue is returned when a provider catalogue cannot be loaded.
	ErrInvalidCatalogue = errors.New("oauth: invalid provider catalogue")
)

// UnsupportedOperationError is returned when a call names something other than
// one of the supported HTTP verbs.
type UnsupportedOperationError struct {
	Name string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("oauth: method [%s] does not exist", e.Name)
}

// Is makes errors.Is(err, ErrUnsupportedOperation) succeed.
func (e *UnsupportedOperationError) Is(target error) bool {
	return target == ErrUnsupportedOperation
}

// TokenError is an error reported in the body of a token response (RFC 6749 section 5.2).
type TokenError struct {
	Code        string
	Description string
	URI         string
}

func (e *TokenError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("oauth: token error %q", e.Code)
	}
	return fmt.Sprintf("oauth: token error %q: %s", e.Code, e.Description)
}

// Is makes errors.Is(err, ErrTokenResponse) succeed.
func (e *TokenError) Is(target error) bool {
	return target == ErrTokenResponse
}
