package httpclient

import (
	"errors"
	"fmt"
)

var (
	// ErrStatus is matched by every *StatusError.
	ErrStatus = errors.New("httpclient: unexpected response status")

	// ErrInvalidURL is returned when the request URL cannot be built.
	ErrInvalidURL = errors.New("httpclient: invalid request url")

	// ErrEncodeBody is returned when a request body cannot be encoded.
	ErrEncodeBody = errors.New("httpclient: failed to encode request body")

	// ErrReadBody is returned when a response body cannot be read or decompressed.
	ErrReadBody = errors.New("httpclient: failed to read response body")

	// ErrEmptyBody is returned by Response.JSON when there is nothing to decode.
	ErrEmptyBody = errors.New("httpclient: empty response body")
)

// StatusError reports a response with a status code of 400 or above.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("httpclient: %s %s: status %d", e.Method, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("httpclient: %s %s: status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// Is makes errors.Is(err, ErrStatus) succeed for any StatusError.
func (e *StatusError) Is(target error) bool {
	return target == ErrStatus
}
