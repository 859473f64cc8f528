package httpclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// RequestOption customizes a single request.
type RequestOption func(*request)

type request struct {
	header      http.Header
	query       url.Values
	body        io.Reader
	contentType string
	err         error
}

func newRequest(opts []RequestOption) *request {
	r := &request{
		header: make(http.Header),
		query:  make(url.Values),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// WithHeader sets a header for this request, overriding any default with the same key.
func WithHeader(key, value string) RequestOption {
	return func(r *request) {
		r.header.Set(key, value)
	}
}

// WithQuery sets a query parameter for this request, overriding any default with the same key.
func WithQuery(key, value string) RequestOption {
	return func(r *request) {
		r.query.Set(key, value)
	}
}

// WithForm sends values as an application/x-www-form-urlencoded body.
func WithForm(values url.Values) RequestOption {
	return func(r *request) {
		r.body = strings.NewReader(values.Encode())
		r.contentType = "application/x-www-form-urlencoded"
	}
}

// WithJSON sends v encoded as JSON.
func WithJSON(v any) RequestOption {
	return func(r *request) {
		data, err := json.Marshal(v)
		if err != nil {
			r.err = errors.Join(ErrEncodeBody, err)
			return
		}
		r.body = bytes.NewReader(data)
		r.contentType = "application/json"
	}
}

// WithBody sends an arbitrary body. An empty contentType leaves the header unset.
func WithBody(body io.Reader, contentType string) RequestOption {
	return func(r *request) {
		r.body = body
		r.contentType = contentType
	}
}
