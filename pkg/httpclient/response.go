package httpclient

import (
	"encoding/json"
	"net/http"
)

// Response is an HTTP response whose body has already been read.
type Response struct {
	*http.Response
	body []byte
}

// Bytes returns the raw (decompressed) response body.
func (r *Response) Bytes() []byte {
	return r.body
}

// String returns the response body as a string.
func (r *Response) String() string {
	return string(r.body)
}

// JSON decodes the response body into v.
func (r *Response) JSON(v any) error {
	if len(r.body) == 0 {
		return ErrEmptyBody
	}
	return json.Unmarshal(r.body, v)
}
