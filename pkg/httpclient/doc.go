// Package httpclient provides the HTTP transport used by OAuth services to talk to
// provider token endpoints and APIs.
//
// A [Client] wraps an [net/http.Client] with a base URL, sticky default headers and
// query parameters, and one method per supported HTTP verb:
//
//	c := httpclient.New(httpclient.Config{
//		BaseURL: "https://api.stackexchange.com/2.3/",
//		Timeout: 10 * time.Second,
//	})
//	c.SetDefaultHeader("Accept-Encoding", "gzip")
//
//	resp, err := c.Get(ctx, "me", httpclient.WithQuery("site", "stackoverflow"))
//	if err != nil {
//		// transport failure or *StatusError
//	}
//
// Relative paths are joined onto the base URL; absolute URLs are used as given.
// Response bodies are read eagerly, so callers never need to close them.
//
// When gzip is requested explicitly through a default or per-request header, the
// standard transport no longer decompresses responses; the client does it instead
// so callers always see plain bodies.
//
// Responses with a status code of 400 or above are returned together with a
// [*StatusError] that matches [ErrStatus].
package httpclient
