package oauth

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/oauthkit/pkg/httpclient"
	"github.com/dmitrymomot/oauthkit/pkg/logger"
)

// Verb is an HTTP verb a Service forwards to its client.
type Verb string

// Supported verbs. Names are lower case and matched case-sensitively.
const (
	VerbGet    Verb = "get"
	VerbPost   Verb = "post"
	VerbPut    Verb = "put"
	VerbPatch  Verb = "patch"
	VerbDelete Verb = "delete"
	VerbHead   Verb = "head"
)

// Verbs returns the closed set of verbs a Service dispatches.
func Verbs() []Verb {
	return []Verb{VerbGet, VerbPost, VerbPut, VerbPatch, VerbDelete, VerbHead}
}

// ParseVerb returns the verb with the given name or an *UnsupportedOperationError.
func ParseVerb(name string) (Verb, error) {
	switch v := Verb(name); v {
	case VerbGet, VerbPost, VerbPut, VerbPatch, VerbDelete, VerbHead:
		return v, nil
	default:
		return "", &UnsupportedOperationError{Name: name}
	}
}

// Get issues an authenticated GET request through the prepared client.
func (s *Service) Get(ctx context.Context, path string, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	return s.forward(ctx, VerbGet, path, opts)
}

// Post issues an authenticated POST request through the prepared client.
func (s *Service) Post(ctx context.Context, path string, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	return s.forward(ctx, VerbPost, path, opts)
}

// Put issues an authenticated PUT request through the prepared client.
func (s *Service) Put(ctx context.Context, path string, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	return s.forward(ctx, VerbPut, path, opts)
}

// Patch issues an authenticated PATCH request through the prepared client.
func (s *Service) Patch(ctx context.Context, path string, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	return s.forward(ctx, VerbPatch, path, opts)
}

// Delete issues an authenticated DELETE request through the prepared client.
func (s *Service) Delete(ctx context.Context, path string, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	return s.forward(ctx, VerbDelete, path, opts)
}

// Head issues an authenticated HEAD request through the prepared client.
func (s *Service) Head(ctx context.Context, path string, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	return s.forward(ctx, VerbHead, path, opts)
}

// Dispatch forwards a request named by its verb. Names outside Verbs fail with
// an *UnsupportedOperationError before the client is touched.
// The client's response and error are returned unchanged.
func (s *Service) Dispatch(ctx context.Context, name, path string, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	verb, err := ParseVerb(name)
	if err != nil {
		return nil, err
	}
	return s.forward(ctx, verb, path, opts)
}

func (s *Service) forward(ctx context.Context, verb Verb, path string, opts []httpclient.RequestOption) (*httpclient.Response, error) {
	c := s.Prepare()
	if c == nil {
		return nil, ErrMissingClient
	}

	s.logger.DebugContext(logger.WithProvider(ctx, s.provider.Config().Name), "oauth: dispatch",
		slog.String("verb", string(verb)),
		slog.String("path", path),
	)

	switch verb {
	case VerbGet:
		return c.Get(ctx, path, opts...)
	case VerbPost:
		return c.Post(ctx, path, opts...)
	case VerbPut:
		return c.Put(ctx, path, opts...)
	case VerbPatch:
		return c.Patch(ctx, path, opts...)
	case VerbDelete:
		return c.Delete(ctx, path, opts...)
	case VerbHead:
		return c.Head(ctx, path, opts...)
	default:
		return nil, &UnsupportedOperationError{Name: string(verb)}
	}
}
