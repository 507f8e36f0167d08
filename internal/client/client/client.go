package client

import (
	"context"
)

// Client performs API requests. path is relative to the configured base URL
// (e.g. "users/login/").
type Client interface {
	Get(ctx context.Context, path string, opts ...RequestOption) Envelope
	Post(ctx context.Context, path string, body any, opts ...RequestOption) Envelope
}

// RequestOptions are the per-request settings built from RequestOption values.
type RequestOptions struct {
	Bearer string
}

// RequestOption customizes a single request.
type RequestOption func(*RequestOptions)

// WithBearer sends token in the Authorization header.
func WithBearer(token string) RequestOption {
	return func(o *RequestOptions) { o.Bearer = token }
}

// ResolveOptions applies opts in order.
func ResolveOptions(opts ...RequestOption) RequestOptions {
	var o RequestOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
