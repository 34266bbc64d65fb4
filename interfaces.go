package adsbridge

import "context"

// Transport is the injected request-issuing capability and the only
// boundary to the network: the bridge never opens sockets itself.
//
// Implementations must return a NormalizedResponse for any completed HTTP
// exchange, including non-2xx statuses, and reserve the error return for
// transport-level failures (connection, DNS, timeout). Status handling is
// the classifier's job, not the transport's.
type Transport interface {
	Do(ctx context.Context, req *NormalizedRequest) (*NormalizedResponse, error)
}

// WithBearerToken wraps a Transport so every request carries the given
// access token in its Authorization header. Callers attach a token this way
// before invoking SubmitEvents, which itself never sets authorization.
func WithBearerToken(base Transport, token string) Transport {
	return &bearerTransport{base: base, token: token}
}

type bearerTransport struct {
	base  Transport
	token string
}

func (b *bearerTransport) Do(ctx context.Context, req *NormalizedRequest) (*NormalizedResponse, error) {
	if req.Headers == nil {
		req.Headers = make(map[string]string)
	}
	req.Headers["Authorization"] = "Bearer " + b.token
	return b.base.Do(ctx, req)
}
