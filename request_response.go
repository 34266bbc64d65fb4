package adsbridge

import "time"

// NormalizedRequest is the wire-agnostic request shape handed to a
// Transport. Headers are sent as given; an explicitly empty header value is
// transmitted as-is rather than omitted.
type NormalizedRequest struct {
	Method   string
	Endpoint string
	Headers  map[string]string
	Body     []byte

	// Timeout bounds the whole exchange at the transport layer. Zero means
	// the transport's own default applies.
	Timeout time.Duration
}

// NormalizedResponse is what a Transport returns for any completed HTTP
// exchange, including non-2xx statuses. Conforming transports lowercase
// header names.
type NormalizedResponse struct {
	StatusCode int
	Headers    map[string]string
	Data       []byte
}

type NormalizedRateLimitInfo struct {
	MaxRequests       *int
	RemainingRequests *int
	ResetRequestsAt   *int64 // unix ms
}
