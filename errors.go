// errors.go
// ---------
// This file defines the normalized error shape the bridge surfaces to the
// delivery pipeline and the classifier that maps a raw ingestion response
// onto it. Classification is a pure lookup over an explicit status table so
// the precedence and the default are auditable in one place.
package adsbridge

import (
	"encoding/json"
	"fmt"
)

// Error codes surfaced to the delivery pipeline.
const (
	ErrCodeAuth         = "AMAZON_AUTH_ERROR"
	ErrCodeForbidden    = "AMAZON_FORBIDDEN_ERROR"
	ErrCodeMediaType    = "AMAZON_MEDIA_TYPE_ERROR"
	ErrCodeRateLimit    = "AMAZON_RATE_LIMIT_ERROR"
	ErrCodeServer       = "AMAZON_SERVER_ERROR"
	ErrCodeAPI          = "AMAZON_API_ERROR"
	ErrCodeTokenRefresh = "AMAZON_TOKEN_REFRESH_ERROR"
)

// APIError is the bridge's normalized error: a stable code, a human-readable
// message carrying the upstream detail, and the original HTTP status for
// upstream retry/backoff decisions.
type APIError struct {
	Code    string
	Message string
	Status  int
}

func (e *APIError) Error() string {
	return e.Message
}

type statusMapping struct {
	code    string
	message func(resp *NormalizedResponse) string
}

// statusMappings is the classification table. Statuses not listed here fall
// through to ErrCodeAPI.
var statusMappings = map[int]statusMapping{
	401: {ErrCodeAuth, func(r *NormalizedResponse) string {
		return "Authentication failed: " + upstreamMessage(r)
	}},
	403: {ErrCodeForbidden, func(r *NormalizedResponse) string {
		return "You do not have permission to access this resource: " + upstreamMessage(r)
	}},
	415: {ErrCodeMediaType, func(r *NormalizedResponse) string {
		return "Invalid media type, expected application/json: " + upstreamMessage(r)
	}},
	429: {ErrCodeRateLimit, rateLimitMessage},
	500: {ErrCodeServer, func(r *NormalizedResponse) string {
		return "Amazon API internal server error: " + upstreamMessage(r)
	}},
}

// ClassifyResponse maps a raw ingestion response onto one APIError. It is a
// pure function: no I/O, no state, identical input yields identical output.
// It never raises the error itself; surfacing it is the caller's job.
func ClassifyResponse(resp *NormalizedResponse) *APIError {
	status := resp.StatusCode
	if status == 0 {
		// The platform reports malformed calls as 400; a response with no
		// status is treated the same way.
		status = 400
	}
	if m, ok := statusMappings[status]; ok {
		return &APIError{Code: m.code, Message: m.message(resp), Status: status}
	}
	return &APIError{
		Code:    ErrCodeAPI,
		Message: "Failed to send event to Amazon: " + upstreamMessage(resp),
		Status:  status,
	}
}

func rateLimitMessage(resp *NormalizedResponse) string {
	// retry-after is echoed verbatim; Amazon reports it in seconds.
	if v, ok := resp.Headers["retry-after"]; ok {
		return fmt.Sprintf("Rate limited by Amazon API. Try again after %s seconds", v)
	}
	return "Rate limited by Amazon API. Please try again later"
}

// upstreamMessage extracts the "message" field from an ingestion error body,
// falling back to a literal "Unknown error" when the body is missing, not
// JSON, or carries no message.
func upstreamMessage(resp *NormalizedResponse) string {
	var body struct {
		Message string `json:"message"`
	}
	if len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, &body); err == nil && body.Message != "" {
			return body.Message
		}
	}
	return "Unknown error"
}
