package adsbridge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adsbridge "github.com/outboundkit/amazon-ads-bridge"
)

func TestClassifyResponse_StatusTable(t *testing.T) {
	tests := []struct {
		name        string
		resp        *adsbridge.NormalizedResponse
		wantCode    string
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "401 authentication",
			resp:        &adsbridge.NormalizedResponse{StatusCode: 401, Data: []byte(`{"message":"token expired"}`)},
			wantCode:    "AMAZON_AUTH_ERROR",
			wantStatus:  401,
			wantMessage: "Authentication failed: token expired",
		},
		{
			name:        "403 forbidden",
			resp:        &adsbridge.NormalizedResponse{StatusCode: 403, Data: []byte(`{"message":"not allowed"}`)},
			wantCode:    "AMAZON_FORBIDDEN_ERROR",
			wantStatus:  403,
			wantMessage: "You do not have permission to access this resource: not allowed",
		},
		{
			name:        "415 media type",
			resp:        &adsbridge.NormalizedResponse{StatusCode: 415, Data: []byte(`{"message":"unsupported"}`)},
			wantCode:    "AMAZON_MEDIA_TYPE_ERROR",
			wantStatus:  415,
			wantMessage: "Invalid media type, expected application/json: unsupported",
		},
		{
			name:        "500 server error",
			resp:        &adsbridge.NormalizedResponse{StatusCode: 500, Data: []byte(`{"message":"boom"}`)},
			wantCode:    "AMAZON_SERVER_ERROR",
			wantStatus:  500,
			wantMessage: "Amazon API internal server error: boom",
		},
		{
			name:        "400 default bucket",
			resp:        &adsbridge.NormalizedResponse{StatusCode: 400, Data: []byte(`{"message":"bad payload"}`)},
			wantCode:    "AMAZON_API_ERROR",
			wantStatus:  400,
			wantMessage: "Failed to send event to Amazon: bad payload",
		},
		{
			name:        "418 unmapped status",
			resp:        &adsbridge.NormalizedResponse{StatusCode: 418, Data: []byte(`{"message":"I'm a teapot"}`)},
			wantCode:    "AMAZON_API_ERROR",
			wantStatus:  418,
			wantMessage: "Failed to send event to Amazon: I'm a teapot",
		},
		{
			name:        "missing status defaults to 400",
			resp:        &adsbridge.NormalizedResponse{Data: []byte(`{"message":"Unknown error"}`)},
			wantCode:    "AMAZON_API_ERROR",
			wantStatus:  400,
			wantMessage: "Failed to send event to Amazon: Unknown error",
		},
		{
			name:        "missing message falls back",
			resp:        &adsbridge.NormalizedResponse{StatusCode: 401, Data: []byte(`{}`)},
			wantCode:    "AMAZON_AUTH_ERROR",
			wantStatus:  401,
			wantMessage: "Authentication failed: Unknown error",
		},
		{
			name:        "non-JSON body falls back",
			resp:        &adsbridge.NormalizedResponse{StatusCode: 502, Data: []byte("<html>bad gateway</html>")},
			wantCode:    "AMAZON_API_ERROR",
			wantStatus:  502,
			wantMessage: "Failed to send event to Amazon: Unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adsbridge.ClassifyResponse(tt.resp)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantMessage, got.Message)
			assert.Equal(t, tt.wantMessage, got.Error())
		})
	}
}

func TestClassifyResponse_RateLimit(t *testing.T) {
	withRetry := &adsbridge.NormalizedResponse{
		StatusCode: 429,
		Headers:    map[string]string{"retry-after": "30"},
		Data:       []byte(`{"message":"throttled"}`),
	}
	got := adsbridge.ClassifyResponse(withRetry)
	assert.Equal(t, "AMAZON_RATE_LIMIT_ERROR", got.Code)
	assert.Equal(t, 429, got.Status)
	assert.Contains(t, got.Message, "Rate limited by Amazon API")
	assert.Contains(t, got.Message, "Try again after 30 seconds")

	withoutRetry := &adsbridge.NormalizedResponse{
		StatusCode: 429,
		Headers:    map[string]string{},
		Data:       []byte(`{"message":"throttled"}`),
	}
	got = adsbridge.ClassifyResponse(withoutRetry)
	assert.Equal(t, "AMAZON_RATE_LIMIT_ERROR", got.Code)
	assert.Contains(t, got.Message, "Rate limited by Amazon API")
	assert.Contains(t, got.Message, "Please try again later")
}

func TestClassifyResponse_RetryAfterEchoedVerbatim(t *testing.T) {
	resp := &adsbridge.NormalizedResponse{
		StatusCode: 429,
		Headers:    map[string]string{"retry-after": "soon"},
	}
	got := adsbridge.ClassifyResponse(resp)
	assert.Contains(t, got.Message, "Try again after soon seconds")
}

func TestClassifyResponse_Idempotent(t *testing.T) {
	resp := &adsbridge.NormalizedResponse{
		StatusCode: 429,
		Headers:    map[string]string{"retry-after": "5"},
		Data:       []byte(`{"message":"slow down"}`),
	}
	first := adsbridge.ClassifyResponse(resp)
	second := adsbridge.ClassifyResponse(resp)
	assert.Equal(t, first, second)
}
