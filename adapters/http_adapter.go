package adapters

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	adsbridge "github.com/outboundkit/amazon-ads-bridge"
)

// HTTPAdapter is the default Transport over net/http. Connection pooling,
// TLS, and proxies come from the underlying http.Client; per-request
// deadlines come from NormalizedRequest.Timeout.
type HTTPAdapter struct {
	// Client is the underlying http.Client. Nil means http.DefaultClient.
	Client *http.Client
}

func (a *HTTPAdapter) Do(ctx context.Context, req *adsbridge.NormalizedRequest) (*adsbridge.NormalizedResponse, error) {
	client := a.Client
	if client == nil {
		client = http.DefaultClient
	}

	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.Endpoint, bytes.NewReader(req.Body))
	if err != nil {
		return nil, err
	}
	for k, v := range req.Headers {
		// An explicitly empty value still produces the header on the wire,
		// which the token endpoint relies on.
		httpReq.Header.Set(k, v)
	}
	if httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	// Non-2xx statuses come back as a normal response, never as an error.
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	headers := make(map[string]string)
	for k, vals := range resp.Header {
		if len(vals) > 0 {
			headers[strings.ToLower(k)] = vals[0]
		}
	}

	return &adsbridge.NormalizedResponse{
		StatusCode: resp.StatusCode,
		Headers:    headers,
		Data:       data,
	}, nil
}
