// token.go
// --------
// Exchange of a long-lived refresh token for a short-lived access token
// against the Amazon OAuth2 token endpoint. Each call is exactly one round
// trip: the bridge never caches tokens, and persisting the returned token
// is the caller's job.
package adsbridge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"golang.org/x/oauth2"
)

// Credentials is the pair held by the credential store.
type Credentials struct {
	RefreshToken string

	// AccessToken is the most recent exchange result as cached by the
	// caller. It is not authoritative: ExchangeToken always performs a
	// fresh exchange instead of trusting it.
	AccessToken string
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// ExchangeToken trades creds.RefreshToken for a fresh access token. The
// exchange is unauthenticated at the transport layer (the authorization
// header is explicitly empty); credentials travel in the form-encoded body.
// Missing client id/secret are sent as empty strings, matching the
// permissive behavior of the endpoint.
//
// Any failure, whether a transport error, a non-2xx status, or a malformed
// body, yields one *APIError wrapping the underlying message. No retry is
// attempted here.
func ExchangeToken(ctx context.Context, transport Transport, cfg *Config, creds Credentials) (string, error) {
	if creds.RefreshToken == "" {
		return "", refreshError("missing refresh token", 0)
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", creds.RefreshToken)
	if cfg == nil {
		cfg = &Config{}
	}
	form.Set("client_id", cfg.ClientID)
	form.Set("client_secret", cfg.ClientSecret)

	req := &NormalizedRequest{
		Method:   "POST",
		Endpoint: cfg.authURL(),
		Headers: map[string]string{
			"Authorization": "",
			"Content-Type":  "application/x-www-form-urlencoded",
		},
		Body: []byte(form.Encode()),
	}

	resp, err := transport.Do(ctx, req)
	if err != nil {
		return "", refreshError(err.Error(), 0)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := upstreamMessage(resp)
		if msg == "Unknown error" {
			msg = fmt.Sprintf("unexpected status %d from token endpoint", resp.StatusCode)
		}
		return "", refreshError(msg, resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.Unmarshal(resp.Data, &tr); err != nil {
		return "", refreshError(err.Error(), resp.StatusCode)
	}
	if tr.AccessToken == "" {
		return "", refreshError("no access_token in token endpoint response", resp.StatusCode)
	}
	return tr.AccessToken, nil
}

func refreshError(underlying string, status int) *APIError {
	if status == 0 {
		status = 401
	}
	return &APIError{
		Code:    ErrCodeTokenRefresh,
		Message: "Failed to refresh access token: " + underlying,
		Status:  status,
	}
}

// TokenSource adapts the exchanger to oauth2.TokenSource so the bridge
// plugs into clients that expect one. Every Token call is a fresh exchange;
// wrap the result in oauth2.ReuseTokenSource if caching is wanted.
func TokenSource(ctx context.Context, transport Transport, cfg *Config, creds Credentials) oauth2.TokenSource {
	return &refreshTokenSource{ctx: ctx, transport: transport, cfg: cfg, creds: creds}
}

type refreshTokenSource struct {
	ctx       context.Context
	transport Transport
	cfg       *Config
	creds     Credentials
}

func (ts *refreshTokenSource) Token() (*oauth2.Token, error) {
	access, err := ExchangeToken(ts.ctx, ts.transport, ts.cfg, ts.creds)
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{AccessToken: access, TokenType: "bearer"}, nil
}
