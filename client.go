// client.go
// ---------
// The client.go file contains the Client struct, the main entry point for
// users of the bridge.
//
// Key functionalities include:
// - Constructing a client over an injected Transport with NewClient()
// - Refreshing access tokens via RefreshToken()
// - Sending event batches end to end via SendEvents()
// - Retrieving last observed rate limit info with GetRateLimitInfo()
//
// SendEvents performs the whole delivery flow: token exchange, bearer
// attachment, submission, and classification of non-2xx responses. Each
// underlying operation still issues exactly one outbound call; the client
// adds no retries, queues, or token caching.
package adsbridge

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

type Client struct {
	mu        sync.Mutex
	transport Transport
	config    *Config
	tracker   *RateLimitTracker
	logger    *logrus.Logger

	Debug bool // If true, log debug info
}

// NewClient builds a Client over the given transport. A nil cfg falls back
// to ConfigFromEnv.
func NewClient(transport Transport, cfg *Config) *Client {
	if cfg == nil {
		cfg = ConfigFromEnv()
	}
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	return &Client{
		transport: transport,
		config:    cfg,
		tracker:   NewRateLimitTracker(),
		logger:    logger,
	}
}

// SetDebug enables or disables debug logging for the client.
func (c *Client) SetDebug(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Debug = enabled
}

// RefreshToken exchanges the refresh credential for a fresh access token.
// The returned token is not stored anywhere in the client; persisting it is
// the caller's job.
func (c *Client) RefreshToken(ctx context.Context, creds Credentials) (string, error) {
	c.debugf("exchanging refresh token at %s", c.config.authURL())
	return ExchangeToken(ctx, c.transport, c.config, creds)
}

// TokenSource returns an oauth2.TokenSource backed by RefreshToken.
func (c *Client) TokenSource(ctx context.Context, creds Credentials) oauth2.TokenSource {
	return TokenSource(ctx, c.transport, c.config, creds)
}

// SendEvents delivers one batch: exchange token, attach it as a bearer
// credential, submit, and classify any non-2xx response into an *APIError.
// The raw response is returned alongside the classified error so callers
// keep access to status, headers, and body.
func (c *Client) SendEvents(ctx context.Context, creds Credentials, settings Settings, events ...EventRecord) (*NormalizedResponse, error) {
	token, err := ExchangeToken(ctx, c.transport, c.config, creds)
	if err != nil {
		return nil, err
	}

	c.debugf("submitting %d event(s) to %s%s for advertiser %s", len(events), settings.Region, eventsPath, settings.AdvertiserID)
	resp, err := SubmitEvents(ctx, WithBearerToken(c.transport, token), settings, events...)
	if err != nil {
		return nil, err
	}

	if info := ParseRateLimitInfo(resp); info != nil {
		c.tracker.Update(info)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := ClassifyResponse(resp)
		c.debugf("submission failed: %s (%s, status %d)", apiErr.Message, apiErr.Code, apiErr.Status)
		return resp, apiErr
	}

	c.debugf("submission accepted with status %d", resp.StatusCode)
	return resp, nil
}

// GetRateLimitInfo returns the most recent rate limit info observed on an
// ingestion response, or nil if none has been seen.
func (c *Client) GetRateLimitInfo() *NormalizedRateLimitInfo {
	return c.tracker.Info()
}

// debugf logs debug messages if Debug mode is enabled.
func (c *Client) debugf(format string, args ...interface{}) {
	if c.Debug {
		c.logger.Debugf(format, args...)
	}
}
