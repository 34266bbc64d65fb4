// config.go
// ----------
// This file defines the Config structure holding the client credentials for
// the Amazon token exchange. The upstream endpoint is permissive about
// missing client id/secret, so absence degrades to empty-string fields
// rather than a validation failure.
//
// Config is passed explicitly everywhere it is needed; ConfigFromEnv covers
// the process-wide case without introducing a hidden global.
package adsbridge

import "os"

// DefaultAuthURL is the fixed Amazon OAuth2 token endpoint.
const DefaultAuthURL = "https://api.amazon.com/auth/o2/token"

// Config carries the process-wide client credentials for token exchange.
type Config struct {
	ClientID     string
	ClientSecret string

	// AuthURL overrides the token endpoint, mainly for tests. Empty means
	// DefaultAuthURL.
	AuthURL string
}

// ConfigFromEnv builds a Config from AMAZON_CLIENT_ID and
// AMAZON_CLIENT_SECRET. Unset variables yield empty strings, which are sent
// as-is to the token endpoint.
func ConfigFromEnv() *Config {
	return &Config{
		ClientID:     os.Getenv("AMAZON_CLIENT_ID"),
		ClientSecret: os.Getenv("AMAZON_CLIENT_SECRET"),
	}
}

func (c *Config) authURL() string {
	if c != nil && c.AuthURL != "" {
		return c.AuthURL
	}
	return DefaultAuthURL
}
