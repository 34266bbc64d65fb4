// match_keys.go
//
// Package utils provides helpers for preparing Conversions API match keys.
//
// The ingestion endpoint requires PII-backed identifiers (email, phone,
// names, address fields) to be normalized and SHA-256 hashed before
// transmission, while MAID, RAMP_ID and MATCH_ID values travel as-is.
// SmartHash leaves values that already look like a SHA-256 digest alone so
// pre-hashed upstream data is not hashed twice.
//
// Example usage:
//   keys := utils.BuildMatchKeys(map[adsbridge.MatchKeyType]string{
//       adsbridge.MatchKeyEmail: "User@Example.com ",
//       adsbridge.MatchKeyMAID:  "38400000-8cf0-11bd-b23e-10b96e40000d",
//   })
package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"

	adsbridge "github.com/outboundkit/amazon-ads-bridge"
)

var sha256Hex = regexp.MustCompile(`^[a-f0-9]{64}$`)

// IsHashed reports whether value already looks like a SHA-256 hex digest.
func IsHashed(value string) bool {
	return sha256Hex.MatchString(strings.ToLower(value))
}

// HashSHA256 returns the lowercase hex SHA-256 digest of value.
func HashSHA256(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// SmartHash normalizes and hashes value unless it is already a digest.
// normalize may be nil to hash the value as given.
func SmartHash(value string, normalize func(string) string) string {
	if IsHashed(value) {
		return value
	}
	if normalize != nil {
		value = normalize(value)
	}
	return HashSHA256(value)
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone strips everything but digits.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeStandard lowercases, trims, and removes inner whitespace and
// punctuation, the default treatment for name and address fields.
func NormalizeStandard(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	var b strings.Builder
	for _, r := range value {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normalizers maps each hashed match key type to its treatment. Types
// absent here (MAID, RAMP_ID, MATCH_ID) are not hashed at all.
var normalizers = map[adsbridge.MatchKeyType]func(string) string{
	adsbridge.MatchKeyEmail:     NormalizeEmail,
	adsbridge.MatchKeyPhone:     NormalizePhone,
	adsbridge.MatchKeyFirstName: NormalizeStandard,
	adsbridge.MatchKeyLastName:  NormalizeStandard,
	adsbridge.MatchKeyAddress:   NormalizeStandard,
	adsbridge.MatchKeyCity:      NormalizeStandard,
	adsbridge.MatchKeyState:     NormalizeStandard,
	adsbridge.MatchKeyPostal:    NormalizeStandard,
}

// matchKeyOrder fixes the output order of BuildMatchKeys.
var matchKeyOrder = []adsbridge.MatchKeyType{
	adsbridge.MatchKeyEmail,
	adsbridge.MatchKeyPhone,
	adsbridge.MatchKeyFirstName,
	adsbridge.MatchKeyLastName,
	adsbridge.MatchKeyAddress,
	adsbridge.MatchKeyCity,
	adsbridge.MatchKeyState,
	adsbridge.MatchKeyPostal,
	adsbridge.MatchKeyMAID,
	adsbridge.MatchKeyRampID,
	adsbridge.MatchKeyMatchID,
}

// BuildMatchKeys assembles typed match keys from raw identifier values,
// hashing where the platform requires it. Empty values are skipped; output
// order is deterministic.
func BuildMatchKeys(raw map[adsbridge.MatchKeyType]string) []adsbridge.MatchKey {
	var keys []adsbridge.MatchKey
	for _, t := range matchKeyOrder {
		value, ok := raw[t]
		if !ok || value == "" {
			continue
		}
		if normalize, hashed := normalizers[t]; hashed {
			value = SmartHash(value, normalize)
		}
		keys = append(keys, adsbridge.MatchKey{Type: t, Values: []string{value}})
	}
	return keys
}
