// internal/timeconv.go
// ---------------------
// Helper functions for the time formats this bridge deals with: ISO-8601
// event timestamps on the way out, and retry-after / reset values parsed
// from ingestion response headers.
//
// Functions:
// - FormatTimestamp: render a time.Time as the ingestion timestamp format.
// - RetryAfterMs: convert retry-after values like "30", "1s", "6m0s" to ms.
// - UnixToMs: convert a UNIX timestamp in seconds to milliseconds.
// - IsInFuture: check if a given timestamp (ms) is in the future.
package internal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatTimestamp renders t as the ISO-8601 UTC form the ingestion endpoint
// expects for event timestamps.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}

// RetryAfterMs converts retry-after style values into ms. Plain integers
// are read as seconds; "1s" and "6m0s" duration forms are also accepted.
func RetryAfterMs(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if sec, err := strconv.Atoi(s); err == nil {
		return int64(sec) * 1000
	}

	if strings.HasSuffix(s, "s") && !strings.Contains(s, "m") {
		val := strings.TrimSuffix(s, "s")
		if sec, err := strconv.Atoi(val); err == nil {
			return int64(sec) * 1000
		}
	}

	var minutes, seconds int
	n, err := fmt.Sscanf(s, "%dm%ds", &minutes, &seconds)
	if n == 2 && err == nil {
		return int64(minutes)*60_000 + int64(seconds)*1_000
	}

	return 0
}

// UnixToMs converts a UNIX timestamp in seconds to milliseconds.
func UnixToMs(timestamp int64) int64 {
	return timestamp * 1000
}

// IsInFuture checks if a timestamp (in ms) is in the future relative to the
// current time.
func IsInFuture(ms int64) bool {
	return ms > time.Now().UnixMilli()
}
