// rate_limiter.go
// ----------------
// Bookkeeping for the ingestion endpoint's rate-limit headers. The tracker
// remembers the most recent NormalizedRateLimitInfo parsed from a response
// so callers can make backoff decisions; it never delays or retries
// anything itself, and the core operations never consult it.
package adsbridge

import (
	"strconv"
	"sync"
	"time"

	"github.com/outboundkit/amazon-ads-bridge/internal"
)

type RateLimitTracker struct {
	mu   sync.Mutex
	info *NormalizedRateLimitInfo
}

func NewRateLimitTracker() *RateLimitTracker {
	return &RateLimitTracker{}
}

// Update replaces the stored snapshot. Nil info is ignored so a response
// without rate-limit headers does not erase the last known state.
func (t *RateLimitTracker) Update(info *NormalizedRateLimitInfo) {
	if info == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.info = info
}

// Info returns a copy of the last observed rate-limit snapshot, or nil if
// none has been seen yet.
func (t *RateLimitTracker) Info() *NormalizedRateLimitInfo {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.info == nil {
		return nil
	}
	copyInfo := *t.info
	return &copyInfo
}

// Delay reports how long a caller should wait before the next attempt based
// on the last snapshot. Zero means no known reason to wait.
func (t *RateLimitTracker) Delay() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	info := t.info
	if info == nil || info.ResetRequestsAt == nil {
		return 0
	}
	if info.RemainingRequests != nil && *info.RemainingRequests > 0 {
		return 0
	}
	if internal.IsInFuture(*info.ResetRequestsAt) {
		delayMs := *info.ResetRequestsAt - time.Now().UnixMilli()
		return time.Duration(delayMs) * time.Millisecond
	}
	return 0
}

// ParseRateLimitInfo extracts rate-limit state from an ingestion response's
// headers. It understands the x-ratelimit-* trio and, on throttled
// responses, retry-after (seconds). Returns nil when no rate-limit header
// is present.
func ParseRateLimitInfo(resp *NormalizedResponse) *NormalizedRateLimitInfo {
	h := resp.Headers
	parseInt := func(key string) *int {
		if val, ok := h[key]; ok {
			if i, err := strconv.Atoi(val); err == nil {
				return &i
			}
		}
		return nil
	}

	info := &NormalizedRateLimitInfo{
		MaxRequests:       parseInt("x-ratelimit-limit"),
		RemainingRequests: parseInt("x-ratelimit-remaining"),
	}
	if ts, ok := h["x-ratelimit-reset"]; ok {
		if sec, err := strconv.ParseInt(ts, 10, 64); err == nil {
			ms := internal.UnixToMs(sec)
			info.ResetRequestsAt = &ms
		}
	}

	if val, ok := h["retry-after"]; ok {
		if ms := internal.RetryAfterMs(val); ms > 0 {
			future := time.Now().UnixMilli() + ms
			if info.ResetRequestsAt == nil || future > *info.ResetRequestsAt {
				info.ResetRequestsAt = &future
			}
		}
	}

	if info.MaxRequests == nil && info.RemainingRequests == nil && info.ResetRequestsAt == nil {
		return nil
	}
	return info
}
