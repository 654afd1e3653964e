// Package cache is the persistent result cache: search results keyed by
// (query, source) with TTL expiry, access counting and a capacity bound, so
// repeated identical searches skip the slow subprocess round trips.
package cache

import (
	"time"

	"pkgscout/pkg/source"
)

// Entry is one cached search result list.
type Entry struct {
	Query       string          `json:"query"`
	Source      string          `json:"source"`
	Results     []source.Record `json:"results"`
	CreatedAt   time.Time       `json:"created_at"`
	AccessCount int             `json:"access_count"`
}

// IsExpired reports whether the entry has outlived ttl at the given time.
func (e *Entry) IsExpired(ttl time.Duration, now time.Time) bool {
	return now.Sub(e.CreatedAt) >= ttl
}

// Age returns how long ago the entry was stored.
func (e *Entry) Age(now time.Time) time.Duration {
	return now.Sub(e.CreatedAt)
}
