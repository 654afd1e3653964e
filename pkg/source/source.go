// Package source provides the package-source abstraction: one adapter per
// package manager or app store, a uniform record type, and a registry that
// fans searches out across all of them.
package source

import (
	"context"
	"strings"
	"time"
)

// Names returns all source names in registration order: pacman, apt, dnf,
// zypper, aur, flatpak, snap.
func Names() []string {
	return []string{"pacman", "apt", "dnf", "zypper", "aur", "flatpak", "snap"}
}

// Known reports whether name is a recognized source.
func Known(name string) bool {
	switch name {
	case "pacman", "apt", "dnf", "zypper", "aur", "flatpak", "snap":
		return true
	}
	return false
}

// Tier categorizes sources by default trust for ranking and deduplication.
type Tier int

const (
	// TierStore is sandboxed app-store formats (snap).
	TierStore Tier = iota
	// TierContainer is container/bundle formats (flatpak).
	TierContainer
	// TierCommunity is community repositories (AUR).
	TierCommunity
	// TierNative is the distribution's own repositories (pacman, apt, dnf, zypper).
	TierNative
)

// String returns the tier label.
func (t Tier) String() string {
	switch t {
	case TierNative:
		return "native"
	case TierCommunity:
		return "community"
	case TierContainer:
		return "container"
	case TierStore:
		return "store"
	}
	return "unknown"
}

// TierOf maps a source name to its trust tier. Unknown names rank lowest.
func TierOf(name string) Tier {
	switch name {
	case "pacman", "apt", "dnf", "zypper":
		return TierNative
	case "aur":
		return TierCommunity
	case "flatpak":
		return TierContainer
	}
	return TierStore
}

// Record is a single package hit reported by one source. A record has no
// identity beyond its fields; two records with equal fields are duplicates.
type Record struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source"`
}

// Adapter is implemented once per package source.
type Adapter interface {
	// Name returns the source identifier (e.g. "pacman", "aur").
	Name() string

	// DisplayName returns a human-readable name (e.g. "Pacman (Arch repositories)").
	DisplayName() string

	// Tier returns the trust tier of this source.
	Tier() Tier

	// Available reports whether the backing tool can be invoked at all.
	// Must be cheap: a PATH lookup for subprocess sources.
	Available() bool

	// Probe verifies the tool is responsive. Implementations bound the
	// check to a few seconds and return ToolUnresponsiveError on timeout.
	Probe(ctx context.Context) error

	// Search runs the source's search for query. Zero matches is a nil
	// error with an empty result; tool absence, timeouts and tool
	// failures return the typed errors of this package. Each error is an
	// independent per-source failure and never aborts sibling sources.
	Search(ctx context.Context, query string) ([]Record, error)
}

// ResultCache is the write-through sink adapters use for successful
// searches. Implementations must be safe for concurrent use; multiple
// adapters write back around the same time during fan-out.
type ResultCache interface {
	Get(query, src string) ([]Record, bool)
	Set(query, src string, records []Record) error
}

// CacheAttacher is implemented by adapters that support write-through
// caching of their results.
type CacheAttacher interface {
	AttachCache(ResultCache)
}

// TimeoutSetter is implemented by adapters whose per-search timeout can be
// adjusted after construction.
type TimeoutSetter interface {
	SetSearchTimeout(time.Duration)
}

// CheckQuery validates a search query before any subprocess is spawned.
// Empty or whitespace-only input is a ValidationError.
func CheckQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return &ValidationError{Field: "query", Reason: "must not be empty"}
	}
	return nil
}
